package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/rebalancer-backend/internal/domain"
)

// allocationRepository implements domain.AllocationRepository
type allocationRepository struct {
	db *DB
}

// NewAllocationRepository creates a new allocation repository
func NewAllocationRepository(db *DB) domain.AllocationRepository {
	return &allocationRepository{db: db}
}

// Get retrieves the target allocations of a portfolio
func (r *allocationRepository) Get(ctx context.Context, portfolioID uuid.UUID) (domain.Allocations, error) {
	query := `
		SELECT symbol, fraction
		FROM allocations
		WHERE portfolio_id = $1
	`

	rows, err := r.db.QueryContext(ctx, query, portfolioID)
	if err != nil {
		return nil, fmt.Errorf("failed to query allocations: %w", err)
	}
	defer rows.Close()

	allocations := domain.Allocations{}
	for rows.Next() {
		var symbol, fractionStr string
		if err := rows.Scan(&symbol, &fractionStr); err != nil {
			return nil, fmt.Errorf("failed to scan allocation: %w", err)
		}

		fraction, err := decimal.NewFromString(fractionStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse fraction: %w", err)
		}
		allocations[symbol] = fraction
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating allocations: %w", err)
	}

	return allocations, nil
}

// Set creates or replaces the target fraction for a symbol
func (r *allocationRepository) Set(ctx context.Context, portfolioID uuid.UUID, symbol string, fraction decimal.Decimal) error {
	query := `
		INSERT INTO allocations (portfolio_id, symbol, fraction)
		VALUES ($1, $2, $3)
		ON CONFLICT (portfolio_id, symbol)
		DO UPDATE SET fraction = EXCLUDED.fraction
	`

	_, err := r.db.ExecContext(ctx, query, portfolioID, symbol, fraction.String())
	if err != nil {
		return fmt.Errorf("failed to set allocation: %w", err)
	}

	return nil
}
