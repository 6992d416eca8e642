package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/rebalancer-backend/internal/domain"
)

// holdingRepository implements domain.HoldingRepository
type holdingRepository struct {
	db *DB
}

// NewHoldingRepository creates a new holding repository
func NewHoldingRepository(db *DB) domain.HoldingRepository {
	return &holdingRepository{db: db}
}

// List retrieves the holdings of a portfolio ordered by their position
func (r *holdingRepository) List(ctx context.Context, portfolioID uuid.UUID) ([]*domain.Holding, error) {
	query := `
		SELECT symbol, price, shares
		FROM holdings
		WHERE portfolio_id = $1
		ORDER BY position ASC, symbol ASC
	`

	rows, err := r.db.QueryContext(ctx, query, portfolioID)
	if err != nil {
		return nil, fmt.Errorf("failed to query holdings: %w", err)
	}
	defer rows.Close()

	holdings := make([]*domain.Holding, 0)
	for rows.Next() {
		var symbol, priceStr, sharesStr string
		if err := rows.Scan(&symbol, &priceStr, &sharesStr); err != nil {
			return nil, fmt.Errorf("failed to scan holding: %w", err)
		}

		// Parse price and shares (DECIMAL)
		price, err := decimal.NewFromString(priceStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse price: %w", err)
		}
		shares, err := decimal.NewFromString(sharesStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse shares: %w", err)
		}

		holding := domain.NewHolding(symbol, price)
		holding.SetShares(shares)
		holdings = append(holdings, holding)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating holdings: %w", err)
	}

	return holdings, nil
}

// Upsert creates or replaces a holding
// New holdings are appended after the existing ones; an update keeps the position.
func (r *holdingRepository) Upsert(ctx context.Context, portfolioID uuid.UUID, holding *domain.Holding) error {
	if err := holding.Validate(); err != nil {
		return err
	}

	query := `
		INSERT INTO holdings (portfolio_id, symbol, price, shares, position)
		VALUES ($1, $2, $3, $4,
			(SELECT COALESCE(MAX(position), -1) + 1 FROM holdings WHERE portfolio_id = $1))
		ON CONFLICT (portfolio_id, symbol)
		DO UPDATE SET price = EXCLUDED.price, shares = EXCLUDED.shares
	`

	snap := holding.Snapshot()
	_, err := r.db.ExecContext(ctx, query,
		portfolioID,
		snap.Symbol,
		snap.Price.String(),
		snap.Shares.String(),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert holding: %w", err)
	}

	return nil
}

// UpdateShares sets the share count of an existing holding
func (r *holdingRepository) UpdateShares(ctx context.Context, portfolioID uuid.UUID, symbol string, shares decimal.Decimal) error {
	query := `
		UPDATE holdings
		SET shares = $3
		WHERE portfolio_id = $1 AND symbol = $2
	`

	result, err := r.db.ExecContext(ctx, query, portfolioID, symbol, shares.String())
	if err != nil {
		return fmt.Errorf("failed to update shares: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%s in portfolio %s: %w", symbol, portfolioID, domain.ErrHoldingNotFound)
	}

	return nil
}
