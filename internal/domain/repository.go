package domain

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	// ErrPortfolioNotFound is returned when a portfolio has no stored holdings or allocations
	ErrPortfolioNotFound = errors.New("portfolio not found")
	// ErrHoldingNotFound is returned when a symbol is not held in a portfolio
	ErrHoldingNotFound = errors.New("holding not found")
)

// HoldingRepository defines the interface for holding persistence operations
type HoldingRepository interface {
	// List retrieves the holdings of a portfolio in their stored order
	List(ctx context.Context, portfolioID uuid.UUID) ([]*Holding, error)

	// Upsert creates or replaces a holding (price and shares) in a portfolio
	Upsert(ctx context.Context, portfolioID uuid.UUID, holding *Holding) error

	// UpdateShares sets the share count of an existing holding
	UpdateShares(ctx context.Context, portfolioID uuid.UUID, symbol string, shares decimal.Decimal) error
}

// AllocationRepository defines the interface for target allocation persistence operations
type AllocationRepository interface {
	// Get retrieves the symbol → fraction mapping of a portfolio
	// A portfolio with no allocations returns an empty, non-nil mapping
	Get(ctx context.Context, portfolioID uuid.UUID) (Allocations, error)

	// Set creates or replaces the target fraction for a symbol
	Set(ctx context.Context, portfolioID uuid.UUID, symbol string, fraction decimal.Decimal) error
}
