package domain

import (
	"errors"
	"strings"
	"sync"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidSymbol is returned when a holding is built from an empty symbol
	ErrInvalidSymbol = errors.New("invalid symbol: symbol cannot be empty")
	// ErrInvalidHolding is returned for a missing (nil) holding in caller input
	ErrInvalidHolding = errors.New("invalid holding")
)

// Holding represents a single position in a portfolio
// The price is fixed at construction; the share count is owned by the caller
// and only changes through SetShares.
type Holding struct {
	Symbol string
	price  decimal.Decimal

	mu     sync.RWMutex
	shares decimal.Decimal
}

// HoldingSnapshot is a consistent read of a Holding at one point in time
type HoldingSnapshot struct {
	Symbol string
	Price  decimal.Decimal
	Shares decimal.Decimal
}

// Value returns price × shares for the snapshot
func (s HoldingSnapshot) Value() decimal.Decimal {
	return s.Price.Mul(s.Shares)
}

// NewHolding creates a holding with zero shares
func NewHolding(symbol string, price decimal.Decimal) *Holding {
	return &Holding{
		Symbol: symbol,
		price:  price,
		shares: decimal.Zero,
	}
}

// CurrentPrice returns the last available per-share price
func (h *Holding) CurrentPrice() decimal.Decimal {
	return h.price
}

// Shares returns the current share count
func (h *Holding) Shares() decimal.Decimal {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.shares
}

// SetShares replaces the share count
// No validation is applied: negative or zero counts are accepted as given.
func (h *Holding) SetShares(shares decimal.Decimal) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.shares = shares
}

// Snapshot returns symbol, price and shares read under a single lock
func (h *Holding) Snapshot() HoldingSnapshot {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return HoldingSnapshot{
		Symbol: h.Symbol,
		Price:  h.price,
		Shares: h.shares,
	}
}

// Validate ensures the holding can be addressed by symbol
// The evaluator never calls this; it is meant for inputs arriving from outside
// (transport, storage, files).
func (h *Holding) Validate() error {
	if strings.TrimSpace(h.Symbol) == "" {
		return ErrInvalidSymbol
	}
	return nil
}
