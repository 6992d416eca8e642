package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/simaogato/rebalancer-backend/internal/domain"
)

// Store keeps portfolios in process memory
// It implements both domain.HoldingRepository and domain.AllocationRepository
// and is used when no database is configured.
type Store struct {
	mu          sync.RWMutex
	holdings    map[uuid.UUID][]*domain.Holding
	allocations map[uuid.UUID]domain.Allocations
}

// NewStore creates an empty Store
func NewStore() *Store {
	return &Store{
		holdings:    make(map[uuid.UUID][]*domain.Holding),
		allocations: make(map[uuid.UUID]domain.Allocations),
	}
}

// List returns copies of the stored holdings in insertion order
func (s *Store) List(_ context.Context, portfolioID uuid.UUID) ([]*domain.Holding, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored := s.holdings[portfolioID]
	out := make([]*domain.Holding, 0, len(stored))
	for _, h := range stored {
		out = append(out, copyHolding(h))
	}
	return out, nil
}

// Upsert stores a copy of the holding, replacing one with the same symbol in place
func (s *Store) Upsert(_ context.Context, portfolioID uuid.UUID, holding *domain.Holding) error {
	if err := holding.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stored := s.holdings[portfolioID]
	for i, h := range stored {
		if h.Symbol == holding.Symbol {
			stored[i] = copyHolding(holding)
			return nil
		}
	}
	s.holdings[portfolioID] = append(stored, copyHolding(holding))
	return nil
}

// UpdateShares sets the share count of a stored holding
func (s *Store) UpdateShares(_ context.Context, portfolioID uuid.UUID, symbol string, shares decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, h := range s.holdings[portfolioID] {
		if h.Symbol == symbol {
			h.SetShares(shares)
			return nil
		}
	}
	return fmt.Errorf("%s in portfolio %s: %w", symbol, portfolioID, domain.ErrHoldingNotFound)
}

// Get returns a copy of the stored allocations
func (s *Store) Get(_ context.Context, portfolioID uuid.UUID) (domain.Allocations, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := domain.Allocations{}
	for symbol, fraction := range s.allocations[portfolioID] {
		out[symbol] = fraction
	}
	return out, nil
}

// Set creates or replaces the target fraction for a symbol
func (s *Store) Set(_ context.Context, portfolioID uuid.UUID, symbol string, fraction decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.allocations[portfolioID] == nil {
		s.allocations[portfolioID] = domain.Allocations{}
	}
	s.allocations[portfolioID][symbol] = fraction
	return nil
}

func copyHolding(h *domain.Holding) *domain.Holding {
	snap := h.Snapshot()
	out := domain.NewHolding(snap.Symbol, snap.Price)
	out.SetShares(snap.Shares)
	return out
}
