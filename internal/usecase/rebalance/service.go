package rebalance

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/simaogato/rebalancer-backend/internal/domain"
	"github.com/simaogato/rebalancer-backend/internal/usecase/evaluator"
)

// Renderer presents a set of decisions to a human
// It must not modify the decisions it is given.
type Renderer interface {
	Render(decisions *domain.Decisions) error
}

// Result is the outcome of one rebalance evaluation
type Result struct {
	PortfolioID uuid.UUID // uuid.Nil for ad-hoc evaluations
	TotalValue  decimal.Decimal
	Decisions   *domain.Decisions
	EvaluatedAt time.Time
}

// EvaluateInput carries an ad-hoc portfolio that is not stored anywhere
type EvaluateInput struct {
	Holdings    []*domain.Holding
	Allocations domain.Allocations
}

// RebalanceService handles rebalancing operations over stored and ad-hoc portfolios
type RebalanceService struct {
	HoldingRepo    domain.HoldingRepository
	AllocationRepo domain.AllocationRepository
	Renderer       Renderer
	ZeroPolicy     domain.ZeroAllocationPolicy

	log zerolog.Logger
	now func() time.Time
}

// NewRebalanceService creates a new RebalanceService instance
// renderer may be nil, in which case decisions are only returned.
func NewRebalanceService(
	holdingRepo domain.HoldingRepository,
	allocationRepo domain.AllocationRepository,
	renderer Renderer,
	zeroPolicy domain.ZeroAllocationPolicy,
	log zerolog.Logger,
) *RebalanceService {
	return &RebalanceService{
		HoldingRepo:    holdingRepo,
		AllocationRepo: allocationRepo,
		Renderer:       renderer,
		ZeroPolicy:     zeroPolicy,
		log:            log.With().Str("component", "rebalance").Logger(),
		now:            time.Now,
	}
}

// Evaluate computes total value and decisions for holdings supplied by the caller
func (s *RebalanceService) Evaluate(ctx context.Context, input EvaluateInput) (*Result, error) {
	for _, h := range input.Holdings {
		if h == nil {
			return nil, fmt.Errorf("nil entry: %w", domain.ErrInvalidHolding)
		}
		if err := h.Validate(); err != nil {
			return nil, err
		}
	}

	return s.evaluate(ctx, uuid.Nil, input.Holdings, input.Allocations), nil
}

// RebalancePortfolio loads a stored portfolio and computes its decisions
// Logic:
//  1. Load holdings (ordered) and target allocations from the repositories;
//     a portfolio with neither is reported as ErrPortfolioNotFound
//  2. Evaluate them with the configured zero allocation policy
//  3. Render the decisions; a rendering failure is logged and never changes the result
func (s *RebalanceService) RebalancePortfolio(ctx context.Context, portfolioID uuid.UUID) (*Result, error) {
	holdings, allocations, err := s.load(ctx, portfolioID)
	if err != nil {
		return nil, err
	}

	return s.evaluate(ctx, portfolioID, holdings, allocations), nil
}

// TotalValue returns the current total value of a stored portfolio
func (s *RebalanceService) TotalValue(ctx context.Context, portfolioID uuid.UUID) (decimal.Decimal, error) {
	holdings, allocations, err := s.load(ctx, portfolioID)
	if err != nil {
		return decimal.Zero, err
	}

	return evaluator.New(holdings, allocations).TotalValue(), nil
}

// UpdateShares sets the share count of a stored holding
// Negative or zero counts are accepted as given.
func (s *RebalanceService) UpdateShares(ctx context.Context, portfolioID uuid.UUID, symbol string, shares decimal.Decimal) error {
	if strings.TrimSpace(symbol) == "" {
		return domain.ErrInvalidSymbol
	}

	if err := s.HoldingRepo.UpdateShares(ctx, portfolioID, symbol, shares); err != nil {
		return err
	}

	s.log.Info().
		Str("portfolio_id", portfolioID.String()).
		Str("symbol", symbol).
		Str("shares", shares.String()).
		Msg("shares updated")
	return nil
}

// UpsertHolding creates or replaces a stored holding (price and shares)
// New symbols are appended after the existing holdings.
func (s *RebalanceService) UpsertHolding(ctx context.Context, portfolioID uuid.UUID, holding *domain.Holding) error {
	if holding == nil {
		return fmt.Errorf("nil entry: %w", domain.ErrInvalidHolding)
	}
	if err := holding.Validate(); err != nil {
		return err
	}

	if err := s.HoldingRepo.Upsert(ctx, portfolioID, holding); err != nil {
		return err
	}

	snap := holding.Snapshot()
	s.log.Info().
		Str("portfolio_id", portfolioID.String()).
		Str("symbol", snap.Symbol).
		Str("price", snap.Price.String()).
		Str("shares", snap.Shares.String()).
		Msg("holding saved")
	return nil
}

// SetAllocation creates or replaces the target fraction for a symbol
// The fraction is not range checked and a 0 is stored as given; how it is
// evaluated depends on the zero allocation policy.
func (s *RebalanceService) SetAllocation(ctx context.Context, portfolioID uuid.UUID, symbol string, fraction decimal.Decimal) error {
	if strings.TrimSpace(symbol) == "" {
		return domain.ErrInvalidSymbol
	}

	if err := s.AllocationRepo.Set(ctx, portfolioID, symbol, fraction); err != nil {
		return err
	}

	s.log.Info().
		Str("portfolio_id", portfolioID.String()).
		Str("symbol", symbol).
		Str("fraction", fraction.String()).
		Msg("allocation saved")
	return nil
}

func (s *RebalanceService) load(ctx context.Context, portfolioID uuid.UUID) ([]*domain.Holding, domain.Allocations, error) {
	holdings, err := s.HoldingRepo.List(ctx, portfolioID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list holdings: %w", err)
	}

	allocations, err := s.AllocationRepo.Get(ctx, portfolioID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get allocations: %w", err)
	}

	if len(holdings) == 0 && len(allocations) == 0 {
		return nil, nil, fmt.Errorf("portfolio %s: %w", portfolioID, domain.ErrPortfolioNotFound)
	}

	return holdings, allocations, nil
}

func (s *RebalanceService) evaluate(ctx context.Context, portfolioID uuid.UUID, holdings []*domain.Holding, allocations domain.Allocations) *Result {
	e := evaluator.New(holdings, allocations, evaluator.WithZeroAllocationPolicy(s.ZeroPolicy))

	evaluation := e.Evaluate()
	decisions := evaluation.Decisions
	result := &Result{
		PortfolioID: portfolioID,
		TotalValue:  evaluation.TotalValue,
		Decisions:   decisions,
		EvaluatedAt: s.now(),
	}

	if sum := allocations.Sum(); len(allocations) > 0 && !sum.Equal(decimal.NewFromInt(1)) {
		s.log.Warn().
			Str("portfolio_id", portfolioID.String()).
			Str("allocation_sum", sum.String()).
			Msg("target allocations do not sum to 1")
	}

	s.log.Debug().
		Str("portfolio_id", portfolioID.String()).
		Str("total_value", result.TotalValue.String()).
		Int("decisions", decisions.Len()).
		Msg("portfolio evaluated")

	if s.Renderer != nil && ctx.Err() == nil {
		if err := s.Renderer.Render(decisions); err != nil {
			s.log.Error().Err(err).Msg("failed to render rebalance decisions")
		}
	}

	return result
}
