package evaluator

import (
	"github.com/shopspring/decimal"
	"github.com/simaogato/rebalancer-backend/internal/domain"
)

// PortfolioEvaluator computes total value and buy/sell decisions for a set of holdings
// It reads the holdings at call time and never mutates them or the allocations.
type PortfolioEvaluator struct {
	holdings    []*domain.Holding
	allocations domain.Allocations
	zeroPolicy  domain.ZeroAllocationPolicy
}

// Option configures a PortfolioEvaluator
type Option func(*PortfolioEvaluator)

// WithZeroAllocationPolicy sets how an explicit zero fraction is handled
func WithZeroAllocationPolicy(policy domain.ZeroAllocationPolicy) Option {
	return func(e *PortfolioEvaluator) {
		e.zeroPolicy = policy
	}
}

// New creates a PortfolioEvaluator over the given holdings and target allocations
func New(holdings []*domain.Holding, allocations domain.Allocations, opts ...Option) *PortfolioEvaluator {
	e := &PortfolioEvaluator{
		holdings:    holdings,
		allocations: allocations,
		zeroPolicy:  domain.ZeroAllocationSkip,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// TotalValue returns the sum of price × shares over all holdings
// An empty portfolio is worth zero.
func (e *PortfolioEvaluator) TotalValue() decimal.Decimal {
	return totalOf(e.snapshot())
}

// Rebalance decides, for every holding with a target allocation, whether it should be sold
// Logic:
//  1. Snapshot every holding once so both passes see the same prices and shares
//  2. Total = sum of price × shares over the snapshot
//  3. Skip holdings with no allocation (and, by default, a zero allocation)
//  4. Target value = Total × fraction
//  5. Sell when price > target value; a tie resolves to buy
//
// The result is ordered like the holdings.
func (e *PortfolioEvaluator) Rebalance() *domain.Decisions {
	return e.Evaluate().Decisions
}

// Evaluation is the total value and the decisions derived from one snapshot
type Evaluation struct {
	TotalValue decimal.Decimal
	Decisions  *domain.Decisions
}

// Evaluate runs Rebalance and also returns the total value it was computed from
func (e *PortfolioEvaluator) Evaluate() Evaluation {
	snaps := e.snapshot()
	total := totalOf(snaps)

	decisions := domain.NewDecisions()
	for _, snap := range snaps {
		fraction, ok := e.allocations.Fraction(snap.Symbol)
		if !ok {
			continue
		}
		if fraction.IsZero() && e.zeroPolicy != domain.ZeroAllocationEvaluate {
			continue
		}

		targetValue := total.Mul(fraction)
		decisions.Set(domain.Decision{
			Symbol:      snap.Symbol,
			Sell:        snap.Price.GreaterThan(targetValue),
			Price:       snap.Price,
			TargetValue: targetValue,
		})
	}

	return Evaluation{TotalValue: total, Decisions: decisions}
}

func (e *PortfolioEvaluator) snapshot() []domain.HoldingSnapshot {
	snaps := make([]domain.HoldingSnapshot, 0, len(e.holdings))
	for _, h := range e.holdings {
		if h == nil {
			continue
		}
		snaps = append(snaps, h.Snapshot())
	}
	return snaps
}

func totalOf(snaps []domain.HoldingSnapshot) decimal.Decimal {
	total := decimal.Zero
	for _, snap := range snaps {
		total = total.Add(snap.Value())
	}
	return total
}
