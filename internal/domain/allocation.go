package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Allocations maps a symbol to its target fraction of total portfolio value
// Fractions are expected in [0, 1] and to sum to 1 across held symbols, but
// neither is enforced.
type Allocations map[string]decimal.Decimal

// Fraction returns the target fraction for a symbol and whether an entry exists
func (a Allocations) Fraction(symbol string) (decimal.Decimal, bool) {
	if a == nil {
		return decimal.Zero, false
	}
	fraction, ok := a[symbol]
	return fraction, ok
}

// Sum returns the sum of every fraction in the mapping
func (a Allocations) Sum() decimal.Decimal {
	total := decimal.Zero
	for _, fraction := range a {
		total = total.Add(fraction)
	}
	return total
}

// ZeroAllocationPolicy decides what happens to a holding whose allocation entry is exactly zero
type ZeroAllocationPolicy string

const (
	// ZeroAllocationSkip treats a zero fraction like a missing entry: no decision is produced
	ZeroAllocationSkip ZeroAllocationPolicy = "skip"
	// ZeroAllocationEvaluate evaluates a zero fraction like any other (target value 0)
	ZeroAllocationEvaluate ZeroAllocationPolicy = "evaluate"
)

// ParseZeroAllocationPolicy parses a policy name; the empty string means ZeroAllocationSkip
func ParseZeroAllocationPolicy(s string) (ZeroAllocationPolicy, error) {
	switch ZeroAllocationPolicy(s) {
	case "", ZeroAllocationSkip:
		return ZeroAllocationSkip, nil
	case ZeroAllocationEvaluate:
		return ZeroAllocationEvaluate, nil
	default:
		return "", fmt.Errorf("invalid zero allocation policy %q", s)
	}
}
