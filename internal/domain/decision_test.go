package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecision_ActionAndLabel(t *testing.T) {
	sell := Decision{Symbol: "TSLA", Sell: true}
	buy := Decision{Symbol: "F", Sell: false}

	assert.Equal(t, ActionSell, sell.Action())
	assert.Equal(t, "You should sell TSLA stocks", sell.Label())
	assert.Equal(t, ActionBuy, buy.Action())
	assert.Equal(t, "You should buy more F stocks", buy.Label())
}

func TestDecisions_PreservesInsertionOrder(t *testing.T) {
	d := NewDecisions()
	d.Set(Decision{Symbol: "C"})
	d.Set(Decision{Symbol: "A", Sell: true})
	d.Set(Decision{Symbol: "B"})

	assert.Equal(t, []string{"C", "A", "B"}, d.Symbols())
	assert.Equal(t, 3, d.Len())

	sell, ok := d.Get("A")
	require.True(t, ok)
	assert.True(t, sell)
}

func TestDecisions_SetReplacesInPlace(t *testing.T) {
	d := NewDecisions()
	d.Set(Decision{Symbol: "A", Sell: false})
	d.Set(Decision{Symbol: "B", Sell: false})
	d.Set(Decision{Symbol: "A", Sell: true, TargetValue: decimal.NewFromInt(7)})

	assert.Equal(t, []string{"A", "B"}, d.Symbols())
	got, ok := d.Lookup("A")
	require.True(t, ok)
	assert.True(t, got.Sell)
	assert.True(t, got.TargetValue.Equal(decimal.NewFromInt(7)))
}

func TestDecisions_Missing(t *testing.T) {
	d := NewDecisions()

	_, ok := d.Get("NOPE")
	assert.False(t, ok)
	assert.False(t, d.Has("NOPE"))
	assert.Empty(t, d.AsMap())
}

func TestDecisions_NilSafe(t *testing.T) {
	var d *Decisions

	assert.Equal(t, 0, d.Len())
	assert.False(t, d.Has("A"))
	assert.Nil(t, d.All())
}

func TestDecisions_AllReturnsCopy(t *testing.T) {
	d := NewDecisions()
	d.Set(Decision{Symbol: "A"})

	all := d.All()
	all[0].Sell = true

	sell, _ := d.Get("A")
	assert.False(t, sell)
}

func TestAllocations_Fraction(t *testing.T) {
	a := Allocations{"AAPL": decimal.NewFromFloat(0.5), "ZERO": decimal.Zero}

	f, ok := a.Fraction("AAPL")
	assert.True(t, ok)
	assert.True(t, f.Equal(decimal.NewFromFloat(0.5)))

	f, ok = a.Fraction("ZERO")
	assert.True(t, ok, "explicit zero entry is still an entry")
	assert.True(t, f.IsZero())

	_, ok = a.Fraction("MISSING")
	assert.False(t, ok)

	var nilAlloc Allocations
	_, ok = nilAlloc.Fraction("AAPL")
	assert.False(t, ok)
}

func TestAllocations_Sum(t *testing.T) {
	a := Allocations{
		"A": decimal.RequireFromString("0.3"),
		"B": decimal.RequireFromString("0.3"),
		"C": decimal.RequireFromString("0.4"),
	}

	assert.True(t, a.Sum().Equal(decimal.NewFromInt(1)))
}

func TestParseZeroAllocationPolicy(t *testing.T) {
	p, err := ParseZeroAllocationPolicy("")
	require.NoError(t, err)
	assert.Equal(t, ZeroAllocationSkip, p)

	p, err = ParseZeroAllocationPolicy("evaluate")
	require.NoError(t, err)
	assert.Equal(t, ZeroAllocationEvaluate, p)

	_, err = ParseZeroAllocationPolicy("sometimes")
	assert.Error(t, err)
}
