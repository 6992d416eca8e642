package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Action is the human-facing rebalancing signal
type Action string

const (
	ActionSell Action = "SELL"
	ActionBuy  Action = "BUY"
)

// Decision is the rebalancing signal for one symbol
// Sell is true when the current price exceeds the target value (overrepresented).
type Decision struct {
	Symbol      string
	Sell        bool
	Price       decimal.Decimal
	TargetValue decimal.Decimal
}

// Action returns SELL or BUY for the decision
func (d Decision) Action() Action {
	if d.Sell {
		return ActionSell
	}
	return ActionBuy
}

// Label returns a one-line, human-readable message for the decision
func (d Decision) Label() string {
	if d.Sell {
		return fmt.Sprintf("You should sell %s stocks", d.Symbol)
	}
	return fmt.Sprintf("You should buy more %s stocks", d.Symbol)
}

// Decisions is an ordered symbol → decision mapping
// Iteration order is the order symbols were first added.
type Decisions struct {
	items []Decision
	index map[string]int
}

// NewDecisions creates an empty Decisions container
func NewDecisions() *Decisions {
	return &Decisions{index: make(map[string]int)}
}

// Set adds a decision, or replaces an existing one for the same symbol in place
func (d *Decisions) Set(decision Decision) {
	if d.index == nil {
		d.index = make(map[string]int)
	}
	if i, ok := d.index[decision.Symbol]; ok {
		d.items[i] = decision
		return
	}
	d.index[decision.Symbol] = len(d.items)
	d.items = append(d.items, decision)
}

// Get returns the sell flag for a symbol and whether the symbol is present
func (d *Decisions) Get(symbol string) (sell bool, ok bool) {
	decision, ok := d.Lookup(symbol)
	return decision.Sell, ok
}

// Lookup returns the full decision for a symbol
func (d *Decisions) Lookup(symbol string) (Decision, bool) {
	if d == nil {
		return Decision{}, false
	}
	i, ok := d.index[symbol]
	if !ok {
		return Decision{}, false
	}
	return d.items[i], true
}

// Has reports whether a decision exists for the symbol
func (d *Decisions) Has(symbol string) bool {
	_, ok := d.Lookup(symbol)
	return ok
}

// Len returns the number of decisions
func (d *Decisions) Len() int {
	if d == nil {
		return 0
	}
	return len(d.items)
}

// All returns a copy of the decisions in order
func (d *Decisions) All() []Decision {
	if d == nil {
		return nil
	}
	out := make([]Decision, len(d.items))
	copy(out, d.items)
	return out
}

// Symbols returns the symbols in order
func (d *Decisions) Symbols() []string {
	if d == nil {
		return nil
	}
	symbols := make([]string, 0, len(d.items))
	for _, item := range d.items {
		symbols = append(symbols, item.Symbol)
	}
	return symbols
}

// AsMap returns an unordered symbol → sell copy of the decisions
func (d *Decisions) AsMap() map[string]bool {
	out := make(map[string]bool, d.Len())
	for _, item := range d.All() {
		out[item.Symbol] = item.Sell
	}
	return out
}
