package portfoliofile

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/simaogato/rebalancer-backend/internal/domain"
)

// Portfolio is a portfolio read from a YAML document:
//
//	holdings:
//	  - symbol: AAPL
//	    price: 150
//	    shares: 10
//	allocations:
//	  AAPL: 1.0
type Portfolio struct {
	Holdings    []*domain.Holding
	Allocations domain.Allocations
}

type document struct {
	Holdings    []holdingEntry          `yaml:"holdings"`
	Allocations map[string]decimalValue `yaml:"allocations"`
}

type holdingEntry struct {
	Symbol string        `yaml:"symbol"`
	Price  *decimalValue `yaml:"price"`
	Shares *decimalValue `yaml:"shares"`
}

// decimalValue parses a YAML scalar (number or string) without going through float64
type decimalValue struct {
	decimal.Decimal
}

func (d *decimalValue) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a number", node.Line)
	}
	v, err := decimal.NewFromString(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: invalid number %q: %w", node.Line, node.Value, err)
	}
	d.Decimal = v
	return nil
}

// Load reads and decodes a portfolio file
func Load(path string) (*Portfolio, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read portfolio file: %w", err)
	}
	return Decode(data)
}

// Decode decodes a portfolio document
// Holdings keep their document order; shares default to zero when omitted.
func Decode(data []byte) (*Portfolio, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse portfolio file: %w", err)
	}

	p := &Portfolio{
		Holdings:    make([]*domain.Holding, 0, len(doc.Holdings)),
		Allocations: domain.Allocations{},
	}

	for i, entry := range doc.Holdings {
		if entry.Price == nil {
			return nil, fmt.Errorf("holding %d (%s): price is required", i, entry.Symbol)
		}
		h := domain.NewHolding(entry.Symbol, entry.Price.Decimal)
		if err := h.Validate(); err != nil {
			return nil, fmt.Errorf("holding %d: %w", i, err)
		}
		if entry.Shares != nil {
			h.SetShares(entry.Shares.Decimal)
		}
		p.Holdings = append(p.Holdings, h)
	}

	for symbol, fraction := range doc.Allocations {
		p.Allocations[symbol] = fraction.Decimal
	}

	return p, nil
}
