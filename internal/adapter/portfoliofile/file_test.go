package portfoliofile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simaogato/rebalancer-backend/internal/domain"
)

func TestDecode(t *testing.T) {
	doc := `
holdings:
  - symbol: TSLA
    price: 60000
    shares: 1
  - symbol: F
    price: "10.50"
  - symbol: AAPL
    price: 150
    shares: 2.5
allocations:
  TSLA: 0.5
  F: "0.5"
`
	p, err := Decode([]byte(doc))
	require.NoError(t, err)

	require.Len(t, p.Holdings, 3)
	assert.Equal(t, "TSLA", p.Holdings[0].Symbol)
	assert.Equal(t, "F", p.Holdings[1].Symbol)
	assert.True(t, p.Holdings[1].CurrentPrice().Equal(decimal.RequireFromString("10.5")))
	assert.True(t, p.Holdings[1].Shares().IsZero(), "omitted shares default to zero")
	assert.True(t, p.Holdings[2].Shares().Equal(decimal.RequireFromString("2.5")))

	f, ok := p.Allocations.Fraction("F")
	assert.True(t, ok)
	assert.True(t, f.Equal(decimal.RequireFromString("0.5")))
	_, ok = p.Allocations.Fraction("AAPL")
	assert.False(t, ok)
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"Missing Price", "holdings:\n  - symbol: AAPL\n"},
		{"Bad Price", "holdings:\n  - symbol: AAPL\n    price: cheap\n"},
		{"Empty Symbol", "holdings:\n  - price: 1\n"},
		{"Bad Fraction", "allocations:\n  AAPL: [1]\n"},
		{"Malformed", "holdings: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestDecode_EmptyDocument(t *testing.T) {
	p, err := Decode([]byte(""))

	require.NoError(t, err)
	assert.Empty(t, p.Holdings)
	assert.Equal(t, domain.Allocations{}, p.Allocations)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.yaml")
	require.NoError(t, os.WriteFile(path, []byte("holdings:\n  - symbol: AAPL\n    price: 150\n    shares: 10\n"), 0o644))

	p, err := Load(path)

	require.NoError(t, err)
	require.Len(t, p.Holdings, 1)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
