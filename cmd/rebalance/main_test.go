package main

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/subcommands"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const unbalanced = `
holdings:
  - symbol: TSLA
    price: 60000
    shares: 1
  - symbol: AAPL
    price: 150
    shares: 10
allocations:
  TSLA: 0.5
  AAPL: 0.5
`

func writePortfolio(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "portfolio.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestEvaluateCmd(t *testing.T) {
	var out bytes.Buffer
	cmd := &evaluateCmd{file: writePortfolio(t, unbalanced), zeroPolicy: "skip", out: &out}

	status := cmd.Execute(context.Background(), flag.NewFlagSet("evaluate", flag.ContinueOnError))

	assert.Equal(t, subcommands.ExitSuccess, status)
	assert.Contains(t, out.String(), "You should sell TSLA stocks")
	assert.Contains(t, out.String(), "You should buy more AAPL stocks")
	assert.Contains(t, out.String(), "Total portfolio value: $61500.00")
	assert.Contains(t, out.String(), "2 holdings analyzed")
}

func TestEvaluateCmd_NoActions(t *testing.T) {
	var out bytes.Buffer
	cmd := &evaluateCmd{file: writePortfolio(t, "holdings:\n  - symbol: AAPL\n    price: 1\n"), out: &out}

	status := cmd.Execute(context.Background(), flag.NewFlagSet("evaluate", flag.ContinueOnError))

	assert.Equal(t, subcommands.ExitSuccess, status)
	assert.Contains(t, out.String(), "No rebalancing actions needed.")
}

func TestEvaluateCmd_BadPolicy(t *testing.T) {
	cmd := &evaluateCmd{file: writePortfolio(t, unbalanced), zeroPolicy: "never", out: &bytes.Buffer{}}

	status := cmd.Execute(context.Background(), flag.NewFlagSet("evaluate", flag.ContinueOnError))

	assert.Equal(t, subcommands.ExitUsageError, status)
}

func TestEvaluateCmd_MissingFile(t *testing.T) {
	cmd := &evaluateCmd{file: filepath.Join(t.TempDir(), "nope.yaml"), out: &bytes.Buffer{}}

	status := cmd.Execute(context.Background(), flag.NewFlagSet("evaluate", flag.ContinueOnError))

	assert.Equal(t, subcommands.ExitFailure, status)
}

func TestTotalCmd(t *testing.T) {
	var out bytes.Buffer
	cmd := &totalCmd{file: writePortfolio(t, unbalanced), out: &out}

	status := cmd.Execute(context.Background(), flag.NewFlagSet("total", flag.ContinueOnError))

	assert.Equal(t, subcommands.ExitSuccess, status)
	assert.Equal(t, "61500\n", out.String())
}
