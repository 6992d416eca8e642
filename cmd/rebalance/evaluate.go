package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"
	"github.com/rs/zerolog"

	"github.com/simaogato/rebalancer-backend/internal/adapter/console"
	"github.com/simaogato/rebalancer-backend/internal/adapter/portfoliofile"
	"github.com/simaogato/rebalancer-backend/internal/domain"
	"github.com/simaogato/rebalancer-backend/internal/usecase/rebalance"
	"github.com/simaogato/rebalancer-backend/pkg/logger"
)

// evaluateCmd holds the flags for the 'evaluate' subcommand.
type evaluateCmd struct {
	file       string
	zeroPolicy string
	verbose    bool

	out io.Writer
}

func (*evaluateCmd) Name() string     { return "evaluate" }
func (*evaluateCmd) Synopsis() string { return "print buy/sell signals for a portfolio file" }
func (*evaluateCmd) Usage() string {
	return `rebalance evaluate -file <portfolio.yaml> [-zero-policy skip|evaluate] [-v]

  Computes the total value of the portfolio and, for every holding with a
  target allocation, whether it is overrepresented (sell) or not (buy).
`
}

func (c *evaluateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "file", "portfolio.yaml", "Path to the portfolio YAML file")
	f.StringVar(&c.zeroPolicy, "zero-policy", string(domain.ZeroAllocationSkip), "How to treat a 0 allocation: skip or evaluate")
	f.BoolVar(&c.verbose, "v", false, "log debug information to stderr")
}

func (c *evaluateCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	out := c.out
	if out == nil {
		out = os.Stdout
	}

	policy, err := domain.ParseZeroAllocationPolicy(c.zeroPolicy)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	p, err := portfoliofile.Load(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	service := rebalance.NewRebalanceService(nil, nil, console.NewRenderer(out), policy, cliLogger(c.verbose))

	fmt.Fprintf(out, "Analyzing %d holdings from %s\n", len(p.Holdings), c.file)
	result, err := service.Evaluate(ctx, rebalance.EvaluateInput{
		Holdings:    p.Holdings,
		Allocations: p.Allocations,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error evaluating portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Fprintf(out, "Total portfolio value: $%s\n", result.TotalValue.StringFixed(2))
	fmt.Fprintf(out, "%d holdings analyzed\n", result.Decisions.Len())
	return subcommands.ExitSuccess
}

func cliLogger(verbose bool) zerolog.Logger {
	level := "warn"
	if verbose {
		level = "debug"
	}
	return logger.New(logger.Config{Level: level, Pretty: true, Out: os.Stderr})
}
