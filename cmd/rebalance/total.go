package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"

	"github.com/simaogato/rebalancer-backend/internal/adapter/portfoliofile"
	"github.com/simaogato/rebalancer-backend/internal/usecase/evaluator"
)

// totalCmd holds the flags for the 'total' subcommand.
type totalCmd struct {
	file string

	out io.Writer
}

func (*totalCmd) Name() string     { return "total" }
func (*totalCmd) Synopsis() string { return "print the total value of a portfolio file" }
func (*totalCmd) Usage() string {
	return `rebalance total -file <portfolio.yaml>

  Prints the sum of price × shares over every holding.
`
}

func (c *totalCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "file", "portfolio.yaml", "Path to the portfolio YAML file")
}

func (c *totalCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	out := c.out
	if out == nil {
		out = os.Stdout
	}

	p, err := portfoliofile.Load(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Fprintln(out, evaluator.New(p.Holdings, p.Allocations).TotalValue().String())
	return subcommands.ExitSuccess
}
