// Command rebalance evaluates a portfolio file and prints buy/sell signals.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(&evaluateCmd{}, "portfolio")
	subcommands.Register(&totalCmd{}, "portfolio")

	flag.Parse()
	os.Exit(int(subcommands.Execute(context.Background())))
}
