package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/mjacinto/tradelog"
)

type quoteCmd struct{}

func (*quoteCmd) Name() string     { return "quote" }
func (*quoteCmd) Synopsis() string { return "fetch the latest market price for symbols" }
func (*quoteCmd) Usage() string {
	return `tlf quote <symbol> [<symbol>...]

  Fetches and prints the latest market price for each symbol.
  Quotes are cached on disk for the day.
`
}

func (p *quoteCmd) SetFlags(f *flag.FlagSet) {}

func (p *quoteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one symbol is required.")
		return subcommands.ExitUsageError
	}

	status := subcommands.ExitSuccess
	for _, symbol := range f.Args() {
		price, err := tradelog.LatestQuote(symbol)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			status = subcommands.ExitFailure
			continue
		}
		fmt.Printf("%-8s %s\n", symbol, price)
	}
	return status
}
