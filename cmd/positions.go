package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/mjacinto/tradelog"
	"github.com/mjacinto/tradelog/renderer"
)

type positionsCmd struct {
	ledgerFile string
	quotes     bool
}

func (*positionsCmd) Name() string     { return "positions" }
func (*positionsCmd) Synopsis() string { return "report open positions and per-symbol balances" }
func (*positionsCmd) Usage() string {
	return `tlf positions [-l <ledger>] [-quotes]

  Lists every open or partially-open lot, plus a per-symbol summary with
  net quantity, weighted average entry price, total value and the date the
  position was opened. With -quotes, the latest market price of each plain
  ticker is fetched and added to the summary.
`
}

func (p *positionsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.ledgerFile, "l", "", "Ledger to report on. Defaults to the only ledger if one exists.")
	f.BoolVar(&p.quotes, "quotes", false, "Fetch latest market prices for open symbols.")
}

func (p *positionsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger(p.ledgerFile)
	if err != nil {
		return fail(err)
	}

	report := ledger.NewPositionsReport()
	if p.quotes {
		for symbol, err := range tradelog.FetchQuotes(report.Symbols) {
			fmt.Fprintf(os.Stderr, "Warning: no quote for %s: %v\n", symbol, err)
		}
	}

	printMarkdown(renderer.PositionsMarkdown(renderer.NewPositions(ledger.Name(), report)))
	return subcommands.ExitSuccess
}
