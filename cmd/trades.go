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

type tradesCmd struct {
	file string
	csv  bool
}

func (*tradesCmd) Name() string     { return "trades" }
func (*tradesCmd) Synopsis() string { return "consolidate a CSV of raw executions, without matching" }
func (*tradesCmd) Usage() string {
	return `tlf trades -f <executions.csv> [-csv]

  Consolidates raw executions into weighted-average trades and prints them
  in matching order, without touching any ledger. With -csv the consolidated
  trades are written as CSV to stdout, ready for a spreadsheet.
`
}

func (p *tradesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.file, "f", "", "Executions CSV file to consolidate.")
	f.BoolVar(&p.csv, "csv", false, "Write consolidated trades as CSV to stdout.")
}

func (p *tradesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.file == "" {
		fmt.Fprintln(os.Stderr, "Error: -f <executions.csv> is required.")
		return subcommands.ExitUsageError
	}

	in, err := os.Open(p.file)
	if err != nil {
		return fail(err)
	}
	defer in.Close()

	executions, err := tradelog.ImportExecutions(in)
	if err != nil {
		return fail(err)
	}

	trades, err := tradelog.Consolidate(executions)
	if err != nil {
		return fail(err)
	}
	tradelog.SortTrades(trades)

	if p.csv {
		if err := tradelog.ExportTrades(os.Stdout, trades); err != nil {
			return fail(err)
		}
		return subcommands.ExitSuccess
	}

	title := fmt.Sprintf("Consolidated %d executions into %d trades", len(executions), len(trades))
	printMarkdown(renderer.TradesMarkdown(title, trades))
	return subcommands.ExitSuccess
}
