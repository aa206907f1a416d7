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

type rowsCmd struct {
	ledgerFile string
	symbol     string
	openOnly   bool
	csv        bool
}

func (*rowsCmd) Name() string     { return "rows" }
func (*rowsCmd) Synopsis() string { return "list ledger rows" }
func (*rowsCmd) Usage() string {
	return `tlf rows [-l <ledger>] [-sym <symbol>] [-open] [-csv]

  Lists ledger rows (lots) with their entry and exit fields. Rows are shown
  symbol by symbol, in entry order. With -csv the master-sheet CSV layout is
  written to stdout instead of a table.
`
}

func (p *rowsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.ledgerFile, "l", "", "Ledger to report on. Defaults to the only ledger if one exists.")
	f.StringVar(&p.symbol, "sym", "", "Only rows of this symbol.")
	f.BoolVar(&p.openOnly, "open", false, "Only open or partially-open rows.")
	f.BoolVar(&p.csv, "csv", false, "Write the master-sheet CSV layout to stdout.")
}

func (p *rowsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger(p.ledgerFile)
	if err != nil {
		return fail(err)
	}

	if p.csv && p.symbol == "" && !p.openOnly {
		if err := tradelog.ExportLedgerCSV(os.Stdout, ledger); err != nil {
			return fail(err)
		}
		return subcommands.ExitSuccess
	}

	var rows []tradelog.Row
	for r := range ledger.Rows() {
		if p.symbol != "" && r.Symbol != p.symbol {
			continue
		}
		if p.openOnly && !r.Open() {
			continue
		}
		rows = append(rows, *r)
	}

	if p.csv {
		filtered := tradelog.NewLedger()
		for i := range rows {
			filtered.Append(&rows[i])
		}
		if err := tradelog.ExportLedgerCSV(os.Stdout, filtered); err != nil {
			return fail(err)
		}
		return subcommands.ExitSuccess
	}

	title := fmt.Sprintf("Ledger %q", ledger.Name())
	printMarkdown(renderer.RowsMarkdown(title, rows))
	return subcommands.ExitSuccess
}
