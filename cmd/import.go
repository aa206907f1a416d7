package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/mjacinto/tradelog"
)

type importCmd struct {
	file       string
	ledgerFile string
	force      bool
	dryRun     bool
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "ingest a CSV of raw executions into the ledger" }
func (*importCmd) Usage() string {
	return `tlf import -f <executions.csv> [-l <ledger>] [-force] [-n]

  Reads raw executions from a CSV file, consolidates same-day same-symbol
  same-side fills into weighted-average trades, matches them FIFO against
  the ledger, and saves the updated ledger.

  A source file that was already ingested (identified by content digest) is
  refused unless -force is given. With -n the result is printed but nothing
  is saved.
`
}

func (p *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.file, "f", "", "Executions CSV file to ingest.")
	f.StringVar(&p.ledgerFile, "l", "", "Ledger to update. Defaults to the only ledger if one exists.")
	f.BoolVar(&p.force, "force", false, "Ingest even if this file was already ingested.")
	f.BoolVar(&p.dryRun, "n", false, "Dry run: match in memory, save nothing.")
}

func (p *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.file == "" {
		fmt.Fprintln(os.Stderr, "Error: -f <executions.csv> is required.")
		return subcommands.ExitUsageError
	}

	content, err := os.ReadFile(p.file)
	if err != nil {
		return fail(err)
	}
	digest, err := tradelog.Digest(bytes.NewReader(content))
	if err != nil {
		return fail(err)
	}

	archive, err := tradelog.OpenArchive(*dataPath)
	if err != nil {
		return fail(err)
	}
	if entry, ok := archive.Contains(digest); ok && !p.force {
		fmt.Fprintf(os.Stderr, "Error: %q was already ingested on %s (as %q); use -force to re-ingest.\n",
			p.file, entry.Date, entry.Source)
		return subcommands.ExitFailure
	}

	executions, err := tradelog.ImportExecutions(bytes.NewReader(content))
	if err != nil {
		return fail(err)
	}
	if len(executions) == 0 {
		fmt.Fprintf(os.Stderr, "Warning: no executions found in %q.\n", p.file)
		return subcommands.ExitSuccess
	}

	trades, err := tradelog.Consolidate(executions)
	if err != nil {
		return fail(err)
	}
	tradelog.SortTrades(trades)

	ledger, err := DecodeLedger(p.ledgerFile)
	if err != nil {
		return fail(err)
	}
	if err := ledger.Match(trades); err != nil {
		return fail(err)
	}

	fmt.Printf("Consolidated %d executions into %d trades; ledger %q now has %d rows.\n",
		len(executions), len(trades), ledger.Name(), ledger.Len())

	if p.dryRun {
		fmt.Println("Dry run: nothing saved.")
		return subcommands.ExitSuccess
	}

	// The ledger is saved only after the whole batch matched in memory.
	if err := SaveLedger(ledger); err != nil {
		return fail(err)
	}
	if err := archive.Record(tradelog.ArchiveEntry{
		Digest:     digest,
		Source:     p.file,
		Date:       tradelog.Today(),
		Executions: len(executions),
	}); err != nil {
		return fail(err)
	}

	fmt.Printf("Saved ledger %q.\n", ledger.Name())
	return subcommands.ExitSuccess
}
