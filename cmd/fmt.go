package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type fmtCmd struct {
	ledgerFile string
}

func (*fmtCmd) Name() string     { return "fmt" }
func (*fmtCmd) Synopsis() string { return "rewrite a ledger file in canonical form" }
func (*fmtCmd) Usage() string {
	return `tlf fmt [-l <name>]

  Reads the ledger, then writes it back sorted and canonically encoded.
  Useful after hand edits, to normalize key order and row order.
`
}

func (p *fmtCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.ledgerFile, "l", "", "Ledger name to format.")
}

func (p *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger(p.ledgerFile)
	if err != nil {
		return fail(err)
	}
	if err := SaveLedger(ledger); err != nil {
		return fail(err)
	}
	fmt.Printf("Formatted ledger %q (%d rows).\n", ledger.Name(), ledger.Len())
	return subcommands.ExitSuccess
}
