// Package cmd implements the CLI application to maintain a trade ledger.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/mjacinto/tradelog"
)

// Commands lists the subcommands of the application.
// A main package registers them on a commander and executes the selected one.
var Commands = []subcommands.Command{
	&importCmd{},
	&positionsCmd{},
	&rowsCmd{},
	&tradesCmd{},
	&fmtCmd{},
	&quoteCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataPath = flag.String("data", ".", "Path to the data directory holding ledger files")

// DecodeLedger loads the ledger selected by name (or the only one) from the
// data directory.
func DecodeLedger(name string) (*tradelog.Ledger, error) {
	ledger, err := tradelog.FindLedger(*dataPath, name)
	if err != nil {
		return nil, fmt.Errorf("could not load ledger: %w", err)
	}
	return ledger, nil
}

// SaveLedger persists the ledger back into the data directory.
func SaveLedger(ledger *tradelog.Ledger) error {
	return tradelog.SaveLedger(*dataPath, ledger)
}

// printMarkdown renders markdown content for the terminal, falling back to
// the raw text when rendering fails (e.g. output is not a terminal style).
func printMarkdown(content string) {
	out, err := glamour.Render(content, "auto")
	if err != nil {
		fmt.Println(content)
		return
	}
	fmt.Print(out)
}

// fail prints an error and returns the failure exit status.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, "Error:", err)
	return subcommands.ExitFailure
}
