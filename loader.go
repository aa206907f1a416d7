package tradelog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DefaultLedgerName is the ledger used when the data directory holds none.
const DefaultLedgerName = "master"

// FindLedger returns the unique ledger matching the name under the data
// directory. With an empty query it returns the only ledger found, or an
// empty default ledger when the directory holds none yet.
func FindLedger(path, query string) (*Ledger, error) {
	ledgerPaths, err := findLedgerPaths(path, query)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	switch len(ledgerPaths) {
	case 0:
		if query == "" {
			l := NewLedger()
			l.name = DefaultLedgerName
			return l, nil
		}
		return nil, fmt.Errorf("could not find ledger %q", query)
	case 1:
		return loadLedgerFile(path, ledgerPaths[0])
	default:
		if query == "" {
			return nil, fmt.Errorf("multiple ledgers found, specify one with -l")
		}
		return nil, fmt.Errorf("multiple ledgers found for %q", query)
	}
}

// loadLedgerFile opens, decodes, and names a ledger from a given file path.
func loadLedgerFile(dataPath, fullPath string) (*Ledger, error) {
	relPath, err := filepath.Rel(dataPath, fullPath)
	if err != nil {
		return nil, fmt.Errorf("could not determine relative path for %q: %w", fullPath, err)
	}

	f, err := os.Open(fullPath)
	if err != nil {
		return nil, fmt.Errorf("could not open ledger file %q: %w", fullPath, err)
	}
	defer f.Close()

	ledger, err := DecodeLedger(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode ledger file %q: %w", fullPath, err)
	}
	ledger.name = strings.TrimSuffix(relPath, ".jsonl")
	return ledger, nil
}

// SaveLedger saves a ledger to its file under the data directory, derived
// from the ledger's name (a ledger named "master" is saved to
// "<path>/master.jsonl").
//
// The write goes to a temporary file first and is renamed into place: a run
// either persists the fully matched ledger or leaves the previous file
// untouched.
func SaveLedger(path string, ledger *Ledger) error {
	if ledger.Name() == "" {
		return fmt.Errorf("cannot save ledger with an empty name")
	}

	filePath := filepath.Join(path, ledger.Name()+".jsonl")
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("could not create directory for ledger %q: %w", filePath, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(filePath), "."+filepath.Base(filePath)+".*")
	if err != nil {
		return fmt.Errorf("error creating temporary ledger file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := EncodeLedger(tmp, ledger); err != nil {
		tmp.Close()
		return fmt.Errorf("error writing ledger file %q: %w", filePath, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("error closing ledger file %q: %w", filePath, err)
	}
	return os.Rename(tmp.Name(), filePath)
}

// findLedgerPaths scans the data directory for ledger files matching the query.
// A ledger name is its relative path without the .jsonl extension.
func findLedgerPaths(path, query string) ([]string, error) {
	var ledgers []string

	err := filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(p, ".jsonl") {
			relPath, err := filepath.Rel(path, p)
			if err != nil {
				// This should not happen if p is in path
				return err
			}
			ledgerName := strings.TrimSuffix(relPath, ".jsonl")
			if strings.HasPrefix(ledgerName, ".") {
				return nil // skip archives and hidden files
			}
			if query == "" || ledgerName == query {
				ledgers = append(ledgers, p)
			}
		}
		return nil
	})

	return ledgers, err
}
