package tradelog

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// The ledger file is JSONL: one row per line, keys in a fixed order, exit
// fields omitted while a lot is fully open. It should remain human readable,
// single file, and easy to diff.

// MarshalJSON implements the json.Marshaler interface for Row with a
// canonical key order.
func (r Row) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("symbol", r.Symbol)
	w.Append("direction", r.Direction)
	w.Append("entryQuantity", r.EntryQuantity)
	w.Append("entryPrice", r.EntryPrice)
	w.Append("entryDate", r.EntryDate)
	w.Append("entryTime", r.EntryTime)
	w.Optional("notes", r.Notes)
	if r.Exit != nil {
		w.Append("exitQuantity", r.Exit.Quantity)
		w.Append("exitPrice", r.Exit.Price)
		w.Append("exitDate", r.Exit.Date)
		w.Append("exitTime", r.Exit.Time)
	}
	return w.MarshalJSON()
}

// rowLine is the decoding counterpart of Row.MarshalJSON; pointers detect
// absent exit fields.
type rowLine struct {
	Symbol        string     `json:"symbol"`
	Direction     Direction  `json:"direction"`
	EntryQuantity Quantity   `json:"entryQuantity"`
	EntryPrice    Money      `json:"entryPrice"`
	EntryDate     Date       `json:"entryDate"`
	EntryTime     TimeOfDay  `json:"entryTime"`
	Notes         string     `json:"notes,omitempty"`
	ExitQuantity  *Quantity  `json:"exitQuantity,omitempty"`
	ExitPrice     *Money     `json:"exitPrice,omitempty"`
	ExitDate      *Date      `json:"exitDate,omitempty"`
	ExitTime      *TimeOfDay `json:"exitTime,omitempty"`
}

// DecodeLedger decodes rows from a stream of JSONL data and returns a ledger
// with its per-symbol entry order restored.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	ledger := NewLedger()
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}

		var line rowLine
		if err := json.Unmarshal(lineBytes, &line); err != nil {
			return nil, fmt.Errorf("could not decode ledger row %q: %w", string(lineBytes), err)
		}
		if line.Symbol == "" {
			return nil, fmt.Errorf("%w: ledger row %q has no symbol", ErrInvalidInput, string(lineBytes))
		}

		row := &Row{
			Symbol:        line.Symbol,
			Direction:     line.Direction,
			EntryQuantity: line.EntryQuantity,
			EntryPrice:    line.EntryPrice,
			EntryDate:     line.EntryDate,
			EntryTime:     line.EntryTime,
			Notes:         line.Notes,
		}
		if line.ExitQuantity != nil {
			row.Exit = &Exit{Quantity: *line.ExitQuantity}
			if line.ExitPrice != nil {
				row.Exit.Price = *line.ExitPrice
			}
			if line.ExitDate != nil {
				row.Exit.Date = *line.ExitDate
			}
			if line.ExitTime != nil {
				row.Exit.Time = *line.ExitTime
			}
		}
		if err := row.check(); err != nil {
			return nil, err
		}
		ledger.Append(row)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}

	return ledger, nil
}

// EncodeRow marshals a single row to JSON and writes it to the writer,
// followed by a newline, in JSONL format.
func EncodeRow(w io.Writer, row *Row) error {
	data, err := json.Marshal(*row)
	if err != nil {
		return fmt.Errorf("failed to marshal ledger row: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write ledger row: %w", err)
	}
	return nil
}

// EncodeLedger persists the ledger to an io.Writer in JSONL format, symbol
// by symbol in sorted order, each symbol's rows in entry order.
func EncodeLedger(w io.Writer, ledger *Ledger) error {
	for row := range ledger.Rows() {
		if err := EncodeRow(w, row); err != nil {
			return err
		}
	}
	return nil
}
