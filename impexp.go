package tradelog

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// This file handles the import/export formats shared with the spreadsheet:
// raw executions come in as CSV, consolidated trades and the ledger go out
// as CSV in the master-sheet column layout.

// executionHeader is the column layout of an executions CSV file.
var executionHeader = []string{"Symbol", "Quantity", "Side", "Price", "Time", "Date"}

// ledgerHeader is the master-sheet column layout for ledger exports.
var ledgerHeader = []string{
	"Symbol", "Qty", "Side", "Entry Price", "Entry Time", "Entry Date",
	"Notes", "Exit Qty", "Exit Price", "Exit Time", "Exit Date",
}

// ImportExecutions reads raw executions from a CSV stream with the
// executionHeader columns. Column order is taken from the header line, so
// reordered files import fine.
func ImportExecutions(r io.Reader) ([]Execution, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read executions header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}
	for _, name := range executionHeader {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("%w: executions file is missing column %q", ErrInvalidInput, name)
		}
	}

	var executions []Execution
	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("could not read executions line %d: %w", line, err)
		}

		e, err := parseExecutionRecord(record, col)
		if err != nil {
			return nil, fmt.Errorf("executions line %d: %w", line, err)
		}
		executions = append(executions, e)
	}
	return executions, nil
}

func parseExecutionRecord(record []string, col map[string]int) (Execution, error) {
	field := func(name string) string { return strings.TrimSpace(record[col[name]]) }

	qty, err := strconv.Atoi(field("Quantity"))
	if err != nil {
		return Execution{}, fmt.Errorf("%w: invalid quantity %q: %v", ErrInvalidInput, field("Quantity"), err)
	}
	price, err := decimal.NewFromString(field("Price"))
	if err != nil {
		return Execution{}, fmt.Errorf("%w: invalid price %q: %v", ErrInvalidInput, field("Price"), err)
	}
	direction, err := ParseDirection(field("Side"))
	if err != nil {
		return Execution{}, err
	}
	day, err := ParseDate(field("Date"))
	if err != nil {
		return Execution{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	tod, err := ParseTimeOfDay(field("Time"))
	if err != nil {
		return Execution{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	e := Execution{
		Symbol:    field("Symbol"),
		Date:      day,
		Time:      tod,
		Quantity:  Q(qty),
		Price:     M(price, DefaultCurrency),
		Direction: direction,
	}
	return e, e.Validate()
}

// ExportTrades writes consolidated trades as CSV in the executionHeader
// layout, one line per trade.
func ExportTrades(w io.Writer, trades []Trade) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(executionHeader); err != nil {
		return fmt.Errorf("could not write trades header: %w", err)
	}
	for _, t := range trades {
		record := []string{
			t.Symbol,
			t.Quantity.String(),
			t.Direction.String(),
			t.Price.Decimal().String(),
			t.Time.String(),
			t.Date.String(),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("could not write trade %s: %w", t, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportLedgerCSV writes the ledger as CSV in the master-sheet layout, one
// line per lot, exit columns empty while a lot is fully open.
func ExportLedgerCSV(w io.Writer, ledger *Ledger) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ledgerHeader); err != nil {
		return fmt.Errorf("could not write ledger header: %w", err)
	}
	for row := range ledger.Rows() {
		record := []string{
			row.Symbol,
			row.EntryQuantity.String(),
			row.Direction.String(),
			row.EntryPrice.Decimal().String(),
			row.EntryTime.String(),
			row.EntryDate.String(),
			row.Notes,
			"", "", "", "",
		}
		if row.Exit != nil {
			record[7] = row.Exit.Quantity.String()
			record[8] = row.Exit.Price.Decimal().String()
			record[9] = row.Exit.Time.String()
			record[10] = row.Exit.Date.String()
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("could not write ledger row %s: %w", row, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
