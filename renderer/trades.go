package renderer

import (
	"bytes"
	"fmt"

	"github.com/mjacinto/tradelog"
	md "github.com/nao1215/markdown"
)

// TradesMarkdown renders a list of consolidated trades as a markdown table.
func TradesMarkdown(title string, trades []tradelog.Trade) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(title)
	if len(trades) == 0 {
		doc.PlainText("No trades.")
		return doc.String()
	}

	table := md.TableSet{
		Header: []string{"Symbol", "Side", "Qty", "Avg Price", "Time", "Date"},
	}
	for _, t := range trades {
		table.Rows = append(table.Rows, []string{
			t.Symbol,
			t.Direction.String(),
			t.Quantity.String(),
			t.Price.String(),
			t.Time.String(),
			t.Date.String(),
		})
	}
	doc.Table(table)

	return doc.String()
}

// RowsMarkdown renders ledger rows as a markdown table in the master-sheet
// column layout.
func RowsMarkdown(title string, rows []tradelog.Row) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(title)
	if len(rows) == 0 {
		doc.PlainText("No rows.")
		return doc.String()
	}

	table := md.TableSet{
		Header: []string{"Symbol", "Qty", "Side", "Entry Price", "Entry Date", "Notes", "Exit Qty", "Exit Price", "Exit Date"},
	}
	for _, r := range rows {
		exitQty, exitPrice, exitDate := "", "", ""
		if r.Exit != nil {
			exitQty = r.Exit.Quantity.String()
			exitPrice = r.Exit.Price.String()
			exitDate = r.Exit.Date.String()
		}
		table.Rows = append(table.Rows, []string{
			r.Symbol,
			r.EntryQuantity.String(),
			r.Direction.String(),
			r.EntryPrice.String(),
			fmt.Sprintf("%s %s", r.EntryDate, r.EntryTime),
			r.Notes,
			exitQty,
			exitPrice,
			exitDate,
		})
	}
	doc.Table(table)

	return doc.String()
}
