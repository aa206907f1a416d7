package tradelog

import "time"

// This file is the read-only reporting side of the ledger. Nothing here
// mutates rows.

// PositionsReport is a point-in-time view of the ledger's open lots.
type PositionsReport struct {
	Date    Date
	Time    time.Time // generation time
	Lots    []Row     // open lots, copies, in ledger order
	Symbols []SymbolPosition
	Total   Money // total entry value across all open lots
}

// SymbolPosition aggregates a symbol's open lots.
type SymbolPosition struct {
	Symbol        string
	NetQuantity   Quantity // signed: long positive, short negative
	AvgEntryPrice Money    // open-quantity-weighted average entry price
	TotalValue    Money    // |net quantity| x average entry price
	MarketPrice   Money    // optional, zero unless quotes were fetched
	Since         Date     // earliest entry date among open lots
}

// OpenPositions returns copies of all open or partially-open rows, in
// ledger order. An empty ledger yields an empty result, never an error.
func (l *Ledger) OpenPositions() []Row {
	var open []Row
	for r := range l.Rows() {
		if r.Open() {
			open = append(open, *r)
		}
	}
	return open
}

// PositionSummary aggregates open lots per symbol using the same weighted
// average as consolidation: avg = sum(qty_i * price_i) / sum(qty_i) over the
// open quantity of each lot.
func (l *Ledger) PositionSummary() []SymbolPosition {
	var summary []SymbolPosition
	for symbol := range l.Symbols() {
		var openQty, netQty Quantity
		var value Money
		var since Date
		for r := range l.SymbolRows(symbol) {
			if !r.Open() {
				continue
			}
			available := r.Available()
			openQty = openQty.Add(available)
			value = value.Add(r.EntryPrice.Mul(available))
			if r.Direction == Short {
				netQty = netQty.Sub(available)
			} else {
				netQty = netQty.Add(available)
			}
			if since.IsZero() || r.EntryDate.Before(since) {
				since = r.EntryDate
			}
		}
		if openQty.IsZero() {
			continue
		}
		summary = append(summary, SymbolPosition{
			Symbol:        symbol,
			NetQuantity:   netQty,
			AvgEntryPrice: value.Div(openQty),
			TotalValue:    value,
			Since:         since,
		})
	}
	return summary
}

// NewPositionsReport builds the full open-position report for the ledger.
func (l *Ledger) NewPositionsReport() *PositionsReport {
	report := &PositionsReport{
		Date:    Today(),
		Time:    time.Now(),
		Lots:    l.OpenPositions(),
		Symbols: l.PositionSummary(),
	}
	for _, p := range report.Symbols {
		report.Total = report.Total.Add(p.TotalValue)
	}
	return report
}
