package renderer

import (
	"github.com/mjacinto/tradelog"
)

// Positions is the view model behind the open-positions report template.
// Numbers keep the engine's exact decimal types, which already know how to
// render themselves.
type Positions struct {
	// Name of the ledger.
	Name string `json:"name,omitempty"`
	// Date of the report.
	Date tradelog.Date `json:"date"`
	// Lots lists every open or partially-open lot.
	Lots []PositionLot `json:"lots"`
	// Symbols aggregates the open lots per instrument.
	Symbols []PositionSymbol `json:"symbols"`
	// TotalValue is the entry value of the whole open book.
	TotalValue tradelog.Money `json:"totalValue"`
	// Quoted is true when market prices were fetched for this report.
	Quoted bool `json:"quoted,omitempty"`
}

// PositionLot represents one open lot.
type PositionLot struct {
	Symbol     string             `json:"symbol"`
	Direction  tradelog.Direction `json:"direction"`
	Quantity   tradelog.Quantity  `json:"quantity"` // remaining open quantity
	EntryPrice tradelog.Money     `json:"entryPrice"`
	EntryDate  tradelog.Date      `json:"entryDate"`
	EntryTime  tradelog.TimeOfDay `json:"entryTime"`
	Notes      string             `json:"notes,omitempty"`
}

// PositionSymbol represents one instrument's aggregated open position.
type PositionSymbol struct {
	Symbol      string            `json:"symbol"`
	NetQuantity tradelog.Quantity `json:"netQuantity"`
	AvgPrice    tradelog.Money    `json:"avgPrice"`
	TotalValue  tradelog.Money    `json:"totalValue"`
	MarketPrice tradelog.Money    `json:"marketPrice,omitempty"`
	Since       tradelog.Date     `json:"since"`
}

// NewPositions builds the view model from an engine report.
func NewPositions(name string, report *tradelog.PositionsReport) *Positions {
	p := &Positions{
		Name:       name,
		Date:       report.Date,
		Lots:       make([]PositionLot, 0, len(report.Lots)),
		Symbols:    make([]PositionSymbol, 0, len(report.Symbols)),
		TotalValue: report.Total,
	}

	for _, lot := range report.Lots {
		p.Lots = append(p.Lots, PositionLot{
			Symbol:     lot.Symbol,
			Direction:  lot.Direction,
			Quantity:   lot.Available(),
			EntryPrice: lot.EntryPrice,
			EntryDate:  lot.EntryDate,
			EntryTime:  lot.EntryTime,
			Notes:      lot.Notes,
		})
	}

	for _, sym := range report.Symbols {
		if !sym.MarketPrice.IsZero() {
			p.Quoted = true
		}
		p.Symbols = append(p.Symbols, PositionSymbol{
			Symbol:      sym.Symbol,
			NetQuantity: sym.NetQuantity,
			AvgPrice:    sym.AvgEntryPrice,
			TotalValue:  sym.TotalValue,
			MarketPrice: sym.MarketPrice,
			Since:       sym.Since,
		})
	}
	return p
}
