package tradelog

import (
	"fmt"
	"log"
)

// Match applies consolidated trades to the ledger using First-In-First-Out
// matching. Trades must already be in SortTrades order: matching is
// inherently order-dependent, and the matcher verifies the precondition
// rather than sorting on the caller's behalf.
//
// Matching never fails on unmatched quantity: whatever cannot be offset
// against open opposite-side lots opens a new lot. The whole batch is
// applied in memory; persistence is the caller's concern, after Match
// returns successfully.
func (l *Ledger) Match(trades []Trade) error {
	for i, trade := range trades {
		if i > 0 && CompareTrades(trades[i-1], trade) > 0 {
			return fmt.Errorf("%w: trades are not sorted: %s before %s", ErrInvalidInput, trades[i-1], trade)
		}
		if err := l.Apply(trade); err != nil {
			return err
		}
	}
	return nil
}

// Apply matches a single consolidated trade against the ledger.
//
// The trade's quantity is walked across the open opposite-direction lots of
// its symbol, oldest entry first, restricted to lots entered on or before
// the trade date. Each lot absorbs min(remaining, available): its exit
// quantity accumulates while its exit price, date and time are overwritten
// with this trade's values. A lot closed in two partial fills therefore
// reports only the last fill's price as "the" exit price; this
// last-write-wins rule is deliberate and must not be averaged away.
//
// Any quantity left after the walk opens a new lot at the trade's price. A
// short lot opened without having consumed any long lot is an uncovered
// short and is annotated as such.
func (l *Ledger) Apply(trade Trade) error {
	if !trade.Quantity.IsPositive() {
		return fmt.Errorf("%w: trade %s has non-positive quantity", ErrInvalidInput, trade)
	}

	// Corrupted rows must fail the whole batch, even ones the walk below
	// would skip as already closed.
	for row := range l.SymbolRows(trade.Symbol) {
		if err := row.check(); err != nil {
			return err
		}
	}

	qty := trade.Quantity
	covered := false

	for _, row := range l.openCandidates(trade.Symbol, trade.Direction.Opposite(), trade.Date) {
		available := row.Available()
		if !available.IsPositive() {
			continue
		}

		offset := qty.Min(available)
		prev := Q(0)
		if row.Exit != nil {
			prev = row.Exit.Quantity
		}
		row.Exit = &Exit{
			Quantity: prev.Add(offset),
			Price:    trade.Price,
			Date:     trade.Date,
			Time:     trade.Time,
		}
		covered = true

		qty = qty.Sub(offset)
		if qty.IsZero() {
			break
		}
	}

	if qty.IsPositive() {
		row := &Row{
			Symbol:        trade.Symbol,
			Direction:     trade.Direction,
			EntryQuantity: qty,
			EntryPrice:    trade.Price,
			EntryDate:     trade.Date,
			EntryTime:     trade.Time,
		}
		if trade.Direction == Short && !covered {
			row.Notes = ShortPositionNote
			log.Printf("%s: uncovered short of %s %s", trade.Date, qty, trade.Symbol)
		}
		l.Append(row)
	}

	return nil
}
