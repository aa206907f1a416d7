package tradelog

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"sort"
)

// ShortPositionNote annotates a lot opened by a sell with no long lots left
// to cover: an uncovered short.
const ShortPositionNote = "Short Position"

// Exit records the closed portion of a lot. Quantity accumulates across
// partial exits; Price, Date and Time are overwritten by the most recent
// matching trade (last-write-wins, see Match).
type Exit struct {
	Quantity Quantity
	Price    Money
	Date     Date
	Time     TimeOfDay
}

// Row is one position lot in the ledger. Entry fields are fixed at
// creation; only the Exit block mutates, and only through the matcher.
// A nil Exit means the lot is fully open. Rows are never deleted.
type Row struct {
	Symbol        string
	Direction     Direction
	EntryQuantity Quantity
	EntryPrice    Money
	EntryDate     Date
	EntryTime     TimeOfDay
	Notes         string
	Exit          *Exit
}

// Open reports whether the lot still has unmatched quantity.
func (r *Row) Open() bool {
	return r.Exit == nil || r.Exit.Quantity.LessThan(r.EntryQuantity)
}

// Available returns the quantity of this lot not yet closed.
func (r *Row) Available() Quantity {
	if r.Exit == nil {
		return r.EntryQuantity
	}
	return r.EntryQuantity.Sub(r.Exit.Quantity)
}

// check verifies the row against corrupted prior state.
func (r *Row) check() error {
	if r.Exit != nil && r.Exit.Quantity.GreaterThan(r.EntryQuantity) {
		return fmt.Errorf("%w: %s lot of %s entered %s has exit quantity %s > entry quantity %s",
			ErrInconsistentLedger, r.Direction, r.Symbol, r.EntryDate, r.Exit.Quantity, r.EntryQuantity)
	}
	return nil
}

func (r *Row) String() string {
	s := fmt.Sprintf("%s %s %s @ %s (%s %s)", r.Direction, r.EntryQuantity, r.Symbol, r.EntryPrice, r.EntryDate, r.EntryTime)
	if r.Exit != nil {
		s += fmt.Sprintf(" exit %s @ %s (%s %s)", r.Exit.Quantity, r.Exit.Price, r.Exit.Date, r.Exit.Time)
	}
	return s
}

// Ledger is the permanent record of position lots, keyed by symbol for
// efficient FIFO scans. Within a symbol, rows are kept ordered by
// (entryDate, entryTime).
//
// Ownership is strict: the matcher alone creates rows and mutates exit
// fields; reports only read.
type Ledger struct {
	rows map[string][]*Row
	name string
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{rows: make(map[string][]*Row)}
}

// Name returns the ledger's name, set when it is loaded from a file.
func (l *Ledger) Name() string { return l.name }

// SetName sets the ledger's name, used to derive its file path on save.
func (l *Ledger) SetName(name string) { l.name = name }

// Append adds rows to the ledger and maintains the per-symbol entry order.
func (l *Ledger) Append(rows ...*Row) {
	for _, r := range rows {
		l.rows[r.Symbol] = append(l.rows[r.Symbol], r)
	}
	l.stableSort()
}

// stableSort sorts each symbol's rows by entry date then entry time. The
// sort is stable: same-timestamp lots keep their original relative order.
func (l *Ledger) stableSort() {
	for _, rows := range l.rows {
		sort.SliceStable(rows, func(i, j int) bool {
			if rows[i].EntryDate != rows[j].EntryDate {
				return rows[i].EntryDate.Before(rows[j].EntryDate)
			}
			return rows[i].EntryTime.Before(rows[j].EntryTime)
		})
	}
}

// Symbols iterates over all symbols present in the ledger, sorted.
func (l *Ledger) Symbols() iter.Seq[string] {
	return func(yield func(string) bool) {
		symbols := slices.Collect(maps.Keys(l.rows))
		slices.Sort(symbols)
		for _, s := range symbols {
			if !yield(s) {
				return
			}
		}
	}
}

// Rows iterates over all rows, symbol by symbol in sorted symbol order,
// and within a symbol in entry order.
func (l *Ledger) Rows() iter.Seq[*Row] {
	return func(yield func(*Row) bool) {
		for symbol := range l.Symbols() {
			for _, r := range l.rows[symbol] {
				if !yield(r) {
					return
				}
			}
		}
	}
}

// SymbolRows iterates over the rows of one symbol in entry order.
func (l *Ledger) SymbolRows(symbol string) iter.Seq[*Row] {
	return func(yield func(*Row) bool) {
		for _, r := range l.rows[symbol] {
			if !yield(r) {
				return
			}
		}
	}
}

// Len returns the total number of rows in the ledger.
func (l *Ledger) Len() int {
	n := 0
	for _, rows := range l.rows {
		n += len(rows)
	}
	return n
}

// NetQuantity computes the signed net position for a symbol: long lots
// count their open quantity positively, short lots negatively.
func (l *Ledger) NetQuantity(symbol string) Quantity {
	var net Quantity
	for _, r := range l.rows[symbol] {
		open := r.Available()
		if r.Direction == Short {
			net = net.Sub(open)
		} else {
			net = net.Add(open)
		}
	}
	return net
}

// openCandidates returns the open or partially-open rows for a symbol on
// the given side entered on or before the given date, oldest lot first.
// The returned order is the FIFO matching order.
func (l *Ledger) openCandidates(symbol string, side Direction, onOrBefore Date) []*Row {
	var candidates []*Row
	for _, r := range l.rows[symbol] {
		if r.Direction != side || !r.Open() {
			continue
		}
		if r.EntryDate.After(onOrBefore) {
			// Chronological processing: a trade cannot close a lot entered
			// strictly later. Rows are in entry order, so stop here.
			break
		}
		candidates = append(candidates, r)
	}
	return candidates
}
