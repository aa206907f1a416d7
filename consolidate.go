package tradelog

import (
	"fmt"
	"slices"
	"strings"
)

// Trade is one consolidated trade: all of a day's executions for one
// instrument in one direction, merged into a single weighted-average fill.
type Trade struct {
	Symbol    string
	Date      Date
	Time      TimeOfDay
	Quantity  Quantity
	Price     Money // quantity-weighted average across the group
	Direction Direction
}

func (t Trade) String() string {
	return fmt.Sprintf("%s %s %s @ %s (%s %s)", t.Direction, t.Quantity, t.Symbol, t.Price, t.Date, t.Time)
}

// tradeKey identifies a consolidation group.
type tradeKey struct {
	symbol    string
	date      Date
	direction Direction
}

// Consolidate merges raw executions into one trade per (symbol, date,
// direction) group. The price is the quantity-weighted average of the
// group's fills. The representative time is the earliest fill for Long
// groups and the latest fill for Short groups: it biases a day's buys
// toward the opening fill and a day's sells toward the closing one, which
// matters later when lots compare as same-day-or-earlier.
//
// Consolidate is a pure transform. The output order is unspecified; callers
// must apply SortTrades before matching.
func Consolidate(executions []Execution) ([]Trade, error) {
	groups := make(map[tradeKey]Trade)
	var order []tradeKey // group first-seen order, for deterministic output

	for _, e := range executions {
		if err := e.Validate(); err != nil {
			return nil, err
		}

		key := tradeKey{e.Symbol, e.Date, e.Direction}
		existing, ok := groups[key]
		if !ok {
			groups[key] = Trade{
				Symbol:    e.Symbol,
				Date:      e.Date,
				Time:      e.Time,
				Quantity:  e.Quantity,
				Price:     e.Price,
				Direction: e.Direction,
			}
			order = append(order, key)
			continue
		}

		total := existing.Quantity.Add(e.Quantity)
		// weighted average: (q1*p1 + q2*p2) / (q1+q2)
		weighted := existing.Price.Mul(existing.Quantity).Add(e.Price.Mul(e.Quantity)).Div(total)

		t := existing
		t.Quantity = total
		t.Price = weighted
		switch e.Direction {
		case Long:
			if e.Time.Before(existing.Time) {
				t.Time = e.Time
			}
		case Short:
			if e.Time.After(existing.Time) {
				t.Time = e.Time
			}
		}
		groups[key] = t
	}

	trades := make([]Trade, 0, len(order))
	for _, key := range order {
		trades = append(trades, groups[key])
	}
	return trades, nil
}

// SortTrades sorts trades in the canonical matching order: ascending by
// (date, time), then by symbol, then Long before Short. The symbol and
// direction keys are the documented deterministic tie-break for trades
// sharing an identical timestamp; the sort is stable so equal keys keep
// their input order.
func SortTrades(trades []Trade) {
	slices.SortStableFunc(trades, CompareTrades)
}

// CompareTrades is the ordering used by SortTrades.
func CompareTrades(a, b Trade) int {
	if a.Date != b.Date {
		if a.Date.Before(b.Date) {
			return -1
		}
		return 1
	}
	if c := a.Time.seconds() - b.Time.seconds(); c != 0 {
		return c
	}
	if c := strings.Compare(a.Symbol, b.Symbol); c != 0 {
		return c
	}
	return int(a.Direction) - int(b.Direction)
}
