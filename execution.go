package tradelog

import (
	"fmt"
	"strings"
)

// Direction is the side of a trade: buy-side intent (Long) or sell-side
// intent (Short). It is independent of whether the trade opens or closes a
// position; the matcher decides that.
type Direction int

const (
	Long Direction = iota
	Short
)

func (d Direction) String() string {
	switch d {
	case Long:
		return "LONG"
	case Short:
		return "SHORT"
	default:
		return "unknown"
	}
}

// Opposite returns the other side.
func (d Direction) Opposite() Direction {
	if d == Long {
		return Short
	}
	return Long
}

// Sign returns +1 for Long and -1 for Short, the sign convention used by
// net-balance arithmetic. Stored quantities are unsigned magnitudes;
// direction alone carries the sign.
func (d Direction) Sign() int {
	if d == Short {
		return -1
	}
	return 1
}

// ParseDirection parses a direction string at the ingestion boundary.
// Broker reports say BUY/SELL, the ledger says LONG/SHORT; both are
// accepted here and never propagated as strings into the engine.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "LONG", "BUY":
		return Long, nil
	case "SHORT", "SELL":
		return Short, nil
	default:
		return 0, fmt.Errorf("%w: unknown direction %q", ErrInvalidInput, s)
	}
}

// MarshalJSON implements the json.Marshaler interface for Direction.
func (d Direction) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Direction) UnmarshalJSON(bytes []byte) error {
	s := strings.Trim(string(bytes), `"`)
	parsed, err := ParseDirection(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Execution is one fill as reported by the source document.
//
// Symbol is an opaque instrument identifier; option descriptors may contain
// embedded spaces (e.g. "IONQ 16MAY25 30 C"). Option prices arrive from the
// extractor already scaled per contract (x100).
type Execution struct {
	Symbol    string
	Date      Date
	Time      TimeOfDay
	Quantity  Quantity
	Price     Money
	Direction Direction
}

// Validate checks an execution for correctness.
func (e Execution) Validate() error {
	if e.Symbol == "" {
		return fmt.Errorf("%w: execution has no symbol", ErrInvalidInput)
	}
	if e.Date.IsZero() {
		return fmt.Errorf("%w: execution %s has no date", ErrInvalidInput, e.Symbol)
	}
	if !e.Quantity.IsPositive() {
		return fmt.Errorf("%w: execution %s on %s has non-positive quantity %s", ErrInvalidInput, e.Symbol, e.Date, e.Quantity)
	}
	if !e.Price.IsPositive() {
		return fmt.Errorf("%w: execution %s on %s has non-positive price %s", ErrInvalidInput, e.Symbol, e.Date, e.Price)
	}
	return nil
}

func (e Execution) String() string {
	return fmt.Sprintf("%s %s %s @ %s (%s %s)", e.Direction, e.Quantity, e.Symbol, e.Price, e.Date, e.Time)
}
