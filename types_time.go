package tradelog

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// TimeFormat is the format used to represent times of day as strings.
const TimeFormat = "15:04:05"

// TimeOfDay represents a local time of day with second resolution.
//
// Executions carry no timezone; the time is whatever the broker report says.
type TimeOfDay struct {
	h, m, s int
}

// NewTimeOfDay returns a normalized TimeOfDay for the given hour, minute and second.
func NewTimeOfDay(hour, minute, second int) TimeOfDay {
	t := time.Date(0, 1, 1, hour, minute, second, 0, time.UTC)
	return TimeOfDay{t.Hour(), t.Minute(), t.Second()}
}

// Hour returns the hour of the time.
func (t TimeOfDay) Hour() int { return t.h }

// Minute returns the minute of the time.
func (t TimeOfDay) Minute() int { return t.m }

// Second returns the second of the time.
func (t TimeOfDay) Second() int { return t.s }

// String formats the time as HH:MM:SS.
func (t TimeOfDay) String() string { return fmt.Sprintf("%02d:%02d:%02d", t.h, t.m, t.s) }

// IsZero returns true if the time is the zero value (midnight).
func (t TimeOfDay) IsZero() bool { return t.h == 0 && t.m == 0 && t.s == 0 }

// seconds is the number of seconds since midnight, used for comparisons.
func (t TimeOfDay) seconds() int { return t.h*3600 + t.m*60 + t.s }

// Before reports whether the time t is before x.
func (t TimeOfDay) Before(x TimeOfDay) bool { return t.seconds() < x.seconds() }

// After reports whether the time t is after x.
func (t TimeOfDay) After(x TimeOfDay) bool { return t.seconds() > x.seconds() }

// ParseTimeOfDay parses a TimeOfDay from a HH:MM:SS string.
func ParseTimeOfDay(str string) (TimeOfDay, error) {
	str = strings.TrimSpace(str)
	on, err := time.Parse(TimeFormat, str)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("invalid time %q want format %q: %w", str, TimeFormat, err)
	}
	return NewTimeOfDay(on.Clock()), nil
}

// MustParseTimeOfDay is like ParseTimeOfDay but panics on error.
func MustParseTimeOfDay(str string) TimeOfDay {
	t, err := ParseTimeOfDay(str)
	if err != nil {
		panic(err.Error())
	}
	return t
}

// UnmarshalJSON implements the json specific way to unmarshal a time from a json string.
func (t *TimeOfDay) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	parsed, err := ParseTimeOfDay(str)
	if err != nil {
		return fmt.Errorf("invalid time %q in data file: %w", str, err)
	}
	*t = parsed
	return nil
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	str := t.String()
	return json.Marshal(&str)
}

var _ json.Marshaler = (*TimeOfDay)(nil)
var _ json.Unmarshaler = (*TimeOfDay)(nil)
