// Package date provides the second-precision date value shared by the
// formatter, the calendar and the picker.
package date

import (
	"encoding/json"
	"fmt"
	"time"
)

// Value is a local timestamp truncated to whole seconds.
type Value struct {
	time.Time
}

// New wraps t, dropping sub-second precision.
func New(t time.Time) Value {
	if t.IsZero() {
		return Value{}
	}
	return Value{Time: t.Truncate(time.Second)}
}

// Of builds a Value from its fields in loc. Out of range fields normalise the
// way time.Date does.
func Of(year int, month time.Month, day, hour, min, sec int, loc *time.Location) Value {
	if loc == nil {
		loc = time.Local
	}
	return Value{Time: time.Date(year, month, day, hour, min, sec, 0, loc)}
}

// Midnight returns the start of the day holding v.
func (v Value) Midnight() Value {
	if v.IsZero() {
		return v
	}
	return Of(v.Year(), v.Month(), v.Day(), 0, 0, 0, v.Location())
}

// SameDay reports whether v and then fall on the same calendar day.
func (v Value) SameDay(then time.Time) bool {
	if v.IsZero() || then.IsZero() {
		return false
	}
	then = then.In(v.Location())
	return v.Day() == then.Day() &&
		v.Month() == then.Month() &&
		v.Year() == then.Year()
}

// SameMonth reports whether v and then fall in the same month of the same year.
func (v Value) SameMonth(then time.Time) bool {
	if v.IsZero() || then.IsZero() {
		return false
	}
	then = then.In(v.Location())
	return v.Month() == then.Month() && v.Year() == then.Year()
}

// CompareMonth orders v and then by (year, month) only.
func (v Value) CompareMonth(then time.Time) int {
	then = then.In(v.Location())
	a := v.Year()*12 + int(v.Month())
	b := then.Year()*12 + int(then.Month())
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// SetYear changes the year in place, clamping the day to the new month length.
func (v *Value) SetYear(year int) {
	v.set(year, v.Month(), v.Day())
}

// SetMonth changes the month in place, clamping the day to the month length.
func (v *Value) SetMonth(month time.Month) {
	v.set(v.Year(), month, v.Day())
}

// SetDay changes the day of month in place. Days past the end of the month
// roll over into the following month.
func (v *Value) SetDay(day int) {
	v.Time = time.Date(v.Year(), v.Month(), day, v.Hour(), v.Minute(), v.Second(), 0, v.Location())
}

// SetClock sets hour, minute and second in place.
func (v *Value) SetClock(hour, min, sec int) {
	v.Time = time.Date(v.Year(), v.Month(), v.Day(), hour, min, sec, 0, v.Location())
}

func (v *Value) set(year int, month time.Month, day int) {
	for month < time.January {
		month += 12
		year--
	}
	for month > time.December {
		month -= 12
		year++
	}
	if n := DaysIn(year, month); day > n {
		day = n
	}
	v.Time = time.Date(year, month, day, v.Hour(), v.Minute(), v.Second(), 0, v.Location())
}

// ViewDate returns a copy of v suitable for paging: the day is capped at 28
// so stepping months or years never rolls over.
func (v Value) ViewDate() Value {
	if v.IsZero() {
		return v
	}
	day := v.Day()
	if day > 28 {
		day = 28
	}
	return Of(v.Year(), v.Month(), day, 0, 0, 0, v.Location())
}

// AddMonths steps v by n months, clamping the day to the target month length.
func (v Value) AddMonths(n int) Value {
	out := v
	out.set(v.Year(), v.Month()+time.Month(n), v.Day())
	return out
}

// AddYears steps v by n years, clamping the day (Feb 29 becomes Feb 28).
func (v Value) AddYears(n int) Value {
	out := v
	out.set(v.Year()+n, v.Month(), v.Day())
	return out
}

// String renders v as RFC 3339, or "" when unset.
func (v Value) String() string {
	if v.IsZero() {
		return ""
	}
	return v.Format(time.RFC3339)
}

// MarshalJSON renders v as an RFC 3339 string, or "" when unset.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.String())
}

// UnmarshalJSON accepts the output of MarshalJSON.
func (v *Value) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		*v = Value{}
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("date: %w", err)
	}
	*v = New(t.Local())
	return nil
}

// IsLeap reports whether year is a leap year in the proleptic Gregorian
// calendar.
func IsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

var daysPerMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// DaysIn returns the number of days in month of year.
func DaysIn(year int, month time.Month) int {
	if month == time.February && IsLeap(year) {
		return 29
	}
	return daysPerMonth[month-1]
}

// StartDay returns the weekday of the first of the month.
func StartDay(year int, month time.Month) time.Weekday {
	return time.Date(year, month, 1, 12, 0, 0, 0, time.UTC).Weekday()
}
