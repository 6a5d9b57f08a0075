package format

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"tableflip.dev/datepicker/pkg/date"
	"tableflip.dev/datepicker/pkg/locale"
)

// ErrFallback is wrapped by Result.Err when the input was not taken as is.
var ErrFallback = errors.New("input not accepted")

// Reason explains why a parse fell back to defaults.
type Reason int

const (
	// ReasonNone marks a clean parse.
	ReasonNone Reason = iota
	// ReasonEmpty means the input was blank.
	ReasonEmpty
	// ReasonDateTokenCount means the date part had the wrong number of pieces.
	ReasonDateTokenCount
	// ReasonTimeTokenCount means the time part had the wrong number of pieces.
	ReasonTimeTokenCount
	// ReasonNotSelectable means the input parsed but names a date the picker
	// refuses. The parser never reports it; pickers do.
	ReasonNotSelectable
)

func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "parsed"
	case ReasonEmpty:
		return "empty input"
	case ReasonDateTokenCount:
		return "date piece count mismatch"
	case ReasonTimeTokenCount:
		return "time piece count mismatch"
	case ReasonNotSelectable:
		return "date not selectable"
	}
	return fmt.Sprintf("reason(%d)", int(r))
}

// Result is either a clean parse or a fallback carrying the reason and the
// default value that was used instead.
type Result struct {
	Value  date.Value
	Reason Reason
	Input  string
}

// Fallback reports whether defaults were substituted for the input.
func (r Result) Fallback() bool {
	return r.Reason != ReasonNone
}

// Err returns nil for a clean parse, or an error wrapping ErrFallback.
func (r Result) Err() error {
	if !r.Fallback() {
		return nil
	}
	return fmt.Errorf("format: %q: %s: %w", r.Input, r.Reason, ErrFallback)
}

// Codec bundles the language table and clock used for parsing.
type Codec struct {
	Language locale.Language
	Now      func() time.Time
	Location *time.Location
}

// DefaultCodec parses English names against the wall clock.
func DefaultCodec() Codec {
	return Codec{Language: locale.English, Now: time.Now, Location: time.Local}
}

func (c Codec) loc() *time.Location {
	if c.Location != nil {
		return c.Location
	}
	return time.Local
}

func (c Codec) today() date.Value {
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	t := now().In(c.loc())
	return date.Of(t.Year(), t.Month(), t.Day(), 0, 0, 0, c.loc())
}

// Parse reads text with a combined spec.
func (c Codec) Parse(text string, d DateTimeSpec) Result {
	return c.ParseDateTime(text, d.Date, d.Time, d.Separator)
}

// ParseDateTime reads text using dateSpec and, when given, timeSpec. With a
// time spec the text is split once on outerSep. The date is built once at
// local midnight from the fields found, defaulting each missing field to
// today. A piece count that does not match the format yields a fallback result.
func (c Codec) ParseDateTime(text string, dateSpec Spec, timeSpec *Spec, outerSep string) Result {
	text = strings.TrimSpace(text)
	today := c.today()
	if text == "" {
		return Result{Value: today, Reason: ReasonEmpty, Input: text}
	}

	datePart, timePart := text, ""
	if timeSpec != nil {
		if outerSep == "" {
			outerSep = " "
		}
		halves := strings.SplitN(text, outerSep, 2)
		datePart = halves[0]
		if len(halves) == 2 {
			timePart = strings.TrimSpace(halves[1])
		}
	}

	pieces := strings.Split(datePart, dateSpec.Separator)
	if len(pieces) != len(dateSpec.Parts) {
		return Result{Value: today, Reason: ReasonDateTokenCount, Input: text}
	}

	year, month, day := today.Year(), today.Month(), today.Day()
	for i, tok := range dateSpec.Parts {
		piece := strings.TrimSpace(pieces[i])
		switch tok {
		case Day, DayPad:
			day = leadingInt(piece, 1)
		case Month, MonthPad:
			month = time.Month(leadingInt(piece, 1))
		case Year2:
			year = 2000 + leadingInt(piece, 1)
		case Year4:
			year = leadingInt(piece, 1)
		case MonthName, MonthLong:
			idx, ok := c.Language.MonthIndex(piece)
			if !ok {
				idx = leadingInt(piece, 1) - 1
			}
			month = time.Month(idx + 1)
		}
	}
	value := date.Of(year, month, day, 0, 0, 0, c.loc())
	result := Result{Value: value, Input: text}

	if timeSpec == nil || timePart == "" {
		return result
	}
	tp := strings.Split(timePart, timeSpec.Separator)
	if len(tp) != len(timeSpec.Parts) {
		result.Reason = ReasonTimeTokenCount
		return result
	}
	var hour, min, sec int
	for i, tok := range timeSpec.Parts {
		n := leadingInt(strings.TrimSpace(tp[i]), 0)
		switch tok {
		case Hour, HourPad:
			hour = n
		case Minute, MinutePad:
			min = n
		case Second, SecondPad:
			sec = n
		}
	}
	result.Value.SetClock(hour, min, sec)
	return result
}

// leadingInt reads an optionally signed run of leading digits, returning def
// when there are none or when they do not fit an int.
func leadingInt(s string, def int) int {
	i := 0
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		i++
	}
	start := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == start {
		return def
	}
	n, err := strconv.Atoi(s[:i])
	if err != nil {
		return def
	}
	return n
}
