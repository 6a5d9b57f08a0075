// Package format turns human date and time formats such as "mm/dd/yyyy" or
// "HH:mm:ss" into token lists, and renders and parses values with them.
package format

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Token is a single placeholder in a format string.
type Token string

// Date tokens.
const (
	Day       Token = "d"
	DayPad    Token = "dd"
	Month     Token = "m"
	MonthPad  Token = "mm"
	Year2     Token = "yy"
	Year4     Token = "yyyy"
	MonthName Token = "M"
	MonthLong Token = "MM"
)

// Time tokens. Minutes share their spelling with the month tokens and are
// told apart by the Kind of the spec.
const (
	Hour      Token = "H"
	HourPad   Token = "HH"
	Minute    Token = "m"
	MinutePad Token = "mm"
	Second    Token = "s"
	SecondPad Token = "ss"
)

// Kind tells whether a Spec holds date or time tokens.
type Kind int

const (
	// KindDate specs render the calendar day.
	KindDate Kind = iota
	// KindTime specs render the clock.
	KindTime
)

func (k Kind) String() string {
	if k == KindTime {
		return "time"
	}
	return "date"
}

var (
	dateTokens = map[Token]bool{
		Day: true, DayPad: true, Month: true, MonthPad: true,
		Year2: true, Year4: true, MonthName: true, MonthLong: true,
	}
	timeTokens = map[Token]bool{
		Hour: true, HourPad: true, Minute: true, MinutePad: true,
		Second: true, SecondPad: true,
	}

	nonWord       = regexp.MustCompile(`\W+`)
	dateSeparator = regexp.MustCompile(`[./\-\s]+`)
	outerSplit    = regexp.MustCompile(`\s+|T`)
)

// ErrInvalidFormat is matched by every *InvalidFormatError.
var ErrInvalidFormat = errors.New("invalid format")

// InvalidFormatError reports a format string that cannot be tokenised.
type InvalidFormatError struct {
	Format string
	Reason string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("format: invalid format %q: %s", e.Format, e.Reason)
}

// Is makes errors.Is(err, ErrInvalidFormat) hold.
func (e *InvalidFormatError) Is(target error) bool {
	return target == ErrInvalidFormat
}

func invalid(format, reason string, args ...interface{}) *InvalidFormatError {
	return &InvalidFormatError{Format: format, Reason: fmt.Sprintf(reason, args...)}
}

// Spec is a parsed date or time format. It is immutable once parsed.
type Spec struct {
	Kind      Kind
	Separator string
	Parts     []Token
}

// String rebuilds the format string.
func (s Spec) String() string {
	parts := make([]string, len(s.Parts))
	for i, p := range s.Parts {
		parts[i] = string(p)
	}
	return strings.Join(parts, s.Separator)
}

// Has reports whether the spec contains any of the tokens.
func (s Spec) Has(tokens ...Token) bool {
	for _, p := range s.Parts {
		for _, t := range tokens {
			if p == t {
				return true
			}
		}
	}
	return false
}

// DateTimeSpec is a combined format: a date spec, an optional time spec and
// the text joining them.
type DateTimeSpec struct {
	Date      Spec
	Time      *Spec
	Separator string
}

// String rebuilds the combined format string.
func (d DateTimeSpec) String() string {
	if d.Time == nil {
		return d.Date.String()
	}
	return d.Date.String() + d.Separator + d.Time.String()
}

// ParseDateFormat tokenises a date format such as "mm/dd/yyyy". The separator
// is the first run of '.', '/', '-' or whitespace. A lone token with no
// separator, like "yyyy", gets a single space.
func ParseDateFormat(format string) (Spec, error) {
	words := splitWords(format)
	if len(words) == 0 {
		return Spec{}, invalid(format, "no tokens")
	}
	sep := dateSeparator.FindString(format)
	if sep == "" {
		if len(words) != 1 {
			return Spec{}, invalid(format, "no separator between %d tokens", len(words))
		}
		sep = " "
	}
	parts := make([]Token, 0, len(words))
	for _, w := range words {
		t := Token(w)
		if !dateTokens[t] {
			return Spec{}, invalid(format, "unknown date token %q", w)
		}
		parts = append(parts, t)
	}
	return Spec{Kind: KindDate, Separator: sep, Parts: parts}, nil
}

// ParseTimeFormat tokenises a time format such as "HH:mm:ss". Tokens are split
// strictly on ':'.
func ParseTimeFormat(format string) (Spec, error) {
	if strings.TrimSpace(format) == "" {
		return Spec{}, invalid(format, "no tokens")
	}
	pieces := strings.Split(format, ":")
	parts := make([]Token, 0, len(pieces))
	for _, p := range pieces {
		p = strings.TrimSpace(p)
		if p == "" {
			return Spec{}, invalid(format, "empty token")
		}
		t := Token(p)
		if !timeTokens[t] {
			return Spec{}, invalid(format, "unknown time token %q", p)
		}
		parts = append(parts, t)
	}
	return Spec{Kind: KindTime, Separator: ":", Parts: parts}, nil
}

// ParseDateTimeFormat splits a combined format on its first run of whitespace
// or a literal 'T'. The head is parsed as a date format and the tail as a
// time format.
func ParseDateTimeFormat(format string) (DateTimeSpec, error) {
	loc := outerSplit.FindStringIndex(format)
	if loc == nil {
		return DateTimeSpec{}, invalid(format, "no separator between date and time")
	}
	ds, err := ParseDateFormat(format[:loc[0]])
	if err != nil {
		return DateTimeSpec{}, err
	}
	ts, err := ParseTimeFormat(format[loc[1]:])
	if err != nil {
		return DateTimeSpec{}, err
	}
	return DateTimeSpec{Date: ds, Time: &ts, Separator: format[loc[0]:loc[1]]}, nil
}

// Combine pairs separately parsed date and time formats. An empty time
// format yields a date-only spec; an empty separator defaults to a space.
func Combine(dateFormat, timeFormat, separator string) (DateTimeSpec, error) {
	ds, err := ParseDateFormat(dateFormat)
	if err != nil {
		return DateTimeSpec{}, err
	}
	out := DateTimeSpec{Date: ds}
	if timeFormat == "" {
		return out, nil
	}
	ts, err := ParseTimeFormat(timeFormat)
	if err != nil {
		return DateTimeSpec{}, err
	}
	if separator == "" {
		separator = " "
	}
	out.Time = &ts
	out.Separator = separator
	return out, nil
}

func splitWords(s string) []string {
	pieces := nonWord.Split(s, -1)
	out := pieces[:0]
	for _, p := range pieces {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
