package format

import (
	"time"

	"tableflip.dev/datepicker/pkg/locale"
)

// The helpers below take raw layout strings for callers that only need to
// format or parse without a picker.

// FormatLayout renders t with a date layout such as "dd.mm.yyyy".
func FormatLayout(t time.Time, layout string, lang locale.Language) (string, error) {
	s, err := ParseDateFormat(layout)
	if err != nil {
		return "", err
	}
	return FormatDate(t, s, lang), nil
}

// FormatDateTimeLayout renders t with a combined layout such as
// "yyyy-mm-dd HH:mm".
func FormatDateTimeLayout(t time.Time, layout string, lang locale.Language) (string, error) {
	s, err := ParseDateTimeFormat(layout)
	if err != nil {
		return "", err
	}
	return FormatDateTime(t, s, lang), nil
}

// ParseLayout reads text with a date layout.
func (c Codec) ParseLayout(text, layout string) (Result, error) {
	s, err := ParseDateFormat(layout)
	if err != nil {
		return Result{}, err
	}
	return c.ParseDateTime(text, s, nil, ""), nil
}

// ParseDateTimeLayout reads text with a combined layout.
func (c Codec) ParseDateTimeLayout(text, layout string) (Result, error) {
	s, err := ParseDateTimeFormat(layout)
	if err != nil {
		return Result{}, err
	}
	return c.Parse(text, s), nil
}

// ParseLayout reads text with a date layout, English names and the wall
// clock.
func ParseLayout(text, layout string) (Result, error) {
	return DefaultCodec().ParseLayout(text, layout)
}

// ParseDateTimeLayout reads text with a combined layout, English names and
// the wall clock.
func ParseDateTimeLayout(text, layout string) (Result, error) {
	return DefaultCodec().ParseDateTimeLayout(text, layout)
}
