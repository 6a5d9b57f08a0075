package format

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"tableflip.dev/datepicker/pkg/locale"
)

// FormatDate renders the calendar day of t using a date spec. Tokens the
// table does not know are written out verbatim.
func FormatDate(t time.Time, s Spec, lang locale.Language) string {
	vals := map[Token]string{
		Day:       strconv.Itoa(t.Day()),
		DayPad:    fmt.Sprintf("%02d", t.Day()),
		Month:     strconv.Itoa(int(t.Month())),
		MonthPad:  fmt.Sprintf("%02d", int(t.Month())),
		Year2:     fmt.Sprintf("%02d", t.Year()%100),
		Year4:     strconv.Itoa(t.Year()),
		MonthName: lang.MonthsShort[t.Month()-1],
		MonthLong: lang.Months[t.Month()-1],
	}
	return join(s, vals)
}

// FormatTime renders the clock of t using a time spec.
func FormatTime(t time.Time, s Spec) string {
	vals := map[Token]string{
		Hour:      strconv.Itoa(t.Hour()),
		HourPad:   fmt.Sprintf("%02d", t.Hour()),
		Minute:    strconv.Itoa(t.Minute()),
		MinutePad: fmt.Sprintf("%02d", t.Minute()),
		Second:    strconv.Itoa(t.Second()),
		SecondPad: fmt.Sprintf("%02d", t.Second()),
	}
	return join(s, vals)
}

// FormatDateTime renders t with a combined spec.
func FormatDateTime(t time.Time, d DateTimeSpec, lang locale.Language) string {
	out := FormatDate(t, d.Date, lang)
	if d.Time != nil {
		out += d.Separator + FormatTime(t, *d.Time)
	}
	return out
}

func join(s Spec, vals map[Token]string) string {
	parts := make([]string, len(s.Parts))
	for i, p := range s.Parts {
		v, ok := vals[p]
		if !ok {
			v = string(p)
		}
		parts[i] = v
	}
	return strings.Join(parts, s.Separator)
}
