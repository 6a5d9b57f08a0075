package options

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

const (
	layoutISO      = "2006-01-02"
	layoutISOMonth = "2006-01"
	layoutMinute   = "2006-01-02T15:04"
)

// CalOptions selects the page and the highlighted day of the cal verb.
type CalOptions struct {
	Select string
}

// AddCalArgs wires the --select flag.
func AddCalArgs(cmd *cobra.Command, o *CalOptions) {
	cmd.Flags().StringVar(&o.Select, "select", "",
		`Mark a day as picked, example: --select="2024-03-05".`)
}

// GetSelect parses --select, or returns the zero time when it is unset.
func (o *CalOptions) GetSelect() (time.Time, error) {
	if o.Select == "" {
		return time.Time{}, nil
	}
	return ParseInstant(o.Select)
}

// ParseMonth reads "2006-01". An empty string is the zero time.
func ParseMonth(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.ParseInLocation(layoutISOMonth, s, time.Local)
	if err != nil {
		// Let a full day name its month too.
		return ParseInstant(s)
	}
	return t, nil
}

// ParseInstant reads "now", RFC3339, "2006-01-02T15:04" or "2006-01-02".
// Layouts without a zone are local.
func ParseInstant(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "", "now":
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	for _, layout := range []string{layoutMinute, layoutISO} {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("can not read %q, expected now, RFC3339 or %s", s, layoutISO)
}
