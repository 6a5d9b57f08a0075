// Package formatrun renders a timestamp with a picker format.
package formatrun

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/datepicker/pkg/format"
	"tableflip.dev/datepicker/pkg/picker"
)

// Format prints At rendered with the date and time formats of Config.
type Format struct {
	Config picker.Config
	At     time.Time
	JSON   bool
	Out    io.Writer
}

type formatted struct {
	Input  string `json:"input"`
	Format string `json:"format"`
	Text   string `json:"text"`
}

// Do renders the timestamp. A zero At means now.
func (f *Format) Do(ctx context.Context) error {
	p, err := picker.New(f.Config)
	if err != nil {
		return err
	}
	at := f.At
	if at.IsZero() {
		at = p.Now()
	}
	out := formatted{
		Input:  at.Format(time.RFC3339),
		Format: p.Spec().String(),
		Text:   format.FormatDateTime(at, p.Spec(), p.Language()),
	}

	w := f.Out
	if w == nil {
		w = color.Output
	}
	if f.JSON {
		b, err := json.Marshal(out)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(w, string(b))
		return nil
	}
	_, _ = fmt.Fprintln(w, out.Text)
	return nil
}
