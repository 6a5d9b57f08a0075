// Package parse reads text with a picker format.
package parse

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/datepicker/pkg/format"
	"tableflip.dev/datepicker/pkg/picker"
)

// Parse reads Text with the formats of Config. A mismatch falls back to
// today unless Strict is set.
type Parse struct {
	Config picker.Config
	Text   string
	Strict bool
	JSON   bool
	Out    io.Writer
}

type parsed struct {
	Input    string `json:"input"`
	Value    string `json:"value"`
	Text     string `json:"text"`
	Fallback bool   `json:"fallback"`
	Reason   string `json:"reason,omitempty"`
}

// Do parses the text and prints the value and its normalised text.
func (n *Parse) Do(ctx context.Context) error {
	p, err := picker.New(n.Config)
	if err != nil {
		return err
	}
	codec := format.Codec{
		Language: p.Language(),
		Now:      n.Config.Now,
		Location: n.Config.Location,
	}
	r := codec.Parse(n.Text, p.Spec())
	if n.Strict && r.Fallback() {
		return r.Err()
	}

	out := parsed{
		Input:    n.Text,
		Value:    r.Value.String(),
		Text:     format.FormatDateTime(r.Value.Time, p.Spec(), p.Language()),
		Fallback: r.Fallback(),
	}
	if r.Fallback() {
		out.Reason = r.Reason.String()
	}

	w := n.Out
	if w == nil {
		w = color.Output
	}
	if n.JSON {
		b, err := json.Marshal(out)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(w, string(b))
		return nil
	}
	if r.Fallback() {
		warn := color.New(color.FgYellow, color.Italic)
		_, _ = warn.Fprintf(w, "fallback (%s): ", out.Reason)
	}
	_, _ = fmt.Fprintf(w, "%s\t%s\n", out.Text, out.Value)
	return nil
}
