package options

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tableflip.dev/datepicker/pkg/format"
	"tableflip.dev/datepicker/pkg/picker"
)

// OutputOptions switches a command to JSON output.
type OutputOptions struct {
	JSON bool
	// Out defaults to color.Output.
	Out io.Writer
}

// AddOutputArg wires --json.
func AddOutputArg(cmd *cobra.Command, po *OutputOptions) {
	cmd.Flags().BoolVar(&po.JSON, "json", false,
		"Print results and errors as JSON.")
}

type jsonError struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

// errorKind names the date errors a script may want to branch on.
func errorKind(err error) string {
	switch {
	case errors.Is(err, format.ErrFallback):
		return "fallback"
	case errors.Is(err, format.ErrInvalidFormat):
		return "invalid-format"
	case errors.Is(err, picker.ErrDisabled):
		return "not-selectable"
	}
	return ""
}

// HandleError reports err on the output as a JSON object in JSON mode, and
// then swallows it. Otherwise err is returned unchanged.
func (o *OutputOptions) HandleError(err error) error {
	if err == nil || !o.JSON {
		return err
	}
	b, merr := json.Marshal(jsonError{Error: err.Error(), Kind: errorKind(err)})
	if merr != nil {
		return err
	}
	w := o.Out
	if w == nil {
		w = color.Output
	}
	_, _ = fmt.Fprintln(w, string(b))
	return nil
}
