// Package history lists and forgets remembered picks.
package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/datepicker/pkg/printers"
	"tableflip.dev/datepicker/pkg/store"
)

// History prints remembered picks, or deletes the one named by Delete.
type History struct {
	Persistence store.Persistence
	Delete      string
	JSON        bool
	Out         io.Writer
}

// Do lists or deletes.
func (h *History) Do(ctx context.Context) error {
	if h.Persistence == nil {
		return errors.New("can not list history, no persistence")
	}
	w := h.Out
	if w == nil {
		w = color.Output
	}

	if h.Delete != "" {
		if err := h.Persistence.Delete(h.Delete); err != nil {
			return err
		}
		if !h.JSON {
			_, _ = fmt.Fprintf(w, "forgot %s\n", h.Delete)
		}
		return nil
	}

	all := h.Persistence.List(ctx)
	if h.JSON {
		b, err := json.Marshal(all)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(w, string(b))
		return nil
	}
	pp := printers.PrettyPrint{Out: w}
	pp.History(all)
	return nil
}
