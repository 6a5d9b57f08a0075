// Package pick runs the interactive date picker popup.
package pick

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/fatih/color"
	"github.com/muesli/termenv"

	"tableflip.dev/datepicker/pkg/picker"
	"tableflip.dev/datepicker/pkg/store"
	"tableflip.dev/datepicker/pkg/tui/components/datepicker"
	"tableflip.dev/datepicker/pkg/tui/theme"
)

// ErrCancelled is returned when the popup is aborted.
var ErrCancelled = errors.New("pick: cancelled")

// Program runs a Bubble Tea model to completion.
type Program func(ctx context.Context, m tea.Model) error

// Pick opens the popup, prints the chosen text and optionally remembers it.
type Pick struct {
	Config picker.Config
	// Value is the initial text, parsed with the configured format.
	Value string
	// Remember names the pick in Persistence. The stored value seeds the popup.
	Remember    string
	Persistence store.Persistence
	Out         io.Writer
	// Program defaults to a full screen tea.Program.
	Program Program
	// Dark forces the dark or light theme; nil asks the terminal.
	Dark *bool
}

// Do runs the popup.
func (n *Pick) Do(ctx context.Context) error {
	if n.Remember != "" && n.Persistence == nil {
		return errors.New("can not remember, no persistence")
	}
	p, err := picker.New(n.Config)
	if err != nil {
		return err
	}

	if n.Remember != "" {
		prev, err := n.Persistence.Get(n.Remember)
		switch {
		case errors.Is(err, store.ErrNotFound):
		case err != nil:
			return err
		default:
			if err := p.SetValue(prev.Value.Time); err != nil {
				fmt.Fprintf(os.Stderr, "ignoring remembered %q: %s\n", n.Remember, err)
			}
		}
	}
	if n.Value != "" {
		if r := p.SetText(n.Value); r.Fallback() {
			fmt.Fprintf(os.Stderr, "ignoring --value: %s\n", r.Err())
		}
	}

	m := datepicker.New(p, theme.ForBackground(n.dark()))
	run := n.Program
	if run == nil {
		run = runProgram
	}
	if err := run(ctx, &popup{Model: m}); err != nil {
		return err
	}
	if m.Cancelled() {
		return ErrCancelled
	}

	w := n.Out
	if w == nil {
		w = color.Output
	}
	_, _ = fmt.Fprintln(w, p.Text())

	if n.Remember != "" {
		if p.Value().IsZero() {
			if err := n.Persistence.Delete(n.Remember); err != nil && !errors.Is(err, store.ErrNotFound) {
				return err
			}
			return nil
		}
		return n.Persistence.Store(&store.Pick{
			Name:    n.Remember,
			Value:   p.Value(),
			Text:    p.Text(),
			Format:  p.Spec().String(),
			Updated: time.Now(),
		})
	}
	return nil
}

func (n *Pick) dark() bool {
	if n.Dark != nil {
		return *n.Dark
	}
	return termenv.HasDarkBackground()
}

// popup quits the program once the picker closes.
type popup struct {
	*datepicker.Model
}

func (m *popup) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(datepicker.DoneMsg); ok {
		return m, tea.Quit
	}
	_, cmd := m.Model.Update(msg)
	return m, cmd
}

func runProgram(ctx context.Context, m tea.Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
