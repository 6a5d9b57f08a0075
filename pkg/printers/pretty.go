// Package printers renders picker pages and remembered picks for the terminal.
package printers

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/muesli/reflow/ansi"
)

// PrettyPrint writes coloured output to Out, or color.Output when Out is nil.
type PrettyPrint struct {
	Out io.Writer
}

// ColorFor turns colour off unless f is a terminal.
func ColorFor(f *os.File) {
	fd := f.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		color.NoColor = true
	}
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out != nil {
		return pp.Out
	}
	return color.Output
}

// NewLine prints an empty line.
func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

// Title prints title centred over width columns.
func (pp *PrettyPrint) Title(title string, width int) {
	t := color.New(color.Bold)
	_, _ = t.Fprintln(pp.out(), center(title, width))
}

func center(s string, width int) string {
	w := ansi.PrintableRuneWidth(s)
	if w >= width {
		return s
	}
	mid := (width - w) / 2
	return strings.Repeat(" ", mid) + s + strings.Repeat(" ", width-mid-w)
}
