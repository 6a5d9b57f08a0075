package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/muesli/reflow/ansi"

	"tableflip.dev/datepicker/pkg/calendar"
)

const width = len("11 12 13 14 15 16 17") // an example week

// pageColumns is the number of month or year cells per row.
const pageColumns = 4

// Days prints a 6x7 grid under a weekday header.
func (pp *PrettyPrint) Days(title string, header []string, g calendar.Grid) {
	pp.Title(title, width)

	h := color.New(color.FgWhite, color.Italic)
	_, _ = h.Fprintln(pp.out(), strings.Join(header, " "))

	for _, row := range g.Rows() {
		for i, c := range row {
			if i > 0 {
				_, _ = fmt.Fprint(pp.out(), " ")
			}
			_, _ = styleFor(c.Classes).Fprintf(pp.out(), "%2d", c.Date.Day())
		}
		_, _ = fmt.Fprint(pp.out(), "\n")
	}
}

// Page prints a months or years page, four cells per row. label names a cell.
func (pp *PrettyPrint) Page(title string, cells []calendar.Cell, label func(calendar.Cell) string) {
	labels := make([]string, len(cells))
	cw := 0
	for i, c := range cells {
		labels[i] = label(c)
		if w := ansi.PrintableRuneWidth(labels[i]); w > cw {
			cw = w
		}
	}
	pp.Title(title, pageColumns*(cw+1)-1)

	for i, c := range cells {
		if i > 0 {
			if i%pageColumns == 0 {
				_, _ = fmt.Fprint(pp.out(), "\n")
			} else {
				_, _ = fmt.Fprint(pp.out(), " ")
			}
		}
		pad := cw - ansi.PrintableRuneWidth(labels[i])
		_, _ = styleFor(c.Classes).Fprint(pp.out(), labels[i]+strings.Repeat(" ", pad))
	}
	_, _ = fmt.Fprint(pp.out(), "\n")
}

func styleFor(c calendar.Class) *color.Color {
	attrs := []color.Attribute{}
	switch {
	case c.Has(calendar.Disabled):
		attrs = append(attrs, color.FgRed, color.Faint, color.CrossedOut)
	case c.Has(calendar.Old), c.Has(calendar.New):
		attrs = append(attrs, color.Faint)
	}
	if c.Has(calendar.Today) {
		attrs = append(attrs, color.Underline)
	}
	if c.Has(calendar.Active) {
		attrs = append(attrs, color.Bold, color.ReverseVideo)
	}
	if c.Has(calendar.Custom) {
		attrs = append(attrs, color.Italic)
	}
	return color.New(attrs...)
}
