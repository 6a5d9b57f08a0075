// Package cal prints a picker page: a month of days, a year of months or a
// decade of years.
package cal

import (
	"context"
	"fmt"
	"io"
	"time"

	"tableflip.dev/datepicker/pkg/calendar"
	"tableflip.dev/datepicker/pkg/picker"
	"tableflip.dev/datepicker/pkg/printers"
	"tableflip.dev/datepicker/pkg/viewmode"
)

// Cal prints the page holding On, or today when On is zero. Selected, when
// set, is marked active.
type Cal struct {
	Config   picker.Config
	On       time.Time
	Selected time.Time
	Out      io.Writer
}

// Do prints the page for Config.ViewMode.
func (c *Cal) Do(ctx context.Context) error {
	p, err := picker.New(c.Config)
	if err != nil {
		return err
	}
	if !c.Selected.IsZero() {
		if err := p.SetValue(c.Selected); err != nil {
			return err
		}
	}
	p.SetViewDate(c.On)

	pp := printers.PrettyPrint{Out: c.Out}
	lang := p.Language()
	switch p.Mode() {
	case viewmode.Days:
		pp.Days(p.Title(), p.Header(), p.Grid())
	case viewmode.Months:
		pp.Page(p.Title(), p.MonthsPage(), func(cell calendar.Cell) string {
			return lang.MonthsShort[cell.Date.Month()-1]
		})
	default:
		_, cells := p.YearsPage()
		pp.Page(p.Title(), cells, func(cell calendar.Cell) string {
			return fmt.Sprintf("%d", cell.Date.Year())
		})
	}
	return nil
}
