// Package calendar builds the day, month and year pages shown by the picker.
package calendar

import (
	"strings"
	"time"

	"tableflip.dev/datepicker/pkg/date"
	"tableflip.dev/datepicker/pkg/locale"
)

// Cells in a month grid: six weeks of seven days.
const (
	Weeks     = 6
	GridCells = Weeks * 7
	PageCells = 12
)

// Class is a set of cell flags.
type Class uint8

const (
	// Old marks a cell before the displayed page.
	Old Class = 1 << iota
	// New marks a cell after the displayed page.
	New
	// Active marks the selected value.
	Active
	// Today marks the current day when it is not also selected.
	Today
	// Disabled cells cannot be selected.
	Disabled
	// Custom is set when the render hook added class names of its own.
	Custom
)

var classNames = []struct {
	c    Class
	name string
}{
	{Old, "old"},
	{New, "new"},
	{Active, "active"},
	{Today, "today"},
	{Disabled, "disabled"},
	{Custom, "custom"},
}

// Has reports whether every flag in x is set.
func (c Class) Has(x Class) bool { return c&x == x }

// Names lists the set flags in a stable order.
func (c Class) Names() []string {
	var out []string
	for _, n := range classNames {
		if c.Has(n.c) {
			out = append(out, n.name)
		}
	}
	return out
}

// RenderHook returns extra space separated class names for a day. A hook
// returning "disabled" blocks selection of that day.
type RenderHook func(time.Time) string

// Cell is one entry of a calendar page.
type Cell struct {
	Date    date.Value
	Classes Class
	Extra   []string
}

// Selectable reports whether the cell may be picked.
func (c Cell) Selectable() bool { return !c.Classes.Has(Disabled) }

// ClassString renders the flags followed by the hook classes.
func (c Cell) ClassString() string {
	return strings.Join(append(c.Classes.Names(), c.Extra...), " ")
}

func (c *Cell) apply(hook RenderHook) {
	if hook == nil {
		return
	}
	for _, name := range strings.Fields(hook(c.Date.Time)) {
		switch name {
		case "disabled":
			c.Classes |= Disabled
		default:
			c.Classes |= Custom
			c.Extra = append(c.Extra, name)
		}
	}
}

// Bounds limits the selectable range. A zero Start or End is open.
type Bounds struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether the day holding t lies within the bounds.
func (b Bounds) Contains(t time.Time) bool {
	day := date.New(t).Midnight()
	if !b.Start.IsZero() && day.Before(date.New(b.Start.In(t.Location())).Midnight().Time) {
		return false
	}
	if !b.End.IsZero() && day.After(date.New(b.End.In(t.Location())).Midnight().Time) {
		return false
	}
	return true
}

// ContainsMonth reports whether any day of the month lies within the bounds.
func (b Bounds) ContainsMonth(year int, month time.Month, loc *time.Location) bool {
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	last := time.Date(year, month, date.DaysIn(year, month), 0, 0, 0, 0, loc)
	return b.overlaps(first, last)
}

// ContainsYear reports whether any day of the year lies within the bounds.
func (b Bounds) ContainsYear(year int, loc *time.Location) bool {
	return b.overlaps(time.Date(year, time.January, 1, 0, 0, 0, 0, loc), time.Date(year, time.December, 31, 0, 0, 0, 0, loc))
}

func (b Bounds) overlaps(first, last time.Time) bool {
	if !b.Start.IsZero() && last.Before(date.New(b.Start.In(last.Location())).Midnight().Time) {
		return false
	}
	if !b.End.IsZero() && first.After(date.New(b.End.In(first.Location())).Midnight().Time) {
		return false
	}
	return true
}

// Check classifies a single day against the bounds and the hook.
func Check(t time.Time, bounds Bounds, hook RenderHook) Cell {
	c := Cell{Date: date.New(t)}
	if !bounds.Contains(t) {
		c.Classes |= Disabled
	}
	c.apply(hook)
	return c
}

// Options feed the month grid.
type Options struct {
	WeekStart time.Weekday
	Selected  time.Time
	Today     time.Time
	Hook      RenderHook
	Bounds    Bounds
	Location  *time.Location
}

func (o Options) loc() *time.Location {
	if o.Location != nil {
		return o.Location
	}
	return time.Local
}

// Grid is the 42-day page for one month.
type Grid struct {
	Year      int
	Month     time.Month
	WeekStart time.Weekday
	Cells     [GridCells]Cell
}

// Rows splits the grid into weeks.
func (g Grid) Rows() [][]Cell {
	rows := make([][]Cell, Weeks)
	for i := range rows {
		rows[i] = g.Cells[i*7 : i*7+7]
	}
	return rows
}

// Find returns the index of the cell holding the day of t, or -1.
func (g Grid) Find(t time.Time) int {
	for i, c := range g.Cells {
		if c.Date.SameDay(t) {
			return i
		}
	}
	return -1
}

// BuildMonthGrid lays out the month starting from the last day of the
// previous month stepped back to opts.WeekStart, and advances one day at a
// time for six weeks.
func BuildMonthGrid(year int, month time.Month, opts Options) Grid {
	loc := opts.loc()
	g := Grid{Year: year, Month: month, WeekStart: opts.WeekStart}

	// Day 0 is the last day of the previous month.
	day := time.Date(year, month, 0, 0, 0, 0, 0, loc)
	for day.Weekday() != opts.WeekStart {
		day = day.AddDate(0, 0, -1)
	}

	page := date.Of(year, month, 1, 0, 0, 0, loc)
	var selected, today date.Value
	if !opts.Selected.IsZero() {
		selected = date.New(opts.Selected.In(loc)).Midnight()
	}
	if !opts.Today.IsZero() {
		today = date.New(opts.Today.In(loc)).Midnight()
	}

	for i := 0; i < GridCells; i++ {
		c := Cell{Date: date.New(day)}
		switch page.CompareMonth(day) {
		case 1:
			c.Classes |= Old
		case -1:
			c.Classes |= New
		}
		if selected.SameDay(day) {
			c.Classes |= Active
		} else if today.SameDay(day) {
			c.Classes |= Today
		}
		if !opts.Bounds.Contains(day) {
			c.Classes |= Disabled
		}
		c.apply(opts.Hook)
		g.Cells[i] = c
		day = day.AddDate(0, 0, 1)
	}
	return g
}

// WeekdayHeader returns the short day names rotated to start at weekStart.
func WeekdayHeader(weekStart time.Weekday, lang locale.Language) []string {
	out := make([]string, 7)
	for i := range out {
		out[i] = lang.DaysMin[(int(weekStart)+i)%7]
	}
	return out
}

// BuildMonthsPage returns the twelve months of year. The selected month is
// active when it falls in that year.
func BuildMonthsPage(year int, selected time.Time, bounds Bounds, loc *time.Location) []Cell {
	if loc == nil {
		loc = time.Local
	}
	cells := make([]Cell, PageCells)
	for i := range cells {
		m := time.Month(i + 1)
		c := Cell{Date: date.Of(year, m, 1, 0, 0, 0, loc)}
		if !selected.IsZero() && selected.In(loc).Year() == year && selected.In(loc).Month() == m {
			c.Classes |= Active
		}
		if !bounds.ContainsMonth(year, m, loc) {
			c.Classes |= Disabled
		}
		cells[i] = c
	}
	return cells
}

// DecadeStart returns the first year of the decade holding year.
func DecadeStart(year int) int {
	d := year / 10 * 10
	if year < 0 && year%10 != 0 {
		d -= 10
	}
	return d
}

// BuildYearsPage returns twelve years: the decade holding year plus one on
// either side. The outer two are tagged old and new.
func BuildYearsPage(year int, selected time.Time, bounds Bounds, loc *time.Location) (int, []Cell) {
	if loc == nil {
		loc = time.Local
	}
	decade := DecadeStart(year)
	cells := make([]Cell, PageCells)
	for i := range cells {
		y := decade - 1 + i
		c := Cell{Date: date.Of(y, time.January, 1, 0, 0, 0, loc)}
		switch i {
		case 0:
			c.Classes |= Old
		case PageCells - 1:
			c.Classes |= New
		}
		if !selected.IsZero() && selected.In(loc).Year() == y {
			c.Classes |= Active
		}
		if !bounds.ContainsYear(y, loc) {
			c.Classes |= Disabled
		}
		cells[i] = c
	}
	return decade, cells
}
