package calendar

import (
	"strings"
	"testing"
	"time"

	"tableflip.dev/datepicker/pkg/locale"
)

func TestBuildMonthGridFebruaryLeap(t *testing.T) {
	today := time.Date(2024, time.February, 14, 16, 0, 0, 0, time.UTC)
	g := BuildMonthGrid(2024, time.February, Options{
		WeekStart: time.Sunday,
		Today:     today,
		Location:  time.UTC,
	})

	first := g.Cells[0].Date
	if first.Month() != time.January || first.Day() != 28 {
		t.Fatalf("expected grid to start on Sunday Jan 28, got %s", first.Format("Jan 2"))
	}
	if !g.Cells[0].Classes.Has(Old) {
		t.Fatalf("expected leading cell to be old")
	}
	rows := g.Rows()
	if len(rows) != 6 || len(rows[0]) != 7 {
		t.Fatalf("expected 6x7 rows, got %d", len(rows))
	}
	if last := rows[0][6].Date; last.Weekday() != time.Saturday || last.Day() != 3 {
		t.Fatalf("expected first row to end on Saturday Feb 3, got %s", last.Format("Mon Jan 2"))
	}

	seen := 0
	for _, c := range g.Cells {
		if c.Date.Month() == time.February {
			seen++
			if c.Classes.Has(Old) || c.Classes.Has(New) {
				t.Fatalf("February cell %d tagged %s", c.Date.Day(), c.ClassString())
			}
		}
	}
	if seen != 29 {
		t.Fatalf("expected 29 February cells, got %d", seen)
	}
	lastCell := g.Cells[GridCells-1]
	if lastCell.Date.Month() != time.March || lastCell.Date.Day() != 9 || !lastCell.Classes.Has(New) {
		t.Fatalf("expected trailing Mar 9 tagged new, got %s %s", lastCell.Date.Format("Jan 2"), lastCell.ClassString())
	}
	if idx := g.Find(today); idx < 0 || !g.Cells[idx].Classes.Has(Today) {
		t.Fatalf("expected today to be tagged")
	}
}

func TestBuildMonthGridInvariants(t *testing.T) {
	for year := 1899; year <= 2101; year += 7 {
		for month := time.January; month <= time.December; month++ {
			for ws := time.Sunday; ws <= time.Saturday; ws++ {
				g := BuildMonthGrid(year, month, Options{WeekStart: ws, Location: time.UTC})
				starts := 0
				for i, c := range g.Cells {
					if c.Date.Weekday() == ws {
						starts++
					}
					if i > 0 {
						prev := g.Cells[i-1].Date.Time
						if !prev.AddDate(0, 0, 1).Equal(c.Date.Time) {
							t.Fatalf("%d-%02d ws=%d: cell %d is not one day after the previous", year, month, ws, i)
						}
					}
				}
				if starts != 6 {
					t.Fatalf("%d-%02d ws=%d: expected 6 week starts, got %d", year, month, ws, starts)
				}
				if g.Cells[0].Date.Weekday() != ws {
					t.Fatalf("%d-%02d ws=%d: grid does not start on the week start", year, month, ws)
				}
				if g.Cells[0].Date.Month() == month && g.Cells[0].Date.Day() == 1 {
					t.Fatalf("%d-%02d ws=%d: expected at least one leading day", year, month, ws)
				}
			}
		}
	}
}

func TestActiveBeatsToday(t *testing.T) {
	day := time.Date(2024, time.March, 5, 10, 30, 0, 0, time.UTC)
	g := BuildMonthGrid(2024, time.March, Options{Selected: day, Today: day, Location: time.UTC})
	c := g.Cells[g.Find(day)]
	if !c.Classes.Has(Active) || c.Classes.Has(Today) {
		t.Fatalf("expected active only, got %s", c.ClassString())
	}
}

func TestRenderHookAndBounds(t *testing.T) {
	hook := func(d time.Time) string {
		switch d.Weekday() {
		case time.Sunday:
			return "disabled"
		case time.Friday:
			return "payday holiday"
		}
		return ""
	}
	bounds := Bounds{
		Start: time.Date(2024, time.March, 3, 12, 0, 0, 0, time.UTC),
		End:   time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC),
	}
	g := BuildMonthGrid(2024, time.March, Options{WeekStart: time.Monday, Hook: hook, Bounds: bounds, Location: time.UTC})
	for _, c := range g.Cells {
		d := c.Date
		switch {
		case d.Weekday() == time.Sunday:
			if c.Selectable() {
				t.Fatalf("expected Sunday %s disabled by hook", d.Format("Jan 2"))
			}
		case d.Before(time.Date(2024, time.March, 3, 0, 0, 0, 0, time.UTC)), d.After(bounds.End):
			if c.Selectable() {
				t.Fatalf("expected %s outside bounds to be disabled", d.Format("Jan 2"))
			}
		default:
			if !c.Selectable() {
				t.Fatalf("expected %s to be selectable, got %s", d.Format("Jan 2"), c.ClassString())
			}
		}
		if d.Weekday() == time.Friday {
			if !c.Classes.Has(Custom) || !strings.HasSuffix(c.ClassString(), "payday holiday") {
				t.Fatalf("expected custom classes on Friday, got %q", c.ClassString())
			}
		}
	}
}

func TestWeekdayHeader(t *testing.T) {
	got := strings.Join(WeekdayHeader(time.Monday, locale.English), " ")
	if got != "Mo Tu We Th Fr Sa Su" {
		t.Fatalf("unexpected header %q", got)
	}
	got = strings.Join(WeekdayHeader(time.Sunday, locale.German), " ")
	if got != "So Mo Di Mi Do Fr Sa" {
		t.Fatalf("unexpected header %q", got)
	}
}

func TestBuildMonthsPage(t *testing.T) {
	sel := time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)
	cells := BuildMonthsPage(2024, sel, Bounds{Start: time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)}, time.UTC)
	if len(cells) != 12 {
		t.Fatalf("expected 12 months, got %d", len(cells))
	}
	if !cells[5].Classes.Has(Active) {
		t.Fatalf("expected June active")
	}
	if cells[1].Selectable() || !cells[2].Selectable() {
		t.Fatalf("expected months before March disabled and March open")
	}
	other := BuildMonthsPage(2023, sel, Bounds{}, time.UTC)
	for _, c := range other {
		if c.Classes.Has(Active) {
			t.Fatalf("no month of 2023 should be active")
		}
	}
}

func TestBuildYearsPage(t *testing.T) {
	sel := time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)
	decade, cells := BuildYearsPage(2027, sel, Bounds{End: time.Date(2029, time.January, 1, 0, 0, 0, 0, time.UTC)}, time.UTC)
	if decade != 2020 {
		t.Fatalf("expected decade 2020, got %d", decade)
	}
	if cells[0].Date.Year() != 2019 || !cells[0].Classes.Has(Old) {
		t.Fatalf("expected leading 2019 old, got %d %s", cells[0].Date.Year(), cells[0].ClassString())
	}
	if cells[11].Date.Year() != 2030 || !cells[11].Classes.Has(New) {
		t.Fatalf("expected trailing 2030 new")
	}
	if !cells[5].Classes.Has(Active) {
		t.Fatalf("expected 2024 active")
	}
	if !cells[10].Selectable() || cells[11].Selectable() {
		t.Fatalf("expected 2029 open and 2030 disabled")
	}
	if DecadeStart(-5) != -10 {
		t.Fatalf("expected decade -10 for year -5")
	}
}
