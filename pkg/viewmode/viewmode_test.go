package viewmode

import (
	"testing"
	"time"

	"tableflip.dev/datepicker/pkg/date"
)

func TestDrillUpClamps(t *testing.T) {
	m := New(Days, Days)
	m.DrillUp()
	if got := m.DrillUp(); got != Years {
		t.Fatalf("expected years after two drill ups, got %s", got)
	}
	if got := m.DrillUp(); got != Years {
		t.Fatalf("expected drill up to stay at years, got %s", got)
	}
}

func TestDrillDownStopsAtMin(t *testing.T) {
	m := New(Years, Months)
	m.DrillDown()
	if got := m.DrillDown(); got != Months {
		t.Fatalf("expected months floor, got %s", got)
	}
}

func TestNewClampsStart(t *testing.T) {
	m := New(Days, Years)
	if m.Mode() != Years || m.Start() != Years {
		t.Fatalf("expected start clamped to min years, got %s", m.Mode())
	}
	m = New(Mode(9), Mode(-2))
	if m.Mode() != Years || m.Min() != Days {
		t.Fatalf("expected clamping into range, got %s min %s", m.Mode(), m.Min())
	}
}

func TestReset(t *testing.T) {
	m := New(Months, Days)
	m.DrillUp()
	m.DrillDown()
	m.DrillDown()
	if m.Mode() != Days {
		t.Fatalf("expected days, got %s", m.Mode())
	}
	if got := m.Reset(); got != Months {
		t.Fatalf("expected reset to months, got %s", got)
	}
}

func TestSelect(t *testing.T) {
	m := New(Years, Months)
	if got := m.Select(); got != Drill {
		t.Fatalf("expected drill from years, got %s", got)
	}
	if m.Mode() != Months {
		t.Fatalf("expected months after drill, got %s", m.Mode())
	}
	if got := m.Select(); got != Commit {
		t.Fatalf("expected commit on min mode, got %s", got)
	}
	if m.Mode() != Months {
		t.Fatalf("commit must not change mode, got %s", m.Mode())
	}
}

func TestStep(t *testing.T) {
	v := date.Of(2024, time.January, 31, 9, 0, 0, time.UTC)
	m := New(Days, Days)
	next := m.Step(v, 1)
	if next.Month() != time.February || next.Day() != 28 {
		t.Fatalf("expected Feb 28 without rollover, got %s", next)
	}
	m.DrillUp()
	if got := m.Step(v, -1); got.Year() != 2023 {
		t.Fatalf("expected one year back, got %s", got)
	}
	m.DrillUp()
	if got := m.Step(v, 1); got.Year() != 2034 {
		t.Fatalf("expected a decade forward, got %s", got)
	}
	if Describe(Years).Name != "decade" || Describe(Mode(7)).Mode != Years {
		t.Fatalf("unexpected descriptor")
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Mode
		err  bool
	}{
		{"", Days, false},
		{"months", Months, false},
		{"Year", Years, false},
		{"1", Months, false},
		{"2", Years, false},
		{"3", Days, true},
		{"weeks", Days, true},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if (err != nil) != tt.err || got != tt.want {
			t.Fatalf("Parse(%q) = %s, %v; want %s, err=%v", tt.in, got, err, tt.want, tt.err)
		}
	}
}
