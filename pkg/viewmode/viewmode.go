// Package viewmode tracks which calendar page the picker shows and how the
// previous/next arrows page through it.
package viewmode

import (
	"fmt"
	"strconv"
	"strings"

	"tableflip.dev/datepicker/pkg/date"
)

// Mode is the granularity of the displayed page.
type Mode int

const (
	// Days shows a month of days.
	Days Mode = iota
	// Months shows the twelve months of a year.
	Months
	// Years shows a decade.
	Years
)

// Max is the coarsest mode.
const Max = Years

func (m Mode) String() string {
	switch m {
	case Days:
		return "days"
	case Months:
		return "months"
	case Years:
		return "years"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// Parse accepts a mode index or one of its names.
func Parse(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "days", "day":
		return Days, nil
	case "months", "month":
		return Months, nil
	case "years", "year", "decade":
		return Years, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < int(Days) || n > int(Max) {
		return Days, fmt.Errorf("viewmode: unknown mode %q", s)
	}
	return Mode(n), nil
}

// Clamp bounds m to [min, Max].
func Clamp(m, min Mode) Mode {
	if min < Days {
		min = Days
	}
	if min > Max {
		min = Max
	}
	if m < min {
		return min
	}
	if m > Max {
		return Max
	}
	return m
}

// StepFunc moves a view date by delta units of its mode.
type StepFunc func(v date.Value, delta int) date.Value

// Descriptor describes a mode and how it pages.
type Descriptor struct {
	Mode Mode
	Name string
	Step StepFunc
}

var descriptors = [...]Descriptor{
	Days: {
		Mode: Days,
		Name: "month",
		Step: func(v date.Value, delta int) date.Value {
			return v.ViewDate().AddMonths(delta)
		},
	},
	Months: {
		Mode: Months,
		Name: "year",
		Step: func(v date.Value, delta int) date.Value {
			return v.ViewDate().AddYears(delta)
		},
	},
	Years: {
		Mode: Years,
		Name: "decade",
		Step: func(v date.Value, delta int) date.Value {
			return v.ViewDate().AddYears(10 * delta)
		},
	},
}

// Describe returns the descriptor for m, clamped into range.
func Describe(m Mode) Descriptor {
	return descriptors[Clamp(m, Days)]
}

// Outcome reports what a selection on the current page did.
type Outcome int

const (
	// Drill means the selection only moved to a finer page.
	Drill Outcome = iota
	// Commit means the selection set the picker value.
	Commit
)

func (o Outcome) String() string {
	if o == Commit {
		return "commit"
	}
	return "drill"
}

// Machine is the days/months/years state machine.
type Machine struct {
	mode  Mode
	min   Mode
	start Mode
}

// New starts in start, clamped into [min, Max].
func New(start, min Mode) *Machine {
	min = Clamp(min, Days)
	start = Clamp(start, min)
	return &Machine{mode: start, min: min, start: start}
}

// Mode returns the current mode.
func (m *Machine) Mode() Mode { return m.mode }

// Min returns the finest mode the machine may show.
func (m *Machine) Min() Mode { return m.min }

// Start returns the mode restored by Reset.
func (m *Machine) Start() Mode { return m.start }

// DrillUp moves to a coarser page, stopping at Years.
func (m *Machine) DrillUp() Mode {
	if m.mode < Max {
		m.mode++
	}
	return m.mode
}

// DrillDown moves to a finer page, stopping at the minimum mode.
func (m *Machine) DrillDown() Mode {
	if m.mode > m.min {
		m.mode--
	}
	return m.mode
}

// Reset restores the starting mode.
func (m *Machine) Reset() Mode {
	m.mode = m.start
	return m.mode
}

// Select records a pick on the current page. On the minimum mode the pick is
// a commit; otherwise the machine drills down.
func (m *Machine) Select() Outcome {
	if m.mode == m.min {
		return Commit
	}
	m.DrillDown()
	return Drill
}

// Step pages v by delta units of the current mode.
func (m *Machine) Step(v date.Value, delta int) date.Value {
	return Describe(m.mode).Step(v, delta)
}
