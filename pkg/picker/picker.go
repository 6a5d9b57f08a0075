// Package picker is the date picker controller. It owns the selected value
// and the displayed page, keeps a host text field in sync and announces
// show, hide and change events. Rendering is left to the caller.
package picker

import (
	"errors"
	"fmt"
	"time"

	"tableflip.dev/datepicker/pkg/calendar"
	"tableflip.dev/datepicker/pkg/date"
	"tableflip.dev/datepicker/pkg/format"
	"tableflip.dev/datepicker/pkg/locale"
	"tableflip.dev/datepicker/pkg/viewmode"
)

var (
	// ErrDisabled is returned when a pick lands on a disabled cell.
	ErrDisabled = errors.New("picker: date is not selectable")
	// ErrWrongMode is returned when a pick does not match the displayed page.
	ErrWrongMode = errors.New("picker: selection does not match the current page")
)

// Host is the text field the picker mirrors its value into.
type Host interface {
	Value() string
	SetValue(string)
}

type textHost struct{ s string }

func (h *textHost) Value() string     { return h.s }
func (h *textHost) SetValue(s string) { h.s = s }

// Picker is a single date picker instance. It is not safe for concurrent
// use; drive it from one goroutine.
type Picker struct {
	cfg   Config
	spec  format.DateTimeSpec
	codec format.Codec
	lang  locale.Language
	modes *viewmode.Machine

	host    Host
	value   date.Value
	view    date.Value
	visible bool

	listeners []subscription
	nextID    int
}

// New validates cfg and builds a picker with an empty value.
func New(cfg Config) (*Picker, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	timeFormat := ""
	if cfg.ShowTime {
		timeFormat = cfg.TimeFormat
	}
	spec, err := format.Combine(cfg.DateFormat, timeFormat, cfg.Separator)
	if err != nil {
		return nil, err
	}
	lang := cfg.Lang()
	p := &Picker{
		cfg:  cfg,
		spec: spec,
		codec: format.Codec{
			Language: lang,
			Now:      cfg.Now,
			Location: cfg.loc(),
		},
		lang:  lang,
		modes: viewmode.New(cfg.ViewMode, cfg.MinViewMode),
		host:  &textHost{},
	}
	p.view = date.New(cfg.now()).ViewDate()
	return p, nil
}

// Config returns the configuration the picker was built with.
func (p *Picker) Config() Config { return p.cfg }

// Spec returns the parsed format.
func (p *Picker) Spec() format.DateTimeSpec { return p.spec }

// Now reads the configured clock.
func (p *Picker) Now() time.Time { return p.cfg.now() }

// Language returns the resolved language table.
func (p *Picker) Language() locale.Language { return p.lang }

// Bind attaches a host field and reads its current text.
func (p *Picker) Bind(h Host) format.Result {
	if h == nil {
		h = &textHost{}
	}
	p.host = h
	return p.Update()
}

// Update re-reads the host text. Empty text clears the value. Text that does
// not match the format, or names a date outside the bounds or disabled by the
// render hook, leaves the value alone, restores the host text and reports the
// fallback in the result.
func (p *Picker) Update() format.Result {
	r := p.codec.Parse(p.host.Value(), p.spec)
	if !r.Fallback() && !p.selectable(r.Value.Time) {
		r.Reason = format.ReasonNotSelectable
	}
	switch {
	case r.Reason == format.ReasonEmpty:
		p.commit(date.Value{})
	case r.Fallback():
		p.sync()
	default:
		p.commit(r.Value)
	}
	if !p.value.IsZero() {
		p.view = p.value.ViewDate()
	}
	return r
}

// SetText writes s into the host and parses it.
func (p *Picker) SetText(s string) format.Result {
	p.host.SetValue(s)
	return p.Update()
}

// Text renders the current value with the configured format, or "" when the
// value is empty.
func (p *Picker) Text() string {
	if p.value.IsZero() {
		return ""
	}
	return format.FormatDateTime(p.value.Time, p.spec, p.lang)
}

// Value returns the selected value; zero when empty.
func (p *Picker) Value() date.Value { return p.value }

// ViewDate returns the displayed page date.
func (p *Picker) ViewDate() date.Value { return p.view }

// Mode returns the displayed page granularity.
func (p *Picker) Mode() viewmode.Mode { return p.modes.Mode() }

// SetViewDate moves the displayed page to hold t. The value is untouched.
func (p *Picker) SetViewDate(t time.Time) {
	if t.IsZero() {
		return
	}
	p.view = date.New(t.In(p.cfg.loc())).ViewDate()
}

// Visible reports whether the popup is open.
func (p *Picker) Visible() bool { return p.visible }

// SetValue selects t directly. A zero t clears the value. Without the clock
// fields the time of day is dropped. A day that could not be picked from the
// grid is refused with ErrDisabled.
func (p *Picker) SetValue(t time.Time) error {
	if t.IsZero() {
		p.commit(date.Value{})
		return nil
	}
	v := date.New(t.In(p.cfg.loc()))
	if !p.cfg.ShowTime {
		v = v.Midnight()
	}
	if !p.selectable(v.Time) {
		return fmt.Errorf("%w: %s", ErrDisabled, v.Format("2006-01-02"))
	}
	p.commit(v)
	p.view = v.ViewDate()
	return nil
}

func (p *Picker) selectable(t time.Time) bool {
	return calendar.Check(t, p.cfg.bounds(), p.cfg.OnRender).Selectable()
}

// Show opens the popup on the page holding the value, or today.
func (p *Picker) Show() {
	if p.visible {
		return
	}
	p.visible = true
	if p.value.IsZero() {
		p.view = date.New(p.cfg.now()).ViewDate()
	} else {
		p.view = p.value.ViewDate()
	}
	p.emit(EventShow)
}

// Hide closes the popup and restores the starting page mode.
func (p *Picker) Hide() {
	if !p.visible {
		return
	}
	p.visible = false
	p.modes.Reset()
	p.emit(EventHide)
}

// Prev pages back by one unit of the current mode. It reports false when the
// previous page holds nothing selectable.
func (p *Picker) Prev() bool { return p.page(-1) }

// Next pages forward by one unit of the current mode.
func (p *Picker) Next() bool { return p.page(1) }

// CanPrev reports whether Prev would move.
func (p *Picker) CanPrev() bool { return p.pageOpen(p.modes.Step(p.view, -1)) }

// CanNext reports whether Next would move.
func (p *Picker) CanNext() bool { return p.pageOpen(p.modes.Step(p.view, 1)) }

func (p *Picker) page(delta int) bool {
	next := p.modes.Step(p.view, delta)
	if !p.pageOpen(next) {
		return false
	}
	p.view = next
	return true
}

func (p *Picker) pageOpen(v date.Value) bool {
	b := p.cfg.bounds()
	loc := p.cfg.loc()
	switch p.modes.Mode() {
	case viewmode.Days:
		return b.ContainsMonth(v.Year(), v.Month(), loc)
	case viewmode.Months:
		return b.ContainsYear(v.Year(), loc)
	default:
		decade := calendar.DecadeStart(v.Year())
		for y := decade; y < decade+10; y++ {
			if b.ContainsYear(y, loc) {
				return true
			}
		}
		return false
	}
}

// DrillUp switches to a coarser page.
func (p *Picker) DrillUp() viewmode.Mode { return p.modes.DrillUp() }

// SelectDay picks the day of t. Picking a day outside the displayed month
// also moves the page there.
func (p *Picker) SelectDay(t time.Time) error {
	if p.modes.Mode() != viewmode.Days {
		return fmt.Errorf("%w: day pick on %s page", ErrWrongMode, p.modes.Mode())
	}
	t = t.In(p.cfg.loc())
	v := date.Of(t.Year(), t.Month(), t.Day(), 0, 0, 0, p.cfg.loc())
	if p.cfg.ShowTime && !p.value.IsZero() {
		v.SetClock(p.value.Hour(), p.value.Minute(), p.value.Second())
	}
	return p.pickDay(v)
}

func (p *Picker) pickDay(v date.Value) error {
	if !p.selectable(v.Time) {
		return fmt.Errorf("%w: %s", ErrDisabled, v.Format("2006-01-02"))
	}
	p.commit(v)
	p.view = v.ViewDate()
	if p.cfg.Autoclose {
		p.Hide()
	}
	return nil
}

// SelectMonth picks a month on the months page. On the minimum mode the
// first of the month becomes the value; otherwise the page drills down.
func (p *Picker) SelectMonth(m time.Month) error {
	if p.modes.Mode() != viewmode.Months {
		return fmt.Errorf("%w: month pick on %s page", ErrWrongMode, p.modes.Mode())
	}
	if m < time.January || m > time.December {
		return fmt.Errorf("picker: month %d out of range", m)
	}
	if !p.cfg.bounds().ContainsMonth(p.view.Year(), m, p.cfg.loc()) {
		return fmt.Errorf("%w: %s %d", ErrDisabled, m, p.view.Year())
	}
	p.view.SetMonth(m)
	return p.selectPage()
}

// SelectYear picks a year on the years page.
func (p *Picker) SelectYear(year int) error {
	if p.modes.Mode() != viewmode.Years {
		return fmt.Errorf("%w: year pick on %s page", ErrWrongMode, p.modes.Mode())
	}
	if !p.cfg.bounds().ContainsYear(year, p.cfg.loc()) {
		return fmt.Errorf("%w: %d", ErrDisabled, year)
	}
	p.view.SetYear(year)
	return p.selectPage()
}

func (p *Picker) selectPage() error {
	if p.modes.Select() == viewmode.Drill {
		return nil
	}
	month := p.view.Month()
	if p.modes.Mode() == viewmode.Years {
		month = time.January
	}
	v := date.Of(p.view.Year(), month, 1, 0, 0, 0, p.cfg.loc())
	// Clamp a commit that lands before the start bound.
	if !p.cfg.StartDate.IsZero() && v.Before(date.New(p.cfg.StartDate.In(p.cfg.loc())).Midnight().Time) {
		v = date.New(p.cfg.StartDate.In(p.cfg.loc())).Midnight()
	}
	p.commit(v)
	if p.cfg.Autoclose {
		p.Hide()
	}
	return nil
}

// AddHours moves the hour, wrapping within the day.
func (p *Picker) AddHours(delta int) { p.addClock(delta, 0, 0) }

// AddMinutes moves the minute, wrapping within the hour.
func (p *Picker) AddMinutes(delta int) { p.addClock(0, delta, 0) }

// AddSeconds moves the second, wrapping within the minute.
func (p *Picker) AddSeconds(delta int) { p.addClock(0, 0, delta) }

func (p *Picker) addClock(dh, dm, ds int) {
	v := p.value
	if v.IsZero() {
		v = date.New(p.cfg.now()).Midnight()
	}
	v.SetClock(wrap(v.Hour()+dh, 24), wrap(v.Minute()+dm, 60), wrap(v.Second()+ds, 60))
	p.commit(v)
}

func wrap(n, mod int) int {
	n %= mod
	if n < 0 {
		n += mod
	}
	return n
}

// Today selects the current day on the finest page the picker allows. With
// the clock shown the current time of day is taken too.
func (p *Picker) Today() error {
	for p.modes.Mode() > p.modes.Min() {
		p.modes.DrillDown()
	}
	now := date.New(p.cfg.now().In(p.cfg.loc()))
	p.view = now.ViewDate()
	b, loc := p.cfg.bounds(), p.cfg.loc()
	switch p.modes.Mode() {
	case viewmode.Days:
		if !p.cfg.ShowTime {
			now = now.Midnight()
		}
		return p.pickDay(now)
	case viewmode.Months:
		if !b.ContainsMonth(now.Year(), now.Month(), loc) {
			return fmt.Errorf("%w: %s %d", ErrDisabled, now.Month(), now.Year())
		}
	default:
		if !b.ContainsYear(now.Year(), loc) {
			return fmt.Errorf("%w: %d", ErrDisabled, now.Year())
		}
	}
	return p.selectPage()
}

// Done closes the popup keeping the value.
func (p *Picker) Done() { p.Hide() }

// Clear empties the value and the host text.
func (p *Picker) Clear() {
	p.commit(date.Value{})
}

// Grid builds the day page for the displayed month.
func (p *Picker) Grid() calendar.Grid {
	return calendar.BuildMonthGrid(p.view.Year(), p.view.Month(), calendar.Options{
		WeekStart: p.cfg.WeekStart,
		Selected:  p.value.Time,
		Today:     p.cfg.now(),
		Hook:      p.cfg.OnRender,
		Bounds:    p.cfg.bounds(),
		Location:  p.cfg.loc(),
	})
}

// MonthsPage builds the months page for the displayed year.
func (p *Picker) MonthsPage() []calendar.Cell {
	return calendar.BuildMonthsPage(p.view.Year(), p.value.Time, p.cfg.bounds(), p.cfg.loc())
}

// YearsPage builds the years page for the displayed decade.
func (p *Picker) YearsPage() (int, []calendar.Cell) {
	return calendar.BuildYearsPage(p.view.Year(), p.value.Time, p.cfg.bounds(), p.cfg.loc())
}

// Header returns the weekday labels for the day page.
func (p *Picker) Header() []string {
	return calendar.WeekdayHeader(p.cfg.WeekStart, p.lang)
}

// Title labels the displayed page: "March 2024", "2024" or "2020-2029".
func (p *Picker) Title() string {
	switch p.modes.Mode() {
	case viewmode.Days:
		return fmt.Sprintf("%s %d", p.lang.Months[p.view.Month()-1], p.view.Year())
	case viewmode.Months:
		return fmt.Sprintf("%d", p.view.Year())
	default:
		d := calendar.DecadeStart(p.view.Year())
		return fmt.Sprintf("%d-%d", d, d+9)
	}
}

// commit stores v, mirrors it into the host and emits change when the value
// actually moved.
func (p *Picker) commit(v date.Value) {
	changed := !v.Equal(p.value.Time) || v.IsZero() != p.value.IsZero()
	p.value = v
	p.sync()
	if changed {
		p.emit(EventChange)
	}
}

func (p *Picker) sync() {
	if text := p.Text(); p.host.Value() != text {
		p.host.SetValue(text)
	}
}
