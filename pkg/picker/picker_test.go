package picker

import (
	"errors"
	"testing"
	"time"

	"tableflip.dev/datepicker/pkg/calendar"
	"tableflip.dev/datepicker/pkg/format"
	"tableflip.dev/datepicker/pkg/viewmode"
)

var fixedNow = time.Date(2024, time.March, 14, 9, 30, 0, 0, time.UTC)

func newPicker(t *testing.T, opts ...Option) (*Picker, *[]Event) {
	t.Helper()
	cfg := NewConfig(append([]Option{WithClock(func() time.Time { return fixedNow }, time.UTC)}, opts...)...)
	p, err := New(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var events []Event
	p.Subscribe(func(e Event) { events = append(events, e) })
	return p, &events
}

func types(events []Event) []EventType {
	out := make([]EventType, len(events))
	for i, e := range events {
		out[i] = e.Type
	}
	return out
}

func TestNewRejectsBadConfig(t *testing.T) {
	if _, err := New(NewConfig(WithDateFormat("dd,mm"))); !errors.Is(err, format.ErrInvalidFormat) {
		t.Fatalf("expected invalid format error, got %v", err)
	}
	if _, err := New(NewConfig(WithShowTime(true), WithTimeFormat("HH-mm"))); !errors.Is(err, format.ErrInvalidFormat) {
		t.Fatalf("expected invalid time format error, got %v", err)
	}
	if _, err := New(NewConfig(WithWeekStart(time.Weekday(8)))); err == nil {
		t.Fatalf("expected week start error")
	}
	if _, err := New(NewConfig(WithBounds(fixedNow, fixedNow.AddDate(0, 0, -1)))); err == nil {
		t.Fatalf("expected bounds error")
	}
	// Time format is ignored when the clock is hidden.
	if _, err := New(NewConfig(WithTimeFormat("bogus"))); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestShowHideEvents(t *testing.T) {
	p, events := newPicker(t, WithViewMode(viewmode.Months))
	p.Show()
	p.Show()
	if !p.Visible() {
		t.Fatalf("expected visible")
	}
	p.DrillUp()
	if p.Mode() != viewmode.Years {
		t.Fatalf("expected years, got %s", p.Mode())
	}
	p.Hide()
	if p.Mode() != viewmode.Months {
		t.Fatalf("expected hide to reset to months, got %s", p.Mode())
	}
	got := types(*events)
	if len(got) != 2 || got[0] != EventShow || got[1] != EventHide {
		t.Fatalf("unexpected events %v", got)
	}
}

func TestSetTextSyncsHost(t *testing.T) {
	p, events := newPicker(t, WithDateFormat("dd.mm.yyyy"))
	r := p.SetText("5.3.2024")
	if r.Fallback() {
		t.Fatalf("unexpected fallback %s", r.Reason)
	}
	if p.Text() != "05.03.2024" {
		t.Fatalf("expected normalised text, got %q", p.Text())
	}
	if p.ViewDate().Month() != time.March {
		t.Fatalf("expected view to follow the value")
	}
	if len(*events) != 1 || (*events)[0].Type != EventChange || (*events)[0].Text != "05.03.2024" {
		t.Fatalf("unexpected events %+v", *events)
	}

	r = p.SetText("garbage")
	if !r.Fallback() || r.Reason != format.ReasonDateTokenCount {
		t.Fatalf("expected token count fallback, got %s", r.Reason)
	}
	if p.Value().Day() != 5 || p.Text() != "05.03.2024" {
		t.Fatalf("fallback must keep the previous value, got %q", p.Text())
	}
	if len(*events) != 1 {
		t.Fatalf("fallback must not emit change")
	}

	p.SetText("")
	if !p.Value().IsZero() || p.Text() != "" {
		t.Fatalf("expected empty text to clear")
	}
	if len(*events) != 2 {
		t.Fatalf("expected clear to emit change")
	}
}

type fakeHost struct{ v string }

func (f *fakeHost) Value() string     { return f.v }
func (f *fakeHost) SetValue(s string) { f.v = s }

func TestBindReadsHost(t *testing.T) {
	p, _ := newPicker(t, WithShowTime(true), WithTimeFormat("HH:mm"))
	h := &fakeHost{v: "03/05/2024 7:5"}
	r := p.Bind(h)
	if r.Fallback() {
		t.Fatalf("unexpected fallback %s", r.Reason)
	}
	if h.v != "03/05/2024 07:05" {
		t.Fatalf("expected host rewritten, got %q", h.v)
	}
	p.AddMinutes(-10)
	if h.v != "03/05/2024 07:55" {
		t.Fatalf("expected minutes to wrap within the hour, got %q", h.v)
	}
	p.AddHours(20)
	if h.v != "03/05/2024 03:55" {
		t.Fatalf("expected hours to wrap within the day, got %q", h.v)
	}
	if err := p.SelectDay(time.Date(2024, time.March, 9, 0, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.v != "03/09/2024 03:55" {
		t.Fatalf("expected day pick to keep the clock, got %q", h.v)
	}
}

func TestNavigation(t *testing.T) {
	p, _ := newPicker(t)
	p.SetValue(time.Date(2024, time.January, 31, 15, 0, 0, 0, time.UTC))
	if p.Value().Hour() != 0 {
		t.Fatalf("expected time dropped without clock")
	}
	p.Next()
	if v := p.ViewDate(); v.Month() != time.February || v.Day() != 28 {
		t.Fatalf("expected Feb view, got %s", v)
	}
	p.DrillUp()
	p.Prev()
	if p.ViewDate().Year() != 2023 {
		t.Fatalf("expected a year back, got %d", p.ViewDate().Year())
	}
	p.DrillUp()
	p.Next()
	if p.ViewDate().Year() != 2033 {
		t.Fatalf("expected a decade forward, got %d", p.ViewDate().Year())
	}
	if p.Title() != "2030-2039" {
		t.Fatalf("unexpected title %q", p.Title())
	}
}

func TestBoundedNavigation(t *testing.T) {
	p, _ := newPicker(t, WithBounds(
		time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.April, 30, 0, 0, 0, 0, time.UTC),
	))
	if p.CanPrev() {
		t.Fatalf("February is outside the bounds")
	}
	if p.Prev() {
		t.Fatalf("expected prev to be refused")
	}
	if !p.Next() || p.Next() {
		t.Fatalf("expected exactly one step forward to April")
	}
	if err := p.SelectDay(time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)); !errors.Is(err, ErrDisabled) {
		t.Fatalf("expected disabled error, got %v", err)
	}
}

func TestSelectDayHookAndAutoclose(t *testing.T) {
	hook := func(d time.Time) string {
		if d.Weekday() == time.Saturday {
			return "disabled"
		}
		return ""
	}
	p, events := newPicker(t, WithOnRender(hook), WithAutoclose(true))
	p.Show()
	if err := p.SelectDay(time.Date(2024, time.March, 16, 0, 0, 0, 0, time.UTC)); !errors.Is(err, ErrDisabled) {
		t.Fatalf("expected Saturday disabled, got %v", err)
	}
	if err := p.SelectDay(time.Date(2024, time.April, 2, 0, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Visible() {
		t.Fatalf("expected autoclose")
	}
	if p.ViewDate().Month() != time.April {
		t.Fatalf("expected view to follow the pick")
	}
	got := types(*events)
	want := []EventType{EventShow, EventChange, EventHide}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestSelectMonthDrillsOrCommits(t *testing.T) {
	p, events := newPicker(t)
	p.DrillUp()
	if err := p.SelectMonth(time.July); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Mode() != viewmode.Days || p.ViewDate().Month() != time.July {
		t.Fatalf("expected drill to July days, got %s %s", p.Mode(), p.ViewDate())
	}
	if len(*events) != 0 || !p.Value().IsZero() {
		t.Fatalf("drill must not commit")
	}
	if err := p.SelectMonth(time.July); !errors.Is(err, ErrWrongMode) {
		t.Fatalf("expected wrong mode error, got %v", err)
	}

	p, events = newPicker(t, WithMinViewMode(viewmode.Months), WithDateFormat("mm/yyyy"))
	if p.Mode() != viewmode.Months {
		t.Fatalf("expected start clamped to months")
	}
	p.DrillUp()
	if err := p.SelectYear(2031); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Mode() != viewmode.Months || len(*events) != 0 {
		t.Fatalf("expected drill from years to months without commit")
	}
	if err := p.SelectMonth(time.October); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Text() != "10/2031" {
		t.Fatalf("expected commit of Oct 2031, got %q", p.Text())
	}
	if len(*events) != 1 || (*events)[0].Type != EventChange {
		t.Fatalf("expected a change event, got %v", types(*events))
	}
}

func TestTodayAndClear(t *testing.T) {
	p, events := newPicker(t, WithShowButtons(true))
	p.DrillUp()
	p.DrillUp()
	if err := p.Today(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !p.Value().SameDay(fixedNow) || p.Mode() != viewmode.Days {
		t.Fatalf("expected today on the days page, got %s %s", p.Value(), p.Mode())
	}
	p.Clear()
	if !p.Value().IsZero() || p.Text() != "" {
		t.Fatalf("expected cleared value")
	}
	if len(*events) != 2 {
		t.Fatalf("expected two change events, got %v", types(*events))
	}

	p, _ = newPicker(t, WithMinViewMode(viewmode.Years), WithDateFormat("yyyy"))
	if err := p.Today(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Text() != "2024" {
		t.Fatalf("expected year commit, got %q", p.Text())
	}
}

func TestGridReflectsState(t *testing.T) {
	p, _ := newPicker(t, WithWeekStart(time.Monday), WithLanguage("de"))
	p.SetValue(time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC))
	g := p.Grid()
	if g.Cells[0].Date.Weekday() != time.Monday {
		t.Fatalf("expected Monday start")
	}
	sel := g.Find(p.Value().Time)
	if sel < 0 || !g.Cells[sel].Classes.Has(calendar.Active) {
		t.Fatalf("expected active cell")
	}
	today := g.Find(fixedNow)
	if today < 0 || !g.Cells[today].Classes.Has(calendar.Today) {
		t.Fatalf("expected today cell")
	}
	if p.Title() != "März 2024" {
		t.Fatalf("unexpected title %q", p.Title())
	}
	if h := p.Header(); h[0] != "Mo" || h[6] != "So" {
		t.Fatalf("unexpected header %v", h)
	}
	if months := p.MonthsPage(); !months[2].Classes.Has(calendar.Active) {
		t.Fatalf("expected March active on months page")
	}
	if _, years := p.YearsPage(); !years[5].Classes.Has(calendar.Active) {
		t.Fatalf("expected 2024 active on years page")
	}
}

func TestUnsubscribe(t *testing.T) {
	p, _ := newPicker(t)
	count := 0
	stop := p.Subscribe(func(Event) { count++ })
	p.SetValue(fixedNow)
	stop()
	p.Clear()
	if count != 1 {
		t.Fatalf("expected one delivery, got %d", count)
	}
}

func TestSetViewDate(t *testing.T) {
	p, events := newPicker(t)
	p.SetViewDate(time.Date(2025, time.July, 31, 0, 0, 0, 0, time.UTC))
	if v := p.ViewDate(); v.Year() != 2025 || v.Month() != time.July || v.Day() != 28 {
		t.Fatalf("unexpected view %s", v)
	}
	p.SetViewDate(time.Time{})
	if p.ViewDate().Month() != time.July {
		t.Fatalf("zero time must not move the view")
	}
	if !p.Value().IsZero() || len(*events) != 0 {
		t.Fatalf("moving the view must not touch the value")
	}
}

func TestTypedTextHonoursBoundsAndHook(t *testing.T) {
	p, events := newPicker(t,
		WithBounds(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC)),
		WithOnRender(func(d time.Time) string {
			if d.Day() == 20 {
				return "disabled"
			}
			return ""
		}),
	)
	if r := p.SetText("03/10/2024"); r.Fallback() {
		t.Fatalf("unexpected fallback %s", r.Reason)
	}
	for _, text := range []string{"01/01/1999", "03/20/2024"} {
		r := p.SetText(text)
		if r.Reason != format.ReasonNotSelectable {
			t.Fatalf("%s: expected not selectable, got %s", text, r.Reason)
		}
		if p.Text() != "03/10/2024" {
			t.Fatalf("%s: expected the old value kept, got %q", text, p.Text())
		}
	}
	if len(*events) != 1 {
		t.Fatalf("expected only the first commit, got %v", types(*events))
	}

	if err := p.SetValue(time.Date(2030, time.January, 1, 0, 0, 0, 0, time.UTC)); !errors.Is(err, ErrDisabled) {
		t.Fatalf("expected ErrDisabled, got %v", err)
	}
	if err := p.SetValue(time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC)); !errors.Is(err, ErrDisabled) {
		t.Fatalf("expected ErrDisabled for a hooked day, got %v", err)
	}
	if p.Text() != "03/10/2024" {
		t.Fatalf("expected the old value kept, got %q", p.Text())
	}
	if err := p.SetValue(time.Time{}); err != nil || !p.Value().IsZero() {
		t.Fatalf("expected clear, got %v", err)
	}
}

func TestTodayTakesClock(t *testing.T) {
	now := time.Date(2024, time.March, 14, 9, 30, 5, 0, time.UTC)
	cfg := NewConfig(WithClock(func() time.Time { return now }, time.UTC), WithShowTime(true), WithTimeFormat("HH:mm:ss"))
	p, err := New(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := p.Today(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Text() != "03/14/2024 09:30:05" {
		t.Fatalf("expected the current time, got %q", p.Text())
	}

	p, _ = newPicker(t)
	if err := p.Today(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Value().Hour() != 0 || p.Value().Minute() != 0 {
		t.Fatalf("expected midnight without the clock, got %s", p.Value())
	}
}

func TestTodayOnPagesUsesPageCommit(t *testing.T) {
	p, _ := newPicker(t, WithMinViewMode(viewmode.Months), WithDateFormat("mm/yyyy"), WithAutoclose(true))
	p.Show()
	if err := p.Today(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Text() != "03/2024" || p.Visible() {
		t.Fatalf("expected commit and autoclose, got %q visible=%v", p.Text(), p.Visible())
	}

	p, _ = newPicker(t,
		WithMinViewMode(viewmode.Years), WithDateFormat("dd/mm/yyyy"),
		WithBounds(time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC), time.Time{}),
	)
	if err := p.Today(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Text() != "15/06/2024" {
		t.Fatalf("expected the start bound clamp, got %q", p.Text())
	}

	p, _ = newPicker(t, WithMinViewMode(viewmode.Months),
		WithBounds(time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), time.Time{}))
	if err := p.Today(); !errors.Is(err, ErrDisabled) {
		t.Fatalf("expected ErrDisabled, got %v", err)
	}
}

func TestDone(t *testing.T) {
	p, events := newPicker(t)
	p.Show()
	if err := p.SelectDay(fixedNow); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p.Done()
	if p.Visible() || p.Text() != "03/14/2024" {
		t.Fatalf("expected hidden with the value kept, got %q", p.Text())
	}
	if got := types(*events); len(got) != 3 || got[2] != EventHide {
		t.Fatalf("unexpected events %v", got)
	}
}

func TestUnsubscribeCompacts(t *testing.T) {
	p, _ := newPicker(t)
	var a, b int
	stopA := p.Subscribe(func(Event) { a++ })
	stopB := p.Subscribe(func(Event) { b++ })
	stopA()
	stopA()
	if len(p.listeners) != 2 {
		t.Fatalf("expected the listener removed, got %d", len(p.listeners))
	}
	p.Clear()
	p.SetValue(fixedNow)
	if a != 0 || b != 1 {
		t.Fatalf("unexpected deliveries a=%d b=%d", a, b)
	}
	stopB()
	if len(p.listeners) != 1 {
		t.Fatalf("expected only the test listener, got %d", len(p.listeners))
	}
}
