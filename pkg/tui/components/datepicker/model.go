// Package datepicker is the Bubble Tea popup around a picker.Picker. A
// textinput is the host field; the calendar page sits below it.
package datepicker

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/datepicker/pkg/calendar"
	"tableflip.dev/datepicker/pkg/date"
	"tableflip.dev/datepicker/pkg/picker"
	"tableflip.dev/datepicker/pkg/tui/theme"
	"tableflip.dev/datepicker/pkg/viewmode"
)

const (
	gridWidth   = len("11 12 13 14 15 16 17")
	pageColumns = 4
	helpWidth   = 40
)

// EventMsg carries a picker event into the Bubble Tea loop.
type EventMsg struct {
	Event picker.Event
}

// DoneMsg is sent once the popup hides. Cancelled is true when the user
// aborted instead of accepting.
type DoneMsg struct {
	Value     date.Value
	Text      string
	Cancelled bool
}

// Model renders the popup and routes keys to the picker.
type Model struct {
	p     *picker.Picker
	theme theme.Theme
	input textinput.Model

	typing    bool
	cursor    date.Value
	index     int
	status    string
	width     int
	done      bool
	cancelled bool

	pending []picker.Event
}

// New binds p to a fresh text field and opens the popup.
func New(p *picker.Picker, th theme.Theme) *Model {
	in := textinput.New()
	in.Prompt = "> "
	in.Placeholder = p.Spec().String()
	in.SetValue(p.Text())

	m := &Model{p: p, theme: th, input: in}
	p.Subscribe(func(e picker.Event) { m.pending = append(m.pending, e) })
	if r := p.Bind(&m.input); r.Fallback() {
		m.status = r.Err().Error()
	}
	p.Show()
	m.resetCursor()
	return m
}

// Picker exposes the controller, mostly for tests and callers reading the
// final value.
func (m *Model) Picker() *picker.Picker { return m.p }

// Done reports whether the popup has closed.
func (m *Model) Done() bool { return m.done }

// Cancelled reports whether the popup was aborted.
func (m *Model) Cancelled() bool { return m.cancelled }

// Cursor returns the highlighted date.
func (m *Model) Cursor() date.Value { return m.cursor }

// Status returns the last status line.
func (m *Model) Status() string { return m.status }

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update processes Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tea.KeyPressMsg:
		if m.typing {
			cmds = append(cmds, m.handleTyping(msg))
		} else {
			cmds = append(cmds, m.handleKey(msg))
		}
	}
	cmds = append(cmds, m.flush()...)
	return m, tea.Batch(cmds...)
}

// flush turns queued picker events into messages. A hide event ends the
// popup.
func (m *Model) flush() []tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.pending)+1)
	for _, e := range m.pending {
		e := e
		cmds = append(cmds, func() tea.Msg { return EventMsg{Event: e} })
		if e.Type == picker.EventHide && !m.done {
			m.done = true
			done := DoneMsg{Value: m.p.Value(), Text: m.p.Text(), Cancelled: m.cancelled}
			cmds = append(cmds, func() tea.Msg { return done })
		}
	}
	m.pending = m.pending[:0]
	return cmds
}

func (m *Model) handleTyping(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c":
		m.cancel()
		return nil
	case "enter":
		r := m.p.Update()
		m.report(r.Err())
		m.resetCursor()
		return nil
	case "tab", "esc":
		m.typing = false
		m.input.Blur()
		return nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	cfg := m.p.Config()
	m.status = ""
	switch msg.String() {
	case "ctrl+c", "q":
		m.cancel()
	case "esc":
		m.p.Hide()
	case "tab":
		m.typing = true
		return m.input.Focus()
	case "left", "h":
		m.move(-1, -1)
	case "right", "l":
		m.move(1, 1)
	case "up", "k":
		m.move(-7, -pageColumns)
	case "down", "j":
		m.move(7, pageColumns)
	case "[", "pgup":
		m.page(-1)
	case "]", "pgdown":
		m.page(1)
	case "u", "backspace":
		m.p.DrillUp()
		m.resetCursor()
	case "enter", "space", " ":
		m.report(m.choose())
		m.resetCursor()
	case "t":
		if cfg.ShowButtons {
			m.report(m.p.Today())
			m.resetCursor()
		}
	case "c":
		if cfg.ShowButtons {
			m.p.Clear()
		}
	case "d":
		if cfg.ShowButtons {
			m.p.Done()
		}
	case "+", "=":
		m.clock(m.p.AddHours, 1)
	case "-":
		m.clock(m.p.AddHours, -1)
	case ">", ".":
		m.clock(m.p.AddMinutes, 1)
	case "<", ",":
		m.clock(m.p.AddMinutes, -1)
	case ")":
		m.clock(m.p.AddSeconds, 1)
	case "(":
		m.clock(m.p.AddSeconds, -1)
	}
	return nil
}

func (m *Model) cancel() {
	m.cancelled = true
	m.typing = false
	m.input.Blur()
	if m.p.Visible() {
		m.p.Hide()
		return
	}
	m.done = true
}

func (m *Model) clock(add func(int), delta int) {
	if !m.p.Config().ShowTime || m.p.Value().IsZero() {
		return
	}
	add(delta)
}

func (m *Model) report(err error) {
	switch {
	case err == nil:
		m.status = ""
	case errors.Is(err, picker.ErrDisabled):
		m.status = "not selectable"
	default:
		m.status = err.Error()
	}
}

// choose picks whatever the cursor is on.
func (m *Model) choose() error {
	switch m.p.Mode() {
	case viewmode.Days:
		return m.p.SelectDay(m.cursor.Time)
	case viewmode.Months:
		return m.p.SelectMonth(time.Month(m.index + 1))
	default:
		_, cells := m.p.YearsPage()
		return m.p.SelectYear(cells[m.index].Date.Year())
	}
}

// move shifts the cursor by days on the day page and by cells elsewhere,
// paging when it leaves the displayed page.
func (m *Model) move(days, cells int) {
	if m.p.Mode() == viewmode.Days {
		next := date.New(m.cursor.AddDate(0, 0, days))
		switch cmp := m.p.ViewDate().CompareMonth(next.Time); {
		case cmp > 0 && !m.p.Prev():
			return
		case cmp < 0 && !m.p.Next():
			return
		}
		m.cursor = next
		return
	}
	i := m.index + cells
	switch {
	case i < 0:
		if !m.p.Prev() {
			return
		}
		i += calendar.PageCells
	case i >= calendar.PageCells:
		if !m.p.Next() {
			return
		}
		i -= calendar.PageCells
	}
	m.index = i
}

func (m *Model) page(delta int) {
	if delta < 0 && !m.p.Prev() || delta > 0 && !m.p.Next() {
		return
	}
	if m.p.Mode() == viewmode.Days {
		v := m.p.ViewDate()
		day := m.cursor.Day()
		if n := date.DaysIn(v.Year(), v.Month()); day > n {
			day = n
		}
		m.cursor = date.Of(v.Year(), v.Month(), day, 0, 0, 0, v.Location())
	}
}

// resetCursor puts the cursor on the value, or on today, or on the first of
// the displayed month, whichever is on the page.
func (m *Model) resetCursor() {
	view := m.p.ViewDate()
	switch m.p.Mode() {
	case viewmode.Days:
		for _, t := range []time.Time{m.p.Value().Time, m.p.Now()} {
			if !t.IsZero() && view.SameMonth(t) {
				m.cursor = date.New(t).Midnight()
				return
			}
		}
		m.cursor = date.Of(view.Year(), view.Month(), 1, 0, 0, 0, view.Location())
	case viewmode.Months:
		m.index = int(view.Month()) - 1
	default:
		m.index = view.Year() - (calendar.DecadeStart(view.Year()) - 1)
	}
}

// View renders the text field, the page and the help line.
func (m *Model) View() string {
	if m.done {
		return ""
	}
	var body []string
	body = append(body, m.theme.Input.Render(m.input.View()))
	body = append(body, m.renderTitle())
	switch m.p.Mode() {
	case viewmode.Days:
		body = append(body, m.renderDays()...)
	case viewmode.Months:
		body = append(body, m.renderMonths()...)
	default:
		body = append(body, m.renderYears()...)
	}
	cfg := m.p.Config()
	if cfg.ShowTime {
		body = append(body, m.renderClock())
	}
	if cfg.ShowButtons {
		body = append(body, m.renderButtons())
	}
	frame := m.theme.Frame.Render(lipgloss.JoinVertical(lipgloss.Left, body...))

	lines := []string{frame}
	if m.status != "" {
		lines = append(lines, m.theme.Footer.Status.Render(m.status))
	}
	lines = append(lines, m.theme.Footer.Help.Render(wordwrap.String(m.help(), m.helpWidth())))
	return strings.Join(lines, "\n")
}

func (m *Model) helpWidth() int {
	if m.width > 0 && m.width < helpWidth {
		return m.width
	}
	return helpWidth
}

func (m *Model) help() string {
	if m.typing {
		return "enter parse, tab/esc back to calendar, ctrl+c abort"
	}
	parts := []string{"arrows/hjkl move", "enter pick", "[ ] page", "u up", "tab type", "esc done", "q abort"}
	cfg := m.p.Config()
	if cfg.ShowButtons {
		parts = append(parts, "t "+strings.ToLower(m.todayLabel()), "c clear", "d done")
	}
	if cfg.ShowTime {
		parts = append(parts, "+/- hour", "</> minute", "(/) second")
	}
	return strings.Join(parts, ", ")
}

func (m *Model) renderTitle() string {
	prev, next := " ", " "
	if m.p.CanPrev() {
		prev = "‹"
	}
	if m.p.CanNext() {
		next = "›"
	}
	title := lipgloss.PlaceHorizontal(gridWidth-4, lipgloss.Center, m.p.Title())
	return m.theme.Title.Render(prev + " " + title + " " + next)
}

func (m *Model) renderDays() []string {
	lines := []string{m.theme.Header.Render(strings.Join(m.p.Header(), " "))}
	for _, row := range m.p.Grid().Rows() {
		cells := make([]string, len(row))
		for i, c := range row {
			style := m.theme.Cell.For(c.Classes)
			if c.Date.SameDay(m.cursor.Time) {
				style = style.Inherit(m.theme.Cell.Cursor)
			}
			cells[i] = style.Render(fmt.Sprintf("%2d", c.Date.Day()))
		}
		lines = append(lines, strings.Join(cells, " "))
	}
	return lines
}

func (m *Model) renderMonths() []string {
	lang := m.p.Language()
	return m.renderPage(m.p.MonthsPage(), func(c calendar.Cell) string {
		return lang.MonthsShort[c.Date.Month()-1]
	})
}

func (m *Model) renderYears() []string {
	_, cells := m.p.YearsPage()
	return m.renderPage(cells, func(c calendar.Cell) string {
		return fmt.Sprintf("%d", c.Date.Year())
	})
}

func (m *Model) renderPage(cells []calendar.Cell, label func(calendar.Cell) string) []string {
	var lines []string
	row := make([]string, 0, pageColumns)
	for i, c := range cells {
		style := m.theme.Cell.For(c.Classes)
		if i == m.index {
			style = style.Inherit(m.theme.Cell.Cursor)
		}
		row = append(row, style.Render(lipgloss.PlaceHorizontal(4, lipgloss.Center, label(c))))
		if len(row) == pageColumns {
			lines = append(lines, strings.Join(row, " "))
			row = row[:0]
		}
	}
	return lines
}

func (m *Model) renderClock() string {
	lang := m.p.Language()
	v := m.p.Value()
	if v.IsZero() {
		return m.theme.Footer.Status.Render(fmt.Sprintf("%s --  %s --  %s --", lang.Hours, lang.Minutes, lang.Seconds))
	}
	return m.theme.Title.Render(fmt.Sprintf("%s %02d  %s %02d  %s %02d",
		lang.Hours, v.Hour(), lang.Minutes, v.Minute(), lang.Seconds, v.Second()))
}

// todayLabel is "Now" when the clock is shown, since the button then takes
// the time of day too.
func (m *Model) todayLabel() string {
	lang := m.p.Language()
	if m.p.Config().ShowTime {
		return lang.Now
	}
	return lang.Today
}

func (m *Model) renderButtons() string {
	lang := m.p.Language()
	labels := []string{m.todayLabel(), lang.Clear, lang.Done}
	for i, l := range labels {
		labels[i] = m.theme.Footer.Button.Render(l)
	}
	return strings.Join(labels, "  ")
}
