package picker

import (
	"fmt"
	"time"

	"tableflip.dev/datepicker/pkg/calendar"
	"tableflip.dev/datepicker/pkg/locale"
	"tableflip.dev/datepicker/pkg/viewmode"
)

// Defaults applied by DefaultConfig.
const (
	DefaultDateFormat = "mm/dd/yyyy"
	DefaultTimeFormat = "HH:mm"
	DefaultSeparator  = " "
)

// Config is the immutable configuration of a picker. Build one with
// NewConfig; the zero value is not valid.
type Config struct {
	DateFormat  string
	TimeFormat  string
	Separator   string
	Language    string
	Languages   locale.Table
	WeekStart   time.Weekday
	ViewMode    viewmode.Mode
	MinViewMode viewmode.Mode
	ShowTime    bool
	ShowButtons bool
	Autoclose   bool
	StartDate   time.Time
	EndDate     time.Time
	OnRender    calendar.RenderHook
	Now         func() time.Time
	Location    *time.Location
}

// Option adjusts a Config under construction.
type Option func(*Config)

// DefaultConfig returns the baseline configuration.
func DefaultConfig() Config {
	return Config{
		DateFormat:  DefaultDateFormat,
		TimeFormat:  DefaultTimeFormat,
		Separator:   DefaultSeparator,
		Language:    locale.DefaultCode,
		Languages:   locale.Builtin(),
		WeekStart:   time.Sunday,
		ViewMode:    viewmode.Days,
		MinViewMode: viewmode.Days,
		Now:         time.Now,
		Location:    time.Local,
	}
}

// NewConfig applies opts over DefaultConfig.
func NewConfig(opts ...Option) Config {
	c := DefaultConfig()
	for _, o := range opts {
		o(&c)
	}
	return c
}

// With returns a copy of c with opts applied.
func (c Config) With(opts ...Option) Config {
	for _, o := range opts {
		o(&c)
	}
	return c
}

// WithDateFormat sets the date format, e.g. "dd.mm.yyyy".
func WithDateFormat(f string) Option { return func(c *Config) { c.DateFormat = f } }

// WithTimeFormat sets the time format, e.g. "HH:mm:ss".
func WithTimeFormat(f string) Option { return func(c *Config) { c.TimeFormat = f } }

// WithSeparator sets the text between the date and the time.
func WithSeparator(s string) Option { return func(c *Config) { c.Separator = s } }

// WithLanguage selects a language code.
func WithLanguage(code string) Option { return func(c *Config) { c.Language = code } }

// WithLanguages replaces the language table.
func WithLanguages(t locale.Table) Option { return func(c *Config) { c.Languages = t } }

// WithWeekStart sets the first column of the month grid.
func WithWeekStart(d time.Weekday) Option { return func(c *Config) { c.WeekStart = d } }

// WithViewMode sets the starting page.
func WithViewMode(m viewmode.Mode) Option { return func(c *Config) { c.ViewMode = m } }

// WithMinViewMode sets the finest page; picks there commit the value.
func WithMinViewMode(m viewmode.Mode) Option { return func(c *Config) { c.MinViewMode = m } }

// WithShowTime enables the clock fields.
func WithShowTime(b bool) Option { return func(c *Config) { c.ShowTime = b } }

// WithShowButtons enables the today and clear buttons.
func WithShowButtons(b bool) Option { return func(c *Config) { c.ShowButtons = b } }

// WithAutoclose hides the popup after a day is picked.
func WithAutoclose(b bool) Option { return func(c *Config) { c.Autoclose = b } }

// WithBounds limits the selectable range. Zero times are open ends.
func WithBounds(start, end time.Time) Option {
	return func(c *Config) {
		c.StartDate = start
		c.EndDate = end
	}
}

// WithOnRender installs a per-day class hook.
func WithOnRender(h calendar.RenderHook) Option { return func(c *Config) { c.OnRender = h } }

// WithClock injects the clock and location, mostly for tests.
func WithClock(now func() time.Time, loc *time.Location) Option {
	return func(c *Config) {
		c.Now = now
		c.Location = loc
	}
}

// Validate checks the non-format fields.
func (c Config) Validate() error {
	if c.WeekStart < time.Sunday || c.WeekStart > time.Saturday {
		return fmt.Errorf("picker: week start %d out of range 0-6", c.WeekStart)
	}
	if !c.StartDate.IsZero() && !c.EndDate.IsZero() && c.EndDate.Before(c.StartDate) {
		return fmt.Errorf("picker: end date %s before start date %s",
			c.EndDate.Format("2006-01-02"), c.StartDate.Format("2006-01-02"))
	}
	return nil
}

// Lang resolves the configured language.
func (c Config) Lang() locale.Language {
	return locale.Resolve(c.Languages, c.Language)
}

func (c Config) bounds() calendar.Bounds {
	return calendar.Bounds{Start: c.StartDate, End: c.EndDate}
}

func (c Config) now() time.Time {
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	return now().In(c.loc())
}

func (c Config) loc() *time.Location {
	if c.Location != nil {
		return c.Location
	}
	return time.Local
}
