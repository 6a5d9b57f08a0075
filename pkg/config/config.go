// Package config loads picker settings from .datepicker.yaml, DATEPICKER_*
// environment variables and command line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"tableflip.dev/datepicker/pkg/picker"
	"tableflip.dev/datepicker/pkg/viewmode"
)

// Keys shared by the config file, the environment and the flags.
const (
	KeyDateFormat  = "date-format"
	KeyTimeFormat  = "time-format"
	KeySeparator   = "separator"
	KeyLanguage    = "language"
	KeyWeekStart   = "week-start"
	KeyViewMode    = "view-mode"
	KeyMinViewMode = "min-view-mode"
	KeyShowTime    = "show-time"
	KeyShowButtons = "show-buttons"
	KeyAutoclose   = "autoclose"
	KeyStartDate   = "start-date"
	KeyEndDate     = "end-date"
	KeyStorePath   = "store"
)

// PathEnv points at an extra directory holding .datepicker.yaml.
const PathEnv = "DATEPICKER_CONFIG_PATH"

const layoutISO = "2006-01-02"

// Settings is the flat, serialisable form of the picker configuration.
type Settings struct {
	DateFormat  string `mapstructure:"date-format" json:"dateFormat"`
	TimeFormat  string `mapstructure:"time-format" json:"timeFormat"`
	Separator   string `mapstructure:"separator" json:"separator"`
	Language    string `mapstructure:"language" json:"language"`
	WeekStart   int    `mapstructure:"week-start" json:"weekStart"`
	ViewMode    string `mapstructure:"view-mode" json:"viewMode"`
	MinViewMode string `mapstructure:"min-view-mode" json:"minViewMode"`
	ShowTime    bool   `mapstructure:"show-time" json:"showTime"`
	ShowButtons bool   `mapstructure:"show-buttons" json:"showButtons"`
	Autoclose   bool   `mapstructure:"autoclose" json:"autoclose"`
	StartDate   string `mapstructure:"start-date" json:"startDate,omitempty"`
	EndDate     string `mapstructure:"end-date" json:"endDate,omitempty"`
	StorePath   string `mapstructure:"store" json:"store"`
}

// Loader wraps a private viper instance.
type Loader struct {
	v *viper.Viper
}

// New prepares a loader with defaults, the config name and the env prefix.
func New() *Loader {
	v := viper.New()
	v.SetDefault(KeyDateFormat, picker.DefaultDateFormat)
	v.SetDefault(KeyTimeFormat, picker.DefaultTimeFormat)
	v.SetDefault(KeySeparator, picker.DefaultSeparator)
	v.SetDefault(KeyLanguage, "en")
	v.SetDefault(KeyWeekStart, 0)
	v.SetDefault(KeyViewMode, viewmode.Days.String())
	v.SetDefault(KeyMinViewMode, viewmode.Days.String())
	v.SetDefault(KeyShowTime, false)
	v.SetDefault(KeyShowButtons, false)
	v.SetDefault(KeyAutoclose, false)
	v.SetDefault(KeyStartDate, "")
	v.SetDefault(KeyEndDate, "")
	v.SetDefault(KeyStorePath, "~/.datepicker.db")

	v.SetConfigName(".datepicker") // .yaml is implicit
	v.SetEnvPrefix("DATEPICKER")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if override := os.Getenv(PathEnv); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}
	return &Loader{v: v}
}

// SetFile reads settings from an explicit file instead of searching.
func (l *Loader) SetFile(path string) {
	if path != "" {
		l.v.SetConfigFile(path)
	}
}

// BindFlags lets changed flags with matching names win over the file and env.
func (l *Loader) BindFlags(fs *pflag.FlagSet) error {
	var errs []error
	fs.VisitAll(func(f *pflag.Flag) {
		if !l.known(f.Name) {
			return
		}
		if err := l.v.BindPFlag(f.Name, f); err != nil {
			errs = append(errs, err)
		}
	})
	return errors.Join(errs...)
}

func (l *Loader) known(key string) bool {
	switch key {
	case KeyDateFormat, KeyTimeFormat, KeySeparator, KeyLanguage, KeyWeekStart,
		KeyViewMode, KeyMinViewMode, KeyShowTime, KeyShowButtons, KeyAutoclose,
		KeyStartDate, KeyEndDate, KeyStorePath:
		return true
	}
	return false
}

// Load reads the config file when one exists and returns the merged settings.
func (l *Loader) Load() (*Settings, error) {
	if err := l.v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("config: reading config file: %w", err)
		}
	}
	s := &Settings{}
	if err := l.v.Unmarshal(s); err != nil {
		return nil, fmt.Errorf("config: decoding settings: %w", err)
	}
	path, err := homedir.Expand(s.StorePath)
	if err != nil {
		return nil, fmt.Errorf("config: expanding store path: %w", err)
	}
	s.StorePath = path
	return s, nil
}

// File returns the config file in use, or "".
func (l *Loader) File() string {
	return l.v.ConfigFileUsed()
}

// Load is shorthand for New().Load().
func Load() (*Settings, error) {
	return New().Load()
}

// Options converts the settings into picker options.
func (s *Settings) Options() ([]picker.Option, error) {
	if s.WeekStart < 0 || s.WeekStart > 6 {
		return nil, fmt.Errorf("config: %s %d out of range 0-6", KeyWeekStart, s.WeekStart)
	}
	mode, err := viewmode.Parse(s.ViewMode)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", KeyViewMode, err)
	}
	minMode, err := viewmode.Parse(s.MinViewMode)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", KeyMinViewMode, err)
	}
	start, err := parseDay(KeyStartDate, s.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseDay(KeyEndDate, s.EndDate)
	if err != nil {
		return nil, err
	}
	return []picker.Option{
		picker.WithDateFormat(s.DateFormat),
		picker.WithTimeFormat(s.TimeFormat),
		picker.WithSeparator(s.Separator),
		picker.WithLanguage(s.Language),
		picker.WithWeekStart(time.Weekday(s.WeekStart)),
		picker.WithViewMode(mode),
		picker.WithMinViewMode(minMode),
		picker.WithShowTime(s.ShowTime),
		picker.WithShowButtons(s.ShowButtons),
		picker.WithAutoclose(s.Autoclose),
		picker.WithBounds(start, end),
	}, nil
}

// PickerConfig builds a picker.Config from the settings plus extra options.
func (s *Settings) PickerConfig(extra ...picker.Option) (picker.Config, error) {
	opts, err := s.Options()
	if err != nil {
		return picker.Config{}, err
	}
	return picker.NewConfig(append(opts, extra...)...), nil
}

func parseDay(key, v string) (time.Time, error) {
	if v == "" {
		return time.Time{}, nil
	}
	t, err := time.ParseInLocation(layoutISO, v, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("config: %s: %w", key, err)
	}
	return t, nil
}
