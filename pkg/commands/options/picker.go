// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/datepicker/pkg/config"
	"tableflip.dev/datepicker/pkg/picker"
)

// PickerOptions holds the config file flag. The picker flags themselves are
// read back through the config loader, which lets changed flags win over the
// file and the environment.
type PickerOptions struct {
	ConfigFile string
}

// AddFormatArgs registers the flags that shape the text format.
func AddFormatArgs(cmd *cobra.Command, o *PickerOptions) {
	addConfigArg(cmd, o)
	cmd.Flags().StringP(config.KeyDateFormat, "f", picker.DefaultDateFormat,
		`Date format built from d, dd, m, mm, M, MM, yy and yyyy, example: --date-format="dd.mm.yyyy".`)
	cmd.Flags().String(config.KeyTimeFormat, picker.DefaultTimeFormat,
		`Time format built from H, HH, m, mm, s and ss joined by ":".`)
	cmd.Flags().String(config.KeySeparator, picker.DefaultSeparator,
		"Text between the date and the time.")
	cmd.Flags().StringP(config.KeyLanguage, "l", "en",
		"Language of day and month names.")
	cmd.Flags().Bool(config.KeyShowTime, false,
		"Include the time of day.")
}

// AddCalendarArgs registers the flags that shape the calendar pages.
func AddCalendarArgs(cmd *cobra.Command, o *PickerOptions) {
	cmd.Flags().IntP(config.KeyWeekStart, "w", 0,
		"First day of the week, 0 (Sunday) to 6 (Saturday).")
	cmd.Flags().StringP(config.KeyViewMode, "m", "days",
		"Starting page: days, months or years.")
	cmd.Flags().String(config.KeyMinViewMode, "days",
		"Finest page that can be picked: days, months or years.")
	cmd.Flags().String(config.KeyStartDate, "",
		`Earliest selectable day, example: --start-date="2024-01-01".`)
	cmd.Flags().String(config.KeyEndDate, "",
		"Latest selectable day.")
}

// AddPopupArgs registers the flags that only matter to the interactive popup.
func AddPopupArgs(cmd *cobra.Command, o *PickerOptions) {
	cmd.Flags().Bool(config.KeyShowButtons, false,
		"Show the today and clear buttons.")
	cmd.Flags().Bool(config.KeyAutoclose, false,
		"Close the popup once a value is picked.")
}

// AddStoreArgs registers the store path flag.
func AddStoreArgs(cmd *cobra.Command, o *PickerOptions) {
	addConfigArg(cmd, o)
	cmd.Flags().String(config.KeyStorePath, "",
		"Directory holding remembered picks.")
}

func addConfigArg(cmd *cobra.Command, o *PickerOptions) {
	if cmd.Flags().Lookup("config") != nil {
		return
	}
	cmd.Flags().StringVar(&o.ConfigFile, "config", "",
		"Read settings from this file instead of .datepicker.yaml.")
}

// Settings loads the config file and the environment, then applies the flags
// the user changed.
func (o *PickerOptions) Settings(cmd *cobra.Command) (*config.Settings, error) {
	l := config.New()
	l.SetFile(o.ConfigFile)
	if err := l.BindFlags(cmd.Flags()); err != nil {
		return nil, err
	}
	return l.Load()
}

// PickerConfig is Settings followed by Settings.PickerConfig.
func (o *PickerOptions) PickerConfig(cmd *cobra.Command, extra ...picker.Option) (picker.Config, error) {
	s, err := o.Settings(cmd)
	if err != nil {
		return picker.Config{}, err
	}
	return s.PickerConfig(extra...)
}
