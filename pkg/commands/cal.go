package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/datepicker/pkg/commands/options"
	"tableflip.dev/datepicker/pkg/runner/cal"
)

func addCal(topLevel *cobra.Command) {
	po := &options.PickerOptions{}
	co := &options.CalOptions{}

	cmd := &cobra.Command{
		Use:     "cal [YYYY-MM]",
		Aliases: []string{"calendar"},
		Short:   "Print a calendar page",
		Example: `
datepicker cal
datepicker cal 2024-02 --week-start=1 --language=fr
datepicker cal --view-mode=years --select=2031-05-01
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return errors.New("expected at most one month")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			var month string
			if len(args) == 1 {
				month = args[0]
			}
			on, err := options.ParseMonth(month)
			if err != nil {
				return err
			}
			sel, err := co.GetSelect()
			if err != nil {
				return err
			}
			cfg, err := po.PickerConfig(cmd)
			if err != nil {
				return err
			}
			c := cal.Cal{
				Config:   cfg,
				On:       on,
				Selected: sel,
			}
			return c.Do(context.Background())
		},
	}

	options.AddFormatArgs(cmd, po)
	options.AddCalendarArgs(cmd, po)
	options.AddCalArgs(cmd, co)
	topLevel.AddCommand(cmd)
}
