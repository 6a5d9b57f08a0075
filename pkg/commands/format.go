package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/datepicker/pkg/commands/options"
	formatrun "tableflip.dev/datepicker/pkg/runner/format"
)

func addFormat(topLevel *cobra.Command) {
	po := &options.PickerOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "format [now|RFC3339|YYYY-MM-DD]",
		Short: "Render a timestamp with a picker format",
		Example: `
datepicker format
datepicker format 2024-03-05 --date-format="dd MM yyyy" --language=de
datepicker format 2024-03-05T17:04:00Z --show-time --time-format=HH:mm:ss
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return errors.New("expected at most one timestamp")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			var in string
			if len(args) == 1 {
				in = args[0]
			}
			at, err := options.ParseInstant(in)
			if err != nil {
				return oo.HandleError(err)
			}
			cfg, err := po.PickerConfig(cmd)
			if err != nil {
				return oo.HandleError(err)
			}
			f := formatrun.Format{
				Config: cfg,
				At:     at,
				JSON:   oo.JSON,
			}
			err = f.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddFormatArgs(cmd, po)
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
