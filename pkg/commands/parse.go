package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/datepicker/pkg/commands/options"
	"tableflip.dev/datepicker/pkg/runner/parse"
)

func addParse(topLevel *cobra.Command) {
	po := &options.PickerOptions{}
	pa := &options.ParseOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "parse TEXT",
		Short: "Read text with a picker format",
		Long: `Read text with a picker format. Pieces the text does not supply are taken
from today. Text that does not have as many pieces as the format falls back to
today unless --strict is given.`,
		Example: `
datepicker parse 5.3.2024 --date-format=dd.mm.yyyy
datepicker parse "03/05/2024 7:5" --show-time --json
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires the text to parse")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := po.PickerConfig(cmd)
			if err != nil {
				return oo.HandleError(err)
			}
			p := parse.Parse{
				Config: cfg,
				Text:   strings.Join(args, " "),
				Strict: pa.Strict,
				JSON:   oo.JSON,
			}
			err = p.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddFormatArgs(cmd, po)
	options.AddParseArgs(cmd, pa)
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
