package commands

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/datepicker/pkg/printers"
	"tableflip.dev/datepicker/pkg/runner/pick"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "datepicker",
		Short: base.Wrap80("Pick, format and parse dates on the command line."),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			printers.ColorFor(os.Stdout)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addFormat(topLevel)
	addParse(topLevel)
	addCal(topLevel)
	addPick(topLevel)
	addHistory(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}

// Quiet reports whether err should end the process without a message. An
// aborted pick is the only such error; it still exits non-zero.
func Quiet(err error) bool {
	return errors.Is(err, pick.ErrCancelled)
}
