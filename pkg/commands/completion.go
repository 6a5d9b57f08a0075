package commands

import (
	"context"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"tableflip.dev/datepicker/pkg/commands/options"
	"tableflip.dev/datepicker/pkg/store"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(datepicker completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(datepicker completion)
`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletion(os.Stdout)
		},
	}

	topLevel.AddCommand(cmd)
}

// rememberCompletions offers the names of remembered picks.
func rememberCompletions(cmd *cobra.Command, po *options.PickerOptions) []string {
	s, err := po.Settings(cmd)
	if err != nil {
		return nil
	}
	p, err := store.Load(s.StorePath)
	if err != nil {
		return nil
	}
	all := p.List(context.Background())
	names := make([]string, 0, len(all))
	for _, pick := range all {
		names = append(names, strconv.Quote(pick.Name))
	}
	return names
}
