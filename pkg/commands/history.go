package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/datepicker/pkg/commands/options"
	"tableflip.dev/datepicker/pkg/runner/history"
	"tableflip.dev/datepicker/pkg/store"
)

func addHistory(topLevel *cobra.Command) {
	po := &options.PickerOptions{}
	ho := &options.HistoryOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List remembered picks",
		Example: `
datepicker history
datepicker history --delete=release
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := po.Settings(cmd)
			if err != nil {
				return oo.HandleError(err)
			}
			p, err := store.Load(s.StorePath)
			if err != nil {
				return oo.HandleError(err)
			}
			h := history.History{
				Persistence: p,
				Delete:      ho.Delete,
				JSON:        oo.JSON,
			}
			err = h.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddStoreArgs(cmd, po)
	options.AddHistoryArgs(cmd, ho)
	options.AddOutputArg(cmd, oo)
	_ = cmd.RegisterFlagCompletionFunc("delete", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return rememberCompletions(cmd, po), cobra.ShellCompDirectiveNoFileComp
	})
	topLevel.AddCommand(cmd)
}
