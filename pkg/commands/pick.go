package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/datepicker/pkg/commands/options"
	"tableflip.dev/datepicker/pkg/runner/pick"
	"tableflip.dev/datepicker/pkg/store"
)

func addPick(topLevel *cobra.Command) {
	po := &options.PickerOptions{}
	pk := &options.PickOptions{}

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Pick a date in a terminal popup and print it",
		Long: `Pick a date in a terminal popup and print it. Arrow keys or hjkl move, enter
picks, [ and ] page, u goes up a page, tab edits the text, esc accepts and q
aborts.`,
		Example: `
datepicker pick
datepicker pick --value=03/05/2024 --show-buttons
datepicker pick --remember=release --date-format=yyyy-mm-dd
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := po.Settings(cmd)
			if err != nil {
				return err
			}
			cfg, err := s.PickerConfig()
			if err != nil {
				return err
			}
			var p store.Persistence
			if pk.Remember != "" {
				if p, err = store.Load(s.StorePath); err != nil {
					return err
				}
			}
			n := pick.Pick{
				Config:      cfg,
				Value:       pk.Value,
				Remember:    pk.Remember,
				Persistence: p,
			}
			return n.Do(context.Background())
		},
	}

	options.AddFormatArgs(cmd, po)
	options.AddCalendarArgs(cmd, po)
	options.AddPopupArgs(cmd, po)
	options.AddStoreArgs(cmd, po)
	options.AddPickArgs(cmd, pk)
	_ = cmd.RegisterFlagCompletionFunc("remember", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return rememberCompletions(cmd, po), cobra.ShellCompDirectiveNoFileComp
	})
	topLevel.AddCommand(cmd)
}
