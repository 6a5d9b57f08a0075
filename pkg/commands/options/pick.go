package options

import (
	"github.com/spf13/cobra"
)

// PickOptions seeds and names an interactive pick.
type PickOptions struct {
	Value    string
	Remember string
}

// AddPickArgs wires the pick flags.
func AddPickArgs(cmd *cobra.Command, o *PickOptions) {
	cmd.Flags().StringVar(&o.Value, "value", "",
		"Initial text, read with the date format.")
	cmd.Flags().StringVarP(&o.Remember, "remember", "r", "",
		"Remember the pick under this name and start from it next time.")
}

// ParseOptions controls how mismatched input is treated.
type ParseOptions struct {
	Strict bool
}

// AddParseArgs wires the parse flags.
func AddParseArgs(cmd *cobra.Command, o *ParseOptions) {
	cmd.Flags().BoolVar(&o.Strict, "strict", false,
		"Fail instead of falling back to today when the text does not match.")
}

// HistoryOptions selects a remembered pick to forget.
type HistoryOptions struct {
	Delete string
}

// AddHistoryArgs wires the history flags.
func AddHistoryArgs(cmd *cobra.Command, o *HistoryOptions) {
	cmd.Flags().StringVarP(&o.Delete, "delete", "d", "",
		"Forget the named pick.")
}
