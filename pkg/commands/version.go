package commands

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
	goversion "go.hein.dev/go-version"
)

// Stamped by the release build through -ldflags "-X".
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type versionOptions struct {
	short  bool
	output string
}

func addVersion(topLevel *cobra.Command) {
	vo := &versionOptions{}
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the datepicker build version.",
		Example: `
datepicker version
datepicker version --short
datepicker version -o yaml
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			switch vo.output {
			case "json", "yaml":
			default:
				return fmt.Errorf("unknown output %q, want json or yaml", vo.output)
			}
			v, c, d := buildVersion()
			_, err := fmt.Fprint(cmd.OutOrStdout(), goversion.FuncWithOutput(vo.short, v, c, d, vo.output))
			return err
		},
	}

	cmd.Flags().BoolVarP(&vo.short, "short", "s", false, "Print the version number only.")
	cmd.Flags().StringVarP(&vo.output, "output", "o", "json", "Output format, json or yaml.")

	topLevel.AddCommand(cmd)
}

// buildVersion falls back to the module version when the binary was built
// with go install instead of the release build.
func buildVersion() (string, string, string) {
	if version != "dev" {
		return version, commit, date
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version, commit, date
	}
	return version, commit, date
}
