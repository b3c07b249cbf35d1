package commands

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/vcxgen/vcxgen"
	"github.com/vcxgen/vcxgen/internal/output"
)

// RootCmd creates and returns the root command for the vcxgen CLI.
//
// Running vcxgen with no arguments generates the descriptor with default
// settings, matching the zero-configuration contract of the tool: read the
// working directory, write the fixed output name.
func RootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "vcxgen",
		Short: "Generate a monolithic Visual Studio project descriptor",
		Long: `vcxgen generates a monolithic .vcxproj with all vendored components built in.

It merges hand-declared source lists with vendor trees discovered by
pattern, producing one static-library project with no separate plugin
binaries needed. Output is deterministic: discovered files are sorted, and
rerunning over unchanged sources leaves the descriptor byte-identical.

Drop a vcxgen.yml next to your sources to override the project settings or
declare your own source groups.`,
		Version: vcxgen.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			output.SetVerbose(verbose)
		},
		Run: func(cmd *cobra.Command, args []string) {
			if err := runGenerate(cmd.Context(), generateOptions{}); err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output for debugging")

	return cmd
}
