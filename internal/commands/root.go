package commands

import (
	"github.com/spf13/cobra"

	"github.com/ekhoroshev/razorgen"
	"github.com/ekhoroshev/razorgen/output"
)

// RootCmd creates and returns the root command for the razorgen CLI.
func RootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "razorgen",
		Short: "Incremental template-to-Go code generation",
		Long: `Razorgen turns template files into Go source, incrementally.

Each template is regenerated only when it is newer than its previously
generated output. Generated files land under a cache directory with a
namespace derived from the template's folder location.

Typical workflow:
  razorgen init                 create razorgen.yml
  razorgen generate             regenerate every stale template`,
		Version: razorgen.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			output.SetVerbose(verbose)
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output for debugging")

	return cmd
}
