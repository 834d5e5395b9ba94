package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"classloc.dev/pkg/classloc/internal/domain"
)

var locateParallelFlag int

const locateLongDescription = `Print the compiled class file for each source file.

Found paths are written to stdout, one per line, in argument order. When no
class file exists the command lists every path it tried on stderr and exits
with a non-zero status.`

// locateCmd represents the locate command.
var locateCmd = newLocateCmd()

func newLocateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "locate <source-file>...",
		Short: "Find the compiled class file for source files",
		Long:  locateLongDescription,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Locate(cmd.Context(), domain.LocateArgs{
				ProjectArgs: projectArgs(),
				Paths:       parsePaths(args),
				Threads:     viper.GetInt(parallelConfigKey),
			})
		},
	}

	cmd.Flags().IntVarP(&locateParallelFlag, parallelFlagName, "p", defaultParallel, "number of files resolved concurrently")
	bindFlagToConfig(cmd.Flags().Lookup(parallelFlagName), parallelConfigKey)

	return cmd
}

func init() {
	rootCmd.AddCommand(locateCmd)
}
