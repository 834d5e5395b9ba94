package cmd

import (
	"github.com/spf13/cobra"

	"classloc.dev/pkg/classloc/internal/adapter"
	"classloc.dev/pkg/classloc/internal/domain"
)

var projectWriteFlag bool

// projectCmd represents the project command.
var projectCmd = newProjectCmd()

func newProjectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project [dir]",
		Short: "Show the project metadata used for resolution",
		Long: `Print the project metadata classloc resolves against: the project file
when present, otherwise what was discovered from build files.

With --write the metadata is saved as ` + adapter.ProjectFileName + ` so it can be
edited and reused.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Describe(cmd.Context(), domain.DescribeArgs{
				ProjectArgs: projectArgsFor(args),
				Write:       projectWriteFlag,
			})
		},
	}

	cmd.Flags().BoolVarP(&projectWriteFlag, writeFlagName, "w", false, "write the metadata to the project file")

	return cmd
}

func init() {
	rootCmd.AddCommand(projectCmd)
}
