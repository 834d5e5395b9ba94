package cmd

import (
	"github.com/spf13/cobra"

	"classloc.dev/pkg/classloc/internal/domain"
	m "classloc.dev/pkg/classloc/internal/model"
)

// classifyCmd represents the classify command.
var classifyCmd = newClassifyCmd()

func newClassifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify [dir]",
		Short: "Show the layout of a project",
		Long: `Classify the project at dir (default: the detected project root) as
UNMANAGED, SINGLE_MODULE or MULTI_MODULE. Exits non-zero when the layout
cannot be determined.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Classify(cmd.Context(), domain.ClassifyArgs{
				ProjectArgs: projectArgsFor(args),
			})
		},
	}
}

// projectArgsFor lets a positional directory override --root.
func projectArgsFor(args []string) domain.ProjectArgs {
	project := projectArgs()
	if len(args) > 0 {
		project.Root = m.Path(args[0])
	}

	return project
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}
