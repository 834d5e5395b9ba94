package cmd

import (
	"github.com/spf13/cobra"

	"classloc.dev/pkg/classloc/internal/domain"
	m "classloc.dev/pkg/classloc/internal/model"
)

// candidatesCmd represents the candidates command.
var candidatesCmd = newCandidatesCmd()

func newCandidatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "candidates <source-file>",
		Short: "List every possible class file location",
		Long: `List every generated class file location for a source file in priority
order, mark the ones that exist and show the most likely path.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Candidates(cmd.Context(), domain.CandidatesArgs{
				ProjectArgs: projectArgs(),
				Path:        m.Path(args[0]),
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(candidatesCmd)
}
