package cmd

import (
	"runtime/debug"

	"github.com/spf13/cobra"
)

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version information",
		Long:  "Displays the classloc build version, the Go version and the config schema version.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Println("config version\t", currentConfigVersion)

			info, ok := debug.ReadBuildInfo()
			if !ok || info.Main.Version == "" {
				cmd.Println("classloc version: unknown")
				return
			}

			cmd.Println("classloc version\t", info.Main.Version)
			cmd.Println("go version\t", info.GoVersion)
		},
	}
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
