// Package cmd provides the root command and CLI setup for classloc.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"classloc.dev/pkg/classloc/internal/adapter"
	"classloc.dev/pkg/classloc/internal/controller"
	"classloc.dev/pkg/classloc/internal/domain"
	m "classloc.dev/pkg/classloc/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var sourceAdapter adapter.SourceFileAdapter
var projectStore adapter.ProjectStore
var discoverer adapter.ProjectDiscoverer
var ui controller.UI
var workflow domain.Workflow

// newWorkflow builds the workflow once the output format is known.
var newWorkflow = func(ui controller.UI) domain.Workflow {
	return domain.NewWorkflow(fsAdapter, sourceAdapter, projectStore, discoverer, ui)
}

var (
	rootFlag        string
	projectFileFlag string
	discoverFlag    bool
	formatFlag      string
	verboseFlag     bool
	logFlag         string
)

func init() {
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	sourceAdapter = adapter.NewLocalSourceFileAdapter()
	projectStore = adapter.NewProjectStore(fsAdapter)
	discoverer = adapter.NewProjectDiscoverer(fsAdapter)
}

const rootLongDescription = `classloc finds the compiled .class file for a JVM source file.

It classifies the project layout (unmanaged IDE project, single-module or
multi-module build), generates every plausible output location in priority
order and reports the most likely one that exists on disk.

Project metadata is read from ` + adapter.ProjectFileName + ` when present,
otherwise derived from Maven or Gradle build files.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "classloc",
		Short:             "Locate compiled class files for JVM sources",
		Long:              rootLongDescription,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.StringVarP(&rootFlag, rootFlagName, "r", "", "project root (default: detected from the source file)")
	bindFlagToConfig(flags.Lookup(rootFlagName), rootConfigKey)

	flags.StringVar(&projectFileFlag, projectFileFlagName, "", "project metadata file (default: <root>/"+adapter.ProjectFileName+")")
	bindFlagToConfig(flags.Lookup(projectFileFlagName), projectFileConfigKey)

	flags.BoolVar(&discoverFlag, discoverFlagName, defaultDiscover, "derive modules from pom.xml or settings.gradle when no project file exists")
	bindFlagToConfig(flags.Lookup(discoverFlagName), discoverConfigKey)

	flags.StringVarP(&formatFlag, formatFlagName, "f", defaultFormat, "output format: text, json or yaml")
	bindFlagToConfig(flags.Lookup(formatFlagName), formatConfigKey)

	flags.BoolVarP(&verboseFlag, verboseFlagName, "v", defaultLogVerbose, "log at debug level")
	bindFlagToConfig(flags.Lookup(verboseFlagName), logVerboseKey)

	flags.StringVar(&logFlag, logFlagName, defaultLogFilename, "log file path")
	bindFlagToConfig(flags.Lookup(logFlagName), logFilenameKey)
}

// setup runs before every command: it configures logging and builds the UI
// and workflow for the requested output format.
func setup(cmd *cobra.Command, _ []string) error {
	configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))

	format, err := controller.ParseFormat(viper.GetString(formatConfigKey))
	if err != nil {
		return err
	}

	ui = controller.NewUI(cmd, controller.IsTTY(cmd.OutOrStdout()), format)
	workflow = newWorkflow(ui)

	return nil
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func projectArgs() domain.ProjectArgs {
	return domain.ProjectArgs{
		Root:        m.Path(viper.GetString(rootConfigKey)),
		ProjectFile: m.Path(viper.GetString(projectFileConfigKey)),
		Discover:    viper.GetBool(discoverConfigKey),
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
