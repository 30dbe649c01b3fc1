// Package commands implements the CLI commands for the forge build orchestrator.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/forge/internal/app"
	"go.trai.ch/forge/internal/build"
)

// CLI represents the command line interface for forge.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:   "forge",
		Short: "Configure, build, test and clean a native project",
		Long: `forge drives the project's native toolchain through one entry point.

Without flags it configures and builds. --clean removes the build directory
first and stops there unless --test or --examples asks for a rebuild.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Info(),
	}

	// Registered before the version flag so -v stays with --verbose.
	rootCmd.Flags().BoolP("verbose", "v", false, "Show debug output")

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	flags := rootCmd.Flags()
	flags.BoolP("clean", "c", false, "Remove the build directory before building")
	flags.BoolP("test", "t", false, "Run the test suite after building")
	flags.BoolP("examples", "e", false, "Build the example targets")
	flags.IntP("jobs", "j", 0, "Number of parallel build jobs (default: number of CPUs)")
	flags.String("build-dir", "", "Build directory (default: build/ under the project root)")
	flags.String("config", "", "Path to the forge.yaml project file")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.RunE = c.runBuild
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

func (c *CLI) runBuild(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	clean, _ := flags.GetBool("clean")
	test, _ := flags.GetBool("test")
	examples, _ := flags.GetBool("examples")
	jobs, _ := flags.GetInt("jobs")
	buildDir, _ := flags.GetString("build-dir")
	configPath, _ := flags.GetString("config")
	verbose, _ := flags.GetBool("verbose")

	return c.app.Run(cmd.Context(), app.RunOptions{
		Clean:      clean,
		Test:       test,
		Examples:   examples,
		Jobs:       jobs,
		BuildDir:   buildDir,
		ConfigPath: configPath,
		Verbose:    verbose,
	})
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput redirects help and version output. Used for testing.
func (c *CLI) SetOutput(w io.Writer) {
	c.rootCmd.SetOut(w)
	c.rootCmd.SetErr(w)
}
