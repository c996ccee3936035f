package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"testctl/internal/orchestrator"
	"testctl/internal/rootlocator"
)

// Exit codes reported to the CI system. A failed in-container test run
// passes the container's own exit status through instead.
const (
	exitGeneric          = 1
	exitRootNotFound     = 2
	exitImageBuildFailed = 3
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "testctl",
	Short: "Run a project's test suite inside a container",
	Long: `testctl locates the project root by walking up from the current
directory, builds the project's CI test image, and runs the test suite
inside an ephemeral container with the project mounted as the working
directory. It is meant to be invoked once per CI build job.`,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. a failed image build or test run)
	SilenceUsage: true,
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "testctl version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just map it to an exit code
		os.Exit(exitCodeFor(err))
	}
}

// exitCodeFor maps pipeline failures onto the enumerated exit codes so the
// CI system can tell a missing project root and a broken image build apart
// from an ordinary test failure.
func exitCodeFor(err error) int {
	var buildErr *orchestrator.BuildError
	var runErr *orchestrator.RunError
	switch {
	case errors.Is(err, rootlocator.ErrNotFound):
		return exitRootNotFound
	case errors.As(err, &buildErr):
		return exitImageBuildFailed
	case errors.As(err, &runErr):
		return runErr.ExitCode
	}
	return exitGeneric
}

func init() {
	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())
}
