package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"testctl/internal/color"
	"testctl/internal/config"
	"testctl/internal/orchestrator"
	"testctl/internal/rootlocator"
	"testctl/pkg/logging"
)

var (
	runRuntime  string
	runImageTag string
	runMarker   string
	runLogLevel string
)

func newRunCmd() *cobra.Command {
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Build the CI test image and run the test suite in it",
		Long: `Locates the project root (the nearest ancestor directory containing
the marker file), builds a container image from the project's CI build
description, and runs the test suite inside an ephemeral container with
the project root bind-mounted as the working directory.

The image build must succeed before any container is started. The exit
status of the in-container test command is passed through unchanged.`,
		RunE: runPipeline,
	}

	runCmd.Flags().StringVar(&runRuntime, "runtime", "", "container runtime binary to use (default from config, usually docker)")
	runCmd.Flags().StringVar(&runImageTag, "tag", "", "tag for the test image (default from config)")
	runCmd.Flags().StringVar(&runMarker, "marker", "", "marker file identifying the project root (default from config)")
	runCmd.Flags().StringVar(&runLogLevel, "log-level", "info", "log level: debug, info, warn, error")

	return runCmd
}

func runPipeline(cmd *cobra.Command, args []string) error {
	logging.InitForCLI(logging.ParseLevel(runLogLevel), os.Stderr)

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	applyFlagOverrides(&cfg)

	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to determine working directory: %w", err)
	}

	root, err := rootlocator.New(cfg.Pipeline.MarkerFile).Find(wd)
	if err != nil {
		return err
	}
	logging.Info("run", "Project root: %s", root)

	// Forwarded interrupts kill the blocking build/run subprocess and
	// abort the pipeline.
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	orch := orchestrator.New(orchestrator.Config{
		Runtime:    cfg.GlobalSettings.DefaultContainerRuntime,
		Dockerfile: cfg.Pipeline.Dockerfile,
		ImageTag:   cfg.Pipeline.ImageTag,
		MountPath:  cfg.Pipeline.MountPath,
		Steps:      pipelineSteps(cfg),
	}, orchestrator.NewExecRunner())

	if err := orch.Run(ctx, root); err != nil {
		fmt.Fprintln(os.Stderr, color.Error("Test run failed"))
		return err
	}

	fmt.Println(color.Success("Test run succeeded"))
	return nil
}

func applyFlagOverrides(cfg *config.TestctlConfig) {
	if runRuntime != "" {
		cfg.GlobalSettings.DefaultContainerRuntime = runRuntime
	}
	if runImageTag != "" {
		cfg.Pipeline.ImageTag = runImageTag
	}
	if runMarker != "" {
		cfg.Pipeline.MarkerFile = runMarker
	}
}

// pipelineSteps converts the configured step list into orchestrator steps.
func pipelineSteps(cfg config.TestctlConfig) []orchestrator.Step {
	steps := make([]orchestrator.Step, 0, len(cfg.Pipeline.Steps))
	for _, s := range cfg.Pipeline.Steps {
		steps = append(steps, orchestrator.Step{Name: s.Name, Run: s.Run})
	}
	return steps
}
