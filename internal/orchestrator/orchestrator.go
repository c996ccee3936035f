package orchestrator

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"testctl/pkg/logging"
)

// Config holds the fixed pipeline settings. All paths are relative to
// the project root handed to Run.
type Config struct {
	Runtime    string // container runtime binary, e.g. "docker" or "podman"
	Dockerfile string // build description path, e.g. "ci/teamcity/Dockerfile"
	ImageTag   string
	MountPath  string // in-container mount point and working directory
	Steps      []Step
}

// Orchestrator builds the test image and runs the test container for a
// single invocation. It holds no state across invocations.
type Orchestrator struct {
	cfg    Config
	runner CommandRunner
}

// New creates an Orchestrator with the given configuration and runner.
func New(cfg Config, runner CommandRunner) *Orchestrator {
	return &Orchestrator{cfg: cfg, runner: runner}
}

// Run executes the full pipeline against the given project root: build
// the image, then run the container. The build must succeed before the
// run starts; neither phase is retried.
func (o *Orchestrator) Run(ctx context.Context, root string) error {
	spec := ImageSpec{
		Dockerfile: filepath.Join(root, o.cfg.Dockerfile),
		Tag:        o.cfg.ImageTag,
		Context:    root,
	}
	if err := o.buildImage(ctx, spec); err != nil {
		return err
	}

	return o.runContainer(ctx, ContainerConfig{
		Image:     o.cfg.ImageTag,
		HostDir:   root,
		MountPath: o.cfg.MountPath,
		Steps:     o.cfg.Steps,
	})
}

func (o *Orchestrator) buildImage(ctx context.Context, spec ImageSpec) error {
	// Surface a missing build description before invoking the runtime.
	if _, err := os.Stat(spec.Dockerfile); err != nil {
		return &BuildError{Tag: spec.Tag, Err: fmt.Errorf("build description not found: %w", err)}
	}

	logging.Info("orchestrator", "Building image %s from %s", spec.Tag, spec.Dockerfile)
	args := []string{"build", "-f", spec.Dockerfile, "-t", spec.Tag, spec.Context}
	if err := o.runner.Run(ctx, o.cfg.Runtime, args...); err != nil {
		return &BuildError{Tag: spec.Tag, Err: err}
	}
	return nil
}

func (o *Orchestrator) runContainer(ctx context.Context, cc ContainerConfig) error {
	script := ShellScript(cc.Steps)
	logging.Info("orchestrator", "Running test container from image %s", cc.Image)
	logging.Debug("orchestrator", "Container command: /bin/sh -c %q", script)

	// Auto-removed, non-interactive: the tool targets headless CI agents.
	args := []string{
		"run", "--rm",
		"-v", cc.HostDir + ":" + cc.MountPath,
		"-w", cc.MountPath,
		cc.Image,
		"/bin/sh", "-c", script,
	}
	if err := o.runner.Run(ctx, o.cfg.Runtime, args...); err != nil {
		return &RunError{Image: cc.Image, ExitCode: exitCode(err), Err: err}
	}
	return nil
}
