package orchestrator

import "fmt"

// BuildError reports a failed image build. The pipeline halts before any
// container is started.
type BuildError struct {
	Tag string
	Err error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("failed to build image %s: %v", e.Tag, e.Err)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}

// RunError reports a non-zero exit from the in-container test command
// chain. ExitCode carries the container's exit status so the caller can
// pass it through to the CI system.
type RunError struct {
	Image    string
	ExitCode int
	Err      error
}

func (e *RunError) Error() string {
	return fmt.Sprintf("test run in image %s exited with code %d: %v", e.Image, e.ExitCode, e.Err)
}

func (e *RunError) Unwrap() error {
	return e.Err
}
