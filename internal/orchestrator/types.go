package orchestrator

import "strings"

// ImageSpec describes one container image build: the build description
// file, the tag to apply, and the build context directory.
type ImageSpec struct {
	Dockerfile string // absolute path to the build description
	Tag        string // image tag, e.g. "testctl-tests"
	Context    string // build context directory (the project root)
}

// Step is one named shell command executed inside the test container.
type Step struct {
	Name string `yaml:"name,omitempty"`
	Run  string `yaml:"run"`
}

// ContainerConfig describes the ephemeral test container: the image to
// run, the host directory mounted at MountPath (also the working
// directory), and the step chain to execute.
type ContainerConfig struct {
	Image     string
	HostDir   string
	MountPath string
	Steps     []Step
}

// ShellScript joins the step commands into a single shell command line.
// Steps are chained with && so the first failing step aborts the chain
// and its exit status becomes the container's exit status.
func ShellScript(steps []Step) string {
	runs := make([]string, 0, len(steps))
	for _, s := range steps {
		runs = append(runs, s.Run)
	}
	return strings.Join(runs, " && ")
}
