package config

import "fmt"

const (
	defaultRuntime    = "docker"
	defaultMarkerFile = "setup.py"
	defaultDockerfile = "ci/teamcity/Dockerfile"
	defaultImageTag   = "testctl-tests"
	defaultMountPath  = "/workspace"
	defaultTestDir    = "tests"
)

// GetDefaultConfig returns the built-in configuration: docker as the
// runtime, the conventional CI build description location, and the
// stock step chain (install the CI reporter, install the project with
// its test extras in development mode, run pytest).
func GetDefaultConfig() TestctlConfig {
	return TestctlConfig{
		GlobalSettings: GlobalSettings{
			DefaultContainerRuntime: defaultRuntime,
		},
		Pipeline: PipelineConfig{
			MarkerFile: defaultMarkerFile,
			Dockerfile: defaultDockerfile,
			ImageTag:   defaultImageTag,
			MountPath:  defaultMountPath,
			TestDir:    defaultTestDir,
			Steps:      DefaultSteps(defaultTestDir),
		},
	}
}

// DefaultSteps returns the stock in-container command chain for the
// given tests directory.
func DefaultSteps(testDir string) []StepConfig {
	return []StepConfig{
		{Name: "install CI reporter", Run: "pip install teamcity-messages"},
		{Name: "install project", Run: "pip install -e .[tests]"},
		{Name: "run tests", Run: fmt.Sprintf("python -m pytest %s", testDir)},
	}
}
