package config

// TestctlConfig is the top-level configuration structure for testctl.
type TestctlConfig struct {
	GlobalSettings GlobalSettings `yaml:"globalSettings"`
	Pipeline       PipelineConfig `yaml:"pipeline"`
}

// GlobalSettings holds settings that apply across commands.
type GlobalSettings struct {
	DefaultContainerRuntime string `yaml:"defaultContainerRuntime,omitempty"` // e.g., "docker", "podman"
}

// StepConfig is one named shell command run inside the test container.
type StepConfig struct {
	Name string `yaml:"name,omitempty"`
	Run  string `yaml:"run"`
}

// PipelineConfig defines the containerized test pipeline.
type PipelineConfig struct {
	MarkerFile string       `yaml:"markerFile,omitempty"` // file identifying the project root, e.g. "setup.py"
	Dockerfile string       `yaml:"dockerfile,omitempty"` // build description, relative to the project root
	ImageTag   string       `yaml:"imageTag,omitempty"`   // tag for the test image
	MountPath  string       `yaml:"mountPath,omitempty"`  // in-container mount point and working directory
	TestDir    string       `yaml:"testDir,omitempty"`    // directory the test runner is pointed at
	Steps      []StepConfig `yaml:"steps,omitempty"`      // in-container command chain; empty means defaults
}
