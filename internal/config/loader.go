package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/testctl"
	projectConfigDir = ".testctl"
	configFileName   = "config.yaml"
)

// LoadConfig loads the testctl configuration by layering default, user,
// and project settings.
func LoadConfig() (TestctlConfig, error) {
	// 1. Start with the default configuration
	config := GetDefaultConfig()

	// 2. Determine user-specific configuration path
	userConfigPath, err := getUserConfigPath()
	if err != nil {
		// Log this error but don't fail; user config is optional
		fmt.Fprintf(os.Stderr, "Warning: Could not determine user config path: %v\n", err)
	} else {
		if _, err := os.Stat(userConfigPath); !os.IsNotExist(err) {
			userConfig, err := loadConfigFromFile(userConfigPath)
			if err != nil {
				return TestctlConfig{}, fmt.Errorf("error loading user config from %s: %w", userConfigPath, err)
			}
			config = mergeConfigs(config, userConfig)
		}
	}

	// 3. Determine project-specific configuration path
	projectConfigPath, err := getProjectConfigPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not determine project config path: %v\n", err)
	} else {
		if _, err := os.Stat(projectConfigPath); !os.IsNotExist(err) {
			projectConfig, err := loadConfigFromFile(projectConfigPath)
			if err != nil {
				return TestctlConfig{}, fmt.Errorf("error loading project config from %s: %w", projectConfigPath, err)
			}
			config = mergeConfigs(config, projectConfig)
		}
	}

	return config, nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

// loadConfigFromFile loads a TestctlConfig from a YAML file.
func loadConfigFromFile(filePath string) (TestctlConfig, error) {
	var config TestctlConfig
	data, err := os.ReadFile(filePath)
	if err != nil {
		return TestctlConfig{}, err
	}
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return TestctlConfig{}, err
	}
	return config, nil
}

// mergeConfigs merges 'overlay' config into 'base' config.
func mergeConfigs(base, overlay TestctlConfig) TestctlConfig {
	mergedConfig := base

	// Merge GlobalSettings (overlay overrides base)
	if overlay.GlobalSettings.DefaultContainerRuntime != "" {
		mergedConfig.GlobalSettings.DefaultContainerRuntime = overlay.GlobalSettings.DefaultContainerRuntime
	}

	// Merge Pipeline settings field by field
	if overlay.Pipeline.MarkerFile != "" {
		mergedConfig.Pipeline.MarkerFile = overlay.Pipeline.MarkerFile
	}
	if overlay.Pipeline.Dockerfile != "" {
		mergedConfig.Pipeline.Dockerfile = overlay.Pipeline.Dockerfile
	}
	if overlay.Pipeline.ImageTag != "" {
		mergedConfig.Pipeline.ImageTag = overlay.Pipeline.ImageTag
	}
	if overlay.Pipeline.MountPath != "" {
		mergedConfig.Pipeline.MountPath = overlay.Pipeline.MountPath
	}
	if overlay.Pipeline.TestDir != "" {
		mergedConfig.Pipeline.TestDir = overlay.Pipeline.TestDir
		// A custom tests directory re-derives the stock step chain unless
		// the overlay also replaces the steps outright.
		if len(overlay.Pipeline.Steps) == 0 {
			mergedConfig.Pipeline.Steps = DefaultSteps(overlay.Pipeline.TestDir)
		}
	}
	if len(overlay.Pipeline.Steps) > 0 {
		mergedConfig.Pipeline.Steps = overlay.Pipeline.Steps
	}

	return mergedConfig
}

// GetUserConfigDir returns the user configuration directory path
func GetUserConfigDir() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir), nil
}
