// Package config loads the testctl configuration.
//
// Configuration is layered: built-in defaults, then an optional user
// config at ~/.config/testctl/config.yaml, then an optional project
// config at ./.testctl/config.yaml. Later layers override earlier ones
// field by field.
package config
