// Package config handles configuration management for bookfmt.
// It supports loading configuration from multiple sources including
// an embedded defaults file, a TOML or YAML config file and environment
// variables. Command-line flags are applied on top by the CLI.
package config
