// Package config handles configuration management for clout.
// It supports loading configuration from multiple sources including
// TOML files, environment variables, and explicit options passed by the
// embedding CLI.
package config
