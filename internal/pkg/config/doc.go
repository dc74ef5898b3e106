// Package config defines the configuration settings for the sandbox binaries, including
// logger and REST server settings, with struct-tag validation and YAML loading.
package config
