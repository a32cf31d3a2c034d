// Package config loads tabledemo settings from an optional YAML file and
// the environment. Defaults reproduce the behavior of running with no file.
package config
