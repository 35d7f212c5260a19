// File: doc.go
// Title: Configuration Management Package Documentation
// Description: Package config loads toolbox settings from TOML or YAML files
//              with environment variable overrides.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation with TOML/YAML support

/*
Package config loads configuration for the toolbox.

Files are TOML (default) or YAML, chosen by extension. Keys are addressed in
dot notation; an environment variable built from the prefix and the key
overrides the file value:

	# toolbox.toml
	[log]
	level = "debug"

	cfg, err := config.Discover(config.DefaultDiscoveryOptions())
	level := cfg.GetString("log.level", "warn") // TOOLBOX_LOG_LEVEL wins if set

Discover searches the working directory and the user configuration directory
for toolbox.toml, toolbox.yaml and toolbox.yml. When nothing is found and the
file is not required, an empty configuration is returned so that defaults and
environment overrides still apply.

All errors are *error.Error values with CodeNotFound, CodeConfigError or
CodeInvalidConfig.
*/
package config
