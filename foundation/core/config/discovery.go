// File: discovery.go
// Title: Configuration File Discovery
// Description: Searches a list of directories for the first configuration file
//              matching the known base names and extensions.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	mdwerror "github.com/msto63/toolbox/foundation/core/error"
)

// DiscoveryOptions defines options for automatic configuration file discovery
type DiscoveryOptions struct {
	Paths      []string               // Directories to search for config files
	Filenames  []string               // Base filenames to look for (without extension)
	Extensions []string               // File extensions to try
	EnvPrefix  string                 // Environment variable prefix for overrides
	Defaults   map[string]interface{} // Default values
	Required   bool                   // Whether finding a config file is required
}

// DefaultDiscoveryOptions returns the toolbox search locations: the working
// directory and the user configuration directory.
func DefaultDiscoveryOptions() DiscoveryOptions {
	paths := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "toolbox"))
	}
	return DiscoveryOptions{
		Paths:      paths,
		Filenames:  []string{"toolbox"},
		Extensions: []string{".toml", ".yaml", ".yml"},
		EnvPrefix:  "TOOLBOX",
	}
}

// ListPossibleConfigFiles returns every candidate path in search order
func ListPossibleConfigFiles(options DiscoveryOptions) []string {
	var paths []string
	for _, path := range options.Paths {
		for _, filename := range options.Filenames {
			for _, ext := range options.Extensions {
				paths = append(paths, filepath.Join(path, filename+ext))
			}
		}
	}
	return paths
}

// FindConfigFile returns the first existing candidate path
func FindConfigFile(options DiscoveryOptions) (string, error) {
	for _, candidate := range ListPossibleConfigFiles(options) {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}
	return "", mdwerror.New("configuration file not found").
		WithCode(mdwerror.CodeNotFound).
		WithOperation("config.FindConfigFile")
}

// Discover loads the first configuration file found. Without a file it
// returns an empty configuration, or an error when options.Required is set.
func Discover(options DiscoveryOptions) (*Config, error) {
	loadOptions := LoadOptions{
		Format:    FormatAuto,
		EnvPrefix: options.EnvPrefix,
		Defaults:  options.Defaults,
	}

	path, err := FindConfigFile(options)
	if err != nil {
		if options.Required {
			searched := ListPossibleConfigFiles(options)
			return nil, mdwerror.New(fmt.Sprintf("no configuration file found in paths: %s", strings.Join(searched, ", "))).
				WithCode(mdwerror.CodeNotFound).
				WithOperation("config.Discover").
				WithDetail("searchPaths", searched)
		}
		return Empty(loadOptions), nil
	}

	cfg, err := LoadWithOptions(path, loadOptions)
	if err != nil {
		return nil, mdwerror.Wrap(err, fmt.Sprintf("found config file %s but failed to load", path)).
			WithOperation("config.Discover").
			WithDetail("configPath", path)
	}
	return cfg, nil
}
