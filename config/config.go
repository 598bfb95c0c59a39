// Package config locates and loads project definition sources.
package config

import (
	"fmt"
	"os"

	"github.com/schemakit/schemakit/core/schema"
)

// Config bundles a loaded project definition with its sources.
type Config struct {
	// Path is the file or directory the definition was loaded from.
	Path string

	// Project is the merged declaration set.
	Project schema.ProjectConfig
}

// Load reads a project definition from a YAML file or, for a directory,
// from all YAML files under it (merged in file order).
func Load(path string) (*Config, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	var project schema.ProjectConfig
	if info.IsDir() {
		project, err = schema.ParseDir(path)
	} else {
		project, err = schema.ParseFile(path)
	}
	if err != nil {
		return nil, err
	}

	return &Config{Path: path, Project: project}, nil
}
