package schema

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseFile parses a project definition from a YAML file.
func ParseFile(path string) (ProjectConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ProjectConfig{}, fmt.Errorf("read file %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return ProjectConfig{}, fmt.Errorf("parse %s: %w", path, err)
	}
	stamp(&cfg, path)
	return cfg, nil
}

// Parse parses a project definition from YAML bytes.
//
// Malformed YAML is a hard error. Structural problems in well-formed input
// (missing names, unknown kinds) are collected as validation messages on the
// returned config so the caller still obtains a usable declaration set.
func Parse(data []byte) (ProjectConfig, error) {
	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ProjectConfig{}, fmt.Errorf("parse yaml: %w", err)
	}
	check(&cfg)
	return cfg, nil
}

// ParseDir parses and merges all project definitions from a directory,
// including subdirectories. Types keep file order; permission profiles are
// merged across files, with a duplicate profile name reported as an error
// message on the merged config.
func ParseDir(dir string) (ProjectConfig, error) {
	var merged ProjectConfig

	entries, err := os.ReadDir(dir)
	if err != nil {
		return ProjectConfig{}, fmt.Errorf("read dir %s: %w", dir, err)
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		if entry.IsDir() {
			sub, err := ParseDir(path)
			if err != nil {
				return ProjectConfig{}, err
			}
			mergeInto(&merged, sub)
			continue
		}

		name := entry.Name()
		if !strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml") {
			continue
		}

		cfg, err := ParseFile(path)
		if err != nil {
			return ProjectConfig{}, err
		}
		mergeInto(&merged, cfg)
	}

	return merged, nil
}

func mergeInto(dst *ProjectConfig, src ProjectConfig) {
	dst.Types = append(dst.Types, src.Types...)
	dst.ValidationMessages = append(dst.ValidationMessages, src.ValidationMessages...)
	for name, profile := range src.PermissionProfiles {
		if dst.PermissionProfiles == nil {
			dst.PermissionProfiles = make(map[string]PermissionProfileDecl)
		}
		if _, exists := dst.PermissionProfiles[name]; exists {
			dst.ValidationMessages = append(dst.ValidationMessages,
				NewError(fmt.Sprintf("permission profile %q is declared more than once", name), nil))
			continue
		}
		dst.PermissionProfiles[name] = profile
	}
}

// check collects structural problems as validation messages.
func check(cfg *ProjectConfig) {
	for _, decl := range cfg.Types {
		loc := decl.Location
		if decl.Name == "" {
			cfg.ValidationMessages = append(cfg.ValidationMessages,
				NewError("type declaration without a name", loc))
			continue
		}
		if !isValidIdentifier(decl.Name) {
			cfg.ValidationMessages = append(cfg.ValidationMessages,
				NewError(fmt.Sprintf("type name %q is not a valid identifier", decl.Name), loc))
		}
		if !decl.Kind.IsValid() {
			cfg.ValidationMessages = append(cfg.ValidationMessages,
				NewError(fmt.Sprintf("type %q has unknown kind %q", decl.Name, decl.Kind), loc))
		}
		for _, field := range decl.Fields {
			if field.Name == "" {
				cfg.ValidationMessages = append(cfg.ValidationMessages,
					NewError(fmt.Sprintf("type %q has a field without a name", decl.Name), loc))
				continue
			}
			if field.Type == "" {
				cfg.ValidationMessages = append(cfg.ValidationMessages,
					NewError(fmt.Sprintf("field %q of type %q has no target type", field.Name, decl.Name), loc))
			}
		}
	}
}

// stamp records the source file on declarations that carry no location yet.
func stamp(cfg *ProjectConfig, path string) {
	for i := range cfg.Types {
		if cfg.Types[i].Location == nil {
			cfg.Types[i].Location = &MessageLocation{File: path}
		}
	}
	for i := range cfg.ValidationMessages {
		if cfg.ValidationMessages[i].Location == nil {
			cfg.ValidationMessages[i].Location = &MessageLocation{File: path}
		}
	}
}

// isValidIdentifier checks that a name starts with a letter and contains
// only letters, digits and underscores.
func isValidIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r == '_':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
