// File: mapfile.go
// Title: Map File Loading
// Description: Implements decoding of TOML and YAML map files into
//              command definitions and their registration into a command
//              map, with format auto-detection by file extension.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-29

package mapfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/msto63/exline/excmd"
)

// file is the on-disk shape of a map file.
type file struct {
	Commands []record `toml:"command" yaml:"commands"`
}

// record is one command definition in a map file.
type record struct {
	Name       string   `toml:"name" yaml:"name"`
	Aliases    []string `toml:"aliases" yaml:"aliases"`
	Syntax     string   `toml:"syntax" yaml:"syntax"`
	Action     string   `toml:"action" yaml:"action"`
	Scope      string   `toml:"scope" yaml:"scope"`
	Parameters []string `toml:"parameters" yaml:"parameters"`
	Doc        string   `toml:"doc" yaml:"doc"`
}

// Load reads command definitions from a TOML or YAML file. The format
// is chosen by extension; anything but .toml, .yaml or .yml is
// rejected. Every record must carry a name and a symbolic action.
func Load(path string) ([]excmd.MappingDef, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading map file: %w", err)
	}

	var f file
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := toml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parsing map file %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parsing map file %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported map file format %q (want .toml, .yaml or .yml)", ext)
	}

	defs := make([]excmd.MappingDef, 0, len(f.Commands))
	for i, rec := range f.Commands {
		if strings.TrimSpace(rec.Name) == "" {
			return nil, fmt.Errorf("map file %s: command %d has no name", path, i+1)
		}
		if strings.TrimSpace(rec.Action) == "" {
			return nil, fmt.Errorf("map file %s: command %s has no action", path, rec.Name)
		}
		defs = append(defs, excmd.MappingDef{
			Name:           rec.Name,
			Aliases:        rec.Aliases,
			Syntax:         rec.Syntax,
			Action:         rec.Action,
			ScopeSelector:  rec.Scope,
			ParameterNames: rec.Parameters,
			Documentation:  rec.Doc,
		})
	}
	return defs, nil
}

// Apply registers the definitions in the map, stopping at the first
// definition the map rejects.
func Apply(m *excmd.Map, defs []excmd.MappingDef) error {
	for _, def := range defs {
		if _, err := m.Define(def); err != nil {
			return fmt.Errorf("applying map file command %s: %w", def.Name, err)
		}
	}
	return nil
}

// LoadInto is Load followed by Apply.
func LoadInto(m *excmd.Map, path string) error {
	defs, err := Load(path)
	if err != nil {
		return err
	}
	return Apply(m, defs)
}
