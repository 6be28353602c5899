// File: mapfile_test.go
// Title: Map File Loading Unit Tests
// Description: Unit tests for map file loading covering TOML and YAML
//              decoding, format detection, record validation and
//              registration into a command map.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-29
// Modified: 2026-08-29

package mapfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/msto63/exline/excmd"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "exrc.toml", `
[[command]]
name    = "tabedit"
aliases = ["tabnew"]
syntax  = "!+1ex"
action  = "ex_tabedit"
doc     = "Edit +filename+ in a new tab."

[[command]]
name   = "make"
syntax = "e"
action = "ex_make"
scope  = "source.go"
`)

	defs, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(defs) != 2 {
		t.Fatalf("Load returned %d definitions, want 2", len(defs))
	}
	if defs[0].Name != "tabedit" || len(defs[0].Aliases) != 1 || defs[0].Aliases[0] != "tabnew" {
		t.Errorf("first definition = %+v", defs[0])
	}
	if defs[1].ScopeSelector != "source.go" {
		t.Errorf("second definition scope = %q, want source.go", defs[1].ScopeSelector)
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "exrc.yaml", `
commands:
  - name: tabedit
    aliases: [tabnew]
    syntax: "!+1ex"
    action: ex_tabedit
    parameters: ["", "", "filename"]
  - name: make
    syntax: e
    action: ex_make
`)

	defs, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(defs) != 2 {
		t.Fatalf("Load returned %d definitions, want 2", len(defs))
	}
	if defs[0].Syntax != "!+1ex" {
		t.Errorf("first definition syntax = %q", defs[0].Syntax)
	}
	if len(defs[0].ParameterNames) != 3 || defs[0].ParameterNames[2] != "filename" {
		t.Errorf("first definition parameters = %v", defs[0].ParameterNames)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name:    "Unsupported extension",
			file:    "exrc.json",
			content: `{}`,
		},
		{
			name:    "Malformed TOML",
			file:    "exrc.toml",
			content: `[[command` + "\n",
		},
		{
			name: "Record without name",
			file: "exrc.toml",
			content: `
[[command]]
action = "ex_make"
`,
		},
		{
			name: "Record without action",
			file: "exrc.toml",
			content: `
[[command]]
name = "make"
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.content)
			if _, err := Load(path); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nosuch.toml")); err == nil {
		t.Error("expected error, got nil")
	}
}

func TestLoadInto(t *testing.T) {
	path := writeFile(t, "exrc.toml", `
[[command]]
name    = "tabedit"
aliases = ["tabnew"]
action  = "ex_tabedit"
`)

	m := excmd.NewMap(excmd.Options{})
	if err := LoadInto(m, path); err != nil {
		t.Fatalf("LoadInto: %v", err)
	}

	mapping, err := m.Lookup("tabn")
	if err != nil {
		t.Fatalf("Lookup(tabn): %v", err)
	}
	if mapping.Name() != "tabedit" {
		t.Errorf("Lookup(tabn) = %s, want tabedit", mapping.Name())
	}
	if mapping.Action() != "ex_tabedit" {
		t.Errorf("action = %q, want ex_tabedit", mapping.Action())
	}
}

func TestApplyRejectsBadDefinition(t *testing.T) {
	m := excmd.NewMap(excmd.Options{})
	defs := []excmd.MappingDef{
		{Name: "make", Action: "ex_make"},
		{Name: "broken"}, // no implementation
	}
	if err := Apply(m, defs); err == nil {
		t.Error("expected error, got nil")
	}
}
