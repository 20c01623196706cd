// Package project persists a named set of loaded lines to a JSON document.
// Only identity and load configuration are stored, never raw samples; a
// project reload re-reads the SEG-Y files with the recorded settings.
package project

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bytedance/sonic"

	"github.com/mhbaharuddin/seis2d/internal/seismic"
)

// CurrentVersion is written into new project documents.
const CurrentVersion = "0.0.1"

// LineRecord is the persisted form of one loaded line.
type LineRecord struct {
	Path   string              `json:"path"`
	Config seismic.FieldConfig `json:"config"`
}

// Project is a named collection of line records keyed by their unique
// line names.
type Project struct {
	Name    string                `json:"name"`
	Version string                `json:"version"`
	Lines   map[string]LineRecord `json:"lines"`
}

// New returns an empty project with the given name.
func New(name string) *Project {
	if name == "" {
		name = "Untitled"
	}
	return &Project{
		Name:    name,
		Version: CurrentVersion,
		Lines:   make(map[string]LineRecord),
	}
}

// Add records a loaded line under its resolved name.
func (p *Project) Add(line *seismic.Line, cfg seismic.FieldConfig) {
	if p.Lines == nil {
		p.Lines = make(map[string]LineRecord)
	}
	p.Lines[line.Metadata.Name] = LineRecord{Path: line.Metadata.Path, Config: cfg}
}

// Save writes the project as indented JSON, creating parent directories as
// needed.
func (p *Project) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create project dir: %w", err)
		}
	}
	data, err := sonic.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal project: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write project: %w", err)
	}
	return nil
}

// Load reads a project document from disk. Missing optional fields fall
// back to their defaults.
func Load(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read project: %w", err)
	}
	p := New("")
	if err := sonic.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("parse project %s: %w", path, err)
	}
	if p.Name == "" {
		p.Name = "Untitled"
	}
	if p.Version == "" {
		p.Version = CurrentVersion
	}
	if p.Lines == nil {
		p.Lines = make(map[string]LineRecord)
	}
	return p, nil
}
