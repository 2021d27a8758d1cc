// SPDX-License-Identifier: MIT

// Package config reads Kirby diagram files and batch manifests.
//
// A diagram file holds one diagram:
//
//	name: hopf
//	pd: "(4 1 3 2) (2 3 1 4)"
//	annotations: "0 0"
//	dimension: 4
//
// A manifest holds a top-level list:
//
//	diagrams:
//	  - name: trefoil
//	    pd: "(1 4 2 5) (3 6 4 1) (5 2 6 3)"
//	    annotations: "-3"
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/kirbytri/kirby"
	"gopkg.in/yaml.v3"
)

// ErrNoDiagrams is returned for a manifest with an empty diagram list.
var ErrNoDiagrams = errors.New("config: no diagrams")

// DiagramFile is one diagram entry. Dimension 0 means the compiler default.
type DiagramFile struct {
	Name        string `yaml:"name"`
	PD          string `yaml:"pd"`
	Annotations string `yaml:"annotations"`
	Dimension   int    `yaml:"dimension,omitempty"`
}

// Manifest is a list of diagrams compiled together by the batch command.
type Manifest struct {
	Diagrams []DiagramFile `yaml:"diagrams"`
}

// Diagram parses the entry's PD code and annotations.
func (f DiagramFile) Diagram() (kirby.Diagram, error) {
	d, err := kirby.ParseDiagram(f.PD, f.Annotations)
	if err != nil {
		return kirby.Diagram{}, fmt.Errorf("diagram %q: %w", f.Name, err)
	}

	return d, nil
}

// Options returns the compiler options the entry asks for.
func (f DiagramFile) Options() []kirby.Option {
	if f.Dimension == 0 {
		return nil
	}

	return []kirby.Option{kirby.WithDimension(f.Dimension)}
}

// LoadDiagram reads a single diagram file. A missing name defaults to the
// file's base name without extension.
func LoadDiagram(path string) (DiagramFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DiagramFile{}, fmt.Errorf("reading diagram file: %w", err)
	}

	var f DiagramFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return DiagramFile{}, fmt.Errorf("parsing diagram file %s: %w", path, err)
	}
	if f.Name == "" {
		f.Name = baseName(path)
	}

	return f, nil
}

// LoadManifest reads a manifest file. Unnamed entries are called
// "<file>#<index>".
func LoadManifest(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("reading manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	if len(m.Diagrams) == 0 {
		return Manifest{}, fmt.Errorf("manifest %s: %w", path, ErrNoDiagrams)
	}
	for i := range m.Diagrams {
		if m.Diagrams[i].Name == "" {
			m.Diagrams[i].Name = fmt.Sprintf("%s#%d", baseName(path), i)
		}
	}

	return m, nil
}

// Load reads path as a manifest if it has a top-level diagrams key, else as
// a single diagram file.
func Load(path string) ([]DiagramFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var probe map[string]yaml.Node
	if err := yaml.NewDecoder(bytes.NewReader(data)).Decode(&probe); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if _, ok := probe["diagrams"]; ok {
		m, err := LoadManifest(path)
		if err != nil {
			return nil, err
		}
		return m.Diagrams, nil
	}

	f, err := LoadDiagram(path)
	if err != nil {
		return nil, err
	}

	return []DiagramFile{f}, nil
}

func baseName(path string) string {
	b := filepath.Base(path)

	return strings.TrimSuffix(b, filepath.Ext(b))
}
