// SPDX-License-Identifier: MIT
// Package: tables
//
// encode.go - YAML export in the problem-file layout.

package tables

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// problemFile mirrors the problem-file schema read by the CLI.
type problemFile struct {
	Name      string   `yaml:"name,omitempty"`
	Dimension int      `yaml:"dimension"`
	Vectors   int      `yaml:"vectors"`
	Cosines   []string `yaml:"cosines,flow"`
	Index     [][]int  `yaml:"index,flow"`
}

// MarshalYAML implements yaml.Marshaler: cosines become exact "a/b" strings.
func (t *Table) MarshalYAML() (interface{}, error) {
	cos := make([]string, len(t.Cosines))
	for k, q := range t.Cosines {
		cos[k] = q.RatString()
	}

	return problemFile{
		Name:      t.Name,
		Dimension: t.Dimension,
		Vectors:   t.Vectors(),
		Cosines:   cos,
		Index:     t.Index,
	}, nil
}

// YAML encodes the table as a problem file.
func (t *Table) YAML() ([]byte, error) {
	data, err := yaml.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("tables: failed to encode %s: %w", t.Name, err)
	}

	return data, nil
}
