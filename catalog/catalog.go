// SPDX-License-Identifier: MIT
// Package: infotrace/catalog
//
// catalog.go — read-only comparison metadata for every algorithm engine.
//
// The table is an embedded YAML document decoded once at package
// initialisation. Accessors hand out deep copies, so callers can never
// mutate the shared table.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/infotrace/validation"
)

// Algorithm identifiers.
const (
	Huffman          = "huffman"
	Fano             = "fano"
	ShannonFanoElias = "shannonFanoElias"
	LempelZiv        = "lempelZiv"
	Hamming          = "hamming"
	Hamilton         = "hamilton"
)

// Algorithm families.
const (
	TypeCompression     = "compression"
	TypeErrorCorrection = "error-correction"
	TypeGraph           = "graph"
)

// ErrUnknownAlgorithm indicates an ID that is not in the table.
var ErrUnknownAlgorithm = errors.New("catalog: unknown algorithm")

// Complexity holds best, average and worst case bounds as display strings.
type Complexity struct {
	Best    string `yaml:"best"`
	Average string `yaml:"average"`
	Worst   string `yaml:"worst"`
}

// Info describes one algorithm.
type Info struct {
	ID              string     `yaml:"id"`
	Name            string     `yaml:"name"`
	Type            string     `yaml:"type"`
	TimeComplexity  Complexity `yaml:"time_complexity"`
	SpaceComplexity string     `yaml:"space_complexity"`
	Description     string     `yaml:"description"`
	UseCases        []string   `yaml:"use_cases"`
	Pros            []string   `yaml:"pros"`
	Cons            []string   `yaml:"cons"`
}

//go:embed algorithms.yaml
var rawTable []byte

var (
	table = mustLoad(rawTable)
	byID  = indexByID(table)
)

// Load decodes a catalog document. Entries must have unique, non-empty IDs.
func Load(doc []byte) ([]Info, error) {
	var infos []Info
	if err := yaml.Unmarshal(doc, &infos); err != nil {
		return nil, fmt.Errorf("catalog: decode: %w", err)
	}
	seen := make(map[string]struct{}, len(infos))
	for i, in := range infos {
		if in.ID == "" {
			return nil, fmt.Errorf("catalog: entry %d has no id", i)
		}
		if _, dup := seen[in.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate id %q", in.ID)
		}
		seen[in.ID] = struct{}{}
	}

	return infos, nil
}

func mustLoad(doc []byte) []Info {
	infos, err := Load(doc)
	if err != nil {
		panic(err)
	}

	return infos
}

func indexByID(infos []Info) map[string]int {
	m := make(map[string]int, len(infos))
	for i, in := range infos {
		m[in.ID] = i
	}

	return m
}

// Get returns the metadata for id.
func Get(id string) (Info, error) {
	i, ok := byID[id]
	if !ok {
		return Info{}, validation.Newf("catalog.Get", ErrUnknownAlgorithm, "%q", id)
	}

	return table[i].clone(), nil
}

// All returns every entry in display order.
func All() []Info {
	out := make([]Info, len(table))
	for i, in := range table {
		out[i] = in.clone()
	}

	return out
}

// IDs returns every algorithm ID in display order.
func IDs() []string {
	out := make([]string, len(table))
	for i, in := range table {
		out[i] = in.ID
	}

	return out
}

// CompressionIDs returns the IDs of the compression engines in display order.
func CompressionIDs() []string {
	var out []string
	for _, in := range table {
		if in.Type == TypeCompression {
			out = append(out, in.ID)
		}
	}

	return out
}

func (in Info) clone() Info {
	in.UseCases = append([]string(nil), in.UseCases...)
	in.Pros = append([]string(nil), in.Pros...)
	in.Cons = append([]string(nil), in.Cons...)

	return in
}
