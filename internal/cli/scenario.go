package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/fixedgrid/core"
)

// Kinds of container a Case can build.
const (
	KindVector = "vector"
	KindMatrix = "matrix"
)

// ScenarioFile is the top-level document accepted by `fixeddemo run`.
type ScenarioFile struct {
	// Cases are built and printed in file order.
	Cases []Case `yaml:"cases"`
}

// Case describes one container construction.
type Case struct {
	// Name is printed as a heading line followed, after the dump, by a blank
	// line. Unnamed cases print only the dump.
	Name string `yaml:"name,omitempty"`

	// Kind is "vector" or "matrix".
	Kind string `yaml:"kind"`

	// Size is the vector capacity N.
	Size int `yaml:"size,omitempty"`

	// Values are the vector's initial elements.
	Values []float64 `yaml:"values,omitempty"`

	// Rows and Cols are the matrix shape R×C.
	Rows int `yaml:"rows,omitempty"`
	Cols int `yaml:"cols,omitempty"`

	// Data holds the matrix's supplied rows.
	Data [][]float64 `yaml:"data,omitempty"`

	// Policy is "strict" (default) or "truncate".
	Policy string `yaml:"policy,omitempty"`
}

// LoadScenarioFile reads and validates a scenario file from disk.
func LoadScenarioFile(path string) (*ScenarioFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenarios(data)
}

// ParseScenarios decodes YAML scenario data. Unknown fields are rejected so
// typos surface as errors instead of silently zero-filled containers.
// An empty document yields no cases.
func ParseScenarios(data []byte) (*ScenarioFile, error) {
	var sf ScenarioFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&sf); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse scenario YAML: %w", err)
	}

	for i, c := range sf.Cases {
		if err := c.validate(); err != nil {
			return nil, fmt.Errorf("case %d (%q): %w", i, c.Name, err)
		}
	}
	return &sf, nil
}

// validate checks the fields the file controls. Container shape problems are
// left to the constructors so they surface as construction diagnostics.
func (c Case) validate() error {
	switch c.Kind {
	case KindVector, KindMatrix:
	default:
		return fmt.Errorf("unknown kind %q: must be %q or %q", c.Kind, KindVector, KindMatrix)
	}
	_, err := core.ParsePolicy(c.Policy)
	return err
}

// options resolves the case policy; validate has already vetted it.
func (c Case) options() []core.Option {
	p, err := core.ParsePolicy(c.Policy)
	if err != nil {
		return nil
	}
	return []core.Option{core.WithPolicy(p)}
}
