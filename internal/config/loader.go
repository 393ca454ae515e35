package config

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

// DefaultFlow is the id of the two-factor authentication flow in the Apollo dataset.
const DefaultFlow = "2fa"

//go:embed apollo.yaml
var apolloYAML []byte

// Default parses the Apollo dataset compiled into the binary.
func Default() (*Dataset, error) {
	ds, err := Parse(apolloYAML)
	if err != nil {
		return nil, fmt.Errorf("apollo dataset: %w", err)
	}
	return ds, nil
}

// Parse decodes a YAML dataset. Only the YAML itself is checked; dangling
// target or root ids are left for the analysis to trip over.
func Parse(data []byte) (*Dataset, error) {
	var ds Dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("parse dataset: %w", err)
	}
	if ds.Name == "" {
		ds.Name = "unnamed"
	}
	if ds.Title == "" {
		ds.Title = ds.Name
	}
	return &ds, nil
}
