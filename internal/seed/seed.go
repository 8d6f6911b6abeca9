// Package seed provides the mock collections every screen starts from.
package seed

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"insurance-portal/internal/models"
)

//go:embed data.yaml
var raw []byte

type Data struct {
	Agencies  []models.Agency   `yaml:"agencies"`
	Agents    []models.Agent    `yaml:"agents"`
	Customers []models.Customer `yaml:"customers"`
	Quotes    []models.Quote    `yaml:"quotes"`
}

// Load decodes the embedded fixture. Each call returns fresh slices.
func Load() (*Data, error) {
	return Parse(raw)
}

func Parse(b []byte) (*Data, error) {
	var d Data
	if err := yaml.Unmarshal(b, &d); err != nil {
		return nil, fmt.Errorf("decode seed data: %w", err)
	}
	return &d, nil
}
