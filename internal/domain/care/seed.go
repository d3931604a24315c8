package care

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultSeed []byte

// Seed es el catálogo inicial por kind.
type Seed struct {
	Vaccination []string `yaml:"vaccination"`
	Deworming   []string `yaml:"deworming"`
}

// DefaultSeed parsea el seed embebido.
func DefaultSeed() (Seed, error) {
	return ParseSeed(defaultSeed)
}

func ParseSeed(b []byte) (Seed, error) {
	var s Seed
	if err := yaml.Unmarshal(b, &s); err != nil {
		return Seed{}, fmt.Errorf("parse care seed: %w", err)
	}
	return s, nil
}

func (s Seed) entries() map[Kind][]string {
	return map[Kind][]string{
		KindVaccination: s.Vaccination,
		KindDeworming:   s.Deworming,
	}
}
