// Package evolution holds the species transformation rules and the
// breeding logic that together drive generational change: which species
// can turn into which, under what requirements, and how offspring
// inherit stats and traits from their parents.
package evolution

import (
	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/menagerie/creature"
)

// SpeciesKey identifies a species by name inside a registry.
type SpeciesKey string

// Path describes a single species transformation: the source and target
// species and the requirements a creature must meet to take it.
// Conditions carries free-form requirement data (items, environments)
// that callers interpret; the registry itself only checks level and
// traits.
type Path struct {
	From           SpeciesKey        `yaml:"from_type"`
	To             SpeciesKey        `yaml:"to_type"`
	MinLevel       int               `yaml:"min_level"`
	RequiredTraits []string          `yaml:"required_traits"`
	Conditions     map[string]string `yaml:"conditions,omitempty"`
}

// NewPath returns a path from one species to another with the default
// level requirement.
func NewPath(from, to SpeciesKey) *Path {
	return &Path{From: from, To: to, MinLevel: 10}
}

// Satisfied reports whether the creature meets every requirement of the
// path: species match, level threshold, and all required traits.
func (p *Path) Satisfied(c *creature.Creature) bool {
	if c.Species == nil || SpeciesKey(c.Species.Name) != p.From {
		return false
	}
	if c.Level < p.MinLevel {
		return false
	}
	for _, name := range p.RequiredTraits {
		if !c.HasTrait(name) {
			return false
		}
	}
	return true
}

// UnmarshalYAML decodes a path on top of the default requirements, so a
// document that omits min_level still requires level 10.
func (p *Path) UnmarshalYAML(value *yaml.Node) error {
	type raw Path
	r := raw(*NewPath("", ""))
	if err := value.Decode(&r); err != nil {
		return err
	}
	*p = Path(r)
	return nil
}
