package evolution

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/menagerie/creature"
)

// Snapshot is the on-disk form of a registry: species keyed by name,
// paths in registration order.
type Snapshot struct {
	CreatureTypes  map[SpeciesKey]*creature.Species `yaml:"creature_types"`
	EvolutionPaths []*Path                          `yaml:"evolution_paths"`
}

// Snapshot captures the registry's species and paths.
func (r *Registry) Snapshot() *Snapshot {
	types := make(map[SpeciesKey]*creature.Species, len(r.species))
	for key, sp := range r.species {
		types[key] = sp
	}
	return &Snapshot{
		CreatureTypes:  types,
		EvolutionPaths: append([]*Path(nil), r.paths...),
	}
}

// Load rebuilds the registry from a snapshot. All species are
// registered before any path so path order in the document never
// matters.
func (r *Registry) Load(snap *Snapshot) error {
	for key, sp := range snap.CreatureTypes {
		if sp.Name == "" {
			sp.Name = string(key)
		}
		r.RegisterSpecies(sp)
	}
	for _, p := range snap.EvolutionPaths {
		if err := r.AddPath(p); err != nil {
			return fmt.Errorf("load path %s -> %s: %w", p.From, p.To, err)
		}
	}
	return nil
}

// SaveFile writes the registry snapshot to a YAML file.
func (r *Registry) SaveFile(path string) error {
	data, err := yaml.Marshal(r.Snapshot())
	if err != nil {
		return fmt.Errorf("marshal registry: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write registry: %w", err)
	}
	return nil
}

// LoadFile reads a registry snapshot from a YAML file into r.
func (r *Registry) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read registry: %w", err)
	}
	var snap Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("parse registry: %w", err)
	}
	return r.Load(&snap)
}
