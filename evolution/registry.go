package evolution

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/pthm-cable/menagerie/creature"
)

var (
	// ErrNoPathAvailable is returned when a creature has no satisfied
	// evolution path.
	ErrNoPathAvailable = errors.New("no evolution paths available")
	// ErrConditionsNotMet is returned when a specific path was requested
	// but the creature does not satisfy it.
	ErrConditionsNotMet = errors.New("evolution conditions not met")
	// ErrTargetNotFound is returned when a path points at a species the
	// registry does not know.
	ErrTargetNotFound = errors.New("target species not found")
	// ErrUnknownSpecies is returned when a path is added for a source
	// species the registry does not know.
	ErrUnknownSpecies = errors.New("unknown species")
)

// Registry holds the known species and the evolution paths between
// them. Paths keep their registration order, which decides which path
// wins when a creature satisfies several at once.
type Registry struct {
	species map[SpeciesKey]*creature.Species
	paths   []*Path
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{species: make(map[SpeciesKey]*creature.Species)}
}

// RegisterSpecies adds or replaces a species template under its name.
func (r *Registry) RegisterSpecies(sp *creature.Species) {
	r.species[SpeciesKey(sp.Name)] = sp
}

// Species looks up a registered species template by key.
func (r *Registry) Species(key SpeciesKey) (*creature.Species, bool) {
	sp, ok := r.species[key]
	return sp, ok
}

// AddPath registers an evolution path. The source species must already
// be registered; the target may arrive later.
func (r *Registry) AddPath(p *Path) error {
	if _, ok := r.species[p.From]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSpecies, p.From)
	}
	r.paths = append(r.paths, p)
	return nil
}

// AvailablePaths returns the creature's satisfied paths in registration
// order. A species flagged as unable to evolve gets none.
func (r *Registry) AvailablePaths(c *creature.Creature) []*Path {
	if c.Species == nil || !c.Species.CanEvolve {
		return nil
	}
	var out []*Path
	for _, p := range r.paths {
		if p.Satisfied(c) {
			out = append(out, p)
		}
	}
	return out
}

// CanEvolve reports whether the creature currently satisfies at least
// one evolution path.
func (r *Registry) CanEvolve(c *creature.Creature) bool {
	return len(r.AvailablePaths(c)) > 0
}

// Evolve transforms the creature along the given path, or along the
// first satisfied path when path is nil. On success the creature swaps
// species, recomputes base stats at its current level from the target
// template, and comes out fully restored. The creature is unchanged on
// error.
func (r *Registry) Evolve(c *creature.Creature, path *Path) (string, error) {
	if path == nil {
		avail := r.AvailablePaths(c)
		if len(avail) == 0 {
			return "", ErrNoPathAvailable
		}
		path = avail[0]
	} else if !path.Satisfied(c) || !c.Species.CanEvolve {
		return "", ErrConditionsNotMet
	}

	target, ok := r.species[path.To]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrTargetNotFound, path.To)
	}

	from := c.Species.Name
	c.Species = target
	c.BaseStats = target.Growth.StatsAtLevel(target.BaseStats, c.Level)
	c.RefreshStats()
	c.FullRestore()

	slog.Info("creature evolved",
		slog.Uint64("id", c.ID),
		slog.String("from", from),
		slog.String("to", target.Name),
		slog.Int("level", c.Level))

	return fmt.Sprintf("Evolved from %s to %s!", from, target.Name), nil
}
