package evolution

import (
	"log/slog"
	"math/rand"

	"github.com/pthm-cable/menagerie/config"
	"github.com/pthm-cable/menagerie/creature"
	"github.com/pthm-cable/menagerie/stats"
	"github.com/pthm-cable/menagerie/traits"
)

// Genetics breeds offspring from two parents. All randomness flows
// through the injected source so runs with the same seed reproduce
// exactly.
type Genetics struct {
	// MutationRate is the per-inherited-trait chance of mutating.
	MutationRate float64

	rng *rand.Rand
}

// NewGenetics returns a breeding service seeded with the configured
// mutation rate.
func NewGenetics(rng *rand.Rand) *Genetics {
	return &Genetics{
		MutationRate: config.Cfg().Genetics.MutationRate,
		rng:          rng,
	}
}

// Breed produces a level-1 offspring of the two parents. The species
// comes from one parent at random, stats are averaged with bounded
// variance, and traits are inherited from the combined parent pool
// with a chance of mutation.
func (g *Genetics) Breed(p1, p2 *creature.Creature, name string) *creature.Creature {
	sp := p1.Species
	if g.rng.Intn(2) == 1 {
		sp = p2.Species
	}

	child := creature.NewOffspring(name, sp, g.inheritStats(p1.BaseStats, p2.BaseStats))

	mutations := 0
	for _, t := range g.inheritTraits(p1.Traits, p2.Traits, &mutations) {
		child.AddTrait(t)
	}

	slog.Info("offspring bred",
		slog.Uint64("id", child.ID),
		slog.String("name", child.Name),
		slog.String("species", sp.Name),
		slog.Uint64("parent1", p1.ID),
		slog.Uint64("parent2", p2.ID),
		slog.Int("traits", len(child.Traits)),
		slog.Int("mutations", mutations))

	return child
}

// inheritStats averages each parent stat and jitters it by up to a
// tenth of the average. Offspring always start undamaged, so HP is a
// single draw shared with max HP.
func (g *Genetics) inheritStats(a, b stats.Stats) stats.Stats {
	hp := g.averageStat(a.MaxHP, b.MaxHP)
	return stats.Stats{
		HP:             hp,
		MaxHP:          hp,
		Attack:         g.averageStat(a.Attack, b.Attack),
		Defense:        g.averageStat(a.Defense, b.Defense),
		Speed:          g.averageStat(a.Speed, b.Speed),
		SpecialAttack:  g.averageStat(a.SpecialAttack, b.SpecialAttack),
		SpecialDefense: g.averageStat(a.SpecialDefense, b.SpecialDefense),
	}
}

// averageStat returns the parent average plus uniform noise in
// [-avg/10, avg/10], floored at 1.
func (g *Genetics) averageStat(a, b int) int {
	avg := (a + b) / 2
	if span := avg / 10; span > 0 {
		avg += g.rng.Intn(2*span+1) - span
	}
	if avg < 1 {
		return 1
	}
	return avg
}

// inheritTraits draws from the combined parent pool. Each trait passes
// down with even odds and each inherited trait may mutate. Duplicate
// names keep the first occurrence, so a trait both parents carry is
// still inherited at most once.
func (g *Genetics) inheritTraits(t1, t2 []traits.Trait, mutations *int) []traits.Trait {
	pool := make([]traits.Trait, 0, len(t1)+len(t2))
	pool = append(pool, t1...)
	pool = append(pool, t2...)

	seen := make(map[string]bool, len(pool))
	var out []traits.Trait
	for _, t := range pool {
		if g.rng.Float64() >= 0.5 {
			continue
		}
		if g.rng.Float64() < g.MutationRate {
			t = g.mutate(t)
			*mutations++
		}
		if seen[t.Name] {
			continue
		}
		seen[t.Name] = true
		out = append(out, t)
	}
	return out
}

// mutate scales all of a trait's stat modifiers by a single factor in
// [0.9, 1.1] and marks the trait as a mutated variant.
func (g *Genetics) mutate(t traits.Trait) traits.Trait {
	factor := 0.9 + g.rng.Float64()*0.2
	return traits.Trait{
		Name:             t.Name + " (Mutated)",
		Description:      t.Description + " - Mutated variant",
		Type:             t.Type,
		StrengthModifier: t.StrengthModifier * factor,
		SpeedModifier:    t.SpeedModifier * factor,
		DefenseModifier:  t.DefenseModifier * factor,
		Rarity:           t.Rarity,
	}
}
