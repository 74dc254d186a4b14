package telemetry

import (
	"strings"

	"github.com/pthm-cable/menagerie/creature"
)

// Collector accumulates breeding events within generation windows and
// produces WindowStats.
type Collector struct {
	windowGenerations int

	windowStartGen int

	births     int
	deaths     int
	levelUps   int
	evolutions int
	mutations  int
}

// NewCollector creates a collector that flushes every windowGenerations
// generations.
func NewCollector(windowGenerations int) *Collector {
	if windowGenerations < 1 {
		windowGenerations = 1
	}
	return &Collector{windowGenerations: windowGenerations}
}

// RecordBirth records an offspring being bred.
func (c *Collector) RecordBirth() {
	c.births++
}

// RecordDeath records a creature death.
func (c *Collector) RecordDeath() {
	c.deaths++
}

// RecordLevelUp records a creature gaining a level.
func (c *Collector) RecordLevelUp() {
	c.levelUps++
}

// RecordEvolution records a completed evolution.
func (c *Collector) RecordEvolution() {
	c.evolutions++
}

// RecordMutations records trait mutations from a breeding.
func (c *Collector) RecordMutations(n int) {
	c.mutations += n
}

// ShouldFlush reports whether the window ending at the given generation
// is complete.
func (c *Collector) ShouldFlush(generation int) bool {
	return generation-c.windowStartGen >= c.windowGenerations
}

// Flush produces a WindowStats from the accumulated events and the
// current population, then resets counters for the next window.
func (c *Collector) Flush(generation int, population []*creature.Creature) WindowStats {
	levels := make([]float64, len(population))
	maxHPs := make([]float64, len(population))
	var traitTotal, mutated int
	for i, cr := range population {
		levels[i] = float64(cr.Level)
		maxHPs[i] = float64(cr.Current.MaxHP)
		traitTotal += len(cr.Traits)
		for _, t := range cr.Traits {
			if strings.HasSuffix(t.Name, "(Mutated)") {
				mutated++
			}
		}
	}

	levelMean, levelStd, levelP10, levelP50, levelP90 := Distribution(levels)
	hpMean, hpStd, _, _, hpP90 := Distribution(maxHPs)

	var traitsMean float64
	if len(population) > 0 {
		traitsMean = float64(traitTotal) / float64(len(population))
	}

	stats := WindowStats{
		WindowStartGen: c.windowStartGen,
		WindowEndGen:   generation,

		Population: len(population),

		Births:     c.births,
		Deaths:     c.deaths,
		LevelUps:   c.levelUps,
		Evolutions: c.evolutions,
		Mutations:  c.mutations,

		LevelMean: levelMean,
		LevelStd:  levelStd,
		LevelP10:  levelP10,
		LevelP50:  levelP50,
		LevelP90:  levelP90,

		MaxHPMean: hpMean,
		MaxHPStd:  hpStd,
		MaxHPP90:  hpP90,

		TraitsMean:   traitsMean,
		MutatedCount: mutated,
	}

	c.windowStartGen = generation
	c.births = 0
	c.deaths = 0
	c.levelUps = 0
	c.evolutions = 0
	c.mutations = 0

	return stats
}

// WindowGenerations returns the number of generations per window.
func (c *Collector) WindowGenerations() int {
	return c.windowGenerations
}
