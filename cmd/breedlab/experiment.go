package main

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"

	"github.com/pthm-cable/menagerie/config"
	"github.com/pthm-cable/menagerie/creature"
	"github.com/pthm-cable/menagerie/evolution"
	"github.com/pthm-cable/menagerie/stats"
	"github.com/pthm-cable/menagerie/telemetry"
	"github.com/pthm-cable/menagerie/traits"
)

// Experiment holds the state of a single breeding run: the species
// registry, the live population, and the telemetry sinks.
type Experiment struct {
	rng       *rand.Rand
	target    int
	registry  *evolution.Registry
	genetics  *evolution.Genetics
	collector *telemetry.Collector
	out       *telemetry.OutputManager

	population []*creature.Creature
}

// NewExperiment builds the species line, seeds the starting population,
// and wires up telemetry.
func NewExperiment(rng *rand.Rand, target int, out *telemetry.OutputManager) *Experiment {
	e := &Experiment{
		rng:       rng,
		target:    target,
		registry:  buildRegistry(),
		genetics:  evolution.NewGenetics(rng),
		collector: telemetry.NewCollector(config.Cfg().Telemetry.WindowGenerations),
		out:       out,
	}

	starter, _ := e.registry.Species("Sproutling")
	starterTraits := []traits.Trait{
		traits.Herbivore, traits.Carnivore, traits.Omnivore,
		traits.EfficientMetabolism, traits.Glutton, traits.Voracious,
	}
	for i := 0; i < target; i++ {
		c := creature.New(fmt.Sprintf("founder-%d", i), starter, 1)
		c.AddTrait(starterTraits[rng.Intn(len(starterTraits))])
		e.population = append(e.population, c)
	}
	return e
}

// buildRegistry assembles the built-in three-stage species line.
func buildRegistry() *evolution.Registry {
	sproutling := creature.NewSpecies("Sproutling")
	sproutling.Description = "A small sprout-backed creature."

	bloomfang := creature.NewSpecies("Bloomfang")
	bloomfang.Description = "A flowering mid-stage predator."
	bloomfang.BaseStats = stats.Stats{HP: 150, MaxHP: 150, Attack: 18, Defense: 15, Speed: 12, SpecialAttack: 16, SpecialDefense: 14}
	bloomfang.EvolutionStage = 2

	tyrant := creature.NewSpecies("Verdant Tyrant")
	tyrant.Description = "The apex of the line."
	tyrant.BaseStats = stats.Stats{HP: 220, MaxHP: 220, Attack: 28, Defense: 22, Speed: 16, SpecialAttack: 26, SpecialDefense: 20}
	tyrant.Growth.Curve = stats.CurveSlow
	tyrant.EvolutionStage = 3
	tyrant.CanEvolve = false

	r := evolution.NewRegistry()
	r.RegisterSpecies(sproutling)
	r.RegisterSpecies(bloomfang)
	r.RegisterSpecies(tyrant)

	for _, p := range []*evolution.Path{
		evolution.NewPath("Sproutling", "Bloomfang"),
		{From: "Bloomfang", To: "Verdant Tyrant", MinLevel: 25},
	} {
		if err := r.AddPath(p); err != nil {
			panic(err)
		}
	}
	return r
}

// Run executes the generational loop and writes the final roster.
func (e *Experiment) Run(generations int) error {
	for gen := 1; gen <= generations; gen++ {
		e.step(gen)

		if e.collector.ShouldFlush(gen) {
			ws := e.collector.Flush(gen, e.population)
			ws.LogStats()
			if err := e.out.WriteTelemetry(ws); err != nil {
				return err
			}
		}

		if len(e.population) < 2 {
			slog.Warn("population collapsed", "generation", gen, "remaining", len(e.population))
			break
		}
	}

	levels := make([]float64, len(e.population))
	for i, c := range e.population {
		levels[i] = float64(c.Level)
	}
	mean, std, _, p50, p90 := telemetry.Distribution(levels)
	slog.Info("experiment finished",
		"population", len(e.population),
		"level_mean", mean,
		"level_std", std,
		"level_p50", p50,
		"level_p90", p90,
	)

	return e.out.WriteRoster(e.population)
}

// step advances the population one generation: feeding, experience,
// evolution, deaths, then breeding back up to the target size.
func (e *Experiment) step(gen int) {
	for _, c := range e.population {
		c.TickHunger(1.0)
		if !c.Alive() {
			continue
		}
		c.Eat(float64(2+e.rng.Intn(6)), creature.FoodAny)

		before := c.Level
		c.GainExperience(40 + e.rng.Intn(80))
		for i := before; i < c.Level; i++ {
			e.collector.RecordLevelUp()
		}

		if msg, err := e.registry.Evolve(c, nil); err == nil {
			e.collector.RecordEvolution()
			slog.Debug("evolution", "creature", c.Name, "result", msg)
		} else if !errors.Is(err, evolution.ErrNoPathAvailable) {
			slog.Warn("evolution failed", "creature", c.Name, "error", err)
		}
	}

	alive := e.population[:0]
	for _, c := range e.population {
		if c.Alive() {
			alive = append(alive, c)
		} else {
			e.collector.RecordDeath()
		}
	}
	e.population = alive

	for len(e.population) >= 2 && len(e.population) < e.target {
		p1 := e.population[e.rng.Intn(len(e.population))]
		p2 := e.population[e.rng.Intn(len(e.population))]
		if p1 == p2 {
			continue
		}
		child := e.genetics.Breed(p1, p2, fmt.Sprintf("gen%d-%d", gen, len(e.population)))
		e.collector.RecordBirth()
		for _, t := range child.Traits {
			if strings.HasSuffix(t.Name, "(Mutated)") {
				e.collector.RecordMutations(1)
			}
		}
		e.population = append(e.population, child)
	}
}
