package evolution

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/pthm-cable/menagerie/config"
	"github.com/pthm-cable/menagerie/creature"
	"github.com/pthm-cable/menagerie/stats"
	"github.com/pthm-cable/menagerie/traits"
)

func init() {
	config.MustInit("")
}

// testRegistry builds a two-stage line: Sproutling evolves into
// Bloomfang at level 10.
func testRegistry(t *testing.T) *Registry {
	t.Helper()

	base := creature.NewSpecies("Sproutling")
	evolved := creature.NewSpecies("Bloomfang")
	evolved.BaseStats = stats.Stats{HP: 150, MaxHP: 150, Attack: 18, Defense: 15, Speed: 12, SpecialAttack: 16, SpecialDefense: 14}
	evolved.EvolutionStage = 2

	r := NewRegistry()
	r.RegisterSpecies(base)
	r.RegisterSpecies(evolved)
	if err := r.AddPath(NewPath("Sproutling", "Bloomfang")); err != nil {
		t.Fatalf("add path: %v", err)
	}
	return r
}

func TestAddPathUnknownSpecies(t *testing.T) {
	r := NewRegistry()
	err := r.AddPath(NewPath("Ghost", "Phantom"))
	if !errors.Is(err, ErrUnknownSpecies) {
		t.Errorf("expected ErrUnknownSpecies, got %v", err)
	}
}

func TestAvailablePathsLevelGate(t *testing.T) {
	r := testRegistry(t)
	sp, _ := r.Species("Sproutling")

	young := creature.New("Young", sp, 5)
	if paths := r.AvailablePaths(young); len(paths) != 0 {
		t.Errorf("expected no paths below min level, got %d", len(paths))
	}

	grown := creature.New("Grown", sp, 10)
	if paths := r.AvailablePaths(grown); len(paths) != 1 {
		t.Errorf("expected 1 path at min level, got %d", len(paths))
	}
}

func TestAvailablePathsTraitRequirement(t *testing.T) {
	r := testRegistry(t)
	sp, _ := r.Species("Sproutling")

	p := NewPath("Sproutling", "Bloomfang")
	p.MinLevel = 1
	p.RequiredTraits = []string{"Voracious"}
	r2 := NewRegistry()
	r2.RegisterSpecies(sp)
	bloom, _ := r.Species("Bloomfang")
	r2.RegisterSpecies(bloom)
	if err := r2.AddPath(p); err != nil {
		t.Fatalf("add path: %v", err)
	}

	c := creature.New("Plain", sp, 10)
	if r2.CanEvolve(c) {
		t.Error("should not evolve without required trait")
	}
	c.AddTrait(traits.Voracious)
	if !r2.CanEvolve(c) {
		t.Error("should evolve with required trait")
	}
}

func TestAvailablePathsRespectsCanEvolve(t *testing.T) {
	r := testRegistry(t)
	sp, _ := r.Species("Sproutling")
	sp.CanEvolve = false
	defer func() { sp.CanEvolve = true }()

	c := creature.New("Stuck", sp, 20)
	if r.CanEvolve(c) {
		t.Error("species flagged CanEvolve=false must not evolve")
	}
}

func TestEvolveAutoSelectsFirstPath(t *testing.T) {
	r := testRegistry(t)
	sp, _ := r.Species("Sproutling")
	third := creature.NewSpecies("Thornmaw")
	r.RegisterSpecies(third)
	if err := r.AddPath(NewPath("Sproutling", "Thornmaw")); err != nil {
		t.Fatalf("add path: %v", err)
	}

	c := creature.New("Test", sp, 10)
	msg, err := r.Evolve(c, nil)
	if err != nil {
		t.Fatalf("evolve: %v", err)
	}
	if msg != "Evolved from Sproutling to Bloomfang!" {
		t.Errorf("unexpected message %q", msg)
	}
	if c.Species.Name != "Bloomfang" {
		t.Errorf("expected Bloomfang, got %q", c.Species.Name)
	}
}

func TestEvolveRecomputesStatsAndRestores(t *testing.T) {
	r := testRegistry(t)
	sp, _ := r.Species("Sproutling")
	evolved, _ := r.Species("Bloomfang")

	c := creature.New("Test", sp, 12)
	c.TakeDamage(40)
	c.Energy = 30

	if _, err := r.Evolve(c, nil); err != nil {
		t.Fatalf("evolve: %v", err)
	}

	want := evolved.Growth.StatsAtLevel(evolved.BaseStats, 12)
	if c.BaseStats != want {
		t.Errorf("base stats not recomputed from target: got %+v want %+v", c.BaseStats, want)
	}
	if c.Current.HP != c.Current.MaxHP {
		t.Errorf("expected full HP after evolution, got %d/%d", c.Current.HP, c.Current.MaxHP)
	}
	if c.Energy != c.MaxEnergy {
		t.Errorf("expected full energy after evolution, got %d/%d", c.Energy, c.MaxEnergy)
	}
	if c.Level != 12 {
		t.Errorf("level must survive evolution, got %d", c.Level)
	}
}

func TestEvolveNoPathAvailable(t *testing.T) {
	r := testRegistry(t)
	sp, _ := r.Species("Sproutling")
	c := creature.New("Young", sp, 3)

	_, err := r.Evolve(c, nil)
	if !errors.Is(err, ErrNoPathAvailable) {
		t.Errorf("expected ErrNoPathAvailable, got %v", err)
	}
	if c.Species.Name != "Sproutling" {
		t.Error("failed evolution must not change the creature")
	}
}

func TestEvolveExplicitPathUnsatisfied(t *testing.T) {
	r := testRegistry(t)
	sp, _ := r.Species("Sproutling")
	c := creature.New("Young", sp, 3)

	p := NewPath("Sproutling", "Bloomfang")
	_, err := r.Evolve(c, p)
	if !errors.Is(err, ErrConditionsNotMet) {
		t.Errorf("expected ErrConditionsNotMet, got %v", err)
	}
}

func TestEvolveTargetNotFound(t *testing.T) {
	r := NewRegistry()
	sp := creature.NewSpecies("Orphan")
	r.RegisterSpecies(sp)
	if err := r.AddPath(NewPath("Orphan", "Missing")); err != nil {
		t.Fatalf("add path: %v", err)
	}

	c := creature.New("Test", sp, 10)
	_, err := r.Evolve(c, nil)
	if !errors.Is(err, ErrTargetNotFound) {
		t.Errorf("expected ErrTargetNotFound, got %v", err)
	}
	if c.Species.Name != "Orphan" {
		t.Error("failed evolution must not change the creature")
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	r := testRegistry(t)
	file := filepath.Join(t.TempDir(), "registry.yaml")
	if err := r.SaveFile(file); err != nil {
		t.Fatalf("save: %v", err)
	}

	restored := NewRegistry()
	if err := restored.LoadFile(file); err != nil {
		t.Fatalf("load: %v", err)
	}

	sp, ok := restored.Species("Bloomfang")
	if !ok {
		t.Fatal("Bloomfang missing after reload")
	}
	if sp.BaseStats.MaxHP != 150 || sp.EvolutionStage != 2 {
		t.Errorf("species fields lost: %+v", sp)
	}

	c := creature.New("Test", mustSpecies(t, restored, "Sproutling"), 10)
	if !restored.CanEvolve(c) {
		t.Error("reloaded registry should offer the path")
	}
}

func mustSpecies(t *testing.T, r *Registry, key SpeciesKey) *creature.Species {
	t.Helper()
	sp, ok := r.Species(key)
	if !ok {
		t.Fatalf("species %q not registered", key)
	}
	return sp
}
