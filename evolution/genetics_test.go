package evolution

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/pthm-cable/menagerie/creature"
	"github.com/pthm-cable/menagerie/stats"
	"github.com/pthm-cable/menagerie/traits"
)

func newParents() (*creature.Creature, *creature.Creature) {
	spA := creature.NewSpecies("Ridgeback")
	spA.BaseStats = stats.Stats{HP: 100, MaxHP: 100, Attack: 20, Defense: 14, Speed: 10, SpecialAttack: 12, SpecialDefense: 12}
	spB := creature.NewSpecies("Mirefin")
	spB.BaseStats = stats.Stats{HP: 120, MaxHP: 120, Attack: 12, Defense: 18, Speed: 16, SpecialAttack: 10, SpecialDefense: 16}
	return creature.New("Sire", spA, 1), creature.New("Dam", spB, 1)
}

func TestBreedOffspringIsLevelOneAndUndamaged(t *testing.T) {
	p1, p2 := newParents()
	g := NewGenetics(rand.New(rand.NewSource(42)))

	child := g.Breed(p1, p2, "Pup")
	if child.Level != 1 {
		t.Errorf("expected level 1, got %d", child.Level)
	}
	if child.BaseStats.HP != child.BaseStats.MaxHP {
		t.Errorf("offspring must start undamaged: %d/%d", child.BaseStats.HP, child.BaseStats.MaxHP)
	}
	if child.Species.Name != "Ridgeback" && child.Species.Name != "Mirefin" {
		t.Errorf("species must come from a parent, got %q", child.Species.Name)
	}
}

func TestBreedStatsStayNearParentAverage(t *testing.T) {
	p1, p2 := newParents()
	g := NewGenetics(rand.New(rand.NewSource(7)))

	// Parent max HP 100 and 120: average 110, span 11.
	for i := 0; i < 200; i++ {
		child := g.Breed(p1, p2, "Pup")
		if hp := child.BaseStats.MaxHP; hp < 99 || hp > 121 {
			t.Fatalf("max HP %d outside [99, 121]", hp)
		}
	}
}

func TestBreedStatsFlooredAtOne(t *testing.T) {
	spA := creature.NewSpecies("Wisp")
	spA.BaseStats = stats.Stats{HP: 1, MaxHP: 1, Attack: 0, Defense: 0, Speed: 0}
	p1 := creature.New("A", spA, 1)
	p2 := creature.New("B", spA, 1)
	g := NewGenetics(rand.New(rand.NewSource(1)))

	child := g.Breed(p1, p2, "Mote")
	s := child.BaseStats
	for _, v := range []int{s.MaxHP, s.Attack, s.Defense, s.Speed, s.SpecialAttack, s.SpecialDefense} {
		if v < 1 {
			t.Errorf("stat %d below floor in %+v", v, s)
		}
	}
}

func TestBreedZeroMutationRate(t *testing.T) {
	p1, p2 := newParents()
	p1.AddTrait(traits.Herbivore)
	p1.AddTrait(traits.Voracious)
	p2.AddTrait(traits.Carnivore)
	p2.AddTrait(traits.Glutton)

	g := NewGenetics(rand.New(rand.NewSource(3)))
	g.MutationRate = 0

	for i := 0; i < 100; i++ {
		child := g.Breed(p1, p2, "Pup")
		for _, tr := range child.Traits {
			if strings.Contains(tr.Name, "(Mutated)") {
				t.Fatalf("mutation at rate 0: %q", tr.Name)
			}
		}
	}
}

func TestBreedFullMutationRate(t *testing.T) {
	p1, p2 := newParents()
	p1.AddTrait(traits.Herbivore)
	p2.AddTrait(traits.Carnivore)

	g := NewGenetics(rand.New(rand.NewSource(5)))
	g.MutationRate = 1.0

	sawTrait := false
	for i := 0; i < 100; i++ {
		child := g.Breed(p1, p2, "Pup")
		for _, tr := range child.Traits {
			sawTrait = true
			if !strings.HasSuffix(tr.Name, " (Mutated)") {
				t.Fatalf("unmutated trait at rate 1.0: %q", tr.Name)
			}
			if !strings.HasSuffix(tr.Description, " - Mutated variant") {
				t.Fatalf("description not marked: %q", tr.Description)
			}
		}
	}
	if !sawTrait {
		t.Fatal("no traits inherited across 100 breedings")
	}
}

func TestMutationScalesAllModifiersTogether(t *testing.T) {
	g := NewGenetics(rand.New(rand.NewSource(9)))

	base := traits.New("Balanced")
	base.StrengthModifier = 2.0
	base.SpeedModifier = 2.0
	base.DefenseModifier = 2.0

	m := g.mutate(base)
	if m.StrengthModifier != m.SpeedModifier || m.SpeedModifier != m.DefenseModifier {
		t.Errorf("modifiers scaled unevenly: %+v", m)
	}
	factor := m.StrengthModifier / base.StrengthModifier
	if factor < 0.9 || factor > 1.1 {
		t.Errorf("mutation factor %v outside [0.9, 1.1]", factor)
	}
	if m.Type != base.Type || m.Rarity != base.Rarity {
		t.Errorf("type and rarity must be preserved: %+v", m)
	}
}

func TestBreedNoDuplicateTraitNames(t *testing.T) {
	p1, p2 := newParents()
	shared := traits.New("Hardy")
	p1.AddTrait(shared)
	p2.AddTrait(shared)

	g := NewGenetics(rand.New(rand.NewSource(11)))
	g.MutationRate = 0

	for i := 0; i < 100; i++ {
		child := g.Breed(p1, p2, "Pup")
		seen := make(map[string]bool)
		for _, tr := range child.Traits {
			if seen[tr.Name] {
				t.Fatalf("duplicate trait %q", tr.Name)
			}
			seen[tr.Name] = true
		}
	}
}

func TestBreedDeterministicWithSeed(t *testing.T) {
	p1, p2 := newParents()
	p1.AddTrait(traits.Herbivore)
	p2.AddTrait(traits.Carnivore)

	a := NewGenetics(rand.New(rand.NewSource(99))).Breed(p1, p2, "Pup")
	b := NewGenetics(rand.New(rand.NewSource(99))).Breed(p1, p2, "Pup")

	if a.BaseStats != b.BaseStats {
		t.Errorf("stats diverged: %+v != %+v", a.BaseStats, b.BaseStats)
	}
	if a.Species.Name != b.Species.Name {
		t.Errorf("species diverged: %q != %q", a.Species.Name, b.Species.Name)
	}
	if len(a.Traits) != len(b.Traits) {
		t.Errorf("traits diverged: %d != %d", len(a.Traits), len(b.Traits))
	}
}
