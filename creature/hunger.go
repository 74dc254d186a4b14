package creature

import (
	"github.com/pthm-cable/menagerie/config"
	"github.com/pthm-cable/menagerie/traits"
)

// FoodType classifies what a creature is trying to eat.
type FoodType string

const (
	FoodAny      FoodType = "any"
	FoodPlant    FoodType = "plant"
	FoodCreature FoodType = "creature"
)

// Metabolic trait scaling on the hunger depletion rate.
const (
	efficientMetabolismRate = 0.6
	gluttonRate             = 1.5
	voraciousHealDivisor    = 10
)

// TickHunger depletes hunger for dt seconds of simulation time.
// Metabolic traits scale the depletion rate. A creature whose hunger
// hits zero starves to death.
func (c *Creature) TickHunger(dt float64) {
	rate := config.Cfg().Hunger.Rate
	if c.HasTrait(traits.EfficientMetabolismName) {
		rate *= efficientMetabolismRate
	}
	if c.HasTrait(traits.GluttonName) {
		rate *= gluttonRate
	}

	c.Hunger -= rate * dt
	if c.Hunger <= 0 {
		c.Hunger = 0
		c.Current.HP = 0
	}
}

// CanEat reports whether the creature's dietary traits allow the food
// type. Creatures without a dietary trait eat anything, as do
// omnivores; herbivores are limited to plants and carnivores to
// creatures.
func (c *Creature) CanEat(food FoodType) bool {
	if food == FoodAny {
		return true
	}

	herbivore := c.HasTrait(traits.HerbivoreName)
	carnivore := c.HasTrait(traits.CarnivoreName)
	if c.HasTrait(traits.OmnivoreName) || (herbivore && carnivore) {
		return true
	}
	if !herbivore && !carnivore {
		return true
	}
	if herbivore {
		return food == FoodPlant
	}
	return food == FoodCreature
}

// Eat restores hunger from a food source of the given type.
// Returns the hunger actually restored; food the diet rejects restores
// nothing. Voracious creatures also heal a little HP per meal.
func (c *Creature) Eat(amount float64, food FoodType) float64 {
	if amount <= 0 || !c.CanEat(food) {
		return 0
	}

	old := c.Hunger
	c.Hunger += amount
	if c.Hunger > c.MaxHunger {
		c.Hunger = c.MaxHunger
	}

	if c.HasTrait(traits.VoraciousName) {
		c.Heal(int(amount) / voraciousHealDivisor)
	}

	return c.Hunger - old
}
