// Package traits defines heritable creature characteristics.
package traits

import "gopkg.in/yaml.v3"

// Trait is a heritable characteristic that shapes a creature's stats
// and survival behavior. The modifier fields are multipliers applied to
// attack (strength), speed, and defense; 1.0 means no effect.
type Trait struct {
	Name             string  `yaml:"name"`
	Description      string  `yaml:"description"`
	Type             string  `yaml:"trait_type"`
	StrengthModifier float64 `yaml:"strength_modifier"`
	SpeedModifier    float64 `yaml:"speed_modifier"`
	DefenseModifier  float64 `yaml:"defense_modifier"`
	Rarity           string  `yaml:"rarity"`
}

// New returns a trait with neutral modifiers and common rarity.
func New(name string) Trait {
	return Trait{
		Name:             name,
		Type:             "passive",
		StrengthModifier: 1.0,
		SpeedModifier:    1.0,
		DefenseModifier:  1.0,
		Rarity:           "common",
	}
}

// Dietary trait names checked by the hunger system.
const (
	HerbivoreName           = "Herbivore"
	CarnivoreName           = "Carnivore"
	OmnivoreName            = "Omnivore"
	EfficientMetabolismName = "Efficient Metabolism"
	GluttonName             = "Glutton"
	VoraciousName           = "Voracious"
)

// Predefined survival traits. Carnivores trade dietary flexibility for
// a hunting strength bonus.
var (
	Herbivore = Trait{
		Name:             HerbivoreName,
		Description:      "Feeds on plants and foliage",
		Type:             "dietary",
		StrengthModifier: 1.0,
		SpeedModifier:    1.0,
		DefenseModifier:  1.0,
		Rarity:           "common",
	}
	Carnivore = Trait{
		Name:             CarnivoreName,
		Description:      "Hunts and feeds on other creatures",
		Type:             "dietary",
		StrengthModifier: 1.2,
		SpeedModifier:    1.0,
		DefenseModifier:  1.0,
		Rarity:           "common",
	}
	Omnivore = Trait{
		Name:             OmnivoreName,
		Description:      "Eats both plants and creatures",
		Type:             "dietary",
		StrengthModifier: 1.0,
		SpeedModifier:    1.0,
		DefenseModifier:  1.0,
		Rarity:           "common",
	}
	EfficientMetabolism = Trait{
		Name:             EfficientMetabolismName,
		Description:      "Burns energy slowly, staving off hunger",
		Type:             "metabolic",
		StrengthModifier: 1.0,
		SpeedModifier:    1.0,
		DefenseModifier:  1.0,
		Rarity:           "uncommon",
	}
	Glutton = Trait{
		Name:             GluttonName,
		Description:      "Always hungry, burns through food quickly",
		Type:             "metabolic",
		StrengthModifier: 1.0,
		SpeedModifier:    1.0,
		DefenseModifier:  1.0,
		Rarity:           "common",
	}
	Voracious = Trait{
		Name:             VoraciousName,
		Description:      "Eating restores a little health",
		Type:             "metabolic",
		StrengthModifier: 1.0,
		SpeedModifier:    1.0,
		DefenseModifier:  1.0,
		Rarity:           "uncommon",
	}
)

// UnmarshalYAML decodes a trait on top of neutral defaults, so an
// omitted modifier reads as 1.0 rather than zeroing the stat.
func (t *Trait) UnmarshalYAML(value *yaml.Node) error {
	type raw Trait
	r := raw(New(""))
	if err := value.Decode(&r); err != nil {
		return err
	}
	*t = Trait(r)
	return nil
}
