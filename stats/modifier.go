package stats

import "gopkg.in/yaml.v3"

// PermanentDuration marks a modifier that never expires on its own.
const PermanentDuration = -1

// Modifier is a named buff or debuff layered on top of a stat block.
// Multipliers default to 1.0 and bonuses to 0, so a freshly constructed
// modifier is a no-op. Duration counts remaining applications: -1 is
// permanent, 0 is expired, and positive values tick down once per turn.
type Modifier struct {
	Name     string `yaml:"name"`
	Duration int    `yaml:"duration"`

	AttackMultiplier         float64 `yaml:"attack_multiplier"`
	AttackBonus              int     `yaml:"attack_bonus"`
	DefenseMultiplier        float64 `yaml:"defense_multiplier"`
	DefenseBonus             int     `yaml:"defense_bonus"`
	SpeedMultiplier          float64 `yaml:"speed_multiplier"`
	SpeedBonus               int     `yaml:"speed_bonus"`
	SpecialAttackMultiplier  float64 `yaml:"special_attack_multiplier"`
	SpecialAttackBonus       int     `yaml:"special_attack_bonus"`
	SpecialDefenseMultiplier float64 `yaml:"special_defense_multiplier"`
	SpecialDefenseBonus      int     `yaml:"special_defense_bonus"`
	MaxHPMultiplier          float64 `yaml:"max_hp_multiplier"`
	MaxHPBonus               int     `yaml:"max_hp_bonus"`
}

// NewModifier returns a permanent no-op modifier with the given name.
// Callers set the fields they want to change.
func NewModifier(name string) Modifier {
	return Modifier{
		Name:                     name,
		Duration:                 PermanentDuration,
		AttackMultiplier:         1.0,
		DefenseMultiplier:        1.0,
		SpeedMultiplier:          1.0,
		SpecialAttackMultiplier:  1.0,
		SpecialDefenseMultiplier: 1.0,
		MaxHPMultiplier:          1.0,
	}
}

// Tick consumes one application. Permanent and already-expired
// modifiers are untouched, so duration never underflows.
func (m *Modifier) Tick() {
	if m.Duration > 0 {
		m.Duration--
	}
}

// Expired reports whether the modifier has run out. A modifier with
// one remaining application is still active until its next Tick.
func (m Modifier) Expired() bool {
	return m.Duration == 0
}

// UnmarshalYAML decodes a modifier on top of no-op defaults, so omitted
// multipliers stay at 1.0 instead of collapsing to zero.
func (m *Modifier) UnmarshalYAML(value *yaml.Node) error {
	type raw Modifier
	r := raw(NewModifier(""))
	if err := value.Decode(&r); err != nil {
		return err
	}
	*m = Modifier(r)
	return nil
}
