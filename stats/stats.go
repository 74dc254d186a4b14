// Package stats defines creature stat blocks, modifiers, and growth profiles.
package stats

import "gopkg.in/yaml.v3"

// Stats holds the combat statistics of a creature.
// It is a value type: every transform returns a fresh copy.
// HP stays within [0, MaxHP]; all other fields are non-negative.
type Stats struct {
	HP             int `yaml:"hp"`
	MaxHP          int `yaml:"max_hp"`
	Attack         int `yaml:"attack"`
	Defense        int `yaml:"defense"`
	Speed          int `yaml:"speed"`
	SpecialAttack  int `yaml:"special_attack"`
	SpecialDefense int `yaml:"special_defense"`
}

// Default returns the baseline stat block used when a species defines none.
func Default() Stats {
	return Stats{
		HP:             100,
		MaxHP:          100,
		Attack:         10,
		Defense:        10,
		Speed:          10,
		SpecialAttack:  10,
		SpecialDefense: 10,
	}
}

// Clamped returns a copy with HP clamped into [0, MaxHP].
func (s Stats) Clamped() Stats {
	if s.HP > s.MaxHP {
		s.HP = s.MaxHP
	}
	if s.HP < 0 {
		s.HP = 0
	}
	return s
}

// Heal restores up to amount HP, never exceeding MaxHP.
// Returns the amount actually healed.
func (s *Stats) Heal(amount int) int {
	old := s.HP
	s.HP += amount
	if s.HP > s.MaxHP {
		s.HP = s.MaxHP
	}
	return s.HP - old
}

// TakeDamage removes up to amount HP, flooring at zero.
// Over-damage is clamped, not an error. Returns the damage actually taken.
func (s *Stats) TakeDamage(amount int) int {
	old := s.HP
	s.HP -= amount
	if s.HP < 0 {
		s.HP = 0
	}
	return old - s.HP
}

// Alive reports whether HP is above zero.
func (s Stats) Alive() bool {
	return s.HP > 0
}

// Apply returns a new stat block with the modifier applied.
// Each scalable stat is multiplied first, then the flat bonus is added,
// flooring to an integer. HP is rescaled so the HP/MaxHP ratio from
// before the transform is preserved; a zero pre-transform MaxHP counts
// as a full-health ratio.
func (s Stats) Apply(m Modifier) Stats {
	out := s
	out.Attack = scale(s.Attack, m.AttackMultiplier, m.AttackBonus)
	out.Defense = scale(s.Defense, m.DefenseMultiplier, m.DefenseBonus)
	out.Speed = scale(s.Speed, m.SpeedMultiplier, m.SpeedBonus)
	out.SpecialAttack = scale(s.SpecialAttack, m.SpecialAttackMultiplier, m.SpecialAttackBonus)
	out.SpecialDefense = scale(s.SpecialDefense, m.SpecialDefenseMultiplier, m.SpecialDefenseBonus)
	out.MaxHP = scale(s.MaxHP, m.MaxHPMultiplier, m.MaxHPBonus)

	ratio := 1.0
	if s.MaxHP > 0 {
		ratio = float64(s.HP) / float64(s.MaxHP)
	}
	out.HP = int(float64(out.MaxHP) * ratio)
	return out
}

func scale(v int, mult float64, bonus int) int {
	out := int(float64(v)*mult) + bonus
	if out < 0 {
		out = 0
	}
	return out
}

// UnmarshalYAML decodes a stat block and re-establishes the HP clamp.
func (s *Stats) UnmarshalYAML(value *yaml.Node) error {
	type raw Stats
	var r raw
	if err := value.Decode(&r); err != nil {
		return err
	}
	*s = Stats(r).Clamped()
	return nil
}
