// Package creature defines the creature aggregate that owns stats,
// traits, modifiers, and survival state, and the species templates
// creatures are stamped from.
package creature

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/menagerie/config"
	"github.com/pthm-cable/menagerie/stats"
	"github.com/pthm-cable/menagerie/traits"
)

// Species is the template a creature is stamped from: level-1 base
// stats, a growth profile, and lineage metadata. A creature references
// exactly one species at a time; evolution replaces the reference
// wholesale.
type Species struct {
	Name           string       `yaml:"name"`
	Description    string       `yaml:"description"`
	BaseStats      stats.Stats  `yaml:"base_stats"`
	Growth         stats.Growth `yaml:"growth"`
	Tags           []string     `yaml:"type_tags"`
	EvolutionStage int          `yaml:"evolution_stage"`
	CanEvolve      bool         `yaml:"can_evolve"`
}

// NewSpecies returns a species with default stats and growth.
func NewSpecies(name string) *Species {
	return &Species{
		Name:      name,
		BaseStats: stats.Default(),
		Growth:    stats.DefaultGrowth(),
		CanEvolve: true,
	}
}

// UnmarshalYAML decodes a species on top of template defaults.
func (sp *Species) UnmarshalYAML(value *yaml.Node) error {
	type raw Species
	r := raw(*NewSpecies(""))
	if err := value.Decode(&r); err != nil {
		return err
	}
	*sp = Species(r)
	return nil
}

// nextID hands out creature IDs. The engine is single-threaded by
// design, so a plain counter is enough.
var nextID uint64

// Creature is the entity aggregate. BaseStats is the undamaged stat
// block at the current level; Current is the live composed block that
// tracks damage. Current is always recomputed fresh from BaseStats,
// never adjusted incrementally.
type Creature struct {
	ID         uint64           `yaml:"id"`
	Name       string           `yaml:"name"`
	Species    *Species         `yaml:"creature_type"`
	Level      int              `yaml:"level"`
	Experience int              `yaml:"experience"`
	BaseStats  stats.Stats      `yaml:"base_stats"`
	Current    stats.Stats      `yaml:"stats"`
	Traits     []traits.Trait   `yaml:"traits"`
	Modifiers  []stats.Modifier `yaml:"active_modifiers"`
	Energy     int              `yaml:"energy"`
	MaxEnergy  int              `yaml:"max_energy"`
	Hunger     float64          `yaml:"hunger"`
	MaxHunger  float64          `yaml:"max_hunger"`
}

// New creates a creature of the given species at the given level,
// undamaged and fully fed. A nil species falls back to a default
// template.
func New(name string, sp *Species, level int) *Creature {
	if sp == nil {
		sp = NewSpecies("Unknown")
	}
	if level < 1 {
		level = 1
	}

	maxHunger := config.Cfg().Hunger.Max
	base := sp.Growth.StatsAtLevel(sp.BaseStats, level)

	nextID++
	return &Creature{
		ID:        nextID,
		Name:      name,
		Species:   sp,
		Level:     level,
		BaseStats: base,
		Current:   base,
		Energy:    100,
		MaxEnergy: 100,
		Hunger:    maxHunger,
		MaxHunger: maxHunger,
	}
}

// NewOffspring creates a level-1 creature whose base stats come from
// inheritance rather than the species template.
func NewOffspring(name string, sp *Species, base stats.Stats) *Creature {
	c := New(name, sp, 1)
	c.BaseStats = base
	c.Current = base
	return c
}

// EffectiveStats composes the live stat block: base stats, then traits,
// then active modifiers, in order. The current damage ratio is carried
// through the composition so buffs never heal or hurt by themselves.
func (c *Creature) EffectiveStats() stats.Stats {
	s := c.BaseStats
	for _, t := range c.Traits {
		s = s.Apply(traitModifier(t))
	}
	for _, m := range c.Modifiers {
		s = s.Apply(m)
	}

	ratio := 1.0
	if c.Current.MaxHP > 0 {
		ratio = float64(c.Current.HP) / float64(c.Current.MaxHP)
	}
	s.HP = int(float64(s.MaxHP) * ratio)
	return s.Clamped()
}

// RefreshStats recomputes Current from scratch. Called after any trait,
// modifier, level, or species change.
func (c *Creature) RefreshStats() {
	c.Current = c.EffectiveStats()
}

// traitModifier maps a trait onto the stats it scales: strength to
// attack, speed to speed, defense to defense.
func traitModifier(t traits.Trait) stats.Modifier {
	m := stats.NewModifier(t.Name)
	m.AttackMultiplier = t.StrengthModifier
	m.SpeedMultiplier = t.SpeedModifier
	m.DefenseMultiplier = t.DefenseModifier
	return m
}

// AddTrait attaches a trait and recomputes stats.
func (c *Creature) AddTrait(t traits.Trait) {
	c.Traits = append(c.Traits, t)
	c.RefreshStats()
}

// HasTrait reports whether a trait with the exact name is present.
func (c *Creature) HasTrait(name string) bool {
	for _, t := range c.Traits {
		if t.Name == name {
			return true
		}
	}
	return false
}

// AddModifier attaches a buff or debuff and recomputes stats.
func (c *Creature) AddModifier(m stats.Modifier) {
	c.Modifiers = append(c.Modifiers, m)
	c.RefreshStats()
}

// RemoveModifier removes the first modifier with the given name.
// Returns false if none matched.
func (c *Creature) RemoveModifier(name string) bool {
	for i, m := range c.Modifiers {
		if m.Name == name {
			c.Modifiers = append(c.Modifiers[:i], c.Modifiers[i+1:]...)
			c.RefreshStats()
			return true
		}
	}
	return false
}

// TickModifiers advances every modifier by one turn and drops the ones
// that expired.
func (c *Creature) TickModifiers() {
	active := c.Modifiers[:0]
	for i := range c.Modifiers {
		c.Modifiers[i].Tick()
		if !c.Modifiers[i].Expired() {
			active = append(active, c.Modifiers[i])
		}
	}
	c.Modifiers = active
	c.RefreshStats()
}

// ExperienceToNext returns the XP threshold for the next level.
func (c *Creature) ExperienceToNext() int {
	return c.Level * config.Cfg().Leveling.XPPerLevel
}

// GainExperience adds XP and levels up when the threshold is crossed.
// Returns true if at least one level was gained.
func (c *Creature) GainExperience(xp int) bool {
	c.Experience += xp
	leveled := false
	for {
		need := c.ExperienceToNext()
		if need <= 0 || c.Experience < need {
			break
		}
		c.LevelUp()
		leveled = true
	}
	return leveled
}

// LevelUp advances one level: base stats are recomputed from the
// species growth profile and the creature is fully healed. Experience
// resets to zero.
func (c *Creature) LevelUp() {
	c.Level++
	c.Experience = 0
	c.BaseStats = c.Species.Growth.StatsAtLevel(c.Species.BaseStats, c.Level)
	c.RefreshStats()
	c.Current.HP = c.Current.MaxHP
}

// Alive reports whether the creature's HP is above zero.
func (c *Creature) Alive() bool {
	return c.Current.Alive()
}

// TakeDamage applies damage to the live stat block.
func (c *Creature) TakeDamage(amount int) int {
	return c.Current.TakeDamage(amount)
}

// Heal restores HP on the live stat block.
func (c *Creature) Heal(amount int) int {
	return c.Current.Heal(amount)
}

// Rest restores energy to full and heals part of max HP.
func (c *Creature) Rest() {
	c.Energy = c.MaxEnergy
	heal := int(float64(c.Current.MaxHP) * config.Cfg().Rest.HealFraction)
	c.Current.Heal(heal)
}

// FullRestore sets HP and energy to their maximums. Used by evolution's
// restoration side effect.
func (c *Creature) FullRestore() {
	c.Current.HP = c.Current.MaxHP
	c.Energy = c.MaxEnergy
}

// UnmarshalYAML decodes a creature on top of aggregate defaults and
// re-establishes stat invariants.
func (c *Creature) UnmarshalYAML(value *yaml.Node) error {
	type raw Creature
	r := raw{
		Level:     1,
		Energy:    100,
		MaxEnergy: 100,
	}
	if err := value.Decode(&r); err != nil {
		return err
	}
	*c = Creature(r)
	if c.Species == nil {
		c.Species = NewSpecies("Unknown")
	}
	c.BaseStats = c.BaseStats.Clamped()
	c.Current = c.Current.Clamped()
	if c.ID > nextID {
		nextID = c.ID
	}
	return nil
}

func (c *Creature) String() string {
	return fmt.Sprintf("%s (%s Lv%d %d/%d HP)", c.Name, c.Species.Name, c.Level, c.Current.HP, c.Current.MaxHP)
}
