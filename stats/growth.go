package stats

import "gopkg.in/yaml.v3"

// Curve selects how quickly a species' stats scale per level.
type Curve string

const (
	CurveSlow       Curve = "slow"
	CurveMediumSlow Curve = "medium_slow"
	CurveMediumFast Curve = "medium_fast"
	CurveFast       Curve = "fast"
)

// Multiplier returns the growth rate scale for the curve.
// Unknown curves fall back to 1.0.
func (c Curve) Multiplier() float64 {
	switch c {
	case CurveSlow:
		return 0.8
	case CurveMediumSlow:
		return 0.9
	case CurveMediumFast:
		return 1.0
	case CurveFast:
		return 1.2
	default:
		return 1.0
	}
}

// Growth defines per-level stat gain rates for a species.
// Rates are scaled by the curve multiplier and applied linearly
// from the level-1 base.
type Growth struct {
	HP             float64 `yaml:"hp_growth"`
	Attack         float64 `yaml:"attack_growth"`
	Defense        float64 `yaml:"defense_growth"`
	Speed          float64 `yaml:"speed_growth"`
	SpecialAttack  float64 `yaml:"special_attack_growth"`
	SpecialDefense float64 `yaml:"special_defense_growth"`
	Curve          Curve   `yaml:"growth_curve"`
}

// DefaultGrowth returns the baseline growth profile.
func DefaultGrowth() Growth {
	return Growth{
		HP:             10.0,
		Attack:         2.0,
		Defense:        2.0,
		Speed:          1.5,
		SpecialAttack:  2.0,
		SpecialDefense: 2.0,
		Curve:          CurveMediumFast,
	}
}

// StatsAtLevel computes the stat block a species reaches at the given
// level, derived directly from its level-1 base so repeated calls are
// idempotent. The result is a full-heal snapshot: HP equals MaxHP.
func (g Growth) StatsAtLevel(base Stats, level int) Stats {
	mult := g.Curve.Multiplier()
	steps := float64(level - 1)

	hp := grow(base.MaxHP, g.HP, steps, mult)
	return Stats{
		HP:             hp,
		MaxHP:          hp,
		Attack:         grow(base.Attack, g.Attack, steps, mult),
		Defense:        grow(base.Defense, g.Defense, steps, mult),
		Speed:          grow(base.Speed, g.Speed, steps, mult),
		SpecialAttack:  grow(base.SpecialAttack, g.SpecialAttack, steps, mult),
		SpecialDefense: grow(base.SpecialDefense, g.SpecialDefense, steps, mult),
	}
}

func grow(base int, rate, steps, mult float64) int {
	return int(float64(base) + rate*steps*mult)
}

// UnmarshalYAML decodes a growth profile, defaulting the curve to
// medium_fast when omitted.
func (g *Growth) UnmarshalYAML(value *yaml.Node) error {
	type raw Growth
	var r raw
	r.Curve = CurveMediumFast
	if err := value.Decode(&r); err != nil {
		return err
	}
	*g = Growth(r)
	return nil
}
