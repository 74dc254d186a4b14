// Package telemetry aggregates per-generation breeding events into
// windowed statistics and writes them to CSV for offline analysis.
package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a span of generations.
type WindowStats struct {
	WindowStartGen int `csv:"-"`
	WindowEndGen   int `csv:"generation"`

	// Population size at window end
	Population int `csv:"population"`

	// Events during window
	Births     int `csv:"births"`
	Deaths     int `csv:"deaths"`
	LevelUps   int `csv:"level_ups"`
	Evolutions int `csv:"evolutions"`
	Mutations  int `csv:"mutations"`

	// Level distribution (sampled at window end)
	LevelMean float64 `csv:"level_mean"`
	LevelStd  float64 `csv:"level_std"`
	LevelP10  float64 `csv:"level_p10"`
	LevelP50  float64 `csv:"level_p50"`
	LevelP90  float64 `csv:"level_p90"`

	// Max HP distribution (sampled at window end)
	MaxHPMean float64 `csv:"max_hp_mean"`
	MaxHPStd  float64 `csv:"max_hp_std"`
	MaxHPP90  float64 `csv:"max_hp_p90"`

	// Trait spread
	TraitsMean   float64 `csv:"traits_mean"`
	MutatedCount int     `csv:"mutated_traits"`
}

// Distribution summarizes a sample: mean, standard deviation, and the
// 10th, 50th and 90th percentiles. Zero for an empty sample.
func Distribution(values []float64) (mean, std, p10, p50, p90 float64) {
	if len(values) == 0 {
		return 0, 0, 0, 0, 0
	}

	mean = stat.Mean(values, nil)
	if len(values) > 1 {
		std = stat.StdDev(values, nil)
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	p10 = stat.Quantile(0.10, stat.Empirical, sorted, nil)
	p50 = stat.Quantile(0.50, stat.Empirical, sorted, nil)
	p90 = stat.Quantile(0.90, stat.Empirical, sorted, nil)

	return mean, std, p10, p50, p90
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", s.WindowStartGen),
		slog.Int("generation", s.WindowEndGen),
		slog.Int("population", s.Population),
		slog.Int("births", s.Births),
		slog.Int("deaths", s.Deaths),
		slog.Int("level_ups", s.LevelUps),
		slog.Int("evolutions", s.Evolutions),
		slog.Int("mutations", s.Mutations),
		slog.Float64("level_mean", s.LevelMean),
		slog.Float64("level_std", s.LevelStd),
		slog.Float64("level_p10", s.LevelP10),
		slog.Float64("level_p50", s.LevelP50),
		slog.Float64("level_p90", s.LevelP90),
		slog.Float64("max_hp_mean", s.MaxHPMean),
		slog.Float64("max_hp_std", s.MaxHPStd),
		slog.Float64("max_hp_p90", s.MaxHPP90),
		slog.Float64("traits_mean", s.TraitsMean),
		slog.Int("mutated_traits", s.MutatedCount),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats", "window", s)
}
