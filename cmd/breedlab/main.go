// Package main runs headless breeding experiments: a seeded population
// is bred, leveled, and evolved for a number of generations while
// telemetry is logged and written to CSV.
package main

import (
	"flag"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/pthm-cable/menagerie/config"
	"github.com/pthm-cable/menagerie/telemetry"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	generations := flag.Int("generations", 100, "Number of generations to run")
	population := flag.Int("population", 20, "Population size to maintain")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")

	flag.Parse()

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	out, err := telemetry.NewOutputManager(*outputDir)
	if err != nil {
		slog.Error("failed to create output manager", "error", err)
		os.Exit(1)
	}
	defer out.Close()

	if err := out.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config snapshot", "error", err)
		os.Exit(1)
	}

	exp := NewExperiment(rand.New(rand.NewSource(rngSeed)), *population, out)

	slog.Info("starting breeding experiment",
		"seed", rngSeed,
		"generations", *generations,
		"population", *population,
		"output_dir", out.Dir(),
	)

	if err := exp.Run(*generations); err != nil {
		slog.Error("experiment failed", "error", err)
		os.Exit(1)
	}
}
