package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/menagerie/config"
	"github.com/pthm-cable/menagerie/creature"
)

// RosterRow is the CSV projection of a creature for the final
// population dump.
type RosterRow struct {
	ID         uint64  `csv:"id"`
	Name       string  `csv:"name"`
	Species    string  `csv:"species"`
	Level      int     `csv:"level"`
	Experience int     `csv:"experience"`
	MaxHP      int     `csv:"max_hp"`
	Attack     int     `csv:"attack"`
	Defense    int     `csv:"defense"`
	Speed      int     `csv:"speed"`
	Traits     int     `csv:"traits"`
	Hunger     float64 `csv:"hunger"`
}

// NewRosterRow projects a creature onto its CSV row.
func NewRosterRow(c *creature.Creature) RosterRow {
	species := "unknown"
	if c.Species != nil {
		species = c.Species.Name
	}
	eff := c.EffectiveStats()
	return RosterRow{
		ID:         c.ID,
		Name:       c.Name,
		Species:    species,
		Level:      c.Level,
		Experience: c.Experience,
		MaxHP:      eff.MaxHP,
		Attack:     eff.Attack,
		Defense:    eff.Defense,
		Speed:      eff.Speed,
		Traits:     len(c.Traits),
		Hunger:     c.Hunger,
	}
}

// OutputManager handles structured experiment output with CSV logging.
type OutputManager struct {
	dir           string
	telemetryFile *os.File
	rosterFile    *os.File

	telemetryHeaderWritten bool
	rosterHeaderWritten    bool
}

// NewOutputManager creates a new output manager and initializes the
// output directory. Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{dir: dir}

	f, err := os.Create(filepath.Join(dir, "telemetry.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating telemetry.csv: %w", err)
	}
	om.telemetryFile = f

	f, err = os.Create(filepath.Join(dir, "roster.csv"))
	if err != nil {
		om.telemetryFile.Close()
		return nil, fmt.Errorf("creating roster.csv: %w", err)
	}
	om.rosterFile = f

	return om, nil
}

// WriteConfig saves the current configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteTelemetry writes a window stats record to telemetry.csv.
func (om *OutputManager) WriteTelemetry(stats WindowStats) error {
	if om == nil {
		return nil
	}

	records := []WindowStats{stats}

	if !om.telemetryHeaderWritten {
		// First write includes headers
		if err := gocsv.Marshal(records, om.telemetryFile); err != nil {
			return fmt.Errorf("writing telemetry: %w", err)
		}
		om.telemetryHeaderWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, om.telemetryFile); err != nil {
			return fmt.Errorf("writing telemetry: %w", err)
		}
	}

	return nil
}

// WriteRoster appends creature rows to roster.csv.
func (om *OutputManager) WriteRoster(population []*creature.Creature) error {
	if om == nil {
		return nil
	}

	records := make([]RosterRow, len(population))
	for i, c := range population {
		records[i] = NewRosterRow(c)
	}

	if !om.rosterHeaderWritten {
		if err := gocsv.Marshal(records, om.rosterFile); err != nil {
			return fmt.Errorf("writing roster: %w", err)
		}
		om.rosterHeaderWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, om.rosterFile); err != nil {
			return fmt.Errorf("writing roster: %w", err)
		}
	}

	return nil
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close flushes and closes all output files.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}

	var firstErr error

	if om.telemetryFile != nil {
		if err := om.telemetryFile.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	if om.rosterFile != nil {
		if err := om.rosterFile.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}
