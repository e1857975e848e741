package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"github.com/pthm-cable/grapnel/config"
)

// OutputManager handles structured session output with CSV logging.
type OutputManager struct {
	dir      string
	runsFile *os.File

	// Track if headers have been written
	runsHeaderWritten bool
}

// NewOutputManager creates a new output manager and initializes the output directory.
// Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{dir: dir}

	runsPath := filepath.Join(dir, "runs.csv")
	f, err := os.Create(runsPath)
	if err != nil {
		return nil, fmt.Errorf("creating runs.csv: %w", err)
	}
	om.runsFile = f

	return om, nil
}

// WriteConfig saves the current configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	configPath := filepath.Join(om.dir, "config.yaml")
	return cfg.WriteYAML(configPath)
}

// WriteRun appends a run record to runs.csv.
func (om *OutputManager) WriteRun(rec RunRecord) error {
	if om == nil {
		return nil
	}

	records := []RunRecord{rec}

	if !om.runsHeaderWritten {
		// First write includes headers
		if err := gocsv.Marshal(records, om.runsFile); err != nil {
			return fmt.Errorf("writing run: %w", err)
		}
		om.runsHeaderWritten = true
	} else {
		// Subsequent writes skip headers
		if err := gocsv.MarshalWithoutHeaders(records, om.runsFile); err != nil {
			return fmt.Errorf("writing run: %w", err)
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
	if om.runsFile != nil {
		return om.runsFile.Close()
	}
	return nil
}
