package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/roost/config"
	"github.com/pthm-cable/roost/growth"
)

// Output file names.
const (
	TimelineFile    = "timeline.csv"
	CurveFile       = "curve.csv"
	TransitionsFile = "transitions.csv"
	FlockFile       = "flock.csv"
	EventsFile      = "events.csv"
	StatsFile       = "stats.csv"
	PerfFile        = "perf.csv"
	ConfigFile      = "config.yaml"
)

// csvFile is an output file that writes its header once.
type csvFile struct {
	f             *os.File
	headerWritten bool
}

// OutputManager handles structured output with CSV logging. Files are created on
// first write. All methods are no-ops on a nil manager.
type OutputManager struct {
	dir   string
	files map[string]*csvFile
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
	return &OutputManager{dir: dir, files: make(map[string]*csvFile)}, nil
}

// writeRows appends records to the named CSV file, with headers on the first write.
func writeRows[T any](om *OutputManager, name string, records []T) error {
	if om == nil || len(records) == 0 {
		return nil
	}

	cf, ok := om.files[name]
	if !ok {
		f, err := os.Create(filepath.Join(om.dir, name))
		if err != nil {
			return fmt.Errorf("creating %s: %w", name, err)
		}
		cf = &csvFile{f: f}
		om.files[name] = cf
	}

	if !cf.headerWritten {
		if err := gocsv.Marshal(records, cf.f); err != nil {
			return fmt.Errorf("writing %s: %w", name, err)
		}
		cf.headerWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, cf.f); err != nil {
			return fmt.Errorf("writing %s: %w", name, err)
		}
	}
	return nil
}

// WriteConfig saves the current configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, ConfigFile))
}

// WriteTimeline writes growth timeline rows to timeline.csv.
func (om *OutputManager) WriteTimeline(rows []TimelineRow) error {
	return writeRows(om, TimelineFile, rows)
}

// WriteCurve writes weight curve points to curve.csv.
func (om *OutputManager) WriteCurve(points []growth.CurvePoint) error {
	return writeRows(om, CurveFile, points)
}

// WriteTransitions writes transition rows to transitions.csv.
func (om *OutputManager) WriteTransitions(rows []TransitionRow) error {
	return writeRows(om, TransitionsFile, rows)
}

// WriteFlock writes per-bird rows to flock.csv.
func (om *OutputManager) WriteFlock(rows []FlockRow) error {
	return writeRows(om, FlockFile, rows)
}

// WriteEvents writes flock events to events.csv.
func (om *OutputManager) WriteEvents(rows []EventRow) error {
	return writeRows(om, EventsFile, rows)
}

// WriteStats writes a flock weight summary to stats.csv.
func (om *OutputManager) WriteStats(stats WeightStats) error {
	return writeRows(om, StatsFile, []WeightStats{stats})
}

// WritePerf writes a performance stats record to perf.csv.
func (om *OutputManager) WritePerf(stats PerfStats, day int) error {
	return writeRows(om, PerfFile, []PerfStatsCSV{stats.ToCSV(day)})
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
	for _, cf := range om.files {
		if err := cf.f.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
