// Package sim runs the CLI modes: engine tables, previews and the flock simulation.
package sim

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"

	"github.com/pthm-cable/roost/config"
	"github.com/pthm-cable/roost/telemetry"
)

// Modes accepted by Run.
const (
	ModeTimeline    = "timeline"
	ModeCurve       = "curve"
	ModeTransitions = "transitions"
	ModePreview     = "preview"
	ModeEgg         = "egg"
	ModeFlock       = "flock"
	ModeInspect     = "inspect"
)

// Modes lists every mode in help order.
var Modes = []string{ModeTimeline, ModeCurve, ModeTransitions, ModePreview, ModeEgg, ModeFlock, ModeInspect}

// Options configures a Runner.
type Options struct {
	Mode      string
	OutputDir string
	Out       io.Writer    // human-readable output; nil means stdout
	Logger    *slog.Logger // nil means slog.Default()
	LogStats  bool         // log per-step flock stats and perf

	AgeDays      int     // preview age; egg incubation day
	FromDays     int     // transitions start
	ToDays       int     // transitions end; 0 with no start means every timeline step
	EggShell     string  // egg mode
	EggFertility string  // egg mode
	EggTempC     float64 // egg mode
}

// Runner executes one mode against a loaded config.
type Runner struct {
	cfg    *config.Config
	opts   Options
	logger *slog.Logger
	out    io.Writer
	output *telemetry.OutputManager
	perf   *telemetry.PerfCollector
}

// New creates a runner. The output directory, when set, receives CSV files and a
// copy of the config.
func New(cfg *config.Config, opts Options) (*Runner, error) {
	if !slices.Contains(Modes, opts.Mode) {
		return nil, fmt.Errorf("unknown mode %q", opts.Mode)
	}

	r := &Runner{
		cfg:    cfg,
		opts:   opts,
		logger: opts.Logger,
		out:    opts.Out,
		perf:   telemetry.NewPerfCollector(cfg.Flock.Steps),
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}
	if r.out == nil {
		r.out = os.Stdout
	}

	dir := opts.OutputDir
	if dir == "" {
		dir = cfg.Telemetry.OutputDir
	}
	om, err := telemetry.NewOutputManager(dir)
	if err != nil {
		return nil, err
	}
	if err := om.WriteConfig(cfg); err != nil {
		om.Close()
		return nil, fmt.Errorf("writing config snapshot: %w", err)
	}
	r.output = om
	return r, nil
}

// Run executes the configured mode.
func (r *Runner) Run() error {
	r.logger.Info("starting", "mode", r.opts.Mode, "output_dir", r.output.Dir())
	switch r.opts.Mode {
	case ModeTimeline:
		return r.runTimeline()
	case ModeCurve:
		return r.runCurve()
	case ModeTransitions:
		return r.runTransitions()
	case ModePreview:
		return r.runPreview()
	case ModeEgg:
		return r.runEgg()
	case ModeFlock:
		return r.runFlock()
	default:
		return r.runInspect()
	}
}

// Close flushes and closes output files.
func (r *Runner) Close() error {
	return r.output.Close()
}
