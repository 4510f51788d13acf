package sim

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pthm-cable/roost/config"
	"github.com/pthm-cable/roost/telemetry"
)

func newRunner(t *testing.T, opts Options) (*Runner, *bytes.Buffer) {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	cfg.Flock.Steps = 6

	var out bytes.Buffer
	opts.Out = &out
	opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	r, err := New(cfg, opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { r.Close() })
	return r, &out
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return strings.Split(strings.TrimSpace(string(data)), "\n")
}

func TestUnknownMode(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := New(cfg, Options{Mode: "dance"}); err == nil {
		t.Error("expected an error for an unknown mode")
	}
}

func TestFileModes(t *testing.T) {
	tests := []struct {
		mode  string
		file  string
		lines int
	}{
		{ModeTimeline, telemetry.TimelineFile, 19},
		{ModeCurve, telemetry.CurveFile, 2*105 + 1},
	}
	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			dir := t.TempDir()
			r, _ := newRunner(t, Options{Mode: tt.mode, OutputDir: dir})
			if err := r.Run(); err != nil {
				t.Fatal(err)
			}
			if err := r.Close(); err != nil {
				t.Fatal(err)
			}
			if got := len(readLines(t, filepath.Join(dir, tt.file))); got != tt.lines {
				t.Errorf("%s has %d lines, want %d", tt.file, got, tt.lines)
			}
			if _, err := os.Stat(filepath.Join(dir, telemetry.ConfigFile)); err != nil {
				t.Errorf("config snapshot missing: %v", err)
			}
		})
	}
}

func TestTransitionsMode(t *testing.T) {
	dir := t.TempDir()
	r, _ := newRunner(t, Options{Mode: ModeTransitions, OutputDir: dir, FromDays: 100, ToDays: 300})
	if err := r.Run(); err != nil {
		t.Fatal(err)
	}
	r.Close()

	lines := readLines(t, filepath.Join(dir, telemetry.TransitionsFile))
	if len(lines) < 2 || !strings.Contains(strings.Join(lines, "\n"), "feather_hardening") {
		t.Errorf("transitions.csv = %v", lines)
	}
}

func TestTransitionSpans(t *testing.T) {
	r, _ := newRunner(t, Options{Mode: ModeTransitions})
	spans := r.transitionSpans()
	if len(spans) != 17 || spans[0] != [2]int{0, 3} || spans[16] != [2]int{548, 730} {
		t.Errorf("spans = %v", spans)
	}

	r, _ = newRunner(t, Options{Mode: ModeTransitions, FromDays: 100})
	if spans := r.transitionSpans(); len(spans) != 1 || spans[0] != [2]int{100, 730} {
		t.Errorf("start only: spans = %v, want [[100 730]]", spans)
	}

	r, _ = newRunner(t, Options{Mode: ModeTransitions, FromDays: 100, ToDays: 300})
	if spans := r.transitionSpans(); len(spans) != 1 || spans[0] != [2]int{100, 300} {
		t.Errorf("explicit span: spans = %v", spans)
	}
}

func TestPreviewMode(t *testing.T) {
	r, out := newRunner(t, Options{Mode: ModePreview, AgeDays: 300})
	if err := r.Run(); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"Adult, 300 days", "-- Appearance", "-- MorphSummary", "Comb"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("preview missing %q:\n%s", want, out)
		}
	}
}

func TestEggMode(t *testing.T) {
	r, out := newRunner(t, Options{Mode: ModeEgg, AgeDays: 10, EggShell: "blue", EggFertility: "fertile", EggTempC: 37.5})
	if err := r.Run(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "blue egg day 10/21") {
		t.Errorf("egg output = %q", out)
	}

	r, _ = newRunner(t, Options{Mode: ModeEgg, EggShell: "plaid"})
	if err := r.Run(); err == nil {
		t.Error("expected an error for an unknown shell")
	}
}

func TestFlockMode(t *testing.T) {
	dir := t.TempDir()
	r, _ := newRunner(t, Options{Mode: ModeFlock, OutputDir: dir})
	r.cfg.Flock.Birds[0].Weights = []float64{150, 210}
	if err := r.Run(); err != nil {
		t.Fatal(err)
	}
	if err := r.Close(); err != nil {
		t.Fatal(err)
	}

	birds := len(r.cfg.Flock.Birds)
	flockLines := readLines(t, filepath.Join(dir, telemetry.FlockFile))
	if len(flockLines) < birds+1 {
		t.Errorf("flock.csv has %d lines, want at least %d", len(flockLines), birds+1)
	}
	// One stats row for the start plus one per step.
	if got := len(readLines(t, filepath.Join(dir, telemetry.StatsFile))); got != r.cfg.Flock.Steps+2 {
		t.Errorf("stats.csv has %d lines, want %d", got, r.cfg.Flock.Steps+2)
	}
	if got := len(readLines(t, filepath.Join(dir, telemetry.PerfFile))); got != r.cfg.Flock.Steps+1 {
		t.Errorf("perf.csv has %d lines, want %d", got, r.cfg.Flock.Steps+1)
	}
	events := strings.Join(readLines(t, filepath.Join(dir, telemetry.EventsFile)), "\n")
	if !strings.Contains(events, "hatched") || !strings.Contains(events, "egg_failed") {
		t.Errorf("events.csv = %s", events)
	}
}

func TestInspectMode(t *testing.T) {
	r, out := newRunner(t, Options{Mode: ModeInspect, AgeDays: 14})
	if err := r.Run(); err != nil {
		t.Fatal(err)
	}
	for _, bc := range r.cfg.Flock.Birds {
		if bc.Name == "Dud" {
			continue // infertile, removed after 14 days
		}
		if !strings.Contains(out.String(), bc.Name) {
			t.Errorf("inspect output missing %s", bc.Name)
		}
	}
	if !strings.Contains(out.String(), "-- Weight") {
		t.Errorf("inspect output:\n%s", out)
	}
}
