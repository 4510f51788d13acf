package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pthm-cable/roost/lifecycle"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Derived.GrowthMode != lifecycle.AutoBiological {
		t.Errorf("growth mode = %v", cfg.Derived.GrowthMode)
	}
	if cfg.Growth.CurveStepDays != 7 || cfg.Growth.PredictionHorizonDays != 28 {
		t.Errorf("growth = %+v", cfg.Growth)
	}
	if cfg.Derived.TotalDays != cfg.Flock.StepDays*cfg.Flock.Steps {
		t.Errorf("total days = %d", cfg.Derived.TotalDays)
	}
	if len(cfg.Flock.Birds) == 0 {
		t.Error("defaults should include a starter flock")
	}
}

func TestLoadMergesUserFile(t *testing.T) {
	path := writeFile(t, `
lifecycle:
  growth_mode: manual_stage
flock:
  birds:
    - age_days: 3
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Derived.GrowthMode != lifecycle.ManualStage {
		t.Errorf("growth mode = %v, want manual_stage", cfg.Derived.GrowthMode)
	}
	if cfg.Lifecycle.TimelineMaxDays != 730 {
		t.Errorf("unset fields should keep defaults, got %d", cfg.Lifecycle.TimelineMaxDays)
	}
	if len(cfg.Flock.Birds) != 1 || cfg.Flock.Birds[0].Name != "bird-1" {
		t.Errorf("birds = %+v", cfg.Flock.Birds)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad mode", "lifecycle:\n  growth_mode: sideways\n"},
		{"bad step", "flock:\n  step_days: 0\n"},
		{"negative horizon", "growth:\n  prediction_horizon_days: -1\n"},
		{"bad yaml", "lifecycle: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeFile(t, tt.body)); err == nil {
				t.Error("expected an error")
			}
		})
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestCurveStepClamped(t *testing.T) {
	cfg, err := Load(writeFile(t, "growth:\n  curve_step_days: 0\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Growth.CurveStepDays != 1 {
		t.Errorf("curve step = %d, want 1", cfg.Growth.CurveStepDays)
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	cfg.Lifecycle.GrowthMode = "manual_free"
	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load written config: %v", err)
	}
	if loaded.Derived.GrowthMode != lifecycle.ManualFree {
		t.Errorf("growth mode = %v", loaded.Derived.GrowthMode)
	}
	if len(loaded.Flock.Birds) != len(cfg.Flock.Birds) {
		t.Errorf("birds = %d, want %d", len(loaded.Flock.Birds), len(cfg.Flock.Birds))
	}
}

func TestInitAndCfg(t *testing.T) {
	if err := Init(""); err != nil {
		t.Fatal(err)
	}
	if Cfg().Flock.StepDays < 1 {
		t.Error("Cfg() should return the loaded config")
	}
}
