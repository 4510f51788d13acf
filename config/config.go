// Package config provides configuration loading and access for the engine and CLI.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/roost/lifecycle"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all configuration parameters.
type Config struct {
	Lifecycle LifecycleConfig `yaml:"lifecycle"`
	Growth    GrowthConfig    `yaml:"growth"`
	Flock     FlockConfig     `yaml:"flock"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// LifecycleConfig holds stage and timeline parameters.
type LifecycleConfig struct {
	GrowthMode      string `yaml:"growth_mode"` // auto_biological, manual_stage, manual_free
	IsMale          bool   `yaml:"is_male"`
	TimelineMaxDays int    `yaml:"timeline_max_days"`
}

// GrowthConfig holds weight curve parameters.
type GrowthConfig struct {
	CurveMaxDays          int `yaml:"curve_max_days"`
	CurveStepDays         int `yaml:"curve_step_days"`
	PredictionHorizonDays int `yaml:"prediction_horizon_days"`
}

// FlockConfig holds the flock simulation parameters.
type FlockConfig struct {
	StepDays int          `yaml:"step_days"`
	Steps    int          `yaml:"steps"`
	Birds    []BirdConfig `yaml:"birds"`
}

// BirdConfig describes one starting bird. A negative age_days adds an egg.
type BirdConfig struct {
	Name         string    `yaml:"name"`
	Male         bool      `yaml:"male"`
	AgeDays      int       `yaml:"age_days"`
	WeightGrams  float64   `yaml:"weight_g"`
	Shell        string    `yaml:"shell,omitempty"`
	Fertility    string    `yaml:"fertility,omitempty"`
	TemperatureC float64   `yaml:"temperature_c,omitempty"`
	Weights      []float64 `yaml:"weights,omitempty"` // one reading per flock step
}

// TelemetryConfig holds output parameters.
type TelemetryConfig struct {
	OutputDir string `yaml:"output_dir"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	GrowthMode lifecycle.GrowthMode
	TotalDays  int // Flock.StepDays * Flock.Steps
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.computeDerived(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// computeDerived validates the loaded config and fills in derived values.
func (c *Config) computeDerived() error {
	mode, err := lifecycle.ParseGrowthMode(c.Lifecycle.GrowthMode)
	if err != nil {
		return fmt.Errorf("lifecycle.growth_mode: %w", err)
	}
	c.Derived.GrowthMode = mode

	if c.Growth.CurveStepDays < 1 {
		c.Growth.CurveStepDays = 1
	}
	if c.Growth.PredictionHorizonDays < 0 {
		return fmt.Errorf("growth.prediction_horizon_days must not be negative, got %d", c.Growth.PredictionHorizonDays)
	}
	if c.Flock.StepDays < 1 {
		return fmt.Errorf("flock.step_days must be positive, got %d", c.Flock.StepDays)
	}
	if c.Flock.Steps < 0 {
		return fmt.Errorf("flock.steps must not be negative, got %d", c.Flock.Steps)
	}
	c.Derived.TotalDays = c.Flock.StepDays * c.Flock.Steps

	for i := range c.Flock.Birds {
		b := &c.Flock.Birds[i]
		if b.Name == "" {
			b.Name = fmt.Sprintf("bird-%d", i+1)
		}
	}
	return nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
