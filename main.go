package main

import (
	"flag"
	"log/slog"
	"os"
	"strings"

	"github.com/pthm-cable/roost/config"
	"github.com/pthm-cable/roost/sim"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	mode := flag.String("mode", sim.ModeTimeline, "Mode: "+strings.Join(sim.Modes, ", "))
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot (empty = use config)")
	logStats := flag.Bool("log-stats", false, "Log per-step flock stats via slog")
	debug := flag.Bool("debug", false, "Enable debug logging")
	age := flag.Int("age", 0, "Age in days for preview, incubation day for egg, days to advance for inspect")
	from := flag.Int("from", 0, "Transitions: start age in days")
	to := flag.Int("to", 0, "Transitions: end age in days (0 = last timeline age, or every timeline step without -from)")
	male := flag.Bool("male", true, "Sex for timeline, transitions and preview")
	shell := flag.String("shell", "", "Egg: shell colour")
	fertility := flag.String("fertility", "", "Egg: fertility (unknown, fertile, infertile)")
	temp := flag.Float64("temp", 0, "Egg: incubator temperature in °C (0 = unknown)")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	// CLI sex overrides config only when given
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "male" {
			cfg.Lifecycle.IsMale = *male
		}
	})

	r, err := sim.New(cfg, sim.Options{
		Mode:         *mode,
		OutputDir:    *outputDir,
		Out:          os.Stderr,
		Logger:       logger,
		LogStats:     *logStats,
		AgeDays:      *age,
		FromDays:     *from,
		ToDays:       *to,
		EggShell:     *shell,
		EggFertility: *fertility,
		EggTempC:     *temp,
	})
	if err != nil {
		slog.Error("failed to start", "error", err)
		os.Exit(1)
	}

	runErr := r.Run()
	if err := r.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
	if runErr != nil {
		slog.Error("run failed", "mode", *mode, "error", runErr)
		os.Exit(1)
	}
}
