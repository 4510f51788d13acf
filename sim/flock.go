package sim

import (
	"errors"
	"fmt"

	"github.com/pthm-cable/roost/flock"
	"github.com/pthm-cable/roost/inspector"
	"github.com/pthm-cable/roost/telemetry"
)

// buildFlock creates the configured flock and returns the IDs in config order.
func (r *Runner) buildFlock() (*flock.Flock, []uint32, error) {
	f := flock.New(r.cfg.Derived.GrowthMode, r.logger)
	ids, err := flock.FromConfig(r.cfg, f)
	if err != nil {
		return nil, nil, err
	}
	return f, ids, nil
}

func (r *Runner) runFlock() error {
	f, ids, err := r.buildFlock()
	if err != nil {
		return err
	}
	if err := r.writeFlockState(f); err != nil {
		return err
	}

	for step := 0; step < r.cfg.Flock.Steps; step++ {
		r.perf.StartStep()

		r.perf.StartPhase(telemetry.PhaseAdvance)
		events := f.Advance(r.cfg.Flock.StepDays)

		r.perf.StartPhase(telemetry.PhaseWeigh)
		r.recordWeights(f, ids, step)

		r.perf.StartPhase(telemetry.PhaseReport)
		reports := f.Reports()
		stats := telemetry.ComputeWeightStats(f.Day(), reports)

		r.perf.StartPhase(telemetry.PhaseTelemetry)
		rows := make([]telemetry.EventRow, len(events))
		for i, e := range events {
			rows[i] = telemetry.NewEventRow(e)
		}
		if err := r.output.WriteEvents(rows); err != nil {
			return err
		}
		if err := r.writeReports(f.Day(), reports, stats); err != nil {
			return err
		}
		r.perf.EndStep()

		perfStats := r.perf.Stats()
		if r.opts.LogStats {
			r.logger.Info("stats", "stats", stats)
			r.logger.Info("perf", "perf", perfStats)
		}
		if err := r.output.WritePerf(perfStats, f.Day()); err != nil {
			return err
		}
	}

	r.logger.Info("flock done", "days", f.Day(), "birds", f.Len())
	return nil
}

// recordWeights applies the configured weight readings for one step. Readings for
// birds that are gone or still in the shell are skipped.
func (r *Runner) recordWeights(f *flock.Flock, ids []uint32, step int) {
	for i, bc := range r.cfg.Flock.Birds {
		if step >= len(bc.Weights) || bc.Weights[step] <= 0 {
			continue
		}
		err := f.RecordWeight(ids[i], bc.Weights[step])
		switch {
		case err == nil:
		case errors.Is(err, flock.ErrUnknownBird), errors.Is(err, flock.ErrNotHatched):
			r.logger.Debug("weight skipped", "bird", bc.Name, "error", err)
		default:
			r.logger.Warn("weight rejected", "bird", bc.Name, "error", err)
		}
	}
}

func (r *Runner) writeFlockState(f *flock.Flock) error {
	reports := f.Reports()
	return r.writeReports(f.Day(), reports, telemetry.ComputeWeightStats(f.Day(), reports))
}

func (r *Runner) writeReports(day int, reports []flock.Report, stats telemetry.WeightStats) error {
	rows := make([]telemetry.FlockRow, len(reports))
	for i, rep := range reports {
		rows[i] = telemetry.NewFlockRow(day, rep)
	}
	if err := r.output.WriteFlock(rows); err != nil {
		return err
	}
	return r.output.WriteStats(stats)
}

func (r *Runner) runInspect() error {
	f, _, err := r.buildFlock()
	if err != nil {
		return err
	}
	if r.opts.AgeDays > 0 {
		f.Advance(r.opts.AgeDays)
	}

	ins := inspector.NewInspector(r.out)
	for _, rep := range f.Reports() {
		comps, err := f.Inspect(rep.ID)
		if err != nil {
			return err
		}
		comps = append(comps, rep.Summary)
		if rep.Egg == nil {
			comps = append(comps, rep.Prediction, rep.Appearance)
		} else {
			comps = append(comps, *rep.Egg)
		}
		if err := ins.Write(fmt.Sprintf("#%d %s", rep.ID, rep.Name), comps...); err != nil {
			return fmt.Errorf("inspecting bird %d: %w", rep.ID, err)
		}
	}
	return nil
}
