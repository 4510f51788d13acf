package sim

import (
	"fmt"
	"slices"

	"github.com/pthm-cable/roost/appearance"
	"github.com/pthm-cable/roost/egg"
	"github.com/pthm-cable/roost/growth"
	"github.com/pthm-cable/roost/inspector"
	"github.com/pthm-cable/roost/lifecycle"
	"github.com/pthm-cable/roost/morph"
	"github.com/pthm-cable/roost/telemetry"
)

func (r *Runner) runTimeline() error {
	lc := r.cfg.Lifecycle
	var rows []telemetry.TimelineRow
	for snap := range morph.GrowthTimeline(appearance.Default(), lc.IsMale, lc.TimelineMaxDays) {
		r.logger.Info("snapshot",
			"age_days", snap.AgeDays,
			"stage", snap.Stage.String(),
			"maturity_pct", snap.Summary.MaturityPercent,
			"texture", snap.Summary.FeatherTexture,
		)
		rows = append(rows, telemetry.NewTimelineRow(snap))
	}
	if err := r.output.WriteTimeline(rows); err != nil {
		return err
	}
	r.logger.Info("timeline done", "snapshots", len(rows))
	return nil
}

func (r *Runner) runCurve() error {
	g := r.cfg.Growth
	var points []growth.CurvePoint
	for _, male := range []bool{true, false} {
		points = slices.AppendSeq(points, growth.Curve(male, g.CurveMaxDays, g.CurveStepDays))
	}
	if err := r.output.WriteCurve(points); err != nil {
		return err
	}
	r.logger.Info("curve done",
		"points", len(points),
		"rooster_end_g", growth.IdealWeight(g.CurveMaxDays, true),
		"hen_end_g", growth.IdealWeight(g.CurveMaxDays, false),
	)
	return nil
}

// transitionSpans returns the age pairs to diff: the requested span, or every
// consecutive pair of timeline ages. A start without an end runs to the last
// timeline age.
func (r *Runner) transitionSpans() [][2]int {
	ages := morph.TimelineAges
	switch {
	case r.opts.ToDays > 0:
		return [][2]int{{r.opts.FromDays, r.opts.ToDays}}
	case r.opts.FromDays > 0:
		return [][2]int{{r.opts.FromDays, ages[len(ages)-1]}}
	}
	spans := make([][2]int, 0, len(ages)-1)
	for i := 1; i < len(ages); i++ {
		spans = append(spans, [2]int{ages[i-1], ages[i]})
	}
	return spans
}

func (r *Runner) runTransitions() error {
	male := r.cfg.Lifecycle.IsMale
	var rows []telemetry.TransitionRow
	for _, span := range r.transitionSpans() {
		changes := morph.TransitionChanges(span[0], span[1], male)
		for _, c := range changes {
			r.logger.Info("transition", "from_days", span[0], "to_days", span[1], "kind", c.Kind.String(), "change", c.Description)
		}
		rows = append(rows, telemetry.NewTransitionRows(span[0], span[1], changes)...)
	}
	return r.output.WriteTransitions(rows)
}

func (r *Runner) runPreview() error {
	male := r.cfg.Lifecycle.IsMale
	age := max(r.opts.AgeDays, 0)
	look := morph.PreviewAtAge(appearance.Default(), age, male)
	p := lifecycle.FromDays(age, male, lifecycle.AutoBiological)
	sum := morph.Summarize(p, morph.GetConstraints(p))

	title := fmt.Sprintf("%s, %d days (%d%% mature): %s", sum.StageLabel, age, sum.MaturityPercent, sum.FeatherTexture)
	if err := inspector.NewInspector(r.out).Write(title, sum, look); err != nil {
		return fmt.Errorf("writing preview: %w", err)
	}
	return nil
}

func (r *Runner) runEgg() error {
	in := egg.Incubation{Day: r.opts.AgeDays, TemperatureC: r.opts.EggTempC}
	if r.opts.EggShell != "" {
		shell, err := egg.ParseShellColor(r.opts.EggShell)
		if err != nil {
			return err
		}
		in.Shell = shell
	}
	if r.opts.EggFertility != "" {
		fert, err := egg.ParseFertility(r.opts.EggFertility)
		if err != nil {
			return err
		}
		in.Fertility = fert
	}

	p := egg.FromIncubation(in)
	r.logger.Info("egg",
		"day", p.IncubationDays,
		"candling", p.Candling.String(),
		"temperature", p.Temperature.String(),
		"hatch_probability", p.HatchProbability,
		"days_until_hatch", p.DaysUntilHatch(),
	)
	_, err := fmt.Fprintln(r.out, p.String())
	return err
}
