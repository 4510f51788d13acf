package telemetry

import (
	"testing"
	"time"
)

func TestPerfCollector_BasicTiming(t *testing.T) {
	pc := NewPerfCollector(10)

	for i := 0; i < 5; i++ {
		pc.StartStep()
		pc.StartPhase(PhaseAdvance)
		time.Sleep(100 * time.Microsecond)
		pc.StartPhase(PhaseReport)
		time.Sleep(200 * time.Microsecond)
		pc.EndStep()
	}

	stats := pc.Stats()
	if stats.AvgStepDuration <= 0 {
		t.Error("expected positive average step duration")
	}
	if _, ok := stats.PhaseAvg[PhaseAdvance]; !ok {
		t.Error("expected advance phase to be tracked")
	}
	if _, ok := stats.PhaseAvg[PhaseReport]; !ok {
		t.Error("expected report phase to be tracked")
	}
	if stats.MinStepDuration > stats.MaxStepDuration {
		t.Errorf("min %v > max %v", stats.MinStepDuration, stats.MaxStepDuration)
	}
}

func TestPerfCollector_RollingWindow(t *testing.T) {
	pc := NewPerfCollector(5)
	for i := 0; i < 10; i++ {
		pc.StartStep()
		pc.StartPhase(PhaseAdvance)
		pc.EndStep()
	}

	if pc.sampleCount != 5 {
		t.Errorf("sampleCount = %d, want 5", pc.sampleCount)
	}
	if stats := pc.Stats(); stats.StepsPerSecond < 0 {
		t.Error("steps per second should not be negative")
	}
}

func TestPerfCollector_PhasePercentages(t *testing.T) {
	pc := NewPerfCollector(10)
	for i := 0; i < 3; i++ {
		pc.StartStep()
		pc.StartPhase(PhaseWeigh)
		time.Sleep(time.Millisecond)
		pc.StartPhase(PhaseTelemetry)
		time.Sleep(5 * time.Millisecond)
		pc.EndStep()
	}

	stats := pc.Stats()
	if stats.PhasePct[PhaseTelemetry] <= stats.PhasePct[PhaseWeigh] {
		t.Errorf("expected telemetry (%v%%) > weigh (%v%%)", stats.PhasePct[PhaseTelemetry], stats.PhasePct[PhaseWeigh])
	}

	row := stats.ToCSV(14)
	if row.Day != 14 || row.TelemetryPct != stats.PhasePct[PhaseTelemetry] {
		t.Errorf("csv row = %+v", row)
	}
}

func TestPerfCollector_EmptyStats(t *testing.T) {
	stats := NewPerfCollector(0).Stats()
	if stats.AvgStepDuration != 0 {
		t.Error("expected zero avg step duration for empty collector")
	}
	if stats.PhaseAvg == nil || stats.PhasePct == nil {
		t.Error("expected non-nil phase maps")
	}
}
