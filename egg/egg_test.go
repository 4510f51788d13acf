package egg

import (
	"math"
	"testing"
	"time"
)

func TestFromIncubationProgress(t *testing.T) {
	tests := []struct {
		day  int
		want float64
	}{
		{-3, 0},
		{0, 0},
		{7, 1.0 / 3.0},
		{21, 1},
		{30, 1},
	}
	for _, tt := range tests {
		p := FromIncubation(Incubation{Fertility: Fertile, Day: tt.day})
		if math.Abs(p.IncubationProgress-tt.want) > 1e-9 {
			t.Errorf("day %d progress = %v, want %v", tt.day, p.IncubationProgress, tt.want)
		}
		if p.IncubationProgress < 0 || p.IncubationProgress > 1 {
			t.Errorf("day %d progress %v outside [0,1]", tt.day, p.IncubationProgress)
		}
	}
}

func TestCandling(t *testing.T) {
	tests := []struct {
		name      string
		day       int
		fertility Fertility
		want      CandlingResult
	}{
		{"too early", 3, Fertile, NotCandled},
		{"fertile", 10, Fertile, Developing},
		{"infertile", 10, Infertile, Clear},
		{"unknown", 10, FertilityUnknown, Unclear},
		{"lockdown", 18, Fertile, Lockdown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromIncubation(Incubation{Fertility: tt.fertility, Day: tt.day}).Candling
			if got != tt.want {
				t.Errorf("candling = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHatchProbability(t *testing.T) {
	tests := []struct {
		name      string
		fertility Fertility
		tempC     float64
		want      float64
	}{
		{"fertile optimal", Fertile, 37.5, 0.85},
		{"fertile cold", Fertile, 35.0, 0.85 * 0.6},
		{"fertile hot", Fertile, 39.2, 0.85 * 0.6},
		{"unknown no reading", FertilityUnknown, 0, 0.5},
		{"infertile", Infertile, 37.5, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := FromIncubation(Incubation{Fertility: tt.fertility, Day: 5, TemperatureC: tt.tempC})
			if math.Abs(p.HatchProbability-tt.want) > 1e-9 {
				t.Errorf("hatch probability = %v, want %v", p.HatchProbability, tt.want)
			}
		})
	}
}

func TestTemperatureStatus(t *testing.T) {
	tests := []struct {
		c    float64
		want TemperatureStatus
	}{
		{0, TempUnknown},
		{36.9, TempTooCold},
		{37.0, TempOptimal},
		{38.0, TempOptimal},
		{38.1, TempTooHot},
	}
	for _, tt := range tests {
		if got := classifyTemperature(tt.c); got != tt.want {
			t.Errorf("classifyTemperature(%v) = %v, want %v", tt.c, got, tt.want)
		}
	}
}

func TestPredictedHatch(t *testing.T) {
	start := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

	p := FromIncubation(Incubation{Fertility: Fertile, Day: 4, StartedAt: start})
	if p.PredictedHatch == nil {
		t.Fatal("expected a predicted hatch time")
	}
	if want := start.AddDate(0, 0, 21); !p.PredictedHatch.Equal(want) {
		t.Errorf("predicted hatch = %v, want %v", p.PredictedHatch, want)
	}

	if p := FromIncubation(Incubation{Fertility: Infertile, Day: 4, StartedAt: start}); p.PredictedHatch != nil {
		t.Error("infertile eggs should have no predicted hatch")
	}
	if p := FromIncubation(Incubation{Fertility: Fertile, Day: 4}); p.PredictedHatch != nil {
		t.Error("unknown start should give no predicted hatch")
	}
}

func TestDaysUntilHatch(t *testing.T) {
	p := FromIncubation(Incubation{Fertility: Fertile, Day: 15})
	if got := p.DaysUntilHatch(); got != 6 {
		t.Errorf("DaysUntilHatch = %d, want 6", got)
	}
	if p.ReadyToHatch() {
		t.Error("day 15 egg should not be ready")
	}

	done := FromIncubation(Incubation{Fertility: Fertile, Day: 23})
	if done.DaysUntilHatch() != 0 || !done.ReadyToHatch() {
		t.Errorf("day 23 egg: until=%d ready=%v", done.DaysUntilHatch(), done.ReadyToHatch())
	}
}

func TestParse(t *testing.T) {
	for c := ShellWhite; c <= ShellGreen; c++ {
		got, err := ParseShellColor(c.String())
		if err != nil || got != c {
			t.Errorf("ParseShellColor(%q) = %v, %v", c.String(), got, err)
		}
	}
	if f, err := ParseFertility("infertile"); err != nil || f != Infertile {
		t.Errorf("ParseFertility = %v, %v", f, err)
	}
	if _, err := ParseShellColor("purple"); err == nil {
		t.Error("expected an error for an unknown colour")
	}
}
