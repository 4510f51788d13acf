package lifecycle

import (
	"math"
	"testing"
)

func TestFromDaysMaturity(t *testing.T) {
	for _, days := range []int{0, 1, 45, 195, 389, 390} {
		p := FromDays(days, true, AutoBiological)
		want := float64(days) / FullMaturityDays
		if math.Abs(p.MaturityIndex-want) > 1e-12 {
			t.Errorf("FromDays(%d).MaturityIndex = %v, want %v", days, p.MaturityIndex, want)
		}
	}

	if p := FromDays(390, false, ManualFree); p.MaturityIndex != 1.0 {
		t.Errorf("maturity at 390 = %v, want exactly 1", p.MaturityIndex)
	}
	if p := FromDays(800, false, ManualFree); p.MaturityIndex <= 1.0 {
		t.Errorf("maturity at 800 = %v, want > 1", p.MaturityIndex)
	}
	if p := FromDays(-5, true, AutoBiological); p.MaturityIndex != 0 {
		t.Errorf("negative age maturity = %v, want 0", p.MaturityIndex)
	}
}

func TestFromDaysFields(t *testing.T) {
	p := FromDays(150, false, ManualStage)
	if p.AgeInDays != 150 || p.Stage != SubAdult || p.IsMale || p.GrowthMode != ManualStage {
		t.Errorf("unexpected profile %+v", p)
	}
}

func TestFromWeeks(t *testing.T) {
	byWeeks := FromWeeks(6, true, AutoBiological)
	byDays := FromDays(42, true, AutoBiological)
	if byWeeks != byDays {
		t.Errorf("FromWeeks(6) = %+v, want %+v", byWeeks, byDays)
	}
	if byWeeks.Stage != Grower {
		t.Errorf("6 weeks should be Grower, got %v", byWeeks.Stage)
	}
}

func TestEggAgeProfile(t *testing.T) {
	p := EggAgeProfile(true, AutoBiological)
	if p.Stage != Egg || p.MaturityIndex != 0 || p.AgeInDays != 0 {
		t.Errorf("unexpected egg profile %+v", p)
	}
}

func TestMaturityPercent(t *testing.T) {
	tests := []struct {
		days int
		want int
	}{
		{0, 0},
		{195, 50},
		{390, 100},
		{1000, 100},
	}
	for _, tt := range tests {
		if got := FromDays(tt.days, true, AutoBiological).MaturityPercent(); got != tt.want {
			t.Errorf("MaturityPercent(%d days) = %d, want %d", tt.days, got, tt.want)
		}
	}
}

func TestGrowthModeText(t *testing.T) {
	for _, m := range []GrowthMode{AutoBiological, ManualStage, ManualFree} {
		text, err := m.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v): %v", m, err)
		}
		var back GrowthMode
		if err := back.UnmarshalText(text); err != nil || back != m {
			t.Errorf("round trip of %v gave %v, %v", m, back, err)
		}
	}

	var m GrowthMode
	if err := m.UnmarshalText([]byte("freestyle")); err == nil {
		t.Error("expected error for unknown growth mode")
	}
}
