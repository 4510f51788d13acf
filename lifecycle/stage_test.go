package lifecycle

import (
	"math"
	"testing"

	"github.com/pthm-cable/roost/traits"
)

func TestClassifyBoundaries(t *testing.T) {
	tests := []struct {
		days int
		want Stage
	}{
		{0, Hatchling},
		{6, Hatchling},
		{7, Chick},
		{41, Chick},
		{42, Grower},
		{111, Grower},
		{112, SubAdult},
		{239, SubAdult},
		{240, Adult},
		{364, Adult},
		{365, MatureAdult},
		{729, MatureAdult},
		{730, Senior},
		{5000, Senior},
	}

	for _, tt := range tests {
		for _, male := range []bool{true, false} {
			if got := Classify(tt.days, male); got != tt.want {
				t.Errorf("Classify(%d, %v) = %v, want %v", tt.days, male, got, tt.want)
			}
		}
	}
}

func TestClassifyMatchesStageMetadata(t *testing.T) {
	for _, s := range Stages() {
		if s == Egg {
			continue
		}
		if got := Classify(s.MinDays(), true); got != s {
			t.Errorf("Classify(MinDays of %v = %d) = %v", s, s.MinDays(), got)
		}
		if s.MaxDays() == OpenEnded {
			continue
		}
		if got := Classify(s.MaxDays()-1, true); got != s {
			t.Errorf("Classify(MaxDays-1 of %v = %d) = %v", s, s.MaxDays()-1, got)
		}
		if next, ok := s.Next(); ok && next.MinDays() != s.MaxDays() {
			t.Errorf("%v ends at %d but %v starts at %d", s, s.MaxDays(), next, next.MinDays())
		}
	}
}

func TestClassifyMonotoneAndNeverEgg(t *testing.T) {
	prev := Classify(0, true)
	for day := 0; day <= 1500; day++ {
		s := Classify(day, day%2 == 0)
		if s == Egg {
			t.Fatalf("Classify(%d) returned Egg", day)
		}
		if s.Index() < prev.Index() {
			t.Fatalf("Classify not monotone at day %d: %v after %v", day, s, prev)
		}
		prev = s
	}
}

func TestProgress(t *testing.T) {
	tests := []struct {
		name  string
		stage Stage
		days  int
		want  float64
	}{
		{"chick start", Chick, 7, 0},
		{"chick partway", Chick, 24, 17.0 / 35.0},
		{"grower middle", Grower, 77, 0.5},
		{"grower end clamps", Grower, 500, 1},
		{"before stage clamps", Adult, 10, 0},
		{"senior half", Senior, 730 + 182, 182.0 / 365.0},
		{"senior past span", Senior, 2000, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.stage.Progress(tt.days)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("%v.Progress(%d) = %v, want %v", tt.stage, tt.days, got, tt.want)
			}
		})
	}
}

func TestCapabilitiesMonotone(t *testing.T) {
	preds := map[string]func(Stage) bool{
		"CanRenderBird":     Stage.CanRenderBird,
		"HasFeathers":       Stage.HasFeathers,
		"HasHackles":        Stage.HasHackles,
		"HasSickleFeathers": Stage.HasSickleFeathers,
		"HasSpurs":          Stage.HasSpurs,
		"HasFullPlumage":    Stage.HasFullPlumage,
	}

	for name, pred := range preds {
		seen := false
		for _, s := range Stages() {
			if pred(s) {
				seen = true
			} else if seen {
				t.Errorf("%s true before %v but false at %v", name, s-1, s)
			}
		}
		if pred(Egg) {
			t.Errorf("%s should be false for Egg", name)
		}
		if !pred(Senior) {
			t.Errorf("%s should be true for Senior", name)
		}
	}
}

func TestStageTraits(t *testing.T) {
	if Egg.Traits() != 0 {
		t.Errorf("Egg traits = %b, want none", Egg.Traits())
	}
	adult := Adult.Traits()
	for _, tr := range []traits.Trait{traits.Renderable, traits.Feathers, traits.Hackles, traits.Sickles, traits.Spurs, traits.FullPlumage} {
		if !adult.Has(tr) {
			t.Errorf("Adult traits missing %b", tr)
		}
	}
	if Chick.Traits().Has(traits.Hackles) {
		t.Error("Chick should not have hackles")
	}
}

func TestNextAndParse(t *testing.T) {
	if next, ok := Grower.Next(); !ok || next != SubAdult {
		t.Errorf("Grower.Next() = %v, %v", next, ok)
	}
	if _, ok := Senior.Next(); ok {
		t.Error("Senior should have no next stage")
	}
	for _, s := range Stages() {
		parsed, err := ParseStage(s.String())
		if err != nil || parsed != s {
			t.Errorf("ParseStage(%q) = %v, %v", s.String(), parsed, err)
		}
	}
	if _, err := ParseStage("pullet"); err == nil {
		t.Error("expected error for unknown stage")
	}
}

func TestOutOfRangeStageReadsAsSenior(t *testing.T) {
	bad := NumStages + 3
	if bad.MinDays() != Senior.MinDays() || bad.MaxDays() != OpenEnded {
		t.Errorf("bounds = [%d,%d), want Senior's", bad.MinDays(), bad.MaxDays())
	}
	if got := bad.Progress(730 + 365); got != 1 {
		t.Errorf("Progress = %v, want 1", got)
	}
	if bad.Label() != "Unknown" {
		t.Errorf("Label = %q", bad.Label())
	}
}
