package morph

import (
	"math"
	"reflect"
	"slices"
	"testing"

	"github.com/pthm-cable/roost/appearance"
	"github.com/pthm-cable/roost/lifecycle"
)

func TestConstraintTableValid(t *testing.T) {
	for _, stage := range lifecycle.Stages() {
		for _, male := range []bool{false, true} {
			c := ForStage(stage, male)
			for _, d := range appearance.Dimensions() {
				rg := c.Range(d)
				if !rg.Valid() {
					t.Errorf("%v male=%v %v: invalid range %+v", stage, male, d, rg)
				}
				if rg.Min < 0 || rg.Max > 1 {
					t.Errorf("%v male=%v %v: range %+v outside [0,1]", stage, male, d, rg)
				}
			}

			sets := map[string]int{
				"combs": len(c.Combs), "tails": len(c.Tails), "nails": len(c.Nails),
				"wattles": len(c.Wattles), "stances": len(c.Stances), "sheens": len(c.Sheens),
				"necks": len(c.Necks), "breasts": len(c.Breasts),
			}
			for name, n := range sets {
				if n == 0 {
					t.Errorf("%v male=%v: empty %s set", stage, male, name)
				}
			}
			if !slices.Contains(c.Stances, c.DefaultStance) {
				t.Errorf("%v male=%v: default stance %v not allowed", stage, male, c.DefaultStance)
			}
			if !slices.Contains(c.Sheens, c.DefaultSheen) {
				t.Errorf("%v male=%v: default sheen %v not allowed", stage, male, c.DefaultSheen)
			}
			if c.FeatherTexture == "" {
				t.Errorf("%v male=%v: missing feather texture", stage, male)
			}
		}
	}
}

func TestEggConstraints(t *testing.T) {
	for _, male := range []bool{false, true} {
		c := ForStage(lifecycle.Egg, male)
		for _, d := range appearance.Dimensions() {
			if rg := c.Range(d); rg != (Range{}) {
				t.Errorf("egg %v = %+v, want all zero", d, rg)
			}
		}
		sets := []int{len(c.Combs), len(c.Tails), len(c.Nails), len(c.Wattles),
			len(c.Stances), len(c.Sheens), len(c.Necks), len(c.Breasts)}
		for i, n := range sets {
			if n != 1 {
				t.Errorf("egg allowed set %d has %d values, want 1", i, n)
			}
		}
		if c.Combs[0] != appearance.CombNone || c.Tails[0] != appearance.TailNone {
			t.Errorf("egg sets should hold minimal values, got comb %v tail %v", c.Combs[0], c.Tails[0])
		}
	}
}

func TestForStageReturnsCopy(t *testing.T) {
	c := ForStage(lifecycle.Adult, true)
	c.Combs[0] = appearance.CombNone
	c.BodyWidth.Max = 99

	again := ForStage(lifecycle.Adult, true)
	if again.Combs[0] == appearance.CombNone || again.BodyWidth.Max == 99 {
		t.Error("mutating a ForStage result leaked into the table")
	}
}

func TestSexesDiffer(t *testing.T) {
	hen := ForStage(lifecycle.Adult, false)
	rooster := ForStage(lifecycle.Adult, true)
	if rooster.SpurSize.Default <= hen.SpurSize.Default {
		t.Errorf("rooster spur default %v should exceed hen %v", rooster.SpurSize.Default, hen.SpurSize.Default)
	}
	if slices.Contains(hen.Tails, appearance.TailSickle) {
		t.Error("hens should not be allowed sickle tails")
	}
}

func TestInterpolateKeepsOrdering(t *testing.T) {
	for _, stage := range lifecycle.Stages() {
		next, ok := stage.Next()
		if !ok {
			continue
		}
		for _, male := range []bool{false, true} {
			from, to := ForStage(stage, male), ForStage(next, male)
			for i := 0; i <= 20; i++ {
				p := float64(i) / 20
				c := Interpolate(from, to, p)
				for _, d := range appearance.Dimensions() {
					rg := c.Range(d)
					if rg.Min > rg.Max {
						t.Fatalf("%v->%v p=%v %v: min %v > max %v", stage, next, p, d, rg.Min, rg.Max)
					}
				}
			}
		}
	}
}

func TestInterpolateValues(t *testing.T) {
	from := ForStage(lifecycle.Grower, true)
	to := ForStage(lifecycle.SubAdult, true)

	tests := []struct {
		name     string
		progress float64
		want     float64
	}{
		{"start", 0, from.LegLength.Default},
		{"end", 1, to.LegLength.Default},
		{"middle", 0.5, (from.LegLength.Default + to.LegLength.Default) / 2},
		{"below clamps", -2, from.LegLength.Default},
		{"above clamps", 3, to.LegLength.Default},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Interpolate(from, to, tt.progress).LegLength.Default
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("LegLength.Default = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInterpolateCategoricalsFromTarget(t *testing.T) {
	from := ForStage(lifecycle.Grower, true)
	to := ForStage(lifecycle.SubAdult, true)

	c := Interpolate(from, to, 0.01)
	if !reflect.DeepEqual(c.Combs, to.Combs) || !reflect.DeepEqual(c.Tails, to.Tails) {
		t.Error("allowed sets should switch to the target stage immediately")
	}
	if c.DefaultBodySize != to.DefaultBodySize || c.FeatherTexture != to.FeatherTexture {
		t.Error("default picks should come from the target stage")
	}
}

func TestSmoothstep(t *testing.T) {
	tests := []struct {
		p, want float64
	}{
		{0, 0},
		{0.25, 0.15625},
		{0.5, 0.5},
		{0.75, 0.84375},
		{1, 1},
	}
	for _, tt := range tests {
		if got := Smoothstep(tt.p); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Smoothstep(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestRangeClamp(t *testing.T) {
	rg := r(0.2, 0.5, 0.8)
	tests := []struct {
		in, want float64
	}{
		{0.1, 0.2},
		{0.2, 0.2},
		{0.6, 0.6},
		{0.9, 0.8},
	}
	for _, tt := range tests {
		if got := rg.Clamp(tt.in); got != tt.want {
			t.Errorf("Clamp(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if !rg.Contains(0.8) || rg.Contains(0.81) {
		t.Error("Contains bounds are inclusive")
	}
}
