package components

import (
	"testing"

	"github.com/pthm-cable/roost/egg"
	"github.com/pthm-cable/roost/growth"
	"github.com/pthm-cable/roost/lifecycle"
)

func TestWeightRecord(t *testing.T) {
	var w Weight
	if _, _, n := w.Last(); n != 0 {
		t.Fatalf("empty history has %d samples", n)
	}

	w.Record(growth.Sample{AgeDays: 10, Grams: 100})
	cur, _, n := w.Last()
	if n != 1 || cur.Grams != 100 {
		t.Errorf("after one record: cur=%+v n=%d", cur, n)
	}

	w.Record(growth.Sample{AgeDays: 10, Grams: 110})
	if len(w.History) != 1 || w.Grams != 110 {
		t.Errorf("same-day record should replace: %+v", w.History)
	}

	w.Record(growth.Sample{AgeDays: 20, Grams: 200})
	cur, prev, n := w.Last()
	if n != 2 || cur.AgeDays != 20 || prev.AgeDays != 10 {
		t.Errorf("cur=%+v prev=%+v n=%d", cur, prev, n)
	}
}

func TestAgeStage(t *testing.T) {
	tests := []struct {
		days int
		want lifecycle.Stage
	}{
		{-21, lifecycle.Egg},
		{-1, lifecycle.Egg},
		{0, lifecycle.Hatchling},
		{50, lifecycle.Grower},
	}
	for _, tt := range tests {
		a := Age{Days: tt.days}
		if got := a.Stage(true); got != tt.want {
			t.Errorf("Age{%d}.Stage() = %v, want %v", tt.days, got, tt.want)
		}
	}
}

func TestClutchIncubation(t *testing.T) {
	c := Clutch{Shell: egg.ShellBlue, Fertility: egg.Fertile, TemperatureC: 37.5}
	in := c.Incubation(-3)
	if in.Day != 18 || in.Shell != egg.ShellBlue {
		t.Errorf("incubation = %+v, want day 18", in)
	}
	if p := egg.FromIncubation(in); p.Candling != egg.Lockdown {
		t.Errorf("candling = %v, want lockdown", p.Candling)
	}
}
