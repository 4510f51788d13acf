// Package lifecycle classifies a bird's age into biological stages.
package lifecycle

import (
	"fmt"

	"github.com/pthm-cable/roost/traits"
)

// Stage is one of the ordered life phases of a bird.
type Stage uint8

const (
	Egg Stage = iota
	Hatchling
	Chick
	Grower
	SubAdult
	Adult
	MatureAdult
	Senior

	NumStages
)

// OpenEnded marks a stage without an upper day bound.
const OpenEnded = -1

// seniorProgressSpan stands in for Senior's missing end when computing progress.
const seniorProgressSpan = 365

type stageInfo struct {
	name    string
	label   string
	minDays int
	maxDays int // exclusive; OpenEnded for Senior
}

// Egg's window is the 21-day incubation period. It is metadata only: Classify never
// returns Egg.
var stageTable = [NumStages]stageInfo{
	Egg:         {"egg", "Egg", -21, 0},
	Hatchling:   {"hatchling", "Hatchling", 0, 7},
	Chick:       {"chick", "Chick", 7, 42},
	Grower:      {"grower", "Grower", 42, 112},
	SubAdult:    {"sub_adult", "Sub-adult", 112, 240},
	Adult:       {"adult", "Adult", 240, 365},
	MatureAdult: {"mature_adult", "Mature adult", 365, 730},
	Senior:      {"senior", "Senior", 730, OpenEnded},
}

// Stages returns every stage in order.
func Stages() []Stage {
	out := make([]Stage, NumStages)
	for i := range out {
		out[i] = Stage(i)
	}
	return out
}

func (s Stage) String() string {
	if s < NumStages {
		return stageTable[s].name
	}
	return fmt.Sprintf("stage(%d)", uint8(s))
}

// Label returns the display name of the stage.
func (s Stage) Label() string {
	if s < NumStages {
		return stageTable[s].label
	}
	return "Unknown"
}

// Index returns the ordering index, 0 for Egg through 7 for Senior.
func (s Stage) Index() int { return int(s) }

// MinDays returns the first day (inclusive) of the stage.
func (s Stage) MinDays() int { return s.info().minDays }

// MaxDays returns the end day (exclusive) of the stage, or OpenEnded.
func (s Stage) MaxDays() int { return s.info().maxDays }

// info returns the metadata row. Out-of-range stages read as Senior, like the
// constraint lookup.
func (s Stage) info() stageInfo {
	return stageTable[min(s, Senior)]
}

// Next returns the following stage. Senior has none.
func (s Stage) Next() (Stage, bool) {
	if s+1 >= NumStages {
		return s, false
	}
	return s + 1, true
}

// Classify maps an age in days to a stage. Egg is never returned; callers that know
// a bird has not hatched yet must set it explicitly. Sex does not move the cut points.
func Classify(ageDays int, isMale bool) Stage {
	for s := Hatchling; s < Senior; s++ {
		if ageDays < stageTable[s].maxDays {
			return s
		}
	}
	return Senior
}

// Progress returns how far ageDays is through the stage, in [0,1].
func (s Stage) Progress(ageDays int) float64 {
	info := s.info()
	end := info.maxDays
	if end == OpenEnded {
		end = info.minDays + seniorProgressSpan
	}
	span := float64(end - info.minDays)
	if span <= 0 {
		return 0
	}
	return clamp01(float64(ageDays-info.minDays) / span)
}

// CanRenderBird reports whether there is a bird body to draw.
func (s Stage) CanRenderBird() bool { return s >= Hatchling }

// HasFeathers reports whether true feathers have started replacing down.
func (s Stage) HasFeathers() bool { return s >= Chick }

// HasHackles reports whether neck hackles are present.
func (s Stage) HasHackles() bool { return s >= SubAdult }

// HasSickleFeathers reports whether sickle tail feathers can grow.
func (s Stage) HasSickleFeathers() bool { return s >= SubAdult }

// HasSpurs reports whether leg spurs can develop.
func (s Stage) HasSpurs() bool { return s >= Adult }

// HasFullPlumage reports whether adult plumage is complete.
func (s Stage) HasFullPlumage() bool { return s >= Adult }

// Traits returns the stage capabilities as a trait set.
func (s Stage) Traits() traits.Trait {
	var t traits.Trait
	if s.CanRenderBird() {
		t = t.Add(traits.Renderable)
	}
	if s.HasFeathers() {
		t = t.Add(traits.Feathers)
	}
	if s.HasHackles() {
		t = t.Add(traits.Hackles)
	}
	if s.HasSickleFeathers() {
		t = t.Add(traits.Sickles)
	}
	if s.HasSpurs() {
		t = t.Add(traits.Spurs)
	}
	if s.HasFullPlumage() {
		t = t.Add(traits.FullPlumage)
	}
	return t
}

// ParseStage parses the String form of a stage.
func ParseStage(name string) (Stage, error) {
	for s := Egg; s < NumStages; s++ {
		if stageTable[s].name == name {
			return s, nil
		}
	}
	return Egg, fmt.Errorf("unknown stage %q", name)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
