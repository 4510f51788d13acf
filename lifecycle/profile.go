package lifecycle

import (
	"fmt"
	"math"
)

// FullMaturityDays is the age at which MaturityIndex reaches 1.0.
const FullMaturityDays = 390

// GrowthMode selects how the engine treats a player's appearance choices.
type GrowthMode uint8

const (
	// AutoBiological overrides every morph dimension from age.
	AutoBiological GrowthMode = iota
	// ManualStage keeps player choices but clamps them to what the stage allows.
	ManualStage
	// ManualFree leaves the appearance untouched.
	ManualFree
)

var growthModeNames = [...]string{"auto_biological", "manual_stage", "manual_free"}

func (m GrowthMode) String() string {
	if int(m) < len(growthModeNames) {
		return growthModeNames[m]
	}
	return fmt.Sprintf("growth_mode(%d)", uint8(m))
}

// ParseGrowthMode parses the String form of a growth mode.
func ParseGrowthMode(name string) (GrowthMode, error) {
	for i, n := range growthModeNames {
		if n == name {
			return GrowthMode(i), nil
		}
	}
	return AutoBiological, fmt.Errorf("unknown growth mode %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (m GrowthMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *GrowthMode) UnmarshalText(text []byte) error {
	parsed, err := ParseGrowthMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// AgeProfile is a snapshot of where a bird is in its life.
type AgeProfile struct {
	AgeInDays     int
	Stage         Stage
	MaturityIndex float64 // 1.0 at FullMaturityDays, unbounded above
	IsMale        bool
	GrowthMode    GrowthMode
}

// FromDays builds a profile from an age in days.
func FromDays(days int, isMale bool, mode GrowthMode) AgeProfile {
	return AgeProfile{
		AgeInDays:     days,
		Stage:         Classify(days, isMale),
		MaturityIndex: math.Max(0, float64(days)/FullMaturityDays),
		IsMale:        isMale,
		GrowthMode:    mode,
	}
}

// FromWeeks builds a profile from an age in weeks.
func FromWeeks(weeks int, isMale bool, mode GrowthMode) AgeProfile {
	return FromDays(weeks*7, isMale, mode)
}

// EggAgeProfile builds the profile of a bird that has not hatched yet.
func EggAgeProfile(isMale bool, mode GrowthMode) AgeProfile {
	return AgeProfile{
		Stage:      Egg,
		IsMale:     isMale,
		GrowthMode: mode,
	}
}

// Progress returns how far the bird is through its current stage.
func (p AgeProfile) Progress() float64 {
	return p.Stage.Progress(p.AgeInDays)
}

// MaturityPercent returns the maturity index as a whole percentage clamped to [0,100].
func (p AgeProfile) MaturityPercent() int {
	pct := math.Round(p.MaturityIndex * 100)
	return int(math.Max(0, math.Min(100, pct)))
}
