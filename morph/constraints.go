// Package morph turns a bird's age into the visual envelope the renderer may use,
// and evolves appearances inside that envelope.
package morph

import (
	"slices"

	"github.com/pthm-cable/roost/appearance"
	"github.com/pthm-cable/roost/lifecycle"
)

// Range is the allowed span of one morph dimension plus its natural value.
type Range struct {
	Min     float64
	Max     float64
	Default float64
}

func r(lo, def, hi float64) Range {
	return Range{Min: lo, Max: hi, Default: def}
}

// Valid reports whether Min <= Default <= Max.
func (rg Range) Valid() bool {
	return rg.Min <= rg.Default && rg.Default <= rg.Max
}

// Clamp limits v to [Min, Max].
func (rg Range) Clamp(v float64) float64 {
	if v < rg.Min {
		return rg.Min
	}
	if v > rg.Max {
		return rg.Max
	}
	return v
}

// Contains reports whether v lies within [Min, Max].
func (rg Range) Contains(v float64) bool {
	return v >= rg.Min && v <= rg.Max
}

// lerpRange blends every bound independently. t must already be clamped.
func lerpRange(from, to Range, t float64) Range {
	return Range{
		Min:     lerp(from.Min, to.Min, t),
		Max:     lerp(from.Max, to.Max, t),
		Default: lerp(from.Default, to.Default, t),
	}
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// StageConstraints is the full envelope for one stage and sex: numeric ranges,
// the categorical values the stage allows, and its default picks.
// Allowed sets are ordered from the most minimal value up; the first element is
// the fallback for an invalid selection.
type StageConstraints struct {
	BodyWidth      Range
	BodyRoundness  Range
	LegLength      Range
	LegThickness   Range
	TailLength     Range
	TailAngle      Range
	TailSpread     Range
	CombSize       Range
	BeakScale      Range
	BeakCurvature  Range
	NeckLength     Range
	NeckThickness  Range
	ChestDepth     Range
	HackleLength   Range
	SpurSize       Range
	BoneThickness  Range
	FeatherDensity Range

	Combs   []appearance.CombType
	Tails   []appearance.TailType
	Nails   []appearance.NailType
	Wattles []appearance.WattleType
	Stances []appearance.Stance
	Sheens  []appearance.Sheen
	Necks   []appearance.NeckType
	Breasts []appearance.BreastType

	DefaultBodySize appearance.BodySize
	DefaultStance   appearance.Stance
	DefaultSheen    appearance.Sheen

	FeatherTexture string
}

// Ref returns a pointer to the range for dimension d, or nil for an unknown dimension.
func (c *StageConstraints) Ref(d appearance.Dimension) *Range {
	switch d {
	case appearance.BodyWidth:
		return &c.BodyWidth
	case appearance.BodyRoundness:
		return &c.BodyRoundness
	case appearance.LegLength:
		return &c.LegLength
	case appearance.LegThickness:
		return &c.LegThickness
	case appearance.TailLength:
		return &c.TailLength
	case appearance.TailAngle:
		return &c.TailAngle
	case appearance.TailSpread:
		return &c.TailSpread
	case appearance.CombSize:
		return &c.CombSize
	case appearance.BeakScale:
		return &c.BeakScale
	case appearance.BeakCurvature:
		return &c.BeakCurvature
	case appearance.NeckLength:
		return &c.NeckLength
	case appearance.NeckThickness:
		return &c.NeckThickness
	case appearance.ChestDepth:
		return &c.ChestDepth
	case appearance.HackleLength:
		return &c.HackleLength
	case appearance.SpurSize:
		return &c.SpurSize
	case appearance.BoneThickness:
		return &c.BoneThickness
	case appearance.FeatherDensity:
		return &c.FeatherDensity
	}
	return nil
}

// Range returns the range for dimension d.
func (c StageConstraints) Range(d appearance.Dimension) Range {
	if p := c.Ref(d); p != nil {
		return *p
	}
	return Range{}
}

func (c StageConstraints) clone() StageConstraints {
	c.Combs = slices.Clone(c.Combs)
	c.Tails = slices.Clone(c.Tails)
	c.Nails = slices.Clone(c.Nails)
	c.Wattles = slices.Clone(c.Wattles)
	c.Stances = slices.Clone(c.Stances)
	c.Sheens = slices.Clone(c.Sheens)
	c.Necks = slices.Clone(c.Necks)
	c.Breasts = slices.Clone(c.Breasts)
	return c
}

// eggConstraints is the envelope of an unhatched egg: nothing to draw.
func eggConstraints() StageConstraints {
	return StageConstraints{
		Combs:           []appearance.CombType{appearance.CombNone},
		Tails:           []appearance.TailType{appearance.TailNone},
		Nails:           []appearance.NailType{appearance.NailsSoft},
		Wattles:         []appearance.WattleType{appearance.WattleNone},
		Stances:         []appearance.Stance{appearance.StanceCrouched},
		Sheens:          []appearance.Sheen{appearance.SheenNone},
		Necks:           []appearance.NeckType{appearance.NeckDowny},
		Breasts:         []appearance.BreastType{appearance.BreastFlat},
		DefaultBodySize: appearance.SizeTiny,
		DefaultStance:   appearance.StanceCrouched,
		DefaultSheen:    appearance.SheenNone,
		FeatherTexture:  "none",
	}
}

func sexIndex(isMale bool) int {
	if isMale {
		return 1
	}
	return 0
}

// ForStage returns the envelope for a stage and sex. The result is a copy and may
// be modified freely.
func ForStage(stage lifecycle.Stage, isMale bool) StageConstraints {
	if stage >= lifecycle.NumStages {
		stage = lifecycle.Senior
	}
	return constraintTable[stage][sexIndex(isMale)].clone()
}

// Interpolate blends two envelopes. Every numeric bound moves linearly with
// progress (clamped to [0,1]); allowed sets, default picks and the texture label
// switch to those of to.
func Interpolate(from, to StageConstraints, progress float64) StageConstraints {
	t := min(max(progress, 0), 1)
	out := to
	for _, d := range appearance.Dimensions() {
		*out.Ref(d) = lerpRange(from.Range(d), to.Range(d), t)
	}
	return out
}

// Smoothstep is the Hermite ease 3p² − 2p³.
func Smoothstep(p float64) float64 {
	return 3*p*p - 2*p*p*p
}
