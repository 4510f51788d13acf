package morph

import (
	"iter"

	"github.com/pthm-cable/roost/appearance"
	"github.com/pthm-cable/roost/lifecycle"
	"github.com/pthm-cable/roost/traits"
)

// TimelineAges are the ages, in days, sampled by GrowthTimeline.
var TimelineAges = [...]int{0, 3, 7, 14, 28, 42, 63, 84, 112, 150, 180, 210, 240, 300, 365, 455, 548, 730}

// MorphSummary is a short human-readable description of a bird at one age.
type MorphSummary struct {
	StageLabel      string
	FeatherTexture  string
	Features        []string
	MaturityPercent int
}

// GrowthSnapshot is one frame of a growth timeline.
type GrowthSnapshot struct {
	AgeDays       int
	Stage         lifecycle.Stage
	MaturityIndex float64
	Appearance    appearance.Appearance
	Summary       MorphSummary
}

// Summarize describes a profile using the envelope it is drawn from.
func Summarize(p lifecycle.AgeProfile, c StageConstraints) MorphSummary {
	return MorphSummary{
		StageLabel:      p.Stage.Label(),
		FeatherTexture:  c.FeatherTexture,
		Features:        traits.TraitNames(traits.ForSex(p.Stage.Traits(), p.IsMale)),
		MaturityPercent: p.MaturityPercent(),
	}
}

// GrowthTimeline yields automatic-growth snapshots of base at every timeline age up
// to maxDays. The sequence can be ranged over any number of times.
func GrowthTimeline(base appearance.Appearance, isMale bool, maxDays int) iter.Seq[GrowthSnapshot] {
	return func(yield func(GrowthSnapshot) bool) {
		for _, age := range TimelineAges {
			if age > maxDays {
				return
			}
			p := lifecycle.FromDays(age, isMale, lifecycle.AutoBiological)
			snap := GrowthSnapshot{
				AgeDays:       age,
				Stage:         p.Stage,
				MaturityIndex: p.MaturityIndex,
				Appearance:    EvolveAutomatic(base, p),
				Summary:       Summarize(p, GetConstraints(p)),
			}
			if !yield(snap) {
				return
			}
		}
	}
}
