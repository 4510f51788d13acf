package morph

import (
	"github.com/pthm-cable/roost/appearance"
	"github.com/pthm-cable/roost/lifecycle"
)

// minNotableGrowth is how much a default must grow between stages to be reported.
const minNotableGrowth = 0.1

// ChangeKind classifies a MorphChange.
type ChangeKind uint8

const (
	ChangeGrowth ChangeKind = iota
	ChangeFeatherHardening
	ChangeSheenDulling
)

var changeKindNames = [...]string{"growth", "feather_hardening", "sheen_dulling"}

func (k ChangeKind) String() string {
	if int(k) < len(changeKindNames) {
		return changeKindNames[k]
	}
	return "unknown"
}

// MorphChange is one notable visual change between two ages.
type MorphChange struct {
	Kind        ChangeKind
	Feature     string
	Description string
	From        float64
	To          float64
}

// trackedChanges are the dimensions worth announcing when they grow.
var trackedChanges = []struct {
	dim         appearance.Dimension
	description string
}{
	{appearance.HackleLength, "Hackle feathers lengthen"},
	{appearance.SpurSize, "Spurs develop"},
	{appearance.ChestDepth, "Chest deepens"},
	{appearance.FeatherDensity, "Plumage fills in"},
}

// TransitionChanges lists the notable changes between fromDays and toDays. It is a
// curated list, not a full diff, and is empty when both ages fall in one stage.
func TransitionChanges(fromDays, toDays int, isMale bool) []MorphChange {
	fromStage := lifecycle.Classify(fromDays, isMale)
	toStage := lifecycle.Classify(toDays, isMale)
	if fromStage == toStage {
		return nil
	}

	from := ForStage(fromStage, isMale)
	to := ForStage(toStage, isMale)

	var changes []MorphChange
	for _, tc := range trackedChanges {
		a, b := from.Range(tc.dim).Default, to.Range(tc.dim).Default
		if b-a > minNotableGrowth {
			changes = append(changes, MorphChange{
				Kind:        ChangeGrowth,
				Feature:     tc.dim.String(),
				Description: tc.description,
				From:        a,
				To:          b,
			})
		}
	}

	if fromStage < lifecycle.Adult && toStage >= lifecycle.Adult {
		changes = append(changes, MorphChange{
			Kind:        ChangeFeatherHardening,
			Feature:     "plumage",
			Description: "Feathers harden into adult plumage",
			From:        from.FeatherDensity.Default,
			To:          to.FeatherDensity.Default,
		})
	}
	if fromStage < lifecycle.Senior && toStage == lifecycle.Senior {
		changes = append(changes, MorphChange{
			Kind:        ChangeSheenDulling,
			Feature:     "sheen",
			Description: "Plumage sheen dulls with age",
		})
	}
	return changes
}
