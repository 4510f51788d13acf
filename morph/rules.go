package morph

import (
	"slices"

	"github.com/pthm-cable/roost/appearance"
	"github.com/pthm-cable/roost/lifecycle"
)

// Stage progress past which a transitional stage switches to the more developed
// variant of a feature.
const (
	combCutoff   = 0.5
	tailCutoff   = 0.6
	nailsCutoff  = 0.7
	wattleCutoff = 0.5
	neckCutoff   = 0.4
	breastCutoff = 0.5
	backCutoff   = 0.6
	legsCutoff   = 0.7
	wingsCutoff  = 0.5
)

// settle returns v if the allowed set contains it, otherwise the set's first
// element. An empty set allows anything.
func settle[T comparable](v T, allowed []T) T {
	if len(allowed) == 0 || slices.Contains(allowed, v) {
		return v
	}
	return allowed[0]
}

// preserve keeps current while it is still allowed, otherwise falls back to
// fallback, settled into the allowed set.
func preserve[T comparable](current T, allowed []T, fallback T) T {
	if slices.Contains(allowed, current) {
		return current
	}
	return settle(fallback, allowed)
}

// growthState is the part of a profile the categorical rules look at.
type growthState struct {
	stage    lifecycle.Stage
	progress float64
	male     bool
}

func (g growthState) past(cutoff float64) bool {
	return g.progress > cutoff
}

func (g growthState) comb(current appearance.CombType, allowed []appearance.CombType) appearance.CombType {
	switch {
	case g.stage < lifecycle.Chick:
		return settle(appearance.CombNone, allowed)
	case g.stage == lifecycle.Chick:
		return settle(appearance.CombBud, allowed)
	case g.stage == lifecycle.Grower:
		if g.past(combCutoff) && g.male {
			return settle(appearance.CombSingle, allowed)
		}
		return settle(appearance.CombBud, allowed)
	default:
		return preserve(current, allowed, appearance.CombPea)
	}
}

func (g growthState) tail(current appearance.TailType, allowed []appearance.TailType) appearance.TailType {
	switch {
	case g.stage < lifecycle.Chick:
		return settle(appearance.TailNone, allowed)
	case g.stage == lifecycle.Chick:
		return settle(appearance.TailNub, allowed)
	case g.stage == lifecycle.Grower:
		if g.past(tailCutoff) {
			return settle(appearance.TailFan, allowed)
		}
		return settle(appearance.TailNub, allowed)
	case g.stage == lifecycle.SubAdult:
		if !g.male {
			return settle(appearance.TailFan, allowed)
		}
		if g.past(tailCutoff) {
			return settle(appearance.TailSickle, allowed)
		}
		return settle(appearance.TailUpright, allowed)
	case g.male:
		return preserve(current, allowed, appearance.TailSickle)
	default:
		return preserve(current, allowed, appearance.TailFan)
	}
}

func (g growthState) nails(current appearance.NailType, allowed []appearance.NailType) appearance.NailType {
	switch {
	case g.stage < lifecycle.Chick:
		return settle(appearance.NailsSoft, allowed)
	case g.stage < lifecycle.SubAdult:
		return settle(appearance.NailsShort, allowed)
	case !g.stage.HasSpurs():
		if g.male && g.past(nailsCutoff) {
			return settle(appearance.NailsSpurBud, allowed)
		}
		return settle(appearance.NailsCurved, allowed)
	case g.male:
		return preserve(current, allowed, appearance.NailsLongSpur)
	default:
		return preserve(current, allowed, appearance.NailsCurved)
	}
}

func (g growthState) wattle(current appearance.WattleType, allowed []appearance.WattleType) appearance.WattleType {
	switch {
	case g.stage < lifecycle.Grower:
		return settle(appearance.WattleNone, allowed)
	case g.stage == lifecycle.Grower:
		if g.past(wattleCutoff) {
			return settle(appearance.WattleSmall, allowed)
		}
		return settle(appearance.WattleNone, allowed)
	case g.stage == lifecycle.SubAdult:
		if g.male && g.past(wattleCutoff) {
			return settle(appearance.WattleMedium, allowed)
		}
		return settle(appearance.WattleSmall, allowed)
	default:
		return preserve(current, allowed, appearance.WattleMedium)
	}
}

func (g growthState) neck(current appearance.NeckType, allowed []appearance.NeckType) appearance.NeckType {
	switch {
	case g.stage < lifecycle.Chick:
		return settle(appearance.NeckDowny, allowed)
	case g.stage == lifecycle.Chick:
		return settle(appearance.NeckShort, allowed)
	case g.stage == lifecycle.Grower:
		if g.past(neckCutoff) {
			return settle(appearance.NeckMedium, allowed)
		}
		return settle(appearance.NeckShort, allowed)
	default:
		return preserve(current, allowed, appearance.NeckMedium)
	}
}

func (g growthState) breast(current appearance.BreastType, allowed []appearance.BreastType) appearance.BreastType {
	switch {
	case g.stage < lifecycle.Grower:
		return settle(appearance.BreastFlat, allowed)
	case g.stage == lifecycle.Grower:
		if g.past(breastCutoff) {
			return settle(appearance.BreastShallow, allowed)
		}
		return settle(appearance.BreastFlat, allowed)
	case g.stage == lifecycle.SubAdult:
		if g.male && g.past(breastCutoff) {
			return settle(appearance.BreastDeep, allowed)
		}
		return settle(appearance.BreastRounded, allowed)
	default:
		return preserve(current, allowed, appearance.BreastDeep)
	}
}

// Back, legs and wings carry no allowed set in the constraint table; their valid
// variants follow directly from the stage capabilities.

func (g growthState) back(current appearance.BackType) appearance.BackType {
	switch {
	case !g.stage.HasFeathers():
		return appearance.BackDowny
	case !g.stage.HasHackles():
		if g.stage == lifecycle.Grower && g.past(backCutoff) {
			return appearance.BackSloped
		}
		return appearance.BackFlat
	case g.male:
		return preserve(current, []appearance.BackType{appearance.BackFlat, appearance.BackSloped, appearance.BackHackle}, appearance.BackHackle)
	default:
		return preserve(current, []appearance.BackType{appearance.BackFlat, appearance.BackSloped}, appearance.BackSloped)
	}
}

func (g growthState) legs(current appearance.LegType) appearance.LegType {
	switch {
	case g.stage < lifecycle.Chick:
		return appearance.LegsStubby
	case g.stage == lifecycle.Chick:
		return appearance.LegsSlender
	case !g.stage.HasSpurs():
		if g.past(legsCutoff) {
			return appearance.LegsScaled
		}
		return appearance.LegsSlender
	case g.male:
		return preserve(current, []appearance.LegType{appearance.LegsScaled, appearance.LegsSpurred}, appearance.LegsSpurred)
	default:
		return preserve(current, []appearance.LegType{appearance.LegsSlender, appearance.LegsScaled}, appearance.LegsScaled)
	}
}

func (g growthState) wings(current appearance.WingType) appearance.WingType {
	switch {
	case g.stage < lifecycle.Chick:
		return appearance.WingsDowny
	case g.stage == lifecycle.Chick:
		return appearance.WingsLoose
	case g.stage == lifecycle.Grower:
		if g.past(wingsCutoff) {
			return appearance.WingsFolded
		}
		return appearance.WingsLoose
	default:
		return preserve(current, []appearance.WingType{appearance.WingsFolded, appearance.WingsTight}, appearance.WingsTight)
	}
}
