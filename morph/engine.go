package morph

import (
	"github.com/pthm-cable/roost/appearance"
	"github.com/pthm-cable/roost/lifecycle"
)

// GetConstraints returns the envelope for a profile, blended toward the next stage
// with a smoothstep on stage progress so that stage boundaries have no visible jump.
// Senior has no next stage and is returned as is. Egg is not aged by days and is
// returned as is too.
func GetConstraints(p lifecycle.AgeProfile) StageConstraints {
	current := ForStage(p.Stage, p.IsMale)
	if p.Stage == lifecycle.Egg {
		return current
	}
	next, ok := p.Stage.Next()
	if !ok {
		return current
	}
	progress := p.Stage.Progress(p.AgeInDays)
	return Interpolate(current, ForStage(next, p.IsMale), Smoothstep(progress))
}

// Evolve applies the profile's growth mode to base and returns the result.
func Evolve(base appearance.Appearance, p lifecycle.AgeProfile) appearance.Appearance {
	if p.Stage == lifecycle.Egg {
		return base
	}
	switch p.GrowthMode {
	case lifecycle.AutoBiological:
		return EvolveAutomatic(base, p)
	case lifecycle.ManualStage:
		return ConstrainToStage(base, p)
	default:
		return base
	}
}

// ConstrainToStage clamps every morph dimension into the stage envelope and
// replaces categorical picks the stage does not allow with the first allowed
// value. Values already inside the envelope are left alone, so applying it twice
// gives the same result as applying it once.
func ConstrainToStage(a appearance.Appearance, p lifecycle.AgeProfile) appearance.Appearance {
	if p.GrowthMode == lifecycle.ManualFree {
		return a
	}
	c := GetConstraints(p)

	for _, d := range appearance.Dimensions() {
		v := a.Ref(d)
		*v = c.Range(d).Clamp(*v)
	}

	a.Comb = settle(a.Comb, c.Combs)
	a.Tail = settle(a.Tail, c.Tails)
	a.Nails = settle(a.Nails, c.Nails)
	a.Wattle = settle(a.Wattle, c.Wattles)
	a.Stance = settle(a.Stance, c.Stances)
	a.Sheen = settle(a.Sheen, c.Sheens)
	a.Neck = settle(a.Neck, c.Necks)
	a.Breast = settle(a.Breast, c.Breasts)
	return a
}

// EvolveAutomatic derives the whole look from age. Every morph dimension takes
// the envelope default. Categorical picks follow the per-feature rules in
// rules.go. Colours and pattern are kept from base.
func EvolveAutomatic(base appearance.Appearance, p lifecycle.AgeProfile) appearance.Appearance {
	c := GetConstraints(p)
	out := base

	for _, d := range appearance.Dimensions() {
		*out.Ref(d) = c.Range(d).Default
	}

	out.BodySize = c.DefaultBodySize
	out.Stance = settle(c.DefaultStance, c.Stances)
	out.Sheen = settle(c.DefaultSheen, c.Sheens)

	g := growthState{stage: p.Stage, progress: p.Progress(), male: p.IsMale}
	out.Comb = g.comb(base.Comb, c.Combs)
	out.Tail = g.tail(base.Tail, c.Tails)
	out.Nails = g.nails(base.Nails, c.Nails)
	out.Wattle = g.wattle(base.Wattle, c.Wattles)
	out.Neck = g.neck(base.Neck, c.Necks)
	out.Breast = g.breast(base.Breast, c.Breasts)
	out.Back = g.back(base.Back)
	out.Legs = g.legs(base.Legs)
	out.Wings = g.wings(base.Wings)
	return out
}

// PreviewAtAge shows what base would look like at ageDays under automatic growth.
func PreviewAtAge(base appearance.Appearance, ageDays int, isMale bool) appearance.Appearance {
	return EvolveAutomatic(base, lifecycle.FromDays(ageDays, isMale, lifecycle.AutoBiological))
}
