package morph

import (
	"github.com/pthm-cable/roost/appearance"
	"github.com/pthm-cable/roost/lifecycle"
)

// constraintTable holds the hand-authored envelope for every stage and sex,
// indexed by stage then sexIndex (hen 0, rooster 1).
var constraintTable = [lifecycle.NumStages][2]StageConstraints{
	lifecycle.Egg: {eggConstraints(), eggConstraints()},
	lifecycle.Hatchling: {
		// Hatchling, hen
		{
			BodyWidth:       r(0.20, 0.30, 0.40),
			BodyRoundness:   r(0.70, 0.80, 0.90),
			LegLength:       r(0.15, 0.25, 0.35),
			LegThickness:    r(0.10, 0.20, 0.30),
			TailLength:      r(0.00, 0.00, 0.00),
			TailAngle:       r(0.05, 0.20, 0.35),
			TailSpread:      r(0.00, 0.00, 0.00),
			CombSize:        r(0.00, 0.02, 0.12),
			BeakScale:       r(0.47, 0.55, 0.63),
			BeakCurvature:   r(0.12, 0.20, 0.28),
			NeckLength:      r(0.10, 0.20, 0.30),
			NeckThickness:   r(0.15, 0.25, 0.35),
			ChestDepth:      r(0.20, 0.30, 0.40),
			HackleLength:    r(0.00, 0.00, 0.00),
			SpurSize:        r(0.00, 0.00, 0.00),
			BoneThickness:   r(0.10, 0.20, 0.30),
			FeatherDensity:  r(0.20, 0.30, 0.40),
			Combs:           []appearance.CombType{appearance.CombNone, appearance.CombBud},
			Tails:           []appearance.TailType{appearance.TailNone, appearance.TailNub},
			Nails:           []appearance.NailType{appearance.NailsSoft, appearance.NailsShort},
			Wattles:         []appearance.WattleType{appearance.WattleNone},
			Stances:         []appearance.Stance{appearance.StanceCrouched, appearance.StanceUpright},
			Sheens:          []appearance.Sheen{appearance.SheenNone, appearance.SheenMatte},
			Necks:           []appearance.NeckType{appearance.NeckDowny},
			Breasts:         []appearance.BreastType{appearance.BreastFlat},
			DefaultBodySize: appearance.SizeTiny,
			DefaultStance:   appearance.StanceCrouched,
			DefaultSheen:    appearance.SheenNone,
			FeatherTexture:  "fluffy down",
		},
		// Hatchling, rooster
		{
			BodyWidth:       r(0.20, 0.30, 0.40),
			BodyRoundness:   r(0.70, 0.80, 0.90),
			LegLength:       r(0.15, 0.25, 0.35),
			LegThickness:    r(0.10, 0.20, 0.30),
			TailLength:      r(0.00, 0.00, 0.00),
			TailAngle:       r(0.05, 0.20, 0.35),
			TailSpread:      r(0.00, 0.00, 0.00),
			CombSize:        r(0.00, 0.02, 0.12),
			BeakScale:       r(0.47, 0.55, 0.63),
			BeakCurvature:   r(0.12, 0.20, 0.28),
			NeckLength:      r(0.10, 0.20, 0.30),
			NeckThickness:   r(0.15, 0.25, 0.35),
			ChestDepth:      r(0.20, 0.30, 0.40),
			HackleLength:    r(0.00, 0.00, 0.00),
			SpurSize:        r(0.00, 0.00, 0.00),
			BoneThickness:   r(0.10, 0.20, 0.30),
			FeatherDensity:  r(0.20, 0.30, 0.40),
			Combs:           []appearance.CombType{appearance.CombNone, appearance.CombBud},
			Tails:           []appearance.TailType{appearance.TailNone, appearance.TailNub},
			Nails:           []appearance.NailType{appearance.NailsSoft, appearance.NailsShort},
			Wattles:         []appearance.WattleType{appearance.WattleNone},
			Stances:         []appearance.Stance{appearance.StanceCrouched, appearance.StanceUpright},
			Sheens:          []appearance.Sheen{appearance.SheenNone, appearance.SheenMatte},
			Necks:           []appearance.NeckType{appearance.NeckDowny},
			Breasts:         []appearance.BreastType{appearance.BreastFlat},
			DefaultBodySize: appearance.SizeTiny,
			DefaultStance:   appearance.StanceCrouched,
			DefaultSheen:    appearance.SheenNone,
			FeatherTexture:  "fluffy down",
		},
	},
	lifecycle.Chick: {
		// Chick, hen
		{
			BodyWidth:       r(0.26, 0.36, 0.46),
			BodyRoundness:   r(0.62, 0.72, 0.82),
			LegLength:       r(0.23, 0.33, 0.43),
			LegThickness:    r(0.15, 0.25, 0.35),
			TailLength:      r(0.00, 0.08, 0.18),
			TailAngle:       r(0.13, 0.28, 0.43),
			TailSpread:      r(0.00, 0.10, 0.20),
			CombSize:        r(0.00, 0.05, 0.15),
			BeakScale:       r(0.42, 0.50, 0.58),
			BeakCurvature:   r(0.16, 0.24, 0.32),
			NeckLength:      r(0.18, 0.28, 0.38),
			NeckThickness:   r(0.18, 0.28, 0.38),
			ChestDepth:      r(0.24, 0.34, 0.44),
			HackleLength:    r(0.00, 0.00, 0.00),
			SpurSize:        r(0.00, 0.00, 0.00),
			BoneThickness:   r(0.16, 0.26, 0.36),
			FeatherDensity:  r(0.35, 0.45, 0.55),
			Combs:           []appearance.CombType{appearance.CombNone, appearance.CombBud},
			Tails:           []appearance.TailType{appearance.TailNone, appearance.TailNub, appearance.TailFan},
			Nails:           []appearance.NailType{appearance.NailsSoft, appearance.NailsShort},
			Wattles:         []appearance.WattleType{appearance.WattleNone},
			Stances:         []appearance.Stance{appearance.StanceCrouched, appearance.StanceUpright, appearance.StanceAlert},
			Sheens:          []appearance.Sheen{appearance.SheenMatte},
			Necks:           []appearance.NeckType{appearance.NeckDowny, appearance.NeckShort},
			Breasts:         []appearance.BreastType{appearance.BreastFlat, appearance.BreastShallow},
			DefaultBodySize: appearance.SizeSmall,
			DefaultStance:   appearance.StanceAlert,
			DefaultSheen:    appearance.SheenMatte,
			FeatherTexture:  "down with pin feathers",
		},
		// Chick, rooster
		{
			BodyWidth:       r(0.28, 0.38, 0.48),
			BodyRoundness:   r(0.60, 0.70, 0.80),
			LegLength:       r(0.25, 0.35, 0.45),
			LegThickness:    r(0.18, 0.28, 0.38),
			TailLength:      r(0.00, 0.10, 0.20),
			TailAngle:       r(0.15, 0.30, 0.45),
			TailSpread:      r(0.00, 0.10, 0.20),
			CombSize:        r(0.00, 0.08, 0.18),
			BeakScale:       r(0.42, 0.50, 0.58),
			BeakCurvature:   r(0.17, 0.25, 0.33),
			NeckLength:      r(0.20, 0.30, 0.40),
			NeckThickness:   r(0.20, 0.30, 0.40),
			ChestDepth:      r(0.25, 0.35, 0.45),
			HackleLength:    r(0.00, 0.00, 0.00),
			SpurSize:        r(0.00, 0.00, 0.00),
			BoneThickness:   r(0.18, 0.28, 0.38),
			FeatherDensity:  r(0.35, 0.45, 0.55),
			Combs:           []appearance.CombType{appearance.CombNone, appearance.CombBud},
			Tails:           []appearance.TailType{appearance.TailNone, appearance.TailNub, appearance.TailFan},
			Nails:           []appearance.NailType{appearance.NailsSoft, appearance.NailsShort},
			Wattles:         []appearance.WattleType{appearance.WattleNone},
			Stances:         []appearance.Stance{appearance.StanceCrouched, appearance.StanceUpright, appearance.StanceAlert},
			Sheens:          []appearance.Sheen{appearance.SheenMatte},
			Necks:           []appearance.NeckType{appearance.NeckDowny, appearance.NeckShort},
			Breasts:         []appearance.BreastType{appearance.BreastFlat, appearance.BreastShallow},
			DefaultBodySize: appearance.SizeSmall,
			DefaultStance:   appearance.StanceAlert,
			DefaultSheen:    appearance.SheenMatte,
			FeatherTexture:  "down with pin feathers",
		},
	},
	lifecycle.Grower: {
		// Grower, hen
		{
			BodyWidth:       r(0.32, 0.42, 0.52),
			BodyRoundness:   r(0.50, 0.60, 0.70),
			LegLength:       r(0.35, 0.45, 0.55),
			LegThickness:    r(0.22, 0.32, 0.42),
			TailLength:      r(0.12, 0.22, 0.32),
			TailAngle:       r(0.25, 0.40, 0.55),
			TailSpread:      r(0.18, 0.28, 0.38),
			CombSize:        r(0.00, 0.10, 0.20),
			BeakScale:       r(0.38, 0.46, 0.54),
			BeakCurvature:   r(0.20, 0.28, 0.36),
			NeckLength:      r(0.30, 0.40, 0.50),
			NeckThickness:   r(0.24, 0.34, 0.44),
			ChestDepth:      r(0.30, 0.40, 0.50),
			HackleLength:    r(0.00, 0.05, 0.15),
			SpurSize:        r(0.00, 0.00, 0.00),
			BoneThickness:   r(0.25, 0.35, 0.45),
			FeatherDensity:  r(0.50, 0.60, 0.70),
			Combs:           []appearance.CombType{appearance.CombBud, appearance.CombSingle},
			Tails:           []appearance.TailType{appearance.TailNub, appearance.TailFan},
			Nails:           []appearance.NailType{appearance.NailsShort, appearance.NailsCurved},
			Wattles:         []appearance.WattleType{appearance.WattleNone, appearance.WattleSmall},
			Stances:         []appearance.Stance{appearance.StanceUpright, appearance.StanceAlert},
			Sheens:          []appearance.Sheen{appearance.SheenMatte, appearance.SheenSatin},
			Necks:           []appearance.NeckType{appearance.NeckShort, appearance.NeckMedium},
			Breasts:         []appearance.BreastType{appearance.BreastFlat, appearance.BreastShallow},
			DefaultBodySize: appearance.SizeSmall,
			DefaultStance:   appearance.StanceAlert,
			DefaultSheen:    appearance.SheenMatte,
			FeatherTexture:  "patchy juvenile feathers",
		},
		// Grower, rooster
		{
			BodyWidth:       r(0.35, 0.45, 0.55),
			BodyRoundness:   r(0.45, 0.55, 0.65),
			LegLength:       r(0.40, 0.50, 0.60),
			LegThickness:    r(0.28, 0.38, 0.48),
			TailLength:      r(0.20, 0.30, 0.40),
			TailAngle:       r(0.30, 0.45, 0.60),
			TailSpread:      r(0.20, 0.30, 0.40),
			CombSize:        r(0.15, 0.25, 0.35),
			BeakScale:       r(0.40, 0.48, 0.56),
			BeakCurvature:   r(0.22, 0.30, 0.38),
			NeckLength:      r(0.35, 0.45, 0.55),
			NeckThickness:   r(0.30, 0.40, 0.50),
			ChestDepth:      r(0.30, 0.40, 0.50),
			HackleLength:    r(0.00, 0.10, 0.20),
			SpurSize:        r(0.00, 0.00, 0.00),
			BoneThickness:   r(0.30, 0.40, 0.50),
			FeatherDensity:  r(0.50, 0.60, 0.70),
			Combs:           []appearance.CombType{appearance.CombBud, appearance.CombSingle},
			Tails:           []appearance.TailType{appearance.TailNub, appearance.TailFan},
			Nails:           []appearance.NailType{appearance.NailsShort, appearance.NailsCurved},
			Wattles:         []appearance.WattleType{appearance.WattleNone, appearance.WattleSmall},
			Stances:         []appearance.Stance{appearance.StanceUpright, appearance.StanceAlert},
			Sheens:          []appearance.Sheen{appearance.SheenMatte, appearance.SheenSatin},
			Necks:           []appearance.NeckType{appearance.NeckShort, appearance.NeckMedium},
			Breasts:         []appearance.BreastType{appearance.BreastFlat, appearance.BreastShallow},
			DefaultBodySize: appearance.SizeMedium,
			DefaultStance:   appearance.StanceAlert,
			DefaultSheen:    appearance.SheenMatte,
			FeatherTexture:  "patchy juvenile feathers",
		},
	},
	lifecycle.SubAdult: {
		// SubAdult, hen
		{
			BodyWidth:       r(0.38, 0.48, 0.58),
			BodyRoundness:   r(0.48, 0.58, 0.68),
			LegLength:       r(0.42, 0.52, 0.62),
			LegThickness:    r(0.28, 0.38, 0.48),
			TailLength:      r(0.25, 0.35, 0.45),
			TailAngle:       r(0.33, 0.48, 0.63),
			TailSpread:      r(0.30, 0.40, 0.50),
			CombSize:        r(0.10, 0.20, 0.30),
			BeakScale:       r(0.38, 0.46, 0.54),
			BeakCurvature:   r(0.24, 0.32, 0.40),
			NeckLength:      r(0.38, 0.48, 0.58),
			NeckThickness:   r(0.30, 0.40, 0.50),
			ChestDepth:      r(0.40, 0.50, 0.60),
			HackleLength:    r(0.02, 0.12, 0.22),
			SpurSize:        r(0.00, 0.00, 0.00),
			BoneThickness:   r(0.34, 0.44, 0.54),
			FeatherDensity:  r(0.62, 0.72, 0.82),
			Combs:           []appearance.CombType{appearance.CombBud, appearance.CombSingle, appearance.CombPea, appearance.CombRose},
			Tails:           []appearance.TailType{appearance.TailNub, appearance.TailFan, appearance.TailUpright},
			Nails:           []appearance.NailType{appearance.NailsShort, appearance.NailsCurved},
			Wattles:         []appearance.WattleType{appearance.WattleNone, appearance.WattleSmall, appearance.WattleMedium},
			Stances:         []appearance.Stance{appearance.StanceUpright, appearance.StanceAlert, appearance.StanceProud},
			Sheens:          []appearance.Sheen{appearance.SheenMatte, appearance.SheenSatin, appearance.SheenGlossy},
			Necks:           []appearance.NeckType{appearance.NeckShort, appearance.NeckMedium, appearance.NeckLong},
			Breasts:         []appearance.BreastType{appearance.BreastFlat, appearance.BreastShallow, appearance.BreastRounded, appearance.BreastDeep},
			DefaultBodySize: appearance.SizeMedium,
			DefaultStance:   appearance.StanceAlert,
			DefaultSheen:    appearance.SheenSatin,
			FeatherTexture:  "smooth juvenile plumage",
		},
		// SubAdult, rooster
		{
			BodyWidth:       r(0.42, 0.52, 0.62),
			BodyRoundness:   r(0.40, 0.50, 0.60),
			LegLength:       r(0.50, 0.60, 0.70),
			LegThickness:    r(0.38, 0.48, 0.58),
			TailLength:      r(0.45, 0.55, 0.65),
			TailAngle:       r(0.40, 0.55, 0.70),
			TailSpread:      r(0.35, 0.45, 0.55),
			CombSize:        r(0.40, 0.50, 0.60),
			BeakScale:       r(0.42, 0.50, 0.58),
			BeakCurvature:   r(0.27, 0.35, 0.43),
			NeckLength:      r(0.45, 0.55, 0.65),
			NeckThickness:   r(0.40, 0.50, 0.60),
			ChestDepth:      r(0.42, 0.52, 0.62),
			HackleLength:    r(0.25, 0.35, 0.45),
			SpurSize:        r(0.02, 0.10, 0.18),
			BoneThickness:   r(0.42, 0.52, 0.62),
			FeatherDensity:  r(0.62, 0.72, 0.82),
			Combs:           []appearance.CombType{appearance.CombBud, appearance.CombSingle, appearance.CombPea, appearance.CombRose, appearance.CombWalnut},
			Tails:           []appearance.TailType{appearance.TailNub, appearance.TailFan, appearance.TailUpright, appearance.TailSickle},
			Nails:           []appearance.NailType{appearance.NailsShort, appearance.NailsCurved, appearance.NailsSpurBud},
			Wattles:         []appearance.WattleType{appearance.WattleNone, appearance.WattleSmall, appearance.WattleMedium},
			Stances:         []appearance.Stance{appearance.StanceUpright, appearance.StanceAlert, appearance.StanceProud},
			Sheens:          []appearance.Sheen{appearance.SheenMatte, appearance.SheenSatin, appearance.SheenGlossy},
			Necks:           []appearance.NeckType{appearance.NeckShort, appearance.NeckMedium, appearance.NeckLong},
			Breasts:         []appearance.BreastType{appearance.BreastFlat, appearance.BreastShallow, appearance.BreastRounded, appearance.BreastDeep},
			DefaultBodySize: appearance.SizeMedium,
			DefaultStance:   appearance.StanceAlert,
			DefaultSheen:    appearance.SheenSatin,
			FeatherTexture:  "smooth juvenile plumage",
		},
	},
	lifecycle.Adult: {
		// Adult, hen
		{
			BodyWidth:       r(0.45, 0.55, 0.65),
			BodyRoundness:   r(0.52, 0.62, 0.72),
			LegLength:       r(0.44, 0.54, 0.64),
			LegThickness:    r(0.34, 0.44, 0.54),
			TailLength:      r(0.35, 0.45, 0.55),
			TailAngle:       r(0.40, 0.55, 0.70),
			TailSpread:      r(0.40, 0.50, 0.60),
			CombSize:        r(0.22, 0.32, 0.42),
			BeakScale:       r(0.40, 0.48, 0.56),
			BeakCurvature:   r(0.28, 0.36, 0.44),
			NeckLength:      r(0.42, 0.52, 0.62),
			NeckThickness:   r(0.35, 0.45, 0.55),
			ChestDepth:      r(0.52, 0.62, 0.72),
			HackleLength:    r(0.12, 0.22, 0.32),
			SpurSize:        r(0.00, 0.02, 0.10),
			BoneThickness:   r(0.42, 0.52, 0.62),
			FeatherDensity:  r(0.75, 0.85, 0.95),
			Combs:           []appearance.CombType{appearance.CombSingle, appearance.CombPea, appearance.CombRose, appearance.CombWalnut},
			Tails:           []appearance.TailType{appearance.TailFan, appearance.TailUpright},
			Nails:           []appearance.NailType{appearance.NailsShort, appearance.NailsCurved},
			Wattles:         []appearance.WattleType{appearance.WattleSmall, appearance.WattleMedium},
			Stances:         []appearance.Stance{appearance.StanceUpright, appearance.StanceAlert},
			Sheens:          []appearance.Sheen{appearance.SheenSatin, appearance.SheenGlossy},
			Necks:           []appearance.NeckType{appearance.NeckMedium, appearance.NeckLong},
			Breasts:         []appearance.BreastType{appearance.BreastRounded, appearance.BreastDeep},
			DefaultBodySize: appearance.SizeMedium,
			DefaultStance:   appearance.StanceUpright,
			DefaultSheen:    appearance.SheenGlossy,
			FeatherTexture:  "soft adult plumage",
		},
		// Adult, rooster
		{
			BodyWidth:       r(0.50, 0.60, 0.70),
			BodyRoundness:   r(0.45, 0.55, 0.65),
			LegLength:       r(0.52, 0.62, 0.72),
			LegThickness:    r(0.48, 0.58, 0.68),
			TailLength:      r(0.70, 0.80, 0.90),
			TailAngle:       r(0.50, 0.65, 0.80),
			TailSpread:      r(0.50, 0.60, 0.70),
			CombSize:        r(0.65, 0.75, 0.85),
			BeakScale:       r(0.44, 0.52, 0.60),
			BeakCurvature:   r(0.32, 0.40, 0.48),
			NeckLength:      r(0.50, 0.60, 0.70),
			NeckThickness:   r(0.50, 0.60, 0.70),
			ChestDepth:      r(0.58, 0.68, 0.78),
			HackleLength:    r(0.60, 0.70, 0.80),
			SpurSize:        r(0.32, 0.40, 0.48),
			BoneThickness:   r(0.52, 0.62, 0.72),
			FeatherDensity:  r(0.78, 0.88, 0.98),
			Combs:           []appearance.CombType{appearance.CombSingle, appearance.CombPea, appearance.CombRose, appearance.CombWalnut},
			Tails:           []appearance.TailType{appearance.TailFan, appearance.TailUpright, appearance.TailSickle, appearance.TailFlowing},
			Nails:           []appearance.NailType{appearance.NailsCurved, appearance.NailsSpurBud, appearance.NailsLongSpur},
			Wattles:         []appearance.WattleType{appearance.WattleSmall, appearance.WattleMedium, appearance.WattleLarge},
			Stances:         []appearance.Stance{appearance.StanceUpright, appearance.StanceAlert, appearance.StanceProud},
			Sheens:          []appearance.Sheen{appearance.SheenSatin, appearance.SheenGlossy, appearance.SheenIridescent},
			Necks:           []appearance.NeckType{appearance.NeckMedium, appearance.NeckLong},
			Breasts:         []appearance.BreastType{appearance.BreastRounded, appearance.BreastDeep},
			DefaultBodySize: appearance.SizeLarge,
			DefaultStance:   appearance.StanceProud,
			DefaultSheen:    appearance.SheenIridescent,
			FeatherTexture:  "hard adult plumage",
		},
	},
	lifecycle.MatureAdult: {
		// MatureAdult, hen
		{
			BodyWidth:       r(0.50, 0.60, 0.70),
			BodyRoundness:   r(0.56, 0.66, 0.76),
			LegLength:       r(0.44, 0.54, 0.64),
			LegThickness:    r(0.36, 0.46, 0.56),
			TailLength:      r(0.38, 0.48, 0.58),
			TailAngle:       r(0.41, 0.56, 0.71),
			TailSpread:      r(0.42, 0.52, 0.62),
			CombSize:        r(0.26, 0.36, 0.46),
			BeakScale:       r(0.42, 0.50, 0.58),
			BeakCurvature:   r(0.30, 0.38, 0.46),
			NeckLength:      r(0.43, 0.53, 0.63),
			NeckThickness:   r(0.37, 0.47, 0.57),
			ChestDepth:      r(0.56, 0.66, 0.76),
			HackleLength:    r(0.15, 0.25, 0.35),
			SpurSize:        r(0.00, 0.05, 0.13),
			BoneThickness:   r(0.45, 0.55, 0.65),
			FeatherDensity:  r(0.80, 0.90, 1.00),
			Combs:           []appearance.CombType{appearance.CombSingle, appearance.CombPea, appearance.CombRose, appearance.CombWalnut},
			Tails:           []appearance.TailType{appearance.TailFan, appearance.TailUpright},
			Nails:           []appearance.NailType{appearance.NailsShort, appearance.NailsCurved},
			Wattles:         []appearance.WattleType{appearance.WattleSmall, appearance.WattleMedium},
			Stances:         []appearance.Stance{appearance.StanceUpright, appearance.StanceAlert},
			Sheens:          []appearance.Sheen{appearance.SheenSatin, appearance.SheenGlossy},
			Necks:           []appearance.NeckType{appearance.NeckMedium, appearance.NeckLong},
			Breasts:         []appearance.BreastType{appearance.BreastRounded, appearance.BreastDeep},
			DefaultBodySize: appearance.SizeLarge,
			DefaultStance:   appearance.StanceUpright,
			DefaultSheen:    appearance.SheenGlossy,
			FeatherTexture:  "full glossy plumage",
		},
		// MatureAdult, rooster
		{
			BodyWidth:       r(0.54, 0.64, 0.74),
			BodyRoundness:   r(0.50, 0.60, 0.70),
			LegLength:       r(0.52, 0.62, 0.72),
			LegThickness:    r(0.52, 0.62, 0.72),
			TailLength:      r(0.80, 0.90, 1.00),
			TailAngle:       r(0.53, 0.68, 0.83),
			TailSpread:      r(0.55, 0.65, 0.75),
			CombSize:        r(0.75, 0.85, 0.95),
			BeakScale:       r(0.46, 0.54, 0.62),
			BeakCurvature:   r(0.34, 0.42, 0.50),
			NeckLength:      r(0.52, 0.62, 0.72),
			NeckThickness:   r(0.54, 0.64, 0.74),
			ChestDepth:      r(0.62, 0.72, 0.82),
			HackleLength:    r(0.68, 0.78, 0.88),
			SpurSize:        r(0.57, 0.65, 0.73),
			BoneThickness:   r(0.56, 0.66, 0.76),
			FeatherDensity:  r(0.82, 0.92, 1.00),
			Combs:           []appearance.CombType{appearance.CombSingle, appearance.CombPea, appearance.CombRose, appearance.CombWalnut},
			Tails:           []appearance.TailType{appearance.TailFan, appearance.TailUpright, appearance.TailSickle, appearance.TailFlowing},
			Nails:           []appearance.NailType{appearance.NailsCurved, appearance.NailsSpurBud, appearance.NailsLongSpur},
			Wattles:         []appearance.WattleType{appearance.WattleSmall, appearance.WattleMedium, appearance.WattleLarge},
			Stances:         []appearance.Stance{appearance.StanceUpright, appearance.StanceAlert, appearance.StanceProud},
			Sheens:          []appearance.Sheen{appearance.SheenSatin, appearance.SheenGlossy, appearance.SheenIridescent},
			Necks:           []appearance.NeckType{appearance.NeckMedium, appearance.NeckLong},
			Breasts:         []appearance.BreastType{appearance.BreastRounded, appearance.BreastDeep},
			DefaultBodySize: appearance.SizeXLarge,
			DefaultStance:   appearance.StanceProud,
			DefaultSheen:    appearance.SheenGlossy,
			FeatherTexture:  "full glossy plumage",
		},
	},
	lifecycle.Senior: {
		// Senior, hen
		{
			BodyWidth:       r(0.48, 0.58, 0.68),
			BodyRoundness:   r(0.58, 0.68, 0.78),
			LegLength:       r(0.42, 0.52, 0.62),
			LegThickness:    r(0.35, 0.45, 0.55),
			TailLength:      r(0.34, 0.44, 0.54),
			TailAngle:       r(0.35, 0.50, 0.65),
			TailSpread:      r(0.38, 0.48, 0.58),
			CombSize:        r(0.20, 0.30, 0.40),
			BeakScale:       r(0.44, 0.52, 0.60),
			BeakCurvature:   r(0.34, 0.42, 0.50),
			NeckLength:      r(0.40, 0.50, 0.60),
			NeckThickness:   r(0.35, 0.45, 0.55),
			ChestDepth:      r(0.50, 0.60, 0.70),
			HackleLength:    r(0.12, 0.22, 0.32),
			SpurSize:        r(0.00, 0.08, 0.16),
			BoneThickness:   r(0.42, 0.52, 0.62),
			FeatherDensity:  r(0.65, 0.75, 0.85),
			Combs:           []appearance.CombType{appearance.CombSingle, appearance.CombPea, appearance.CombRose, appearance.CombWalnut},
			Tails:           []appearance.TailType{appearance.TailFan, appearance.TailUpright},
			Nails:           []appearance.NailType{appearance.NailsShort, appearance.NailsCurved},
			Wattles:         []appearance.WattleType{appearance.WattleSmall, appearance.WattleMedium},
			Stances:         []appearance.Stance{appearance.StanceUpright, appearance.StanceAlert, appearance.StanceStooped},
			Sheens:          []appearance.Sheen{appearance.SheenMatte, appearance.SheenSatin},
			Necks:           []appearance.NeckType{appearance.NeckMedium, appearance.NeckLong},
			Breasts:         []appearance.BreastType{appearance.BreastRounded, appearance.BreastDeep},
			DefaultBodySize: appearance.SizeMedium,
			DefaultStance:   appearance.StanceStooped,
			DefaultSheen:    appearance.SheenMatte,
			FeatherTexture:  "worn, faded plumage",
		},
		// Senior, rooster
		{
			BodyWidth:       r(0.52, 0.62, 0.72),
			BodyRoundness:   r(0.52, 0.62, 0.72),
			LegLength:       r(0.50, 0.60, 0.70),
			LegThickness:    r(0.50, 0.60, 0.70),
			TailLength:      r(0.72, 0.82, 0.92),
			TailAngle:       r(0.40, 0.55, 0.70),
			TailSpread:      r(0.48, 0.58, 0.68),
			CombSize:        r(0.70, 0.80, 0.90),
			BeakScale:       r(0.48, 0.56, 0.64),
			BeakCurvature:   r(0.37, 0.45, 0.53),
			NeckLength:      r(0.48, 0.58, 0.68),
			NeckThickness:   r(0.50, 0.60, 0.70),
			ChestDepth:      r(0.55, 0.65, 0.75),
			HackleLength:    r(0.60, 0.70, 0.80),
			SpurSize:        r(0.72, 0.80, 0.88),
			BoneThickness:   r(0.52, 0.62, 0.72),
			FeatherDensity:  r(0.68, 0.78, 0.88),
			Combs:           []appearance.CombType{appearance.CombSingle, appearance.CombPea, appearance.CombRose, appearance.CombWalnut},
			Tails:           []appearance.TailType{appearance.TailFan, appearance.TailUpright, appearance.TailSickle, appearance.TailFlowing},
			Nails:           []appearance.NailType{appearance.NailsCurved, appearance.NailsSpurBud, appearance.NailsLongSpur},
			Wattles:         []appearance.WattleType{appearance.WattleSmall, appearance.WattleMedium, appearance.WattleLarge},
			Stances:         []appearance.Stance{appearance.StanceUpright, appearance.StanceAlert, appearance.StanceStooped},
			Sheens:          []appearance.Sheen{appearance.SheenMatte, appearance.SheenSatin},
			Necks:           []appearance.NeckType{appearance.NeckMedium, appearance.NeckLong},
			Breasts:         []appearance.BreastType{appearance.BreastRounded, appearance.BreastDeep},
			DefaultBodySize: appearance.SizeLarge,
			DefaultStance:   appearance.StanceStooped,
			DefaultSheen:    appearance.SheenMatte,
			FeatherTexture:  "worn, faded plumage",
		},
	},
}
