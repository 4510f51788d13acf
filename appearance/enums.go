package appearance

// Categorical selectors. Every enumeration is ordered from the least developed
// variant to the most developed one; the zero value is the minimal variant.

// CombType is the shape of the comb on top of the head.
type CombType uint8

const (
	CombNone CombType = iota
	CombBud
	CombSingle
	CombPea
	CombRose
	CombWalnut
)

var combNames = [...]string{"none", "bud", "single", "pea", "rose", "walnut"}

func (c CombType) String() string { return enumName(combNames[:], c) }

// TailType is the silhouette of the tail feathers.
type TailType uint8

const (
	TailNone TailType = iota
	TailNub
	TailFan
	TailUpright
	TailSickle
	TailFlowing
)

var tailNames = [...]string{"none", "nub", "fan", "upright", "sickle", "flowing"}

func (t TailType) String() string { return enumName(tailNames[:], t) }

// NailType covers toe nails and spur development.
type NailType uint8

const (
	NailsSoft NailType = iota
	NailsShort
	NailsCurved
	NailsSpurBud
	NailsLongSpur
)

var nailNames = [...]string{"soft", "short", "curved", "spur_bud", "long_spur"}

func (n NailType) String() string { return enumName(nailNames[:], n) }

// WattleType is the size of the wattles under the beak.
type WattleType uint8

const (
	WattleNone WattleType = iota
	WattleSmall
	WattleMedium
	WattleLarge
)

var wattleNames = [...]string{"none", "small", "medium", "large"}

func (w WattleType) String() string { return enumName(wattleNames[:], w) }

// Stance is the overall posture.
type Stance uint8

const (
	StanceCrouched Stance = iota
	StanceUpright
	StanceAlert
	StanceProud
	StanceStooped
)

var stanceNames = [...]string{"crouched", "upright", "alert", "proud", "stooped"}

func (s Stance) String() string { return enumName(stanceNames[:], s) }

// Sheen is the feather surface finish.
type Sheen uint8

const (
	SheenNone Sheen = iota
	SheenMatte
	SheenSatin
	SheenGlossy
	SheenIridescent
)

var sheenNames = [...]string{"none", "matte", "satin", "glossy", "iridescent"}

func (s Sheen) String() string { return enumName(sheenNames[:], s) }

// NeckType is the neck silhouette.
type NeckType uint8

const (
	NeckDowny NeckType = iota
	NeckShort
	NeckMedium
	NeckLong
)

var neckNames = [...]string{"downy", "short", "medium", "long"}

func (n NeckType) String() string { return enumName(neckNames[:], n) }

// BreastType is the breast profile.
type BreastType uint8

const (
	BreastFlat BreastType = iota
	BreastShallow
	BreastRounded
	BreastDeep
)

var breastNames = [...]string{"flat", "shallow", "rounded", "deep"}

func (b BreastType) String() string { return enumName(breastNames[:], b) }

// BackType is the back line and saddle feathering.
type BackType uint8

const (
	BackDowny BackType = iota
	BackFlat
	BackSloped
	BackHackle
)

var backNames = [...]string{"downy", "flat", "sloped", "hackle"}

func (b BackType) String() string { return enumName(backNames[:], b) }

// LegType is the leg shape.
type LegType uint8

const (
	LegsStubby LegType = iota
	LegsSlender
	LegsScaled
	LegsSpurred
)

var legNames = [...]string{"stubby", "slender", "scaled", "spurred"}

func (l LegType) String() string { return enumName(legNames[:], l) }

// WingType is how the wings sit against the body.
type WingType uint8

const (
	WingsDowny WingType = iota
	WingsLoose
	WingsFolded
	WingsTight
)

var wingNames = [...]string{"downy", "loose", "folded", "tight"}

func (w WingType) String() string { return enumName(wingNames[:], w) }

// BodySize is the coarse size class used for sprite selection.
type BodySize uint8

const (
	SizeTiny BodySize = iota
	SizeSmall
	SizeMedium
	SizeLarge
	SizeXLarge
)

var sizeNames = [...]string{"tiny", "small", "medium", "large", "xlarge"}

func (s BodySize) String() string { return enumName(sizeNames[:], s) }

func enumName[T ~uint8](names []string, v T) string {
	if int(v) < len(names) {
		return names[v]
	}
	return "unknown"
}
