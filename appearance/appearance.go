// Package appearance defines the value the renderer draws a bird from.
// The lifecycle engine reads an Appearance and returns modified copies of it.
package appearance

// Dimension identifies one continuous morph slider.
type Dimension uint8

const (
	BodyWidth Dimension = iota
	BodyRoundness
	LegLength
	LegThickness
	TailLength
	TailAngle
	TailSpread
	CombSize
	BeakScale
	BeakCurvature
	NeckLength
	NeckThickness
	ChestDepth
	HackleLength
	SpurSize
	BoneThickness
	FeatherDensity

	NumDimensions
)

var dimensionNames = [NumDimensions]string{
	"body_width", "body_roundness", "leg_length", "leg_thickness",
	"tail_length", "tail_angle", "tail_spread", "comb_size",
	"beak_scale", "beak_curvature", "neck_length", "neck_thickness",
	"chest_depth", "hackle_length", "spur_size", "bone_thickness",
	"feather_density",
}

func (d Dimension) String() string {
	if d < NumDimensions {
		return dimensionNames[d]
	}
	return "unknown"
}

// Dimensions lists every morph dimension in declaration order.
func Dimensions() []Dimension {
	dims := make([]Dimension, NumDimensions)
	for i := range dims {
		dims[i] = Dimension(i)
	}
	return dims
}

// Appearance is the full visual description of one bird.
// Continuous fields are normalized to [0,1].
type Appearance struct {
	BodyWidth      float64
	BodyRoundness  float64
	LegLength      float64
	LegThickness   float64
	TailLength     float64
	TailAngle      float64
	TailSpread     float64
	CombSize       float64
	BeakScale      float64
	BeakCurvature  float64
	NeckLength     float64
	NeckThickness  float64
	ChestDepth     float64
	HackleLength   float64
	SpurSize       float64
	BoneThickness  float64
	FeatherDensity float64

	Comb     CombType
	Tail     TailType
	Nails    NailType
	Wattle   WattleType
	Stance   Stance
	Sheen    Sheen
	Neck     NeckType
	Breast   BreastType
	Back     BackType
	Legs     LegType
	Wings    WingType
	BodySize BodySize

	// Colouring is owned by the player and never touched by the lifecycle engine.
	PrimaryColor   string
	SecondaryColor string
	AccentColor    string
	EyeColor       string
	Pattern        string
}

// Default returns a mid-range adult look with neutral colouring.
func Default() Appearance {
	return Appearance{
		BodyWidth:      0.5,
		BodyRoundness:  0.5,
		LegLength:      0.5,
		LegThickness:   0.5,
		TailLength:     0.5,
		TailAngle:      0.5,
		TailSpread:     0.5,
		CombSize:       0.5,
		BeakScale:      0.5,
		BeakCurvature:  0.3,
		NeckLength:     0.5,
		NeckThickness:  0.5,
		ChestDepth:     0.5,
		HackleLength:   0.5,
		SpurSize:       0.3,
		BoneThickness:  0.5,
		FeatherDensity: 0.8,

		Comb:     CombSingle,
		Tail:     TailUpright,
		Nails:    NailsCurved,
		Wattle:   WattleMedium,
		Stance:   StanceUpright,
		Sheen:    SheenGlossy,
		Neck:     NeckMedium,
		Breast:   BreastRounded,
		Back:     BackSloped,
		Legs:     LegsScaled,
		Wings:    WingsFolded,
		BodySize: SizeMedium,

		PrimaryColor:   "#b5651d",
		SecondaryColor: "#2f1b0c",
		AccentColor:    "#c0392b",
		EyeColor:       "#e67e22",
		Pattern:        "solid",
	}
}

// Ref returns a pointer to the field backing dimension d, or nil for an unknown dimension.
func (a *Appearance) Ref(d Dimension) *float64 {
	switch d {
	case BodyWidth:
		return &a.BodyWidth
	case BodyRoundness:
		return &a.BodyRoundness
	case LegLength:
		return &a.LegLength
	case LegThickness:
		return &a.LegThickness
	case TailLength:
		return &a.TailLength
	case TailAngle:
		return &a.TailAngle
	case TailSpread:
		return &a.TailSpread
	case CombSize:
		return &a.CombSize
	case BeakScale:
		return &a.BeakScale
	case BeakCurvature:
		return &a.BeakCurvature
	case NeckLength:
		return &a.NeckLength
	case NeckThickness:
		return &a.NeckThickness
	case ChestDepth:
		return &a.ChestDepth
	case HackleLength:
		return &a.HackleLength
	case SpurSize:
		return &a.SpurSize
	case BoneThickness:
		return &a.BoneThickness
	case FeatherDensity:
		return &a.FeatherDensity
	}
	return nil
}

// Value returns the current value of dimension d.
func (a Appearance) Value(d Dimension) float64 {
	if p := a.Ref(d); p != nil {
		return *p
	}
	return 0
}
