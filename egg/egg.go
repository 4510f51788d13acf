// Package egg describes the visible state of an egg during incubation.
package egg

import (
	"fmt"
	"time"
)

// IncubationDays is the standard incubation period for chicken eggs.
const IncubationDays = 21

// Incubation thresholds.
const (
	CandleDay       = 7    // First day veins are visible when candling
	LockdownDay     = 18   // Turning stops, humidity goes up
	MinOptimalTempC = 37.0 // Below this development slows
	MaxOptimalTempC = 38.0 // Above this embryos overheat

	fertileHatchChance = 0.85
	unknownHatchChance = 0.5
	offTempPenalty     = 0.6
)

// ShellColor is the shell colour of the egg.
type ShellColor uint8

const (
	ShellWhite ShellColor = iota
	ShellCream
	ShellBrown
	ShellDarkBrown
	ShellBlue
	ShellGreen
)

var shellNames = [...]string{"white", "cream", "brown", "dark_brown", "blue", "green"}

func (c ShellColor) String() string { return name(shellNames[:], c) }

// Fertility is what is known about whether the egg is fertile.
type Fertility uint8

const (
	FertilityUnknown Fertility = iota
	Fertile
	Infertile
)

var fertilityNames = [...]string{"unknown", "fertile", "infertile"}

func (f Fertility) String() string { return name(fertilityNames[:], f) }

// TemperatureStatus classifies the incubator temperature.
type TemperatureStatus uint8

const (
	TempUnknown TemperatureStatus = iota
	TempOptimal
	TempTooCold
	TempTooHot
)

var tempNames = [...]string{"unknown", "optimal", "too_cold", "too_hot"}

func (t TemperatureStatus) String() string { return name(tempNames[:], t) }

// CandlingResult is what shows when the egg is held to a light.
type CandlingResult uint8

const (
	NotCandled CandlingResult = iota
	Developing
	Clear
	Unclear
	Lockdown
)

var candlingNames = [...]string{"not_candled", "developing", "clear", "unclear", "lockdown"}

func (c CandlingResult) String() string { return name(candlingNames[:], c) }

// Profile is the visual and predictive state of one egg.
type Profile struct {
	ShellColor         ShellColor
	Fertility          Fertility
	IncubationProgress float64 // [0,1]
	IncubationDays     int
	HatchProbability   float64 // [0,1]
	Temperature        TemperatureStatus
	Candling           CandlingResult
	PredictedHatch     *time.Time
}

// Incubation is the raw input describing an egg under incubation.
type Incubation struct {
	Shell        ShellColor
	Fertility    Fertility
	Day          int       // Days since incubation started
	TemperatureC float64   // Latest reading; 0 when unknown
	StartedAt    time.Time // Zero when unknown
}

// FromIncubation derives an egg profile from incubation inputs.
func FromIncubation(in Incubation) Profile {
	day := max(in.Day, 0)
	temp := classifyTemperature(in.TemperatureC)

	p := Profile{
		ShellColor:         in.Shell,
		Fertility:          in.Fertility,
		IncubationDays:     day,
		IncubationProgress: clamp01(float64(day) / IncubationDays),
		Temperature:        temp,
		Candling:           candle(day, in.Fertility),
		HatchProbability:   hatchProbability(in.Fertility, temp),
	}

	if !in.StartedAt.IsZero() && in.Fertility != Infertile {
		hatch := in.StartedAt.AddDate(0, 0, IncubationDays)
		p.PredictedHatch = &hatch
	}
	return p
}

// DaysUntilHatch returns the remaining incubation days, never negative.
func (p Profile) DaysUntilHatch() int {
	return max(IncubationDays-p.IncubationDays, 0)
}

// ReadyToHatch reports whether a viable egg has completed incubation.
func (p Profile) ReadyToHatch() bool {
	return p.IncubationDays >= IncubationDays && p.Fertility != Infertile
}

func (p Profile) String() string {
	return fmt.Sprintf("%s egg day %d/%d (%s, %.0f%% hatch chance)",
		p.ShellColor, p.IncubationDays, IncubationDays, p.Candling, p.HatchProbability*100)
}

func classifyTemperature(c float64) TemperatureStatus {
	switch {
	case c == 0:
		return TempUnknown
	case c < MinOptimalTempC:
		return TempTooCold
	case c > MaxOptimalTempC:
		return TempTooHot
	default:
		return TempOptimal
	}
}

func candle(day int, f Fertility) CandlingResult {
	if day < CandleDay {
		return NotCandled
	}
	switch f {
	case Infertile:
		return Clear
	case Fertile:
		if day >= LockdownDay {
			return Lockdown
		}
		return Developing
	default:
		return Unclear
	}
}

func hatchProbability(f Fertility, temp TemperatureStatus) float64 {
	var p float64
	switch f {
	case Fertile:
		p = fertileHatchChance
	case FertilityUnknown:
		p = unknownHatchChance
	default:
		return 0
	}
	if temp == TempTooCold || temp == TempTooHot {
		p *= offTempPenalty
	}
	return p
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

// ParseShellColor parses the String form of a shell colour.
func ParseShellColor(s string) (ShellColor, error) {
	return parse[ShellColor](shellNames[:], "shell colour", s)
}

// ParseFertility parses the String form of a fertility status.
func ParseFertility(s string) (Fertility, error) {
	return parse[Fertility](fertilityNames[:], "fertility", s)
}

func parse[T ~uint8](names []string, what, s string) (T, error) {
	for i, n := range names {
		if n == s {
			return T(i), nil
		}
	}
	return 0, fmt.Errorf("unknown %s %q", what, s)
}

func name[T ~uint8](names []string, v T) string {
	if int(v) < len(names) {
		return names[v]
	}
	return "unknown"
}
