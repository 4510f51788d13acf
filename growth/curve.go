// Package growth models the expected weight of a bird over its life and rates
// recorded weights against it.
package growth

import (
	"iter"

	"gonum.org/v1/gonum/interp"
)

const (
	// FemaleRatio scales the rooster curve to a hen's.
	FemaleRatio = 0.72

	minRatio = 0.80
	maxRatio = 1.15
)

// roosterCurve holds reference weights in grams by age in days.
var roosterCurve = [...]struct {
	day   float64
	grams float64
}{
	{0, 35}, {7, 75}, {14, 140}, {21, 230}, {28, 340}, {35, 460}, {42, 580},
	{56, 800}, {70, 1000}, {84, 1170}, {98, 1300}, {112, 1400},
	{140, 1800}, {168, 2200}, {196, 2600}, {224, 2950}, {252, 3250}, {280, 3500},
	{365, 4000}, {455, 4400}, {548, 4700}, {640, 4900}, {730, 5000},
}

var curve = fitCurve()

func fitCurve() interp.PiecewiseLinear {
	xs := make([]float64, len(roosterCurve))
	ys := make([]float64, len(roosterCurve))
	for i, p := range roosterCurve {
		xs[i], ys[i] = p.day, p.grams
	}
	var pl interp.PiecewiseLinear
	if err := pl.Fit(xs, ys); err != nil {
		panic("growth: invalid reference curve: " + err.Error())
	}
	return pl
}

// CurveDays is the last age covered by the reference table.
func CurveDays() int {
	return int(roosterCurve[len(roosterCurve)-1].day)
}

// IdealWeight returns the reference weight in grams. Ages outside the table
// clamp to its ends.
func IdealWeight(ageDays int, isMale bool) float64 {
	x := min(max(float64(ageDays), roosterCurve[0].day), roosterCurve[len(roosterCurve)-1].day)
	w := curve.Predict(x)
	if !isMale {
		w *= FemaleRatio
	}
	return w
}

// Expectation is the acceptable weight band at one age.
type Expectation struct {
	AgeDays    int
	IdealGrams float64
	MinGrams   float64
	MaxGrams   float64
}

// ExpectedWeight returns the weight band for a bird of the given age and sex.
func ExpectedWeight(ageDays int, isMale bool) Expectation {
	ideal := IdealWeight(ageDays, isMale)
	return Expectation{
		AgeDays:    ageDays,
		IdealGrams: ideal,
		MinGrams:   ideal * minRatio,
		MaxGrams:   ideal * maxRatio,
	}
}

// CurvePoint is one sampled row of the reference curve.
type CurvePoint struct {
	AgeDays    int     `csv:"age_days"`
	Male       bool    `csv:"male"`
	IdealGrams float64 `csv:"ideal_grams"`
	MinGrams   float64 `csv:"min_grams"`
	MaxGrams   float64 `csv:"max_grams"`
}

// Curve samples the reference curve from day 0 to maxDays every stepDays.
// A step below one day is treated as one.
func Curve(isMale bool, maxDays, stepDays int) iter.Seq[CurvePoint] {
	stepDays = max(stepDays, 1)
	return func(yield func(CurvePoint) bool) {
		for age := 0; age <= maxDays; age += stepDays {
			e := ExpectedWeight(age, isMale)
			pt := CurvePoint{
				AgeDays:    age,
				Male:       isMale,
				IdealGrams: e.IdealGrams,
				MinGrams:   e.MinGrams,
				MaxGrams:   e.MaxGrams,
			}
			if !yield(pt) {
				return
			}
		}
	}
}
