package growth

import (
	"log/slog"
	"math"
)

// Rating grades a recorded weight against the expected band.
type Rating uint8

const (
	Underweight Rating = iota
	Fair
	Good
	Excellent
	Overweight
)

var ratingNames = [...]string{"underweight", "fair", "good", "excellent", "overweight"}

func (r Rating) String() string {
	if int(r) < len(ratingNames) {
		return ratingNames[r]
	}
	return "unknown"
}

// Healthy reports whether the weight is inside the expected band.
func (r Rating) Healthy() bool {
	return r != Underweight && r != Overweight
}

// Evaluation is the result of comparing a recorded weight with the curve.
type Evaluation struct {
	Expectation
	ActualGrams      float64
	Ratio            float64
	Rating           Rating
	DeviationPercent int
}

// EvaluateWeight rates actualGrams for a bird of the given age and sex.
func EvaluateWeight(ageDays int, actualGrams float64, isMale bool) Evaluation {
	e := ExpectedWeight(ageDays, isMale)
	ratio := actualGrams / e.IdealGrams

	var rating Rating
	switch {
	case actualGrams < e.MinGrams:
		rating = Underweight
	case actualGrams > e.MaxGrams:
		rating = Overweight
	case ratio >= 0.95 && ratio <= 1.05:
		rating = Excellent
	case ratio >= 0.90 && ratio <= 1.10:
		rating = Good
	default:
		rating = Fair
	}

	return Evaluation{
		Expectation:      e,
		ActualGrams:      actualGrams,
		Ratio:            ratio,
		Rating:           rating,
		DeviationPercent: int(math.Round((ratio - 1) * 100)),
	}
}

// LogValue implements slog.LogValuer.
func (e Evaluation) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("age_days", e.AgeDays),
		slog.Float64("actual_g", e.ActualGrams),
		slog.Float64("ideal_g", e.IdealGrams),
		slog.String("rating", e.Rating.String()),
		slog.Int("deviation_pct", e.DeviationPercent),
	)
}
