package growth

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Prediction methods.
const (
	MethodInsufficient = "Insufficient data"
	MethodLinearTrend  = "Linear trend"
	MethodRegression   = "Linear regression"
)

const (
	minConfidence = 0.3
	maxConfidence = 0.95
)

// Prediction is a projected weight at a future age.
type Prediction struct {
	TargetAgeDays  int
	PredictedGrams float64
	IdealGrams     float64
	Confidence     float64
	Method         string
}

// Sample is one recorded weight.
type Sample struct {
	AgeDays int
	Grams   float64
}

func insufficient(targetAge int, grams float64, isMale bool) Prediction {
	return Prediction{
		TargetAgeDays:  targetAge,
		PredictedGrams: grams,
		IdealGrams:     IdealWeight(targetAge, isMale),
		Method:         MethodInsufficient,
	}
}

// finish floors the prediction at the latest known weight and scores it against
// the curve.
func finish(targetAge int, predicted, current float64, isMale bool, method string) Prediction {
	predicted = max(predicted, current)
	ideal := IdealWeight(targetAge, isMale)
	conf := 1 - math.Abs(predicted-ideal)/ideal
	return Prediction{
		TargetAgeDays:  targetAge,
		PredictedGrams: predicted,
		IdealGrams:     ideal,
		Confidence:     min(max(conf, minConfidence), maxConfidence),
		Method:         method,
	}
}

// PredictFutureWeight extends the gain between two recorded weights to targetAge.
// The prediction never drops below the current weight.
func PredictFutureWeight(currentAge int, currentGrams, previousGrams float64, previousAge, targetAge int, isMale bool) Prediction {
	daysDiff := currentAge - previousAge
	if daysDiff <= 0 {
		return insufficient(targetAge, currentGrams, isMale)
	}
	dailyGain := (currentGrams - previousGrams) / float64(daysDiff)
	predicted := currentGrams + dailyGain*float64(targetAge-currentAge)
	return finish(targetAge, predicted, currentGrams, isMale, MethodLinearTrend)
}

// PredictFromHistory fits a least-squares line through every sample. At least two
// distinct ages are needed; otherwise the latest weight is returned with zero
// confidence.
func PredictFromHistory(samples []Sample, targetAge int, isMale bool) Prediction {
	if len(samples) == 0 {
		return insufficient(targetAge, 0, isMale)
	}

	xs := make([]float64, len(samples))
	ys := make([]float64, len(samples))
	latest := samples[0]
	for i, s := range samples {
		xs[i], ys[i] = float64(s.AgeDays), s.Grams
		if s.AgeDays >= latest.AgeDays {
			latest = s
		}
	}
	if floats.Min(xs) == floats.Max(xs) {
		return insufficient(targetAge, latest.Grams, isMale)
	}

	alpha, beta := stat.LinearRegression(xs, ys, nil, false)
	predicted := alpha + beta*float64(targetAge)
	return finish(targetAge, predicted, latest.Grams, isMale, MethodRegression)
}
