package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/roost/flock"
	"github.com/pthm-cable/roost/growth"
)

// WeightStats summarizes how the weighed birds of a flock compare with the curve.
type WeightStats struct {
	Day     int `csv:"day"`
	Birds   int `csv:"birds"`
	Eggs    int `csv:"eggs"`
	Weighed int `csv:"weighed"`

	// Ratio of recorded to ideal weight
	RatioMean float64 `csv:"ratio_mean"`
	RatioStd  float64 `csv:"ratio_std"`
	RatioP10  float64 `csv:"ratio_p10"`
	RatioP50  float64 `csv:"ratio_p50"`
	RatioP90  float64 `csv:"ratio_p90"`

	Underweight int `csv:"underweight"`
	Overweight  int `csv:"overweight"`
}

// Percentile returns the p-th quantile of a sorted slice, interpolating the
// empirical CDF. p is clamped to [0, 1]. Returns 0 if slice is empty.
func Percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	return stat.Quantile(min(max(p, 0), 1), stat.LinInterp, sorted, nil)
}

// ComputeRatioStats calculates mean, std, and percentiles from weight ratios.
func ComputeRatioStats(values []float64) (mean, std, p10, p50, p90 float64) {
	n := len(values)
	if n == 0 {
		return 0, 0, 0, 0, 0
	}

	mean, std = stat.PopMeanStdDev(values, nil)

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	p10 = Percentile(sorted, 0.10)
	p50 = Percentile(sorted, 0.50)
	p90 = Percentile(sorted, 0.90)

	return mean, std, p10, p50, p90
}

// ComputeWeightStats summarizes flock reports for one day.
func ComputeWeightStats(day int, reports []flock.Report) WeightStats {
	s := WeightStats{Day: day}
	var ratios []float64
	for _, r := range reports {
		if r.Egg != nil {
			s.Eggs++
			continue
		}
		s.Birds++
		if r.Evaluation == nil {
			continue
		}
		s.Weighed++
		ratios = append(ratios, r.Evaluation.Ratio)
		switch r.Evaluation.Rating {
		case growth.Underweight:
			s.Underweight++
		case growth.Overweight:
			s.Overweight++
		}
	}
	s.RatioMean, s.RatioStd, s.RatioP10, s.RatioP50, s.RatioP90 = ComputeRatioStats(ratios)
	return s
}

// LogValue implements slog.LogValuer for structured logging.
func (s WeightStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("day", s.Day),
		slog.Int("birds", s.Birds),
		slog.Int("eggs", s.Eggs),
		slog.Int("weighed", s.Weighed),
		slog.Float64("ratio_mean", s.RatioMean),
		slog.Float64("ratio_p10", s.RatioP10),
		slog.Float64("ratio_p50", s.RatioP50),
		slog.Float64("ratio_p90", s.RatioP90),
		slog.Int("underweight", s.Underweight),
		slog.Int("overweight", s.Overweight),
	)
}
