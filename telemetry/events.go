// Package telemetry writes engine and flock output as CSV and summarizes flock health.
package telemetry

import (
	"strings"

	"github.com/pthm-cable/roost/flock"
	"github.com/pthm-cable/roost/growth"
	"github.com/pthm-cable/roost/morph"
)

// TimelineRow is one growth timeline snapshot.
type TimelineRow struct {
	AgeDays         int     `csv:"age_days"`
	Stage           string  `csv:"stage"`
	MaturityIndex   float64 `csv:"maturity_index"`
	MaturityPercent int     `csv:"maturity_pct"`
	FeatherTexture  string  `csv:"feather_texture"`
	Features        string  `csv:"features"`
	Comb            string  `csv:"comb"`
	Tail            string  `csv:"tail"`
	Nails           string  `csv:"nails"`
	BodyWidth       float64 `csv:"body_width"`
	LegLength       float64 `csv:"leg_length"`
	HackleLength    float64 `csv:"hackle_length"`
	SpurSize        float64 `csv:"spur_size"`
	FeatherDensity  float64 `csv:"feather_density"`
}

// NewTimelineRow flattens a snapshot.
func NewTimelineRow(s morph.GrowthSnapshot) TimelineRow {
	a := s.Appearance
	return TimelineRow{
		AgeDays:         s.AgeDays,
		Stage:           s.Stage.String(),
		MaturityIndex:   s.MaturityIndex,
		MaturityPercent: s.Summary.MaturityPercent,
		FeatherTexture:  s.Summary.FeatherTexture,
		Features:        strings.Join(s.Summary.Features, ";"),
		Comb:            a.Comb.String(),
		Tail:            a.Tail.String(),
		Nails:           a.Nails.String(),
		BodyWidth:       a.BodyWidth,
		LegLength:       a.LegLength,
		HackleLength:    a.HackleLength,
		SpurSize:        a.SpurSize,
		FeatherDensity:  a.FeatherDensity,
	}
}

// TransitionRow is one notable change between two ages.
type TransitionRow struct {
	FromDays    int     `csv:"from_days"`
	ToDays      int     `csv:"to_days"`
	Kind        string  `csv:"kind"`
	Feature     string  `csv:"feature"`
	Description string  `csv:"description"`
	From        float64 `csv:"from"`
	To          float64 `csv:"to"`
}

// NewTransitionRows flattens the changes between two ages.
func NewTransitionRows(fromDays, toDays int, changes []morph.MorphChange) []TransitionRow {
	rows := make([]TransitionRow, 0, len(changes))
	for _, c := range changes {
		rows = append(rows, TransitionRow{
			FromDays:    fromDays,
			ToDays:      toDays,
			Kind:        c.Kind.String(),
			Feature:     c.Feature,
			Description: c.Description,
			From:        c.From,
			To:          c.To,
		})
	}
	return rows
}

// EventRow is one flock event.
type EventRow struct {
	Day     int    `csv:"day"`
	Kind    string `csv:"kind"`
	BirdID  uint32 `csv:"bird_id"`
	Name    string `csv:"name"`
	AgeDays int    `csv:"age_days"`
	From    string `csv:"from"`
	To      string `csv:"to"`
	Changes string `csv:"changes"`
}

// NewEventRow flattens a flock event.
func NewEventRow(e flock.Event) EventRow {
	changes := make([]string, len(e.Changes))
	for i, c := range e.Changes {
		changes[i] = c.Description
	}
	return EventRow{
		Day:     e.Day,
		Kind:    e.Kind.String(),
		BirdID:  e.BirdID,
		Name:    e.Name,
		AgeDays: e.AgeDays,
		From:    e.From.String(),
		To:      e.To.String(),
		Changes: strings.Join(changes, ";"),
	}
}

// FlockRow is one bird at one flock day.
type FlockRow struct {
	Day             int     `csv:"day"`
	BirdID          uint32  `csv:"bird_id"`
	Name            string  `csv:"name"`
	Sex             string  `csv:"sex"`
	AgeDays         int     `csv:"age_days"`
	Stage           string  `csv:"stage"`
	MaturityPercent int     `csv:"maturity_pct"`
	WeightGrams     float64 `csv:"weight_g"`
	IdealGrams      float64 `csv:"ideal_g"`
	Rating          string  `csv:"rating"`
	PredictedGrams  float64 `csv:"predicted_g"`
	PredictedAge    int     `csv:"predicted_age"`
	Confidence      float64 `csv:"confidence"`
	Method          string  `csv:"method"`
	DaysToHatch     int     `csv:"days_to_hatch"`
}

// NewFlockRow flattens a bird report.
func NewFlockRow(day int, r flock.Report) FlockRow {
	row := FlockRow{
		Day:             day,
		BirdID:          r.ID,
		Name:            r.Name,
		Sex:             sex(r.Male),
		AgeDays:         r.AgeDays,
		Stage:           r.Stage.String(),
		MaturityPercent: r.Summary.MaturityPercent,
	}
	if r.Egg != nil {
		row.DaysToHatch = r.Egg.DaysUntilHatch()
		return row
	}
	row.IdealGrams = growth.IdealWeight(r.AgeDays, r.Male)
	row.PredictedGrams = r.Prediction.PredictedGrams
	row.PredictedAge = r.Prediction.TargetAgeDays
	row.Confidence = r.Prediction.Confidence
	row.Method = r.Prediction.Method
	if r.Evaluation != nil {
		row.WeightGrams = r.Evaluation.ActualGrams
		row.Rating = r.Evaluation.Rating.String()
	}
	return row
}

func sex(male bool) string {
	if male {
		return "rooster"
	}
	return "hen"
}
