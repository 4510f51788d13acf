package flock

import (
	"fmt"

	"github.com/pthm-cable/roost/appearance"
	"github.com/pthm-cable/roost/egg"
	"github.com/pthm-cable/roost/growth"
	"github.com/pthm-cable/roost/lifecycle"
	"github.com/pthm-cable/roost/morph"
)

// Report is a snapshot of one bird.
type Report struct {
	ID         uint32
	Name       string
	Male       bool
	AgeDays    int
	Stage      lifecycle.Stage
	Summary    morph.MorphSummary
	Appearance appearance.Appearance
	Egg        *egg.Profile       // set while incubating
	Evaluation *growth.Evaluation // set once a weight is recorded
	Prediction growth.Prediction
}

// RecordWeight stores a weight for a hatched bird at its current age.
func (f *Flock) RecordWeight(id uint32, grams float64) error {
	entity, err := f.lookup(id)
	if err != nil {
		return err
	}
	if grams <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidWeight, grams)
	}
	if f.clutchMap.Has(entity) {
		return fmt.Errorf("%w: %d", ErrNotHatched, id)
	}

	bird := f.birdMap.Get(entity)
	age := f.ageMap.Get(entity)
	weight := f.weightMap.Get(entity)

	weight.Record(growth.Sample{AgeDays: age.Days, Grams: grams})
	ev := growth.EvaluateWeight(age.Days, grams, bird.Male)
	weight.Ratio = ev.Ratio

	if !ev.Rating.Healthy() {
		f.logger.Warn("weight outside expected range", "bird", id, "name", bird.Name, "evaluation", ev)
	} else {
		f.logger.Debug("weight recorded", "bird", id, "evaluation", ev)
	}
	return nil
}

// Report returns a snapshot of one bird.
func (f *Flock) Report(id uint32) (Report, error) {
	entity, err := f.lookup(id)
	if err != nil {
		return Report{}, err
	}
	bird := f.birdMap.Get(entity)
	age := f.ageMap.Get(entity)
	look := f.lookMap.Get(entity)
	weight := f.weightMap.Get(entity)

	profile := f.profile(age, bird.Male)
	r := Report{
		ID:         bird.ID,
		Name:       bird.Name,
		Male:       bird.Male,
		AgeDays:    age.Days,
		Stage:      look.Stage,
		Summary:    morph.Summarize(profile, morph.GetConstraints(profile)),
		Appearance: look.Appearance,
	}

	if f.clutchMap.Has(entity) {
		p := egg.FromIncubation(f.clutchMap.Get(entity).Incubation(age.Days))
		r.Egg = &p
		return r, nil
	}

	target := age.Days + f.horizon
	cur, prev, n := weight.Last()
	switch {
	case n == 0:
		r.Prediction = growth.PredictFromHistory(nil, target, bird.Male)
	case n == 1:
		r.Prediction = growth.PredictFutureWeight(cur.AgeDays, cur.Grams, cur.Grams, cur.AgeDays, target, bird.Male)
	case n == 2:
		r.Prediction = growth.PredictFutureWeight(cur.AgeDays, cur.Grams, prev.Grams, prev.AgeDays, target, bird.Male)
	default:
		r.Prediction = growth.PredictFromHistory(weight.History, target, bird.Male)
	}
	if n > 0 {
		ev := growth.EvaluateWeight(cur.AgeDays, cur.Grams, bird.Male)
		r.Evaluation = &ev
	}
	return r, nil
}

// Reports returns a snapshot of every bird, ordered by ID.
func (f *Flock) Reports() []Report {
	ids := f.IDs()
	reports := make([]Report, 0, len(ids))
	for _, id := range ids {
		r, err := f.Report(id)
		if err != nil {
			continue
		}
		reports = append(reports, r)
	}
	return reports
}

// Inspect returns copies of a bird's components for display.
func (f *Flock) Inspect(id uint32) ([]any, error) {
	entity, err := f.lookup(id)
	if err != nil {
		return nil, err
	}
	comps := []any{
		*f.birdMap.Get(entity),
		*f.ageMap.Get(entity),
		*f.lookMap.Get(entity),
		*f.weightMap.Get(entity),
	}
	if f.clutchMap.Has(entity) {
		comps = append(comps, *f.clutchMap.Get(entity))
	}
	return comps, nil
}
