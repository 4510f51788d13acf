package flock

import (
	"fmt"

	"github.com/pthm-cable/roost/config"
	"github.com/pthm-cable/roost/egg"
)

// SpecFromConfig converts a configured bird into a BirdSpec.
func SpecFromConfig(bc config.BirdConfig) (BirdSpec, error) {
	spec := BirdSpec{
		Name:         bc.Name,
		Male:         bc.Male,
		AgeDays:      bc.AgeDays,
		WeightGrams:  bc.WeightGrams,
		TemperatureC: bc.TemperatureC,
	}
	if bc.Shell != "" {
		shell, err := egg.ParseShellColor(bc.Shell)
		if err != nil {
			return spec, fmt.Errorf("bird %q: %w", bc.Name, err)
		}
		spec.Shell = shell
	}
	if bc.Fertility != "" {
		fert, err := egg.ParseFertility(bc.Fertility)
		if err != nil {
			return spec, fmt.Errorf("bird %q: %w", bc.Name, err)
		}
		spec.Fertility = fert
	}
	return spec, nil
}

// FromConfig adds the configured birds to f and returns their IDs in config order.
func FromConfig(cfg *config.Config, f *Flock) ([]uint32, error) {
	f.SetPredictionHorizon(cfg.Growth.PredictionHorizonDays)
	ids := make([]uint32, 0, len(cfg.Flock.Birds))
	for _, bc := range cfg.Flock.Birds {
		spec, err := SpecFromConfig(bc)
		if err != nil {
			return nil, err
		}
		id, err := f.Add(spec)
		if err != nil {
			return nil, fmt.Errorf("adding bird %q: %w", bc.Name, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
