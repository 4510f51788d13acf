// Package flock tracks a group of birds as they age, hatch and grow.
package flock

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/roost/appearance"
	"github.com/pthm-cable/roost/components"
	"github.com/pthm-cable/roost/egg"
	"github.com/pthm-cable/roost/growth"
	"github.com/pthm-cable/roost/lifecycle"
	"github.com/pthm-cable/roost/morph"
)

// DefaultPredictionHorizon is how far ahead Reports predicts weight, in days.
const DefaultPredictionHorizon = 28

var (
	ErrUnknownBird   = errors.New("unknown bird")
	ErrNotHatched    = errors.New("bird has not hatched")
	ErrInvalidWeight = errors.New("weight must be positive")
	ErrInvalidAge    = errors.New("egg age out of range")
)

// BirdSpec describes a bird to add. A negative AgeDays adds an egg that hatches
// after that many days.
type BirdSpec struct {
	Name         string
	Male         bool
	AgeDays      int
	WeightGrams  float64 // 0 when unknown
	Appearance   *appearance.Appearance
	Shell        egg.ShellColor
	Fertility    egg.Fertility
	TemperatureC float64
}

// Flock is an ECS world of birds. It is not safe for concurrent use.
type Flock struct {
	world   *ecs.World
	mode    lifecycle.GrowthMode
	logger  *slog.Logger
	horizon int
	day     int
	nextID  uint32
	birds   map[uint32]ecs.Entity

	mapper    *ecs.Map4[components.Bird, components.Age, components.Look, components.Weight]
	filter    *ecs.Filter4[components.Bird, components.Age, components.Look, components.Weight]
	birdMap   *ecs.Map1[components.Bird]
	ageMap    *ecs.Map1[components.Age]
	lookMap   *ecs.Map1[components.Look]
	weightMap *ecs.Map1[components.Weight]
	clutchMap *ecs.Map[components.Clutch]
}

// New creates an empty flock. A nil logger uses slog.Default().
func New(mode lifecycle.GrowthMode, logger *slog.Logger) *Flock {
	if logger == nil {
		logger = slog.Default()
	}
	world := ecs.NewWorld()
	return &Flock{
		world:   world,
		mode:    mode,
		logger:  logger,
		horizon: DefaultPredictionHorizon,
		nextID:  1,
		birds:   make(map[uint32]ecs.Entity),
		mapper: ecs.NewMap4[
			components.Bird,
			components.Age,
			components.Look,
			components.Weight,
		](world),
		filter: ecs.NewFilter4[
			components.Bird,
			components.Age,
			components.Look,
			components.Weight,
		](world),
		birdMap:   ecs.NewMap1[components.Bird](world),
		ageMap:    ecs.NewMap1[components.Age](world),
		lookMap:   ecs.NewMap1[components.Look](world),
		weightMap: ecs.NewMap1[components.Weight](world),
		clutchMap: ecs.NewMap[components.Clutch](world),
	}
}

// SetPredictionHorizon sets how many days ahead Reports predicts weight.
func (f *Flock) SetPredictionHorizon(days int) {
	f.horizon = max(days, 0)
}

// Day returns the number of days advanced since the flock was created.
func (f *Flock) Day() int { return f.day }

// Mode returns the growth mode applied to every bird.
func (f *Flock) Mode() lifecycle.GrowthMode { return f.mode }

// Len returns the number of birds and eggs in the flock.
func (f *Flock) Len() int { return len(f.birds) }

// IDs returns every bird ID in ascending order.
func (f *Flock) IDs() []uint32 {
	ids := make([]uint32, 0, len(f.birds))
	for id := range f.birds {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Add places a bird or egg in the flock and returns its ID.
func (f *Flock) Add(spec BirdSpec) (uint32, error) {
	if spec.AgeDays < -egg.IncubationDays {
		return 0, fmt.Errorf("%w: %d days", ErrInvalidAge, spec.AgeDays)
	}
	if spec.WeightGrams < 0 {
		return 0, ErrInvalidWeight
	}

	id := f.nextID
	f.nextID++

	base := appearance.Default()
	if spec.Appearance != nil {
		base = *spec.Appearance
	}

	bird := components.Bird{ID: id, Name: spec.Name, Male: spec.Male}
	age := components.Age{Days: spec.AgeDays}
	look := components.Look{Base: base}
	var weight components.Weight

	profile := f.profile(&age, spec.Male)
	age.Maturity = profile.MaturityIndex
	look.Stage = profile.Stage
	look.Appearance = morph.Evolve(base, profile)

	if spec.AgeDays >= 0 && spec.WeightGrams > 0 {
		weight.Record(growth.Sample{AgeDays: spec.AgeDays, Grams: spec.WeightGrams})
		weight.Ratio = spec.WeightGrams / growth.IdealWeight(spec.AgeDays, spec.Male)
	}

	entity := f.mapper.NewEntity(&bird, &age, &look, &weight)
	if spec.AgeDays < 0 {
		f.clutchMap.Add(entity, &components.Clutch{
			Shell:        spec.Shell,
			Fertility:    spec.Fertility,
			TemperatureC: spec.TemperatureC,
		})
	}
	f.birds[id] = entity

	f.logger.Debug("bird added", "id", id, "name", spec.Name, "stage", look.Stage.String())
	return id, nil
}

// Remove takes a bird out of the flock.
func (f *Flock) Remove(id uint32) error {
	entity, ok := f.birds[id]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownBird, id)
	}
	f.world.RemoveEntity(entity)
	delete(f.birds, id)
	return nil
}

// profile builds the age profile for a bird, with eggs set explicitly.
func (f *Flock) profile(age *components.Age, isMale bool) lifecycle.AgeProfile {
	if age.Days < 0 {
		return lifecycle.EggAgeProfile(isMale, f.mode)
	}
	return lifecycle.FromDays(age.Days, isMale, f.mode)
}

func (f *Flock) lookup(id uint32) (ecs.Entity, error) {
	entity, ok := f.birds[id]
	if !ok || !f.world.Alive(entity) {
		return entity, fmt.Errorf("%w: %d", ErrUnknownBird, id)
	}
	return entity, nil
}
