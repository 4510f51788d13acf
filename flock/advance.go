package flock

import (
	"cmp"
	"log/slog"
	"slices"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/roost/egg"
	"github.com/pthm-cable/roost/lifecycle"
	"github.com/pthm-cable/roost/morph"
)

// EventKind classifies a flock event.
type EventKind uint8

const (
	EventHatched EventKind = iota
	EventStageChanged
	EventEggFailed
)

var eventKindNames = [...]string{"hatched", "stage_changed", "egg_failed"}

func (k EventKind) String() string {
	if int(k) < len(eventKindNames) {
		return eventKindNames[k]
	}
	return "unknown"
}

// Event is something that happened to a bird during Advance.
type Event struct {
	Day     int
	Kind    EventKind
	BirdID  uint32
	Name    string
	AgeDays int
	From    lifecycle.Stage
	To      lifecycle.Stage
	Changes []morph.MorphChange
}

// LogValue implements slog.LogValuer.
func (e Event) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("day", e.Day),
		slog.String("kind", e.Kind.String()),
		slog.Int("bird", int(e.BirdID)),
		slog.String("name", e.Name),
		slog.Int("age_days", e.AgeDays),
		slog.String("from", e.From.String()),
		slog.String("to", e.To.String()),
		slog.Int("changes", len(e.Changes)),
	)
}

// Advance ages every bird by days, hatching eggs that reach day 0 and re-evolving
// appearances. Infertile eggs are removed when incubation ends.
func (f *Flock) Advance(days int) []Event {
	if days <= 0 {
		return nil
	}
	f.day += days

	var (
		events  []Event
		hatched []ecs.Entity
		failed  []uint32
	)

	query := f.filter.Query()
	for query.Next() {
		entity := query.Entity()
		bird, age, look, _ := query.Get()

		oldDays := age.Days
		age.Days += days

		if oldDays < 0 {
			if age.Days < 0 {
				continue
			}
			clutch := f.clutchMap.Get(entity)
			if clutch != nil && clutch.Fertility == egg.Infertile {
				events = append(events, Event{
					Day: f.day, Kind: EventEggFailed, BirdID: bird.ID, Name: bird.Name,
					AgeDays: age.Days, From: lifecycle.Egg, To: lifecycle.Egg,
				})
				failed = append(failed, bird.ID)
				continue
			}
			hatched = append(hatched, entity)
			events = append(events, Event{
				Day: f.day, Kind: EventHatched, BirdID: bird.ID, Name: bird.Name,
				AgeDays: age.Days, From: lifecycle.Egg, To: lifecycle.Hatchling,
			})
			look.Stage = lifecycle.Hatchling
			oldDays = 0
		}

		profile := f.profile(age, bird.Male)
		age.Maturity = profile.MaturityIndex
		if profile.Stage != look.Stage {
			events = append(events, Event{
				Day: f.day, Kind: EventStageChanged, BirdID: bird.ID, Name: bird.Name,
				AgeDays: age.Days, From: look.Stage, To: profile.Stage,
				Changes: morph.TransitionChanges(oldDays, age.Days, bird.Male),
			})
		}
		look.Stage = profile.Stage
		look.Appearance = morph.Evolve(look.Base, profile)
	}

	// Structural changes wait until the query is done.
	for _, entity := range hatched {
		f.clutchMap.Remove(entity)
	}
	for _, id := range failed {
		f.world.RemoveEntity(f.birds[id])
		delete(f.birds, id)
	}

	slices.SortStableFunc(events, func(a, b Event) int { return cmp.Compare(a.BirdID, b.BirdID) })
	for _, e := range events {
		f.logger.Info("flock event", "event", e)
	}
	return events
}
