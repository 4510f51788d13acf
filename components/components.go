// Package components defines ECS components for the flock.
package components

import "github.com/pthm-cable/roost/egg"

// Clutch marks an entity that is still an egg. It is removed at hatching.
type Clutch struct {
	Shell        egg.ShellColor `inspect:"label"`
	Fertility    egg.Fertility  `inspect:"label"`
	TemperatureC float64        `inspect:"label,fmt:%.1f°C"`
}

// Incubation returns the egg's incubation inputs for the given age. Eggs carry
// negative ages counting up to hatch day 0.
func (c *Clutch) Incubation(ageDays int) egg.Incubation {
	return egg.Incubation{
		Shell:        c.Shell,
		Fertility:    c.Fertility,
		Day:          egg.IncubationDays + ageDays,
		TemperatureC: c.TemperatureC,
	}
}
