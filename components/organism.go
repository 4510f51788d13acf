package components

import "github.com/pthm-cable/roost/lifecycle"

// Bird is the identity of one flock member.
type Bird struct {
	ID   uint32 `inspect:"label"`
	Name string `inspect:"label"`
	Male bool   `inspect:"bool"`
}

// Age tracks how old a bird is. Negative days count down to hatching.
type Age struct {
	Days     int     `inspect:"label,fmt:%dd"`
	Maturity float64 `inspect:"bar,max:1.5"` // 1.0 at full maturity
}

// Stage returns the stage implied by an age, with every negative age an egg.
func (a *Age) Stage(isMale bool) lifecycle.Stage {
	if a.Days < 0 {
		return lifecycle.Egg
	}
	return lifecycle.Classify(a.Days, isMale)
}
