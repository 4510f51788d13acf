package components

import (
	"github.com/pthm-cable/roost/appearance"
	"github.com/pthm-cable/roost/growth"
	"github.com/pthm-cable/roost/lifecycle"
)

// Look holds the current rendered appearance of a bird. Base is the appearance
// chosen for the bird; Appearance is Base evolved for the current age and is
// recomputed from Base on every step.
type Look struct {
	Stage      lifecycle.Stage       `inspect:"label"`
	Base       appearance.Appearance `inspect:"skip"`
	Appearance appearance.Appearance `inspect:"skip"`
}

// Weight holds recorded weights, oldest first.
type Weight struct {
	Grams   float64         `inspect:"label,fmt:%.0fg"`
	Ratio   float64         `inspect:"bar,max:1.5"` // Grams relative to the ideal
	History []growth.Sample `inspect:"skip"`
}

// Record appends a sample, replacing any earlier sample from the same day.
func (w *Weight) Record(s growth.Sample) {
	if n := len(w.History); n > 0 && w.History[n-1].AgeDays == s.AgeDays {
		w.History[n-1] = s
	} else {
		w.History = append(w.History, s)
	}
	w.Grams = s.Grams
}

// Last returns the latest sample and, when present, the one before it.
func (w *Weight) Last() (cur, prev growth.Sample, n int) {
	n = len(w.History)
	switch n {
	case 0:
	case 1:
		cur = w.History[0]
	default:
		cur, prev = w.History[n-1], w.History[n-2]
	}
	return cur, prev, n
}
