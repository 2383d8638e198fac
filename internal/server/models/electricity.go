package models

import "math"

// KWhPerFootstep is the energy credited to one footstep.
const KWhPerFootstep = 0.003

// Stats is the summary shown next to the counter.
type Stats struct {
	Electricity int64
	KWh         float64
	Active      bool
}

// NewStats derives the summary from a counter value. KWh is truncated to two
// decimal places.
func NewStats(electricity int64) Stats {
	return Stats{
		Electricity: electricity,
		KWh:         math.Floor(float64(electricity)*KWhPerFootstep*100) / 100,
		Active:      electricity > 0,
	}
}
