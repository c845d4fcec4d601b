package domain

import "time"

// TimerOgMinutter is the hour/minute pair a caseworker punches for per-day
// durations (work time, care hours, absence).
type TimerOgMinutter struct {
	Timer    int64 `json:"timer"`
	Minutter int64 `json:"minutter"`
}

// SomVarighet normalizes to a duration of whole minutes, clamped at zero.
// No upper bound is enforced at this layer.
func (t *TimerOgMinutter) SomVarighet() time.Duration {
	if t == nil {
		return 0
	}
	minutter := t.Timer*60 + t.Minutter
	if minutter < 0 {
		return 0
	}
	return time.Duration(minutter) * time.Minute
}
