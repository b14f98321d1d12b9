package sim

import "time"

// Loop drives a State from host frame callbacks. It remembers the previous timestamp so
// the host only has to hand over the current time, however it schedules frames.
type Loop struct {
	State    *State
	MaxDelta float32

	last    time.Time
	started bool
}

// NewLoop returns a loop over s. maxDelta caps a single step (0 = no cap), so a stalled
// window does not launch the walker across the platform on the next frame.
func NewLoop(s *State, maxDelta float32) *Loop {
	return &Loop{State: s, MaxDelta: maxDelta}
}

// Frame advances the state by the time since the previous Frame and returns that step.
// The first frame advances by zero.
func (l *Loop) Frame(now time.Time) float32 {
	var dt float32
	if l.started {
		dt = float32(now.Sub(l.last).Seconds())
	}
	l.last = now
	l.started = true
	return l.Advance(dt)
}

// Advance steps the state by dt seconds after clamping to [0, MaxDelta] and returns the step used.
func (l *Loop) Advance(dt float32) float32 {
	if dt < 0 {
		dt = 0
	}
	if l.MaxDelta > 0 && dt > l.MaxDelta {
		dt = l.MaxDelta
	}
	l.State.Advance(dt)
	return dt
}
