package physics

import (
	"github.com/chewxy/math32"

	"walkabout/internal/input"
	"walkabout/internal/rig"
)

// Integrator advances a Body and moves a Rig across the platform. Velocity is in units/s,
// so the position advances by velocity·dt whatever the frame rate.
// Acceleration is in units/s², Damping is the exponential decay rate in 1/s, and Bound
// is the half-width of the square the rig position is clamped to on X and Z.
type Integrator struct {
	Acceleration float32
	Damping      float32
	Bound        float32
}

// NewIntegrator returns an integrator with the given constants.
func NewIntegrator(acceleration, damping, bound float32) Integrator {
	return Integrator{Acceleration: acceleration, Damping: damping, Bound: bound}
}

// Step advances the simulation by dt seconds: damp the velocity by exp(-Damping·dt),
// accelerate along the held input direction (unit length even on diagonals), move the rig
// along its yaw, then clamp the position to the bounding square. Y is never touched.
// Non-positive dt is a no-op.
func (in Integrator) Step(dt float32, m input.MoveState, b *Body, r *rig.Rig) {
	if dt <= 0 {
		return
	}
	damping := math32.Exp(-in.Damping * dt)
	b.Velocity[0] *= damping
	b.Velocity[1] *= damping

	// Camera space: forward is -Z.
	dx, dz := m.Axes()
	dz = -dz
	if l := math32.Hypot(dx, dz); l > 0 {
		dx /= l
		dz /= l
	}
	b.Velocity[0] += dx * in.Acceleration * dt
	b.Velocity[1] += dz * in.Acceleration * dt

	wx, wz := r.ToWorld(b.Velocity[0], b.Velocity[1])
	r.Position[0] = clamp(r.Position[0]+wx*dt, -in.Bound, in.Bound)
	r.Position[2] = clamp(r.Position[2]+wz*dt, -in.Bound, in.Bound)
}

// TerminalSpeed is the speed approached while a direction is held, in the small-step limit.
func (in Integrator) TerminalSpeed() float32 {
	if in.Damping == 0 {
		return math32.Inf(1)
	}
	return in.Acceleration / in.Damping
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
