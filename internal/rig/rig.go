package rig

import "github.com/chewxy/math32"

// PitchLimit is the largest vertical look angle in either direction.
const PitchLimit float32 = math32.Pi / 2

// viewPitchMargin keeps the view direction off the up axis when building a look-at camera.
const viewPitchMargin float32 = 1e-3

// Rig is the first-person camera rig: a yaw node carrying the position and the
// horizontal rotation, owning a pitch node with the vertical rotation, owning the camera.
// Yaw is unbounded; Pitch stays within [-PitchLimit, PitchLimit].
type Rig struct {
	Position [3]float32
	Yaw      float32
	Pitch    float32
}

// New returns a rig at position looking down -Z.
func New(position [3]float32) *Rig {
	return &Rig{Position: position}
}

// Look applies a relative mouse movement. Moving right turns right, moving down looks down.
func (r *Rig) Look(dx, dy, sensitivity float32) {
	r.Yaw -= dx * sensitivity
	r.Pitch = clamp(r.Pitch-dy*sensitivity, -PitchLimit, PitchLimit)
}

// ToWorld rotates a camera-space horizontal vector (x right, z backward) by the yaw,
// so that (0, -1) is always the direction the camera faces.
func (r *Rig) ToWorld(x, z float32) (wx, wz float32) {
	sin, cos := math32.Sincos(r.Yaw)
	return x*cos + z*sin, -x*sin + z*cos
}

// Forward returns the horizontal unit vector the camera faces.
func (r *Rig) Forward() [3]float32 {
	x, z := r.ToWorld(0, -1)
	return [3]float32{x, 0, z}
}

// LookDir returns the unit view direction including pitch. Pitch is pulled in by a
// tiny margin at the limits so the result is never parallel to the up axis.
func (r *Rig) LookDir() [3]float32 {
	p := clamp(r.Pitch, -PitchLimit+viewPitchMargin, PitchLimit-viewPitchMargin)
	sp, cp := math32.Sincos(p)
	sy, cy := math32.Sincos(r.Yaw)
	return [3]float32{-sy * cp, sp, -cy * cp}
}

// Target returns the point one unit ahead of the camera along LookDir.
func (r *Rig) Target() [3]float32 {
	d := r.LookDir()
	return [3]float32{r.Position[0] + d[0], r.Position[1] + d[1], r.Position[2] + d[2]}
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
