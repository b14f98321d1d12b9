package physics

import "github.com/chewxy/math32"

// Body is the walker's planar velocity in camera space: Velocity[0] is lateral (+X right),
// Velocity[1] is forward/back (-Z forward). It decays towards zero when no input is held.
type Body struct {
	Velocity [2]float32
}

// Speed returns the velocity magnitude.
func (b *Body) Speed() float32 {
	return math32.Hypot(b.Velocity[0], b.Velocity[1])
}
