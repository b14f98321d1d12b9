// Package sim holds the per-frame simulation state of the walkable scene: the camera rig,
// the walker's velocity, the movement flags, the pointer-lock gate, the orbiting light and
// the viewport. It has no dependency on the renderer, so every rule can be exercised in tests.
package sim

import (
	"errors"

	"github.com/chewxy/math32"
	"github.com/rs/zerolog"

	"walkabout/internal/config"
	"walkabout/internal/input"
	"walkabout/internal/physics"
	"walkabout/internal/rig"
)

// ErrPointerLockRefused is reported when the host refuses to capture the mouse.
var ErrPointerLockRefused = errors.New("pointer lock refused")

// Viewport is the drawable area in pixels and the camera aspect ratio derived from it.
type Viewport struct {
	Width  int32
	Height int32
	Aspect float32
}

// Projection is the perspective the renderer draws with. Fovy is in degrees.
type Projection struct {
	Fovy   float32
	Aspect float32
	Near   float32
	Far    float32
}

// Light is the orbiting directional light. Position is the point the light shines from,
// towards the origin.
type Light struct {
	Position [3]float32
	Radius   float32
	Speed    float32
}

// State is everything the frame loop mutates.
type State struct {
	Rig      *rig.Rig
	Body     physics.Body
	Move     input.MoveState
	Locked   bool
	Light    Light
	Viewport Viewport
	Elapsed  float32

	Integrator physics.Integrator

	camera      config.Camera
	sensitivity float32
	log         zerolog.Logger
}

// New returns a state configured from cfg, unlocked, with the viewport set to the window size.
func New(cfg config.Config, log zerolog.Logger) *State {
	s := &State{
		Rig: rig.New(cfg.Camera.Start),
		Light: Light{
			Position: cfg.Lighting.SunStart,
			Radius:   cfg.Lighting.OrbitRadius,
			Speed:    cfg.Lighting.OrbitSpeed,
		},
		Integrator:  physics.NewIntegrator(cfg.Movement.Acceleration, cfg.Movement.Damping, cfg.Movement.Bound),
		camera:      cfg.Camera,
		sensitivity: cfg.Look.Sensitivity,
		log:         log,
	}
	s.Resize(cfg.Window.Width, cfg.Window.Height)
	return s
}

// Advance moves the simulation forward by dt seconds. Movement only integrates while the
// pointer is locked; the light orbits regardless.
func (s *State) Advance(dt float32) {
	if dt < 0 {
		dt = 0
	}
	if s.Locked {
		s.Integrator.Step(dt, s.Move, &s.Body, s.Rig)
	}
	s.Elapsed += dt
	sin, cos := math32.Sincos(s.Elapsed * s.Light.Speed)
	s.Light.Position[0] = sin * s.Light.Radius
	s.Light.Position[2] = cos * s.Light.Radius
}

// Look applies a relative mouse movement while the pointer is locked.
func (s *State) Look(dx, dy float32) {
	if !s.Locked {
		return
	}
	s.Rig.Look(dx, dy, s.sensitivity)
}

// SetPointerLock records whether the host currently captures the mouse. Releasing the lock
// freezes position and rotation at once; held keys are forgotten.
func (s *State) SetPointerLock(locked bool) {
	if s.Locked == locked {
		return
	}
	s.Locked = locked
	s.log.Debug().Bool("locked", locked).Bool("moving", s.Move.Any()).Msg("pointer lock changed")
	if !locked {
		s.Move = input.MoveState{}
	}
}

// PointerLockError logs a refused lock request. The state stays unlocked until the user retries.
func (s *State) PointerLockError(err error) {
	s.log.Warn().Err(err).Msg("pointer lock refused")
}

// Resize sets the viewport to w×h and the aspect ratio to exactly w/h.
// Non-positive sizes (e.g. a minimised window) are ignored.
func (s *State) Resize(w, h int32) {
	if w <= 0 || h <= 0 {
		return
	}
	s.Viewport = Viewport{Width: w, Height: h, Aspect: float32(w) / float32(h)}
}

// Projection returns the camera perspective for the current viewport.
func (s *State) Projection() Projection {
	return Projection{
		Fovy:   s.camera.Fovy,
		Aspect: s.Viewport.Aspect,
		Near:   s.camera.Near,
		Far:    s.camera.Far,
	}
}

// LightDir returns the unit direction from the origin towards the light.
func (s *State) LightDir() [3]float32 {
	p := s.Light.Position
	l := math32.Sqrt(p[0]*p[0] + p[1]*p[1] + p[2]*p[2])
	if l == 0 {
		return [3]float32{0, 1, 0}
	}
	return [3]float32{p[0] / l, p[1] / l, p[2] / l}
}
