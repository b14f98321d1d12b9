package sim

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"walkabout/internal/config"
	"walkabout/internal/input"
)

func newTestState() *State {
	return New(config.Default(), zerolog.Nop())
}

func TestNew(t *testing.T) {
	s := newTestState()
	require.Equal(t, [3]float32{0, 1.6, 5}, s.Rig.Position)
	require.False(t, s.Locked)
	require.Equal(t, Viewport{Width: 1280, Height: 720, Aspect: float32(1280) / float32(720)}, s.Viewport)
	require.Equal(t, [3]float32{10, 12, 5}, s.Light.Position)
}

func TestMovementGatedOnLock(t *testing.T) {
	s := newTestState()
	start := s.Rig.Position

	s.Move = input.MoveState{Forward: true}
	s.Look(100, 100)
	s.Advance(0.5)
	require.Equal(t, start, s.Rig.Position)
	require.Zero(t, s.Rig.Yaw)
	require.Zero(t, s.Rig.Pitch)

	s.SetPointerLock(true)
	s.Move = input.MoveState{Forward: true}
	s.Advance(0.5)
	s.Look(100, 50)
	require.NotEqual(t, start, s.Rig.Position)
	require.NotZero(t, s.Rig.Yaw)

	s.SetPointerLock(false)
	frozen := *s.Rig
	s.Advance(0.5)
	s.Look(300, 300)
	require.Equal(t, frozen, *s.Rig)
	require.Equal(t, input.MoveState{}, s.Move)
}

func TestResize(t *testing.T) {
	s := newTestState()
	cases := [][2]int32{{800, 600}, {1920, 1080}, {333, 777}, {1, 4096}}
	for _, c := range cases {
		s.Resize(c[0], c[1])
		require.Equal(t, c[0], s.Viewport.Width)
		require.Equal(t, c[1], s.Viewport.Height)
		require.Equal(t, float32(c[0])/float32(c[1]), s.Viewport.Aspect)
	}

	before := s.Viewport
	s.Resize(0, 600)
	s.Resize(800, -1)
	require.Equal(t, before, s.Viewport)
}

func TestProjectionFollowsViewport(t *testing.T) {
	s := newTestState()
	p := s.Projection()
	require.Equal(t, Projection{Fovy: 75, Aspect: float32(1280) / float32(720), Near: 0.1, Far: 100}, p)

	s.Resize(600, 900)
	require.Equal(t, float32(600)/float32(900), s.Projection().Aspect)
	require.Equal(t, s.Viewport.Aspect, s.Projection().Aspect)

	s.Resize(0, 0)
	require.Equal(t, float32(600)/float32(900), s.Projection().Aspect)
}

func TestLightOrbit(t *testing.T) {
	s := newTestState()
	for i := 0; i < 100; i++ {
		s.Advance(0.37)
		p := s.Light.Position
		assert.InDelta(t, 10, p[0]*p[0]/10+p[2]*p[2]/10, 1e-3)
		assert.Equal(t, float32(12), p[1])
	}
	d := s.LightDir()
	assert.InDelta(t, 1, d[0]*d[0]+d[1]*d[1]+d[2]*d[2], 1e-5)
}

func TestPointerLockError(t *testing.T) {
	s := newTestState()
	s.PointerLockError(ErrPointerLockRefused)
	require.False(t, s.Locked)
}

func TestLoop(t *testing.T) {
	s := newTestState()
	l := NewLoop(s, 0.1)
	now := time.Unix(1700000000, 0)

	require.Zero(t, l.Frame(now))
	require.InDelta(t, 0.016, l.Frame(now.Add(16*time.Millisecond)), 1e-6)
	require.Equal(t, float32(0.1), l.Frame(now.Add(5*time.Second)))
	require.Zero(t, l.Frame(now))
	require.InDelta(t, 0.116, s.Elapsed, 1e-6)

	unbounded := NewLoop(newTestState(), 0)
	require.Equal(t, float32(3), unbounded.Advance(3))
}
