package rig

import (
	"math/rand/v2"
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPitchStaysClamped(t *testing.T) {
	r := New([3]float32{0, 1.6, 5})
	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 10000; i++ {
		dx := float32(rng.NormFloat64() * 400)
		dy := float32(rng.NormFloat64() * 400)
		r.Look(dx, dy, 0.0022)
		require.GreaterOrEqual(t, r.Pitch, -PitchLimit)
		require.LessOrEqual(t, r.Pitch, PitchLimit)
	}
}

func TestLookLimits(t *testing.T) {
	r := New([3]float32{})
	r.Look(0, -1e6, 0.0022)
	require.Equal(t, PitchLimit, r.Pitch)
	r.Look(0, 1e6, 0.0022)
	require.Equal(t, -PitchLimit, r.Pitch)
}

func TestYawUnbounded(t *testing.T) {
	r := New([3]float32{})
	for i := 0; i < 100; i++ {
		r.Look(-1000, 0, 0.01)
	}
	require.InDelta(t, 1000, r.Yaw, 1e-2)
}

func TestForwardFollowsYaw(t *testing.T) {
	r := New([3]float32{})
	f := r.Forward()
	assert.InDelta(t, 0, f[0], 1e-6)
	assert.InDelta(t, -1, f[2], 1e-6)

	// Mouse to the right turns the camera towards +X.
	r.Look(math32.Pi/2/0.01, 0, 0.01)
	f = r.Forward()
	assert.InDelta(t, 1, f[0], 1e-5)
	assert.InDelta(t, 0, f[2], 1e-5)

	x, z := r.ToWorld(1, 0)
	assert.InDelta(t, 0, x, 1e-5)
	assert.InDelta(t, 1, z, 1e-5)
}

func TestLookDirNeverVertical(t *testing.T) {
	r := New([3]float32{0, 1.6, 0})
	r.Pitch = PitchLimit
	d := r.LookDir()
	require.Less(t, d[1], float32(1))
	require.Greater(t, math32.Hypot(d[0], d[2]), float32(0))

	target := r.Target()
	require.InDelta(t, r.Position[1]+d[1], target[1], 1e-6)
}
