package scene

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"walkabout/internal/config"
)

func TestBuildDefault(t *testing.T) {
	s := Build(config.Default())

	require.Equal(t, [3]float32{40, 1, 40}, s.Platform.Size)
	require.Equal(t, float32(0), s.Platform.Center[1]+s.Platform.Size[1]/2, "platform top at Y=0")
	require.Equal(t, float32(6), s.TextureRepeat)
	require.Equal(t, uint32(0x0b111a), s.Background)
	require.Equal(t, float32(75), s.Fovy)

	for _, b := range s.Borders {
		assert.InDelta(t, -0.2, b.Center[1], 1e-6)
		assert.Equal(t, [3]float32{41, 0.6, 0.5}, b.Size)
		assert.Equal(t, uint32(0x303744), b.Color)
		assert.InDelta(t, 20, math32.Abs(b.Center[0])+math32.Abs(b.Center[2]), 1e-6)
	}
	assert.Zero(t, s.Borders[0].RotY)
	assert.InDelta(t, math32.Pi/2, s.Borders[3].RotY, 1e-6)

	require.Len(t, s.Columns, 12)
	for i, c := range s.Columns {
		r := math32.Hypot(c.Center[0], c.Center[2])
		assert.InDelta(t, 12+math32.Sin(float32(i)*0.8)*1.5, r, 1e-4)
		assert.Equal(t, float32(1), c.Center[1])
		assert.Equal(t, float32(0.35), c.TopRadius)
		assert.Equal(t, float32(0.5), c.BottomRadius)
	}
	// First column sits on +X.
	assert.InDelta(t, 12, s.Columns[0].Center[0], 1e-4)
	assert.InDelta(t, 0, s.Columns[0].Center[2], 1e-4)

	boxes := s.Boxes()
	require.Len(t, boxes, 5)
	require.Equal(t, s.Platform, boxes[0])
	require.True(t, boxes[0].Textured)
	for _, b := range boxes[1:] {
		assert.False(t, b.Textured)
	}
}

func TestTextureDensity(t *testing.T) {
	s := Build(config.Default())
	// Six repeats across the 40-unit platform, whichever face is sampled.
	require.InDelta(t, 0.15, s.TextureDensity(), 1e-6)
	require.InDelta(t, 6, s.TextureDensity()*s.Platform.Size[0], 1e-5)

	s.Platform.Size = [3]float32{}
	require.Zero(t, s.TextureDensity())
}

func TestColumnsInsideBorders(t *testing.T) {
	cfg := config.Default()
	s := Build(cfg)
	for _, c := range s.Columns {
		assert.Less(t, math32.Abs(c.Center[0])+c.BottomRadius, cfg.Scene.BorderOffset)
		assert.Less(t, math32.Abs(c.Center[2])+c.BottomRadius, cfg.Scene.BorderOffset)
	}
}

func TestBuildNoColumns(t *testing.T) {
	cfg := config.Default()
	cfg.Scene.Columns = 0
	require.Empty(t, Build(cfg).Columns)
}
