package texgen

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStoneDimensions(t *testing.T) {
	img := Stone(Options{Size: 64, Speckles: 50, Streaks: 3, Seed: 1})
	require.Equal(t, 64, img.Bounds().Dx())
	require.Equal(t, 64, img.Bounds().Dy())

	img = Stone(Options{Seed: 1})
	require.Equal(t, DefaultOptions().Size, img.Bounds().Dx())
}

func TestStoneSeeded(t *testing.T) {
	opts := Options{Size: 128, Speckles: 300, Streaks: 5, Seed: 99}
	a := Stone(opts)
	b := Stone(opts)
	require.Equal(t, a.Pix, b.Pix)

	opts.Seed = 100
	c := Stone(opts)
	require.NotEqual(t, a.Pix, c.Pix)
}

func TestStoneSurface(t *testing.T) {
	img := Stone(Options{Size: 128, Speckles: 600, Streaks: 10, Seed: 5})

	var sum, darker int
	for y := 0; y < 128; y++ {
		for x := 0; x < 128; x++ {
			c := img.RGBAAt(x, y)
			require.Equal(t, uint8(0xff), c.A, "texture must stay opaque")
			sum += int(c.R)
			if c.R < baseColor.R {
				darker++
			}
		}
	}
	require.Greater(t, darker, 0)
	require.Less(t, sum/(128*128), int(baseColor.R))
}

func TestStoneBlank(t *testing.T) {
	img := Stone(Options{Size: 8, Seed: 1})
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			require.Equal(t, color.RGBA{0x8f, 0x9a, 0xa7, 0xff}, img.RGBAAt(x, y))
		}
	}
}

func TestGradientStops(t *testing.T) {
	g := &linearGradient{x0: 0, y0: 0, x1: 100, y1: 0, stops: streakStops}
	require.Equal(t, streakStops[0], g.At(-50, 0))
	require.Equal(t, streakStops[2], g.At(500, 3))
	mid := g.At(49, 0).(color.NRGBA)
	require.InDelta(t, int(streakStops[1].R), int(mid.R), 2)
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "stone.png")
	img := Stone(Options{Size: 32, Speckles: 20, Streaks: 2, Seed: 3})
	require.NoError(t, Save(path, img))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	decoded, err := png.Decode(f)
	require.NoError(t, err)
	require.Equal(t, img.Bounds(), decoded.Bounds())
}
