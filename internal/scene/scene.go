// Package scene describes the walkable area: a textured platform, four low border walls,
// a ring of columns and the lights. It is plain data; the render package draws it.
package scene

import (
	"github.com/chewxy/math32"

	"walkabout/internal/config"
)

// Box is an axis-aligned box rotated by RotY radians about its vertical axis.
// Textured boxes are drawn with the stone texture.
type Box struct {
	Center   [3]float32
	Size     [3]float32
	RotY     float32
	Color    uint32 // 0xRRGGBB
	Textured bool
}

// Column is a vertical tapered cylinder centred on Center.
type Column struct {
	Center       [3]float32
	Height       float32
	TopRadius    float32
	BottomRadius float32
	Sides        int32
	Color        uint32
}

// Light is a coloured light with an intensity multiplier.
type Light struct {
	Color     uint32
	Intensity float32
}

// Scene is the full static description of the world.
type Scene struct {
	Background uint32
	Fovy       float32

	Platform      Box
	TextureRepeat float32
	Borders       [4]Box
	Columns       []Column

	Ambient Light
	Sun     Light
}

// Build lays out the scene from cfg. The platform's top face sits at Y=0.
func Build(cfg config.Config) Scene {
	sc := cfg.Scene
	s := Scene{
		Background: sc.Background,
		Fovy:       cfg.Camera.Fovy,
		Platform: Box{
			Center:   [3]float32{0, -0.5, 0},
			Size:     [3]float32{sc.PlatformSize, 1, sc.PlatformSize},
			Color:    sc.PlatformColor,
			Textured: true,
		},
		TextureRepeat: float32(cfg.Texture.Repeat),
		Ambient:       Light{Color: cfg.Lighting.Ambient, Intensity: cfg.Lighting.AmbientIntensity},
		Sun:           Light{Color: cfg.Lighting.Sun, Intensity: cfg.Lighting.SunIntensity},
	}

	// Wall bottoms sit half a unit below the platform top.
	y := sc.BorderHeight/2 - 0.5
	size := [3]float32{sc.BorderLength, sc.BorderHeight, sc.BorderThick}
	off := sc.BorderOffset
	s.Borders = [4]Box{
		{Center: [3]float32{0, y, -off}, Size: size, Color: sc.BorderColor},
		{Center: [3]float32{0, y, off}, Size: size, Color: sc.BorderColor},
		{Center: [3]float32{-off, y, 0}, Size: size, RotY: math32.Pi / 2, Color: sc.BorderColor},
		{Center: [3]float32{off, y, 0}, Size: size, RotY: math32.Pi / 2, Color: sc.BorderColor},
	}

	s.Columns = make([]Column, 0, sc.Columns)
	for i := 0; i < sc.Columns; i++ {
		angle := float32(i) / float32(sc.Columns) * 2 * math32.Pi
		radius := sc.ColumnRing + math32.Sin(float32(i)*0.8)*sc.ColumnWobble
		s.Columns = append(s.Columns, Column{
			Center:       [3]float32{math32.Cos(angle) * radius, sc.ColumnHeight/2 - 0.5, math32.Sin(angle) * radius},
			Height:       sc.ColumnHeight,
			TopRadius:    sc.ColumnTop,
			BottomRadius: sc.ColumnBottom,
			Sides:        sc.ColumnSides,
			Color:        sc.ColumnColor,
		})
	}
	return s
}

// TextureDensity is how many times the stone texture repeats per world unit, so that it
// repeats TextureRepeat times across the platform.
func (s Scene) TextureDensity() float32 {
	if s.Platform.Size[0] <= 0 {
		return 0
	}
	return s.TextureRepeat / s.Platform.Size[0]
}

// Boxes returns the platform followed by the border walls.
func (s Scene) Boxes() []Box {
	out := make([]Box, 0, 1+len(s.Borders))
	out = append(out, s.Platform)
	return append(out, s.Borders[:]...)
}
