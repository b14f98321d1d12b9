// Package render draws the scene description with raylib.
package render

import (
	"image"

	rl "github.com/gen2brain/raylib-go/raylib"

	"walkabout/internal/scene"
	"walkabout/internal/sim"
)

// Renderer owns the GPU side of the scene: the mesh registry and the stone texture.
type Renderer struct {
	scene scene.Scene
	reg   *Registry

	stoneImg    image.Image // uploaded on first Draw, then dropped
	stone       rl.Texture2D
	stoneLoaded bool
}

// New returns a renderer for s. stone is the platform texture; nil draws the platform flat.
// No GPU work happens until the first Draw.
func New(s scene.Scene, stone image.Image) *Renderer {
	return &Renderer{scene: s, reg: NewRegistry(), stoneImg: stone}
}

// Color converts 0xRRGGBB to an opaque raylib colour.
func Color(rgb uint32) rl.Color {
	return rl.NewColor(uint8(rgb>>16), uint8(rgb>>8), uint8(rgb), 255)
}

// Background is the clear colour.
func (r *Renderer) Background() rl.Color {
	return Color(r.scene.Background)
}

// Camera returns the raylib camera for the rig in st.
func (r *Renderer) Camera(st *sim.State) rl.Camera3D {
	pos := st.Rig.Position
	target := st.Rig.Target()
	return rl.Camera3D{
		Position:   rl.NewVector3(pos[0], pos[1], pos[2]),
		Target:     rl.NewVector3(target[0], target[1], target[2]),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       r.scene.Fovy,
		Projection: rl.CameraPerspective,
	}
}

// perspective is the projection for the viewport in st, replacing the one raylib derives
// from the framebuffer in BeginMode3D.
func perspective(st *sim.State) rl.Matrix {
	p := st.Projection()
	return rl.MatrixPerspective(p.Fovy*rl.Deg2rad, p.Aspect, p.Near, p.Far)
}

// ensureStone uploads the stone texture with repeat wrapping and mipmaps.
func (r *Renderer) ensureStone() {
	if r.stoneLoaded || r.stoneImg == nil {
		return
	}
	img := rl.NewImageFromImage(r.stoneImg)
	r.stoneImg = nil
	r.stone = rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	if !rl.IsTextureValid(r.stone) {
		return
	}
	rl.GenTextureMipmaps(&r.stone)
	rl.SetTextureFilter(r.stone, rl.FilterAnisotropic8x)
	rl.SetTextureWrap(r.stone, rl.WrapRepeat)
	r.stoneLoaded = true
}

// Draw renders the scene from the rig in st. Call between BeginDrawing and EndDrawing.
func (r *Renderer) Draw(st *sim.State) {
	r.ensureStone()

	amb := Color(r.scene.Ambient.Color)
	ai := r.scene.Ambient.Intensity
	sun := Color(r.scene.Sun.Color)
	r.reg.SetLighting(Lighting{
		ViewPos:   st.Rig.Position,
		LightDir:  st.LightDir(),
		Ambient:   [4]float32{float32(amb.R) / 255 * ai, float32(amb.G) / 255 * ai, float32(amb.B) / 255 * ai, 1},
		Color:     [3]float32{float32(sun.R) / 255, float32(sun.G) / 255, float32(sun.B) / 255},
		Intensity: r.scene.Sun.Intensity,
	})

	rl.BeginMode3D(r.Camera(st))
	rl.SetMatrixProjection(perspective(st))
	for _, b := range r.scene.Boxes() {
		if b.Textured && r.stoneLoaded {
			r.reg.DrawTexturedBox(b.Center, b.Size, b.RotY, Color(b.Color), r.stone, r.scene.TextureDensity())
			continue
		}
		r.reg.DrawBox(b.Center, b.Size, b.RotY, Color(b.Color))
	}
	for _, c := range r.scene.Columns {
		r.reg.DrawCylinder(c.Center, c.BottomRadius, c.TopRadius, c.Height, c.Sides, Color(c.Color))
	}
	rl.EndMode3D()
}

// Unload releases GPU resources. Call before the window closes.
func (r *Renderer) Unload() {
	if r.stoneLoaded {
		rl.UnloadTexture(r.stone)
		r.stoneLoaded = false
	}
	r.reg.Unload()
}
