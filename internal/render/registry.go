package render

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// cached holds a mesh with its flat and textured materials. Created lazily on first draw.
type cached struct {
	mesh        rl.Mesh
	mtl         rl.Material
	texturedMtl rl.Material
}

// Lighting is the per-frame lighting shared by every lit draw.
type Lighting struct {
	ViewPos   [3]float32
	LightDir  [3]float32 // towards the light, normalized
	Ambient   [4]float32 // premultiplied by intensity
	Color     [3]float32
	Intensity float32
}

// Registry caches meshes by name. Meshes and the shader are created on first use so that
// GPU resources are allocated after the window/OpenGL context exists.
type Registry struct {
	cache  map[string]cached
	lit    rl.Shader
	loaded bool
	light  Lighting
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{cache: make(map[string]cached)}
}

// SetLighting sets camera position and light for this frame. Call once per frame before drawing.
func (r *Registry) SetLighting(l Lighting) {
	r.light = l
}

const (
	defaultSpecularPower    = float32(32.0)
	defaultSpecularStrength = float32(0.12)
)

func (r *Registry) ensureShader() {
	if r.loaded {
		return
	}
	r.lit = rl.LoadShaderFromMemory(litVS, litFS)
	r.loaded = true
}

func (r *Registry) ensure(key string, gen func() rl.Mesh) cached {
	if c, ok := r.cache[key]; ok {
		return c
	}
	r.ensureShader()
	c := cached{mesh: gen(), mtl: rl.LoadMaterialDefault(), texturedMtl: rl.LoadMaterialDefault()}
	if rl.IsShaderValid(r.lit) {
		c.mtl.Shader = r.lit
		c.texturedMtl.Shader = r.lit
	}
	r.cache[key] = c
	return c
}

func (r *Registry) cube() cached {
	return r.ensure("cube", func() rl.Mesh { return rl.GenMeshCube(1, 1, 1) })
}

// cylinder is unit radius and height with its base at Y=0.
func (r *Registry) cylinder(sides int32) cached {
	if sides < 3 {
		sides = 3
	}
	return r.ensure(fmt.Sprintf("cylinder/%d", sides), func() rl.Mesh { return rl.GenMeshCylinder(1, 1, int(sides)) })
}

// setUniforms uploads the frame lighting plus the per-draw UV density and taper
// (cgo-safe: local arrays).
func (r *Registry) setUniforms(shader rl.Shader, uvDensity, taper float32) {
	if !rl.IsShaderValid(shader) {
		return
	}
	l := r.light
	viewPos := [3]float32{l.ViewPos[0], l.ViewPos[1], l.ViewPos[2]}
	lightDir := [3]float32{l.LightDir[0], l.LightDir[1], l.LightDir[2]}
	amb := [4]float32{l.Ambient[0], l.Ambient[1], l.Ambient[2], l.Ambient[3]}
	lightColor := [3]float32{l.Color[0], l.Color[1], l.Color[2]}
	if loc := rl.GetShaderLocation(shader, "viewPos"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, viewPos[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightDir"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, lightDir[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "ambient"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, amb[:], rl.ShaderUniformVec4, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightColor"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, lightColor[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightIntensity"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{l.Intensity}, rl.ShaderUniformFloat)
	}
	if loc := rl.GetShaderLocation(shader, "specularPower"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{defaultSpecularPower}, rl.ShaderUniformFloat)
	}
	if loc := rl.GetShaderLocation(shader, "specularStrength"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{defaultSpecularStrength}, rl.ShaderUniformFloat)
	}
	if loc := rl.GetShaderLocation(shader, "uvDensity"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{uvDensity}, rl.ShaderUniformFloat)
	}
	if loc := rl.GetShaderLocation(shader, "taper"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{taper}, rl.ShaderUniformFloat)
	}
}

// transform builds offset → scale → rotate about Y → translate.
func transform(position, scale [3]float32, rotY float32, offset [3]float32) rl.Matrix {
	m := rl.MatrixScale(scale[0], scale[1], scale[2])
	if offset != ([3]float32{}) {
		m = rl.MatrixMultiply(rl.MatrixTranslate(offset[0], offset[1], offset[2]), m)
	}
	if rotY != 0 {
		m = rl.MatrixMultiply(m, rl.MatrixRotateY(rotY))
	}
	return rl.MatrixMultiply(m, rl.MatrixTranslate(position[0], position[1], position[2]))
}

// DrawBox draws a lit box. Must be called between BeginMode3D and EndMode3D.
func (r *Registry) DrawBox(position, size [3]float32, rotY float32, tint rl.Color) {
	c := r.cube()
	r.setUniforms(c.mtl.Shader, 0, 1)
	if albedo := c.mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = tint
	}
	rl.DrawMesh(c.mesh, c.mtl, transform(position, size, rotY, [3]float32{}))
}

// DrawTexturedBox draws a lit box sampling tex, repeated uvDensity times per world unit
// on every face. An invalid texture falls back to DrawBox.
func (r *Registry) DrawTexturedBox(position, size [3]float32, rotY float32, tint rl.Color, tex rl.Texture2D, uvDensity float32) {
	if !rl.IsTextureValid(tex) {
		r.DrawBox(position, size, rotY, tint)
		return
	}
	c := r.cube()
	rl.SetMaterialTexture(&c.texturedMtl, rl.MapAlbedo, tex)
	if albedo := c.texturedMtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = tint
	}
	r.setUniforms(c.texturedMtl.Shader, uvDensity, 1)
	rl.DrawMesh(c.mesh, c.texturedMtl, transform(position, size, rotY, [3]float32{}))
}

// DrawCylinder draws a lit upright cylinder centred on position, narrowing linearly from
// bottom radius to top radius. raylib cylinders have their base at Y=0, so the mesh is
// shifted down by half its height.
func (r *Registry) DrawCylinder(position [3]float32, bottom, top, height float32, sides int32, tint rl.Color) {
	c := r.cylinder(sides)
	r.setUniforms(c.mtl.Shader, 0, taper(bottom, top))
	if albedo := c.mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = tint
	}
	rl.DrawMesh(c.mesh, c.mtl, transform(position, [3]float32{bottom, height, bottom}, 0, [3]float32{0, -0.5, 0}))
}

// taper is the top radius as a fraction of the bottom radius.
func taper(bottom, top float32) float32 {
	if bottom <= 0 {
		return 1
	}
	return top / bottom
}

// Unload releases the meshes and the shader.
func (r *Registry) Unload() {
	for k, c := range r.cache {
		rl.UnloadMesh(&c.mesh)
		delete(r.cache, k)
	}
	if r.loaded {
		rl.UnloadShader(r.lit)
		r.loaded = false
	}
}
