package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"

	"walkabout/internal/sim"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh the texts every N frames to reduce allocations.
	updateInterval = 30
	toggleKey      = rl.KeyF3
)

// Debug draws the FPS, heap and rig overlays in the top-right corner.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool
	ShowRig      bool

	state      *sim.State
	frameCount uint32
	fpsText    string
	memText    string
	rigText    string
	memStats   runtime.MemStats
}

// New returns a Debug reading rig data from st.
func New(st *sim.State, showFPS, showMem, showRig bool) *Debug {
	return &Debug{state: st, ShowFPS: showFPS, ShowMemAlloc: showMem, ShowRig: showRig}
}

// Update toggles every overlay with F3: on if any was off, otherwise all off.
func (d *Debug) Update() {
	if !rl.IsKeyPressed(toggleKey) {
		return
	}
	on := !(d.ShowFPS && d.ShowMemAlloc && d.ShowRig)
	d.ShowFPS, d.ShowMemAlloc, d.ShowRig = on, on, on
	d.fpsText, d.memText, d.rigText = "", "", ""
}

// Draw renders the enabled overlays. Texts are recomputed every updateInterval frames.
func (d *Debug) Draw() {
	d.frameCount++
	refresh := d.frameCount%updateInterval == 0

	screenW := int32(rl.GetScreenWidth())
	y := int32(padding)
	line := func(text string) {
		w := rl.MeasureText(text, fontSize)
		rl.DrawText(text, screenW-w-padding, y, fontSize, rl.Green)
		y += lineHeight
	}

	if d.ShowFPS {
		if refresh || d.fpsText == "" {
			d.fpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		line(d.fpsText)
	}
	if d.ShowMemAlloc {
		if refresh || d.memText == "" {
			runtime.ReadMemStats(&d.memStats)
			d.memText = fmt.Sprintf("Mem: %.2f MiB", float64(d.memStats.Alloc)/(1024*1024))
		}
		line(d.memText)
	}
	if d.ShowRig && d.state != nil {
		if refresh || d.rigText == "" {
			d.rigText = RigText(d.state)
		}
		line(d.rigText)
	}
}

// RigText formats the rig position, heading and speed. The speed is shown against the
// terminal speed, with a * while a movement key is held.
func RigText(st *sim.State) string {
	p := st.Rig.Position
	f := st.Rig.Forward()
	held := ""
	if st.Move.Any() {
		held = "*"
	}
	return fmt.Sprintf("pos %.1f %.1f %.1f  facing %.2f %.2f  pitch %.2f  v %.2f/%.2f%s",
		p[0], p[1], p[2], f[0], f[2], st.Rig.Pitch, st.Body.Speed(), st.Integrator.TerminalSpeed(), held)
}
