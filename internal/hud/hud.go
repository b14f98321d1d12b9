package hud

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"walkabout/internal/logger"
	"walkabout/internal/sim"
)

const (
	fontSize   = 20
	padding    = 8
	lineHeight = fontSize + 4
	// Number of log lines drawn in the bottom-left corner.
	maxLinesOnScreen = 6
	maxLineLen       = 120
	crosshairSize    = 8
	prompt           = "Click to walk - ESC to release the mouse"
)

var (
	// Reused every frame to avoid per-frame color allocations.
	logBgColor     = rl.NewColor(24, 24, 24, 160)
	promptBgColor  = rl.NewColor(0, 0, 0, 170)
	crosshairColor = rl.NewColor(255, 255, 255, 200)
)

// HUD draws the 2D overlay: a crosshair while the mouse is captured, a prompt while it
// is not, and the most recent log lines.
type HUD struct {
	state *sim.State
	log   *logger.Logger
}

// New returns a HUD for st showing lines from log.
func New(st *sim.State, log *logger.Logger) *HUD {
	return &HUD{state: st, log: log}
}

// Draw renders the overlay. Call after the 3D scene.
func (h *HUD) Draw() {
	screenW := int32(rl.GetScreenWidth())
	screenH := int32(rl.GetScreenHeight())

	if h.state.Locked {
		cx, cy := screenW/2, screenH/2
		rl.DrawLine(cx-crosshairSize, cy, cx+crosshairSize, cy, crosshairColor)
		rl.DrawLine(cx, cy-crosshairSize, cx, cy+crosshairSize, crosshairColor)
	} else {
		w := rl.MeasureText(prompt, fontSize)
		x, y := (screenW-w)/2, screenH/2-fontSize/2
		rl.DrawRectangle(x-2*padding, y-padding, w+4*padding, fontSize+2*padding, promptBgColor)
		rl.DrawText(prompt, x, y, fontSize, rl.White)
	}

	lines := h.log.Tail(maxLinesOnScreen)
	if len(lines) == 0 {
		return
	}
	height := int32(len(lines))*lineHeight + padding
	top := screenH - height
	rl.DrawRectangle(0, top, screenW, height, logBgColor)
	for i, line := range lines {
		rl.DrawText(logger.Clip(line, maxLineLen), padding, top+int32(i)*lineHeight+padding/2, fontSize, rl.LightGray)
	}
}
