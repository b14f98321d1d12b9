package graphics

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"walkabout/internal/config"
)

// Hooks are the per-frame callbacks of Run. Any of them may be nil.
type Hooks struct {
	// Update runs first each frame. Callers time the frame themselves.
	Update func()
	// Resize runs when the window size changed since the last frame.
	Resize func(width, height int32)
	// Draw runs between BeginDrawing and EndDrawing, after the screen is cleared.
	Draw func()
	// Close runs once after the loop ends, while the GL context still exists.
	Close func()
}

// Run opens the window and drives the main loop until the window is closed.
// ESC does not quit; it releases the mouse (see Pointer). Close via the window button.
func Run(cfg config.Window, clear func() rl.Color, h Hooks) {
	var flags uint32 = rl.FlagWindowResizable
	if cfg.MSAA {
		flags |= rl.FlagMsaa4xHint
	}
	if cfg.Fullscreen {
		flags |= rl.FlagFullscreenMode
	}
	rl.SetConfigFlags(flags)

	width, height := cfg.Width, cfg.Height
	if cfg.Fullscreen {
		width, height = int32(rl.GetMonitorWidth(0)), int32(rl.GetMonitorHeight(0))
	}
	rl.InitWindow(width, height, cfg.Title)
	defer rl.CloseWindow()

	rl.SetWindowMinSize(320, 240)
	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(cfg.TargetFPS)

	if h.Resize != nil {
		h.Resize(int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()))
	}
	for !rl.WindowShouldClose() {
		if h.Resize != nil && rl.IsWindowResized() {
			h.Resize(int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()))
		}
		if h.Update != nil {
			h.Update()
		}

		rl.BeginDrawing()
		rl.ClearBackground(clear())
		if h.Draw != nil {
			h.Draw()
		}
		rl.EndDrawing()
	}
	if h.Close != nil {
		h.Close()
	}
}
