package graphics

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"walkabout/internal/input"
	"walkabout/internal/sim"
)

// Pointer captures the mouse for first-person look. A left click requests the lock,
// ESC or losing window focus releases it. A request made while the window is not
// focused is refused and reported to the state, which stays unlocked.
type Pointer struct {
	state    *sim.State
	bindings *input.Bindings
	settle   bool // skip the mouse jump caused by capturing the cursor
}

// NewPointer returns a Pointer feeding st.
func NewPointer(st *sim.State, b *input.Bindings) *Pointer {
	return &Pointer{state: st, bindings: b}
}

// Update handles lock changes, then forwards key and mouse input to the state while locked.
// Call once per frame before advancing the simulation.
func (p *Pointer) Update() {
	st := p.state
	switch {
	case !st.Locked && rl.IsMouseButtonPressed(rl.MouseButtonLeft):
		p.request()
	case st.Locked && (rl.IsKeyPressed(rl.KeyEscape) || !rl.IsWindowFocused()):
		p.release()
	}
	if !st.Locked {
		return
	}
	p.bindings.Apply(isKeyPressed, isKeyReleased, &st.Move)
	d := rl.GetMouseDelta()
	if p.settle {
		p.settle = false
		return
	}
	st.Look(d.X, d.Y)
}

func (p *Pointer) request() {
	if !rl.IsWindowFocused() {
		p.state.PointerLockError(sim.ErrPointerLockRefused)
		return
	}
	rl.DisableCursor()
	p.settle = true
	p.state.SetPointerLock(true)
}

func (p *Pointer) release() {
	rl.EnableCursor()
	p.state.SetPointerLock(false)
}

func isKeyPressed(k input.Key) bool {
	return rl.IsKeyPressed(int32(k))
}

func isKeyReleased(k input.Key) bool {
	return rl.IsKeyReleased(int32(k))
}
