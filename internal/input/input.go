// Package input tracks the movement key flags and maps key codes to movement actions.
package input

import (
	"errors"
	"fmt"
	"strings"
)

// Action is a movement direction driven by a key.
type Action int

const (
	Forward Action = iota
	Backward
	Left
	Right
)

// Key is a keyboard key code. Values match raylib's KeyboardKey codes.
type Key int32

// KeyNames maps config key names to key codes.
var KeyNames = map[string]Key{
	"A": 65, "B": 66, "C": 67, "D": 68, "E": 69, "F": 70, "G": 71, "H": 72, "I": 73,
	"J": 74, "K": 75, "L": 76, "M": 77, "N": 78, "O": 79, "P": 80, "Q": 81, "R": 82,
	"S": 83, "T": 84, "U": 85, "V": 86, "W": 87, "X": 88, "Y": 89, "Z": 90,
	"SPACE": 32,
	"RIGHT": 262, "LEFT": 263, "DOWN": 264, "UP": 265,
	"KP_2": 322, "KP_4": 324, "KP_6": 326, "KP_8": 328,
}

// ErrUnknownKey is returned for key names missing from KeyNames.
var ErrUnknownKey = errors.New("unknown key")

// MoveState holds one flag per action. Flags are independent: holding both
// Forward and Backward cancels out in Axes.
type MoveState struct {
	Forward  bool
	Backward bool
	Left     bool
	Right    bool
}

// Set sets the flag for a.
func (m *MoveState) Set(a Action, pressed bool) {
	switch a {
	case Forward:
		m.Forward = pressed
	case Backward:
		m.Backward = pressed
	case Left:
		m.Left = pressed
	case Right:
		m.Right = pressed
	}
}

// Axes returns the raw input direction: x is right minus left, z is forward minus backward.
func (m MoveState) Axes() (x, z float32) {
	return b2f(m.Right) - b2f(m.Left), b2f(m.Forward) - b2f(m.Backward)
}

// Any reports whether any flag is set.
func (m MoveState) Any() bool {
	return m.Forward || m.Backward || m.Left || m.Right
}

func b2f(b bool) float32 {
	if b {
		return 1
	}
	return 0
}

// Bindings maps keys to actions. Several keys may drive the same action.
type Bindings struct {
	keys map[Key]Action
}

// NewBindings resolves key names per action. Names are case-insensitive.
func NewBindings(forward, backward, left, right []string) (*Bindings, error) {
	b := &Bindings{keys: make(map[Key]Action)}
	groups := []struct {
		action Action
		names  []string
	}{
		{Forward, forward},
		{Backward, backward},
		{Left, left},
		{Right, right},
	}
	for _, g := range groups {
		for _, name := range g.names {
			k, ok := KeyNames[strings.ToUpper(strings.TrimSpace(name))]
			if !ok {
				return nil, fmt.Errorf("bindings: %w: %q", ErrUnknownKey, name)
			}
			if prev, dup := b.keys[k]; dup && prev != g.action {
				return nil, fmt.Errorf("bindings: key %q bound to two actions", name)
			}
			b.keys[k] = g.action
		}
	}
	return b, nil
}

// Keys returns every bound key.
func (b *Bindings) Keys() []Key {
	out := make([]Key, 0, len(b.keys))
	for k := range b.keys {
		out = append(out, k)
	}
	return out
}

// Handle applies a key-down (pressed true) or key-up event to m. Unbound keys are ignored.
func (b *Bindings) Handle(k Key, pressed bool, m *MoveState) {
	if a, ok := b.keys[k]; ok {
		m.Set(a, pressed)
	}
}

// Apply feeds this frame's key edges to m: keys reported by pressed set their action,
// keys reported by released clear it. Actions of keys with no edge are left alone.
func (b *Bindings) Apply(pressed, released func(Key) bool, m *MoveState) {
	for _, k := range b.Keys() {
		switch {
		case pressed(k):
			b.Handle(k, true, m)
		case released(k):
			b.Handle(k, false, m)
		}
	}
}
