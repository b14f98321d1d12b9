package input

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func defaultBindings(t *testing.T) *Bindings {
	b, err := NewBindings(
		[]string{"W", "z", "UP"},
		[]string{"S", "DOWN"},
		[]string{"A", "Q", "LEFT"},
		[]string{"D", "RIGHT"},
	)
	require.NoError(t, err)
	return b
}

func TestHandle(t *testing.T) {
	b := defaultBindings(t)
	var m MoveState

	b.Handle(KeyNames["Z"], true, &m)
	b.Handle(KeyNames["RIGHT"], true, &m)
	require.Equal(t, MoveState{Forward: true, Right: true}, m)

	x, z := m.Axes()
	require.Equal(t, float32(1), x)
	require.Equal(t, float32(1), z)

	b.Handle(KeyNames["Z"], false, &m)
	b.Handle(KeyNames["X"], true, &m) // unbound
	require.Equal(t, MoveState{Right: true}, m)
}

func TestOpposingKeysCancel(t *testing.T) {
	m := MoveState{Forward: true, Backward: true, Left: true}
	x, z := m.Axes()
	require.Equal(t, float32(-1), x)
	require.Equal(t, float32(0), z)
	require.True(t, m.Any())
	require.False(t, MoveState{}.Any())
}

func TestApply(t *testing.T) {
	b := defaultBindings(t)
	require.Len(t, b.Keys(), 10)

	edges := func(keys ...string) func(Key) bool {
		set := make(map[Key]bool)
		for _, k := range keys {
			set[KeyNames[k]] = true
		}
		return func(k Key) bool { return set[k] }
	}

	m := MoveState{Backward: true}
	b.Apply(edges("UP", "A"), edges(), &m)
	require.Equal(t, MoveState{Forward: true, Backward: true, Left: true}, m)

	b.Apply(edges(), edges("S", "Q"), &m)
	require.Equal(t, MoveState{Forward: true}, m)

	// Held keys produce no edges and keep their flags.
	b.Apply(edges(), edges(), &m)
	require.Equal(t, MoveState{Forward: true}, m)

	b.Apply(edges("X"), edges("UP"), &m)
	require.Equal(t, MoveState{}, m)
}

func TestNewBindingsErrors(t *testing.T) {
	_, err := NewBindings([]string{"NOPE"}, nil, nil, nil)
	require.ErrorIs(t, err, ErrUnknownKey)

	_, err = NewBindings([]string{"W"}, []string{"W"}, nil, nil)
	require.Error(t, err)
}
