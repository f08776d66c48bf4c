package input

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAction_String(t *testing.T) {
	assert.Equal(t, "CONFIRM", ActionConfirm.String())
	assert.Equal(t, "CANCEL", ActionCancel.String())
	assert.Equal(t, "UNKNOWN", Action(99).String())
}

func TestAction_Aliases(t *testing.T) {
	assert.True(t, ActionConfirm.IsConfirm())
	assert.True(t, ActionOK.IsConfirm())
	assert.False(t, ActionBack.IsConfirm())

	assert.True(t, ActionBack.IsBack())
	assert.True(t, ActionCancel.IsBack())
	assert.False(t, ActionConfirm.IsBack())

	assert.True(t, ActionUp.IsVertical())
	assert.True(t, ActionDown.IsVertical())
	assert.False(t, ActionLeft.IsVertical())
}

func TestParseAction(t *testing.T) {
	a, err := ParseAction(" details ")
	require.NoError(t, err)
	assert.Equal(t, ActionDetails, a)

	_, err = ParseAction("NONE")
	assert.Error(t, err)

	_, err = ParseAction("JUMP")
	assert.Error(t, err)
}

func TestParseKeymap(t *testing.T) {
	km, err := ParseKeymap(map[string]string{
		"ArrowUp": "UP",
		"Enter":   "CONFIRM",
		"Escape":  "CANCEL",
	})
	require.NoError(t, err)
	require.Len(t, km, 3)

	a, ok := km.Lookup(ebiten.KeyEnter)
	assert.True(t, ok)
	assert.Equal(t, ActionConfirm, a)

	_, ok = km.Lookup(ebiten.KeyZ)
	assert.False(t, ok)
}

func TestParseKeymap_Errors(t *testing.T) {
	_, err := ParseKeymap(map[string]string{"NotAKey": "UP"})
	assert.Error(t, err)

	_, err = ParseKeymap(map[string]string{"Enter": "FLY"})
	assert.Error(t, err)
}

func TestDefaultKeymap(t *testing.T) {
	km := DefaultKeymap()

	a, ok := km.Lookup(ebiten.KeyEscape)
	assert.True(t, ok)
	assert.Equal(t, ActionCancel, a)

	a, ok = km.Lookup(ebiten.KeyP)
	assert.True(t, ok)
	assert.Equal(t, ActionPause, a)
}

func TestFrame_Empty(t *testing.T) {
	assert.True(t, Frame{}.Empty())
	assert.False(t, Frame{Actions: []Action{ActionUp}}.Empty())
}
