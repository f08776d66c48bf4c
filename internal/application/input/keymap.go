package input

import (
	"fmt"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
)

// Binding maps one key to one action.
type Binding struct {
	Key    ebiten.Key
	Action Action
}

// Keymap is an ordered list of key bindings.
type Keymap []Binding

// DefaultKeymap mirrors the stock keyboard layout.
func DefaultKeymap() Keymap {
	return Keymap{
		{ebiten.KeyArrowUp, ActionUp},
		{ebiten.KeyArrowDown, ActionDown},
		{ebiten.KeyArrowLeft, ActionLeft},
		{ebiten.KeyArrowRight, ActionRight},
		{ebiten.KeyEnter, ActionConfirm},
		{ebiten.KeyEscape, ActionCancel},
		{ebiten.KeyBackspace, ActionBack},
		{ebiten.KeyI, ActionDetails},
		{ebiten.KeyN, ActionNew},
		{ebiten.KeyL, ActionLoad},
		{ebiten.KeyO, ActionOptions},
		{ebiten.KeyC, ActionInteract},
		{ebiten.KeyP, ActionPause},
	}
}

// ParseKeymap builds a keymap from ebiten key names to action names.
// Bindings are sorted by key so the result is deterministic.
func ParseKeymap(raw map[string]string) (Keymap, error) {
	km := make(Keymap, 0, len(raw))
	for keyName, actionName := range raw {
		var key ebiten.Key
		if err := key.UnmarshalText([]byte(keyName)); err != nil {
			return nil, fmt.Errorf("failed to parse key %q: %w", keyName, err)
		}
		action, err := ParseAction(actionName)
		if err != nil {
			return nil, fmt.Errorf("failed to parse binding for %q: %w", keyName, err)
		}
		km = append(km, Binding{Key: key, Action: action})
	}
	sort.Slice(km, func(i, j int) bool { return km[i].Key < km[j].Key })
	return km, nil
}

// Lookup returns the action bound to key.
func (km Keymap) Lookup(key ebiten.Key) (Action, bool) {
	for _, b := range km {
		if b.Key == key {
			return b.Action, true
		}
	}
	return ActionNone, false
}
