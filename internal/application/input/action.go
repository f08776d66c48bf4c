// Package input translates device input into abstract actions and pointer events.
package input

import (
	"fmt"
	"strings"
)

// Action is a logical command produced by the keyboard map.
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionConfirm
	ActionOK
	ActionCancel
	ActionBack
	ActionDetails
	ActionNew
	ActionLoad
	ActionOptions
	ActionInteract
	ActionPause
)

var actionNames = map[Action]string{
	ActionNone:     "NONE",
	ActionUp:       "UP",
	ActionDown:     "DOWN",
	ActionLeft:     "LEFT",
	ActionRight:    "RIGHT",
	ActionConfirm:  "CONFIRM",
	ActionOK:       "OK",
	ActionCancel:   "CANCEL",
	ActionBack:     "BACK",
	ActionDetails:  "DETAILS",
	ActionNew:      "NEW",
	ActionLoad:     "LOAD",
	ActionOptions:  "OPTIONS",
	ActionInteract: "INTERACT",
	ActionPause:    "PAUSE",
}

// String returns the upper-case action name.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "UNKNOWN"
}

// IsConfirm reports whether a is CONFIRM or its OK alias.
func (a Action) IsConfirm() bool {
	return a == ActionConfirm || a == ActionOK
}

// IsBack reports whether a is BACK or its CANCEL alias.
func (a Action) IsBack() bool {
	return a == ActionBack || a == ActionCancel
}

// IsVertical reports whether a is UP or DOWN.
func (a Action) IsVertical() bool {
	return a == ActionUp || a == ActionDown
}

// ParseAction resolves an action name, case-insensitively.
func ParseAction(name string) (Action, error) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	for a, n := range actionNames {
		if a != ActionNone && n == upper {
			return a, nil
		}
	}
	return ActionNone, fmt.Errorf("unknown action %q", name)
}
