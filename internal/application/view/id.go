package view

import (
	"fmt"
	"strings"
)

// ID identifies a view. Factories are registered per ID.
type ID int

const (
	NoView ID = iota
	Title
	CharacterSelect
	Map
	Options
	Pause
)

// All lists every registrable view id
var All = []ID{Title, CharacterSelect, Map, Options, Pause}

// String returns the view name used in logs and on the command line
func (id ID) String() string {
	switch id {
	case NoView:
		return "none"
	case Title:
		return "TitleView"
	case CharacterSelect:
		return "CharacterSelectView"
	case Map:
		return "MapView"
	case Options:
		return "OptionsView"
	case Pause:
		return "PauseView"
	default:
		return "unknown"
	}
}

// ParseID accepts a view name with or without the "View" suffix, case-insensitively
func ParseID(name string) (ID, error) {
	want := strings.TrimSuffix(strings.ToLower(strings.TrimSpace(name)), "view")
	for _, id := range All {
		if strings.TrimSuffix(strings.ToLower(id.String()), "view") == want {
			return id, nil
		}
	}
	return NoView, fmt.Errorf("%w: %q", ErrUnknownView, name)
}
