// Package state defines the named phases of the character-selection flow.
package state

// Phase represents the current screen of the character-selection flow
type Phase int

const (
	PhaseInstinct Phase = iota
	PhaseCharacter
	PhaseProfile
	PhaseDetails
	PhaseInstinctDetails
	PhaseConfirm
	PhaseExitConfirm
	PhaseTransition
	PhaseExitTransition
)

// All lists every phase in declaration order.
var All = []Phase{
	PhaseInstinct,
	PhaseCharacter,
	PhaseProfile,
	PhaseDetails,
	PhaseInstinctDetails,
	PhaseConfirm,
	PhaseExitConfirm,
	PhaseTransition,
	PhaseExitTransition,
}

// String returns the string representation of the phase
func (p Phase) String() string {
	switch p {
	case PhaseInstinct:
		return "instinct"
	case PhaseCharacter:
		return "character"
	case PhaseProfile:
		return "profile"
	case PhaseDetails:
		return "details"
	case PhaseInstinctDetails:
		return "instinctDetails"
	case PhaseConfirm:
		return "confirm"
	case PhaseExitConfirm:
		return "exitConfirm"
	case PhaseTransition:
		return "transition"
	case PhaseExitTransition:
		return "exitTransition"
	default:
		return "unknown"
	}
}

// Animated reports whether the phase is driven by Update rather than input
func (p Phase) Animated() bool {
	return p == PhaseTransition || p == PhaseExitTransition
}
