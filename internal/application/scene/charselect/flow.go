// Package charselect implements the character-selection screen: a phase
// machine that walks the player through one character pick per instinct.
package charselect

import (
	"github.com/younwookim/paragon/internal/application/input"
	"github.com/younwookim/paragon/internal/application/state"
	"github.com/younwookim/paragon/internal/domain/entity"
	"github.com/younwookim/paragon/internal/logger"
)

// DefaultFadeSpeed is the fade rate in alpha units per second
const DefaultFadeSpeed = 2.0

// Command is the abstract input a phase reacts to
type Command int

const (
	CmdNone Command = iota
	CmdUp
	CmdDown
	CmdConfirm
	CmdBack
	CmdDetails
)

// CommandOf maps a keyboard action onto a flow command
func CommandOf(a input.Action) Command {
	switch a {
	case input.ActionUp:
		return CmdUp
	case input.ActionDown:
		return CmdDown
	case input.ActionConfirm, input.ActionOK:
		return CmdConfirm
	case input.ActionBack, input.ActionCancel:
		return CmdBack
	case input.ActionDetails:
		return CmdDetails
	}
	return CmdNone
}

// Outcome is how the flow was left
type Outcome int

const (
	OutcomeNone Outcome = iota
	// OutcomeParty means every instinct has a character.
	OutcomeParty
	// OutcomeTitle means the player abandoned the flow.
	OutcomeTitle
)

// edge is the side effect of one command in one phase
type edge func(f *Flow)

// transitions is the complete (phase, command) table. Animated phases have
// no edges: they only advance through Update.
var transitions = map[state.Phase]map[Command]edge{
	state.PhaseInstinct: {
		CmdUp:   func(f *Flow) { f.cycle(-1) },
		CmdDown: func(f *Flow) { f.cycle(+1) },
		CmdConfirm: func(f *Flow) {
			if inst, ok := f.instinctAt(f.selectedIndex); ok && !f.party.Picked(inst.Name) {
				f.beginTransition()
			}
		},
		CmdBack: func(f *Flow) { f.setPhase(state.PhaseExitConfirm) },
		CmdDetails: func(f *Flow) {
			if inst, ok := f.instinctAt(f.selectedIndex); ok && f.selectedInstinct == "" {
				f.selectedInstinct = inst.Name
			}
			f.setPhase(state.PhaseInstinctDetails)
		},
	},
	state.PhaseCharacter: {
		CmdUp:      func(f *Flow) { f.cycle(-1) },
		CmdDown:    func(f *Flow) { f.cycle(+1) },
		CmdConfirm: func(f *Flow) { f.setPhase(state.PhaseConfirm) },
		CmdBack:    func(f *Flow) { f.resetToInstinct() },
		CmdDetails: func(f *Flow) { f.setPhase(state.PhaseProfile) },
	},
	state.PhaseProfile: {
		CmdBack:    func(f *Flow) { f.setPhase(state.PhaseCharacter) },
		CmdDetails: func(f *Flow) { f.setPhase(state.PhaseDetails) },
	},
	state.PhaseDetails: {
		CmdConfirm: func(f *Flow) { f.setPhase(state.PhaseConfirm) },
		CmdBack:    func(f *Flow) { f.setPhase(state.PhaseCharacter) },
	},
	state.PhaseInstinctDetails: {
		CmdBack: func(f *Flow) { f.setPhase(state.PhaseInstinct) },
	},
	state.PhaseConfirm: {
		CmdConfirm: func(f *Flow) { f.commit() },
		CmdBack:    func(f *Flow) { f.setPhase(state.PhaseCharacter) },
	},
	state.PhaseExitConfirm: {
		CmdConfirm: func(f *Flow) { f.beginExit(OutcomeTitle) },
		CmdBack:    func(f *Flow) { f.setPhase(state.PhaseInstinct) },
	},
	state.PhaseTransition:     {},
	state.PhaseExitTransition: {},
}

// Flow is the character-selection state machine. It knows nothing about
// drawing or zones; the screen rebuilds its zones from OnPhaseChange.
type Flow struct {
	roster *entity.Roster

	phase            state.Phase
	selectedInstinct string
	selectedIndex    int
	party            entity.Party

	alpha         float64
	direction     float64
	transitioning bool
	fadeSpeed     float64
	outcome       Outcome

	onPhaseChange func(p state.Phase)
	onExit        func(o Outcome, party entity.Party)
}

// NewFlow creates a flow over roster, reset to the instinct phase
func NewFlow(roster *entity.Roster, fadeSpeed float64) *Flow {
	if roster == nil {
		roster = &entity.Roster{}
	}
	if fadeSpeed <= 0 {
		fadeSpeed = DefaultFadeSpeed
	}
	f := &Flow{roster: roster, fadeSpeed: fadeSpeed}
	f.Reset()
	return f
}

// OnPhaseChange registers the callback run after every phase change
func (f *Flow) OnPhaseChange(fn func(p state.Phase)) { f.onPhaseChange = fn }

// OnExit registers the callback run once the exit fade has finished
func (f *Flow) OnExit(fn func(o Outcome, party entity.Party)) { f.onExit = fn }

// Reset starts a new session: no picks, instinct phase, no fade
func (f *Flow) Reset() {
	f.phase = state.PhaseInstinct
	f.selectedInstinct = ""
	f.selectedIndex = 0
	f.party = entity.NewParty(f.roster.InstinctNames())
	f.alpha = 0
	f.direction = 1
	f.transitioning = false
	f.outcome = OutcomeNone
	f.notify()
}

func (f *Flow) Phase() state.Phase           { return f.phase }
func (f *Flow) SelectedInstinct() string     { return f.selectedInstinct }
func (f *Flow) SelectedIndex() int           { return f.selectedIndex }
func (f *Flow) Party() entity.Party          { return f.party }
func (f *Flow) Alpha() float64               { return f.alpha }
func (f *Flow) Direction() float64           { return f.direction }
func (f *Flow) Transitioning() bool          { return f.transitioning }
func (f *Flow) Outcome() Outcome             { return f.outcome }
func (f *Flow) Roster() *entity.Roster       { return f.roster }
func (f *Flow) Instincts() []entity.Instinct { return f.roster.Instincts }

// Characters returns the characters of the selected instinct
func (f *Flow) Characters() []entity.Character {
	return f.roster.CharactersOf(f.selectedInstinct)
}

// SelectedCharacter returns the highlighted character in the character phases
func (f *Flow) SelectedCharacter() (entity.Character, bool) {
	chars := f.Characters()
	if f.selectedIndex < 0 || f.selectedIndex >= len(chars) {
		return entity.Character{}, false
	}
	return chars[f.selectedIndex], true
}

// Apply runs the edge for cmd in the current phase. Commands without an
// edge, and every command during a fade, are ignored.
func (f *Flow) Apply(cmd Command) {
	if f.transitioning {
		logger.Debugf(logger.Verbose, "[CharacterSelectView] %s ignored while transitioning", f.phase)
		return
	}
	if e, ok := transitions[f.phase][cmd]; ok {
		e(f)
	}
}

// HandleAction applies a keyboard action
func (f *Flow) HandleAction(a input.Action) {
	f.Apply(CommandOf(a))
}

// TapInstinct handles a tap on instinct row i. Tapping the highlighted row
// again begins the transition; any other row only moves the highlight.
func (f *Flow) TapInstinct(i int) {
	if f.transitioning || f.phase != state.PhaseInstinct {
		return
	}
	inst, ok := f.instinctAt(i)
	if !ok || f.party.Picked(inst.Name) {
		return
	}
	if f.selectedIndex == i {
		f.beginTransition()
		return
	}
	f.selectedIndex = i
	f.selectedInstinct = inst.Name
}

// TapCharacter handles a tap on character row i, with the same re-tap rule
func (f *Flow) TapCharacter(i int) {
	if f.transitioning || f.phase != state.PhaseCharacter {
		return
	}
	if i < 0 || i >= len(f.Characters()) {
		return
	}
	if f.selectedIndex == i {
		f.setPhase(state.PhaseConfirm)
		return
	}
	f.selectedIndex = i
}

// Update advances the fade by dt seconds
func (f *Flow) Update(dt float64) {
	if !f.transitioning {
		return
	}
	f.alpha = entity.Clamp(f.alpha+f.direction*dt*f.fadeSpeed, 0, 1)

	if f.phase == state.PhaseExitTransition {
		if f.alpha >= 1 {
			f.transitioning = false
			logger.Debugf(logger.General, "[CharacterSelectView] exit fade done")
			if f.onExit != nil {
				f.onExit(f.outcome, f.party.Clone())
			}
		}
		return
	}

	switch {
	case f.direction > 0 && f.alpha >= 1:
		f.phase = state.PhaseCharacter
		f.selectedIndex = 0
		f.direction = -1
		f.notify()
	case f.direction < 0 && f.alpha <= 0:
		f.transitioning = false
	}
}

func (f *Flow) instinctAt(i int) (entity.Instinct, bool) {
	if i < 0 || i >= len(f.roster.Instincts) {
		return entity.Instinct{}, false
	}
	return f.roster.Instincts[i], true
}

func (f *Flow) currentListLen() int {
	if f.phase == state.PhaseInstinct {
		return len(f.roster.Instincts)
	}
	return len(f.Characters())
}

func (f *Flow) cycle(step int) {
	n := f.currentListLen()
	if n == 0 {
		return
	}
	f.selectedIndex = ((f.selectedIndex+step)%n + n) % n
}

func (f *Flow) setPhase(p state.Phase) {
	if f.phase == p {
		return
	}
	f.phase = p
	f.notify()
}

func (f *Flow) resetToInstinct() {
	f.selectedInstinct = ""
	f.selectedIndex = 0
	f.setPhase(state.PhaseInstinct)
}

func (f *Flow) beginTransition() {
	inst, ok := f.instinctAt(f.selectedIndex)
	if !ok {
		return
	}
	f.selectedInstinct = inst.Name
	f.phase = state.PhaseTransition
	f.transitioning = true
	f.alpha = 0
	f.direction = 1
	f.notify()
}

func (f *Flow) beginExit(o Outcome) {
	f.outcome = o
	f.phase = state.PhaseExitTransition
	f.transitioning = true
	f.alpha = 0
	f.direction = 1
	f.notify()
}

func (f *Flow) commit() {
	c, ok := f.SelectedCharacter()
	if !ok {
		logger.Warnf("[CharacterSelectView] nothing to confirm for %q", f.selectedInstinct)
		return
	}
	f.party[f.selectedInstinct] = c.Name
	logger.Infof("[CharacterSelectView] %s chose %s (%d/%d)", f.selectedInstinct, c.Name, f.party.Filled(), len(f.party))

	if f.party.Complete() {
		f.beginExit(OutcomeParty)
		return
	}
	f.resetToInstinct()
}

func (f *Flow) notify() {
	logger.Debugf(logger.General, "[CharacterSelectView] phase %s", f.phase)
	if f.onPhaseChange != nil {
		f.onPhaseChange(f.phase)
	}
}
