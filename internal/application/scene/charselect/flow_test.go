package charselect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/paragon/internal/application/input"
	"github.com/younwookim/paragon/internal/application/state"
	"github.com/younwookim/paragon/internal/domain/entity"
)

func testRoster() *entity.Roster {
	chars := func(names ...string) []entity.Character {
		out := make([]entity.Character, len(names))
		for i, n := range names {
			out[i] = entity.Character{Name: n, Title: "The " + n, Stats: []entity.Stat{{Name: "HP", Value: 100 + i}}}
		}
		return out
	}
	return &entity.Roster{
		Instincts: []entity.Instinct{
			{Name: "Faith"}, {Name: "Flesh"}, {Name: "Reason"}, {Name: "Insight"},
		},
		Characters: map[string][]entity.Character{
			"Faith":   chars("Noam", "Viktor", "Mirelda"),
			"Flesh":   chars("Rauk", "Jobe", "Karinna"),
			"Reason":  chars("Ephram", "Marrek", "Ilyra"),
			"Insight": chars("Elara", "Liraen", "Aric"),
		},
	}
}

// runFade advances the fade until it stops, with a frame cap
func runFade(f *Flow, dt float64) int {
	frames := 0
	for f.Transitioning() && frames < 1000 {
		f.Update(dt)
		frames++
	}
	return frames
}

// enterCharacterPhase drives the flow from instinct to character for row i
func enterCharacterPhase(t *testing.T, f *Flow, i int) {
	t.Helper()
	f.TapInstinct(i)
	if f.Phase() != state.PhaseTransition {
		f.TapInstinct(i)
	}
	require.Equal(t, state.PhaseTransition, f.Phase())
	runFade(f, 0.1)
	require.Equal(t, state.PhaseCharacter, f.Phase())
}

func TestTransitions_CoverEveryPhase(t *testing.T) {
	for _, p := range state.All {
		_, ok := transitions[p]
		assert.True(t, ok, "phase %s has no transition entry", p)
	}
	for _, p := range []state.Phase{state.PhaseTransition, state.PhaseExitTransition} {
		assert.Empty(t, transitions[p], "animated phase %s must not react to input", p)
	}
}

func TestCommandOf(t *testing.T) {
	tests := []struct {
		action input.Action
		want   Command
	}{
		{input.ActionUp, CmdUp},
		{input.ActionDown, CmdDown},
		{input.ActionConfirm, CmdConfirm},
		{input.ActionOK, CmdConfirm},
		{input.ActionBack, CmdBack},
		{input.ActionCancel, CmdBack},
		{input.ActionDetails, CmdDetails},
		{input.ActionPause, CmdNone},
	}
	for _, tt := range tests {
		t.Run(tt.action.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, CommandOf(tt.action))
		})
	}
}

func TestFlow_RetapSameInstinctRunsTransition(t *testing.T) {
	f := NewFlow(testRoster(), 2)
	var phases []state.Phase
	f.OnPhaseChange(func(p state.Phase) { phases = append(phases, p) })

	f.TapInstinct(1)
	assert.Equal(t, state.PhaseInstinct, f.Phase())
	f.TapInstinct(1)

	require.Equal(t, state.PhaseTransition, f.Phase())
	assert.Equal(t, "Flesh", f.SelectedInstinct())
	assert.True(t, f.Transitioning())
	assert.Equal(t, 1.0, f.Direction())
	assert.Equal(t, 0.0, f.Alpha())

	// Input is ignored mid-fade.
	f.HandleAction(input.ActionBack)
	f.TapInstinct(2)
	assert.Equal(t, state.PhaseTransition, f.Phase())

	f.Update(0.25)
	assert.InDelta(t, 0.5, f.Alpha(), 1e-9)
	assert.Equal(t, state.PhaseTransition, f.Phase())

	f.Update(0.25)
	assert.Equal(t, 1.0, f.Alpha())
	assert.Equal(t, state.PhaseCharacter, f.Phase())
	assert.Equal(t, -1.0, f.Direction())
	assert.True(t, f.Transitioning())

	// Overshooting clamps and never flips the direction again.
	f.Update(0.4)
	assert.InDelta(t, 0.2, f.Alpha(), 1e-9)
	f.Update(1)
	assert.Equal(t, 0.0, f.Alpha())
	assert.False(t, f.Transitioning())
	assert.Equal(t, -1.0, f.Direction())

	assert.Equal(t, []state.Phase{state.PhaseTransition, state.PhaseCharacter}, phases)
}

func TestFlow_TapDifferentInstinctOnlySelects(t *testing.T) {
	f := NewFlow(testRoster(), 2)
	changes := 0
	f.OnPhaseChange(func(state.Phase) { changes++ })

	for _, i := range []int{2, 3, 1} {
		f.TapInstinct(i)

		assert.Equal(t, state.PhaseInstinct, f.Phase())
		assert.Equal(t, i, f.SelectedIndex())
		assert.Equal(t, testRoster().Instincts[i].Name, f.SelectedInstinct())
	}
	assert.Equal(t, 0, changes)
	assert.False(t, f.Transitioning())
}

func TestFlow_FirstTapOnHighlightedRowAdvances(t *testing.T) {
	f := NewFlow(testRoster(), 2)

	f.TapInstinct(0)

	assert.Equal(t, state.PhaseTransition, f.Phase())
	assert.Equal(t, "Faith", f.SelectedInstinct())
}

func TestFlow_LockedInstinctIsNoop(t *testing.T) {
	f := NewFlow(testRoster(), 2)
	f.Party()["Faith"] = "Noam"

	f.TapInstinct(0)
	f.HandleAction(input.ActionConfirm)

	assert.Equal(t, state.PhaseInstinct, f.Phase())
	assert.False(t, f.Transitioning())

	// Moving the highlight onto a locked row by tap is also ignored.
	f.TapInstinct(1)
	f.TapInstinct(0)
	assert.Equal(t, 1, f.SelectedIndex())
}

func TestFlow_KeyboardCycleWraps(t *testing.T) {
	f := NewFlow(testRoster(), 2)

	f.HandleAction(input.ActionUp)
	assert.Equal(t, 3, f.SelectedIndex())
	f.HandleAction(input.ActionDown)
	f.HandleAction(input.ActionDown)
	assert.Equal(t, 1, f.SelectedIndex())

	f.HandleAction(input.ActionConfirm)
	runFade(f, 0.1)
	require.Equal(t, state.PhaseCharacter, f.Phase())
	assert.Equal(t, "Flesh", f.SelectedInstinct())
	assert.Equal(t, 0, f.SelectedIndex(), "character highlight starts on the first row")

	f.HandleAction(input.ActionUp)
	assert.Equal(t, 2, f.SelectedIndex())
}

func TestFlow_PhaseTable(t *testing.T) {
	tests := []struct {
		name  string
		setup func(f *Flow)
		act   input.Action
		want  state.Phase
	}{
		{"instinct back", nil, input.ActionBack, state.PhaseExitConfirm},
		{"instinct details", nil, input.ActionDetails, state.PhaseInstinctDetails},
		{"instinct details back", func(f *Flow) { f.HandleAction(input.ActionDetails) }, input.ActionCancel, state.PhaseInstinct},
		{"exit confirm back", func(f *Flow) { f.HandleAction(input.ActionBack) }, input.ActionBack, state.PhaseInstinct},
		{"exit confirm ok", func(f *Flow) { f.HandleAction(input.ActionBack) }, input.ActionOK, state.PhaseExitTransition},
		{"character details", enterFaith, input.ActionDetails, state.PhaseProfile},
		{"character confirm", enterFaith, input.ActionConfirm, state.PhaseConfirm},
		{"character back", enterFaith, input.ActionBack, state.PhaseInstinct},
		{"character pause ignored", enterFaith, input.ActionPause, state.PhaseCharacter},
		{"profile back", func(f *Flow) { enterFaith(f); f.HandleAction(input.ActionDetails) }, input.ActionBack, state.PhaseCharacter},
		{"profile details", func(f *Flow) { enterFaith(f); f.HandleAction(input.ActionDetails) }, input.ActionDetails, state.PhaseDetails},
		{"profile confirm ignored", func(f *Flow) { enterFaith(f); f.HandleAction(input.ActionDetails) }, input.ActionConfirm, state.PhaseProfile},
		{"details confirm", toDetails, input.ActionConfirm, state.PhaseConfirm},
		{"details back", toDetails, input.ActionBack, state.PhaseCharacter},
		{"confirm back", func(f *Flow) { enterFaith(f); f.HandleAction(input.ActionConfirm) }, input.ActionBack, state.PhaseCharacter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFlow(testRoster(), 2)
			if tt.setup != nil {
				tt.setup(f)
			}

			f.HandleAction(tt.act)

			assert.Equal(t, tt.want, f.Phase())
		})
	}
}

func enterFaith(f *Flow) {
	f.TapInstinct(0)
	runFade(f, 0.1)
}

func toDetails(f *Flow) {
	enterFaith(f)
	f.HandleAction(input.ActionDetails)
	f.HandleAction(input.ActionDetails)
}

func TestFlow_CharacterBackResetsSelection(t *testing.T) {
	f := NewFlow(testRoster(), 2)
	enterCharacterPhase(t, f, 2)
	f.TapCharacter(1)

	f.HandleAction(input.ActionBack)

	assert.Equal(t, state.PhaseInstinct, f.Phase())
	assert.Equal(t, "", f.SelectedInstinct())
	assert.Equal(t, 0, f.SelectedIndex())
}

func TestFlow_TapCharacter(t *testing.T) {
	f := NewFlow(testRoster(), 2)
	enterCharacterPhase(t, f, 0)

	f.TapCharacter(2)
	assert.Equal(t, state.PhaseCharacter, f.Phase())
	assert.Equal(t, 2, f.SelectedIndex())

	f.TapCharacter(2)
	assert.Equal(t, state.PhaseConfirm, f.Phase())
	c, ok := f.SelectedCharacter()
	require.True(t, ok)
	assert.Equal(t, "Mirelda", c.Name)
}

func TestFlow_ConfirmBeforeLastResetsToInstinct(t *testing.T) {
	f := NewFlow(testRoster(), 2)
	enterCharacterPhase(t, f, 1)
	f.TapCharacter(0)
	require.Equal(t, state.PhaseConfirm, f.Phase())

	f.HandleAction(input.ActionConfirm)

	assert.Equal(t, state.PhaseInstinct, f.Phase())
	assert.Equal(t, "", f.SelectedInstinct())
	assert.Equal(t, 0, f.SelectedIndex())
	assert.Equal(t, "Rauk", f.Party()["Flesh"])
	assert.Equal(t, 1, f.Party().Filled())
	assert.Equal(t, OutcomeNone, f.Outcome())
}

func TestFlow_ConfirmFourthLeavesFlow(t *testing.T) {
	f := NewFlow(testRoster(), 2)
	f.Party()["Faith"] = "Noam"
	f.Party()["Flesh"] = "Rauk"
	f.Party()["Reason"] = "Ilyra"

	var gotOutcome Outcome
	var gotParty entity.Party
	exits := 0
	f.OnExit(func(o Outcome, p entity.Party) {
		exits++
		gotOutcome, gotParty = o, p
	})

	enterCharacterPhase(t, f, 3)
	f.TapCharacter(1)
	f.TapCharacter(1)
	f.HandleAction(input.ActionConfirm)

	require.Equal(t, state.PhaseExitTransition, f.Phase())
	assert.Equal(t, OutcomeParty, f.Outcome())
	assert.Equal(t, 0, exits, "leaves only after the fade")

	f.HandleAction(input.ActionBack)
	assert.Equal(t, state.PhaseExitTransition, f.Phase())

	runFade(f, 0.1)

	assert.Equal(t, 1, exits)
	assert.Equal(t, OutcomeParty, gotOutcome)
	assert.True(t, gotParty.Complete())
	assert.Equal(t, "Liraen", gotParty["Insight"])

	// Further updates do not fire the exit again.
	f.Update(1)
	assert.Equal(t, 1, exits)
}

func TestFlow_ExitToTitle(t *testing.T) {
	f := NewFlow(testRoster(), 2)
	var got Outcome
	f.OnExit(func(o Outcome, _ entity.Party) { got = o })

	f.HandleAction(input.ActionBack)
	f.HandleAction(input.ActionConfirm)
	runFade(f, 0.1)

	assert.Equal(t, OutcomeTitle, got)
}

func TestFlow_ResetClearsSession(t *testing.T) {
	f := NewFlow(testRoster(), 2)
	enterCharacterPhase(t, f, 0)
	f.HandleAction(input.ActionConfirm)
	f.HandleAction(input.ActionConfirm)
	require.Equal(t, 1, f.Party().Filled())

	f.Reset()

	assert.Equal(t, state.PhaseInstinct, f.Phase())
	assert.Equal(t, 0, f.Party().Filled())
	assert.Len(t, f.Party(), 4)
	assert.False(t, f.Transitioning())
}

func TestFlow_EmptyRoster(t *testing.T) {
	f := NewFlow(nil, 0)

	assert.NotPanics(t, func() {
		f.HandleAction(input.ActionDown)
		f.HandleAction(input.ActionConfirm)
		f.TapInstinct(0)
		f.Update(0.1)
	})
	assert.Equal(t, state.PhaseInstinct, f.Phase())
}
