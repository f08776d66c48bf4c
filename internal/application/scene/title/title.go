// Package title implements the title screen.
package title

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/paragon/internal/application/input"
	"github.com/younwookim/paragon/internal/application/scene"
	"github.com/younwookim/paragon/internal/application/view"
	"github.com/younwookim/paragon/internal/logger"
)

const heading = "PARAGON"

// View is the title screen: New Game, Continue when a save exists, Options
type View struct {
	scene.Base
	hasSave bool
	elapsed float64
}

// New creates the title screen
func New() *View {
	v := &View{Base: scene.NewBase("TitleView")}
	v.SetZoneBuilder(v.buildZones)
	return v
}

func (v *View) Activate(p view.Payload) {
	v.hasSave = v.Services.Saves != nil && v.Services.Saves.HasSave()
	v.elapsed = 0
	v.Enter(p)
}

// HasSave reports whether Continue is offered
func (v *View) HasSave() bool { return v.hasSave }

func (v *View) buildZones() {
	w, h := v.Size()
	zw, zh := w*0.5, float64(scene.ButtonHeight)
	zx := w/2 - zw/2

	v.AddZone("NewGame", zx, h*0.55-zh/2, zw, zh, v.newGame)
	if v.hasSave {
		v.AddZone("Continue", zx, h*0.65-zh/2, zw, zh, v.continueGame)
	}
	v.AddCornerButton("Options", scene.CornerLeft, v.openOptions)
}

func (v *View) newGame() {
	logger.Debugf(logger.General, "[TitleView] starting new game")
	v.Goto(view.CharacterSelect, view.Payload{})
}

func (v *View) continueGame() {
	if !v.hasSave {
		return
	}
	logger.Debugf(logger.General, "[TitleView] loading saved game")
	v.Goto(view.Map, view.Payload{})
}

func (v *View) openOptions() {
	v.Goto(view.Options, view.Payload{})
}

func (v *View) HandleAction(a input.Action) {
	switch a {
	case input.ActionNew, input.ActionConfirm, input.ActionOK:
		v.newGame()
	case input.ActionLoad:
		v.continueGame()
	case input.ActionOptions:
		v.openOptions()
	}
}

func (v *View) Update(dt float64) error {
	v.elapsed += dt
	return nil
}

func (v *View) Draw(dst *ebiten.Image) {
	faces := v.Services.Faces
	if faces == nil {
		return
	}
	w, h := v.Size()
	dst.Fill(scene.ColorBackdrop)

	scene.Label(dst, heading, faces.Large, w/2, h*0.45, scene.ColorPrimary)
	if math.Sin(v.elapsed*3) > 0 {
		scene.Label(dst, "Tap to start", faces.Medium, w/2, h*0.55, scene.ColorPrimary)
	}
	if v.hasSave {
		scene.Label(dst, "Continue", faces.Medium, w/2, h*0.65, scene.ColorPrimary)
	}

	x, y, bw, bh := scene.CornerRect(scene.CornerLeft, w, h)
	scene.OutlineButton(dst, faces.Medium, x, y, bw, bh, "Options", false)
}
