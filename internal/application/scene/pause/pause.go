// Package pause implements the in-game pause menu.
package pause

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/paragon/internal/application/input"
	"github.com/younwookim/paragon/internal/application/scene"
	"github.com/younwookim/paragon/internal/application/view"
	"github.com/younwookim/paragon/internal/logger"
)

const (
	buttonHeight = 50
	spacing      = 70
)

type entry struct {
	id    string
	label string
	run   func()
}

// View is the pause menu: Resume, Options, Return to Title
type View struct {
	scene.Base
	entries []entry
	focus   int
}

// New creates the pause menu
func New() *View {
	v := &View{Base: scene.NewBase("PauseMenuView")}
	v.entries = []entry{
		{"Resume", "Resume", v.resume},
		{"Options", "Options", v.options},
		{"Title", "Return to Title", v.title},
	}
	v.SetZoneBuilder(v.buildZones)
	return v
}

func (v *View) Activate(p view.Payload) {
	v.focus = 0
	v.Enter(p)
}

// Focus returns the highlighted entry index
func (v *View) Focus() int { return v.focus }

func (v *View) layout() (x, startY, bw float64) {
	w, h := v.Size()
	bw = w * 0.5
	return w/2 - bw/2, h * 0.4, bw
}

func (v *View) buildZones() {
	x, startY, bw := v.layout()
	for i, e := range v.entries {
		v.AddZone(e.id, x, startY+float64(i)*spacing, bw, buttonHeight, e.run)
	}
}

func (v *View) resume() {
	logger.Debugf(logger.General, "[PauseMenuView] resuming game")
	if nav := v.Services.Navigator; nav != nil {
		nav.ResumeFromSave()
	}
	v.Goto(view.Map, view.Payload{})
}

func (v *View) options() {
	logger.Debugf(logger.General, "[PauseMenuView] opening options")
	if nav := v.Services.Navigator; nav != nil {
		nav.SetReturnToPause(true)
	}
	v.Goto(view.Options, view.Payload{})
}

func (v *View) title() {
	logger.Debugf(logger.General, "[PauseMenuView] returning to title")
	if nav := v.Services.Navigator; nav != nil {
		nav.SetReturnToPause(false)
	}
	v.Goto(view.Title, view.Payload{})
}

func (v *View) HandleAction(a input.Action) {
	switch a {
	case input.ActionCancel, input.ActionBack, input.ActionPause:
		v.resume()
	case input.ActionUp:
		v.focus = (v.focus - 1 + len(v.entries)) % len(v.entries)
	case input.ActionDown:
		v.focus = (v.focus + 1) % len(v.entries)
	case input.ActionConfirm, input.ActionOK:
		v.entries[v.focus].run()
	}
}

func (v *View) Draw(dst *ebiten.Image) {
	faces := v.Services.Faces
	if faces == nil {
		return
	}
	w, h := v.Size()
	scene.FillRect(dst, 0, 0, w, h, color.NRGBA{0, 0, 0, 0xcc})
	scene.Label(dst, "Paused", faces.Large, w/2, h*0.25, scene.ColorPrimary)

	x, startY, bw := v.layout()
	for i, e := range v.entries {
		y := startY + float64(i)*spacing
		clr := color.Color(scene.ColorPrimary)
		if i == v.focus {
			clr = scene.ColorHighlight
			scene.StrokeRect(dst, x, y, bw, buttonHeight, 1, scene.ColorHighlight)
		}
		scene.Label(dst, e.label, faces.Medium, w/2, y+buttonHeight/2, clr)
	}
}
