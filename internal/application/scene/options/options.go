// Package options implements the settings screen.
package options

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/paragon/internal/application/input"
	"github.com/younwookim/paragon/internal/application/scene"
	"github.com/younwookim/paragon/internal/application/view"
	"github.com/younwookim/paragon/internal/infrastructure/persistence"
	"github.com/younwookim/paragon/internal/logger"
)

const (
	rowHeight   = 60
	buttonWidth = 60
	buttonGap   = 10
)

type choice struct {
	label string
	value any
}

type row struct {
	key     string
	label   string
	choices []choice
}

var rows = []row{
	{persistence.KeyMusic, "Music", []choice{{"ON", true}, {"OFF", false}}},
	{persistence.KeyFX, "FX", []choice{{"ON", true}, {"OFF", false}}},
	{persistence.KeyLanguage, "Language", []choice{
		{persistence.LanguageEnglish, persistence.LanguageEnglish},
		{persistence.LanguageFrench, persistence.LanguageFrench},
	}},
}

// View lets the player change music, sound effects and language
type View struct {
	scene.Base
	focus int
}

// New creates the options screen
func New() *View {
	v := &View{Base: scene.NewBase("OptionsView")}
	v.SetZoneBuilder(v.buildZones)
	return v
}

func (v *View) Activate(p view.Payload) {
	v.focus = 0
	v.Enter(p)
}

// Focus returns the row index the keyboard acts on
func (v *View) Focus() int { return v.focus }

func (v *View) rowY(i int) float64 {
	_, h := v.Size()
	return h*0.3 + float64(i)*rowHeight
}

func (v *View) buttonX(j, n int) float64 {
	w, _ := v.Size()
	total := float64(n)*buttonWidth + float64(n-1)*buttonGap
	return w*0.6 - total/2 + float64(j)*(buttonWidth+buttonGap)
}

func (v *View) buildZones() {
	for i, r := range rows {
		y := v.rowY(i)
		for j, c := range r.choices {
			id := fmt.Sprintf("%s_%s", r.key, c.label)
			v.AddZone(id, v.buttonX(j, len(r.choices)), y, buttonWidth, scene.ButtonHeight, func() {
				v.focus = i
				v.choose(r.key, c.value)
			})
		}
	}
	v.AddCornerButton("options_back", scene.CornerRight, v.back)
}

func (v *View) choose(key string, value any) {
	s := v.Services.Settings
	if s == nil {
		return
	}
	if err := s.Set(key, value); err != nil {
		logger.Errorf("[OptionsView] set %s: %v", key, err)
		return
	}
	if err := s.Save(); err != nil {
		logger.Errorf("[OptionsView] save settings: %v", err)
	}
}

// selected returns the index of the choice matching the current value
func (v *View) selected(r row) int {
	s := v.Services.Settings
	if s == nil {
		return -1
	}
	cur, ok := s.Get(r.key)
	if !ok {
		return -1
	}
	for j, c := range r.choices {
		if c.value == cur {
			return j
		}
	}
	return -1
}

func (v *View) step(delta int) {
	r := rows[v.focus]
	j := v.selected(r)
	if j < 0 {
		j = 0
	}
	n := len(r.choices)
	j = (j + delta + n) % n
	v.choose(r.key, r.choices[j].value)
}

func (v *View) back() {
	target := view.Title
	if v.Payload.ReturnToPause {
		target = view.Pause
	}
	logger.Debugf(logger.General, "[OptionsView] leaving to %s", target)
	v.Goto(target, view.Payload{})
}

func (v *View) HandleAction(a input.Action) {
	switch a {
	case input.ActionBack, input.ActionCancel:
		v.back()
	case input.ActionUp:
		v.focus = (v.focus - 1 + len(rows)) % len(rows)
	case input.ActionDown:
		v.focus = (v.focus + 1) % len(rows)
	case input.ActionLeft:
		v.step(-1)
	case input.ActionRight, input.ActionConfirm, input.ActionOK:
		v.step(1)
	}
}

func (v *View) Draw(dst *ebiten.Image) {
	faces := v.Services.Faces
	if faces == nil {
		return
	}
	w, h := v.Size()
	dst.Fill(scene.ColorBackdrop)
	scene.Label(dst, "Options", faces.Large, w/2, h*0.15, scene.ColorPrimary)

	for i, r := range rows {
		y := v.rowY(i)
		clr := scene.ColorPrimary
		if i == v.focus {
			clr = scene.ColorHighlight
		}
		scene.LabelLeft(dst, r.label, faces.Medium, scene.Margin*2, y+scene.ButtonHeight/2, clr)

		sel := v.selected(r)
		for j, c := range r.choices {
			scene.OutlineButton(dst, faces.Medium, v.buttonX(j, len(r.choices)), y, buttonWidth, scene.ButtonHeight, c.label, j == sel)
		}
	}
	scene.CornerButton(dst, faces.Medium, scene.CornerRight, w, h, "Back")
}
