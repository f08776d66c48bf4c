package charselect

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/paragon/internal/application/input"
	"github.com/younwookim/paragon/internal/application/scene"
	"github.com/younwookim/paragon/internal/application/state"
	"github.com/younwookim/paragon/internal/application/view"
	"github.com/younwookim/paragon/internal/domain/entity"
	"github.com/younwookim/paragon/internal/infrastructure/render"
	"github.com/younwookim/paragon/internal/logger"
)

var (
	colorTagline = color.RGBA{0xc3, 0xd5, 0xff, 0xff}
	colorBio     = color.RGBA{0x00, 0xff, 0xaa, 0xff}
	colorName    = color.RGBA{0xff, 0xff, 0xcc, 0xff}
	colorStat    = color.RGBA{0xb7, 0xc6, 0xff, 0xff}
	colorBar     = color.RGBA{0x62, 0xff, 0x84, 0xff}
	colorBarBG   = color.RGBA{0x1a, 0x20, 0x33, 0xff}
	colorValue   = color.RGBA{0xff, 0xff, 0xaa, 0xff}
	colorPanel   = color.NRGBA{0x08, 0x0c, 0x14, 0xd9}
	colorEdge    = color.RGBA{0x2e, 0x3a, 0x4f, 0xff}
	colorPicked  = color.RGBA{0x88, 0x88, 0xff, 0xff}
)

// View is the character-selection screen
type View struct {
	scene.Base
	flow      *Flow
	statMaxes map[string]int
}

// New creates the screen. The flow is built on first Bind, once the roster is known.
func New() *View {
	v := &View{Base: scene.NewBase("CharacterSelectView")}
	v.SetZoneBuilder(v.buildZones)
	return v
}

// Flow exposes the state machine
func (v *View) Flow() *Flow { return v.flow }

func (v *View) Bind(s view.Services) {
	v.Base.Bind(s)
	if v.flow != nil {
		return
	}
	fade := DefaultFadeSpeed
	if s.Config != nil {
		fade = s.Config.Flow.FadeSpeed
	}
	v.flow = NewFlow(s.Roster, fade)
	v.flow.OnPhaseChange(func(state.Phase) { v.RebuildZones() })
	v.flow.OnExit(v.leave)
	v.statMaxes = v.flow.Roster().StatMaxima()
}

// Activate always starts over from the instinct phase with no picks
func (v *View) Activate(p view.Payload) {
	v.flow.Reset()
	v.Enter(p)
	logger.Debugf(logger.General, "[CharacterSelectView] entered, reset to instinct phase")
}

func (v *View) Update(dt float64) error {
	v.flow.Update(dt)
	return nil
}

func (v *View) HandleAction(a input.Action) {
	v.flow.HandleAction(a)
}

func (v *View) leave(o Outcome, party entity.Party) {
	switch o {
	case OutcomeParty:
		if v.Services.Saves != nil {
			if err := v.Services.Saves.ClearSave(); err != nil {
				logger.Warnf("[CharacterSelectView] could not clear old save: %v", err)
			}
		}
		v.Goto(view.Map, view.Payload{Party: party})
	case OutcomeTitle:
		v.Goto(view.Title, view.Payload{})
	}
}

// rows returns the vertical layout of an n-row list
func rows(n int, h float64) (startY, spacing, rowH float64) {
	spacing = h * 0.12
	startY = h/2 - float64(n-1)*spacing/2
	return startY, spacing, spacing * 0.8
}

func (v *View) buildZones() {
	if v.flow == nil {
		return
	}
	w, h := v.Size()
	f := v.flow

	switch f.Phase() {
	case state.PhaseInstinct:
		insts := f.Instincts()
		startY, spacing, rowH := rows(len(insts), h)
		for i, inst := range insts {
			v.AddZone("Instinct_"+inst.Name, w*0.15, startY+float64(i)*spacing-rowH/2, w*0.7, rowH, func() { f.TapInstinct(i) })
		}
		v.AddCornerButton("InstinctInfo", scene.CornerLeft, func() { f.Apply(CmdDetails) })
		v.AddCornerButton("GoTitle", scene.CornerRight, func() { f.Apply(CmdBack) })

	case state.PhaseCharacter:
		chars := f.Characters()
		startY, spacing, rowH := rows(len(chars), h)
		for i, c := range chars {
			v.AddZone("Char_"+c.Name, w*0.1, startY+float64(i)*spacing-rowH/2, w*0.8, rowH, func() { f.TapCharacter(i) })
		}
		v.AddCornerButton("Info", scene.CornerLeft, func() { f.Apply(CmdDetails) })
		v.AddCornerButton("BackToInstinct", scene.CornerRight, func() { f.Apply(CmdBack) })

	case state.PhaseInstinctDetails:
		v.AddCornerButton("BackFromInstinctDetails", scene.CornerRight, func() { f.Apply(CmdBack) })

	case state.PhaseProfile:
		v.AddCornerButton("MoreDetails", scene.CornerLeft, func() { f.Apply(CmdDetails) })
		v.AddCornerButton("BackProfile", scene.CornerRight, func() { f.Apply(CmdBack) })

	case state.PhaseDetails:
		v.AddCornerButton("ChooseFromDetails", scene.CornerLeft, func() { f.Apply(CmdConfirm) })
		v.AddCornerButton("BackFromDetails", scene.CornerRight, func() { f.Apply(CmdBack) })

	case state.PhaseConfirm:
		okX, cancelX, y, bw, bh := scene.ConfirmRects(w, h)
		v.AddZone("ConfirmPick", okX, y, bw, bh, func() { f.Apply(CmdConfirm) })
		v.AddZone("CancelPick", cancelX, y, bw, bh, func() { f.Apply(CmdBack) })

	case state.PhaseExitConfirm:
		okX, cancelX, y, bw, bh := scene.ConfirmRects(w, h)
		v.AddZone("ExitConfirm", okX, y, bw, bh, func() { f.Apply(CmdConfirm) })
		v.AddZone("ExitCancel", cancelX, y, bw, bh, func() { f.Apply(CmdBack) })
	}
}

func (v *View) Draw(dst *ebiten.Image) {
	if v.flow == nil || v.Services.Faces == nil {
		return
	}
	w, h := v.Size()
	dst.Fill(scene.ColorInk)

	switch v.flow.Phase() {
	case state.PhaseInstinct:
		v.drawInstincts(dst, w, h)
	case state.PhaseCharacter:
		v.drawCharacters(dst, w, h)
	case state.PhaseProfile:
		v.drawProfile(dst, w, h)
	case state.PhaseDetails:
		v.drawDetails(dst, w, h)
	case state.PhaseInstinctDetails:
		v.drawInstinctDetails(dst, w, h)
	case state.PhaseConfirm:
		if c, ok := v.flow.SelectedCharacter(); ok {
			v.drawDialog(dst, w, h, "Confirm Selection", fmt.Sprintf("%s - %s", c.Name, c.Title), "Tap Confirm to accept or Cancel to go back")
		}
	case state.PhaseExitConfirm:
		v.drawDialog(dst, w, h, "Return to Title Screen?", "", "Tap Confirm to leave or Cancel to stay")
	}

	if v.flow.Transitioning() {
		scene.Overlay(dst, w, h, v.flow.Alpha())
	}
}

func (v *View) drawInstincts(dst *ebiten.Image, w, h float64) {
	faces := v.Services.Faces
	f := v.flow
	scene.Label(dst, "Choose your instinct", faces.Large, w/2, h*0.2, scene.ColorPrimary)

	insts := f.Instincts()
	startY, spacing, _ := rows(len(insts), h)
	for i, inst := range insts {
		clr := color.Color(scene.ColorPrimary)
		label := inst.Name
		if i == f.SelectedIndex() {
			clr = scene.ColorHighlight
			label = "> " + label
		}
		if f.Party().Picked(inst.Name) {
			clr = scene.ColorLocked
		}
		scene.Label(dst, label, faces.Medium, w/2, startY+float64(i)*spacing, clr)
		if inst.Motto != "" {
			scene.Label(dst, inst.Motto, faces.Small, w/2, startY+float64(i)*spacing+14, scene.ColorHint)
		}
	}
	scene.Label(dst, fmt.Sprintf("%d / %d chosen", f.Party().Filled(), len(f.Party())), faces.Small, w/2, h*0.8, scene.ColorHint)

	scene.CornerButton(dst, faces.Medium, scene.CornerLeft, w, h, "Info")
	scene.CornerButton(dst, faces.Medium, scene.CornerRight, w, h, "Title")
}

func (v *View) drawCharacters(dst *ebiten.Image, w, h float64) {
	faces := v.Services.Faces
	f := v.flow
	scene.Label(dst, "Instinct: "+f.SelectedInstinct(), faces.Large, w/2, h*0.2, scene.ColorPrimary)

	chars := f.Characters()
	startY, spacing, _ := rows(len(chars), h)
	for i, c := range chars {
		clr := color.Color(scene.ColorPrimary)
		label := c.Name
		if i == f.SelectedIndex() {
			clr = scene.ColorHighlight
			label = "> " + label
		}
		if f.Party()[f.SelectedInstinct()] == c.Name {
			clr = colorPicked
		}
		scene.Label(dst, label, faces.Medium, w/2, startY+float64(i)*spacing, clr)
		scene.Label(dst, c.Title, faces.Small, w/2, startY+float64(i)*spacing+14, scene.ColorHint)
	}

	if c, ok := f.SelectedCharacter(); ok {
		buttonTop := h - scene.ButtonHeight - scene.Margin
		panelH := 80.0
		panelY := buttonTop - panelH - 12
		if panelY < h*0.55 {
			panelY = h * 0.55
		}
		panelW := w * 0.82
		panelX := (w - panelW) / 2
		scene.FillRect(dst, panelX, panelY, panelW, panelH, colorPanel)
		scene.StrokeRect(dst, panelX, panelY, panelW, panelH, 2, colorEdge)
		tagline := `"` + c.Tagline + `"`
		lh := render.LineHeight(faces.Small)
		lines := float64(len(render.Wrap(tagline, faces.Small, panelW-24)))
		scene.Paragraph(dst, tagline, faces.Small, w/2, panelY+panelH/2-(lines-1)*lh/2, panelW-24, colorTagline)
	}

	scene.CornerButton(dst, faces.Medium, scene.CornerLeft, w, h, "Info")
	scene.CornerButton(dst, faces.Medium, scene.CornerRight, w, h, "Back")
}

func (v *View) drawProfile(dst *ebiten.Image, w, h float64) {
	c, ok := v.flow.SelectedCharacter()
	if !ok {
		return
	}
	faces := v.Services.Faces
	scene.Label(dst, c.Name, faces.Large, w/2, 36, colorName)
	scene.Label(dst, c.Title, faces.Medium, w/2, 56, scene.ColorHint)
	scene.Paragraph(dst, c.Tagline, faces.Small, w/2, 76, w*0.75, colorBar)

	portraitY := h * 0.32
	v.drawPortrait(dst, w/2, portraitY, c)

	bioY := portraitY + spriteSize(v)/2 + 24
	bioEnd := scene.Paragraph(dst, c.Bio, faces.Small, w/2, bioY, w*0.82, colorBio)

	statsH := float64(len(c.Stats))*20 + 28
	buttonTop := h - scene.ButtonHeight - scene.Margin
	statsTop := buttonTop - statsH - 16
	if statsTop < bioEnd+8 {
		statsTop = bioEnd + 8
	}
	v.drawStats(dst, c, w/2, statsTop, w*0.7)

	scene.CornerButton(dst, faces.Medium, scene.CornerLeft, w, h, "More")
	scene.CornerButton(dst, faces.Medium, scene.CornerRight, w, h, "Back")
}

func (v *View) drawDetails(dst *ebiten.Image, w, h float64) {
	c, ok := v.flow.SelectedCharacter()
	if !ok {
		return
	}
	faces := v.Services.Faces
	scene.Label(dst, c.Name, faces.Large, w/2, 60, scene.ColorHighlight)
	scene.Label(dst, c.Title, faces.Medium, w/2, 82, scene.ColorHint)
	scene.Paragraph(dst, c.Tagline, faces.Medium, w/2, 110, w*0.8, scene.ColorPrimary)
	scene.Paragraph(dst, "Press CONFIRM to choose, BACK to return", faces.Small, w/2, h-70, w*0.8, scene.ColorHint)

	scene.CornerButton(dst, faces.Medium, scene.CornerLeft, w, h, "Choose")
	scene.CornerButton(dst, faces.Medium, scene.CornerRight, w, h, "Back")
}

func (v *View) drawInstinctDetails(dst *ebiten.Image, w, h float64) {
	insts := v.flow.Instincts()
	i := v.flow.SelectedIndex()
	if i < 0 || i >= len(insts) {
		return
	}
	inst := insts[i]
	faces := v.Services.Faces
	scene.Label(dst, inst.Name, faces.Large, w/2, 60, scene.ColorHighlight)
	scene.Label(dst, inst.Motto, faces.Medium, w/2, 84, scene.ColorHint)
	scene.Paragraph(dst, inst.Lore, faces.Medium, w/2, 110, w*0.9, scene.ColorPrimary)

	scene.CornerButton(dst, faces.Medium, scene.CornerRight, w, h, "Back")
}

func (v *View) drawDialog(dst *ebiten.Image, w, h float64, title, subject, hint string) {
	faces := v.Services.Faces
	scene.Label(dst, title, faces.Large, w/2, h/2-50, scene.ColorHighlight)
	if subject != "" {
		scene.Label(dst, subject, faces.Medium, w/2, h/2-20, scene.ColorPrimary)
	}
	scene.Paragraph(dst, hint, faces.Small, w/2, h/2+5, w*0.9, scene.ColorHint)

	okX, cancelX, y, bw, bh := scene.ConfirmRects(w, h)
	scene.Button(dst, faces.Medium, okX, y, bw, bh, "Confirm", scene.ColorPrimary, color.Black)
	scene.Button(dst, faces.Medium, cancelX, y, bw, bh, "Cancel", scene.ColorCancel, color.Black)
}

func (v *View) drawPortrait(dst *ebiten.Image, cx, cy float64, c entity.Character) {
	size := spriteSize(v)
	const pad = 6
	half := size / 2
	frame := size + pad*2
	scene.FillRect(dst, cx-half-pad, cy-half-pad, frame, frame, color.NRGBA{0x0c, 0x0a, 0x05, 0x99})
	scene.StrokeRect(dst, cx-half-pad, cy-half-pad, frame, frame, 3, scene.ColorGold)

	if r := v.Services.Renderer; r != nil && r.DrawPortrait(dst, c.PortraitIndex, cx-half, cy-half, size) {
		return
	}
	scene.StrokeRect(dst, cx-half, cy-half, size, size, 1, color.RGBA{0x55, 0x55, 0x55, 0xff})
}

func (v *View) drawStats(dst *ebiten.Image, c entity.Character, cx, top, width float64) {
	faces := v.Services.Faces
	const lineH, pad = 20.0, 14.0
	panelH := float64(len(c.Stats))*lineH + pad*2
	x := cx - width/2
	scene.FillRect(dst, x, top, width, panelH, color.NRGBA{0x0a, 0x0a, 0x19, 0xbf})
	scene.StrokeRect(dst, x, top, width, panelH, 2, color.RGBA{0x38, 0x40, 0x5f, 0xff})

	barMax := width - pad*2 - 60
	for i, s := range c.Stats {
		y := top + pad + float64(i)*lineH + lineH/2
		scene.LabelLeft(dst, s.Name, faces.Small, x+pad, y, colorStat)
		scene.FillRect(dst, x+pad+40, y-6, barMax, 12, colorBarBG)
		scene.FillRect(dst, x+pad+40, y-6, barMax*statRatio(s, v.statMaxes), 12, colorBar)
		scene.LabelLeft(dst, fmt.Sprint(s.Value), faces.Small, x+pad+44+barMax, y, colorValue)
	}
}

// statRatio normalizes a stat against the highest value in the roster
func statRatio(s entity.Stat, maxima map[string]int) float64 {
	m := maxima[s.Name]
	if m <= 0 {
		m = s.Value
	}
	if m <= 0 {
		return 0
	}
	return entity.Clamp(float64(s.Value)/float64(m), 0, 1)
}

func spriteSize(v *View) float64 {
	if cfg := v.Services.Config; cfg != nil && cfg.Display.SpriteSize > 0 {
		return float64(cfg.Display.SpriteSize)
	}
	return 64
}
