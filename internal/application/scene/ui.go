package scene

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/younwookim/paragon/internal/infrastructure/render"
)

// Shared layout metrics in logical pixels
const (
	ButtonWidth         = 70
	ButtonHeight        = 30
	ConfirmButtonWidth  = 100
	ConfirmButtonHeight = 30
	Margin              = 10
	Spacing             = 12
)

var (
	ColorPrimary   = color.RGBA{0x00, 0xff, 0x00, 0xff}
	ColorButtonBG  = color.RGBA{0x0a, 0x33, 0x10, 0xff}
	ColorBackdrop  = color.RGBA{0x00, 0x00, 0x22, 0xff}
	ColorInk       = color.RGBA{0x00, 0x00, 0x11, 0xff}
	ColorHighlight = color.RGBA{0xff, 0xff, 0x00, 0xff}
	ColorLocked    = color.RGBA{0x66, 0x66, 0xff, 0xff}
	ColorCancel    = color.RGBA{0xff, 0x33, 0x33, 0xff}
	ColorHint      = color.RGBA{0xaa, 0xaa, 0xaa, 0xff}
	ColorGold      = color.RGBA{0xd4, 0xaf, 0x37, 0xff}
)

// Corner selects a bottom corner of the canvas
type Corner int

const (
	CornerLeft Corner = iota
	CornerRight
)

// CornerRect returns the standard button rectangle in a bottom corner
func CornerRect(c Corner, w, h float64) (x, y, bw, bh float64) {
	bw, bh = ButtonWidth, ButtonHeight
	y = h - bh - Margin
	x = Margin
	if c == CornerRight {
		x = w - bw - Margin
	}
	return x, y, bw, bh
}

// ConfirmRects returns the confirm and cancel button rectangles of a dialog
func ConfirmRects(w, h float64) (okX, cancelX, y, bw, bh float64) {
	bw, bh = ConfirmButtonWidth, ConfirmButtonHeight
	y = h/2 + 40
	okX = w/2 - bw - Margin
	cancelX = w/2 + Margin
	return okX, cancelX, y, bw, bh
}

// FillRect draws a filled rectangle
func FillRect(dst *ebiten.Image, x, y, w, h float64, clr color.Color) {
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), clr, false)
}

// StrokeRect draws a rectangle outline
func StrokeRect(dst *ebiten.Image, x, y, w, h, width float64, clr color.Color) {
	vector.StrokeRect(dst, float32(x), float32(y), float32(w), float32(h), float32(width), clr, false)
}

// Label draws text centered horizontally at x with its vertical middle at y
func Label(dst *ebiten.Image, str string, face text.Face, x, y float64, clr color.Color) {
	if face == nil {
		return
	}
	render.DrawText(dst, str, face, x, y-render.LineHeight(face)/2, clr, render.AlignCenter)
}

// LabelLeft draws left-aligned text with its vertical middle at y
func LabelLeft(dst *ebiten.Image, str string, face text.Face, x, y float64, clr color.Color) {
	if face == nil {
		return
	}
	render.DrawText(dst, str, face, x, y-render.LineHeight(face)/2, clr, render.AlignLeft)
}

// Button draws a filled button with a centered label
func Button(dst *ebiten.Image, face text.Face, x, y, w, h float64, label string, fill, ink color.Color) {
	FillRect(dst, x, y, w, h, fill)
	Label(dst, label, face, x+w/2, y+h/2, ink)
}

// OutlineButton draws a dark button with a primary outline
func OutlineButton(dst *ebiten.Image, face text.Face, x, y, w, h float64, label string, active bool) {
	fill, ink := color.Color(ColorButtonBG), color.Color(ColorPrimary)
	if active {
		fill, ink = ColorPrimary, ColorInk
	}
	FillRect(dst, x, y, w, h, fill)
	StrokeRect(dst, x, y, w, h, 2, ColorPrimary)
	Label(dst, label, face, x+w/2, y+h/2, ink)
}

// CornerButton draws the standard button in a bottom corner
func CornerButton(dst *ebiten.Image, face text.Face, c Corner, w, h float64, label string) {
	x, y, bw, bh := CornerRect(c, w, h)
	Button(dst, face, x, y, bw, bh, label, ColorPrimary, ColorInk)
}

// Paragraph draws wrapped, centered text starting at y and returns the y
// below the last line
func Paragraph(dst *ebiten.Image, str string, face text.Face, cx, y, maxWidth float64, clr color.Color) float64 {
	if face == nil {
		return y
	}
	lh := render.LineHeight(face)
	for _, line := range render.Wrap(str, face, maxWidth) {
		Label(dst, line, face, cx, y, clr)
		y += lh
	}
	return y
}

// Overlay darkens the whole canvas by alpha in [0,1]
func Overlay(dst *ebiten.Image, w, h, alpha float64) {
	if alpha <= 0 {
		return
	}
	a := uint8(alpha * 255)
	FillRect(dst, 0, 0, w, h, color.NRGBA{0, 0, 0, a})
}
