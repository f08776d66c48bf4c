package render

import (
	"bytes"
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomono"
)

// Align is the horizontal anchor of drawn text
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Faces holds the monospace faces used by every screen
type Faces struct {
	Small  *text.GoTextFace
	Medium *text.GoTextFace
	Large  *text.GoTextFace
}

// NewFaces parses the bundled Go Mono font
func NewFaces() (*Faces, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load gomono: %w", err)
	}
	return &Faces{
		Small:  &text.GoTextFace{Source: src, Size: 9},
		Medium: &text.GoTextFace{Source: src, Size: 12},
		Large:  &text.GoTextFace{Source: src, Size: 18},
	}, nil
}

// DrawText draws str with its top edge at y, anchored horizontally at x
func DrawText(dst *ebiten.Image, str string, face text.Face, x, y float64, clr color.Color, align Align) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.LineSpacing = face.Metrics().HAscent + face.Metrics().HDescent
	switch align {
	case AlignCenter:
		op.PrimaryAlign = text.AlignCenter
	case AlignRight:
		op.PrimaryAlign = text.AlignEnd
	}
	text.Draw(dst, str, face, op)
}

// LineHeight returns the line advance of face
func LineHeight(face text.Face) float64 {
	m := face.Metrics()
	return m.HAscent + m.HDescent + m.HLineGap
}

// Wrap breaks str into lines no wider than maxWidth. Words longer than
// maxWidth get a line of their own.
func Wrap(str string, face text.Face, maxWidth float64) []string {
	var lines []string
	for _, para := range strings.Split(str, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		line := words[0]
		for _, w := range words[1:] {
			candidate := line + " " + w
			if text.Advance(candidate, face) > maxWidth {
				lines = append(lines, line)
				line = w
				continue
			}
			line = candidate
		}
		lines = append(lines, line)
	}
	return lines
}
