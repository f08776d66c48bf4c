// Package render draws tiles, sprites and text onto the logical canvas and
// presents the canvas letterboxed in the window.
package render

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"io/fs"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/younwookim/paragon/internal/logger"
)

// SheetPaths names the PNG sheets inside the asset filesystem.
// An empty path means the sheet is not available.
type SheetPaths struct {
	Tileset   string
	Sprites   string
	Portraits string
}

// sheet is a grid of equally sized cells cut from one image
type sheet struct {
	img  *ebiten.Image
	cell int
	cols int
}

func (s *sheet) cellImage(index int) *ebiten.Image {
	if s == nil || s.img == nil || index < 0 || s.cols == 0 {
		return nil
	}
	col := index % s.cols
	row := index / s.cols
	x, y := col*s.cell, row*s.cell
	if y+s.cell > s.img.Bounds().Dy() {
		return nil
	}
	return s.img.SubImage(image.Rect(x, y, x+s.cell, y+s.cell)).(*ebiten.Image)
}

var (
	fallbackTile   = color.RGBA{0x0a, 0x33, 0x10, 0xff}
	fallbackSprite = color.RGBA{0x00, 0xff, 0x00, 0xff}
)

// Renderer owns the loaded sheets
type Renderer struct {
	tileSize   int
	spriteSize int
	tiles      *sheet
	sprites    *sheet
	portraits  *sheet
	scale      float64
}

// NewRenderer loads the sheets from fsys. Missing or unreadable sheets are
// logged and replaced by fallback drawing.
func NewRenderer(fsys fs.FS, paths SheetPaths, tileSize, spriteSize int) *Renderer {
	r := &Renderer{tileSize: tileSize, spriteSize: spriteSize, scale: 1}
	r.tiles = loadSheet(fsys, paths.Tileset, tileSize)
	r.sprites = loadSheet(fsys, paths.Sprites, spriteSize)
	r.portraits = loadSheet(fsys, paths.Portraits, spriteSize)
	return r
}

func loadSheet(fsys fs.FS, path string, cell int) *sheet {
	if fsys == nil || path == "" || cell <= 0 {
		return nil
	}
	img, err := decodeImage(fsys, path)
	if err != nil {
		logger.Warnf("[Renderer] %v", err)
		return nil
	}
	eimg := ebiten.NewImageFromImage(img)
	return &sheet{img: eimg, cell: cell, cols: eimg.Bounds().Dx() / cell}
}

func decodeImage(fsys fs.FS, path string) (image.Image, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sheet %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode sheet %s: %w", path, err)
	}
	return img, nil
}

// SetScale records the window scale pushed by the viewport. It selects
// the filter used when presenting the canvas.
func (r *Renderer) SetScale(s float64) {
	if s <= 0 {
		s = 1
	}
	r.scale = s
	logger.Debugf(logger.Draw, "[Renderer] scale %.3f", s)
}

// Scale returns the last scale set
func (r *Renderer) Scale() float64 {
	return r.scale
}

// TileSize returns the tile cell size in logical pixels
func (r *Renderer) TileSize() int { return r.tileSize }

// DrawTile draws tile index with its top-left corner at (x, y).
// Negative indices are empty cells and draw nothing.
func (r *Renderer) DrawTile(dst *ebiten.Image, index int, x, y float64) {
	if index < 0 {
		return
	}
	img := r.tiles.cellImage(index)
	if img == nil {
		ts := float32(r.tileSize)
		vector.DrawFilledRect(dst, float32(x), float32(y), ts, ts, fallbackTile, false)
		vector.StrokeRect(dst, float32(x), float32(y), ts, ts, 1, color.RGBA{0x00, 0x55, 0x00, 0xff}, false)
		return
	}
	r.blit(dst, img, x, y, 1)
}

// DrawSprite draws sprite index centered on (x, y) at tile size
func (r *Renderer) DrawSprite(dst *ebiten.Image, index int, x, y float64) {
	size := float64(r.tileSize)
	img := r.sprites.cellImage(index)
	if img == nil {
		half := float32(size / 4)
		vector.DrawFilledRect(dst, float32(x)-half, float32(y)-half, half*2, half*2, fallbackSprite, false)
		return
	}
	s := size / float64(r.spriteSize)
	r.blit(dst, img, x-size/2, y-size/2, s)
}

// DrawPortrait draws a portrait scaled into a size x size square at (x, y).
// It reports whether a portrait image was available.
func (r *Renderer) DrawPortrait(dst *ebiten.Image, index int, x, y, size float64) bool {
	img := r.portraits.cellImage(index)
	if img == nil {
		return false
	}
	r.blit(dst, img, x, y, size/float64(r.spriteSize))
	return true
}

func (r *Renderer) blit(dst, img *ebiten.Image, x, y, scale float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	dst.DrawImage(img, op)
}

// Present draws the logical canvas into screen, letterboxed by v
func (r *Renderer) Present(screen, canvas *ebiten.Image, v *Viewport) {
	screen.Fill(color.Black)

	sx, sy := v.Scale()
	ox, oy := v.Origin()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(sx, sy)
	op.GeoM.Translate(ox, oy)
	if r.scale != math.Trunc(r.scale) {
		op.Filter = ebiten.FilterLinear
	}
	screen.DrawImage(canvas, op)
}
