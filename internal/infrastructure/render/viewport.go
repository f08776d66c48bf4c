package render

import "math"

// Viewport letterboxes a fixed-size logical canvas inside the window.
//
// It implements zone.Surface: the canvas is NativeSize, it is shown at
// DisplaySize with its top-left corner at Origin, and nothing is scaled
// while drawing into the canvas itself.
type Viewport struct {
	logicalW, logicalH float64
	aspectW, aspectH   float64
	outsideW, outsideH float64
	originX, originY   float64
	displayW, displayH float64
	onResize           []func(v *Viewport)
}

// NewViewport creates a viewport for a logical canvas with the given
// aspect ratio (9:16 for portrait). Until the first Resize the canvas is
// shown 1:1.
func NewViewport(logicalW, logicalH int, aspectW, aspectH float64) *Viewport {
	if aspectW <= 0 || aspectH <= 0 {
		aspectW, aspectH = float64(logicalW), float64(logicalH)
	}
	v := &Viewport{
		logicalW: float64(logicalW),
		logicalH: float64(logicalH),
		aspectW:  aspectW,
		aspectH:  aspectH,
	}
	v.Resize(logicalW, logicalH)
	return v
}

// OnResize registers a callback run after every size change.
func (v *Viewport) OnResize(fn func(v *Viewport)) {
	v.onResize = append(v.onResize, fn)
}

// Resize fits the largest aspect-correct rectangle into the outside size
// and centers it. Callbacks only run when the outside size changed.
func (v *Viewport) Resize(outsideW, outsideH int) {
	ow, oh := float64(outsideW), float64(outsideH)
	if ow <= 0 || oh <= 0 {
		return
	}
	if ow == v.outsideW && oh == v.outsideH {
		return
	}
	v.outsideW, v.outsideH = ow, oh

	ratio := v.aspectW / v.aspectH
	w, h := ow, ow/ratio
	if h > oh {
		h = oh
		w = oh * ratio
	}
	v.displayW, v.displayH = math.Floor(w), math.Floor(h)
	v.originX = math.Floor((ow - v.displayW) / 2)
	v.originY = math.Floor((oh - v.displayH) / 2)

	for _, fn := range v.onResize {
		fn(v)
	}
}

func (v *Viewport) Origin() (float64, float64)      { return v.originX, v.originY }
func (v *Viewport) NativeSize() (float64, float64)  { return v.logicalW, v.logicalH }
func (v *Viewport) DisplaySize() (float64, float64) { return v.displayW, v.displayH }
func (v *Viewport) RenderScale() float64            { return 1 }

// OutsideSize returns the window size from the last Resize.
func (v *Viewport) OutsideSize() (float64, float64) { return v.outsideW, v.outsideH }

// Scale returns the horizontal and vertical logical-to-device factors.
func (v *Viewport) Scale() (float64, float64) {
	return v.displayW / v.logicalW, v.displayH / v.logicalH
}
