package zone

// Surface converts device coordinates into logical canvas coordinates.
//
// NativeSize is the logical canvas resolution, DisplaySize the size it
// occupies on the device, Origin its top-left corner on the device and
// RenderScale any transform applied while drawing into the canvas.
type Surface interface {
	Origin() (x, y float64)
	NativeSize() (w, h float64)
	DisplaySize() (w, h float64)
	RenderScale() float64
}

// FixedSurface is a Surface shown 1:1 at the device origin.
type FixedSurface struct {
	W, H float64
}

func (s FixedSurface) Origin() (float64, float64)      { return 0, 0 }
func (s FixedSurface) NativeSize() (float64, float64)  { return s.W, s.H }
func (s FixedSurface) DisplaySize() (float64, float64) { return s.W, s.H }
func (s FixedSurface) RenderScale() float64            { return 1 }

// ToLogical maps a device point onto the surface's logical canvas.
func ToLogical(s Surface, deviceX, deviceY float64) (float64, float64) {
	ox, oy := s.Origin()
	nw, nh := s.NativeSize()
	dw, dh := s.DisplaySize()

	scale := s.RenderScale()
	if scale <= 0 {
		scale = 1
	}
	rx, ry := 1.0, 1.0
	if dw > 0 {
		rx = nw / dw
	}
	if dh > 0 {
		ry = nh / dh
	}

	return (deviceX - ox) * rx / scale, (deviceY - oy) * ry / scale
}

// LogicalSize returns the drawable size of s in logical units.
func LogicalSize(s Surface) (float64, float64) {
	w, h := s.NativeSize()
	scale := s.RenderScale()
	if scale <= 0 {
		scale = 1
	}
	return w / scale, h / scale
}
