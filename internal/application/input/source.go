package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/paragon/internal/application/zone"
)

// Frame is the input gathered during one tick.
type Frame struct {
	Actions  []Action
	Pointers []zone.Event
}

// Empty reports whether nothing happened this tick.
func (f Frame) Empty() bool {
	return len(f.Actions) == 0 && len(f.Pointers) == 0
}

// Source produces one Frame per tick.
type Source interface {
	Poll() Frame
}

// DeviceSource reads the keyboard, mouse and touch screen through ebiten.
type DeviceSource struct {
	keymap   Keymap
	touchIDs []ebiten.TouchID
}

// NewDeviceSource creates a live input source.
func NewDeviceSource(km Keymap) *DeviceSource {
	return &DeviceSource{keymap: km}
}

// Poll reads keys and pointer presses that started this tick.
func (s *DeviceSource) Poll() Frame {
	var f Frame
	for _, b := range s.keymap {
		if inpututil.IsKeyJustPressed(b.Key) {
			f.Actions = append(f.Actions, b.Action)
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		f.Pointers = append(f.Pointers, zone.Event{X: float64(mx), Y: float64(my)})
	}

	s.touchIDs = inpututil.AppendJustPressedTouchIDs(s.touchIDs[:0])
	for _, id := range s.touchIDs {
		tx, ty := ebiten.TouchPosition(id)
		f.Pointers = append(f.Pointers, zone.Event{X: float64(tx), Y: float64(ty), Touch: true, TouchID: int(id)})
	}

	return f
}
