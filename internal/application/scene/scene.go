// Package scene holds the behavior shared by every screen.
//
// Each screen (title, options, pause, character select, map) embeds Base,
// which owns the screen's zone router, its post-activation input lock and
// the clear-then-rebuild cycle of its zones.
package scene

import (
	"context"
	"time"

	"github.com/younwookim/paragon/internal/application/input"
	"github.com/younwookim/paragon/internal/application/view"
	"github.com/younwookim/paragon/internal/application/zone"
	"github.com/younwookim/paragon/internal/logger"
)

// DefaultLockDuration mutes pointer input right after a screen is entered
const DefaultLockDuration = 300 * time.Millisecond

// Base implements the parts of view.View common to all screens.
// Embedders override Activate, Draw and whatever else they need.
type Base struct {
	name     string
	Services view.Services
	Router   *zone.Router
	Payload  view.Payload

	build func()
	clock func() time.Time
}

// NewBase creates a base for the named screen
func NewBase(name string) Base {
	return Base{name: name}
}

func (b *Base) Name() string { return b.name }

// SetZoneBuilder sets the function that registers the screen's zones.
// It runs after every ClearZones triggered by RebuildZones.
func (b *Base) SetZoneBuilder(fn func()) {
	b.build = fn
}

// SetClock replaces the router's time source, for tests
func (b *Base) SetClock(now func() time.Time) {
	b.clock = now
	if b.Router != nil {
		b.Router.SetClock(now)
	}
}

// Bind stores the services and makes sure a live router exists
func (b *Base) Bind(s view.Services) {
	b.Services = s
	if b.Router == nil || b.Router.Disposed() {
		b.Router = zone.NewRouter(b.name, s.Surface)
		if b.clock != nil {
			b.Router.SetClock(b.clock)
		}
		return
	}
	b.Router.SetSurface(s.Surface)
}

// Activate stores the payload, locks input and rebuilds the zones
func (b *Base) Activate(p view.Payload) {
	b.Enter(p)
}

// Enter is the default activation, callable from overriding Activate methods
func (b *Base) Enter(p view.Payload) {
	b.Payload = p
	b.LockInput(b.LockDuration())
	b.RebuildZones()
}

func (b *Base) Ready(ctx context.Context) error { return nil }

// Deactivate drops the zones and any lock so nothing fires after exit
func (b *Base) Deactivate(ctx context.Context) error {
	if b.Router != nil {
		b.Router.ClearZones()
		b.Router.SetInputLocked(false)
	}
	return nil
}

func (b *Base) Update(dt float64) error { return nil }

func (b *Base) HandleAction(a input.Action) {}

// HandlePointer routes a press through the screen's zones
func (b *Base) HandlePointer(ev zone.Event) {
	if b.Router == nil {
		return
	}
	b.Router.Dispatch(ev)
}

// Dispose releases the router
func (b *Base) Dispose() {
	if b.Router != nil {
		b.Router.Dispose()
	}
}

// LockDuration returns the configured post-activation lock
func (b *Base) LockDuration() time.Duration {
	if b.Services.Config != nil {
		if d := b.Services.Config.Input.LockDuration(); d > 0 {
			return d
		}
	}
	return DefaultLockDuration
}

// LockInput mutes pointer dispatch for d
func (b *Base) LockInput(d time.Duration) {
	if b.Router == nil {
		logger.Warnf("[LockInput] %s: no router yet, skipping lock", b.name)
		return
	}
	b.Router.LockFor(d)
}

// RebuildZones clears the router and registers the current zones
func (b *Base) RebuildZones() {
	if b.Router == nil {
		return
	}
	b.Router.ClearZones()
	if b.build != nil {
		b.build()
	}
}

// AddZone registers a zone whose callback ignores the hit coordinates
func (b *Base) AddZone(id string, x, y, w, h float64, onHit func()) {
	b.AddHitZone(id, x, y, w, h, func(float64, float64, zone.Event) {
		if onHit != nil {
			onHit()
		}
	})
}

// AddHitZone registers a zone receiving the logical hit coordinates
func (b *Base) AddHitZone(id string, x, y, w, h float64, onHit zone.HitFunc) {
	if b.Router == nil {
		return
	}
	if err := b.Router.AddZone(id, x, y, w, h, onHit); err != nil {
		logger.Debugf(logger.Touch, "[%s] zone %s not added: %v", b.name, id, err)
	}
}

// AddCornerButton registers a standard button zone in a bottom corner
func (b *Base) AddCornerButton(id string, c Corner, onHit func()) {
	w, h := b.Size()
	x, y, bw, bh := CornerRect(c, w, h)
	b.AddZone(id, x, y, bw, bh, onHit)
}

// Size returns the logical canvas size
func (b *Base) Size() (float64, float64) {
	if b.Services.Surface != nil {
		return zone.LogicalSize(b.Services.Surface)
	}
	if cfg := b.Services.Config; cfg != nil {
		return float64(cfg.Display.LogicalWidth), float64(cfg.Display.LogicalHeight)
	}
	return 288, 512
}

// Goto requests a switch to another screen
func (b *Base) Goto(id view.ID, p view.Payload) {
	if b.Services.Navigator == nil {
		logger.Warnf("[%s] no navigator, cannot open %s", b.name, id)
		return
	}
	b.Services.Navigator.RequestView(id, p)
}
