// Package zone routes pointer input to rectangular hit zones.
//
// A Router is owned by a single view. Zones are tested in insertion order and
// the first one containing the pointer wins. Views rebuild their zones with
// ClearZones followed by AddZone whenever what is on screen changes.
package zone

import (
	"errors"
	"fmt"
	"time"

	"github.com/younwookim/paragon/internal/logger"
)

var (
	// ErrDuplicateZone is returned when a zone id is already registered.
	ErrDuplicateZone = errors.New("zone: duplicate zone id")
	// ErrNoSurface is returned when the router has nothing to map coordinates against.
	ErrNoSurface = errors.New("zone: no backing surface")
	// ErrDisposed is returned when the router has been disposed.
	ErrDisposed = errors.New("zone: router disposed")
)

// Event is a raw pointer press in device coordinates.
type Event struct {
	X, Y    float64
	Touch   bool
	TouchID int
}

// HitFunc is called with logical coordinates and the raw event.
type HitFunc func(x, y float64, ev Event)

// Zone is an axis-aligned hit rectangle in logical pixels.
type Zone struct {
	ID            string
	X, Y          float64
	Width, Height float64
	OnHit         HitFunc
}

// Contains reports whether (x, y) lies inside the zone, edges included.
func (z Zone) Contains(x, y float64) bool {
	return x >= z.X && x <= z.X+z.Width &&
		y >= z.Y && y <= z.Y+z.Height
}

// Router owns an ordered list of zones for one view.
type Router struct {
	name        string
	surface     Surface
	zones       []Zone
	locked      bool
	lockedUntil time.Time
	disposed    bool
	now         func() time.Time
}

// NewRouter creates a router for the named owner.
// A nil surface is allowed; every operation then becomes a logged no-op.
func NewRouter(name string, surface Surface) *Router {
	if surface == nil {
		logger.Warnf("[ZoneRouter] %s: no surface provided", name)
	}
	return &Router{
		name:    name,
		surface: surface,
		now:     time.Now,
	}
}

// SetClock replaces the time source used by timed locks.
func (r *Router) SetClock(now func() time.Time) {
	r.now = now
}

// SetSurface attaches a surface after construction.
func (r *Router) SetSurface(s Surface) {
	r.surface = s
}

// Surface returns the backing surface, or nil.
func (r *Router) Surface() Surface {
	return r.surface
}

// AddZone appends a zone. Ids must be unique within the router.
func (r *Router) AddZone(id string, x, y, w, h float64, onHit HitFunc) error {
	if r.disposed {
		return ErrDisposed
	}
	if r.surface == nil {
		logger.Warnf("[ZoneRouter] %s: addZone(%s) ignored, no surface", r.name, id)
		return ErrNoSurface
	}
	for _, z := range r.zones {
		if z.ID == id {
			logger.Warnf("[ZoneRouter] %s: duplicate zone %s", r.name, id)
			return fmt.Errorf("%w: %s", ErrDuplicateZone, id)
		}
	}

	r.zones = append(r.zones, Zone{ID: id, X: x, Y: y, Width: w, Height: h, OnHit: onHit})
	logger.Debugf(logger.Touch, "[ZoneRouter] %s: zone %s (%.0f,%.0f %.0fx%.0f)", r.name, id, x, y, w, h)
	return nil
}

// ClearZones removes every zone.
func (r *Router) ClearZones() {
	r.zones = nil
}

// Zones returns a copy of the registered zones in test order.
func (r *Router) Zones() []Zone {
	out := make([]Zone, len(r.zones))
	copy(out, r.zones)
	return out
}

// Zone looks up a zone by id.
func (r *Router) Zone(id string) (Zone, bool) {
	for _, z := range r.zones {
		if z.ID == id {
			return z, true
		}
	}
	return Zone{}, false
}

// SetInputLocked locks or unlocks dispatch indefinitely.
// Unlocking also cancels any timed lock.
func (r *Router) SetInputLocked(locked bool) {
	r.locked = locked
	if !locked {
		r.lockedUntil = time.Time{}
	}
}

// LockFor mutes dispatch for d. A new lock replaces the previous deadline.
func (r *Router) LockFor(d time.Duration) {
	r.lockedUntil = r.now().Add(d)
	logger.Debugf(logger.General, "[LockInput] %s: input locked for %s", r.name, d)
}

// InputLocked reports whether dispatch is currently muted.
func (r *Router) InputLocked() bool {
	if r.locked {
		return true
	}
	return !r.lockedUntil.IsZero() && r.now().Before(r.lockedUntil)
}

// Dispatch converts ev to logical coordinates and invokes the first zone
// containing it. It reports whether a zone was hit.
func (r *Router) Dispatch(ev Event) bool {
	if r.disposed {
		return false
	}
	if r.surface == nil {
		logger.Warnf("[ZoneRouter] %s: dispatch ignored, no surface", r.name)
		return false
	}

	x, y := ToLogical(r.surface, ev.X, ev.Y)
	if r.InputLocked() {
		logger.Debugf(logger.Touch, "[ZoneRouter] %s: ignored tap (input locked) @ (%.0f, %.0f)", r.name, x, y)
		return false
	}

	for _, z := range r.zones {
		if !z.Contains(x, y) {
			continue
		}
		logger.Debugf(logger.Touch, "[ZoneRouter] %s: tapped %s @ (%.0f, %.0f)", r.name, z.ID, x, y)
		// The callback may rebuild r.zones; nothing below touches them again.
		if z.OnHit != nil {
			z.OnHit(x, y, ev)
		}
		return true
	}

	logger.Debugf(logger.Touch, "[ZoneRouter] %s: miss (%.0f, %.0f)", r.name, x, y)
	return false
}

// Dispose detaches the router. Later calls to Dispatch do nothing.
func (r *Router) Dispose() {
	if r.disposed {
		return
	}
	r.disposed = true
	r.zones = nil
	logger.Debugf(logger.General, "[ZoneRouter] %s: disposed", r.name)
}

// Disposed reports whether Dispose has been called.
func (r *Router) Disposed() bool {
	return r.disposed
}
