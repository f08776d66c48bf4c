// Package view defines the screen lifecycle and the manager that keeps
// exactly one screen active.
//
// A switch always runs in this order: the old view's Deactivate completes,
// the new view is resolved and bound to the shared services, Activate resets
// its state synchronously, then Ready performs any loading. Input is only
// forwarded to a view once Ready has returned.
package view

import (
	"context"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/paragon/internal/application/input"
	"github.com/younwookim/paragon/internal/application/zone"
	"github.com/younwookim/paragon/internal/domain/entity"
	"github.com/younwookim/paragon/internal/infrastructure/config"
	"github.com/younwookim/paragon/internal/infrastructure/persistence"
	"github.com/younwookim/paragon/internal/infrastructure/render"
)

// View is one screen of the game
type View interface {
	Name() string

	// Bind injects the shared services. It runs before every Activate.
	Bind(s Services)

	// Activate resets per-visit state. It must not block.
	Activate(p Payload)

	// Ready finishes entering the view, loading whatever Activate scheduled.
	Ready(ctx context.Context) error

	// Deactivate tears the view down before another view is entered.
	Deactivate(ctx context.Context) error

	// Update advances the view by dt seconds.
	// An error terminates the game loop.
	Update(dt float64) error

	Draw(dst *ebiten.Image)

	HandleAction(a input.Action)
	HandlePointer(ev zone.Event)
}

// Disposer is implemented by views holding resources released on shutdown
type Disposer interface {
	Dispose()
}

// Factory builds a view on its first activation
type Factory func() View

// Payload carries hand-off data from the previous view
type Payload struct {
	// Resume tells the map to trust the restored player state.
	Resume bool
	// ReturnToPause tells the options screen where Back leads.
	ReturnToPause bool
	// From is the view that was active before the switch.
	From ID
	// Party is the selection made in character select.
	Party entity.Party
}

// Navigator is the part of the manager exposed to views
type Navigator interface {
	// RequestView schedules a switch after the current update or input handler returns.
	RequestView(id ID, p Payload)
	ResumeFromSave()
	SetReturnToPause(v bool)
}

// MapSource reports map documents that changed on disk
type MapSource interface {
	Poll() (string, bool)
}

// Services are shared by every view
type Services struct {
	Navigator Navigator
	Config    *config.GameConfig
	Loader    *config.Loader
	Roster    *entity.Roster
	Settings  *persistence.Settings
	Saves     *persistence.SaveManager
	Surface   zone.Surface
	Renderer  *render.Renderer
	Faces     *render.Faces
	MapWatch  MapSource // nil unless hot reload is enabled
}
