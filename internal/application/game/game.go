// Package game provides the ebiten loop that feeds input to the view
// manager and presents its logical canvas letterboxed in the window.
package game

import (
	"context"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/paragon/internal/application/input"
	"github.com/younwookim/paragon/internal/application/zone"
	"github.com/younwookim/paragon/internal/infrastructure/render"
	"github.com/younwookim/paragon/internal/logger"
)

const (
	defaultDT = 1.0 / 60.0
	// maxDT caps a frame's delta after a stall so movement does not jump
	maxDT = 0.25
)

// Driver receives input and ticks; *view.Manager implements it.
type Driver interface {
	Update(ctx context.Context, dt float64) error
	Draw(dst *ebiten.Image)
	HandleInput(a input.Action)
	HandlePointer(ev zone.Event)
}

// Recorder captures each frame's input, see replay.Recorder
type Recorder interface {
	RecordFrame(f input.Frame, dt float64)
}

// DeltaSource is an input source that also dictates frame timing
type DeltaSource interface {
	DeltaTime() float64
}

// Options configures a Game
type Options struct {
	LogicalWidth  int
	LogicalHeight int
	Viewport      *render.Viewport
	Renderer      *render.Renderer
	Recorder      Recorder
}

// Game implements ebiten.Game
type Game struct {
	ctx      context.Context
	driver   Driver
	source   input.Source
	recorder Recorder
	viewport *render.Viewport
	renderer *render.Renderer
	canvas   *ebiten.Image
	logicalW int
	logicalH int

	now      func() time.Time
	last     time.Time
	tps      func() float64
	perfTime float64
}

// New creates a Game driving d with input from src
func New(ctx context.Context, d Driver, src input.Source, opts Options) *Game {
	if opts.LogicalWidth <= 0 || opts.LogicalHeight <= 0 {
		opts.LogicalWidth, opts.LogicalHeight = 288, 512
	}
	return &Game{
		ctx:      ctx,
		driver:   d,
		source:   src,
		recorder: opts.Recorder,
		viewport: opts.Viewport,
		renderer: opts.Renderer,
		logicalW: opts.LogicalWidth,
		logicalH: opts.LogicalHeight,
		now:      time.Now,
		tps:      ebiten.ActualTPS,
	}
}

// SetClock replaces the wall clock, for tests
func (g *Game) SetClock(now func() time.Time) {
	g.now = now
	g.last = time.Time{}
}

// Update polls input, hands it to the driver, then advances one tick.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	if err := g.ctx.Err(); err != nil {
		return err
	}

	var f input.Frame
	if g.source != nil {
		f = g.source.Poll()
	}
	dt := g.delta()
	if g.recorder != nil {
		g.recorder.RecordFrame(f, dt)
	}

	for _, a := range f.Actions {
		g.driver.HandleInput(a)
	}
	for _, ev := range f.Pointers {
		g.driver.HandlePointer(ev)
	}

	if err := g.driver.Update(g.ctx, dt); err != nil {
		return err
	}
	g.trackPerf(dt)
	return nil
}

func (g *Game) delta() float64 {
	if ds, ok := g.source.(DeltaSource); ok {
		if dt := ds.DeltaTime(); dt > 0 {
			return dt
		}
		return defaultDT
	}

	now := g.now()
	if g.last.IsZero() {
		g.last = now
		return defaultDT
	}
	dt := now.Sub(g.last).Seconds()
	g.last = now
	if dt <= 0 {
		return defaultDT
	}
	if dt > maxDT {
		return maxDT
	}
	return dt
}

func (g *Game) trackPerf(dt float64) {
	if !logger.Enabled(logger.Perf) {
		return
	}
	g.perfTime += dt
	if g.perfTime < 1 {
		return
	}
	g.perfTime = 0
	logger.Debugf(logger.Perf, "[Game] TPS: %.1f", g.tps())
}

// Draw renders the driver into the logical canvas and presents it.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.canvas == nil {
		g.canvas = ebiten.NewImage(g.logicalW, g.logicalH)
	}
	g.canvas.Clear()
	g.driver.Draw(g.canvas)

	if g.renderer == nil || g.viewport == nil {
		screen.DrawImage(g.canvas, nil)
		return
	}
	g.renderer.Present(screen, g.canvas, g.viewport)
}

// Layout sizes the screen to the window and lets the viewport letterbox
// the logical canvas inside it. Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.viewport == nil || outsideWidth <= 0 || outsideHeight <= 0 {
		return g.logicalW, g.logicalH
	}
	g.viewport.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
