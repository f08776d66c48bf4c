// Package mapview implements the gameplay screen: a tile map the player
// walks on by tapping tiles or pressing arrow keys.
package mapview

import (
	"context"
	"errors"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/paragon/internal/application/input"
	"github.com/younwookim/paragon/internal/application/scene"
	"github.com/younwookim/paragon/internal/application/system"
	"github.com/younwookim/paragon/internal/application/view"
	"github.com/younwookim/paragon/internal/application/zone"
	"github.com/younwookim/paragon/internal/domain/entity"
	"github.com/younwookim/paragon/internal/infrastructure/persistence"
	"github.com/younwookim/paragon/internal/logger"
)

const (
	defaultMap  = "map_tutorial"
	playerIndex = 0
)

// View is the map screen
type View struct {
	scene.Base

	mapName   string
	tileMap   *entity.TileMap
	player    *entity.Player
	party     entity.Party
	needsLoad bool
}

// New creates the map screen
func New() *View {
	v := &View{Base: scene.NewBase("MapView"), needsLoad: true}
	v.SetZoneBuilder(v.buildZones)
	return v
}

// Activate keeps the current map and position when resuming from pause,
// otherwise Ready reloads both from the map document and the save.
func (v *View) Activate(p view.Payload) {
	if !p.Resume || v.player == nil {
		v.needsLoad = true
		v.party = nil
		if p.Party != nil {
			v.party = p.Party.Clone()
		}
	}
	v.Enter(p)
}

func (v *View) Ready(ctx context.Context) error {
	if !v.needsLoad {
		logger.Debugf(logger.General, "[MapView] resuming at (%.0f, %.0f)", v.player.X, v.player.Y)
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	v.needsLoad = false

	v.mapName = defaultMap
	if cfg := v.Services.Config; cfg != nil && cfg.Maps.Start != "" {
		v.mapName = cfg.Maps.Start
	}
	v.tileMap = v.loadMap(v.mapName)
	v.placePlayer()
	return nil
}

func (v *View) loadMap(name string) *entity.TileMap {
	empty := &entity.TileMap{Name: name, TileSize: v.tileSize()}
	if v.Services.Loader == nil {
		logger.Errorf("[MapView] no loader, showing empty map %s", name)
		return empty
	}
	doc, err := v.Services.Loader.LoadMap(name)
	if err != nil {
		logger.Errorf("[MapView] failed to load map: %v", err)
		return empty
	}
	m, err := system.LoadTileMap(name, doc)
	if err != nil {
		logger.Errorf("[MapView] failed to load map: %v", err)
		return empty
	}
	logger.Infof("[MapView] loaded %s (%dx%d)", name, m.Width, m.Height)
	return m
}

func (v *View) tileSize() int {
	if v.tileMap != nil && v.tileMap.TileSize > 0 {
		return v.tileMap.TileSize
	}
	if cfg := v.Services.Config; cfg != nil && cfg.Display.TileSize > 0 {
		return cfg.Display.TileSize
	}
	return 32
}

func (v *View) placePlayer() {
	x, y := v.tileMap.SpawnX, v.tileMap.SpawnY
	instinct := ""

	if saves := v.Services.Saves; saves != nil {
		if snap, ok := saves.LoadGame(); ok {
			x, y = snap.Player.X, snap.Player.Y
			instinct = snap.Player.Instinct
			if v.party == nil && snap.Party != nil {
				v.party = snap.Party.Clone()
			}
			logger.Debugf(logger.General, "[MapView] restored position (%.0f, %.0f)", x, y)
		}
	}
	if !v.tileMap.IsEmpty() && !v.tileMap.InBounds(x, y) {
		logger.Warnf("[MapView] player position (%.0f, %.0f) is outside %s", x, y, v.tileMap.Name)
	}

	v.player = entity.NewPlayer(x, y, v.tileSize())
	v.player.Instinct = instinct
	if cfg := v.Services.Config; cfg != nil && cfg.Player.Speed > 0 {
		v.player.Speed = cfg.Player.Speed
	}
}

// Deactivate autosaves the player's position before dropping the zones
func (v *View) Deactivate(ctx context.Context) error {
	v.autosave()
	return v.Base.Deactivate(ctx)
}

func (v *View) autosave() {
	if v.player == nil || v.Services.Saves == nil {
		return
	}
	snap := entity.Snapshot{
		Map: v.mapName,
		Player: entity.PlayerState{
			X:        v.player.X,
			Y:        v.player.Y,
			Instinct: v.player.Instinct,
		},
		Party: v.party,
	}
	err := v.Services.Saves.SaveGame(snap)
	switch {
	case errors.Is(err, persistence.ErrOriginSnapshot):
		// already logged by the save manager
	case err != nil:
		logger.Errorf("[MapView] autosave: %v", err)
	}
}

// Player returns the player, nil before the first load
func (v *View) Player() *entity.Player { return v.player }

// TileMap returns the current map
func (v *View) TileMap() *entity.TileMap { return v.tileMap }

// Party returns the party the game was started with
func (v *View) Party() entity.Party { return v.party }

func (v *View) buildZones() {
	v.AddCornerButton("Pause", scene.CornerRight, v.pause)

	w, h := v.Size()
	v.AddHitZone("Map", 0, 0, w, h, func(x, y float64, _ zone.Event) {
		v.moveToPoint(x, y)
	})
}

func (v *View) pause() {
	v.Goto(view.Pause, view.Payload{})
}

func (v *View) moveToPoint(x, y float64) {
	if v.player == nil || v.tileMap.IsEmpty() {
		return
	}
	tx, ty := entity.ToTileCoords(x, y, v.tileMap.TileSize)
	v.moveToTile(tx, ty)
}

func (v *View) moveToTile(tx, ty int) {
	tx = int(entity.Clamp(float64(tx), 0, float64(v.tileMap.Width-1)))
	ty = int(entity.Clamp(float64(ty), 0, float64(v.tileMap.Height-1)))
	logger.Debugf(logger.Touch, "[MapView] move to tile (%d, %d)", tx, ty)
	v.player.MoveToTile(tx, ty)
}

func (v *View) step(dx, dy int) {
	if v.player == nil || v.tileMap.IsEmpty() {
		return
	}
	tx, ty := entity.ToTileCoords(v.player.TargetX, v.player.TargetY, v.tileMap.TileSize)
	v.moveToTile(tx+dx, ty+dy)
}

func (v *View) HandleAction(a input.Action) {
	switch a {
	case input.ActionCancel, input.ActionPause:
		v.pause()
	case input.ActionUp:
		v.step(0, -1)
	case input.ActionDown:
		v.step(0, 1)
	case input.ActionLeft:
		v.step(-1, 0)
	case input.ActionRight:
		v.step(1, 0)
	}
}

func (v *View) Update(dt float64) error {
	v.pollReload()
	if v.player != nil {
		v.player.Update(dt)
	}
	return nil
}

// pollReload swaps in the current map when its document changed on disk.
// The player keeps its position.
func (v *View) pollReload() {
	src := v.Services.MapWatch
	if src == nil {
		return
	}
	for {
		name, ok := src.Poll()
		if !ok {
			return
		}
		if name != v.mapName {
			continue
		}
		logger.Infof("[MapView] %s changed, reloading", name)
		v.tileMap = v.loadMap(name)
	}
}

func (v *View) Draw(dst *ebiten.Image) {
	dst.Fill(scene.ColorInk)
	r := v.Services.Renderer
	if r == nil || v.tileMap == nil {
		return
	}

	ts := float64(v.tileMap.TileSize)
	for ty, row := range v.tileMap.Tiles {
		for tx, idx := range row {
			r.DrawTile(dst, idx, float64(tx)*ts, float64(ty)*ts)
		}
	}
	if v.player != nil {
		r.DrawSprite(dst, playerIndex, v.player.X, v.player.Y)
	}

	if faces := v.Services.Faces; faces != nil {
		w, h := v.Size()
		scene.CornerButton(dst, faces.Medium, scene.CornerRight, w, h, "Pause")
	}
}
