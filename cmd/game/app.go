package main

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/younwookim/paragon/internal/application/input"
	"github.com/younwookim/paragon/internal/application/scene/charselect"
	"github.com/younwookim/paragon/internal/application/scene/mapview"
	"github.com/younwookim/paragon/internal/application/scene/options"
	"github.com/younwookim/paragon/internal/application/scene/pause"
	"github.com/younwookim/paragon/internal/application/scene/title"
	"github.com/younwookim/paragon/internal/application/system"
	"github.com/younwookim/paragon/internal/application/view"
	"github.com/younwookim/paragon/internal/infrastructure/config"
	"github.com/younwookim/paragon/internal/infrastructure/persistence"
	"github.com/younwookim/paragon/internal/infrastructure/render"
	"github.com/younwookim/paragon/internal/infrastructure/storage"
	"github.com/younwookim/paragon/internal/infrastructure/watch"
	"github.com/younwookim/paragon/internal/logger"
)

// appOptions mirrors the command line flags
type appOptions struct {
	assetsDir string
	dbPath    string
	startView string
	watch     bool
}

// app holds everything main wires together
type app struct {
	cfg      *config.GameConfig
	keymap   input.Keymap
	manager  *view.Manager
	viewport *render.Viewport
	renderer *render.Renderer
	store    storage.Store
	watcher  *watch.Watcher
	start    view.ID
}

// newApp loads configuration and builds the view manager.
// Configs come from assetsDir when set, otherwise from the embedded copy.
func newApp(opts appOptions) (*app, error) {
	loader, err := newLoader(opts.assetsDir)
	if err != nil {
		return nil, err
	}

	cfg, err := loader.LoadGame()
	if err != nil {
		return nil, err
	}
	logger.Configure(logger.Flags{
		General: cfg.Debug.General,
		Draw:    cfg.Debug.Draw,
		Touch:   cfg.Debug.Touch,
		Verbose: cfg.Debug.Verbose,
		Perf:    cfg.Debug.Perf,
	})

	rosterCfg, err := loader.LoadRoster()
	if err != nil {
		return nil, err
	}

	keymap := input.DefaultKeymap()
	if len(cfg.Input.Keymap) > 0 {
		if keymap, err = input.ParseKeymap(cfg.Input.Keymap); err != nil {
			return nil, fmt.Errorf("failed to load keymap: %w", err)
		}
	}

	start := view.Title
	if opts.startView != "" {
		if start, err = view.ParseID(opts.startView); err != nil {
			return nil, err
		}
	}

	a := &app{cfg: cfg, keymap: keymap, start: start}

	dbPath := opts.dbPath
	if dbPath == "" {
		dbPath = cfg.Storage.Path
	}
	if a.store, err = openStore(dbPath); err != nil {
		return nil, err
	}

	settings := persistence.NewSettings(a.store, cfg.Storage.SettingsKey)
	if err := settings.Load(); err != nil {
		logger.Warnf("[Paragon] settings: %v", err)
	}

	faces, err := render.NewFaces()
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to load fonts: %w", err)
	}

	a.viewport = render.NewViewport(cfg.Display.LogicalWidth, cfg.Display.LogicalHeight,
		cfg.Display.AspectWidth, cfg.Display.AspectHeight)
	a.renderer = render.NewRenderer(loader.FS(), render.SheetPaths{
		Tileset:   cfg.Assets.Tileset,
		Sprites:   cfg.Assets.Sprites,
		Portraits: cfg.Assets.Portraits,
	}, cfg.Display.TileSize, cfg.Display.SpriteSize)
	a.viewport.OnResize(func(v *render.Viewport) {
		sx, _ := v.Scale()
		a.renderer.SetScale(sx)
	})

	services := view.Services{
		Config:   cfg,
		Loader:   loader,
		Roster:   system.LoadRoster(rosterCfg),
		Settings: settings,
		Saves:    persistence.NewSaveManager(a.store, cfg.Storage.SaveKey),
		Surface:  a.viewport,
		Renderer: a.renderer,
		Faces:    faces,
	}

	if opts.watch {
		if opts.assetsDir == "" {
			logger.Warnf("[Paragon] -watch needs -assets, map reload disabled")
		} else if a.watcher, err = watch.NewWatcher(filepath.Join(opts.assetsDir, "maps"), ".json"); err != nil {
			logger.Warnf("[Paragon] map watcher: %v", err)
		} else {
			services.MapWatch = a.watcher
		}
	}

	a.manager = view.NewManager(services)
	if err := registerViews(a.manager); err != nil {
		a.Close()
		return nil, err
	}
	return a, nil
}

func newLoader(assetsDir string) (*config.Loader, error) {
	if assetsDir != "" {
		return config.NewLoader(assetsDir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs"), nil
}

func openStore(path string) (storage.Store, error) {
	if path == "" {
		return storage.NewMemory(), nil
	}
	return storage.OpenSQLite(path)
}

func registerViews(m *view.Manager) error {
	factories := []struct {
		id view.ID
		fn view.Factory
	}{
		{view.Title, func() view.View { return title.New() }},
		{view.CharacterSelect, func() view.View { return charselect.New() }},
		{view.Map, func() view.View { return mapview.New() }},
		{view.Options, func() view.View { return options.New() }},
		{view.Pause, func() view.View { return pause.New() }},
	}
	for _, f := range factories {
		if err := m.RegisterFactory(f.id, f.fn); err != nil {
			return err
		}
	}
	return nil
}

// setStart changes the first view by name
func (a *app) setStart(name string) error {
	id, err := view.ParseID(name)
	if err != nil {
		return err
	}
	a.start = id
	return nil
}

// Start activates the first view
func (a *app) Start(ctx context.Context) error {
	return a.manager.SetActiveView(ctx, a.start, view.Payload{})
}

// Close releases views, the watcher and the store
func (a *app) Close() {
	if a.manager != nil {
		if err := a.manager.Close(context.Background()); err != nil {
			logger.Errorf("[Paragon] close views: %v", err)
		}
	}
	if a.watcher != nil {
		_ = a.watcher.Close()
	}
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			logger.Errorf("[Paragon] close store: %v", err)
		}
	}
}
