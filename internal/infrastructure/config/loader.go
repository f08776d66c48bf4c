package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrNoTileLayer is returned when a map document has no tile layer
var ErrNoTileLayer = errors.New("no valid tile layer found")

// Loader loads game configuration and maps using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// BasePath returns the path the loader was created with
func (l *Loader) BasePath() string {
	return l.basePath
}

// FS returns the underlying filesystem
func (l *Loader) FS() fs.FS {
	return l.fsys
}

// LoadGame loads game.yaml and fills unset values with defaults
func (l *Loader) LoadGame() (*GameConfig, error) {
	data, err := fs.ReadFile(l.fsys, "game.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read game.yaml: %w", err)
	}

	var cfg GameConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game.yaml: %w", err)
	}
	cfg.applyDefaults()

	return &cfg, nil
}

// LoadRoster loads roster.yaml
func (l *Loader) LoadRoster() (*RosterConfig, error) {
	data, err := fs.ReadFile(l.fsys, "roster.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read roster.yaml: %w", err)
	}

	var cfg RosterConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse roster.yaml: %w", err)
	}
	if len(cfg.Instincts) == 0 {
		return nil, fmt.Errorf("roster.yaml defines no instincts")
	}

	return &cfg, nil
}

// LoadMap loads a Tiled map document from maps/<name>.json
func (l *Loader) LoadMap(name string) (*TiledMap, error) {
	path := MapPath(name)
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read map %s: %w", name, err)
	}

	var m TiledMap
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse map %s: %w", name, err)
	}
	if _, ok := m.TileLayer(); !ok {
		return nil, fmt.Errorf("map %s: %w", name, ErrNoTileLayer)
	}

	return &m, nil
}

// MapPath returns the path of a map document relative to the config root
func MapPath(name string) string {
	return "maps/" + name + ".json"
}
