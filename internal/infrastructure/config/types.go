package config

import "time"

// GameConfig is the root config for game.yaml
type GameConfig struct {
	Display DisplayConfig `yaml:"display"`
	Input   InputConfig   `yaml:"input"`
	Flow    FlowConfig    `yaml:"flow"`
	Player  PlayerConfig  `yaml:"player"`
	Maps    MapsConfig    `yaml:"maps"`
	Storage StorageConfig `yaml:"storage"`
	Assets  AssetsConfig  `yaml:"assets"`
	Debug   DebugConfig   `yaml:"debug"`
}

type DisplayConfig struct {
	LogicalWidth  int     `yaml:"logicalWidth"`
	LogicalHeight int     `yaml:"logicalHeight"`
	TileSize      int     `yaml:"tileSize"`
	SpriteSize    int     `yaml:"spriteSize"`
	AspectWidth   float64 `yaml:"aspectWidth"`
	AspectHeight  float64 `yaml:"aspectHeight"`
	Title         string  `yaml:"title"`
}

type InputConfig struct {
	LockDurationMs int               `yaml:"lockDurationMs"` // Debounce after a view becomes active
	Keymap         map[string]string `yaml:"keymap"`         // ebiten key name -> action name
}

// LockDuration returns the post-activation input lock
func (c InputConfig) LockDuration() time.Duration {
	return time.Duration(c.LockDurationMs) * time.Millisecond
}

type FlowConfig struct {
	FadeSpeed float64 `yaml:"fadeSpeed"` // Alpha units per second
}

type PlayerConfig struct {
	Speed float64 `yaml:"speed"` // Pixels per second
}

type MapsConfig struct {
	Start string `yaml:"start"`
}

type StorageConfig struct {
	Path        string `yaml:"path"`
	SaveKey     string `yaml:"saveKey"`
	SettingsKey string `yaml:"settingsKey"`
}

type AssetsConfig struct {
	Tileset   string `yaml:"tileset"`
	Sprites   string `yaml:"sprites"`
	Portraits string `yaml:"portraits"`
}

type DebugConfig struct {
	General bool `yaml:"general"`
	Draw    bool `yaml:"draw"`
	Touch   bool `yaml:"touch"`
	Verbose bool `yaml:"verbose"`
	Perf    bool `yaml:"perf"`
}

// Default returns the built-in configuration
func Default() *GameConfig {
	return &GameConfig{
		Display: DisplayConfig{
			LogicalWidth:  288,
			LogicalHeight: 512,
			TileSize:      32,
			SpriteSize:    64,
			AspectWidth:   9,
			AspectHeight:  16,
			Title:         "Paragon",
		},
		Input:   InputConfig{LockDurationMs: 300},
		Flow:    FlowConfig{FadeSpeed: 2},
		Player:  PlayerConfig{Speed: 240},
		Maps:    MapsConfig{Start: "map_tutorial"},
		Storage: StorageConfig{Path: "paragon.db", SaveKey: "PARAGON_SAVE", SettingsKey: "paragon-settings"},
		Debug:   DebugConfig{General: true},
	}
}

// applyDefaults fills zero values from Default
func (c *GameConfig) applyDefaults() {
	d := Default()
	if c.Display.LogicalWidth <= 0 {
		c.Display.LogicalWidth = d.Display.LogicalWidth
	}
	if c.Display.LogicalHeight <= 0 {
		c.Display.LogicalHeight = d.Display.LogicalHeight
	}
	if c.Display.TileSize <= 0 {
		c.Display.TileSize = d.Display.TileSize
	}
	if c.Display.SpriteSize <= 0 {
		c.Display.SpriteSize = d.Display.SpriteSize
	}
	if c.Display.AspectWidth <= 0 || c.Display.AspectHeight <= 0 {
		c.Display.AspectWidth = d.Display.AspectWidth
		c.Display.AspectHeight = d.Display.AspectHeight
	}
	if c.Display.Title == "" {
		c.Display.Title = d.Display.Title
	}
	if c.Input.LockDurationMs <= 0 {
		c.Input.LockDurationMs = d.Input.LockDurationMs
	}
	if c.Flow.FadeSpeed <= 0 {
		c.Flow.FadeSpeed = d.Flow.FadeSpeed
	}
	if c.Player.Speed <= 0 {
		c.Player.Speed = d.Player.Speed
	}
	if c.Maps.Start == "" {
		c.Maps.Start = d.Maps.Start
	}
	if c.Storage.Path == "" {
		c.Storage.Path = d.Storage.Path
	}
	if c.Storage.SaveKey == "" {
		c.Storage.SaveKey = d.Storage.SaveKey
	}
	if c.Storage.SettingsKey == "" {
		c.Storage.SettingsKey = d.Storage.SettingsKey
	}
}
