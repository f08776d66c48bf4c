package system

import (
	"fmt"

	"github.com/younwookim/paragon/internal/domain/entity"
	"github.com/younwookim/paragon/internal/infrastructure/config"
	"github.com/younwookim/paragon/internal/logger"
)

// LoadTileMap converts a Tiled document into a TileMap entity.
// Tiled stores tile ids 1-based with 0 meaning empty; they are shifted so
// that 0 is the first tile of the sheet and blanks become EmptyTile.
func LoadTileMap(name string, doc *config.TiledMap) (*entity.TileMap, error) {
	layer, ok := doc.TileLayer()
	if !ok {
		return nil, fmt.Errorf("map %s: %w", name, config.ErrNoTileLayer)
	}
	if doc.Width <= 0 || doc.Height <= 0 {
		return nil, fmt.Errorf("map %s: invalid size %dx%d", name, doc.Width, doc.Height)
	}

	tiles := make([][]int, doc.Height)
	for y := 0; y < doc.Height; y++ {
		tiles[y] = make([]int, doc.Width)
		for x := 0; x < doc.Width; x++ {
			i := y*doc.Width + x
			if i >= len(layer.Data) {
				tiles[y][x] = entity.EmptyTile
				continue
			}
			tiles[y][x] = layer.Data[i] - 1
		}
	}

	tileSize := doc.TileWidth
	if tileSize <= 0 {
		tileSize = 32
	}

	m := &entity.TileMap{
		Name:     name,
		Width:    doc.Width,
		Height:   doc.Height,
		TileSize: tileSize,
		Tiles:    tiles,
	}

	if spawn, ok := doc.Layer("spawn"); ok && len(spawn.Objects) > 0 {
		m.SpawnX, m.SpawnY = spawn.Objects[0].X, spawn.Objects[0].Y
	} else {
		logger.Warnf("[MapLoader] %s: no spawn layer found, using (0,0)", name)
	}

	return m, nil
}

// LoadRoster converts a RosterConfig into a Roster entity.
// Characters without an explicit portrait get the next sheet index.
func LoadRoster(cfg *config.RosterConfig) *entity.Roster {
	roster := &entity.Roster{
		Instincts:  make([]entity.Instinct, 0, len(cfg.Instincts)),
		Characters: make(map[string][]entity.Character, len(cfg.Instincts)),
	}

	portrait := 0
	for _, ic := range cfg.Instincts {
		roster.Instincts = append(roster.Instincts, entity.Instinct{
			Name:  ic.Name,
			Motto: ic.Motto,
			Lore:  ic.Lore,
		})

		chars := make([]entity.Character, 0, len(ic.Characters))
		for _, cc := range ic.Characters {
			stats := make([]entity.Stat, len(cc.Stats))
			for i, s := range cc.Stats {
				stats[i] = entity.Stat{Name: s.Name, Value: s.Value}
			}

			idx := portrait
			if cc.Portrait != nil {
				idx = *cc.Portrait
			}
			portrait++

			chars = append(chars, entity.Character{
				Name:          cc.Name,
				Title:         cc.Title,
				Tagline:       cc.Tagline,
				Bio:           cc.Bio,
				Stats:         stats,
				PortraitIndex: idx,
			})
		}
		roster.Characters[ic.Name] = chars
	}

	return roster
}
