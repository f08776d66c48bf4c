package config

// TiledMap is the subset of a Tiled JSON map document that is consumed
type TiledMap struct {
	Width      int          `json:"width"`
	Height     int          `json:"height"`
	TileWidth  int          `json:"tilewidth"`
	TileHeight int          `json:"tileheight"`
	Layers     []TiledLayer `json:"layers"`
}

type TiledLayer struct {
	Name    string        `json:"name"`
	Type    string        `json:"type"` // "tilelayer" or "objectgroup"
	Data    []int         `json:"data,omitempty"`
	Objects []TiledObject `json:"objects,omitempty"`
}

type TiledObject struct {
	Name string  `json:"name"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

// TileLayer returns the first tile layer
func (m *TiledMap) TileLayer() (*TiledLayer, bool) {
	for i := range m.Layers {
		if m.Layers[i].Type == "tilelayer" {
			return &m.Layers[i], true
		}
	}
	return nil, false
}

// Layer returns the layer with the given name
func (m *TiledMap) Layer(name string) (*TiledLayer, bool) {
	for i := range m.Layers {
		if m.Layers[i].Name == name {
			return &m.Layers[i], true
		}
	}
	return nil, false
}
