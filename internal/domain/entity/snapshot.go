package entity

// PlayerState is the persisted part of the player
type PlayerState struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Instinct string  `json:"instinct,omitempty"`
}

// Snapshot is a saved game
type Snapshot struct {
	Map       string      `json:"map"`
	Player    PlayerState `json:"player"`
	Party     Party       `json:"party,omitempty"`
	Timestamp int64       `json:"timestamp"`
}

// AtOrigin reports whether the player position was never initialized
func (s Snapshot) AtOrigin() bool {
	return s.Player.X == 0 && s.Player.Y == 0
}
