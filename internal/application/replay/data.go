package replay

// Version of the replay file format
const Version = "2.0"

// Pointer is a recorded press in window coordinates
type Pointer struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	T bool    `json:"t,omitempty"` // Touch
}

// FrameInput records input for a single frame
type FrameInput struct {
	F  int       `json:"f"`           // Frame number
	DT float64   `json:"dt"`          // Seconds since the previous frame
	A  []string  `json:"a,omitempty"` // Actions
	P  []Pointer `json:"p,omitempty"` // Pointer presses
}

// ReplayData contains all data needed to replay a session
type ReplayData struct {
	Version   string       `json:"version"`
	StartView string       `json:"startView"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}
