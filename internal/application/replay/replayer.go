package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/younwookim/paragon/internal/application/input"
	"github.com/younwookim/paragon/internal/application/zone"
	"github.com/younwookim/paragon/internal/logger"
)

// Replayer plays recorded input back as an input.Source
type Replayer struct {
	data  ReplayData
	frame int
	dt    float64
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	if err := json.NewDecoder(file).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	return &data, nil
}

// Next returns the input of the current frame and advances.
// It reports false once every frame has been played.
func (r *Replayer) Next() (input.Frame, bool) {
	if r.frame >= len(r.data.Frames) {
		return input.Frame{}, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++
	r.dt = fi.DT

	var f input.Frame
	for _, name := range fi.A {
		a, err := input.ParseAction(name)
		if err != nil {
			logger.Warnf("[Replayer] frame %d: %v", fi.F, err)
			continue
		}
		f.Actions = append(f.Actions, a)
	}
	for _, p := range fi.P {
		f.Pointers = append(f.Pointers, zone.Event{X: p.X, Y: p.Y, Touch: p.T})
	}
	return f, true
}

// Poll implements input.Source. Past the last frame it yields empty frames.
func (r *Replayer) Poll() input.Frame {
	f, _ := r.Next()
	return f
}

// DeltaTime returns the recorded delta time of the last played frame
func (r *Replayer) DeltaTime() float64 {
	return r.dt
}

// Done reports whether every frame has been played
func (r *Replayer) Done() bool {
	return r.frame >= len(r.data.Frames)
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// StartView returns the view the recording started on
func (r *Replayer) StartView() string {
	return r.data.StartView
}

// Reset rewinds the replayer to the first frame
func (r *Replayer) Reset() {
	r.frame = 0
	r.dt = 0
}
