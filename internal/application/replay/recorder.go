package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/paragon/internal/application/input"
)

// ErrNoFrames is returned when saving an empty recording
var ErrNoFrames = errors.New("no frames to save")

// Recorder captures the input of every frame
type Recorder struct {
	data      ReplayData
	recording bool
	frame     int
}

// NewRecorder creates a recorder for a session starting on startView
func NewRecorder(startView string, start time.Time) *Recorder {
	return &Recorder{
		data: ReplayData{
			Version:   Version,
			StartView: startView,
			StartTime: start.Format(time.RFC3339),
			Frames:    make([]FrameInput, 0, 3600), // ~1 minute at 60fps
		},
		recording: true,
	}
}

// RecordFrame records one frame's input and its delta time
func (r *Recorder) RecordFrame(f input.Frame, dt float64) {
	if !r.recording {
		return
	}

	fi := FrameInput{F: r.frame, DT: dt}
	for _, a := range f.Actions {
		fi.A = append(fi.A, a.String())
	}
	for _, p := range f.Pointers {
		fi.P = append(fi.P, Pointer{X: p.X, Y: p.Y, T: p.Touch})
	}

	r.data.Frames = append(r.data.Frames, fi)
	r.frame++
}

// Save writes the recording to a file
func (r *Recorder) Save(filename string) error {
	if len(r.data.Frames) == 0 {
		return ErrNoFrames
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}
	return nil
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// Data returns the recording so far
func (r *Recorder) Data() ReplayData {
	return r.data
}

// GenerateFilename creates a filename based on t
func GenerateFilename(t time.Time) string {
	return fmt.Sprintf("replay_%s.json", t.Format("20060102_150405"))
}
