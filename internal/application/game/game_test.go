package game

import (
	"bytes"
	"context"
	"os"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/paragon/internal/application/input"
	"github.com/younwookim/paragon/internal/application/zone"
	"github.com/younwookim/paragon/internal/infrastructure/render"
	"github.com/younwookim/paragon/internal/logger"
)

// mockDriver is a test double for the view manager
type mockDriver struct {
	journal   []string
	dts       []float64
	updateErr error
}

func (m *mockDriver) Update(ctx context.Context, dt float64) error {
	m.journal = append(m.journal, "update")
	m.dts = append(m.dts, dt)
	return m.updateErr
}

func (m *mockDriver) Draw(dst *ebiten.Image) {}

func (m *mockDriver) HandleInput(a input.Action) {
	m.journal = append(m.journal, "action:"+a.String())
}

func (m *mockDriver) HandlePointer(ev zone.Event) {
	m.journal = append(m.journal, "pointer")
}

type fakeSource struct {
	frames []input.Frame
	dt     float64
}

func (s *fakeSource) Poll() input.Frame {
	if len(s.frames) == 0 {
		return input.Frame{}
	}
	f := s.frames[0]
	s.frames = s.frames[1:]
	return f
}

type timedSource struct {
	fakeSource
}

func (s *timedSource) DeltaTime() float64 { return s.dt }

type fakeRecorder struct {
	frames []input.Frame
	dts    []float64
}

func (r *fakeRecorder) RecordFrame(f input.Frame, dt float64) {
	r.frames = append(r.frames, f)
	r.dts = append(r.dts, dt)
}

type stepClock struct{ t time.Time }

func (c *stepClock) now() time.Time { return c.t }

func TestGame_InputBeforeUpdate(t *testing.T) {
	d := &mockDriver{}
	src := &fakeSource{frames: []input.Frame{{
		Actions:  []input.Action{input.ActionUp, input.ActionConfirm},
		Pointers: []zone.Event{{X: 1, Y: 2}},
	}}}
	g := New(context.Background(), d, src, Options{})

	require.NoError(t, g.Update())

	assert.Equal(t, []string{"action:UP", "action:CONFIRM", "pointer", "update"}, d.journal)
}

func TestGame_WallClockDelta(t *testing.T) {
	clock := &stepClock{t: time.Unix(100, 0)}
	d := &mockDriver{}
	g := New(context.Background(), d, &fakeSource{}, Options{})
	g.SetClock(clock.now)

	steps := []time.Duration{0, 20 * time.Millisecond, 0, 2 * time.Second}
	for _, s := range steps {
		clock.t = clock.t.Add(s)
		require.NoError(t, g.Update())
	}

	require.Len(t, d.dts, 4)
	assert.InDelta(t, defaultDT, d.dts[0], 1e-9, "first frame")
	assert.InDelta(t, 0.02, d.dts[1], 1e-9)
	assert.InDelta(t, defaultDT, d.dts[2], 1e-9, "no time passed")
	assert.InDelta(t, maxDT, d.dts[3], 1e-9, "capped after a stall")
}

func TestGame_DeltaFromSource(t *testing.T) {
	d := &mockDriver{}
	src := &timedSource{fakeSource{dt: 0.05}}
	g := New(context.Background(), d, src, Options{})

	require.NoError(t, g.Update())
	src.dt = 0
	require.NoError(t, g.Update())

	assert.Equal(t, []float64{0.05, defaultDT}, d.dts)
}

func TestGame_Records(t *testing.T) {
	rec := &fakeRecorder{}
	frame := input.Frame{Actions: []input.Action{input.ActionPause}}
	src := &timedSource{fakeSource{frames: []input.Frame{frame}, dt: 0.1}}
	g := New(context.Background(), &mockDriver{}, src, Options{Recorder: rec})

	require.NoError(t, g.Update())
	require.NoError(t, g.Update())

	require.Len(t, rec.frames, 2)
	assert.Equal(t, frame, rec.frames[0])
	assert.True(t, rec.frames[1].Empty())
	assert.Equal(t, []float64{0.1, 0.1}, rec.dts)
}

func TestGame_UpdateError(t *testing.T) {
	d := &mockDriver{updateErr: assert.AnError}
	g := New(context.Background(), d, nil, Options{})

	err := g.Update()

	assert.ErrorIs(t, err, assert.AnError)
}

func TestGame_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	d := &mockDriver{}
	g := New(ctx, d, &fakeSource{}, Options{})

	err := g.Update()

	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, d.journal)
}

func TestGame_Layout(t *testing.T) {
	t.Run("without viewport", func(t *testing.T) {
		g := New(context.Background(), &mockDriver{}, nil, Options{LogicalWidth: 320, LogicalHeight: 240})

		w, h := g.Layout(640, 480)

		assert.Equal(t, 320, w)
		assert.Equal(t, 240, h)
	})

	t.Run("letterboxed", func(t *testing.T) {
		vp := render.NewViewport(288, 512, 9, 16)
		g := New(context.Background(), &mockDriver{}, nil, Options{LogicalWidth: 288, LogicalHeight: 512, Viewport: vp})

		w, h := g.Layout(1000, 800)

		assert.Equal(t, 1000, w)
		assert.Equal(t, 800, h)
		dw, dh := vp.DisplaySize()
		assert.Equal(t, 450.0, dw)
		assert.Equal(t, 800.0, dh)
		ox, _ := vp.Origin()
		assert.Equal(t, 275.0, ox)
	})
}

func TestGame_PerfLogging(t *testing.T) {
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	logger.Configure(logger.Flags{Perf: true})
	t.Cleanup(func() {
		logger.SetOutput(os.Stderr)
		logger.Configure(logger.Flags{General: true})
	})

	src := &timedSource{fakeSource{dt: 0.5}}
	g := New(context.Background(), &mockDriver{}, src, Options{})
	g.tps = func() float64 { return 59.5 }

	require.NoError(t, g.Update())
	assert.NotContains(t, buf.String(), "TPS")
	require.NoError(t, g.Update())
	assert.Contains(t, buf.String(), "TPS: 59.5")
}
