package zone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scaledSurface struct {
	ox, oy float64
	nw, nh float64
	dw, dh float64
	scale  float64
}

func (s scaledSurface) Origin() (float64, float64)      { return s.ox, s.oy }
func (s scaledSurface) NativeSize() (float64, float64)  { return s.nw, s.nh }
func (s scaledSurface) DisplaySize() (float64, float64) { return s.dw, s.dh }
func (s scaledSurface) RenderScale() float64            { return s.scale }

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestRouter() *Router {
	return NewRouter("test", FixedSurface{W: 288, H: 512})
}

func TestZone_Contains(t *testing.T) {
	z := Zone{X: 10, Y: 20, Width: 30, Height: 40}

	tests := []struct {
		name     string
		x, y     float64
		expected bool
	}{
		{"inside", 20, 30, true},
		{"top-left edge", 10, 20, true},
		{"bottom-right edge", 40, 60, true},
		{"left of", 9.9, 30, false},
		{"below", 20, 60.1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, z.Contains(tt.x, tt.y))
		})
	}
}

func TestRouter_DispatchInvokesOnlyContainingZone(t *testing.T) {
	r := newTestRouter()
	hits := map[string]int{}
	record := func(id string) HitFunc {
		return func(x, y float64, ev Event) { hits[id]++ }
	}

	require.NoError(t, r.AddZone("a", 0, 0, 50, 50, record("a")))
	require.NoError(t, r.AddZone("b", 100, 0, 50, 50, record("b")))
	require.NoError(t, r.AddZone("c", 0, 100, 50, 50, record("c")))

	hit := r.Dispatch(Event{X: 120, Y: 25})

	assert.True(t, hit)
	assert.Equal(t, map[string]int{"b": 1}, hits)
}

func TestRouter_FirstMatchWins(t *testing.T) {
	r := newTestRouter()
	var order []string

	require.NoError(t, r.AddZone("first", 0, 0, 100, 100, func(x, y float64, ev Event) { order = append(order, "first") }))
	require.NoError(t, r.AddZone("second", 0, 0, 100, 100, func(x, y float64, ev Event) { order = append(order, "second") }))

	r.Dispatch(Event{X: 50, Y: 50})

	assert.Equal(t, []string{"first"}, order)
}

func TestRouter_PassesLogicalCoordinatesAndEvent(t *testing.T) {
	// Canvas of 288x512 shown at twice its size, offset by (100, 10).
	s := scaledSurface{ox: 100, oy: 10, nw: 288, nh: 512, dw: 576, dh: 1024, scale: 1}
	r := NewRouter("scaled", s)

	var gotX, gotY float64
	var gotEv Event
	require.NoError(t, r.AddZone("z", 40, 40, 20, 20, func(x, y float64, ev Event) {
		gotX, gotY, gotEv = x, y, ev
	}))

	ev := Event{X: 200, Y: 110, Touch: true, TouchID: 3}
	require.True(t, r.Dispatch(ev))

	assert.InDelta(t, 50, gotX, 0.001)
	assert.InDelta(t, 50, gotY, 0.001)
	assert.Equal(t, ev, gotEv)
}

func TestToLogical_RenderScale(t *testing.T) {
	s := scaledSurface{nw: 200, nh: 200, dw: 200, dh: 200, scale: 2}

	x, y := ToLogical(s, 100, 50)

	assert.Equal(t, 50.0, x)
	assert.Equal(t, 25.0, y)
}

func TestRouter_ClearZones(t *testing.T) {
	r := newTestRouter()
	called := 0
	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, r.AddZone(id, 0, 0, 288, 512, func(x, y float64, ev Event) { called++ }))
	}

	r.ClearZones()

	assert.Empty(t, r.Zones())
	assert.False(t, r.Dispatch(Event{X: 10, Y: 10}))
	assert.Equal(t, 0, called)

	// Rebuilding after a clear only exposes the new zones.
	require.NoError(t, r.AddZone("a", 0, 0, 10, 10, nil))
	assert.Len(t, r.Zones(), 1)
}

func TestRouter_RejectsDuplicateID(t *testing.T) {
	r := newTestRouter()
	require.NoError(t, r.AddZone("dup", 0, 0, 10, 10, nil))

	err := r.AddZone("dup", 50, 50, 10, 10, nil)

	assert.ErrorIs(t, err, ErrDuplicateZone)
	assert.Len(t, r.Zones(), 1)
}

func TestRouter_MissHasNoSideEffect(t *testing.T) {
	r := newTestRouter()
	called := false
	require.NoError(t, r.AddZone("a", 0, 0, 10, 10, func(x, y float64, ev Event) { called = true }))

	assert.False(t, r.Dispatch(Event{X: 200, Y: 200}))
	assert.False(t, called)
	assert.Len(t, r.Zones(), 1)
}

func TestRouter_InputLock(t *testing.T) {
	r := newTestRouter()
	called := 0
	require.NoError(t, r.AddZone("a", 0, 0, 100, 100, func(x, y float64, ev Event) { called++ }))

	r.SetInputLocked(true)
	assert.False(t, r.Dispatch(Event{X: 5, Y: 5}))
	assert.Equal(t, 0, called)

	r.SetInputLocked(false)
	assert.True(t, r.Dispatch(Event{X: 5, Y: 5}))
	assert.Equal(t, 1, called)
}

func TestRouter_LockFor(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	r := newTestRouter()
	r.SetClock(clock.Now)
	called := 0
	require.NoError(t, r.AddZone("a", 0, 0, 100, 100, func(x, y float64, ev Event) { called++ }))

	r.LockFor(300 * time.Millisecond)

	t.Run("muted inside the window", func(t *testing.T) {
		clock.Advance(299 * time.Millisecond)
		assert.True(t, r.InputLocked())
		assert.False(t, r.Dispatch(Event{X: 5, Y: 5}))
	})

	t.Run("new lock extends the deadline", func(t *testing.T) {
		r.LockFor(300 * time.Millisecond)
		clock.Advance(200 * time.Millisecond)
		assert.True(t, r.InputLocked())
	})

	t.Run("auto unlocks", func(t *testing.T) {
		clock.Advance(101 * time.Millisecond)
		assert.False(t, r.InputLocked())
		assert.True(t, r.Dispatch(Event{X: 5, Y: 5}))
		assert.Equal(t, 1, called)
	})
}

func TestRouter_NoSurface(t *testing.T) {
	r := NewRouter("bare", nil)

	err := r.AddZone("a", 0, 0, 10, 10, nil)

	assert.ErrorIs(t, err, ErrNoSurface)
	assert.False(t, r.Dispatch(Event{X: 1, Y: 1}))

	r.SetSurface(FixedSurface{W: 10, H: 10})
	assert.NoError(t, r.AddZone("a", 0, 0, 10, 10, nil))
}

func TestRouter_Dispose(t *testing.T) {
	r := newTestRouter()
	called := false
	require.NoError(t, r.AddZone("a", 0, 0, 100, 100, func(x, y float64, ev Event) { called = true }))

	r.Dispose()
	r.Dispose()

	assert.True(t, r.Disposed())
	assert.False(t, r.Dispatch(Event{X: 5, Y: 5}))
	assert.False(t, called)
	assert.ErrorIs(t, r.AddZone("b", 0, 0, 1, 1, nil), ErrDisposed)
}

func TestRouter_CallbackMayRebuildZones(t *testing.T) {
	r := newTestRouter()
	var rebuild func()
	rebuild = func() {
		r.ClearZones()
		_ = r.AddZone("next", 0, 0, 100, 100, nil)
	}
	require.NoError(t, r.AddZone("first", 0, 0, 100, 100, func(x, y float64, ev Event) { rebuild() }))

	assert.True(t, r.Dispatch(Event{X: 5, Y: 5}))

	zones := r.Zones()
	require.Len(t, zones, 1)
	assert.Equal(t, "next", zones[0].ID)
}
