package view

import (
	"context"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/paragon/internal/application/input"
	"github.com/younwookim/paragon/internal/application/zone"
	"github.com/younwookim/paragon/internal/logger"
)

type request struct {
	id      ID
	payload Payload
}

// Manager keeps exactly one view active and sequences switches between them
type Manager struct {
	views     map[ID]View
	factories map[ID]Factory
	active    View
	activeID  ID
	services  Services

	resuming      bool
	returnToPause bool

	pending       *request
	transitioning bool
}

// NewManager creates a manager with no active view
func NewManager(services Services) *Manager {
	return &Manager{
		views:     make(map[ID]View),
		factories: make(map[ID]Factory),
		services:  services,
	}
}

// RegisterFactory registers the constructor used on first activation of id
func (m *Manager) RegisterFactory(id ID, f Factory) error {
	if f == nil {
		return fmt.Errorf("%w: nil factory for %s", ErrInvalidFactory, id)
	}
	m.factories[id] = f
	return nil
}

// RegisterView registers an already constructed view for id
func (m *Manager) RegisterView(id ID, v View) error {
	if v == nil {
		return fmt.Errorf("%w: nil view for %s", ErrInvalidFactory, id)
	}
	m.views[id] = v
	return nil
}

// Services returns the services injected into views
func (m *Manager) Services() Services {
	return m.services
}

// Active returns the active view, or nil
func (m *Manager) Active() View {
	return m.active
}

// ActiveID returns the id of the active view, or NoView
func (m *Manager) ActiveID() ID {
	return m.activeID
}

// Transitioning reports whether a switch is running
func (m *Manager) Transitioning() bool {
	return m.transitioning
}

// SetActiveView switches to id.
//
// The resume and return-to-pause flags are folded into p and cleared before
// the new view is entered, whatever the outcome. If id cannot be resolved the
// old view stays deactivated and no view is active.
func (m *Manager) SetActiveView(ctx context.Context, id ID, p Payload) error {
	if m.transitioning {
		logger.Warnf("[ViewManager] setActiveView(%s) while switching, ignored", id)
		return ErrTransitionInProgress
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	m.transitioning = true
	defer func() { m.transitioning = false }()

	m.pending = nil
	p.Resume = p.Resume || m.resuming
	p.ReturnToPause = p.ReturnToPause || m.returnToPause
	m.resuming = false
	m.returnToPause = false
	p.From = m.activeID

	// Step 1: fully tear down the old view
	if m.active != nil {
		logger.Debugf(logger.General, "[ViewManager] exiting %s", m.activeID)
		if err := m.active.Deactivate(ctx); err != nil {
			logger.Errorf("[ViewManager] %s exit failed: %v", m.activeID, err)
		}
		m.active = nil
		m.activeID = NoView
	}

	// Step 2: resolve
	v, err := m.resolve(id)
	if err != nil {
		logger.Errorf("[ViewManager] %v", err)
		return err
	}

	// Step 3: inject services
	svc := m.services
	if svc.Navigator == nil {
		svc.Navigator = m
	}
	v.Bind(svc)

	// Step 4: enter
	m.active = v
	m.activeID = id
	logger.Infof("[ViewManager] entering %s", id)
	v.Activate(p)
	if err := v.Ready(ctx); err != nil {
		logger.Errorf("[ViewManager] %s enter failed: %v", id, err)
		return fmt.Errorf("enter %s: %w", id, err)
	}
	return nil
}

func (m *Manager) resolve(id ID) (View, error) {
	if v, ok := m.views[id]; ok {
		return v, nil
	}
	f, ok := m.factories[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownView, id)
	}
	v := f()
	if v == nil {
		return nil, fmt.Errorf("%w: factory for %s returned nil", ErrInvalidFactory, id)
	}
	m.views[id] = v
	return v, nil
}

// RequestView schedules a switch that Update applies after the active view
// has finished its frame. A later request replaces an earlier one.
func (m *Manager) RequestView(id ID, p Payload) {
	logger.Debugf(logger.General, "[ViewManager] requested %s", id)
	m.pending = &request{id: id, payload: p}
}

// Pending reports whether a requested switch has not been applied yet
func (m *Manager) Pending() bool {
	return m.pending != nil
}

// Update advances the active view, then applies any requested switch
func (m *Manager) Update(ctx context.Context, dt float64) error {
	if m.active != nil {
		if err := m.active.Update(dt); err != nil {
			return err
		}
	}
	return m.applyPending(ctx)
}

func (m *Manager) applyPending(ctx context.Context) error {
	if m.pending == nil || m.transitioning {
		return nil
	}
	req := *m.pending
	m.pending = nil
	if err := m.SetActiveView(ctx, req.id, req.payload); err != nil {
		// Already logged; the manager stays usable.
		logger.Debugf(logger.General, "[ViewManager] switch to %s failed: %v", req.id, err)
	}
	return nil
}

// Draw renders the active view
func (m *Manager) Draw(dst *ebiten.Image) {
	if m.active == nil {
		return
	}
	m.active.Draw(dst)
}

// HandleInput forwards a keyboard action to the active view
func (m *Manager) HandleInput(a input.Action) {
	if !m.accepting() {
		return
	}
	m.active.HandleAction(a)
}

// HandlePointer forwards a pointer press to the active view
func (m *Manager) HandlePointer(ev zone.Event) {
	if !m.accepting() {
		return
	}
	m.active.HandlePointer(ev)
}

// accepting reports whether input may reach the active view. Input is
// dropped while a switch runs or is queued so that a view never sees
// events after it asked to leave.
func (m *Manager) accepting() bool {
	return m.active != nil && !m.transitioning && m.pending == nil
}

// ResumeFromSave marks the next switch as a resume from saved state
func (m *Manager) ResumeFromSave() {
	m.resuming = true
}

// FinishResume clears the resume flag without switching
func (m *Manager) FinishResume() {
	m.resuming = false
}

// IsResuming reports whether the next switch resumes from saved state
func (m *Manager) IsResuming() bool {
	return m.resuming
}

// SetReturnToPause marks the next switch as coming from the pause menu
func (m *Manager) SetReturnToPause(v bool) {
	m.returnToPause = v
}

// ReturnToPause reports the pending return-to-pause flag
func (m *Manager) ReturnToPause() bool {
	return m.returnToPause
}

// Close deactivates the active view and disposes every cached view
func (m *Manager) Close(ctx context.Context) error {
	var err error
	if m.active != nil {
		err = m.active.Deactivate(ctx)
		m.active = nil
		m.activeID = NoView
	}
	for id, v := range m.views {
		if d, ok := v.(Disposer); ok {
			d.Dispose()
			logger.Debugf(logger.General, "[ViewManager] disposed %s", id)
		}
	}
	m.pending = nil
	return err
}
