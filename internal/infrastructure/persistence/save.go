package persistence

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/younwookim/paragon/internal/domain/entity"
	"github.com/younwookim/paragon/internal/infrastructure/storage"
	"github.com/younwookim/paragon/internal/logger"
)

// DefaultSaveKey is the storage key of the single save slot
const DefaultSaveKey = "PARAGON_SAVE"

// SaveManager reads and writes the single save slot
type SaveManager struct {
	store storage.Store
	key   string
	now   func() time.Time
}

// NewSaveManager creates a save manager; an empty key selects DefaultSaveKey
func NewSaveManager(store storage.Store, key string) *SaveManager {
	if key == "" {
		key = DefaultSaveKey
	}
	return &SaveManager{store: store, key: key, now: time.Now}
}

// SetClock replaces the time source used for snapshot timestamps.
func (m *SaveManager) SetClock(now func() time.Time) {
	m.now = now
}

// SaveGame persists snap. A snapshot with the player at the origin is treated
// as uninitialized and rejected without touching the stored save.
func (m *SaveManager) SaveGame(snap entity.Snapshot) error {
	if snap.AtOrigin() {
		logger.Warnf("[SaveManager] rejected save with player at (0,0)")
		return ErrOriginSnapshot
	}
	if snap.Timestamp == 0 {
		snap.Timestamp = m.now().UnixMilli()
	}

	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode save: %w", err)
	}
	if err := m.store.Set(m.key, string(data)); err != nil {
		logger.Errorf("[SaveManager] save failed: %v", err)
		return fmt.Errorf("failed to write save: %w", err)
	}

	logger.Debugf(logger.General, "[SaveManager] saved %s at (%.0f, %.0f)", snap.Map, snap.Player.X, snap.Player.Y)
	return nil
}

// LoadGame returns the stored snapshot. Missing, unreadable and corrupt saves
// all report ok=false; the failure is only logged.
func (m *SaveManager) LoadGame() (*entity.Snapshot, bool) {
	raw, ok, err := m.store.Get(m.key)
	if err != nil {
		logger.Errorf("[SaveManager] load failed: %v", err)
		return nil, false
	}
	if !ok {
		return nil, false
	}

	var snap entity.Snapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		logger.Warnf("[SaveManager] %v: %v", ErrInvalidPersistedState, err)
		return nil, false
	}
	return &snap, true
}

// HasSave reports whether a save slot is present
func (m *SaveManager) HasSave() bool {
	_, ok, err := m.store.Get(m.key)
	if err != nil {
		logger.Errorf("[SaveManager] hasSave failed: %v", err)
		return false
	}
	return ok
}

// ClearSave removes the save slot
func (m *SaveManager) ClearSave() error {
	if err := m.store.Delete(m.key); err != nil {
		logger.Errorf("[SaveManager] clear failed: %v", err)
		return fmt.Errorf("failed to clear save: %w", err)
	}
	logger.Debugf(logger.General, "[SaveManager] save cleared")
	return nil
}
