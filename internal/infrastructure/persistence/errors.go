// Package persistence stores save games and user settings on top of a storage.Store.
package persistence

import "errors"

var (
	// ErrInvalidPersistedState is returned when a stored blob cannot be decoded.
	ErrInvalidPersistedState = errors.New("persistence: invalid persisted state")
	// ErrOriginSnapshot is returned when a snapshot places the player at (0, 0).
	ErrOriginSnapshot = errors.New("persistence: refusing to save player at origin")
	// ErrUnknownSettingKey is returned by Set and Toggle for keys without a default.
	ErrUnknownSettingKey = errors.New("persistence: unknown setting key")
	// ErrSettingType is returned when a value does not match the default's type.
	ErrSettingType = errors.New("persistence: setting type mismatch")
	// ErrNonBooleanToggle is returned when toggling a non-boolean setting.
	ErrNonBooleanToggle = errors.New("persistence: toggle on non-boolean setting")
)
