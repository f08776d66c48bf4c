package persistence

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/younwookim/paragon/internal/infrastructure/storage"
	"github.com/younwookim/paragon/internal/logger"
)

// DefaultSettingsKey is the storage key of the settings blob
const DefaultSettingsKey = "paragon-settings"

// Setting keys
const (
	KeyMusic    = "music"
	KeyFX       = "fx"
	KeyLanguage = "language"
)

// Languages offered by the options screen
const (
	LanguageEnglish = "ENG"
	LanguageFrench  = "FR"
)

// Defaults returns a fresh copy of the default settings
func Defaults() map[string]any {
	return map[string]any{
		KeyMusic:    true,
		KeyFX:       true,
		KeyLanguage: LanguageEnglish,
	}
}

// Settings holds user preferences, merged over Defaults
type Settings struct {
	store  storage.Store
	key    string
	values map[string]any
}

// NewSettings creates settings seeded with defaults; call Load to read the store
func NewSettings(store storage.Store, key string) *Settings {
	if key == "" {
		key = DefaultSettingsKey
	}
	return &Settings{store: store, key: key, values: Defaults()}
}

// Get returns the value for key
func (s *Settings) Get(key string) (any, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Bool returns a boolean setting, false when absent or not a bool
func (s *Settings) Bool(key string) bool {
	b, _ := s.values[key].(bool)
	return b
}

// String returns a string setting, "" when absent or not a string
func (s *Settings) String(key string) string {
	str, _ := s.values[key].(string)
	return str
}

// Keys returns the known setting keys in sorted order
func (s *Settings) Keys() []string {
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Set changes a known key. The value must have the same type as the default.
// Rejected mutations leave the settings unchanged.
func (s *Settings) Set(key string, value any) error {
	cur, ok := s.values[key]
	if !ok {
		logger.Warnf("[Settings] unknown key %q", key)
		return fmt.Errorf("%w: %s", ErrUnknownSettingKey, key)
	}
	if !sameType(cur, value) {
		logger.Warnf("[Settings] %q expects %T, got %T", key, cur, value)
		return fmt.Errorf("%w: %s", ErrSettingType, key)
	}
	s.values[key] = value
	return nil
}

// Toggle flips a boolean setting and returns the new value
func (s *Settings) Toggle(key string) (bool, error) {
	cur, ok := s.values[key]
	if !ok {
		logger.Warnf("[Settings] unknown key %q", key)
		return false, fmt.Errorf("%w: %s", ErrUnknownSettingKey, key)
	}
	b, ok := cur.(bool)
	if !ok {
		logger.Warnf("[Settings] toggle on non-boolean %q", key)
		return false, fmt.Errorf("%w: %s", ErrNonBooleanToggle, key)
	}
	s.values[key] = !b
	return !b, nil
}

// Load resets to defaults and merges the persisted blob over them.
// Unknown keys and values of the wrong type are ignored; a corrupt blob
// leaves the defaults in place.
func (s *Settings) Load() error {
	s.values = Defaults()

	raw, ok, err := s.store.Get(s.key)
	if err != nil {
		logger.Errorf("[Settings] load failed: %v", err)
		return fmt.Errorf("failed to read settings: %w", err)
	}
	if !ok {
		return nil
	}

	var stored map[string]any
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		logger.Warnf("[Settings] %v: %v", ErrInvalidPersistedState, err)
		return nil
	}
	for k, v := range stored {
		cur, known := s.values[k]
		if !known || !sameType(cur, v) {
			logger.Debugf(logger.Verbose, "[Settings] ignoring persisted %q", k)
			continue
		}
		s.values[k] = v
	}
	return nil
}

// Save writes every setting to the store
func (s *Settings) Save() error {
	data, err := json.Marshal(s.values)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	if err := s.store.Set(s.key, string(data)); err != nil {
		logger.Errorf("[Settings] save failed: %v", err)
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return nil
}

func sameType(a, b any) bool {
	switch a.(type) {
	case bool:
		_, ok := b.(bool)
		return ok
	case string:
		_, ok := b.(string)
		return ok
	}
	return false
}
