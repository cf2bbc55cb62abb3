package config

import "sync"

// Manager guards settings shared between the refresh loop and the setup
// server. Updates are validated and persisted before they become
// visible to readers.
type Manager struct {
	mu   sync.RWMutex
	path string
	s    Settings
}

// NewManager wraps already loaded settings. Updates are written back to
// path.
func NewManager(s Settings, path string) *Manager {
	return &Manager{path: path, s: s}
}

// Snapshot returns a copy of the current settings.
func (m *Manager) Snapshot() Settings {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.s
}

// Update applies fn to a copy of the settings, then validates and
// persists the result. The previous settings stay in place when either
// step fails.
func (m *Manager) Update(fn func(*Settings)) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	next := m.s
	fn(&next)
	if err := next.Validate(); err != nil {
		return err
	}
	if err := next.Save(m.path); err != nil {
		return err
	}
	m.s = next
	return nil
}
