package persistence

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/lixenwraith/gravwell/settings"
)

const settingsSuffix = ".settings"

// Manager handles save/load of simulation state and settings files
// File I/O is synchronous and must run between ticks
type Manager struct {
	basePath string
	codec    Codec
}

// NewManager creates a manager rooted at basePath, TOML when codec is nil
func NewManager(basePath string, codec Codec) *Manager {
	if codec == nil {
		codec = TOMLCodec{}
	}
	return &Manager{basePath: basePath, codec: codec}
}

// Codec returns the manager's encoding
func (m *Manager) Codec() Codec {
	return m.codec
}

// FilePath returns the path for a game save
func (m *Manager) FilePath(name string) string {
	return filepath.Join(m.basePath, name+m.codec.Ext())
}

// SettingsPath returns the path for a standalone settings file
func (m *Manager) SettingsPath(name string) string {
	return filepath.Join(m.basePath, name+settingsSuffix+m.codec.Ext())
}

// Exists checks if a game save exists
func (m *Manager) Exists(name string) bool {
	_, err := os.Stat(m.FilePath(name))
	return err == nil
}

// Save writes the state to disk
func (m *Manager) Save(name string, st State) error {
	return m.write(m.FilePath(name), Serialize(st))
}

// Load reads a game save; base supplies settings the file does not carry
// On error the caller keeps its current state or falls back to defaults
func (m *Manager) Load(name string, base settings.Settings) (State, error) {
	path := m.FilePath(name)

	var rec SaveRecord
	if err := m.read(path, &rec); err != nil {
		return State{}, err
	}

	st, err := Deserialize(rec, base)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.Path = path
		}
		return State{}, err
	}
	return st, nil
}

// LoadOrDefault reads a game save, falling back to base settings and no projectiles on failure
// The returned state is always usable; err reports why the fallback was taken
func (m *Manager) LoadOrDefault(name string, base settings.Settings) (State, error) {
	st, err := m.Load(name, base)
	if err != nil {
		return State{Settings: base.Clamp()}, err
	}
	return st, nil
}

// SaveSettings writes the settings table alone
func (m *Manager) SaveSettings(name string, s settings.Settings) error {
	return m.write(m.SettingsPath(name), FromSettings(s))
}

// LoadSettings reads a settings file over base
func (m *Manager) LoadSettings(name string, base settings.Settings) (settings.Settings, error) {
	var rec SettingsRecord
	if err := m.read(m.SettingsPath(name), &rec); err != nil {
		return base, err
	}
	return rec.ToSettings(base), nil
}

func (m *Manager) write(path string, v any) error {
	if err := os.MkdirAll(m.basePath, 0755); err != nil {
		return &SaveError{Path: path, Err: errors.Wrap(err, "create save directory")}
	}

	data, err := m.codec.Marshal(v)
	if err != nil {
		return &SaveError{Path: path, Err: err}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return &SaveError{Path: path, Err: errors.Wrap(err, "write file")}
	}
	return nil
}

func (m *Manager) read(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &LoadError{Path: path, Err: errors.Wrap(err, "read file")}
	}
	if err := m.codec.Unmarshal(data, v); err != nil {
		le := &LoadError{Path: path, Err: err}
		var pe toml.ParseError
		if errors.As(err, &pe) {
			le.Field = pe.LastKey
		}
		return le
	}
	return nil
}
