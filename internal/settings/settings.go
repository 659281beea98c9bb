// Package settings persists viewer preferences across sessions: the cached
// motion-permission grant, the zoom level and drift tuning overrides.
package settings

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Settings holds viewer preferences. In-scene state (camera pose, rotation)
// is not persisted; only what must survive a restart is.
type Settings struct {
	MotionGranted   bool    `json:"motion_granted"`
	ZoomLevel       int     `json:"zoom_level"`
	MaxDriftDegrees float64 `json:"max_drift_degrees"`
	InvertDrift     bool    `json:"invert_drift"`
}

// Default returns the stock settings
func Default() Settings {
	return Settings{
		MaxDriftDegrees: 8,
	}
}

// Load reads settings from path. A missing or invalid file yields Default()
// and is not treated as an error; the file is created on first Save.
func Load(path string) Settings {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default()
	}
	s := Default()
	if err := json.Unmarshal(data, &s); err != nil {
		return Default()
	}
	return s
}

// Save writes settings to path, creating the directory if needed
func Save(path string, s Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Store is a file-backed settings holder. Writes go straight to disk so a
// permission grant recorded mid-session survives a crash.
type Store struct {
	path string
	s    Settings
}

// NewStore loads (or defaults) the settings at path
func NewStore(path string) *Store {
	return &Store{path: path, s: Load(path)}
}

// Settings returns the current values
func (st *Store) Settings() Settings {
	return st.s
}

// Path returns the file the store reads and writes
func (st *Store) Path() string {
	return st.path
}

// Reload re-reads the file, picking up external edits
func (st *Store) Reload() {
	st.s = Load(st.path)
}

// MotionGranted reports whether a previous session granted motion access
func (st *Store) MotionGranted() bool {
	return st.s.MotionGranted
}

// SetMotionGranted records the grant state and persists it
func (st *Store) SetMotionGranted(granted bool) {
	st.s.MotionGranted = granted
	st.save()
}

// SetZoomLevel records the zoom level and persists it
func (st *Store) SetZoomLevel(level int) {
	st.s.ZoomLevel = level
	st.save()
}

func (st *Store) save() {
	// Persistence is best effort; a read-only disk must not break input
	_ = Save(st.path, st.s)
}
