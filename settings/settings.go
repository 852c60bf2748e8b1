// Package settings keeps user preferences (camera pan speed, stop mode, axis
// mode) between runs. Nothing about the scene itself is saved.
package settings

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"github.com/milk9111/clickwalk/camrig"
	"github.com/milk9111/clickwalk/nav"
)

const AppName = "clickwalk"

const (
	settingsObject   = "settings"
	settingsProperty = "user"
)

// Settings are stored as yaml. Empty fields mean "use the prefab value".
type Settings struct {
	PanSpeed float64 `yaml:"pan_speed,omitempty"`
	StopMode string  `yaml:"stop_mode,omitempty"`
	AxisMode string  `yaml:"axis_mode,omitempty"`
}

// Apply overlays the stored values onto the given defaults.
func (s Settings) Apply(panSpeed float64, stop nav.StopMode, axis camrig.Mode) (float64, nav.StopMode, camrig.Mode) {
	if s.PanSpeed > 0 {
		panSpeed = s.PanSpeed
	}
	if s.StopMode != "" {
		if m, err := nav.ParseStopMode(s.StopMode); err == nil {
			stop = m
		} else {
			log.Printf("settings: ignoring stored stop mode: %v", err)
		}
	}
	if s.AxisMode != "" {
		if m, err := camrig.ParseMode(s.AxisMode); err == nil {
			axis = m
		} else {
			log.Printf("settings: ignoring stored axis mode: %v", err)
		}
	}
	return panSpeed, stop, axis
}

// Manager loads and saves Settings. A nil gdata manager keeps everything in
// memory.
type Manager struct {
	store    *gdata.Manager
	settings Settings
}

// Open creates a gdata-backed manager for AppName. On failure it returns an
// in-memory manager along with the error.
func Open() (*Manager, error) {
	store, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		return NewManager(nil), fmt.Errorf("settings: open storage: %w", err)
	}
	m := NewManager(store)
	if err := m.Load(); err != nil {
		return m, err
	}
	return m, nil
}

func NewManager(store *gdata.Manager) *Manager {
	return &Manager{store: store}
}

func (m *Manager) Load() error {
	m.settings = Settings{}
	if m.store == nil || !m.store.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}

	data, err := m.store.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("settings: load: %w", err)
	}

	var loaded Settings
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("settings: unmarshal: %w", err)
	}
	m.settings = loaded
	return nil
}

func (m *Manager) Save() error {
	if m.store == nil {
		return nil
	}

	data, err := yaml.Marshal(m.settings)
	if err != nil {
		return fmt.Errorf("settings: marshal: %w", err)
	}
	if err := m.store.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("settings: save: %w", err)
	}
	log.Printf("settings: saved")
	return nil
}

func (m *Manager) Settings() Settings {
	return m.settings
}

func (m *Manager) SetPanSpeed(v float64) {
	if v > 0 {
		m.settings.PanSpeed = v
	}
}

func (m *Manager) SetStopMode(mode nav.StopMode) {
	m.settings.StopMode = mode.String()
}

func (m *Manager) SetAxisMode(mode camrig.Mode) {
	m.settings.AxisMode = mode.String()
}
