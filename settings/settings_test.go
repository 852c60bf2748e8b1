package settings

import (
	"testing"

	"github.com/quasilyte/gdata/v2"

	"github.com/milk9111/clickwalk/camrig"
	"github.com/milk9111/clickwalk/nav"
)

func openTestStore(t *testing.T) *gdata.Manager {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", "")

	store, err := gdata.Open(gdata.Config{AppName: "clickwalk_test"})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return store
}

func TestSaveAndReload(t *testing.T) {
	store := openTestStore(t)

	m := NewManager(store)
	if err := m.Load(); err != nil {
		t.Fatalf("load empty: %v", err)
	}
	if m.Settings() != (Settings{}) {
		t.Fatalf("expected empty settings, got %+v", m.Settings())
	}

	m.SetPanSpeed(6)
	m.SetStopMode(nav.StopEither)
	m.SetAxisMode(camrig.LastWrite)
	if err := m.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}

	again := NewManager(store)
	if err := again.Load(); err != nil {
		t.Fatalf("reload: %v", err)
	}
	want := Settings{PanSpeed: 6, StopMode: "either", AxisMode: "last_write"}
	if again.Settings() != want {
		t.Fatalf("got %+v want %+v", again.Settings(), want)
	}
}

func TestInMemoryManager(t *testing.T) {
	m := NewManager(nil)
	m.SetPanSpeed(-1)
	if m.Settings().PanSpeed != 0 {
		t.Fatalf("non-positive pan speed should be ignored")
	}
	if err := m.Save(); err != nil {
		t.Fatalf("in-memory save should not fail: %v", err)
	}
	if err := m.Load(); err != nil {
		t.Fatalf("in-memory load should not fail: %v", err)
	}
}

func TestApply(t *testing.T) {
	cases := []struct {
		name      string
		s         Settings
		wantSpeed float64
		wantStop  nav.StopMode
		wantAxis  camrig.Mode
	}{
		{"empty_keeps_defaults", Settings{}, 3, nav.StopDistance, camrig.Held},
		{"all_set", Settings{PanSpeed: 5, StopMode: "trigger", AxisMode: "last_write"}, 5, nav.StopTrigger, camrig.LastWrite},
		{"bad_modes_ignored", Settings{StopMode: "never", AxisMode: "sticky"}, 3, nav.StopDistance, camrig.Held},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			speed, stop, axis := c.s.Apply(3, nav.StopDistance, camrig.Held)
			if speed != c.wantSpeed || stop != c.wantStop || axis != c.wantAxis {
				t.Fatalf("got (%v, %v, %v) want (%v, %v, %v)", speed, stop, axis, c.wantSpeed, c.wantStop, c.wantAxis)
			}
		})
	}
}
