package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/osrtools/osrdesk/internal/order"
)

func TestGetConfigDir(t *testing.T) {
	configDir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}
	if configDir == "" {
		t.Error("GetConfigDir() returned empty string")
	}
	if !strings.Contains(configDir, "osrdesk") {
		t.Errorf("GetConfigDir() = %v, should contain 'osrdesk'", configDir)
	}

	switch runtime.GOOS {
	case "windows":
		if !strings.Contains(configDir, "AppData") && !strings.Contains(configDir, "Local") {
			t.Errorf("Windows config dir should contain 'AppData' or 'Local', got: %v", configDir)
		}
	case "darwin", "linux":
		if !strings.Contains(configDir, ".config") {
			t.Errorf("Unix config dir should contain '.config', got: %v", configDir)
		}
	}
}

func TestDefaultPath(t *testing.T) {
	path, err := DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath() error = %v", err)
	}
	if filepath.Base(path) != "config.yaml" {
		t.Errorf("DefaultPath() should end with 'config.yaml', got: %v", path)
	}
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	st, err := NewStore(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}

	settings, err := st.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if settings.Version != 1 {
		t.Errorf("Version = %d, want 1", settings.Version)
	}
	if !settings.FirstRun() {
		t.Error("fresh settings should report first run")
	}
	if settings.ServerType != ServerTest {
		t.Errorf("ServerType = %q, want %q", settings.ServerType, ServerTest)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	st, err := NewStore(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}

	settings := NewSettings()
	settings.IntroSeen = true
	settings.Operator = "jo"
	settings.ServerType = ServerLive
	settings.FacilityID = "003"
	settings.CapacitySpecs["full"] = 24

	set := order.DefaultSet(order.PickStandard)
	set.First().Set(order.FieldProductCode, "xyz99")
	set.Append()
	settings.SetOrder(order.PickStandard, set)

	if err := st.Save(settings); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := st.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Operator != "jo" || loaded.ServerType != ServerLive {
		t.Errorf("loaded %q/%q, want jo/live", loaded.Operator, loaded.ServerType)
	}
	if loaded.FirstRun() {
		t.Error("intro_seen lost on round trip")
	}
	if loaded.CapacitySpecs["full"] != 24 {
		t.Errorf("CapacitySpecs[full] = %d, want 24", loaded.CapacitySpecs["full"])
	}

	got := loaded.Order(order.PickStandard)
	if got.Len() != 2 {
		t.Fatalf("stored order has %d lines, want 2", got.Len())
	}
	if v := got.First().Value(order.FieldProductCode); v != "xyz99" {
		t.Errorf("Product Code = %q, want xyz99", v)
	}
}

func TestStoredOrderKeepsFieldOrder(t *testing.T) {
	settings := NewSettings()
	set := order.DefaultSet(order.Transport)
	settings.SetOrder(order.Transport, set)

	restored := settings.Order(order.Transport)
	want := set.First().Fields()
	got := restored.First().Fields()
	if len(got) != len(want) {
		t.Fatalf("restored %d fields, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("field %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestOrderFallsBackToDefaults(t *testing.T) {
	settings := NewSettings()
	set := settings.Order(order.GoodsIn)
	if set.Len() != 1 {
		t.Fatalf("default set has %d lines, want 1", set.Len())
	}
	if v := set.First().Value(order.FieldContainerType); v != "full" {
		t.Errorf("default Container Type = %q, want full", v)
	}
}

func TestFacilityEnvFallback(t *testing.T) {
	settings := NewSettings()

	t.Setenv(FacilityEnvVar, "")
	if got := settings.Facility(); got != "" {
		t.Errorf("Facility() = %q with nothing configured, want empty", got)
	}

	t.Setenv(FacilityEnvVar, "007")
	if got := settings.Facility(); got != "007" {
		t.Errorf("Facility() = %q, want env fallback 007", got)
	}

	settings.FacilityID = "003"
	if got := settings.Facility(); got != "003" {
		t.Errorf("Facility() = %q, stored value must win over env", got)
	}
}

func TestLoadRejectsUnknownVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("version: 9\n"), 0600); err != nil {
		t.Fatal(err)
	}
	st, _ := NewStore(path)
	if _, err := st.Load(); err == nil {
		t.Error("Load() accepted an unsupported version")
	}
}
