package store

import (
	"reflect"
	"testing"
)

func TestConfig_SaveLoad_RoundTrip(t *testing.T) {
	t.Setenv("FREEFLOW_CONFIG_DIR", t.TempDir())

	// Missing file => empty config, not an error.
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.APIURL != "" || cfg.TUI != nil {
		t.Fatalf("expected empty config; got %#v", cfg)
	}

	want := &GlobalConfig{
		APIURL: "http://localhost:9000",
		TUI:    &TUIConfig{Theme: "dark"},
	}
	if err := SaveConfig(want); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}

	got, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig (after save): %v", err)
	}
	if !reflect.DeepEqual(want, got) {
		t.Fatalf("roundtrip mismatch:\nwant: %#v\ngot:  %#v", want, got)
	}
}
