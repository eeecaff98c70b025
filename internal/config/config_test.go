package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_MissingFileIsZeroConfig(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if cfg != (Config{}) {
		t.Errorf("expected zero config, got %+v", cfg)
	}
}

func TestLoad_Valid(t *testing.T) {
	path := writeConfig(t, "format: json\ndisplay: \":1\"\nverbose: true\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Format != "json" {
		t.Errorf("format: got %q", cfg.Format)
	}
	if cfg.Display != ":1" {
		t.Errorf("display: got %q", cfg.Display)
	}
	if !cfg.Verbose {
		t.Error("verbose: expected true")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "format: [unclosed\n")
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestLoad_UnknownFormat(t *testing.T) {
	path := writeConfig(t, "format: xml\n")
	if _, err := Load(path); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestPath_HonorsXDGConfigHome(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	path, err := Path()
	if err != nil {
		t.Fatal(err)
	}
	want := filepath.Join("/tmp/xdg", "xwinctl", "config.yaml")
	if path != want {
		t.Errorf("got %q, want %q", path, want)
	}
}
