package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
directory = "/mnt/playlists"
recursive = true
filter = "disco"
backup = true
verbose = true
`)

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}

	if cfg.Directory != "/mnt/playlists" {
		t.Errorf("Directory = %q, want %q", cfg.Directory, "/mnt/playlists")
	}
	if !cfg.Recursive || !cfg.Backup || !cfg.Verbose {
		t.Errorf("bool fields = %+v, want all true", cfg)
	}
	if cfg.Filter != "disco" {
		t.Errorf("Filter = %q, want %q", cfg.Filter, "disco")
	}
}

func TestLoadFile_Missing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("LoadFile() on missing file should return an error")
	}
}

func TestLoadPaths_MissingFilesSkipped(t *testing.T) {
	cfg, err := loadPaths([]string{filepath.Join(t.TempDir(), "absent.toml")})
	if err != nil {
		t.Fatalf("loadPaths() error = %v", err)
	}
	if cfg.Directory != "" || cfg.Recursive {
		t.Errorf("cfg = %+v, want zero defaults", cfg)
	}
}

func TestLoadPaths_LastWins(t *testing.T) {
	first := writeConfig(t, t.TempDir(), `directory = "/one"`+"\n"+`recursive = true`)
	second := writeConfig(t, t.TempDir(), `directory = "/two"`)

	cfg, err := loadPaths([]string{first, second})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Directory != "/two" {
		t.Errorf("Directory = %q, want later file to win", cfg.Directory)
	}
	if !cfg.Recursive {
		t.Error("Recursive from the earlier file should survive the merge")
	}
}

func TestSettings(t *testing.T) {
	cfg := &Config{Directory: "/pl", Recursive: true, Filter: "x", Backup: true}
	settings := cfg.Settings()

	if settings.Directory != "/pl" || !settings.Recursive || settings.Filter != "x" || !settings.MakeBackup {
		t.Errorf("Settings() = %+v, want fields carried over", settings)
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	if got := expandPath("~/playlists"); got != filepath.Join(home, "playlists") {
		t.Errorf("expandPath(~/playlists) = %q", got)
	}
	if got := expandPath("/absolute"); got != "/absolute" {
		t.Errorf("expandPath(/absolute) = %q, want unchanged", got)
	}
}
