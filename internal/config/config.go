// Package config loads the playlist-sync configuration file.
//
// Configuration lives in TOML and provides defaults for the per-run
// settings a host or CLI invocation may override:
//
//	directory = "/mnt/music library/playlists"
//	recursive = true
//	filter = "disco"
//	backup = true
//	verbose = false
//
// Files are looked up in order (last wins):
//
//  1. $XDG_CONFIG_HOME/playlist-sync/config.toml
//  2. ./config.toml
//
// A missing file is not an error; all fields then fall back to their
// zero defaults.
package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/handiism/playlist-sync/internal/sync"
)

// Config holds the file-backed defaults for engine runs.
type Config struct {
	Directory string `koanf:"directory"`
	Recursive bool   `koanf:"recursive"`
	Filter    string `koanf:"filter"`
	Backup    bool   `koanf:"backup"`
	Verbose   bool   `koanf:"verbose"`
}

// Load reads configuration from the default search paths.
func Load() (*Config, error) {
	return loadPaths(searchPaths())
}

// LoadFile reads configuration from one explicit file, which must
// exist.
func LoadFile(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}
	return loadPaths([]string{path})
}

func loadPaths(paths []string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.Directory = expandPath(cfg.Directory)
	return cfg, nil
}

func searchPaths() []string {
	return []string{
		filepath.Join(xdg.ConfigHome, "playlist-sync", "config.toml"),
		"config.toml",
	}
}

// expandPath expands a leading ~ to the user's home directory.
func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// Settings converts the configuration into a per-run settings
// bundle.
func (c *Config) Settings() sync.Settings {
	return sync.Settings{
		Directory:  c.Directory,
		Recursive:  c.Recursive,
		Filter:     c.Filter,
		MakeBackup: c.Backup,
	}
}
