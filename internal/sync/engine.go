package sync

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/handiism/playlist-sync/internal/discover"
	ioutils "github.com/handiism/playlist-sync/internal/io"
	"github.com/handiism/playlist-sync/internal/model"
)

// Role selects which direction the engine runs in.
type Role string

const (
	// RoleInputs reads playlists from disk into the shared collection.
	RoleInputs Role = "inputs"

	// RoleOutputs writes the shared collection back to disk.
	RoleOutputs Role = "outputs"
)

// Settings is the per-run settings bundle supplied by the host.
//
// It replaces the loosely typed dictionary of the original settings
// form with named, typed fields; in particular Recursive is a real
// bool rather than a "Yes"/"No" string. Validate checks the bundle
// once at the boundary so the role implementations can assume it is
// well formed.
type Settings struct {
	// Directory is the playlist directory. Required. Trailing path
	// separators of either convention are stripped before use.
	Directory string

	// Recursive selects whether discovery walks the full subtree of
	// Directory or lists only its immediate contents.
	Recursive bool

	// Filter is an optional regex pattern restricting which
	// discovered playlists the input role reads. Matching is
	// case-insensitive and empty matches everything. Ignored by the
	// output role, which syncs every playlist it is handed without
	// re-filtering.
	Filter string

	// MakeBackup makes the output role copy an existing playlist
	// file aside before overwriting it.
	MakeBackup bool
}

// Validate checks the settings bundle for the given role.
func (s Settings) Validate(role Role) error {
	if strings.TrimSpace(s.Directory) == "" {
		return fmt.Errorf("directory is required")
	}
	if role == RoleInputs && s.Filter != "" {
		if _, err := regexp.Compile(s.Filter); err != nil {
			return fmt.Errorf("invalid filter pattern %q: %w", s.Filter, err)
		}
	}
	return nil
}

// Engine discovers, parses and synchronizes delimited playlist files
// in a directory tree. It acts as a source (input role) and a sink
// (output role) for the host's playlist collection.
//
// An Engine is single-threaded and run-to-completion; the host is
// responsible for serializing runs that target the same directory.
// Concurrent output runs over one directory are not isolated against
// each other.
type Engine struct {
	onEvent func(Event)
}

// NewEngine creates a new Engine reporting through onEvent. A nil
// callback discards all events.
func NewEngine(onEvent func(Event)) *Engine {
	return &Engine{onEvent: onEvent}
}

// Run executes one engine invocation in the given role.
//
// The input role returns the discovered, filtered and parsed playlist
// collection; playlists is ignored. The output role persists
// playlists to disk and returns a nil collection. Errors are returned
// only for boundary problems (unknown role, invalid settings); I/O
// trouble inside a run is contained per directory, file or row and
// reported through events instead.
func (e *Engine) Run(role Role, settings Settings, playlists []model.Playlist) ([]model.Playlist, error) {
	if err := settings.Validate(role); err != nil {
		return nil, err
	}

	switch role {
	case RoleInputs:
		return e.runInput(settings)
	case RoleOutputs:
		return nil, e.runOutput(settings, playlists)
	default:
		return nil, fmt.Errorf("unknown component role %q", role)
	}
}

// discoverCandidates lists candidate playlist files, downgrading a
// directory access failure to an empty result. A misconfigured path
// degrades to "no playlists found" instead of aborting the whole
// pipeline run.
func (e *Engine) discoverCandidates(dir string, recursive bool) []model.Candidate {
	candidates, err := discover.Scan(dir, recursive)
	if err != nil {
		e.event(LevelError, "Cannot list playlist directory: %v", err)
		return nil
	}
	e.event(LevelInfo, "Found %d playlist(s) in supplied directory.", len(candidates))
	return candidates
}

func normalizeDir(settings Settings) string {
	return ioutils.NormalizeDir(settings.Directory)
}
