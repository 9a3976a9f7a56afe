package sync

import (
	"os"

	"github.com/handiism/playlist-sync/internal/model"
	"github.com/handiism/playlist-sync/internal/namefilter"
	"github.com/handiism/playlist-sync/internal/playlist"
)

// runInput reads every discovered playlist that passes the name
// filter and returns the resulting collection.
//
// Files that fail to open and rows that fail to parse are reported
// and skipped; neither aborts the run. When two discovered files
// derive the same playlist name, the first one in discovery order
// wins and the conflict is reported.
func (e *Engine) runInput(settings Settings) ([]model.Playlist, error) {
	dir := normalizeDir(settings)
	candidates := e.discoverCandidates(dir, settings.Recursive)

	names := make([]string, len(candidates))
	for i, c := range candidates {
		names[i] = c.Name
	}

	// Validate already compiled the pattern, so this cannot fail.
	matched, err := namefilter.Filter(names, settings.Filter)
	if err != nil {
		return nil, err
	}
	e.event(LevelInfo, "%d playlist(s) match supplied filter.", len(matched))

	matchedSet := make(map[string]bool, len(matched))
	for _, name := range matched {
		matchedSet[name] = true
	}

	collection := []model.Playlist{}
	seen := make(map[string]bool)

	for _, c := range candidates {
		if !matchedSet[c.Name] {
			continue
		}
		if seen[c.Name] {
			e.event(LevelWarning, "Duplicate playlist name %q at %s; keeping the first one found.", c.Name, c.Path)
			continue
		}
		seen[c.Name] = true

		entry, ok := e.readPlaylist(c)
		if !ok {
			continue
		}
		collection = append(collection, entry)
	}

	return collection, nil
}

// readPlaylist parses one playlist file into a collection entry.
// Returns ok=false if the file could not be opened at all.
func (e *Engine) readPlaylist(c model.Candidate) (model.Playlist, bool) {
	f, err := os.Open(c.Path)
	if err != nil {
		e.event(LevelError, "Cannot read playlist %q: %v", c.Name, err)
		return model.Playlist{}, false
	}
	defer f.Close()

	songs, rowErrs := playlist.Decode(f)
	for _, rowErr := range rowErrs {
		e.event(LevelError, "Skipping malformed row in %q: %v", c.Name, rowErr)
	}

	e.event(LevelVerbose, "Read playlist %q (%d songs).", c.Name, len(songs))

	if songs == nil {
		songs = []model.Song{}
	}
	return model.Playlist{
		Name:  c.Name,
		ID:    map[string]any{},
		Songs: songs,
	}, true
}
