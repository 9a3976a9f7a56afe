package sync

import (
	"bytes"
	"fmt"
	"path/filepath"
	"time"

	"github.com/handiism/playlist-sync/internal/discover"
	ioutils "github.com/handiism/playlist-sync/internal/io"
	"github.com/handiism/playlist-sync/internal/model"
	"github.com/handiism/playlist-sync/internal/playlist"
)

// runOutput reconciles the supplied collection with the playlist
// files on disk.
//
// For each playlist, an existing file whose derived name matches
// exactly is rewritten in full (after an optional backup); playlists
// with no matching file are created as <dir>/<name>.csv. A failure
// on one playlist is reported and does not stop the rest of the
// batch.
func (e *Engine) runOutput(settings Settings, playlists []model.Playlist) error {
	dir := normalizeDir(settings)

	if err := ioutils.EnsureDir(dir); err != nil {
		e.event(LevelError, "Cannot create playlist directory: %v", err)
	}

	// Index existing files by derived name. On duplicate names the
	// first file in discovery order wins, deterministically, so a
	// later duplicate can never be clobbered by accident.
	existing := make(map[string]string)
	for _, c := range e.discoverCandidates(dir, settings.Recursive) {
		if prev, ok := existing[c.Name]; ok {
			e.event(LevelWarning, "Duplicate playlist name %q (%s and %s); syncing to the first.", c.Name, prev, c.Path)
			continue
		}
		existing[c.Name] = c.Path
	}

	for _, pl := range playlists {
		if err := e.syncPlaylist(dir, existing, settings.MakeBackup, pl); err != nil {
			e.event(LevelError, "Cannot sync playlist %q: %v", pl.Name, err)
		}
	}

	return nil
}

// syncPlaylist writes one playlist to its target file, replacing any
// prior content entirely.
func (e *Engine) syncPlaylist(dir string, existing map[string]string, makeBackup bool, pl model.Playlist) error {
	target, exists := existing[pl.Name]

	if exists && makeBackup {
		backup := backupPath(target, time.Now())
		if err := ioutils.CopyFile(target, backup); err != nil {
			// Never truncate a playlist whose prior version could
			// not be secured first.
			return fmt.Errorf("backup: %w", err)
		}
		e.event(LevelVerbose, "Backed up %q to %s.", pl.Name, filepath.Base(backup))
	}

	if !exists {
		target = filepath.Join(dir, ioutils.SanitizeFileName(pl.Name)+discover.DefaultExtension)
	}

	var buf bytes.Buffer
	if err := playlist.Encode(&buf, pl.Songs); err != nil {
		return err
	}
	if err := ioutils.WriteFileAtomic(target, buf.Bytes()); err != nil {
		return err
	}

	if exists {
		e.event(LevelSuccess, "Updated playlist %q (%d songs).", pl.Name, len(pl.Songs))
	} else {
		e.event(LevelSuccess, "Created playlist %q (%d songs).", pl.Name, len(pl.Songs))
	}
	return nil
}

// backupPath builds a timestamped sibling path for a pre-write copy.
// The ".bak" suffix keeps backups out of later discovery scans.
func backupPath(target string, now time.Time) string {
	return target + "." + now.Format("20060102-150405") + ".bak"
}
