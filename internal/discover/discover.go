// Package discover finds candidate playlist files in a directory.
//
// Discovery walks the configured directory (recursively or not),
// keeps regular files whose extension is in the supported set and
// derives each candidate's playlist name from its filename. Results
// follow filesystem enumeration order; nothing is cached between
// runs.
package discover

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/handiism/playlist-sync/internal/model"
)

// SupportedExtensions is the set of playlist file extensions this
// engine reads and writes. Currently only comma-delimited .csv files,
// but kept as a set so further delimited formats can be added.
var SupportedExtensions = []string{".csv"}

// DefaultExtension is the extension given to newly created playlist
// files.
const DefaultExtension = ".csv"

// IsSupported reports whether path has a supported playlist
// extension. The comparison is case-insensitive so "TOP.CSV" written
// on another platform is still picked up.
func IsSupported(path string) bool {
	ext := filepath.Ext(path)
	for _, supported := range SupportedExtensions {
		if strings.EqualFold(ext, supported) {
			return true
		}
	}
	return false
}

// Scan lists candidate playlist files under dir.
//
// In recursive mode the full subtree is walked and files at any depth
// are considered; otherwise only the immediate directory contents
// are. Entries without a supported extension are filtered out, and
// each surviving file becomes a Candidate named after its filename
// minus the extension.
//
// A directory that cannot be listed at all yields an error; callers
// treat that as zero candidates rather than aborting the run.
// Unreadable entries below an accessible root are skipped silently so
// one bad subdirectory cannot hide the rest of the tree.
func Scan(dir string, recursive bool) ([]model.Candidate, error) {
	if recursive {
		return scanTree(dir)
	}
	return scanFlat(dir)
}

func scanTree(dir string) ([]model.Candidate, error) {
	var candidates []model.Candidate

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if path == dir {
				// The root itself is inaccessible; surface that.
				return walkErr
			}
			return nil
		}
		if d.IsDir() || !IsSupported(path) {
			return nil
		}
		candidates = append(candidates, candidate(path))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return candidates, nil
}

func scanFlat(dir string) ([]model.Candidate, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var candidates []model.Candidate
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if !IsSupported(path) {
			continue
		}
		candidates = append(candidates, candidate(path))
	}
	return candidates, nil
}

func candidate(path string) model.Candidate {
	base := filepath.Base(path)
	return model.Candidate{
		Name: strings.TrimSuffix(base, filepath.Ext(base)),
		Path: path,
	}
}
