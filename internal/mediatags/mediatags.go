package mediatags

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bogem/id3v2"
	dhowden "github.com/dhowden/tag"
	"golang.org/x/sync/errgroup"
)

// defaultWorkers bounds concurrent tag reads in ReadDir.
const defaultWorkers = 4

// Tags holds the metadata fields read from an audio file.
type Tags struct {
	Artist string
	Title  string
	Album  string
}

// Result pairs one audited file with its tags or read error.
type Result struct {
	Path string
	Tags Tags
	Err  error
}

// IsAudioFile reports whether path has a supported audio extension
// (.mp3 or .m4a).
func IsAudioFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3", ".m4a":
		return true
	}
	return false
}

// Read extracts artist/title/album tags from one audio file,
// dispatching on the file extension.
func Read(path string) (Tags, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		return readMP3(path)
	case ".m4a":
		return readM4A(path)
	default:
		return Tags{}, fmt.Errorf("unsupported audio file: %s", filepath.Base(path))
	}
}

// readMP3 reads ID3v2 frames from an MP3 file.
func readMP3(path string) (Tags, error) {
	id3Tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return Tags{}, err
	}
	defer id3Tag.Close()

	return Tags{
		Artist: id3Tag.Artist(),
		Title:  id3Tag.Title(),
		Album:  id3Tag.Album(),
	}, nil
}

// readM4A reads MP4 metadata atoms from an M4A file.
func readM4A(path string) (Tags, error) {
	f, err := os.Open(path)
	if err != nil {
		return Tags{}, err
	}
	defer f.Close()

	meta, err := dhowden.ReadFrom(f)
	if err != nil {
		return Tags{}, err
	}

	return Tags{
		Artist: meta.Artist(),
		Title:  meta.Title(),
		Album:  meta.Album(),
	}, nil
}

// ReadDir audits every supported audio file under dir and returns
// one Result per file in discovery order.
//
// Files are read concurrently with a bounded worker group; a file
// that fails to parse gets its error recorded in its Result rather
// than failing the audit. The walk itself ignores unreadable
// subdirectories, but an unreadable root returns an error.
func ReadDir(ctx context.Context, dir string, recursive bool) ([]Result, error) {
	paths, err := audioFiles(dir, recursive)
	if err != nil {
		return nil, err
	}

	results := make([]Result, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(defaultWorkers)

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			tags, err := Read(path)
			results[i] = Result{Path: path, Tags: tags, Err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func audioFiles(dir string, recursive bool) ([]string, error) {
	if !recursive {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, err
		}
		var paths []string
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			path := filepath.Join(dir, entry.Name())
			if IsAudioFile(path) {
				paths = append(paths, path)
			}
		}
		return paths, nil
	}

	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if path == dir {
				return walkErr
			}
			return nil
		}
		if !d.IsDir() && IsAudioFile(path) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paths, nil
}
