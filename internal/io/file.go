// Package ioutils provides file system utilities for playlist-sync.
//
// This package contains functions for:
//   - Directory path normalization
//   - File copying (playlist backups)
//   - Atomic file writing
//   - Filename sanitization
//   - Directory creation
package ioutils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// NormalizeDir strips trailing path separators of both operating
// system conventions from a directory path.
//
// Settings may arrive with a trailing "/" or "\" depending on which
// platform the host was configured on; every subsequent join assumes
// the base path carries no trailing separator.
//
// Example:
//
//	NormalizeDir(`/mnt/music/playlists/`)   // "/mnt/music/playlists"
//	NormalizeDir(`C:\music\playlists\`)     // `C:\music\playlists`
func NormalizeDir(dir string) string {
	return strings.TrimRight(dir, `/\`)
}

// CopyFile copies a file from source to destination.
//
// The destination file is created with mode 0644 if it doesn't exist,
// or truncated if it does. The source file must exist and be readable.
func CopyFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	destFile, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(destFile, sourceFile); err != nil {
		destFile.Close()
		return err
	}
	return destFile.Close()
}

// WriteFileAtomic writes data to path without ever leaving a
// partially written file behind.
//
// The data is first written to a temporary file in the same directory
// and then renamed over the target. A crash mid-write leaves either
// the old content or the new content at path, never a truncated mix.
// The temporary file is removed if any step fails.
func WriteFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename %s: %w", filepath.Base(path), err)
	}
	return nil
}

// SanitizeFileName removes or replaces characters that are invalid in
// file/folder names.
//
// Playlist names supplied by other plugins can contain anything, so
// names are made safe before a new file is created from one. Windows
// has the most restrictive rules and drives the character set here.
//
// The following transformations are applied:
//   - Invalid characters (<>:"/\|?* and control chars 0x00-0x1f) → underscore
//   - Trailing dots → removed (Windows limitation)
//   - Multiple whitespace → single space
//   - Trailing whitespace → removed
func SanitizeFileName(name string) string {
	// Replace invalid path/file characters with underscore
	invalidChars := regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
	name = invalidChars.ReplaceAllString(name, "_")

	// Remove trailing dots (Windows doesn't allow filenames ending with dots)
	name = regexp.MustCompile(`\.+$`).ReplaceAllString(name, "")

	// Replace multiple whitespace with single space
	name = regexp.MustCompile(`\s+`).ReplaceAllString(name, " ")

	return strings.TrimRight(name, " ")
}

// EnsureDir creates a directory and all parent directories if they
// don't exist. Directories are created with mode 0755.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}
