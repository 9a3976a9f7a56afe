package mediatags

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/bogem/id3v2"
)

// writeTaggedMP3 creates a minimal MP3 file carrying only an ID3v2
// tag with the given fields.
func writeTaggedMP3(t *testing.T, path, artist, title, album string) {
	t.Helper()
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatal(err)
	}
	id3Tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		t.Fatal(err)
	}
	id3Tag.SetArtist(artist)
	id3Tag.SetTitle(title)
	id3Tag.SetAlbum(album)
	if err := id3Tag.Save(); err != nil {
		t.Fatal(err)
	}
	if err := id3Tag.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestIsAudioFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"song.mp3", true},
		{"SONG.MP3", true},
		{"track.m4a", true},
		{"playlist.csv", false},
		{"cover.jpg", false},
		{"noext", false},
	}

	for _, tt := range tests {
		if got := IsAudioFile(tt.path); got != tt.want {
			t.Errorf("IsAudioFile(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestRead_MP3(t *testing.T) {
	path := filepath.Join(t.TempDir(), "song.mp3")
	writeTaggedMP3(t, path, "Queen", "Bohemian Rhapsody", "A Night at the Opera")

	tags, err := Read(path)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	want := Tags{Artist: "Queen", Title: "Bohemian Rhapsody", Album: "A Night at the Opera"}
	if tags != want {
		t.Errorf("Read() = %+v, want %+v", tags, want)
	}
}

func TestRead_UnsupportedExtension(t *testing.T) {
	if _, err := Read("whatever.flac"); err == nil {
		t.Error("Read() on unsupported extension should return an error")
	}
}

func TestRead_CorruptM4A(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.m4a")
	if err := os.WriteFile(path, []byte("not an mp4 container"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Read(path); err == nil {
		t.Error("Read() on corrupt m4a should return an error")
	}
}

func TestReadDir(t *testing.T) {
	dir := t.TempDir()
	writeTaggedMP3(t, filepath.Join(dir, "one.mp3"), "A", "T1", "Al")
	writeTaggedMP3(t, filepath.Join(dir, "sub.mp3"), "B", "T2", "Al")
	if err := os.WriteFile(filepath.Join(dir, "bad.m4a"), []byte("junk"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	results, err := ReadDir(context.Background(), dir, false)
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}

	if len(results) != 3 {
		t.Fatalf("ReadDir() returned %d results, want 3 (txt excluded)", len(results))
	}

	var readOK, readErr int
	for _, r := range results {
		if r.Err != nil {
			readErr++
		} else {
			readOK++
		}
	}
	if readOK != 2 || readErr != 1 {
		t.Errorf("results ok=%d err=%d, want 2 ok and 1 contained error", readOK, readErr)
	}
}

func TestReadDir_MissingDirectory(t *testing.T) {
	_, err := ReadDir(context.Background(), filepath.Join(t.TempDir(), "nope"), true)
	if err == nil {
		t.Error("ReadDir() on missing directory should return an error")
	}
}
