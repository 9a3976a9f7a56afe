package model

import (
	"reflect"
	"testing"
)

func TestSongFromRecord(t *testing.T) {
	record := []string{"Queen", "Bohemian Rhapsody", "A Night at the Opera", "GBUM71029604"}
	song := SongFromRecord(record)

	if song.Artist != "Queen" {
		t.Errorf("Artist = %q, want %q", song.Artist, "Queen")
	}
	if song.Title != "Bohemian Rhapsody" {
		t.Errorf("Title = %q, want %q", song.Title, "Bohemian Rhapsody")
	}
	if song.Album != "A Night at the Opera" {
		t.Errorf("Album = %q, want %q", song.Album, "A Night at the Opera")
	}
	if song.ISRC != "GBUM71029604" {
		t.Errorf("ISRC = %q, want %q", song.ISRC, "GBUM71029604")
	}
}

func TestSongFromRecord_ExtraColumns(t *testing.T) {
	record := []string{"ABBA", "Dancing Queen", "Arrival", "SEAB89800001", "extra", "ignored"}
	song := SongFromRecord(record)

	want := Song{Artist: "ABBA", Title: "Dancing Queen", Album: "Arrival", ISRC: "SEAB89800001"}
	if song != want {
		t.Errorf("SongFromRecord() = %+v, want %+v", song, want)
	}
}

func TestSong_Record_RoundTrip(t *testing.T) {
	songs := []Song{
		{Artist: "Queen", Title: "Bohemian Rhapsody", Album: "A Night at the Opera", ISRC: "GBUM71029604"},
		{Artist: "", Title: "Untitled", Album: "", ISRC: ""},
	}

	for _, song := range songs {
		record := song.Record()
		if len(record) != NumColumns {
			t.Fatalf("Record() length = %d, want %d", len(record), NumColumns)
		}
		if got := SongFromRecord(record); got != song {
			t.Errorf("round trip = %+v, want %+v", got, song)
		}
	}
}

func TestColumnOrder(t *testing.T) {
	// The on-disk format depends on this exact ordering. If this test
	// fails, existing playlist files would be silently corrupted.
	song := Song{Artist: "a", Title: "t", Album: "al", ISRC: "i"}
	want := []string{"a", "t", "al", "i"}
	if got := song.Record(); !reflect.DeepEqual(got, want) {
		t.Errorf("Record() = %v, want %v", got, want)
	}
}
