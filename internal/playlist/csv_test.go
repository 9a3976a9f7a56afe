package playlist

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/handiism/playlist-sync/internal/model"
)

func TestDecode(t *testing.T) {
	input := "Queen,Bohemian Rhapsody,A Night at the Opera,GBUM71029604\n" +
		"ABBA,Dancing Queen,Arrival,SEAB89800001\n"

	songs, rowErrs := Decode(strings.NewReader(input))
	if len(rowErrs) != 0 {
		t.Fatalf("Decode() rowErrs = %v, want none", rowErrs)
	}

	want := []model.Song{
		{Artist: "Queen", Title: "Bohemian Rhapsody", Album: "A Night at the Opera", ISRC: "GBUM71029604"},
		{Artist: "ABBA", Title: "Dancing Queen", Album: "Arrival", ISRC: "SEAB89800001"},
	}
	if !reflect.DeepEqual(songs, want) {
		t.Errorf("Decode() = %+v, want %+v", songs, want)
	}
}

func TestDecode_MalformedRowTolerance(t *testing.T) {
	input := "A,T,Al,ISRC1\nbadrow\nB,T2,Al2,ISRC2\n"

	songs, rowErrs := Decode(strings.NewReader(input))

	if len(songs) != 2 {
		t.Fatalf("Decode() songs = %d, want 2", len(songs))
	}
	if songs[0].Artist != "A" || songs[1].Artist != "B" {
		t.Errorf("Decode() artists = %q, %q, want A, B", songs[0].Artist, songs[1].Artist)
	}
	if len(rowErrs) != 1 {
		t.Fatalf("Decode() rowErrs = %v, want exactly one", rowErrs)
	}
	if rowErrs[0].Row != 2 {
		t.Errorf("RowError.Row = %d, want 2", rowErrs[0].Row)
	}
}

func TestDecode_Empty(t *testing.T) {
	songs, rowErrs := Decode(strings.NewReader(""))
	if len(songs) != 0 || len(rowErrs) != 0 {
		t.Errorf("Decode(empty) = %v, %v, want nothing", songs, rowErrs)
	}
}

func TestDecode_QuotedFields(t *testing.T) {
	input := "\"Crosby, Stills & Nash\",Helplessly Hoping,\"Crosby, Stills & Nash\",USAT20300507\n"

	songs, rowErrs := Decode(strings.NewReader(input))
	if len(rowErrs) != 0 {
		t.Fatalf("Decode() rowErrs = %v, want none", rowErrs)
	}
	if len(songs) != 1 {
		t.Fatalf("Decode() songs = %d, want 1", len(songs))
	}
	if songs[0].Artist != "Crosby, Stills & Nash" {
		t.Errorf("Artist = %q, want embedded comma preserved", songs[0].Artist)
	}
}

func TestEncode_Decode_RoundTrip(t *testing.T) {
	songs := []model.Song{
		{Artist: "Queen", Title: "Bohemian Rhapsody", Album: "A Night at the Opera", ISRC: "GBUM71029604"},
		{Artist: "Crosby, Stills & Nash", Title: "Helplessly Hoping", Album: "Crosby, Stills & Nash", ISRC: ""},
		{Artist: "ABBA", Title: "Dancing Queen", Album: "Arrival", ISRC: "SEAB89800001"},
	}

	var buf bytes.Buffer
	if err := Encode(&buf, songs); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	got, rowErrs := Decode(&buf)
	if len(rowErrs) != 0 {
		t.Fatalf("Decode() rowErrs = %v, want none", rowErrs)
	}
	if !reflect.DeepEqual(got, songs) {
		t.Errorf("round trip = %+v, want %+v", got, songs)
	}
}

func TestEncode_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, nil); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("Encode(nil) wrote %q, want empty", buf.String())
	}
}
