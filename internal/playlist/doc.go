// Package playlist implements the on-disk playlist row format.
//
// A playlist file is comma-delimited UTF-8 text with one row per song
// and four columns in fixed order:
//
//	artist,title,album,isrc
//
// There is no header row; the column mapping lives in package model.
//
// # Reading
//
//	songs, rowErrs := playlist.Decode(file)
//	for _, re := range rowErrs {
//	    // each malformed row is reported and skipped, never fatal
//	}
//
// # Writing
//
//	var buf bytes.Buffer
//	err := playlist.Encode(&buf, songs)
//
// Decode(Encode(songs)) always yields songs unchanged, field for
// field and in order.
package playlist
