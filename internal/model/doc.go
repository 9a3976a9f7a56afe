// Package model defines the core data structures shared across
// playlist-sync.
//
// # Song
//
// Song holds the four fixed fields of one playlist row:
//
//	song := model.SongFromRecord([]string{"Queen", "Bohemian Rhapsody", "A Night at the Opera", "GBUM71029604"})
//	record := song.Record() // back to row form, same column order
//
// The on-disk column order is defined once by the Col* constants.
//
// # Playlist
//
// Playlist is the unit exchanged with the host: a name, an opaque ID
// map owned by other plugins, and an ordered song list.
//
// # Candidate
//
// Candidate is a (name, path) pair produced by directory discovery
// before extension and name filtering confirm it as a playlist.
package model
