// Package mediatags extracts metadata tags from audio files sitting
// next to the playlists.
//
// Playlist directories commonly hold the music itself alongside the
// playlist files. This package reads artist/title/album tags from
// those files so they can be audited against what the playlists
// reference:
//
//	results, err := mediatags.ReadDir(ctx, "/mnt/music", true)
//	for _, r := range results {
//	    if r.Err != nil {
//	        continue // unreadable file, reported per entry
//	    }
//	    fmt.Println(r.Tags.Artist, "-", r.Tags.Title)
//	}
//
// Supported formats: MP3 (ID3v2 frames) and M4A (MP4 metadata
// atoms). The playlist engine itself never requires this package;
// only the inspection surface of the CLI does.
package mediatags
