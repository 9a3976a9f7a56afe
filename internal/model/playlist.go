package model

// Playlist is one playlist in the collection exchanged with the host.
//
// The same structure is used in both directions: the input role
// produces playlists parsed from disk, the output role consumes
// playlists to persist. Song order is meaningful (playlist order) and
// is preserved on both read and write.
type Playlist struct {
	// Name is the playlist name, derived from the filename without
	// extension on read and used to locate or create the target file
	// on write.
	Name string `json:"name"`

	// ID holds opaque cross-plugin identifiers keyed by namespace
	// (e.g. "spotify", "deezer"). This engine never interprets the
	// values; it only passes them through unchanged.
	ID map[string]any `json:"id"`

	// Songs is the ordered song list.
	Songs []Song `json:"songs"`
}

// Candidate is a filesystem entry considered as a playlist file
// during discovery. Candidates are recomputed on every run; nothing
// is cached between runs.
type Candidate struct {
	// Name is the filename without its final extension.
	Name string

	// Path is the full path as produced by the directory walk.
	Path string
}
