package model

// Column indices for the on-disk playlist row format.
//
// Playlist files carry one comma-separated row per song with four
// columns in a fixed order and no header. The mapping below is the
// single place that order is defined; Record and SongFromRecord both
// derive from it, so adding or reordering a column is a localized
// change.
const (
	ColArtist = 0
	ColTitle  = 1
	ColAlbum  = 2
	ColISRC   = 3

	// NumColumns is the minimum number of columns a row must have
	// to yield a valid Song. Rows with extra columns are accepted;
	// the extras are ignored.
	NumColumns = 4
)

// Song represents one song entry in a playlist.
//
// All fields are plain strings taken verbatim from (or written
// verbatim to) a playlist row. No field is validated for emptiness;
// an empty ISRC simply means the identifier is unknown.
type Song struct {
	// Artist is the performing artist.
	Artist string `json:"artist"`

	// Title is the song title.
	Title string `json:"title"`

	// Album is the album the song appears on.
	Album string `json:"album"`

	// ISRC is the International Standard Recording Code, used by
	// other plugins to match songs across services. May be empty.
	ISRC string `json:"isrc"`
}

// SongFromRecord builds a Song from one decoded playlist row.
//
// The record must have at least NumColumns fields; callers are
// expected to check len(record) first and treat shorter rows as a
// per-row parse error.
func SongFromRecord(record []string) Song {
	return Song{
		Artist: record[ColArtist],
		Title:  record[ColTitle],
		Album:  record[ColAlbum],
		ISRC:   record[ColISRC],
	}
}

// Record converts the song back into a playlist row in the fixed
// column order.
func (s Song) Record() []string {
	record := make([]string, NumColumns)
	record[ColArtist] = s.Artist
	record[ColTitle] = s.Title
	record[ColAlbum] = s.Album
	record[ColISRC] = s.ISRC
	return record
}
