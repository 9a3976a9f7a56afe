package playlist

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/handiism/playlist-sync/internal/model"
)

// Delimiter is the column separator used by playlist files.
const Delimiter = ','

// RowError describes one row that could not be turned into a song.
// Row numbers are 1-based and count data rows, not raw lines.
type RowError struct {
	Row int
	Err error
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Row, e.Err)
}

// Decode reads comma-delimited playlist rows from r and returns the
// songs in file order.
//
// Decoding is tolerant per row: a malformed row (fewer than
// model.NumColumns columns, or a CSV syntax error) is reported in the
// returned RowError slice and skipped, so one bad line does not
// discard an otherwise valid playlist. Columns beyond the known four
// are ignored.
func Decode(r io.Reader) ([]model.Song, []RowError) {
	reader := csv.NewReader(r)
	reader.Comma = Delimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var songs []model.Song
	var rowErrs []RowError

	for row := 1; ; row++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			rowErrs = append(rowErrs, RowError{Row: row, Err: err})
			continue
		}
		if len(record) < model.NumColumns {
			rowErrs = append(rowErrs, RowError{
				Row: row,
				Err: fmt.Errorf("expected %d columns, got %d", model.NumColumns, len(record)),
			})
			continue
		}
		songs = append(songs, model.SongFromRecord(record))
	}

	return songs, rowErrs
}

// Encode writes songs to w as comma-delimited rows in the fixed
// column order, one row per song. The output fully represents the
// playlist; callers replace file contents with it rather than
// appending.
func Encode(w io.Writer, songs []model.Song) error {
	writer := csv.NewWriter(w)
	writer.Comma = Delimiter

	for _, song := range songs {
		if err := writer.Write(song.Record()); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
