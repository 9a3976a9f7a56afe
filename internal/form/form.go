// Package form declares the configuration schema the host renders as
// a settings UI.
//
// The schema is pure data: an ordered list of field descriptors with
// display metadata and defaults. It performs no validation and no
// I/O; the engine validates the resulting settings bundle itself.
package form

import (
	"fmt"
	"strings"

	"github.com/handiism/playlist-sync/internal/discover"
	"github.com/handiism/playlist-sync/internal/sync"
)

// FieldType identifies how a field should be rendered.
type FieldType string

const (
	// TypeNote is a static informational string with no input.
	TypeNote FieldType = "string"

	// TypeText is a free text input.
	TypeText FieldType = "text"

	// TypeRadio is a fixed-choice selection.
	TypeRadio FieldType = "radio"
)

// Field is one entry of the configuration schema.
type Field struct {
	Type     FieldType
	Label    string
	Name     string
	Value    string
	Options  []string
	Required bool
}

// Fields returns the ordered configuration schema for the given
// engine role. The input role carries an extra regex filter field;
// the output role instead offers the backup toggle.
func Fields(role sync.Role) []Field {
	fields := []Field{
		{
			Type: TypeNote,
			Value: fmt.Sprintf("Only %s extensions are supported for playlists, and .mp3, .m4a extensions are supported for audio files. Unsupported files will be ignored.",
				strings.Join(discover.SupportedExtensions, ", ")),
		},
		{
			Type:     TypeText,
			Label:    "Directory",
			Name:     "dir",
			Value:    "/mnt/music library/playlists",
			Required: true,
		},
		{
			Type:  TypeNote,
			Value: "Enabling recursive mode will search all subfolders for more playlists.",
		},
		{
			Type:     TypeRadio,
			Label:    "Recursive",
			Name:     "recursive",
			Options:  []string{"Yes", "No"},
			Value:    "No",
			Required: true,
		},
	}

	switch role {
	case sync.RoleInputs:
		fields = append(fields,
			Field{
				Type:  TypeNote,
				Value: "You can use regex style filters to only select certain playlists. For example, 'disco' would sync playlists 'Disco 2010' and 'nu_disco', or '2020$' would only sync playlists which ended with the value '2020'.",
			},
			Field{
				Type:  TypeNote,
				Value: "Leave it blank to sync everything.",
			},
			Field{
				Type:  TypeText,
				Label: "Filter",
				Name:  "filter",
				Value: "",
			},
		)
	case sync.RoleOutputs:
		fields = append(fields,
			Field{
				Type:  TypeNote,
				Value: "Backups copy each existing playlist file aside before it is rewritten.",
			},
			Field{
				Type:     TypeRadio,
				Label:    "Make backups",
				Name:     "backup",
				Options:  []string{"Yes", "No"},
				Value:    "No",
				Required: true,
			},
		)
	}

	return fields
}
