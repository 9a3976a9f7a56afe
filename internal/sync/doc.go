// Package sync implements the playlist discovery, filter and merge
// engine.
//
// The engine translates between delimited playlist files in a
// directory tree and the playlist collection exchanged with the host,
// acting symmetrically as a source and a sink:
//
//	engine := sync.NewEngine(func(ev sync.Event) {
//	    fmt.Println(ev.Message)
//	})
//
//	// Input role: read playlists from disk.
//	collection, err := engine.Run(sync.RoleInputs, settings, nil)
//
//	// Output role: merge the collection back onto disk.
//	_, err = engine.Run(sync.RoleOutputs, settings, collection)
//
// # Reconciliation
//
// The output role updates existing files rather than blindly
// overwriting the directory: each playlist is matched by name against
// the files already present, optionally backed up, then rewritten in
// full. Unmatched playlists become new files. Contents are replaced
// whole per playlist; there is no line-level merging.
//
// # Fault containment
//
// Errors are contained at the smallest unit and reported as events:
// an unreadable directory yields an empty run, an unreadable file is
// excluded, a malformed row is skipped, a failed write abandons only
// that playlist. Running twice with unchanged input is idempotent.
package sync
