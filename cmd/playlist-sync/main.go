package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/handiism/playlist-sync/internal/config"
	"github.com/handiism/playlist-sync/internal/mediatags"
	"github.com/handiism/playlist-sync/internal/model"
	"github.com/handiism/playlist-sync/internal/sync"
)

func main() {
	// Command line flags
	var (
		dirFlag       = flag.String("dir", "", "Playlist directory (overrides config)")
		recursiveFlag = flag.Bool("recursive", false, "Search all subfolders for playlists")
		filterFlag    = flag.String("filter", "", "Regex filter for playlist names (export mode only)")
		backupFlag    = flag.Bool("backup", false, "Back up existing playlist files before overwriting")
		configFlag    = flag.String("config", "", "Path to config file")
		verboseFlag   = flag.Bool("verbose", false, "Show verbose output")
		exportFlag    = flag.String("export", "", "Read playlists and write the collection as JSON (\"-\" for stdout)")
		importFlag    = flag.String("import", "", "Read a JSON collection and sync it to the directory")
		inspectFlag   = flag.Bool("inspect", false, "Audit tags of audio files next to the playlists")
	)

	flag.Parse()

	if *exportFlag == "" && *importFlag == "" && !*inspectFlag {
		fmt.Println("Playlist Sync - interface with local playlist files in a directory")
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Println("  playlist-sync -dir <path> -export <file>   read playlists into a JSON collection")
		fmt.Println("  playlist-sync -dir <path> -import <file>   sync a JSON collection back to disk")
		fmt.Println("  playlist-sync -dir <path> -inspect         audit audio file tags in the directory")
		fmt.Println()
		fmt.Println("For interactive mode, use: playlist-sync-tui")
		fmt.Println()
		flag.PrintDefaults()
		os.Exit(1)
	}

	// Load config
	var cfg *config.Config
	var err error
	if *configFlag != "" {
		cfg, err = config.LoadFile(*configFlag)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Apply flags over config defaults
	settings := cfg.Settings()
	verbose := cfg.Verbose
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	applyOverrides(&settings, &verbose, set, overrides{
		dir:       *dirFlag,
		recursive: *recursiveFlag,
		filter:    *filterFlag,
		backup:    *backupFlag,
		verbose:   *verboseFlag,
	})

	logger := newLogger(verbose)
	engine := sync.NewEngine(eventSink(logger))

	// Handle interrupts for the inspect walk
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	switch {
	case *exportFlag != "":
		err = runExport(engine, settings, *exportFlag)
	case *importFlag != "":
		err = runImport(engine, settings, *importFlag)
	case *inspectFlag:
		err = runInspect(ctx, logger, settings)
	}
	if err != nil {
		logger.Error().Err(err).Msg("run failed")
		os.Exit(1)
	}
}

// overrides carries the parsed flag values that can shadow config
// file settings.
type overrides struct {
	dir       string
	recursive bool
	filter    string
	backup    bool
	verbose   bool
}

// applyOverrides copies every flag named in set onto the settings.
// Only flags the user actually passed are applied, but those are
// applied even at their zero value, so `-filter ""` clears a filter
// coming from the config file.
func applyOverrides(settings *sync.Settings, verbose *bool, set map[string]bool, o overrides) {
	if set["dir"] {
		settings.Directory = o.dir
	}
	if set["recursive"] {
		settings.Recursive = o.recursive
	}
	if set["filter"] {
		settings.Filter = o.filter
	}
	if set["backup"] {
		settings.MakeBackup = o.backup
	}
	if set["verbose"] {
		*verbose = o.verbose
	}
}

// newLogger builds the console logger the engine's events are
// rendered through.
func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// eventSink maps engine events onto logger levels.
func eventSink(logger zerolog.Logger) func(sync.Event) {
	return func(ev sync.Event) {
		switch ev.Level {
		case sync.LevelError:
			logger.Error().Msg(ev.Message)
		case sync.LevelWarning:
			logger.Warn().Msg(ev.Message)
		case sync.LevelVerbose:
			logger.Debug().Msg(ev.Message)
		default:
			logger.Info().Msg(ev.Message)
		}
	}
}

// runExport reads playlists from disk and writes the collection as
// JSON to path, or stdout for "-".
func runExport(engine *sync.Engine, settings sync.Settings, path string) error {
	collection, err := engine.Run(sync.RoleInputs, settings, nil)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(collection, "", "  ")
	if err != nil {
		return err
	}

	if path == "-" {
		_, err = fmt.Println(string(data))
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}

// runImport reads a JSON collection from path and syncs it into the
// playlist directory.
func runImport(engine *sync.Engine, settings sync.Settings, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var collection []model.Playlist
	if err := json.Unmarshal(data, &collection); err != nil {
		return fmt.Errorf("parse collection %s: %w", path, err)
	}

	_, err = engine.Run(sync.RoleOutputs, settings, collection)
	return err
}

// runInspect audits the tags of audio files living next to the
// playlists.
func runInspect(ctx context.Context, logger zerolog.Logger, settings sync.Settings) error {
	if settings.Directory == "" {
		return fmt.Errorf("directory is required")
	}

	results, err := mediatags.ReadDir(ctx, settings.Directory, settings.Recursive)
	if err != nil {
		return err
	}

	var unreadable int
	for _, r := range results {
		if r.Err != nil {
			unreadable++
			logger.Warn().Str("file", r.Path).Err(r.Err).Msg("cannot read tags")
			continue
		}
		logger.Info().
			Str("file", r.Path).
			Str("artist", r.Tags.Artist).
			Str("title", r.Tags.Title).
			Str("album", r.Tags.Album).
			Msg("audio file")
	}
	logger.Info().Msgf("Inspected %d audio file(s), %d unreadable.", len(results), unreadable)
	return nil
}
