package sync

import "fmt"

// Level indicates the severity/type of an engine event.
type Level int

const (
	LevelInfo Level = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// Event represents one progress or error message emitted by the
// engine while a run is in flight.
//
// The engine never writes to stdout or a global logger; every
// message goes through the callback supplied to NewEngine, so hosts
// decide how (and whether) to surface them.
type Event struct {
	Message string
	Level   Level
}

// event formats and emits an event if a callback is configured.
func (e *Engine) event(level Level, format string, args ...any) {
	if e.onEvent == nil {
		return
	}
	e.onEvent(Event{Message: fmt.Sprintf(format, args...), Level: level})
}
