// Package tui provides a Bubble Tea terminal user interface for
// playlist-sync.
package tui

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	stdsync "sync"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/handiism/playlist-sync/internal/config"
	"github.com/handiism/playlist-sync/internal/form"
	"github.com/handiism/playlist-sync/internal/model"
	"github.com/handiism/playlist-sync/internal/sync"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500"))
)

// State represents the current UI state.
type State int

const (
	StateForm State = iota
	StateRunning
	StateComplete
	StateError
)

// Indices into the text field slice.
const (
	fieldDir = iota
	fieldFilter
	fieldPayload
	numFields
)

// maxLogEntries is how many log lines the running/complete views
// keep on screen.
const maxLogEntries = 10

// LogEntry represents a log message in the UI.
type LogEntry struct {
	Message string
	Level   sync.Level
}

// eventBuffer collects engine events from the run goroutine; the
// update loop drains it on a timer.
type eventBuffer struct {
	mu     stdsync.Mutex
	events []sync.Event
}

func (b *eventBuffer) add(ev sync.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, ev)
}

func (b *eventBuffer) drain() []sync.Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	events := b.events
	b.events = nil
	return events
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state   State
	role    sync.Role
	fields  []textinput.Model
	focus   int
	spinner spinner.Model
	logs    []LogEntry
	buffer  *eventBuffer
	err     error

	// Options
	recursive bool
	backup    bool
	verbose   bool

	// Result summary
	playlists int
	songs     int

	width  int
	height int
}

// NewModel creates a new TUI model seeded from the configuration
// file defaults.
func NewModel(cfg *config.Config) Model {
	dir := textinput.New()
	dir.Placeholder = defaultDirectory()
	dir.SetValue(cfg.Directory)
	dir.Focus()
	dir.CharLimit = 300
	dir.Width = 60

	filter := textinput.New()
	filter.Placeholder = "regex filter (blank syncs everything)"
	filter.SetValue(cfg.Filter)
	filter.CharLimit = 200
	filter.Width = 60

	payload := textinput.New()
	payload.Placeholder = "collection file, e.g. playlists.json"
	payload.CharLimit = 300
	payload.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	return Model{
		state:     StateForm,
		role:      sync.RoleInputs,
		fields:    []textinput.Model{dir, filter, payload},
		spinner:   sp,
		buffer:    &eventBuffer{},
		recursive: cfg.Recursive,
		backup:    cfg.Backup,
		verbose:   cfg.Verbose,
	}
}

// defaultDirectory pulls the directory default out of the settings
// schema so the TUI and any other settings surface stay in agreement.
func defaultDirectory() string {
	for _, f := range form.Fields(sync.RoleInputs) {
		if f.Name == "dir" {
			return f.Value
		}
	}
	return ""
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Message types
type (
	// RunDoneMsg is sent when an engine run finishes.
	RunDoneMsg struct {
		Playlists int
		Songs     int
		Err       error
	}

	// TickMsg drains buffered engine events into the log pane.
	TickMsg struct{}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "esc":
			if m.state == StateForm {
				return m, tea.Quit
			}

		case "tab", "shift+tab":
			if m.state == StateForm {
				if msg.String() == "tab" {
					m.focus = (m.focus + 1) % numFields
				} else {
					m.focus = (m.focus + numFields - 1) % numFields
				}
				for i := range m.fields {
					if i == m.focus {
						m.fields[i].Focus()
					} else {
						m.fields[i].Blur()
					}
				}
				return m, nil
			}

		case "enter":
			if m.state == StateForm && m.fields[fieldDir].Value() != "" {
				m.state = StateRunning
				m.logs = nil
				return m, tea.Batch(m.runSync(), m.tickEvents(), m.spinner.Tick)
			}

		case "ctrl+o":
			if m.state == StateForm {
				if m.role == sync.RoleInputs {
					m.role = sync.RoleOutputs
				} else {
					m.role = sync.RoleInputs
				}
			}

		case "ctrl+r":
			if m.state == StateForm {
				m.recursive = !m.recursive
			}

		case "ctrl+b":
			if m.state == StateForm {
				m.backup = !m.backup
			}

		case "ctrl+v":
			if m.state == StateForm {
				m.verbose = !m.verbose
			}

		case "q":
			if m.state == StateComplete || m.state == StateError {
				return m, tea.Quit
			}

		case "r":
			if m.state == StateComplete || m.state == StateError {
				// Reset for another run
				m.state = StateForm
				m.logs = nil
				m.err = nil
				m.playlists = 0
				m.songs = 0
				m.buffer = &eventBuffer{}
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case TickMsg:
		m.logs = appendEvents(m.logs, m.buffer.drain(), m.verbose)
		if m.state == StateRunning {
			cmds = append(cmds, m.tickEvents())
		}

	case RunDoneMsg:
		m.playlists = msg.Playlists
		m.songs = msg.Songs
		m.logs = appendEvents(m.logs, m.buffer.drain(), m.verbose)
		if msg.Err != nil {
			m.state = StateError
			m.err = msg.Err
		} else {
			m.state = StateComplete
		}
	}

	// Update the focused text field
	if m.state == StateForm {
		var cmd tea.Cmd
		m.fields[m.focus], cmd = m.fields[m.focus].Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// appendEvents folds drained engine events into the log pane,
// skipping verbose entries unless enabled and keeping only the most
// recent maxLogEntries lines.
func appendEvents(logs []LogEntry, events []sync.Event, verbose bool) []LogEntry {
	for _, ev := range events {
		if ev.Level == sync.LevelVerbose && !verbose {
			continue
		}
		logs = append(logs, LogEntry{Message: ev.Message, Level: ev.Level})
	}
	if len(logs) > maxLogEntries {
		logs = logs[len(logs)-maxLogEntries:]
	}
	return logs
}

// tickEvents returns a command to drain engine events periodically.
func (m Model) tickEvents() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

// runSync executes one engine run in the background.
func (m Model) runSync() tea.Cmd {
	role := m.role
	settings := sync.Settings{
		Directory:  m.fields[fieldDir].Value(),
		Recursive:  m.recursive,
		Filter:     m.fields[fieldFilter].Value(),
		MakeBackup: m.backup,
	}
	payload := m.fields[fieldPayload].Value()
	buffer := m.buffer

	return func() tea.Msg {
		engine := sync.NewEngine(buffer.add)

		switch role {
		case sync.RoleInputs:
			collection, err := engine.Run(role, settings, nil)
			if err != nil {
				return RunDoneMsg{Err: err}
			}
			if payload != "" {
				if err := writeCollection(payload, collection); err != nil {
					return RunDoneMsg{Err: err}
				}
			}
			return RunDoneMsg{Playlists: len(collection), Songs: countSongs(collection)}

		default:
			collection, err := readCollection(payload)
			if err != nil {
				return RunDoneMsg{Err: err}
			}
			if _, err := engine.Run(role, settings, collection); err != nil {
				return RunDoneMsg{Err: err}
			}
			return RunDoneMsg{Playlists: len(collection), Songs: countSongs(collection)}
		}
	}
}

func countSongs(collection []model.Playlist) int {
	var n int
	for _, pl := range collection {
		n += len(pl.Songs)
	}
	return n
}

func writeCollection(path string, collection []model.Playlist) error {
	data, err := json.MarshalIndent(collection, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func readCollection(path string) ([]model.Playlist, error) {
	if path == "" {
		return nil, fmt.Errorf("output role needs a collection file to sync from")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var collection []model.Playlist
	if err := json.Unmarshal(data, &collection); err != nil {
		return nil, err
	}
	return collection, nil
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("🎶 Playlist Sync"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Sync local playlist files with a shared collection"))
	b.WriteString("\n\n")

	switch m.state {
	case StateForm:
		b.WriteString(m.viewForm())
	case StateRunning:
		b.WriteString(m.viewRunning())
	case StateComplete:
		b.WriteString(m.viewComplete())
	case StateError:
		b.WriteString(m.viewError())
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewForm() string {
	var b strings.Builder

	roleLabel := "read playlists from disk"
	if m.role == sync.RoleOutputs {
		roleLabel = "write collection to disk"
	}
	b.WriteString(subtitleStyle.Render(fmt.Sprintf("Role: %s — %s", m.role, roleLabel)))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("Directory"))
	b.WriteString("\n")
	b.WriteString(m.fields[fieldDir].View())
	b.WriteString("\n\n")

	if m.role == sync.RoleInputs {
		b.WriteString(labelStyle.Render("Filter"))
		b.WriteString("\n")
		b.WriteString(m.fields[fieldFilter].View())
		b.WriteString("\n\n")
		b.WriteString(labelStyle.Render("Export collection to"))
	} else {
		b.WriteString(labelStyle.Render("Sync collection from"))
	}
	b.WriteString("\n")
	b.WriteString(m.fields[fieldPayload].View())
	b.WriteString("\n\n")

	recursiveCheck := "[ ]"
	if m.recursive {
		recursiveCheck = "[×]"
	}
	backupCheck := "[ ]"
	if m.backup {
		backupCheck = "[×]"
	}
	verboseCheck := "[ ]"
	if m.verbose {
		verboseCheck = "[×]"
	}

	b.WriteString(infoStyle.Render("Options:"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s Recursive scan (ctrl+r)\n", recursiveCheck))
	if m.role == sync.RoleOutputs {
		b.WriteString(fmt.Sprintf("  %s Backup before overwrite (ctrl+b)\n", backupCheck))
	}
	b.WriteString(fmt.Sprintf("  %s Verbose output (ctrl+v)\n", verboseCheck))

	return b.String()
}

func (m Model) viewRunning() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	if m.role == sync.RoleInputs {
		b.WriteString(subtitleStyle.Render("Reading playlists..."))
	} else {
		b.WriteString(subtitleStyle.Render("Syncing playlists..."))
	}
	b.WriteString("\n\n")
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewComplete() string {
	verb := "Read"
	if m.role == sync.RoleOutputs {
		verb = "Synced"
	}
	box := boxStyle.Render(fmt.Sprintf(
		"✨ Run Complete!\n\n"+
			"%s %d playlist(s)\n"+
			"Songs: %d",
		verb,
		m.playlists,
		m.songs,
	))

	var b strings.Builder
	b.WriteString(box)
	b.WriteString("\n\n")
	b.WriteString(m.renderLogs())
	return b.String()
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("❌ Error occurred:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
	}
	b.WriteString("\n\n")
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		var style lipgloss.Style
		prefix := "•"
		switch log.Level {
		case sync.LevelError:
			style = errorStyle
			prefix = "✗"
		case sync.LevelWarning:
			style = warningStyle
			prefix = "!"
		case sync.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case sync.LevelInfo:
			style = infoStyle
			prefix = "›"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + log.Message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateForm:
		return "enter: run • tab: next field • ctrl+o: role • ctrl+r: recursive • ctrl+b: backup • ctrl+v: verbose • esc: quit"
	case StateRunning:
		return "running..."
	case StateComplete, StateError:
		return "r: new run • q: quit"
	}
	return ""
}

// Run starts the TUI application.
func Run(cfg *config.Config) error {
	p := tea.NewProgram(NewModel(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
