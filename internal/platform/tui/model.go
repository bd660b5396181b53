package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-quest/internal/core"
	"github.com/vovakirdan/tui-quest/internal/engine"
	"github.com/vovakirdan/tui-quest/internal/storage"
)

// Model is the Bubble Tea model for playing a single quest.
type Model struct {
	eng          *engine.Engine
	screen       *core.Screen
	store        *storage.Store
	config       core.RuntimeConfig
	inputFrame   core.InputFrame
	state        core.GameState
	quitting     bool
	attemptSaved bool // Whether the attempt has been saved for the current solve
}

// NewModel creates a new Bubble Tea model for the given engine.
func NewModel(eng *engine.Engine, store *storage.Store, cfg core.RuntimeConfig) Model {
	eng.Reset(cfg)

	return Model{
		eng:        eng,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		state:      eng.State(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	}

	switch msg.String() {
	case "up", "w":
		m.inputFrame.Set(core.ActionUp)
	case "down", "s":
		m.inputFrame.Set(core.ActionDown)
	case "left", "a":
		m.inputFrame.Set(core.ActionLeft)
	case "right", "d":
		m.inputFrame.Set(core.ActionRight)
	case "e", " ":
		m.inputFrame.Set(core.ActionPick)
	case "o":
		m.inputFrame.Set(core.ActionOpen)
	case "r":
		m.inputFrame.Set(core.ActionRestart)
	}

	return m, nil
}

// handleResize processes window resize events. The attempt itself
// survives a resize; only the screen placement changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.eng.Resize(msg.Width, msg.Height)

	return m, nil
}

// handleTick consumes the buffered input frame and advances the attempt.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) {
		m.attemptSaved = false
	}

	result := m.eng.Step(m.inputFrame)
	m.state = result.State

	// Save the attempt on solve (once)
	if m.state.Solved && !m.attemptSaved {
		if m.store != nil {
			//nolint:errcheck // Best-effort save, play continues regardless
			m.store.SaveAttempt(storage.AttemptEntry{
				QuestID:  m.eng.Quest().ID,
				Solved:   true,
				Steps:    m.state.Steps,
				Commands: m.eng.Commands().Count(),
				Blocked:  len(m.eng.Events().BlockedMoves),
			})
		}
		m.attemptSaved = true
	}

	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.eng.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".quest", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.eng.Quest().ID, timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, play continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.eng.Render(m.screen)

	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for a single quest.
func Run(eng *engine.Engine, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(eng, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
