package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
)

// Options tunes the play loop.
type Options struct {
	HoldTicks int // Ticks a key stays held after its last press
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	held      *HeldKeys
	help      help.Model
	gameState core.GameState
	width     int
	height    int
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = DefaultTickRate
	}

	h := help.New()
	h.Width = cfg.ScreenW

	m := Model{
		game:      game,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		held:      NewHeldKeys(opts.HoldTicks),
		help:      h,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
	}
	m.config.ScreenH = m.playHeight()
	m.screen = core.NewScreen(m.config.ScreenW, m.config.ScreenH)
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg.Width, msg.Height), nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.IsHelp(msg) {
		m.help.ShowAll = !m.help.ShowAll
		return m.handleResize(m.width, m.height), nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	m.held.Press(action)
	return m, nil
}

// handleResize lays the screen out for a terminal of w×h cells.
func (m Model) handleResize(w, h int) Model {
	m.width = w
	m.height = h
	m.help.Width = w
	m.config.ScreenW = w
	m.config.ScreenH = m.playHeight()
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(m.config.ScreenW, m.config.ScreenH)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
	return m
}

// helpHeight is the number of rows the help footer takes.
func (m Model) helpHeight() int {
	if !m.help.ShowAll {
		return 1
	}
	rows := 0
	for _, col := range m.keyMapper.Keys().FullHelp() {
		rows = max(rows, len(col))
	}
	return rows
}

func (m Model) playHeight() int {
	return max(m.height-m.helpHeight(), 1)
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.held.Frame())
	m.gameState = result.State
	m.held.Advance()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// State returns the last state reported by the game.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keyMapper.Keys())))
	return b.String()
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
