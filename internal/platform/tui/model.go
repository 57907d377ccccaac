package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-mines/internal/core"
	"github.com/vovakirdan/tui-mines/internal/registry"
	"github.com/vovakirdan/tui-mines/internal/storage"
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// summarizer is implemented by games that can describe the finished round.
type summarizer interface {
	Summary() core.Summary
}

// Model is the Bubble Tea model for playing one game variant.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	config    core.RuntimeConfig
	keys      KeyMap
	help      help.Model
	gameState core.GameState
	sessionID string // Set for SSH sessions
	embedded  bool   // Running inside a SessionModel; don't quit the program on back

	quitting   bool
	backToMenu bool

	// Round bookkeeping. A win is recorded as soon as it happens; a loss is
	// recorded when the round is abandoned, since undo can still take it back.
	recorded bool
	lost     *core.Summary
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, max(1, cfg.ScreenH-1)),
		store:  store,
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   h,
	}
}

// WithSession tags recorded results with an SSH session ID and keeps the
// program running when the player goes back to the menu.
func (m Model) WithSession(id string) Model {
	m.sessionID = id
	m.embedded = true
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

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		m.gameState = m.game.State()
		return m, tickCmd(m.config.TickRate)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.finishRound()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		m.finishRound()
		m.backToMenu = true
		if m.embedded {
			return m, nil
		}
		return m, tea.Quit

	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.fitScreen()
		return m, nil

	case key.Matches(msg, m.keys.Restart):
		m.restart()
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionNone {
		return m, nil
	}

	in := core.NewInputFrame()
	in.Set(action)
	m.step(in)
	return m, nil
}

// handleMouse maps clicks to reveal (left) and flag (right).
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress {
		return m, nil
	}

	var secondary bool
	switch msg.Button {
	case tea.MouseButtonLeft:
	case tea.MouseButtonRight:
		secondary = true
	default:
		return m, nil
	}

	in := core.NewInputFrame()
	in.Click(core.Pointer{X: msg.X, Y: msg.Y, Secondary: secondary})
	m.step(in)
	return m, nil
}

// handleResize processes window resize events. The board is kept; the game
// re-checks whether it fits on the next render.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.fitScreen()
	return m, nil
}

// fitScreen sizes the game screen to leave room for the help view.
func (m *Model) fitScreen() {
	helpRows := lipgloss.Height(m.help.View(m.keys))
	m.screen.Resize(m.config.ScreenW, max(1, m.config.ScreenH-helpRows))
}

// step feeds one input frame to the game and records the outcome.
func (m *Model) step(in core.InputFrame) {
	// Render first so click coordinates match what is on screen.
	m.game.Render(m.screen)
	m.gameState = m.game.Step(in).State

	switch {
	case m.gameState.Won:
		m.lost = nil
		if !m.recorded {
			m.record(true, m.summary())
		}
	case m.gameState.GameOver:
		if m.lost == nil {
			sum := m.summary()
			m.lost = &sum
		}
	default:
		m.lost = nil
	}
}

// restart deals a new board with a fresh seed.
func (m *Model) restart() {
	m.finishRound()
	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.recorded = false
	m.lost = nil
}

// finishRound records a pending loss before the round is abandoned.
func (m *Model) finishRound() {
	if m.lost != nil && !m.recorded {
		m.record(false, *m.lost)
	}
	m.lost = nil
}

func (m *Model) summary() core.Summary {
	if s, ok := m.game.(summarizer); ok {
		return s.Summary()
	}
	return core.Summary{}
}

// record saves the round result, and the score when it was won.
func (m *Model) record(won bool, sum core.Summary) {
	m.recorded = true
	if m.store == nil {
		return
	}

	score := 0.0
	if won {
		score = m.gameState.Score
		//nolint:errcheck // Best-effort save, game continues regardless
		m.store.SaveScore(m.game.ID(), score)
	}

	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveResult(storage.Result{
		Variant:   m.game.ID(),
		Won:       won,
		Score:     score,
		Elapsed:   sum.Elapsed,
		Undos:     sum.Undos,
		FlagUses:  sum.FlagUses,
		SessionID: m.sessionID,
	})
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".tui-mines", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for one game.
// Returns true if the player asked to go back to the menu.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) (backToMenu bool, err error) {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks reveal and flag cells
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
