// Package minesweeper adapts the mines rules engine to the arcade platform:
// a cursor over the board, keyboard and mouse actions, game-over policy and
// rendering.
package minesweeper

import (
	"errors"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/vovakirdan/tui-mines/internal/config"
	"github.com/vovakirdan/tui-mines/internal/core"
	"github.com/vovakirdan/tui-mines/internal/mines"
	"github.com/vovakirdan/tui-mines/internal/registry"
)

// BaseID is the ID of the variant that plays the configured default preset.
const BaseID = "mines"

// Package-level variables for config
var (
	configPath       string
	difficultyPreset string
)

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty used by the default variant.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// Variants lists the preset names registered as their own games.
var Variants = []string{"beginner", "intermediate", "expert"}

func init() {
	registry.Register(BaseID, func() registry.Game {
		return New("")
	})
	for _, preset := range Variants {
		registry.Register(BaseID+"_"+preset, func() registry.Game {
			return New(preset)
		})
	}
}

// Game is one minesweeper session: the current board plus cursor and display state.
type Game struct {
	preset string // "" plays the config default
	clock  mines.Clock

	cfg       config.MinesConfig
	active    config.BoardPreset
	board     *mines.Board
	rng       *rand.Rand
	cursorX   int
	cursorY   int
	boardRect core.Rect // where the last Render put the cells, for mouse clicks

	screenW  int
	screenH  int
	tooSmall bool
	message  string // feedback about the last rejected action
	actions  int
}

// New creates a game for the named preset. An empty name uses the
// configured default (possibly chosen through a difficulty preset).
func New(preset string) *Game {
	return &Game{
		preset: preset,
		clock:  time.Now,
	}
}

// SetClock replaces the time source. Takes effect on the next Reset.
func (g *Game) SetClock(clock mines.Clock) {
	g.clock = clock
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.preset == "" {
		return BaseID
	}
	return BaseID + "_" + g.preset
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.preset == "" {
		return "Minesweeper"
	}
	return "Minesweeper (" + strings.ToUpper(g.preset[:1]) + g.preset[1:] + ")"
}

// Reset loads the configuration and deals a new board.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.rng = rand.New(rand.NewPCG(uint64(cfg.Seed), uint64(cfg.Seed)>>1|1))
	g.message = ""
	g.actions = 0

	mcfg, err := config.LoadMines(configPath)
	if err != nil {
		mcfg = config.DefaultMinesConfig()
		g.message = err.Error()
	}
	if g.preset == "" {
		if err := config.ApplyDifficulty(&mcfg, config.DifficultyPreset(difficultyPreset)); err != nil {
			g.message = err.Error()
		}
	}
	g.cfg = mcfg
	g.active = g.resolvePreset()

	board, err := mines.Generate(g.active.Rows, g.active.Columns, g.active.Mines,
		mines.WithRand(g.rng), mines.WithClock(g.clock))
	if err != nil {
		// Presets are validated on load, so only a hand-built config gets here.
		g.active = config.DefaultMinesConfig().Default()
		board, _ = mines.Generate(g.active.Rows, g.active.Columns, g.active.Mines,
			mines.WithRand(g.rng), mines.WithClock(g.clock))
		g.message = err.Error()
	}
	g.board = board

	g.cursorX = board.Columns() / 2
	g.cursorY = board.Rows() / 2
	g.checkScreenSize()
	g.layout()
}

func (g *Game) resolvePreset() config.BoardPreset {
	if g.preset != "" {
		if p, ok := g.cfg.Preset(g.preset); ok {
			return p
		}
		if p, ok := config.DefaultMinesConfig().Preset(g.preset); ok {
			return p
		}
	}
	return g.cfg.Default()
}

// checkScreenSize checks if the screen can hold the board and the HUD.
func (g *Game) checkScreenSize() {
	w, h := g.boardSize()
	g.tooSmall = g.screenW < w+2 || g.screenH < h+2+hudHeight+footerHeight
}

// Board returns the current board.
func (g *Game) Board() *mines.Board {
	return g.board
}

// Cursor returns the cursor position in board coordinates.
func (g *Game) Cursor() (x, y int) {
	return g.cursorX, g.cursorY
}

// Over reports whether the game has been won or lost.
func (g *Game) Over() bool {
	return g.board.Outcome() != mines.OutcomePlaying
}

// Step applies the input frame. Cell actions are ignored once the game is
// over; undo stays available so a detonation can be taken back at a cost.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.tooSmall || in.Empty() {
		return core.StepResult{State: g.State()}
	}

	g.moveCursor(in)

	if in.Has(core.ActionUndo) {
		if g.board.CanUndo() {
			g.board = g.board.Undo()
			g.message = ""
		} else {
			g.message = "Nothing to undo"
		}
	}

	if !g.Over() {
		index := g.board.Index(g.cursorX, g.cursorY)
		switch {
		case in.Has(core.ActionReveal):
			g.apply(index, mines.ActionReveal)
		case in.Has(core.ActionFlag):
			g.apply(index, mines.ActionFlag)
		}

		for _, click := range in.Clicks {
			if g.Over() {
				break
			}
			g.click(click)
		}
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) moveCursor(in core.InputFrame) {
	switch {
	case in.Has(core.ActionUp):
		g.cursorY--
	case in.Has(core.ActionDown):
		g.cursorY++
	}
	switch {
	case in.Has(core.ActionLeft):
		g.cursorX--
	case in.Has(core.ActionRight):
		g.cursorX++
	}
	g.cursorX = core.Clamp(g.cursorX, 0, g.board.Columns()-1)
	g.cursorY = core.Clamp(g.cursorY, 0, g.board.Rows()-1)
}

// click maps a mouse click on the screen to a cell and acts on it.
func (g *Game) click(p core.Pointer) {
	if !g.boardRect.Contains(p.X, p.Y) {
		return
	}
	cw := g.cellWidth()
	g.cursorX = (p.X - g.boardRect.X) / cw
	g.cursorY = p.Y - g.boardRect.Y

	action := mines.ActionReveal
	if p.Secondary {
		action = mines.ActionFlag
	}
	g.apply(g.board.Index(g.cursorX, g.cursorY), action)
}

func (g *Game) apply(index int, action mines.Action) {
	next, err := g.board.SendAction(index, action)
	if err != nil {
		if errors.Is(err, mines.ErrIllegalState) {
			g.message = "Cannot flag a revealed cell"
		} else {
			g.message = err.Error()
		}
		return
	}
	if next != g.board {
		g.actions++
	}
	g.board = next
	g.message = ""
}

// Summary reports the round's elapsed time and penalties.
func (g *Game) Summary() core.Summary {
	score := g.board.ScoreState()
	return core.Summary{
		Elapsed:  g.board.Elapsed(g.clock()),
		Undos:    score.Undos,
		FlagUses: score.FlagUses(),
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	outcome := g.board.Outcome()
	return core.GameState{
		Score:    g.board.CurrentScore(),
		GameOver: outcome != mines.OutcomePlaying,
		Won:      outcome == mines.OutcomeWon,
		Paused:   g.tooSmall,
	}
}
