package minesweeper

import (
	"fmt"

	"github.com/vovakirdan/tui-mines/internal/core"
	"github.com/vovakirdan/tui-mines/internal/mines"
)

const (
	hudHeight    = 2 // Title and stats lines
	footerHeight = 2 // Status line and key hints
)

var numberColors = [...]core.Color{
	1: core.ColorBlue,
	2: core.ColorGreen,
	3: core.ColorRed,
	4: core.ColorMagenta,
	5: core.ColorYellow,
	6: core.ColorCyan,
	7: core.ColorWhite,
	8: core.ColorGray,
}

// cellWidth returns the number of columns each cell takes on screen.
func (g *Game) cellWidth() int {
	w := g.cfg.Display.CellWidth
	if w <= 0 {
		return 2
	}
	return core.Clamp(w, 1, 3)
}

// boardSize returns the size of the cell area, without the frame.
func (g *Game) boardSize() (w, h int) {
	if g.board == nil {
		return 0, 0
	}
	return g.board.Columns() * g.cellWidth(), g.board.Rows()
}

// layout positions the framed board below the HUD and records the cell area.
func (g *Game) layout() core.Rect {
	w, h := g.boardSize()
	frame := core.NewRect((g.screenW-w-2)/2, hudHeight, w+2, h+2)
	g.boardRect = frame.Inset(1)
	return frame
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	if dst.Width() != g.screenW || dst.Height() != g.screenH {
		g.screenW, g.screenH = dst.Width(), dst.Height()
		g.checkScreenSize()
	}

	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	frame := g.layout()
	g.renderHUD(dst, frame)
	dst.DrawBox(frame, core.ColorGray)
	g.renderCells(dst)
	g.renderFooter(dst, frame.Bottom())
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	w, h := g.boardSize()
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorDefault)
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", w+2, h+2+hudHeight+footerHeight), core.ColorGray)
}

// renderHUD draws the title and the score line.
func (g *Game) renderHUD(dst *core.Screen, frame core.Rect) {
	dst.DrawTextCentered(0, g.title(), core.ColorDefault)

	now := g.clock()
	stats := fmt.Sprintf("Score %.1f  Mines %d", g.board.ScoreAt(now), g.board.RemainingMines())
	if g.cfg.Display.ShowTimer {
		stats += fmt.Sprintf("  Time %ds", int(g.board.Elapsed(now).Seconds()))
	}
	if g.board.CanUndo() {
		stats += "  [U]ndo"
	}
	x := max(frame.X, (g.screenW-len(stats))/2)
	dst.DrawText(x, 1, stats)
}

func (g *Game) title() string {
	if g.active.Title != "" {
		return "Minesweeper - " + g.active.Title
	}
	return g.Title()
}

// renderCells draws every cell inside boardRect, highlighting the cursor.
func (g *Game) renderCells(dst *core.Screen) {
	cw := g.cellWidth()
	lost := g.board.IsDefeated()
	over := g.Over()

	for i, cell := range g.board.All() {
		x, y := g.board.Coordinates(i)
		r, c := g.glyph(cell, lost)
		if !over && x == g.cursorX && y == g.cursorY {
			c = core.ColorInverse
		}
		px := g.boardRect.X + x*cw
		py := g.boardRect.Y + y
		for k := range cw {
			if k == cw/2 {
				dst.SetColor(px+k, py, r, c)
			} else {
				dst.SetColor(px+k, py, ' ', c)
			}
		}
	}
}

// glyph picks the rune and color for one cell.
func (g *Game) glyph(cell mines.Cell, lost bool) (rune, core.Color) {
	switch cell.Status() {
	case mines.StatusDetonated:
		return '*', core.ColorBrightRed
	case mines.StatusFlagged:
		if lost && g.cfg.Display.RevealMinesOnLoss && !cell.Mined() {
			return 'x', core.ColorYellow
		}
		return 'F', core.ColorRed
	case mines.StatusRevealed:
		n := cell.MinedNeighbors()
		if n == 0 {
			return ' ', core.ColorDefault
		}
		return rune('0' + n), numberColors[n]
	}

	if lost && g.cfg.Display.RevealMinesOnLoss && cell.Mined() {
		return '*', core.ColorGray
	}
	return '·', core.ColorGray
}

// renderFooter draws the last message, the outcome and the key hints.
func (g *Game) renderFooter(dst *core.Screen, y int) {
	switch g.board.Outcome() {
	case mines.OutcomeWon:
		dst.DrawTextCentered(y, fmt.Sprintf("Victory - %.1f pts - R to play again", g.board.CurrentScore()), core.ColorBrightGreen)
	case mines.OutcomeLost:
		hint := "Defeat - R to restart"
		if g.board.CanUndo() {
			hint = "Defeat - U to undo, R to restart"
		}
		dst.DrawTextCentered(y, hint, core.ColorBrightRed)
	default:
		if g.message != "" {
			dst.DrawTextCentered(y, g.message, core.ColorYellow)
		}
	}
}
