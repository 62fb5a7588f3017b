package snake

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Board glyphs and colors.
const (
	borderRune = '#'
	headRune   = 'O'
	bodyRune   = 'o'

	borderColor = core.ColorBrightWhite
	snakeColor  = core.ColorBrightGreen
)

// panelGap is the number of columns between the border and the side panel.
const panelGap = 2

// boardRect is the border box. The playfield is its interior, so board
// cells 1..width and 1..height map directly to screen coordinates.
func (g *Game) boardRect() core.Rect {
	return core.NewRect(0, 0, g.width+2, g.height+2)
}

func (g *Game) panelX() int {
	return g.boardRect().Right() + panelGap
}

// render draws one playing frame and presents it.
func (g *Game) render() {
	g.clearBoard()
	g.drawBorder()
	g.drawSnake()
	g.drawFood()
	g.drawPanel()
	g.console.Flush()
}

// clearBoard blanks the playfield interior.
func (g *Game) clearBoard() {
	if g.width <= 0 {
		return
	}
	blank := strings.Repeat(" ", g.width)
	for y := 1; y <= g.height; y++ {
		g.console.DrawString(1, y, blank, core.ColorDefault)
	}
}

func (g *Game) drawBorder() {
	r := g.boardRect()
	g.console.DrawBox(r.X, r.Y, r.W, r.H, borderRune, borderColor)
}

func (g *Game) drawSnake() {
	for i, seg := range g.snake.body {
		ch := bodyRune
		if i == 0 {
			ch = headRune
		}
		if !g.boardRect().Contains(seg.X, seg.Y) {
			continue
		}
		g.console.DrawChar(seg.X, seg.Y, ch, snakeColor)
	}
}

func (g *Game) drawFood() {
	if !g.food.Active() {
		return
	}
	p := g.food.Position()
	g.console.DrawChar(p.X, p.Y, g.food.Symbol(), g.food.Color())
}

// drawPanel draws the score, level and controls legend beside the board.
func (g *Game) drawPanel() {
	x := g.panelX()
	g.console.DrawString(x, 2, fmt.Sprintf("Score: %-8d", g.score), core.ColorBrightYellow)
	g.console.DrawString(x, 4, fmt.Sprintf("Level: %-8d", g.level), core.ColorBrightCyan)
	g.console.DrawString(x, 5, fmt.Sprintf("High Score: %-8d", g.highScore), core.ColorBrightMagenta)
	g.console.DrawString(x, 7, fmt.Sprintf("Difficulty: %-8s", g.difficulty.Title()), core.ColorWhite)

	g.console.DrawString(x, 9, "Controls:", core.ColorGray)
	g.console.DrawString(x, 10, "Arrows/WASD  move", core.ColorGray)
	g.console.DrawString(x, 11, "Space/P      pause", core.ColorGray)
	g.console.DrawString(x, 12, "Esc          pause", core.ColorGray)
}
