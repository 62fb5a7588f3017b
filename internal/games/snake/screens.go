package snake

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/highscore"
)

// Menus are laid out around the middle of an 80x24 terminal.
const (
	centerX = 40
	centerY = 10
)

const noScoresText = "No high scores yet!"

func (g *Game) drawTitle(y int, title string, c core.Color) {
	g.console.DrawString(centerX-len(title)/2, y, title, c)
	g.console.DrawString(centerX-10, y+1, strings.Repeat("=", 20), c)
}

func (g *Game) drawMenu() {
	g.console.Clear()
	switch g.menu {
	case menuDifficulty:
		g.drawDifficultyMenu()
	case menuScores:
		g.drawHighScores()
	default:
		g.drawMainMenu()
	}
	g.console.Flush()
}

func (g *Game) drawMainMenu() {
	g.drawTitle(centerY-4, "SNAKE GAME", core.ColorBrightGreen)

	g.console.DrawString(centerX-6, centerY, "1. Start Game", core.ColorWhite)
	g.console.DrawString(centerX-6, centerY+1, "2. Difficulty", core.ColorWhite)
	g.console.DrawString(centerX-6, centerY+2, "3. High Scores", core.ColorWhite)
	g.console.DrawString(centerX-6, centerY+3, "4. Exit", core.ColorWhite)

	g.console.DrawString(centerX-8, centerY+5, "Difficulty: "+g.difficulty.Title(), core.ColorBrightCyan)
	g.console.DrawString(centerX-16, centerY+7, "Use number keys to select option", core.ColorBrightYellow)
}

func (g *Game) drawDifficultyMenu() {
	g.drawTitle(centerY-2, "SELECT DIFFICULTY", core.ColorBrightGreen)

	g.console.DrawString(centerX-6, centerY+2, "1. Easy (Slow)", core.ColorWhite)
	g.console.DrawString(centerX-6, centerY+3, "2. Normal (Medium)", core.ColorWhite)
	g.console.DrawString(centerX-6, centerY+4, "3. Hard (Fast)", core.ColorWhite)
	g.console.DrawString(centerX-6, centerY+5, "4. Back to Menu", core.ColorWhite)

	g.console.DrawString(centerX-8, centerY+7, "Current: "+g.difficulty.Title(), core.ColorBrightCyan)
}

// drawHighScores lists the top entries as "rank. name - score  date".
func (g *Game) drawHighScores() {
	const top = 5
	g.drawTitle(top-2, "HIGH SCORES", core.ColorBrightGreen)

	var records []highscore.Record
	if g.scores != nil {
		var err error
		records, err = g.scores.Load()
		if err != nil {
			g.logger.Warn("failed to load high scores", "err", err)
			records = nil
		}
	}

	show := g.cfg.HighScores.Limit()

	if len(records) == 0 {
		g.console.DrawString(centerX-len(noScoresText)/2, top+1, noScoresText, core.ColorWhite)
	}
	for i, r := range records[:core.Min(len(records), show)] {
		line := fmt.Sprintf("%2d. %-15s - %6d  %s", i+1, r.Name, r.Score, r.Date)
		g.console.DrawString(centerX-18, top+1+i, line, core.ColorWhite)
	}

	g.console.DrawString(centerX-11, top+show+3, "Press ENTER to go back", core.ColorBrightYellow)
}

// drawPauseOverlay draws over the frozen board without clearing it.
func (g *Game) drawPauseOverlay() {
	x := g.width/2 + 1
	y := g.height/2 + 1
	g.console.DrawString(x-3, y-1, "PAUSED", core.ColorBrightYellow)
	g.console.DrawString(x-10, y+1, "SPACE/P to resume", core.ColorWhite)
	g.console.DrawString(x-10, y+2, "ESC to quit", core.ColorWhite)
	g.console.Flush()
}

func (g *Game) drawGameOver() {
	g.console.Clear()

	g.drawTitle(centerY-4, "GAME OVER", core.ColorBrightRed)
	g.console.DrawString(centerX-8, centerY-1, fmt.Sprintf("Final Score: %d", g.score), core.ColorWhite)
	g.console.DrawString(centerX-8, centerY, fmt.Sprintf("Level: %d", g.level), core.ColorWhite)
	g.console.DrawString(centerX-8, centerY+1, fmt.Sprintf("High Score: %d", g.highScore), core.ColorBrightCyan)
	if g.newRecord {
		g.console.DrawString(centerX-8, centerY+2, "NEW HIGH SCORE! Saved as "+g.playerName, core.ColorBrightYellow)
	}

	g.console.DrawString(centerX-8, centerY+4, "Press ENTER to play again", core.ColorWhite)
	g.console.DrawString(centerX-8, centerY+5, "Press ESC to quit", core.ColorWhite)
	g.console.Flush()
}

func (g *Game) drawHighScoreEntry() {
	g.console.Clear()

	g.drawTitle(centerY-4, "NEW HIGH SCORE!", core.ColorBrightYellow)
	g.console.DrawString(centerX-8, centerY-1, fmt.Sprintf("Score: %d", g.score), core.ColorWhite)
	g.console.DrawString(centerX-8, centerY+1, "Enter your name:", core.ColorWhite)
	g.console.DrawString(centerX-8, centerY+5, "ENTER to save, ESC for "+g.defaultName(), core.ColorGray)
	g.drawNameField()
}

// drawNameField redraws the input line and parks the cursor after the text.
func (g *Game) drawNameField() {
	y := centerY + 3
	field := fmt.Sprintf("%-*s", highscore.MaxNameLength, string(g.nameInput))
	g.console.DrawString(centerX-8, y, field, core.ColorBrightWhite)
	g.console.ShowCursor(centerX-8+len(g.nameInput), y)
	g.console.Flush()
}
