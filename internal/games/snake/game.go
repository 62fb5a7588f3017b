// Package snake implements the snake game: the body and food model, scoring
// and leveling, and the menu-driven state machine that sequences a session.
// It talks to the terminal only through core.Console.
package snake

import (
	"errors"
	"io"
	"math/rand"
	"time"
	"unicode"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/highscore"
)

// State is the phase the game is in.
type State int

const (
	StateMenu State = iota
	StatePlaying
	StatePaused
	StateGameOver
	StateHighScoreEntry
	StateExit
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	case StateHighScoreEntry:
		return "high_score_entry"
	case StateExit:
		return "exit"
	default:
		return "unknown"
	}
}

// menuScreen selects which page of the menu is shown while in StateMenu.
type menuScreen int

const (
	menuMain menuScreen = iota
	menuDifficulty
	menuScores
)

// Options configures a new Game.
type Options struct {
	Config  config.Config
	Console core.Console
	Scores  highscore.Store // nil disables persistence
	Logger  *log.Logger     // nil discards logs
	Seed    int64           // 0 seeds from the clock
	Now     func() time.Time
}

// Game owns the snake, the food and every piece of session state. It is
// driven from a single goroutine, either through Run or one Iterate call per
// PollInterval.
type Game struct {
	cfg     config.Config
	console core.Console
	scores  highscore.Store
	logger  *log.Logger
	now     func() time.Time

	state State
	menu  menuScreen
	drawn bool // Current non-playing screen has been drawn

	snake  *Snake
	food   *Food
	width  int
	height int

	difficulty config.Difficulty
	score      int
	highScore  int
	level      int

	tick         uint64
	frameDelay   int
	frameCounter int
	frameReady   bool

	playerName    string
	nameInput     []rune
	scoreRecorded bool // Session score already offered to the store
	newRecord     bool
}

// New creates a game in the menu state.
func New(opts Options) (*Game, error) {
	if opts.Console == nil {
		return nil, errors.New("snake: console is required")
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	cfg := opts.Config
	rng := rand.New(rand.NewSource(seed))
	startX, startY := cfg.StartPosition()

	g := &Game{
		cfg:     cfg,
		console: opts.Console,
		scores:  opts.Scores,
		logger:  logger,
		now:     now,
		state:   StateMenu,
		snake:   NewSnake(startX, startY),
		food:    NewFood(rng, cfg.FoodSymbol(), core.ColorBrightRed, cfg.Food.Points),
		width:   cfg.Board.Width,
		height:  cfg.Board.Height,
		level:   1,
	}
	g.food.SetMaxAttempts(cfg.Food.MaxAttempts)

	d, err := config.ParseDifficulty(cfg.Difficulty.Default)
	if err != nil {
		d = config.DifficultyNormal
	}
	g.SetDifficulty(d)
	g.highScore = highscore.Best(g.scores)

	return g, nil
}

// Run drives the game loop until the game reaches StateExit.
func (g *Game) Run() {
	for !g.Done() {
		g.Iterate()
		if g.Done() {
			break
		}
		g.console.Sleep(g.PollInterval())
	}
}

// Iterate performs one loop iteration of the current state: at most one key
// is consumed, and while playing the frame counter advances once.
func (g *Game) Iterate() {
	switch g.state {
	case StateMenu:
		g.iterateMenu()
	case StatePlaying:
		g.iteratePlaying()
	case StatePaused:
		g.iteratePaused()
	case StateGameOver:
		g.iterateGameOver()
	case StateHighScoreEntry:
		g.iterateHighScoreEntry()
	case StateExit:
	}
}

// Done reports whether the game has exited.
func (g *Game) Done() bool {
	return g.state == StateExit
}

// PollInterval is the pause between iterations: the tick interval while
// playing and the idle poll interval in every other state.
func (g *Game) PollInterval() time.Duration {
	if g.state == StatePlaying {
		return g.cfg.Timing.Tick()
	}
	return g.cfg.Timing.IdlePoll()
}

// readKey returns the pending key, if any. Interrupt moves to StateExit from
// anywhere and is not passed on.
func (g *Game) readKey() (core.Key, bool) {
	if !g.console.KeyPressed() {
		return core.Key{}, false
	}
	key := g.console.ReadKey()
	if key.Code == core.KeyNone {
		return key, false
	}
	if key.Code == core.KeyInterrupt {
		g.SetState(StateExit)
		return key, false
	}
	return key, true
}

func (g *Game) iterateMenu() {
	if !g.drawn {
		g.drawMenu()
		g.drawn = true
	}

	key, ok := g.readKey()
	if !ok {
		return
	}

	switch g.menu {
	case menuMain:
		switch {
		case key.Is('1'):
			g.startGame()
		case key.Is('2'):
			g.showMenu(menuDifficulty)
		case key.Is('3'):
			g.showMenu(menuScores)
		case key.Is('4'), key.Code == core.KeyEscape:
			g.SetState(StateExit)
		}
	case menuDifficulty:
		switch {
		case key.Is('1'):
			g.SetDifficulty(config.DifficultyEasy)
			g.showMenu(menuMain)
		case key.Is('2'):
			g.SetDifficulty(config.DifficultyNormal)
			g.showMenu(menuMain)
		case key.Is('3'):
			g.SetDifficulty(config.DifficultyHard)
			g.showMenu(menuMain)
		case key.Is('4'), key.Code == core.KeyEscape:
			g.showMenu(menuMain)
		}
	case menuScores:
		if key.Code == core.KeyEnter || key.Code == core.KeyEscape {
			g.showMenu(menuMain)
		}
	}
}

func (g *Game) showMenu(m menuScreen) {
	g.menu = m
	g.drawn = false
}

// startGame begins a fresh session from the menu.
func (g *Game) startGame() {
	g.resetGame()
	g.SetDifficulty(g.difficulty)
	g.food.Generate(g.width, g.height, g.snake)
	g.SetState(StatePlaying)
	g.logger.Info("game started", "difficulty", g.difficulty, "frame_delay", g.frameDelay)
	g.render()
}

// resetGame reinitializes score, level, snake and food. It is safe to call
// at any time.
func (g *Game) resetGame() {
	g.score = 0
	g.level = 1
	g.tick = 0
	g.frameCounter = 0
	g.frameReady = false
	g.scoreRecorded = false
	g.newRecord = false
	x, y := g.cfg.StartPosition()
	g.snake.Reset(x, y)
	g.food.Reset()
	g.console.Clear()
}

func (g *Game) iteratePlaying() {
	g.frameCounter++
	if g.frameCounter >= g.frameDelay {
		g.frameCounter = 0
		g.frameReady = true
	}

	g.handlePlayingInput()

	// Input may have paused or quit; the ready tick waits for the resume.
	if g.frameReady && g.state == StatePlaying {
		g.update()
		g.render()
	}
}

func (g *Game) handlePlayingInput() {
	key, ok := g.readKey()
	if !ok {
		return
	}

	switch key.Code {
	case core.KeyUp:
		g.snake.SetDirection(core.DirUp)
	case core.KeyDown:
		g.snake.SetDirection(core.DirDown)
	case core.KeyLeft:
		g.snake.SetDirection(core.DirLeft)
	case core.KeyRight:
		g.snake.SetDirection(core.DirRight)
	case core.KeySpace, core.KeyEscape:
		g.Pause()
	case core.KeyRune:
		switch unicode.ToLower(key.Rune) {
		case 'w':
			g.snake.SetDirection(core.DirUp)
		case 's':
			g.snake.SetDirection(core.DirDown)
		case 'a':
			g.snake.SetDirection(core.DirLeft)
		case 'd':
			g.snake.SetDirection(core.DirRight)
		case 'p':
			g.Pause()
		}
	}
}

// update advances the game by one tick.
func (g *Game) update() {
	if !g.frameReady {
		return
	}
	g.frameReady = false
	g.tick++

	g.snake.Update()
	g.processCollisions()
}

// processCollisions runs the per-tick checks in order: food, wall, self.
func (g *Game) processCollisions() {
	head := g.snake.Head()
	if g.food.CollidesAt(head.X, head.Y) {
		g.increaseScore(g.food.Points())
		g.snake.Grow()
		g.food.Generate(g.width, g.height, g.snake)
		if !g.food.Active() {
			g.logger.Debug("no free cell for food", "snake_len", g.snake.Len())
		}
		g.beep(g.cfg.Sound.Eat)
	}

	if g.snake.CheckWallCollision(g.width, g.height) {
		g.crash("wall")
		return
	}
	if g.snake.CheckSelfCollision() {
		g.crash("self")
	}
}

func (g *Game) crash(reason string) {
	g.SetState(StateGameOver)
	g.beep(g.cfg.Sound.Crash)
	g.logger.Info("game over",
		"reason", reason,
		"score", g.score,
		"level", g.level,
		"length", g.snake.Len(),
		"ticks", g.tick,
	)
	g.logger.Debug("final state", "snapshot", g.DebugState())
}

func (g *Game) beep(c config.Cue) {
	g.console.Beep(c.Frequency, c.Duration())
}

// increaseScore adds points, tracks the running high score and raises the
// level once per crossed multiple of the level threshold.
func (g *Game) increaseScore(points int) {
	g.score += points
	if g.score > g.highScore {
		g.highScore = g.score
	}

	threshold := g.cfg.Scoring.LevelThreshold
	if threshold < 1 {
		return
	}
	leveled := false
	for g.score >= g.level*threshold {
		g.level++
		leveled = true
	}
	if leveled {
		g.SetDifficulty(g.difficulty)
		g.logger.Debug("level up", "level", g.level, "frame_delay", g.frameDelay)
	}
}

func (g *Game) iteratePaused() {
	if !g.drawn {
		g.drawPauseOverlay()
		g.drawn = true
	}

	key, ok := g.readKey()
	if !ok {
		return
	}

	switch {
	case key.Code == core.KeySpace, key.Is('p'), key.Is('P'):
		g.Resume()
	case key.Code == core.KeyEscape:
		g.SetState(StateGameOver)
	}
}

func (g *Game) iterateGameOver() {
	if !g.drawn {
		if !g.scoreRecorded && g.score > highscore.Best(g.scores) {
			g.SetState(StateHighScoreEntry)
			return
		}
		g.drawGameOver()
		g.drawn = true
	}

	key, ok := g.readKey()
	if !ok {
		return
	}

	switch key.Code {
	case core.KeyEnter:
		g.SetState(StateMenu)
	case core.KeyEscape:
		g.SetState(StateExit)
	}
}

func (g *Game) iterateHighScoreEntry() {
	if !g.drawn {
		g.drawHighScoreEntry()
		g.drawn = true
	}

	key, ok := g.readKey()
	if !ok {
		return
	}

	switch key.Code {
	case core.KeyEnter:
		g.recordScore(string(g.nameInput))
	case core.KeyEscape:
		g.recordScore("")
	case core.KeyBackspace:
		if len(g.nameInput) > 0 {
			g.nameInput = g.nameInput[:len(g.nameInput)-1]
			g.drawNameField()
		}
	case core.KeySpace:
		g.appendNameRune(' ')
	case core.KeyRune:
		g.appendNameRune(key.Rune)
	}
}

func (g *Game) appendNameRune(r rune) {
	if len(g.nameInput) >= highscore.MaxNameLength || !highscore.ValidNameRune(r) {
		return
	}
	g.nameInput = append(g.nameInput, r)
	g.drawNameField()
}

// recordScore saves the session score under name, falling back to the
// default name, and returns to the game over screen. A failed save is logged
// and never retried for the same session.
func (g *Game) recordScore(name string) {
	name = highscore.SanitizeName(name)
	if name == "" {
		name = g.defaultName()
	}
	g.playerName = name
	g.scoreRecorded = true

	if g.scores != nil {
		rec := highscore.Record{
			Name:       name,
			Score:      g.score,
			Date:       highscore.Today(g.now()),
			Difficulty: string(g.difficulty),
		}
		if err := g.scores.Append(rec); err != nil {
			g.logger.Warn("failed to save high score", "err", err, "score", g.score)
		} else {
			g.newRecord = true
			g.logger.Info("high score saved", "name", name, "score", g.score)
		}
	}

	g.console.HideCursor()
	g.SetState(StateGameOver)
}

func (g *Game) defaultName() string {
	if name := highscore.SanitizeName(g.cfg.HighScores.DefaultName); name != "" {
		return name
	}
	return "Player"
}

// SetState switches to s. The screen for the new state is drawn on the next
// iteration.
func (g *Game) SetState(s State) {
	if g.state != s {
		g.logger.Debug("state change", "from", g.state, "to", s)
	}
	g.state = s
	g.drawn = false

	switch s {
	case StateMenu:
		g.menu = menuMain
	case StateHighScoreEntry:
		g.nameInput = []rune(g.playerName)
	}
}

// SetDifficulty selects a speed tier and re-derives the frame delay from it
// and the current level.
func (g *Game) SetDifficulty(d config.Difficulty) {
	g.difficulty = d
	base := g.cfg.Difficulty.FrameDelayFor(d)
	delay := base - g.cfg.Difficulty.LevelSpeedup*(g.level-1)
	g.frameDelay = core.Clamp(delay, 1, max(1, base))
}

// SetPlayerName sets the name offered in the high score entry field.
func (g *Game) SetPlayerName(name string) {
	g.playerName = highscore.SanitizeName(name)
}

// Pause moves a running game to StatePaused.
func (g *Game) Pause() {
	if g.state == StatePlaying {
		g.SetState(StatePaused)
	}
}

// Resume continues a paused game with a full redraw.
func (g *Game) Resume() {
	if g.state != StatePaused {
		return
	}
	g.SetState(StatePlaying)
	g.console.Clear()
	g.render()
}

// IsRunning reports whether the game has not exited yet.
func (g *Game) IsRunning() bool {
	return g.state != StateExit
}

// State returns the current phase.
func (g *Game) State() State {
	return g.state
}

// Score returns the session score.
func (g *Game) Score() int {
	return g.score
}

// HighScore returns the best score seen, including the running session.
func (g *Game) HighScore() int {
	return g.highScore
}

// Level returns the current level, starting at 1.
func (g *Game) Level() int {
	return g.level
}

// Difficulty returns the selected speed tier.
func (g *Game) Difficulty() config.Difficulty {
	return g.difficulty
}

// FrameDelay returns the number of loop iterations between ticks.
func (g *Game) FrameDelay() int {
	return g.frameDelay
}

// PlayerName returns the last name used for a high score.
func (g *Game) PlayerName() string {
	return g.playerName
}

// Snake returns the player's snake.
func (g *Game) Snake() *Snake {
	return g.snake
}

// Food returns the current food item.
func (g *Game) Food() *Food {
	return g.food
}

var _ core.Runner = (*Game)(nil)
