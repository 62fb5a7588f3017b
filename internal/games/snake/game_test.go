package snake

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/highscore"
)

func TestNewRequiresConsole(t *testing.T) {
	if _, err := New(Options{Config: config.Default()}); err == nil {
		t.Error("expected an error without a console")
	}
}

func TestNewGameStartsInMenu(t *testing.T) {
	g, console := newTestGame(t, nil, nil)

	if g.State() != StateMenu {
		t.Fatalf("expected menu, got %s", g.State())
	}
	if g.Level() != 1 || g.Score() != 0 {
		t.Errorf("expected level 1 score 0, got %d/%d", g.Level(), g.Score())
	}
	if g.Difficulty() != config.DifficultyNormal || g.FrameDelay() != 6 {
		t.Errorf("expected normal difficulty with delay 6, got %s/%d", g.Difficulty(), g.FrameDelay())
	}

	g.Iterate()
	if !console.shows("SNAKE GAME") || !console.shows("1. Start Game") {
		t.Errorf("menu not drawn:\n%s", console.screen.String())
	}
	if !g.IsRunning() {
		t.Error("game should be running")
	}
}

func TestMenuStartResetsGame(t *testing.T) {
	g, console := newTestGame(t, nil, nil)

	// Leave state behind from an earlier session
	g.score = 40
	g.level = 3
	g.snake.Grow()
	g.snake.Update()

	g.Iterate()
	console.press(core.RuneKey('1'))
	g.Iterate()

	if g.State() != StatePlaying {
		t.Fatalf("expected playing, got %s", g.State())
	}
	if g.Score() != 0 || g.Level() != 1 {
		t.Errorf("expected score 0 level 1, got %d/%d", g.Score(), g.Level())
	}
	assertBody(t, g.Snake(), []core.Position{{X: 20, Y: 10}, {X: 19, Y: 10}, {X: 18, Y: 10}})

	if !g.Food().Active() {
		t.Fatal("food should be placed when the game starts")
	}
	p := g.Food().Position()
	if g.Snake().CheckCollision(p.X, p.Y) {
		t.Errorf("food placed on the snake at %v", p)
	}
	if !console.shows("Score: 0") {
		t.Errorf("playing frame not drawn:\n%s", console.screen.String())
	}
	if console.screen.Get(0, 0) != '#' || console.screen.Get(41, 21) != '#' {
		t.Error("border should span 42x22 from the origin")
	}
	if console.screen.Get(20, 10) != 'O' || console.screen.Get(19, 10) != 'o' {
		t.Error("snake head and body should be drawn")
	}
}

func TestNarrowestBoardStartsInside(t *testing.T) {
	g, console := newTestGame(t, nil, func(c *config.Config) {
		c.Board = config.BoardConfig{Width: InitialLength, Height: 1}
	})

	g.Iterate()
	console.press(core.RuneKey('1'))
	g.Iterate()

	if g.State() != StatePlaying {
		t.Fatalf("expected playing, got %s", g.State())
	}
	assertBody(t, g.Snake(), []core.Position{{X: 3, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 1}})
	if g.Snake().CheckWallCollision(InitialLength, 1) {
		t.Error("fresh snake should not touch the wall")
	}
	if g.Food().Active() {
		t.Error("a full board leaves no cell for food")
	}
}

func TestDifficultyMenu(t *testing.T) {
	tests := []struct {
		key      rune
		expected config.Difficulty
		delay    int
	}{
		{'1', config.DifficultyEasy, 8},
		{'2', config.DifficultyNormal, 6},
		{'3', config.DifficultyHard, 4},
		{'4', config.DifficultyNormal, 6},
	}

	for _, tc := range tests {
		g, console := newTestGame(t, nil, nil)
		g.Iterate()
		console.press(core.RuneKey('2'))
		g.Iterate()
		g.Iterate()
		if !console.shows("SELECT DIFFICULTY") {
			t.Fatalf("difficulty menu not drawn:\n%s", console.screen.String())
		}

		console.press(core.RuneKey(tc.key))
		g.Iterate()
		g.Iterate()

		if g.State() != StateMenu {
			t.Errorf("key %q: expected menu, got %s", tc.key, g.State())
		}
		if g.Difficulty() != tc.expected || g.FrameDelay() != tc.delay {
			t.Errorf("key %q: got %s/%d, expected %s/%d",
				tc.key, g.Difficulty(), g.FrameDelay(), tc.expected, tc.delay)
		}
		if !console.shows("1. Start Game") {
			t.Errorf("key %q: main menu not redrawn", tc.key)
		}
	}
}

func TestHardTicksFasterThanEasy(t *testing.T) {
	g, _ := newTestGame(t, nil, nil)

	g.SetDifficulty(config.DifficultyHard)
	hard := g.FrameDelay()
	g.SetDifficulty(config.DifficultyEasy)
	easy := g.FrameDelay()

	if hard >= easy {
		t.Errorf("hard delay %d should be smaller than easy delay %d", hard, easy)
	}
}

func TestTickFollowsFrameDelay(t *testing.T) {
	g, console := newTestGame(t, nil, nil)
	startPlaying(t, g, console)

	for i := 1; i < g.FrameDelay(); i++ {
		g.Iterate()
		if g.Snake().Head() != core.Pos(20, 10) {
			t.Fatalf("snake moved after %d iterations, delay is %d", i, g.FrameDelay())
		}
	}
	g.Iterate()
	if g.Snake().Head() != core.Pos(21, 10) {
		t.Errorf("expected head at (21, 10) after %d iterations, got %v", g.FrameDelay(), g.Snake().Head())
	}
	if g.Snapshot().Tick != 1 {
		t.Errorf("expected one tick, got %d", g.Snapshot().Tick)
	}
}

func TestLevelUpEveryThreshold(t *testing.T) {
	g, _ := newTestGame(t, nil, nil)

	for i := range 4 {
		g.increaseScore(10)
		if g.Level() != 1 {
			t.Fatalf("eat %d: expected level 1 at score %d, got %d", i+1, g.Score(), g.Level())
		}
	}
	g.increaseScore(10)
	if g.Score() != 50 || g.Level() != 2 {
		t.Errorf("expected score 50 level 2, got %d/%d", g.Score(), g.Level())
	}
	if g.HighScore() != 50 {
		t.Errorf("running high score should follow the score, got %d", g.HighScore())
	}

	// Crossing two thresholds at once raises the level twice
	g.increaseScore(60)
	if g.Level() != 3 {
		t.Errorf("expected level 3 at score 110, got %d", g.Level())
	}
}

func TestLevelSpeedup(t *testing.T) {
	g, _ := newTestGame(t, nil, func(c *config.Config) {
		c.Difficulty.LevelSpeedup = 2
	})

	expected := []int{6, 4, 2, 1, 1}
	for i, want := range expected {
		if g.Level() != i+1 {
			t.Fatalf("expected level %d, got %d", i+1, g.Level())
		}
		if g.FrameDelay() != want {
			t.Errorf("level %d: frame delay = %d, expected %d", g.Level(), g.FrameDelay(), want)
		}
		g.increaseScore(50)
	}
}

func TestEatingFood(t *testing.T) {
	g, console := newTestGame(t, nil, nil)
	startPlaying(t, g, console)

	g.food.SetPosition(21, 10)
	step(t, g)

	if g.Score() != 10 {
		t.Errorf("expected score 10, got %d", g.Score())
	}
	if !g.Snake().Growing() {
		t.Error("snake should grow on the next tick")
	}
	if len(console.beeps) != 1 || console.beeps[0] != (beepCall{400, 50 * time.Millisecond}) {
		t.Errorf("expected eat cue, got %v", console.beeps)
	}
	if !g.Food().Active() {
		t.Fatal("food should be regenerated")
	}
	p := g.Food().Position()
	if g.Snake().CheckCollision(p.X, p.Y) {
		t.Errorf("regenerated food on the snake at %v", p)
	}

	g.food.Reset()
	step(t, g)
	if g.Snake().Len() != InitialLength+1 {
		t.Errorf("expected length %d, got %d", InitialLength+1, g.Snake().Len())
	}
}

func TestWallCollisionEndsGame(t *testing.T) {
	g, console := newTestGame(t, nil, nil)
	startPlaying(t, g, console)

	console.press(core.KeyOf(core.KeyUp))
	for range 20 {
		step(t, g)
		if g.State() != StatePlaying {
			break
		}
	}

	if g.State() != StateGameOver {
		t.Fatalf("expected game over, got %s", g.State())
	}
	if g.Snake().Head() != core.Pos(20, 0) {
		t.Errorf("expected head on the top border, got %v", g.Snake().Head())
	}
	if len(console.beeps) != 1 || console.beeps[0] != (beepCall{200, 500 * time.Millisecond}) {
		t.Errorf("expected crash cue, got %v", console.beeps)
	}

	// Score 0 never beats an empty table
	g.Iterate()
	if g.State() != StateGameOver || !console.shows("GAME OVER") {
		t.Fatalf("expected game over screen, state %s:\n%s", g.State(), console.screen.String())
	}

	console.press(core.KeyOf(core.KeyEnter))
	g.Iterate()
	if g.State() != StateMenu {
		t.Errorf("enter should return to the menu, got %s", g.State())
	}
}

func TestSelfCollisionEndsGame(t *testing.T) {
	g, console := newTestGame(t, nil, nil)
	startPlaying(t, g, console)

	g.snake.Grow()
	step(t, g)
	g.snake.Grow()
	step(t, g)

	for _, k := range []core.KeyCode{core.KeyUp, core.KeyLeft, core.KeyDown} {
		console.press(core.KeyOf(k))
		step(t, g)
	}

	if g.State() != StateGameOver {
		t.Fatalf("expected game over from self collision, got %s (body %v)", g.State(), g.Snake().Body())
	}
}

func TestPlayingKeys(t *testing.T) {
	tests := []struct {
		key      core.Key
		expected core.Direction
	}{
		{core.KeyOf(core.KeyUp), core.DirUp},
		{core.KeyOf(core.KeyDown), core.DirDown},
		{core.RuneKey('w'), core.DirUp},
		{core.RuneKey('S'), core.DirDown},
		{core.KeyOf(core.KeyLeft), core.DirRight}, // reversal ignored
		{core.RuneKey('a'), core.DirRight},
		{core.RuneKey('d'), core.DirRight},
	}

	for _, tc := range tests {
		g, console := newTestGame(t, nil, nil)
		startPlaying(t, g, console)

		console.press(tc.key)
		g.Iterate()
		if g.Snake().PendingDirection() != tc.expected {
			t.Errorf("key %s: pending = %s, expected %s", tc.key, g.Snake().PendingDirection(), tc.expected)
		}
	}
}

func TestPauseAndResume(t *testing.T) {
	pauseKeys := []core.Key{core.KeyOf(core.KeySpace), core.RuneKey('p'), core.KeyOf(core.KeyEscape)}

	for _, key := range pauseKeys {
		g, console := newTestGame(t, nil, nil)
		startPlaying(t, g, console)

		console.press(key)
		g.Iterate()
		if g.State() != StatePaused {
			t.Fatalf("key %s: expected paused, got %s", key, g.State())
		}

		head := g.Snake().Head()
		for range 50 {
			g.Iterate()
		}
		if g.Snake().Head() != head {
			t.Fatalf("key %s: snake moved while paused", key)
		}
		if !console.shows("PAUSED") {
			t.Errorf("key %s: pause overlay not drawn", key)
		}

		clears := console.clears
		console.press(core.KeyOf(core.KeySpace))
		g.Iterate()
		if g.State() != StatePlaying {
			t.Fatalf("key %s: expected playing after resume, got %s", key, g.State())
		}
		if console.clears != clears+1 || console.shows("PAUSED") {
			t.Errorf("key %s: resume should redraw the whole frame", key)
		}
	}
}

func TestQuitFromPause(t *testing.T) {
	g, console := newTestGame(t, nil, nil)
	startPlaying(t, g, console)

	g.Pause()
	console.press(core.KeyOf(core.KeyEscape))
	g.Iterate()

	if g.State() != StateGameOver {
		t.Errorf("escape in pause should end the game, got %s", g.State())
	}

	g.Resume()
	if g.State() != StateGameOver {
		t.Error("Resume only applies to a paused game")
	}
}

// playAndCrash scores points by eating, then drives the snake into the top wall.
func playAndCrash(t *testing.T, g *Game, console *fakeConsole, meals int) {
	t.Helper()
	startPlaying(t, g, console)
	for i := range meals {
		head := g.Snake().Head()
		g.food.SetPosition(head.X+1, head.Y)
		step(t, g)
		if g.Score() != (i+1)*g.Food().Points() {
			t.Fatalf("meal %d not eaten, score %d", i+1, g.Score())
		}
		g.food.Reset()
	}
	console.press(core.KeyOf(core.KeyUp))
	for g.State() == StatePlaying {
		step(t, g)
	}
	if g.State() != StateGameOver {
		t.Fatalf("expected game over, got %s", g.State())
	}
}

func TestHighScoreEntry(t *testing.T) {
	store := &memStore{}
	g, console := newTestGame(t, store, nil)
	playAndCrash(t, g, console, 2)

	g.Iterate()
	if g.State() != StateHighScoreEntry {
		t.Fatalf("expected high score entry, got %s", g.State())
	}
	g.Iterate()
	if !console.shows("Enter your name:") || !console.cursor {
		t.Fatalf("entry screen not drawn:\n%s", console.screen.String())
	}

	console.typeText("Al|x")
	console.press(core.KeyOf(core.KeyBackspace), core.KeyOf(core.KeyEnter))
	for range 6 {
		g.Iterate()
	}

	if g.State() != StateGameOver {
		t.Fatalf("expected game over after entry, got %s", g.State())
	}
	if len(store.records) != 1 {
		t.Fatalf("expected one saved record, got %v", store.records)
	}
	want := highscore.Record{Name: "Al", Score: 20, Date: "2024-05-06", Difficulty: "normal"}
	if store.records[0] != want {
		t.Errorf("saved %+v, expected %+v", store.records[0], want)
	}
	if g.PlayerName() != "Al" || console.cursor {
		t.Errorf("expected player Al with hidden cursor, got %q cursor=%v", g.PlayerName(), console.cursor)
	}

	g.Iterate()
	if g.State() != StateGameOver || !console.shows("Saved as Al") {
		t.Errorf("game over screen should confirm the save, state %s:\n%s", g.State(), console.screen.String())
	}
}

func TestHighScoreEntryEscapeUsesDefaultName(t *testing.T) {
	store := &memStore{}
	g, console := newTestGame(t, store, func(c *config.Config) {
		c.HighScores.DefaultName = "Anon"
	})
	playAndCrash(t, g, console, 1)

	g.Iterate()
	g.Iterate()
	console.typeText("zed")
	console.press(core.KeyOf(core.KeyEscape))
	for range 4 {
		g.Iterate()
	}

	if len(store.records) != 1 || store.records[0].Name != "Anon" {
		t.Errorf("expected default name, got %v", store.records)
	}
}

func TestHighScoreEntryNameLimit(t *testing.T) {
	store := &memStore{}
	g, console := newTestGame(t, store, nil)
	playAndCrash(t, g, console, 1)

	g.Iterate()
	g.Iterate()
	console.typeText("abcdefghijklmnopqrst")
	console.press(core.KeyOf(core.KeyEnter))
	for range 21 {
		g.Iterate()
	}

	if len(store.records) != 1 || store.records[0].Name != "abcdefghijklmno" {
		t.Errorf("expected name cut to %d characters, got %v", highscore.MaxNameLength, store.records)
	}
}

func TestFailedSaveDoesNotLoop(t *testing.T) {
	store := &memStore{appendErr: errDiskFull}
	g, console := newTestGame(t, store, nil)
	playAndCrash(t, g, console, 1)

	g.Iterate()
	g.Iterate()
	console.press(core.KeyOf(core.KeyEnter))
	g.Iterate()

	for range 10 {
		g.Iterate()
		if g.State() != StateGameOver {
			t.Fatalf("expected to stay in game over, got %s", g.State())
		}
	}
	if console.shows("Saved as") {
		t.Error("a failed save must not be reported as saved")
	}

	console.press(core.KeyOf(core.KeyEscape))
	g.Iterate()
	if !g.Done() {
		t.Errorf("escape on game over should exit, got %s", g.State())
	}
}

func TestNoEntryBelowBest(t *testing.T) {
	store := &memStore{records: []highscore.Record{{Name: "pro", Score: 100, Date: "2024-01-01"}}}
	g, console := newTestGame(t, store, nil)

	if g.HighScore() != 100 {
		t.Fatalf("high score should load from the store, got %d", g.HighScore())
	}

	playAndCrash(t, g, console, 1)
	g.Iterate()
	if g.State() != StateGameOver {
		t.Errorf("score 10 does not beat 100, got %s", g.State())
	}
	if len(store.records) != 1 {
		t.Errorf("only the existing record should remain, got %v", store.records)
	}
}

func TestUnreadableStoreStillPlayable(t *testing.T) {
	store := &memStore{loadErr: errDiskFull}
	g, console := newTestGame(t, store, nil)

	if g.HighScore() != 0 {
		t.Errorf("unreadable store should count as empty, got %d", g.HighScore())
	}

	g.Iterate()
	console.press(core.RuneKey('3'))
	g.Iterate()
	g.Iterate()
	if !console.shows(noScoresText) {
		t.Errorf("expected empty listing:\n%s", console.screen.String())
	}
}

func TestHighScoresScreen(t *testing.T) {
	store := &memStore{records: []highscore.Record{
		{Name: "bob", Score: 30, Date: "2024-01-02"},
		{Name: "alice", Score: 90, Date: "2024-01-01"},
	}}
	g, console := newTestGame(t, store, nil)

	g.Iterate()
	console.press(core.RuneKey('3'))
	g.Iterate()
	g.Iterate()

	if !console.shows(" 1. alice") || !console.shows(" 2. bob") {
		t.Fatalf("expected ranked listing:\n%s", console.screen.String())
	}
	if !console.shows("2024-01-01") {
		t.Error("dates should be listed")
	}

	console.press(core.KeyOf(core.KeyEnter))
	g.Iterate()
	g.Iterate()
	if g.State() != StateMenu || !console.shows("1. Start Game") {
		t.Errorf("enter should go back to the main menu:\n%s", console.screen.String())
	}
}

func TestInterruptExitsFromAnyState(t *testing.T) {
	setups := map[string]func(*Game, *fakeConsole){
		"menu": func(g *Game, c *fakeConsole) {},
		"playing": func(g *Game, c *fakeConsole) {
			startPlaying(t, g, c)
		},
		"paused": func(g *Game, c *fakeConsole) {
			startPlaying(t, g, c)
			g.Pause()
		},
		"game over": func(g *Game, c *fakeConsole) {
			startPlaying(t, g, c)
			g.SetState(StateGameOver)
		},
	}

	for name, setup := range setups {
		g, console := newTestGame(t, nil, nil)
		setup(g, console)

		console.press(core.KeyOf(core.KeyInterrupt))
		g.Iterate()
		if !g.Done() || g.IsRunning() {
			t.Errorf("%s: interrupt should exit, got %s", name, g.State())
		}
	}
}

func TestRunStopsAtExit(t *testing.T) {
	g, console := newTestGame(t, nil, nil)
	console.press(core.RuneKey('2'), core.RuneKey('4'), core.RuneKey('4'))

	g.Run()

	if !g.Done() {
		t.Fatalf("expected exit, got %s", g.State())
	}
	if len(console.sleeps) != 2 {
		t.Fatalf("expected 2 sleeps, got %v", console.sleeps)
	}
	for _, d := range console.sleeps {
		if d != 50*time.Millisecond {
			t.Errorf("menu polling should sleep 50ms, got %s", d)
		}
	}
}

func TestPollInterval(t *testing.T) {
	g, console := newTestGame(t, nil, nil)

	if g.PollInterval() != 50*time.Millisecond {
		t.Errorf("menu interval = %s, expected 50ms", g.PollInterval())
	}
	startPlaying(t, g, console)
	if g.PollInterval() != 10*time.Millisecond {
		t.Errorf("playing interval = %s, expected 10ms", g.PollInterval())
	}
}

func TestDeterminism(t *testing.T) {
	script := map[int]core.Key{
		3:  core.KeyOf(core.KeyDown),
		40: core.KeyOf(core.KeyLeft),
		90: core.KeyOf(core.KeyUp),
	}

	run := func() Snapshot {
		g, console := newTestGame(t, nil, nil)
		g.Iterate()
		console.press(core.RuneKey('1'))
		g.Iterate()
		for i := range 150 {
			if k, ok := script[i]; ok {
				console.press(k)
			}
			g.Iterate()
		}
		return g.Snapshot()
	}

	s1, s2 := run(), run()
	if s1 != s2 {
		t.Errorf("same seed and input diverged:\n%+v\n%+v", s1, s2)
	}
}

func TestDebugState(t *testing.T) {
	g, console := newTestGame(t, nil, nil)
	startPlaying(t, g, console)

	if got := g.DebugState(); got == "" {
		t.Error("DebugState should describe the game")
	}
}
