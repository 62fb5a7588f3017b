package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/audio"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/highscore"
	"github.com/vovakirdan/tui-snake/internal/logging"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play snake",
	Long: `Start the game at the main menu.

Menu:
  1 - Start game
  2 - Difficulty
  3 - High scores
  4 - Exit`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer logger.Close()

	// A missing store only disables persistence.
	var scores highscore.Store
	store, err := openStore(cfg.HighScores, logger.Session)
	if err != nil {
		logger.Warn("high scores unavailable", "err", err)
	} else {
		defer store.Close()
		scores = store
	}

	opts := registry.Options{Config: cfg, Logger: logger.Logger}
	if cfg.Sound.Enabled {
		player := audio.NewPlayer()
		if err := player.Init(); err != nil {
			logger.Warn("sound unavailable", "err", err)
		} else {
			defer player.Close()
			opts.Sound = player
		}
	}

	backend, err := registry.Create(cfg.UI.Backend, opts)
	if err != nil {
		return err
	}
	defer backend.Close()

	game, err := snake.New(snake.Options{
		Config:  cfg,
		Console: backend.Console(),
		Scores:  scores,
		Logger:  logger.Logger,
		Seed:    flags.Seed,
	})
	if err != nil {
		return err
	}

	logger.Info("session started", "backend", cfg.UI.Backend, "difficulty", game.Difficulty())
	if err := backend.Start(game); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	logger.Info("session ended", "score", game.Score(), "high_score", game.HighScore())
	return nil
}
