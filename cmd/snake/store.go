package main

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/highscore"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// scoreStore is a high score store plus its cleanup.
type scoreStore struct {
	highscore.Store
	db *storage.Store // Set for the sqlite store
}

func (s *scoreStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// openStore opens the configured high score store. session tags SQLite rows.
func openStore(cfg config.HighScoreConfig, session string) (*scoreStore, error) {
	switch cfg.Store {
	case config.StoreSQLite:
		db, err := storage.Open(cfg.DB)
		if err != nil {
			return nil, err
		}
		return &scoreStore{Store: db.WithSession(session), db: db}, nil

	case config.StoreFile:
		path, err := config.ExpandPath(cfg.File)
		if err != nil {
			return nil, err
		}
		return &scoreStore{Store: highscore.NewFileStore(path)}, nil

	default:
		return nil, fmt.Errorf("unknown highscores store %q", cfg.Store)
	}
}
