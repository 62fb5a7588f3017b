package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// cliFlags holds the persistent flag values.
type cliFlags struct {
	ConfigPath string
	Backend    string
	Seed       int64
	Store      string
	ScoresPath string
	Difficulty string
	LogFile    string
	LogLevel   string
	NoSound    bool
}

// apply layers the flags over cfg. changed reports whether a flag was set
// explicitly, so that --log-file "" can turn logging off.
func (f cliFlags) apply(cfg *config.Config, changed func(name string) bool) error {
	if f.Backend != "" {
		cfg.UI.Backend = f.Backend
	}
	if f.Store != "" {
		cfg.HighScores.Store = f.Store
	}
	if f.ScoresPath != "" {
		if cfg.HighScores.Store == config.StoreSQLite {
			cfg.HighScores.DB = f.ScoresPath
		} else {
			cfg.HighScores.File = f.ScoresPath
		}
	}
	if f.Difficulty != "" {
		d, err := config.ParseDifficulty(f.Difficulty)
		if err != nil {
			return err
		}
		cfg.Difficulty.Default = string(d)
	}
	if changed("log-file") {
		cfg.Log.File = f.LogFile
	}
	if f.LogLevel != "" {
		cfg.Log.Level = f.LogLevel
	}
	if f.NoSound {
		cfg.Sound.Enabled = false
	}
	return cfg.Validate()
}

// loadConfig reads the configuration and applies the command's flags.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flags.ConfigPath)
	if err != nil {
		return cfg, err
	}
	if err := flags.apply(&cfg, func(name string) bool {
		return cmd.Flags().Changed(name)
	}); err != nil {
		return cfg, fmt.Errorf("invalid flags: %w", err)
	}
	return cfg, nil
}
