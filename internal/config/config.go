package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

const (
	DefaultWinningScore = 100
	DefaultHandSize     = 10
	DefaultBotLevel     = "smart"
)

type GameConfig struct {
	// WinningScore is the running total that ends a game.
	WinningScore int    `json:"winning_score"`
	HandSize     int    `json:"hand_size"`
	BotLevel     string `json:"bot_level"`
	// DeckSeed fixes the shuffle when non-zero; zero seeds from the clock.
	DeckSeed int64 `json:"deck_seed"`
}

// Defaults returns the configuration used when no file has been loaded.
func Defaults() GameConfig {
	return GameConfig{
		WinningScore: DefaultWinningScore,
		HandSize:     DefaultHandSize,
		BotLevel:     DefaultBotLevel,
	}
}

var (
	cfg      *GameConfig
	loadOnce sync.Once
	loadErr  error
)

// LoadGameConfig loads the game configuration from the given path.
// Fields missing from the file keep their defaults.
func LoadGameConfig(path string) error {
	loadOnce.Do(func() {
		c, err := ReadGameConfig(path)
		if err != nil {
			loadErr = err
			return
		}
		cfg = &c
	})
	return loadErr
}

// ReadGameConfig parses a config file without touching the global configuration.
func ReadGameConfig(path string) (GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return GameConfig{}, fmt.Errorf("failed to read game config: %w", err)
	}

	c := Defaults()
	if err := json.Unmarshal(data, &c); err != nil {
		return GameConfig{}, fmt.Errorf("failed to unmarshal game config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return GameConfig{}, err
	}
	return c, nil
}

// Validate rejects values the rules cannot play with.
func (c GameConfig) Validate() error {
	if c.WinningScore <= 0 {
		return fmt.Errorf("winning_score must be positive, got %d", c.WinningScore)
	}
	if c.HandSize != DefaultHandSize {
		return fmt.Errorf("hand_size must be %d, got %d", DefaultHandSize, c.HandSize)
	}
	return nil
}

// GetGameConfig returns the global game configuration, or the defaults if none was loaded.
func GetGameConfig() GameConfig {
	if cfg == nil {
		return Defaults()
	}
	return *cfg
}

// GetWinningScore returns the configured target, or the safe default.
func GetWinningScore() int {
	if cfg == nil || cfg.WinningScore <= 0 {
		return DefaultWinningScore // Safe default
	}
	return cfg.WinningScore
}
