package nakama

import (
	"context"
	"database/sql"
	"math/rand"

	"rummy/internal/app"
	"rummy/internal/bot"
	"rummy/internal/config"

	"github.com/heroiclabs/nakama-common/runtime"
)

// InitModule loads configuration and wires RPCs for Nakama runtime.
func InitModule(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, initializer runtime.Initializer) error {
	env, _ := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string)

	if path := env[EnvConfigPath]; path != "" {
		if err := config.LoadGameConfig(path); err != nil {
			logger.Error("Failed to load game config from %s: %v", path, err)
			return err
		}
	}
	cfg := config.GetGameConfig()

	levelName := cfg.BotLevel
	if override := env[EnvBotLevel]; override != "" {
		levelName = override
	}
	level, err := bot.ParseLevel(levelName)
	if err != nil {
		logger.Error("Invalid bot level %q: %v", levelName, err)
		return err
	}
	defaultLevel = level

	if cfg.DeckSeed != 0 {
		service = app.NewService(rand.New(rand.NewSource(cfg.DeckSeed)))
		logger.Warn("Deck seed fixed at %d; deals are reproducible.", cfg.DeckSeed)
	}

	if err := RegisterRPCs(initializer); err != nil {
		return err
	}

	logger.Info("Rummy Go module loaded. Winning score %d, bot level %s.", cfg.WinningScore, defaultLevel)
	return nil
}
