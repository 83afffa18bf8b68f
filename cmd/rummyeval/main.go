// Command rummyeval evaluates a rummy hand given in short card notation.
//
//	rummyeval QH KH AH 2D 3D 4D 5C 5S 5H 5D
//
// Ten cards print the optimal partition as JSON. Eleven cards first ask the
// configured bot which card to throw, then evaluate the remaining ten.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"rummy/internal/bot"
	"rummy/internal/config"
	"rummy/internal/domain"
	"rummy/internal/meld"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("rummyeval failed")
	}
}

type output struct {
	Discard *domain.Card         `json:"discard,omitempty"`
	Result  meld.PartitionResult `json:"result"`
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("rummyeval", flag.ContinueOnError)
	configPath := fs.String("config", getEnv("RUMMY_CONFIG", ""), "game config JSON file")
	levelName := fs.String("level", "", "bot level used for 11-card hands (defaults to the config)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := config.Defaults()
	if *configPath != "" {
		c, err := config.ReadGameConfig(*configPath)
		if err != nil {
			return err
		}
		cfg = c
		log.Debug().Str("config", *configPath).Msg("loaded game config")
	}

	hand, err := domain.ParseCards(fs.Args())
	if err != nil {
		return err
	}

	var out output
	if len(hand) == domain.HandSize+1 {
		name := *levelName
		if name == "" {
			name = cfg.BotLevel
		}
		level, err := bot.ParseLevel(name)
		if err != nil {
			return err
		}
		if err := domain.ValidateCards(hand); err != nil {
			return err
		}
		brain, err := bot.NewBrain(level)
		if err != nil {
			return err
		}
		i := brain.ChooseDiscard(hand)
		discard := hand[i]
		out.Discard = &discard
		hand = domain.RemoveAt(hand, i)
		log.Info().Str("level", string(level)).Str("discard", discard.String()).Msg("bot chose discard")
	}

	res, err := meld.EvaluateHand(hand)
	if err != nil {
		return err
	}
	out.Result = res
	log.Info().
		Bool("complete", res.IsComplete).
		Int("leftover_points", res.LeftoverPoints).
		Int("melds", len(res.Melds)).
		Msg("evaluated hand")

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	return nil
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
