package main

import (
	"flag"
	"os"

	"snake-console/config"
	"snake-console/game"
	"snake-console/game/manager"
	"snake-console/game/types"
	"snake-console/ui"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	size := flag.Int("size", cfg.BoardSize, "Side length of the square board")
	seed := flag.Uint64("seed", cfg.Seed, "Seed for apple and stone placement")
	flag.Parse()

	cfg.BoardSize = *size
	cfg.Seed = *seed
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	zerolog.SetGlobalLevel(cfg.LogLevel)

	placer := manager.NewRandomPlacer(types.Grid{Size: cfg.BoardSize}, cfg.Seed)
	board, err := game.NewDefaultBoard(cfg.BoardSize, placer)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up board")
	}

	console := ui.NewStdConsole(os.Stdin, os.Stdout)
	runner := game.NewRunner(board, ui.NewRenderer(), console, log.Logger)
	runner.PlayGame()
}
