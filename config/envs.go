package config

import (
	"os"
	"strconv"
	"time"

	"snake-console/game/types"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	DefaultBoardSize = 10
	MinBoardSize     = types.MinGridSize
	DefaultLogLevel  = "info"
)

// Config holds the game's configuration values.
type Config struct {
	BoardSize int           // Side length of the square board
	Seed      uint64        // Seed for apple and stone placement
	LogLevel  zerolog.Level // Minimum level written to stderr
}

// Load reads an optional .env file and then the SNAKE_* environment variables.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg(".env file not found or could not be loaded")
	}
	return FromEnv()
}

// FromEnv builds a Config from the process environment only. It does not
// validate, so command-line overrides can still be applied.
func FromEnv() (Config, error) {
	cfg := Config{
		BoardSize: DefaultBoardSize,
		Seed:      uint64(time.Now().UnixNano()),
		LogLevel:  zerolog.InfoLevel,
	}

	if v := os.Getenv("SNAKE_BOARD_SIZE"); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, errors.Wrapf(err, "SNAKE_BOARD_SIZE must be an integer")
		}
		cfg.BoardSize = size
	}

	if v := os.Getenv("SNAKE_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return Config{}, errors.Wrapf(err, "SNAKE_SEED must be an unsigned integer")
		}
		cfg.Seed = seed
	}

	lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", DefaultLogLevel))
	if err != nil {
		return Config{}, errors.Wrap(err, "LOG_LEVEL")
	}
	cfg.LogLevel = lvl

	return cfg, nil
}

// Validate checks that the board leaves room for a snake, an apple and a stone.
func (c Config) Validate() error {
	if c.BoardSize < MinBoardSize {
		return errors.Errorf("board size %d is below the minimum of %d", c.BoardSize, MinBoardSize)
	}
	return nil
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
