package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// config is read from the environment after the optional .env file is applied.
// Variables already set in the environment win over the file.
type config struct {
	Secret   string        `env:"AUTHX_SECRET"`
	Issuer   string        `env:"AUTHX_ISSUER"`
	Audience string        `env:"AUTHX_AUDIENCE"`
	TTL      time.Duration `env:"AUTHX_TTL" envDefault:"1h"`
	LogLevel string        `env:"AUTHX_LOG_LEVEL" envDefault:"info"`
}

func loadConfig(envFile string) (config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

func (c config) secret() ([]byte, error) {
	if c.Secret == "" {
		return nil, errors.New("AUTHX_SECRET is required")
	}
	return []byte(c.Secret), nil
}

func newLogger(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn", "warning":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl})).With("component", "authx")
}
