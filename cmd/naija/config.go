package main

import (
	"errors"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var errParseConfig = errors.New("failed to parse environment variables into config")

var dotenvOnce sync.Once

// loadConfig populates cfg from environment variables, loading a .env file
// from the working directory first when one exists.
func loadConfig[T any](cfg *T) error {
	dotenvOnce.Do(func() {
		// Missing .env is fine; real environments set variables directly.
		_ = godotenv.Load()
	})
	if err := env.Parse(cfg); err != nil {
		return errors.Join(errParseConfig, err)
	}
	return nil
}

// serveConfig holds the HTTP server settings for the serve command.
type serveConfig struct {
	Addr            string        `env:"HTTP_ADDR" envDefault:":8080"`          // Listen address
	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"5s"`     // Max duration for reading a request
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"10s"`   // Max duration for writing a response
	IdleTimeout     time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"1m"`     // Keep-alive idle limit
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"5s"` // Grace period on shutdown
}
