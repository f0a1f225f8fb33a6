package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// dotEnvOnce guards the one-time .env bootstrap shared by all Load calls.
var dotEnvOnce sync.Once

// Load parses environment variables into the provided configuration struct
// based on its `env` field tags. A .env file in the working directory is
// loaded into the environment the first time Load is called; a missing file
// is not an error.
func Load[T any](cfg *T) error {
	dotEnvOnce.Do(func() {
		// The .env file is a development convenience only.
		_ = godotenv.Load()
	})
	if cfg == nil {
		return ErrNilPointer
	}
	if err := env.Parse(cfg); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics on failure. Intended for configuration
// the process cannot start without.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(fmt.Sprintf("config: %v", err))
	}
}
