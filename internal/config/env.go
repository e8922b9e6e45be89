package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv reads a T from the process environment. Nested sections pick up
// their envPrefix, so the server address is SERVER_ADDRESS and the session
// database is STORAGE_DB_DATABASE_URI.
func parseEnv[T any]() (*T, error) {
	cfg, err := env.ParseAs[T]()
	if err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}
	return &cfg, nil
}
