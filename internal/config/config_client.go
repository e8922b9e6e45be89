package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side process settings.
type ClientApp struct {
	// LogFile is the path of the client log file.
	LogFile string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the address of the DevConnector API.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite file holding the saved session.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains process-level client settings.
	App ClientApp
	// Adapter contains the API address and timeout.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It merges all sources the same way [GetStructuredConfig] does, maps only
// the fields relevant to the TUI client, and validates the resulting
// [ClientConfig]. Server-only requirements such as the token sign key are not
// checked.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	logFile := cfg.App.LogFile
	if logFile == "" {
		logFile = "devconnector-client.log"
	}

	dsn := cfg.Storage.DB.DSN
	if dsn == "" {
		dsn = "devconnector-session.db"
	}

	return &ClientConfig{
		App: ClientApp{
			LogFile: logFile,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Server.HTTPAddress,
			RequestTimeout: cfg.Server.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: dsn,
			},
		},
	}
}
