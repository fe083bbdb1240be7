package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds the transport settings the client uses to reach the
// server.
type ClientAdapter struct {
	// HTTPAddress is the mdmfd server address the client talks to.
	HTTPAddress string
	// RequestTimeout bounds every outbound request.
	RequestTimeout time.Duration
}

// ClientDB points at the client's local cache database.
type ClientDB struct {
	// DSN is the SQLite file path used for the client's local cache.
	DSN string
}

// ClientStorage groups the client's storage settings.
type ClientStorage struct {
	DB ClientDB
}

// ClientConfig is the client-side view of [StructuredConfig]: only the
// transport and local-cache settings the client runtime needs.
type ClientConfig struct {
	Adapter ClientAdapter
	Storage ClientStorage
}

// GetClientConfig loads the merged structured configuration, projects the
// client-relevant fields out of it and validates the result.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
	}

	return clientCfg, clientCfg.validate()
}
