package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/idkeeper/internal/flagx"
	"github.com/dmitrijs2005/idkeeper/internal/timex"
	"github.com/dmitrijs2005/idkeeper/internal/validation"
)

// JsonConfig is the on-disk shape of Config. Durations accept "5s"-style
// strings or integer nanoseconds.
type JsonConfig struct {
	EndpointAddrHTTP    string            `json:"endpoint_addr_http"`
	EndpointAddrGRPC    string            `json:"endpoint_addr_grpc"`
	DatabaseDSN         string            `json:"database_dsn"`
	PasswordHasher      string            `json:"password_hasher"`
	HashPepper          string            `json:"hash_pepper"`
	TokenBytes          int               `json:"token_bytes"`
	ShutdownTimeout     timex.Duration    `json:"shutdown_timeout"`
	HealthCheckInterval timex.Duration    `json:"health_check_interval"`
	LogLevel            string            `json:"log_level"`
	Validation          validation.Policy `json:"validation"`
}

// parseJson overlays the file named by -c/-config onto config. Keys missing
// from the file keep their current values, including inside "validation".
func parseJson(config *Config, args []string) error {
	path := flagx.ConfigFilePath(args)

	// nothing to load
	if path == "" {
		return nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	c := &JsonConfig{
		EndpointAddrHTTP:    config.EndpointAddrHTTP,
		EndpointAddrGRPC:    config.EndpointAddrGRPC,
		DatabaseDSN:         config.DatabaseDSN,
		PasswordHasher:      config.PasswordHasher,
		HashPepper:          config.HashPepper,
		TokenBytes:          config.TokenBytes,
		ShutdownTimeout:     timex.Duration{Duration: config.ShutdownTimeout},
		HealthCheckInterval: timex.Duration{Duration: config.HealthCheckInterval},
		LogLevel:            config.LogLevel,
		Validation:          config.Validation,
	}

	if err := json.Unmarshal(file, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	config.EndpointAddrHTTP = c.EndpointAddrHTTP
	config.EndpointAddrGRPC = c.EndpointAddrGRPC
	config.DatabaseDSN = c.DatabaseDSN
	config.PasswordHasher = c.PasswordHasher
	config.HashPepper = c.HashPepper
	config.TokenBytes = c.TokenBytes
	config.ShutdownTimeout = c.ShutdownTimeout.Duration
	config.HealthCheckInterval = c.HealthCheckInterval.Duration
	config.LogLevel = c.LogLevel
	config.Validation = c.Validation

	return nil
}
