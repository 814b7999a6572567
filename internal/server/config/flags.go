package config

import (
	"flag"
	"time"

	"github.com/dmitrijs2005/idkeeper/internal/flagx"
)

// parseFlags populates server Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   HTTP bind address (e.g., ":8080")
//	-g string   gRPC bind address (e.g., ":50051")
//	-d string   PostgreSQL DSN
//	-H string   password hasher: sha256 | argon2id
//	-k string   hash pepper (argon2id)
//	-t int      session token size, bytes
//	-w int      shutdown timeout, seconds
//	-i int      health check interval, seconds
//	-l string   log level: debug | info | warn | error
//
// Flags owned by other loaders (-c, -config) are skipped.
func parseFlags(config *Config, args []string) error {
	fs := flag.NewFlagSet("server", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "HTTP address and port")
	fs.StringVar(&config.EndpointAddrGRPC, "g", config.EndpointAddrGRPC, "gRPC address and port")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.PasswordHasher, "H", config.PasswordHasher, "password hasher (sha256|argon2id)")
	fs.StringVar(&config.HashPepper, "k", config.HashPepper, "hash pepper")
	fs.IntVar(&config.TokenBytes, "t", config.TokenBytes, "session token size in bytes (at least 16)")

	shutdownTimeout := fs.Int("w", int(config.ShutdownTimeout.Seconds()), "shutdown timeout (in seconds)")
	healthCheckInterval := fs.Int("i", int(config.HealthCheckInterval.Seconds()), "health check interval (in seconds)")

	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")

	if err := flagx.ParseOwn(fs, args); err != nil {
		return err
	}

	config.ShutdownTimeout = time.Duration(*shutdownTimeout) * time.Second
	config.HealthCheckInterval = time.Duration(*healthCheckInterval) * time.Second

	return nil
}
