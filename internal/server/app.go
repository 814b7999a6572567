// Package server wires storage, services and transports together and runs
// the HTTP and gRPC servers until a termination signal arrives.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrijs2005/idkeeper/internal/cryptox"
	"github.com/dmitrijs2005/idkeeper/internal/logging"
	"github.com/dmitrijs2005/idkeeper/internal/server/config"
	"github.com/dmitrijs2005/idkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/idkeeper/internal/server/rest"
	"github.com/dmitrijs2005/idkeeper/internal/server/services"
	"github.com/dmitrijs2005/idkeeper/internal/server/tokens"
	"github.com/dmitrijs2005/idkeeper/internal/validation"

	gs "github.com/dmitrijs2005/idkeeper/internal/server/grpc"
)

// runner is a server that blocks until ctx is cancelled.
type runner interface {
	Run(ctx context.Context) error
}

type App struct {
	config      *config.Config
	logger      logging.Logger
	db          *sql.DB
	userService *services.UserService
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	logger := logging.NewJSONLogger(os.Stdout, level)

	hasher, err := cryptox.NewHasher(c.PasswordHasher, c.HashPepper)
	if err != nil {
		return nil, err
	}

	registry, err := tokens.NewRegistry(c.TokenBytes)
	if err != nil {
		return nil, err
	}

	db, err := repomanager.Open(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations: %w", err)
	}

	us := services.NewUserService(db, rm,
		validation.New(c.Validation), hasher, registry)

	return &App{config: c, logger: logger, db: db, userService: us}, nil
}

func (app *App) initSignalHandler(ctx context.Context, cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		defer signal.Stop(sigs)
		select {
		case s := <-sigs:
			app.logger.Info(ctx, "Signal received", "signal", s.String())
			cancelFunc()
		case <-ctx.Done():
		}
	}()
}

// serve runs every server until ctx is cancelled. The first failure stops
// the others and is returned.
func (app *App) serve(ctx context.Context, servers map[string]runner) error {
	g, ctx := errgroup.WithContext(ctx)

	for name, r := range servers {
		name, r := name, r
		g.Go(func() error {
			if err := r.Run(ctx); err != nil {
				app.logger.Error(ctx, "server failed", "server", name, "error", err)
				return fmt.Errorf("%s server: %w", name, err)
			}
			return nil
		})
	}

	return g.Wait()
}

// Run serves HTTP and gRPC until ctx is cancelled, a signal arrives or a
// server fails, then closes the database.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(ctx, cancelFunc)

	err := app.serve(ctx, map[string]runner{
		"http": rest.NewHTTPServer(app.config.EndpointAddrHTTP, app.logger, app.userService, app.config.ShutdownTimeout),
		"grpc": gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.db, app.config.HealthCheckInterval),
	})

	app.logger.Info(ctx, "App stopped")

	return errors.Join(err, app.db.Close())
}
