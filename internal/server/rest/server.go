// Package rest exposes UserService over a JSON HTTP API built on echo.
package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/dmitrijs2005/idkeeper/internal/common"
	"github.com/dmitrijs2005/idkeeper/internal/logging"
	"github.com/dmitrijs2005/idkeeper/internal/server/models"
)

// UserService is the business layer the handlers call into.
type UserService interface {
	Register(ctx context.Context, username, password, email string) (int64, error)
	Login(ctx context.Context, login, password string) (string, error)
	Authorize(token string) (int64, error)
	UpdateField(ctx context.Context, userID int64, key, value string) error
	Delete(ctx context.Context, userID int64) error
	List(ctx context.Context) ([]*models.User, error)
}

type HTTPServer struct {
	address         string
	users           UserService
	logger          logging.Logger
	shutdownTimeout time.Duration
	echo            *echo.Echo
}

func NewHTTPServer(a string, l logging.Logger, us UserService, shutdownTimeout time.Duration) *HTTPServer {
	s := &HTTPServer{
		address:         a,
		users:           us,
		logger:          l.With("module", "http_server"),
		shutdownTimeout: shutdownTimeout,
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = newErrorHandler(s.logger).Handle

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator:        uuid.NewString,
		TargetHeader:     common.RequestIDHeaderName,
		RequestIDHandler: func(c echo.Context, id string) { c.Set(requestIDKey, id) },
	}))
	e.Use(s.requestLogger)

	s.registerRoutes(e)
	s.echo = e

	return s
}

func (s *HTTPServer) registerRoutes(e *echo.Echo) {
	e.GET("/", s.Index)

	api := e.Group("/api")
	api.POST("/register", s.Register)
	api.POST("/login", s.Login)
	api.POST("/get_users", s.ListUsers)
	api.POST("/user/delete", s.DeleteUser)
	api.POST("/user/update", s.UpdateUser)
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *HTTPServer) Run(ctx context.Context) error {
	stopped := make(chan struct{})
	shutdownDone := make(chan struct{})

	go func() {
		defer close(shutdownDone)
		select {
		case <-ctx.Done():
		case <-stopped:
			return
		}
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		if err := s.echo.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "HTTP server shutdown", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	err := s.echo.Start(s.address)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		close(stopped)
		<-shutdownDone
		return err
	}

	<-shutdownDone
	return nil
}
