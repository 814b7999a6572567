package rest

import (
	"time"

	"github.com/labstack/echo/v4"
)

const (
	requestIDKey = "request_id"
	userIDKey    = "user_id"
)

func requestID(c echo.Context) string {
	id, _ := c.Get(requestIDKey).(string)
	return id
}

// requestLogger logs one line per request once the handler and the error
// handler are done.
func (s *HTTPServer) requestLogger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)
		if err != nil {
			c.Error(err)
		}

		req := c.Request()
		args := []any{
			"method", req.Method,
			"path", req.URL.Path,
			"status", c.Response().Status,
			"duration", time.Since(start),
			"request_id", requestID(c),
		}
		if id, ok := c.Get(userIDKey).(int64); ok {
			args = append(args, "user_id", id)
		}
		s.logger.Info(req.Context(), "HTTP request", args...)

		return nil
	}
}
