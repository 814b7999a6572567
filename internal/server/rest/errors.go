package rest

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dmitrijs2005/idkeeper/internal/common"
	"github.com/dmitrijs2005/idkeeper/internal/logging"
)

type errorHandler struct {
	logger logging.Logger
}

func newErrorHandler(l logging.Logger) *errorHandler {
	return &errorHandler{logger: l}
}

// statusFor maps an error kind to an HTTP status and a client-facing message.
// Unknown users and wrong passwords share one answer.
func statusFor(err error) (int, string) {
	var he *echo.HTTPError
	switch {
	case errors.As(err, &he):
		return he.Code, fmt.Sprint(he.Message)
	case errors.Is(err, common.ErrorValidation):
		return http.StatusBadRequest, fmt.Sprintf("invalid %s", common.FieldOf(err))
	case errors.Is(err, common.ErrorInvalidLoginFormat):
		return http.StatusBadRequest, common.ErrorInvalidLoginFormat.Error()
	case errors.Is(err, common.ErrorConflict):
		if f := common.FieldOf(err); f != "" {
			return http.StatusConflict, fmt.Sprintf("%s already exists", f)
		}
		return http.StatusConflict, common.ErrorConflict.Error()
	case errors.Is(err, common.ErrInvalidToken):
		return http.StatusForbidden, "token invalid"
	case errors.Is(err, common.ErrorNotFound), errors.Is(err, common.ErrorInvalidCredentials):
		return http.StatusUnauthorized, common.ErrorInvalidCredentials.Error()
	}
	return http.StatusInternalServerError, "internal server error"
}

// Handle writes err as a StatusResponse.
func (h *errorHandler) Handle(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code, msg := statusFor(err)

	ctx := c.Request().Context()
	args := []any{"error", err, "status", code, "request_id", requestID(c)}
	if code >= http.StatusInternalServerError {
		h.logger.Error(ctx, "HTTP request error", args...)
	} else {
		h.logger.Debug(ctx, "HTTP request rejected", args...)
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}
	_ = c.JSON(code, StatusResponse{Status: statusError, Message: msg})
}
