package client

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/idkeeper/internal/common"
)

var (
	ErrUnavailable = errors.New("server unavailable")
)

// APIError is a non-2xx answer from the server.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

// Unwrap maps the status back to the common error kind the server started from.
func (e *APIError) Unwrap() error {
	switch e.Status {
	case http.StatusBadRequest:
		return common.ErrorValidation
	case http.StatusUnauthorized:
		return common.ErrorInvalidCredentials
	case http.StatusForbidden:
		return common.ErrInvalidToken
	case http.StatusConflict:
		return common.ErrorConflict
	}
	return common.ErrorInternal
}
