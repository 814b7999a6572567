package rest

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/dmitrijs2005/idkeeper/internal/common"
)

const welcomeMessage = "Welcome to idkeeper!"

// Index (GET /) returns a welcome text.
func (s *HTTPServer) Index(c echo.Context) error {
	return c.String(http.StatusOK, welcomeMessage)
}

// Register (POST /api/register) creates a user.
func (s *HTTPServer) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	id, err := s.users.Register(c.Request().Context(), req.Username, req.Password, req.Email)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, RegisterResponse{
		StatusResponse: StatusResponse{Status: statusSuccess, Message: "User registered successfully"},
		ID:             id,
	})
}

// Login (POST /api/login) authenticates by username or email and returns a
// session token.
func (s *HTTPServer) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	token, err := s.users.Login(c.Request().Context(), req.login(), req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, LoginResponse{
		StatusResponse: StatusResponse{Status: statusSuccess, Message: "User logged successfully"},
		Token:          token,
	})
}

// ListUsers (POST /api/get_users) returns every user without password hashes.
func (s *HTTPServer) ListUsers(c echo.Context) error {
	var req TokenRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	if _, err := s.authorize(c, req.Token); err != nil {
		return err
	}

	users, err := s.users.List(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toUsersResponse(users))
}

// DeleteUser (POST /api/user/delete) removes the token's user.
func (s *HTTPServer) DeleteUser(c echo.Context) error {
	var req TokenRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	userID, err := s.authorize(c, req.Token)
	if err != nil {
		return err
	}

	if err := s.users.Delete(c.Request().Context(), userID); err != nil {
		return ownerGone(err)
	}

	return c.JSON(http.StatusOK, StatusResponse{Status: statusSuccess, Message: "user deleted successfully"})
}

// UpdateUser (POST /api/user/update) changes one field of the token's user.
func (s *HTTPServer) UpdateUser(c echo.Context) error {
	var req UpdateRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	userID, err := s.authorize(c, req.Token)
	if err != nil {
		return err
	}

	if err := s.users.UpdateField(c.Request().Context(), userID, req.Key, req.Value); err != nil {
		return ownerGone(err)
	}

	return c.JSON(http.StatusOK, StatusResponse{Status: statusSuccess})
}

// authorize resolves the token from the body, falling back to the
// Authorization header.
func (s *HTTPServer) authorize(c echo.Context, bodyToken string) (int64, error) {
	token := bodyToken
	if token == "" {
		token = bearerToken(c.Request().Header.Get(common.AuthorizationHeaderName))
	}

	userID, err := s.users.Authorize(token)
	if err != nil {
		return 0, err
	}

	c.Set(userIDKey, userID)
	return userID, nil
}

func bearerToken(header string) string {
	if len(header) < len(common.BearerPrefix) || !strings.EqualFold(header[:len(common.BearerPrefix)], common.BearerPrefix) {
		return ""
	}
	return strings.TrimSpace(header[len(common.BearerPrefix):])
}

// ownerGone reports a token whose user no longer exists as an invalid token.
func ownerGone(err error) error {
	if errors.Is(err, common.ErrorNotFound) {
		return common.ErrInvalidToken
	}
	return err
}
