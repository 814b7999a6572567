package rest

import "github.com/dmitrijs2005/idkeeper/internal/server/models"

const (
	statusSuccess = "success"
	statusError   = "error"
)

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

// LoginRequest carries either username or email. Email wins when both are
// present.
type LoginRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Password string  `json:"password"`
}

func (r LoginRequest) login() string {
	switch {
	case r.Email != nil:
		return *r.Email
	case r.Username != nil:
		return *r.Username
	}
	return ""
}

type TokenRequest struct {
	Token string `json:"token"`
}

type UpdateRequest struct {
	Token string `json:"token"`
	Key   string `json:"key"`
	Value string `json:"value"`
}

type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

type RegisterResponse struct {
	StatusResponse
	ID int64 `json:"id"`
}

type LoginResponse struct {
	StatusResponse
	Token string `json:"token"`
}

// UserResponse is the public view of a user; the password hash never leaves
// the server.
type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func toUsersResponse(users []*models.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, UserResponse{ID: u.ID, Username: u.UserName, Email: u.Email})
	}
	return out
}
