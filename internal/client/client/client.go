package client

import "context"

// User is a user record as listed by the server.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type Client interface {
	Register(ctx context.Context, username, password, email string) (int64, error)
	Login(ctx context.Context, login, password string) (string, error)
	ListUsers(ctx context.Context, token string) ([]User, error)
	UpdateUser(ctx context.Context, token, key, value string) error
	DeleteUser(ctx context.Context, token string) error
}
