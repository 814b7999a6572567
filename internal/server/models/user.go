// Package models holds the records persisted by the server repositories.
package models

// User is a row of the users table. PasswordHash is the hex digest of the
// password, never the password itself.
type User struct {
	ID           int64
	UserName     string
	PasswordHash string
	Email        string
}
