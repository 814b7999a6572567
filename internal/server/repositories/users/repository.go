// Package users declares the user store contract and its PostgreSQL
// implementation.
package users

import (
	"context"

	"github.com/dmitrijs2005/idkeeper/internal/server/models"
)

// Column names a mutable users column.
type Column string

const (
	ColumnUserName     Column = "username"
	ColumnPasswordHash Column = "pwd_hash"
	ColumnEmail        Column = "email"
)

// Repository is the user store.
//
// Lookups return common.ErrorNotFound when no row matches. Writes that break
// a unique constraint return a common.FieldError of kind common.ErrorConflict.
type Repository interface {
	FindByUserName(ctx context.Context, userName string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)

	// Create inserts user and sets user.ID from the generated key.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	UpdateField(ctx context.Context, id int64, column Column, value string) error
	Delete(ctx context.Context, id int64) error

	// List returns every user ordered by id.
	List(ctx context.Context) ([]*models.User, error)
}
