// Package services contains server-side business logic. UserService handles
// registration, authentication, session tokens and account management.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/idkeeper/internal/common"
	"github.com/dmitrijs2005/idkeeper/internal/cryptox"
	"github.com/dmitrijs2005/idkeeper/internal/dbx"
	"github.com/dmitrijs2005/idkeeper/internal/server/models"
	"github.com/dmitrijs2005/idkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/idkeeper/internal/server/repositories/users"
	"github.com/dmitrijs2005/idkeeper/internal/validation"
)

// TokenRegistry issues and resolves session tokens.
type TokenRegistry interface {
	Issue(userID int64) (string, error)
	Resolve(token string) (int64, bool)
}

type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	validator   *validation.Validator
	hasher      cryptox.Hasher
	tokens      TokenRegistry
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, v *validation.Validator,
	h cryptox.Hasher, t TokenRegistry) *UserService {
	return &UserService{
		db:          db,
		repomanager: m,
		validator:   v,
		hasher:      h,
		tokens:      t,
	}
}

// Register validates the fields in order username, password, email, checks
// that neither username nor email is taken and stores the new user.
func (s *UserService) Register(ctx context.Context, username, password, email string) (int64, error) {
	if !s.validator.IsValidUsername(username) {
		return 0, common.NewValidationError(common.FieldUsername)
	}
	if !s.validator.IsValidPassword(password) {
		return 0, common.NewValidationError(common.FieldPassword)
	}
	if !s.validator.IsValidEmail(email) {
		return 0, common.NewValidationError(common.FieldEmail)
	}

	var id int64
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)

		if err := ensureFree(ctx, repo.FindByUserName, username, common.FieldUsername); err != nil {
			return err
		}
		if err := ensureFree(ctx, repo.FindByEmail, email, common.FieldEmail); err != nil {
			return err
		}

		u, err := repo.Create(ctx, &models.User{
			UserName:     username,
			PasswordHash: s.hasher.Hash(password),
			Email:        email,
		})
		if err != nil {
			return err
		}
		id = u.ID
		return nil
	})
	if err != nil {
		return 0, err
	}

	return id, nil
}

func ensureFree(ctx context.Context, find func(context.Context, string) (*models.User, error), value, field string) error {
	_, err := find(ctx, value)
	switch {
	case err == nil:
		return common.NewConflictError(field)
	case errors.Is(err, common.ErrorNotFound):
		return nil
	default:
		return err
	}
}

// Authenticate resolves login as an email or a username and checks password
// against the stored hash. It returns the user id.
func (s *UserService) Authenticate(ctx context.Context, login, password string) (int64, error) {
	repo := s.repomanager.Users(s.db)

	var (
		user *models.User
		err  error
	)
	switch s.validator.ClassifyLogin(login) {
	case validation.LoginEmail:
		user, err = repo.FindByEmail(ctx, login)
	case validation.LoginUsername:
		user, err = repo.FindByUserName(ctx, login)
	default:
		return 0, common.ErrorInvalidLoginFormat
	}
	if err != nil {
		return 0, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return 0, common.ErrorInvalidCredentials
	}

	return user.ID, nil
}

// Login authenticates and issues a session token, replacing any earlier
// token of the same user.
func (s *UserService) Login(ctx context.Context, login, password string) (string, error) {
	id, err := s.Authenticate(ctx, login, password)
	if err != nil {
		return "", err
	}

	token, err := s.tokens.Issue(id)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}
	return token, nil
}

// Authorize returns the user a session token belongs to.
func (s *UserService) Authorize(token string) (int64, error) {
	id, ok := s.tokens.Resolve(token)
	if !ok {
		return 0, common.ErrInvalidToken
	}
	return id, nil
}

// UpdateField changes one attribute of the user. key is one of username,
// password or email; a password is stored hashed.
func (s *UserService) UpdateField(ctx context.Context, userID int64, key, value string) error {
	var (
		column users.Column
		valid  bool
	)
	switch key {
	case common.FieldUsername:
		column, valid = users.ColumnUserName, s.validator.IsValidUsername(value)
	case common.FieldPassword:
		column, valid = users.ColumnPasswordHash, s.validator.IsValidPassword(value)
		if valid {
			value = s.hasher.Hash(value)
		}
	case common.FieldEmail:
		column, valid = users.ColumnEmail, s.validator.IsValidEmail(value)
	default:
		return common.NewValidationError(common.FieldKey)
	}
	if !valid {
		return common.NewValidationError(key)
	}

	return s.repomanager.Users(s.db).UpdateField(ctx, userID, column, value)
}

// Delete removes the user.
//
// TODO: revoke the user's session token; it keeps resolving to the deleted id
// until the process restarts.
func (s *UserService) Delete(ctx context.Context, userID int64) error {
	return s.repomanager.Users(s.db).Delete(ctx, userID)
}

// List returns all users ordered by id.
func (s *UserService) List(ctx context.Context) ([]*models.User, error) {
	return s.repomanager.Users(s.db).List(ctx)
}
