package service

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/lib/pq"

	"github.com/moneta-app/finance-server/internal/auth"
	"github.com/moneta-app/finance-server/internal/operator"
	"github.com/moneta-app/finance-server/internal/operator/actions"
	"github.com/moneta-app/finance-server/internal/storage"
	"github.com/moneta-app/finance-server/internal/storage/sqlconfig"
)

// ErrUsernameTaken is returned when a signup collides with an existing username.
var ErrUsernameTaken = errors.New("username already taken")

const pqUniqueViolation = "23505"

// UserService handles account creation and profile access. Registration goes
// through the write operator so the account and its starter categories are
// committed together.
type UserService struct {
	storage  *storage.Storage
	operator *operator.OperatorDelegator
}

// NewUserService creates a new UserService.
func NewUserService(store *storage.Storage, op *operator.OperatorDelegator) *UserService {
	return &UserService{storage: store, operator: op}
}

// Register creates a new account with its default categories seeded in the
// same transaction. Seeding failure fails the signup.
func (s *UserService) Register(ctx context.Context, registration UserRegistration) (*User, error) {
	passwordHash, err := auth.HashPassword(registration.Password)
	if err != nil {
		return nil, err
	}

	action := &actions.RegisterUser{
		Username:     registration.Username,
		Email:        registration.Email,
		FirstName:    registration.FirstName,
		LastName:     registration.LastName,
		PasswordHash: passwordHash,
	}
	if err := s.operator.Process(ctx, action); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}

	return userFromStorage(action.Result), nil
}

// GetUser retrieves a user's profile.
func (s *UserService) GetUser(ctx context.Context, id uuid.UUID) (*User, error) {
	row, err := s.storage.Users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return userFromStorage(row), nil
}

// UpdateUser applies a partial profile update.
func (s *UserService) UpdateUser(ctx context.Context, id uuid.UUID, patch UserPatch) (*User, error) {
	row, err := s.storage.Users.Update(ctx, id, &sqlconfig.UserPatch{
		Email:     patch.Email,
		FirstName: patch.FirstName,
		LastName:  patch.LastName,
	})
	if err != nil {
		return nil, err
	}
	return userFromStorage(row), nil
}
