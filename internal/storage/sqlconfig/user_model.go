package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
)

// User represents a user record.
type User struct {
	ID           uuid.UUID `db:"id"`
	Username     string    `db:"username"`
	Email        string    `db:"email"`
	FirstName    string    `db:"first_name"`
	LastName     string    `db:"last_name"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

// UserCreate is the input for creating a new user.
type UserCreate struct {
	Username     string
	Email        string
	FirstName    string
	LastName     string
	PasswordHash string
}

// UserPatch is a partial update; nil fields are left unchanged.
type UserPatch struct {
	Email     *string
	FirstName *string
	LastName  *string
}

// IUserTable defines the interface for user storage operations.
// This abstraction allows swapping the implementation without changing callers.
type IUserTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	Insert(ctx context.Context, create *UserCreate) (*User, error)
	Update(ctx context.Context, id uuid.UUID, patch *UserPatch) (*User, error)
}
