package service

import (
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/moneta-app/finance-server/internal/storage/sqlconfig"
)

// User represents a user in the service layer. The password hash never
// leaves the storage model.
type User struct {
	ID        uuid.UUID
	Username  string
	Email     string
	FirstName string
	LastName  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UserRegistration is the signup input.
type UserRegistration struct {
	Username  string
	Email     string
	FirstName string
	LastName  string
	Password  string
}

// UserPatch is a partial profile update; nil fields are left unchanged.
type UserPatch struct {
	Email     *string
	FirstName *string
	LastName  *string
}

func userFromStorage(row *sqlconfig.User) *User {
	return &User{
		ID:        row.ID,
		Username:  row.Username,
		Email:     row.Email,
		FirstName: row.FirstName,
		LastName:  row.LastName,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
