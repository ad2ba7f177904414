package authn

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/moneta-app/finance-server/internal/auth"
	"github.com/moneta-app/finance-server/internal/service"
)

// User is the wire representation of a user profile. The password never
// appears in responses.
type User struct {
	ID        string `json:"id" doc:"User UUID"`
	Username  string `json:"username" doc:"Unique username"`
	Email     string `json:"email" doc:"Email address"`
	FirstName string `json:"first_name" doc:"Given name"`
	LastName  string `json:"last_name" doc:"Family name"`
	CreatedAt string `json:"created_at" doc:"RFC3339 creation time"`
	UpdatedAt string `json:"updated_at" doc:"RFC3339 last update time"`
}

func fromService(u *service.User) User {
	return User{
		ID:        u.ID.String(),
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
		UpdatedAt: u.UpdatedAt.Format(time.RFC3339),
	}
}

func userFromContext(ctx context.Context) (uuid.UUID, error) {
	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		return uuid.Nil, huma.NewError(http.StatusUnauthorized, "authentication required")
	}
	return userID, nil
}
