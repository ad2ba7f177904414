package auth

import (
	"context"

	"github.com/gofrs/uuid/v5"
)

type userIDKey struct{}

// UserIDKey is the context key under which the authenticated user's ID is
// stored by the API auth middleware.
var UserIDKey = userIDKey{}

// UserIDFromContext returns the authenticated user's ID. Every store and
// service call takes this explicitly; nothing downstream reads the context.
func UserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(UserIDKey).(uuid.UUID)
	return id, ok
}
