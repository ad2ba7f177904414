package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
)

// RevokedToken is a blacklisted refresh token, identified by its jti claim.
// Rows become garbage once expires_at passes; the token could no longer be
// redeemed anyway.
type RevokedToken struct {
	JTI       uuid.UUID `db:"jti"`
	UserID    uuid.UUID `db:"user_id"`
	RevokedAt time.Time `db:"revoked_at"`
	ExpiresAt time.Time `db:"expires_at"`
}

// IRevokedTokenTable defines the interface for the refresh-token blacklist.
type IRevokedTokenTable interface {
	Revoke(ctx context.Context, jti, userID uuid.UUID, expiresAt time.Time) error
	IsRevoked(ctx context.Context, jti uuid.UUID) (bool, error)
}
