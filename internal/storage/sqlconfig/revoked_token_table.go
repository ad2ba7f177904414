package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/scan"
)

var _ IRevokedTokenTable = (*RevokedTokensTable)(nil)

// RevokedTokensTable provides access to the revoked_tokens table.
type RevokedTokensTable struct {
	exec bob.Executor
}

// NewRevokedTokensTable creates a RevokedTokensTable bound to the given executor.
func NewRevokedTokensTable(exec bob.Executor) RevokedTokensTable {
	return RevokedTokensTable{exec: exec}
}

// Revoke blacklists a refresh token. Revoking the same token twice is a no-op.
func (t *RevokedTokensTable) Revoke(ctx context.Context, jti, userID uuid.UUID, expiresAt time.Time) error {
	q := psql.RawQuery(
		`INSERT INTO revoked_tokens (jti, user_id, expires_at) VALUES (?, ?, ?)
		 ON CONFLICT (jti) DO NOTHING`,
		jti, userID, expiresAt,
	)
	_, err := bob.Exec(ctx, t.exec, q)
	return err
}

// IsRevoked reports whether the given refresh token jti has been blacklisted.
func (t *RevokedTokensTable) IsRevoked(ctx context.Context, jti uuid.UUID) (bool, error) {
	q := psql.RawQuery(
		`SELECT EXISTS (SELECT 1 FROM revoked_tokens WHERE jti = ?)`,
		jti,
	)
	return bob.One(ctx, t.exec, q, scan.SingleColumnMapper[bool])
}
