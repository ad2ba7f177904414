package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/moneta-app/finance-server/internal/auth"
	"github.com/moneta-app/finance-server/internal/storage"
)

// ErrInvalidCredentials is returned for any login failure. Unknown usernames
// and wrong passwords are indistinguishable to avoid user enumeration.
var ErrInvalidCredentials = errors.New("invalid credentials")

// TokenPair is the access/refresh pair returned by Login.
type TokenPair struct {
	Access  string
	Refresh string
}

// AuthService issues, refreshes, and revokes tokens.
type AuthService struct {
	storage *storage.Storage
	issuer  *auth.TokenIssuer
}

// NewAuthService creates a new AuthService.
func NewAuthService(store *storage.Storage, issuer *auth.TokenIssuer) *AuthService {
	return &AuthService{storage: store, issuer: issuer}
}

// Login validates credentials and mints a token pair.
func (s *AuthService) Login(ctx context.Context, username, password string) (*TokenPair, *User, error) {
	row, err := s.storage.Users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if !auth.CheckPassword(password, row.PasswordHash) {
		return nil, nil, ErrInvalidCredentials
	}

	pair, err := s.issuer.IssuePair(row.ID)
	if err != nil {
		return nil, nil, err
	}

	return &TokenPair{Access: pair.Access, Refresh: pair.Refresh}, userFromStorage(row), nil
}

// Refresh mints a new access token from an unrevoked refresh token.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, time.Time, error) {
	claims, err := s.issuer.ParseRefresh(refreshToken)
	if err != nil {
		return "", time.Time{}, auth.ErrInvalidToken
	}

	jti, err := uuid.FromString(claims.ID)
	if err != nil {
		return "", time.Time{}, auth.ErrInvalidToken
	}
	revoked, err := s.storage.RevokedTokens.IsRevoked(ctx, jti)
	if err != nil {
		return "", time.Time{}, err
	}
	if revoked {
		return "", time.Time{}, auth.ErrInvalidToken
	}

	userID, err := uuid.FromString(claims.UserID)
	if err != nil {
		return "", time.Time{}, auth.ErrInvalidToken
	}
	return s.issuer.IssueAccess(userID)
}

// Logout revokes the presented refresh token so it can no longer mint access
// tokens. Revoking an already-revoked token succeeds.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	claims, err := s.issuer.ParseRefresh(refreshToken)
	if err != nil {
		return auth.ErrInvalidToken
	}

	jti, err := uuid.FromString(claims.ID)
	if err != nil {
		return auth.ErrInvalidToken
	}
	userID, err := uuid.FromString(claims.UserID)
	if err != nil {
		return auth.ErrInvalidToken
	}

	var expiresAt time.Time
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}
	return s.storage.RevokedTokens.Revoke(ctx, jti, userID, expiresAt)
}
