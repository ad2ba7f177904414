package auth

import (
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

// ErrInvalidToken covers every token failure mode. Callers surface it as a
// generic unauthorized response so expired, forged, and mistyped tokens are
// indistinguishable to clients.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the JWT payload for both access and refresh tokens. TokenType
// keeps a refresh token from being replayed as an access token.
type Claims struct {
	UserID    string `json:"uid"`
	TokenType string `json:"typ"`
	jwt.RegisteredClaims
}

// TokenPair is an access/refresh pair issued at login.
type TokenPair struct {
	Access           string
	Refresh          string
	RefreshID        uuid.UUID
	RefreshExpiresAt time.Time
}

// TokenIssuer mints and validates HS256 token pairs.
type TokenIssuer struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewTokenIssuer(secret string, accessTTL, refreshTTL time.Duration) *TokenIssuer {
	return &TokenIssuer{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// IssuePair mints a new access/refresh pair for the given user. The refresh
// token carries a unique jti so logout can revoke it individually.
func (i *TokenIssuer) IssuePair(userID uuid.UUID) (*TokenPair, error) {
	access, _, err := i.IssueAccess(userID)
	if err != nil {
		return nil, err
	}

	refreshID := uuid.Must(uuid.NewV4())
	refreshExpiry := time.Now().Add(i.refreshTTL)
	refresh, err := i.sign(userID, tokenTypeRefresh, refreshID, refreshExpiry)
	if err != nil {
		return nil, err
	}

	return &TokenPair{
		Access:           access,
		Refresh:          refresh,
		RefreshID:        refreshID,
		RefreshExpiresAt: refreshExpiry,
	}, nil
}

// IssueAccess mints a standalone access token, used by the refresh flow.
func (i *TokenIssuer) IssueAccess(userID uuid.UUID) (string, time.Time, error) {
	expiry := time.Now().Add(i.accessTTL)
	token, err := i.sign(userID, tokenTypeAccess, uuid.Must(uuid.NewV4()), expiry)
	return token, expiry, err
}

func (i *TokenIssuer) sign(userID uuid.UUID, tokenType string, jti uuid.UUID, expiry time.Time) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:    userID.String(),
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiry),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

// ParseAccess validates an access token and returns the user it belongs to.
func (i *TokenIssuer) ParseAccess(tokenStr string) (uuid.UUID, error) {
	claims, err := i.parse(tokenStr, tokenTypeAccess)
	if err != nil {
		return uuid.Nil, err
	}
	userID, err := uuid.FromString(claims.UserID)
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}
	return userID, nil
}

// ParseRefresh validates a refresh token and returns its claims, including
// the jti checked against the revocation list.
func (i *TokenIssuer) ParseRefresh(tokenStr string) (*Claims, error) {
	return i.parse(tokenStr, tokenTypeRefresh)
}

func (i *TokenIssuer) parse(tokenStr, wantType string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return i.secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.TokenType != wantType {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
