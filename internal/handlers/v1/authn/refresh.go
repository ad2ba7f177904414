package authn

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/moneta-app/finance-server/internal/auth"
)

// RefreshBody is the refresh request body.
type RefreshBody struct {
	Refresh string `json:"refresh" required:"true" doc:"Refresh token"`
}

// RefreshInput is the Huma input for refreshing an access token.
type RefreshInput struct {
	Body RefreshBody
}

// RefreshResponseBody carries the newly minted access token.
type RefreshResponseBody struct {
	Access    string `json:"access" doc:"Short-lived access token"`
	ExpiresAt string `json:"expires_at" doc:"RFC3339 access token expiry"`
}

// RefreshOutput is the Huma output for refreshing an access token.
type RefreshOutput struct {
	Body RefreshResponseBody
}

// tokenRefresher is the interface for minting access tokens from refresh tokens.
type tokenRefresher interface {
	Refresh(ctx context.Context, refreshToken string) (string, time.Time, error)
}

// RefreshHandler handles POST /auth/refresh.
type RefreshHandler struct {
	AuthService tokenRefresher
}

// NewRefreshHandler creates a new RefreshHandler.
func NewRefreshHandler(svc tokenRefresher) *RefreshHandler {
	return &RefreshHandler{AuthService: svc}
}

// Register registers the refresh endpoint with the Huma API.
func (h *RefreshHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "refresh",
		Method:      http.MethodPost,
		Path:        "/auth/refresh",
		Summary:     "Refresh access token",
		Description: "Mints a new access token from an unrevoked refresh token.",
		Tags:        []string{"Auth"},
		Metadata:    map[string]any{"public": true},
	}, h.handle)
}

func (h *RefreshHandler) handle(ctx context.Context, input *RefreshInput) (*RefreshOutput, error) {
	access, expiresAt, err := h.AuthService.Refresh(ctx, input.Body.Refresh)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidToken) {
			return nil, huma.NewError(http.StatusUnauthorized, "invalid or revoked refresh token")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to refresh token", err)
	}

	return &RefreshOutput{
		Body: RefreshResponseBody{
			Access:    access,
			ExpiresAt: expiresAt.Format(time.RFC3339),
		},
	}, nil
}
