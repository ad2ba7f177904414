package authn

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/moneta-app/finance-server/internal/auth"
)

// LogoutBody is the logout request body.
type LogoutBody struct {
	Refresh string `json:"refresh" required:"true" doc:"Refresh token to revoke"`
}

// LogoutInput is the Huma input for logout.
type LogoutInput struct {
	Body LogoutBody
}

// LogoutResponseBody confirms the revocation.
type LogoutResponseBody struct {
	Message string `json:"message" doc:"Confirmation message"`
}

// LogoutOutput is the Huma output for logout.
type LogoutOutput struct {
	Body LogoutResponseBody
}

// tokenRevoker is the interface for revoking refresh tokens.
type tokenRevoker interface {
	Logout(ctx context.Context, refreshToken string) error
}

// LogoutHandler handles POST /auth/logout.
type LogoutHandler struct {
	AuthService tokenRevoker
}

// NewLogoutHandler creates a new LogoutHandler.
func NewLogoutHandler(svc tokenRevoker) *LogoutHandler {
	return &LogoutHandler{AuthService: svc}
}

// Register registers the logout endpoint with the Huma API.
func (h *LogoutHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "logout",
		Method:      http.MethodPost,
		Path:        "/auth/logout",
		Summary:     "Log out",
		Description: "Revokes the presented refresh token so it can no longer mint access tokens.",
		Tags:        []string{"Auth"},
	}, h.handle)
}

func (h *LogoutHandler) handle(ctx context.Context, input *LogoutInput) (*LogoutOutput, error) {
	if _, err := userFromContext(ctx); err != nil {
		return nil, err
	}

	if err := h.AuthService.Logout(ctx, input.Body.Refresh); err != nil {
		if errors.Is(err, auth.ErrInvalidToken) {
			return nil, huma.NewError(http.StatusBadRequest, "invalid refresh token")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to log out", err)
	}

	return &LogoutOutput{
		Body: LogoutResponseBody{Message: "Successfully logged out."},
	}, nil
}
