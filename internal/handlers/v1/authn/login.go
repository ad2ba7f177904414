package authn

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/moneta-app/finance-server/internal/logging"
	"github.com/moneta-app/finance-server/internal/service"
)

// LoginBody is the login request body.
type LoginBody struct {
	Username string `json:"username" required:"true" doc:"Username"`
	Password string `json:"password" required:"true" doc:"Password"`
}

// LoginInput is the Huma input for login.
type LoginInput struct {
	Body LoginBody
}

// LoginResponseBody carries the token pair and the authenticated profile.
type LoginResponseBody struct {
	Access  string `json:"access" doc:"Short-lived access token"`
	Refresh string `json:"refresh" doc:"Long-lived refresh token"`
	User    User   `json:"user" doc:"The authenticated user"`
}

// LoginOutput is the Huma output for login.
type LoginOutput struct {
	Body LoginResponseBody
}

// credentialChecker is the interface for validating credentials.
type credentialChecker interface {
	Login(ctx context.Context, username, password string) (*service.TokenPair, *service.User, error)
}

// LoginHandler handles POST /auth/login.
type LoginHandler struct {
	AuthService credentialChecker
}

// NewLoginHandler creates a new LoginHandler.
func NewLoginHandler(svc credentialChecker) *LoginHandler {
	return &LoginHandler{AuthService: svc}
}

// Register registers the login endpoint with the Huma API.
func (h *LoginHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "login",
		Method:      http.MethodPost,
		Path:        "/auth/login",
		Summary:     "Log in",
		Description: "Validates credentials and returns an access/refresh token pair.",
		Tags:        []string{"Auth"},
		Metadata:    map[string]any{"public": true},
	}, h.handle)
}

func (h *LoginHandler) handle(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	logData := logging.GetLogData(ctx)
	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("loginMs")
	}
	pair, user, err := h.AuthService.Login(ctx, input.Body.Username, input.Body.Password)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		// Unknown username and wrong password get the same answer.
		if errors.Is(err, service.ErrInvalidCredentials) {
			return nil, huma.NewError(http.StatusUnauthorized, "invalid credentials")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to log in", err)
	}

	return &LoginOutput{
		Body: LoginResponseBody{
			Access:  pair.Access,
			Refresh: pair.Refresh,
			User:    fromService(user),
		},
	}, nil
}
