package authn

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/moneta-app/finance-server/internal/logging"
	"github.com/moneta-app/finance-server/internal/service"
)

// RegisterBody is the signup request body.
type RegisterBody struct {
	Username  string `json:"username" required:"true" minLength:"1" maxLength:"150" doc:"Unique username"`
	Email     string `json:"email" required:"true" format:"email" doc:"Email address"`
	Password  string `json:"password" required:"true" minLength:"8" doc:"Password, at least 8 characters"`
	FirstName string `json:"first_name,omitempty" doc:"Given name"`
	LastName  string `json:"last_name,omitempty" doc:"Family name"`
}

// RegisterInput is the Huma input for signup.
type RegisterInput struct {
	Body RegisterBody
}

// RegisterOutput is the Huma output for signup.
type RegisterOutput struct {
	Status int
	Body   User
}

// registrar is the interface for creating accounts.
type registrar interface {
	Register(ctx context.Context, registration service.UserRegistration) (*service.User, error)
}

// RegisterHandler handles POST /auth/register.
type RegisterHandler struct {
	UserService registrar
}

// NewRegisterHandler creates a new RegisterHandler.
func NewRegisterHandler(svc registrar) *RegisterHandler {
	return &RegisterHandler{UserService: svc}
}

// Register registers the signup endpoint with the Huma API.
func (h *RegisterHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "register",
		Method:        http.MethodPost,
		Path:          "/auth/register",
		Summary:       "Register",
		Description:   "Creates an account and seeds its default categories in one transaction.",
		Tags:          []string{"Auth"},
		DefaultStatus: http.StatusCreated,
		Metadata:      map[string]any{"public": true},
	}, h.handle)
}

func (h *RegisterHandler) handle(ctx context.Context, input *RegisterInput) (*RegisterOutput, error) {
	logData := logging.GetLogData(ctx)
	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("registerMs")
	}
	user, err := h.UserService.Register(ctx, service.UserRegistration{
		Username:  input.Body.Username,
		Email:     input.Body.Email,
		FirstName: input.Body.FirstName,
		LastName:  input.Body.LastName,
		Password:  input.Body.Password,
	})
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		if errors.Is(err, service.ErrUsernameTaken) {
			return nil, huma.NewError(http.StatusConflict, "username already taken")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to register", err)
	}

	return &RegisterOutput{
		Status: http.StatusCreated,
		Body:   fromService(user),
	}, nil
}
