package authn

import (
	"context"
	"database/sql"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/moneta-app/finance-server/internal/service"
)

// GetUserInput is the Huma input for reading the caller's profile.
type GetUserInput struct{}

// PatchUserBody is the partial profile update; omitted fields are unchanged.
type PatchUserBody struct {
	Email     *string `json:"email,omitempty" format:"email" doc:"Email address"`
	FirstName *string `json:"first_name,omitempty" doc:"Given name"`
	LastName  *string `json:"last_name,omitempty" doc:"Family name"`
}

// PatchUserInput is the Huma input for updating the caller's profile.
type PatchUserInput struct {
	Body PatchUserBody
}

// UserOutput is the Huma output for profile reads and updates.
type UserOutput struct {
	Body User
}

// profileService is the interface for profile access.
type profileService interface {
	GetUser(ctx context.Context, id uuid.UUID) (*service.User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, patch service.UserPatch) (*service.User, error)
}

// UserHandler handles GET and PATCH on /auth/user.
type UserHandler struct {
	UserService profileService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(svc profileService) *UserHandler {
	return &UserHandler{UserService: svc}
}

// Register registers the profile endpoints with the Huma API.
func (h *UserHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-user",
		Method:      http.MethodGet,
		Path:        "/auth/user",
		Summary:     "Get profile",
		Tags:        []string{"Auth"},
	}, h.handleGet)

	huma.Register(api, huma.Operation{
		OperationID: "update-user",
		Method:      http.MethodPatch,
		Path:        "/auth/user",
		Summary:     "Update profile",
		Description: "Applies a partial update to the caller's profile.",
		Tags:        []string{"Auth"},
	}, h.handlePatch)
}

func (h *UserHandler) handleGet(ctx context.Context, input *GetUserInput) (*UserOutput, error) {
	userID, err := userFromContext(ctx)
	if err != nil {
		return nil, err
	}

	user, err := h.UserService.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, huma.NewError(http.StatusNotFound, "user not found")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to get profile", err)
	}

	return &UserOutput{Body: fromService(user)}, nil
}

func (h *UserHandler) handlePatch(ctx context.Context, input *PatchUserInput) (*UserOutput, error) {
	userID, err := userFromContext(ctx)
	if err != nil {
		return nil, err
	}

	user, err := h.UserService.UpdateUser(ctx, userID, service.UserPatch{
		Email:     input.Body.Email,
		FirstName: input.Body.FirstName,
		LastName:  input.Body.LastName,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, huma.NewError(http.StatusNotFound, "user not found")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to update profile", err)
	}

	return &UserOutput{Body: fromService(user)}, nil
}
