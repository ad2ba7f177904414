package category

import (
	"context"
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/moneta-app/finance-server/internal/logging"
)

// InitializeDefaultsInput is the Huma input for seeding default categories.
type InitializeDefaultsInput struct{}

// InitializeDefaultsResponseBody reports how the seeding went.
type InitializeDefaultsResponseBody struct {
	Message         string `json:"message" doc:"Human-readable result"`
	CategoriesAdded int    `json:"categories_added" doc:"Number of categories created by this call"`
	TotalCategories int    `json:"total_categories" doc:"The caller's category count after seeding"`
}

// InitializeDefaultsOutput is the Huma output for seeding default categories.
type InitializeDefaultsOutput struct {
	Body InitializeDefaultsResponseBody
}

// defaultsInitializer is the interface for seeding default categories.
type defaultsInitializer interface {
	InitializeDefaults(ctx context.Context, userID uuid.UUID) (created, total int, err error)
}

// InitializeDefaultsHandler handles POST /categories/initialize_defaults.
type InitializeDefaultsHandler struct {
	CategoryService defaultsInitializer
}

// NewInitializeDefaultsHandler creates a new InitializeDefaultsHandler.
func NewInitializeDefaultsHandler(svc defaultsInitializer) *InitializeDefaultsHandler {
	return &InitializeDefaultsHandler{CategoryService: svc}
}

// Register registers the initialize defaults endpoint with the Huma API.
func (h *InitializeDefaultsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "initialize-default-categories",
		Method:      http.MethodPost,
		Path:        "/categories/initialize_defaults",
		Summary:     "Initialize default categories",
		Description: "Seeds the starter category catalog. Idempotent: existing names are left untouched.",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *InitializeDefaultsHandler) handle(ctx context.Context, input *InitializeDefaultsInput) (*InitializeDefaultsOutput, error) {
	userID, err := userFromContext(ctx)
	if err != nil {
		return nil, err
	}

	logData := logging.GetLogData(ctx)
	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("initializeDefaultsMs")
	}
	created, total, err := h.CategoryService.InitializeDefaults(ctx, userID)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to initialize default categories", err)
	}

	return &InitializeDefaultsOutput{
		Body: InitializeDefaultsResponseBody{
			Message:         fmt.Sprintf("%d default categories have been created.", created),
			CategoriesAdded: created,
			TotalCategories: total,
		},
	}, nil
}
