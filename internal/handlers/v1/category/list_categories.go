package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/moneta-app/finance-server/internal/logging"
	"github.com/moneta-app/finance-server/internal/service"
)

// ListCategoriesInput is the Huma input for listing categories.
type ListCategoriesInput struct{}

// ListCategoriesResponseBody is the response body for listing categories.
// Empty results carry a message and a hint that defaults can be seeded.
type ListCategoriesResponseBody struct {
	Results               []Category `json:"results" doc:"The caller's categories"`
	Message               string     `json:"message,omitempty" doc:"Set when no categories exist"`
	CanInitializeDefaults bool       `json:"can_initialize_defaults,omitempty" doc:"Set when no categories exist"`
}

// ListCategoriesOutput is the Huma output for listing categories.
type ListCategoriesOutput struct {
	Body ListCategoriesResponseBody
}

// categoryLister is the interface for listing categories.
type categoryLister interface {
	ListCategories(ctx context.Context, userID uuid.UUID) ([]*service.Category, error)
}

// ListCategoriesHandler handles GET /categories.
type ListCategoriesHandler struct {
	CategoryService categoryLister
}

// NewListCategoriesHandler creates a new ListCategoriesHandler.
func NewListCategoriesHandler(svc categoryLister) *ListCategoriesHandler {
	return &ListCategoriesHandler{CategoryService: svc}
}

// Register registers the list categories endpoint with the Huma API.
func (h *ListCategoriesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-categories",
		Method:      http.MethodGet,
		Path:        "/categories",
		Summary:     "List categories",
		Description: "Returns all of the caller's categories.",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *ListCategoriesHandler) handle(ctx context.Context, input *ListCategoriesInput) (*ListCategoriesOutput, error) {
	userID, err := userFromContext(ctx)
	if err != nil {
		return nil, err
	}

	logData := logging.GetLogData(ctx)
	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listCategoriesMs")
	}
	categories, err := h.CategoryService.ListCategories(ctx, userID)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list categories", err)
	}

	resp := ListCategoriesResponseBody{Results: make([]Category, len(categories))}
	for i, category := range categories {
		resp.Results[i] = fromService(category)
	}
	if len(categories) == 0 {
		resp.Message = "No categories found. Would you like to initialize default categories?"
		resp.CanInitializeDefaults = true
	}

	if logData != nil {
		logData.AddData("categoryCount", len(categories))
	}

	return &ListCategoriesOutput{Body: resp}, nil
}
