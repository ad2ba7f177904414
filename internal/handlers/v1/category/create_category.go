package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/moneta-app/finance-server/internal/service"
)

// CreateCategoryBody is the request body for creating a category.
type CreateCategoryBody struct {
	Name        string `json:"name" required:"true" minLength:"1" doc:"Category name"`
	Description string `json:"description,omitempty" doc:"Category description"`
	Type        string `json:"type" required:"true" enum:"income,expense" doc:"income or expense"`
}

// CreateCategoryInput is the Huma input for creating a category.
type CreateCategoryInput struct {
	Body CreateCategoryBody
}

// CreateCategoryOutput is the Huma output for creating a category.
type CreateCategoryOutput struct {
	Status int
	Body   Category
}

// categoryCreator is the interface for creating categories.
type categoryCreator interface {
	CreateCategory(ctx context.Context, userID uuid.UUID, name, description, categoryType string) (*service.Category, error)
}

// CreateCategoryHandler handles POST /categories.
type CreateCategoryHandler struct {
	CategoryService categoryCreator
}

// NewCreateCategoryHandler creates a new CreateCategoryHandler.
func NewCreateCategoryHandler(svc categoryCreator) *CreateCategoryHandler {
	return &CreateCategoryHandler{CategoryService: svc}
}

// Register registers the create category endpoint with the Huma API.
func (h *CreateCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-category",
		Method:        http.MethodPost,
		Path:          "/categories",
		Summary:       "Create a category",
		Description:   "Creates a new category owned by the caller.",
		Tags:          []string{"Categories"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *CreateCategoryHandler) handle(ctx context.Context, input *CreateCategoryInput) (*CreateCategoryOutput, error) {
	userID, err := userFromContext(ctx)
	if err != nil {
		return nil, err
	}

	category, err := h.CategoryService.CreateCategory(ctx, userID, input.Body.Name, input.Body.Description, input.Body.Type)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create category", err)
	}

	return &CreateCategoryOutput{
		Status: http.StatusCreated,
		Body:   fromService(category),
	}, nil
}
