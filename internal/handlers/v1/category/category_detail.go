package category

import (
	"context"
	"database/sql"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/moneta-app/finance-server/internal/service"
)

// CategoryDetailInput addresses a single category by ID.
type CategoryDetailInput struct {
	ID string `path:"id" format:"uuid" doc:"Category UUID"`
}

// PatchCategoryBody is the partial-update body; omitted fields are unchanged.
type PatchCategoryBody struct {
	Name        *string `json:"name,omitempty" minLength:"1" doc:"Category name"`
	Description *string `json:"description,omitempty" doc:"Category description"`
	Type        *string `json:"type,omitempty" enum:"income,expense" doc:"income or expense"`
}

// PatchCategoryInput is the Huma input for updating a category.
type PatchCategoryInput struct {
	ID   string `path:"id" format:"uuid" doc:"Category UUID"`
	Body PatchCategoryBody
}

// CategoryDetailOutput is the Huma output for reading or updating a category.
type CategoryDetailOutput struct {
	Body Category
}

// DeleteCategoryOutput is the Huma output for deleting a category.
type DeleteCategoryOutput struct {
	Status int
}

// categoryDetailService is the interface for single-category operations.
type categoryDetailService interface {
	GetCategory(ctx context.Context, userID, id uuid.UUID) (*service.Category, error)
	UpdateCategory(ctx context.Context, userID, id uuid.UUID, patch service.CategoryPatch) (*service.Category, error)
	DeleteCategory(ctx context.Context, userID, id uuid.UUID) error
}

// CategoryDetailHandler handles GET, PATCH, and DELETE on /categories/{id}.
type CategoryDetailHandler struct {
	CategoryService categoryDetailService
}

// NewCategoryDetailHandler creates a new CategoryDetailHandler.
func NewCategoryDetailHandler(svc categoryDetailService) *CategoryDetailHandler {
	return &CategoryDetailHandler{CategoryService: svc}
}

// Register registers the category detail endpoints with the Huma API.
func (h *CategoryDetailHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-category",
		Method:      http.MethodGet,
		Path:        "/categories/{id}",
		Summary:     "Get a category",
		Tags:        []string{"Categories"},
	}, h.handleGet)

	huma.Register(api, huma.Operation{
		OperationID: "update-category",
		Method:      http.MethodPatch,
		Path:        "/categories/{id}",
		Summary:     "Update a category",
		Description: "Applies a partial update to a category.",
		Tags:        []string{"Categories"},
	}, h.handlePatch)

	huma.Register(api, huma.Operation{
		OperationID:   "delete-category",
		Method:        http.MethodDelete,
		Path:          "/categories/{id}",
		Summary:       "Delete a category",
		Tags:          []string{"Categories"},
		DefaultStatus: http.StatusNoContent,
	}, h.handleDelete)
}

func (h *CategoryDetailHandler) handleGet(ctx context.Context, input *CategoryDetailInput) (*CategoryDetailOutput, error) {
	userID, err := userFromContext(ctx)
	if err != nil {
		return nil, err
	}
	id, err := parseCategoryID(input.ID)
	if err != nil {
		return nil, err
	}

	category, err := h.CategoryService.GetCategory(ctx, userID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, huma.NewError(http.StatusNotFound, "category not found")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to get category", err)
	}

	return &CategoryDetailOutput{Body: fromService(category)}, nil
}

func (h *CategoryDetailHandler) handlePatch(ctx context.Context, input *PatchCategoryInput) (*CategoryDetailOutput, error) {
	userID, err := userFromContext(ctx)
	if err != nil {
		return nil, err
	}
	id, err := parseCategoryID(input.ID)
	if err != nil {
		return nil, err
	}

	category, err := h.CategoryService.UpdateCategory(ctx, userID, id, service.CategoryPatch{
		Name:        input.Body.Name,
		Description: input.Body.Description,
		Type:        input.Body.Type,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, huma.NewError(http.StatusNotFound, "category not found")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to update category", err)
	}

	return &CategoryDetailOutput{Body: fromService(category)}, nil
}

func (h *CategoryDetailHandler) handleDelete(ctx context.Context, input *CategoryDetailInput) (*DeleteCategoryOutput, error) {
	userID, err := userFromContext(ctx)
	if err != nil {
		return nil, err
	}
	id, err := parseCategoryID(input.ID)
	if err != nil {
		return nil, err
	}

	if err := h.CategoryService.DeleteCategory(ctx, userID, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, huma.NewError(http.StatusNotFound, "category not found")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to delete category", err)
	}

	return &DeleteCategoryOutput{Status: http.StatusNoContent}, nil
}
