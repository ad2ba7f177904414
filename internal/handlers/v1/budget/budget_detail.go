package budget

import (
	"context"
	"database/sql"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/moneta-app/finance-server/internal/service"
)

// BudgetDetailInput addresses a single budget by ID.
type BudgetDetailInput struct {
	ID string `path:"id" format:"uuid" doc:"Budget UUID"`
}

// PatchBudgetBody is the partial-update body; omitted fields are unchanged.
type PatchBudgetBody struct {
	CategoryID *string `json:"category,omitempty" format:"uuid" doc:"Category UUID"`
	Amount     *string `json:"amount,omitempty" doc:"Budgeted decimal amount"`
	StartDate  *string `json:"start_date,omitempty" doc:"First covered day (YYYY-MM-DD)"`
	EndDate    *string `json:"end_date,omitempty" doc:"Last covered day (YYYY-MM-DD)"`
}

// PatchBudgetInput is the Huma input for updating a budget.
type PatchBudgetInput struct {
	ID   string `path:"id" format:"uuid" doc:"Budget UUID"`
	Body PatchBudgetBody
}

// BudgetDetailOutput is the Huma output for reading or updating a budget.
type BudgetDetailOutput struct {
	Body Budget
}

// DeleteBudgetOutput is the Huma output for deleting a budget.
type DeleteBudgetOutput struct {
	Status int
}

// budgetDetailService is the interface for single-budget operations.
type budgetDetailService interface {
	GetBudget(ctx context.Context, userID, id uuid.UUID) (*service.Budget, error)
	UpdateBudget(ctx context.Context, userID, id uuid.UUID, patch service.BudgetPatch) (*service.Budget, error)
	DeleteBudget(ctx context.Context, userID, id uuid.UUID) error
}

// BudgetDetailHandler handles GET, PATCH, and DELETE on /budgets/{id}.
type BudgetDetailHandler struct {
	BudgetService budgetDetailService
}

// NewBudgetDetailHandler creates a new BudgetDetailHandler.
func NewBudgetDetailHandler(svc budgetDetailService) *BudgetDetailHandler {
	return &BudgetDetailHandler{BudgetService: svc}
}

// Register registers the budget detail endpoints with the Huma API.
func (h *BudgetDetailHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-budget",
		Method:      http.MethodGet,
		Path:        "/budgets/{id}",
		Summary:     "Get a budget",
		Tags:        []string{"Budgets"},
	}, h.handleGet)

	huma.Register(api, huma.Operation{
		OperationID: "update-budget",
		Method:      http.MethodPatch,
		Path:        "/budgets/{id}",
		Summary:     "Update a budget",
		Description: "Applies a partial update to a budget.",
		Tags:        []string{"Budgets"},
	}, h.handlePatch)

	huma.Register(api, huma.Operation{
		OperationID:   "delete-budget",
		Method:        http.MethodDelete,
		Path:          "/budgets/{id}",
		Summary:       "Delete a budget",
		Tags:          []string{"Budgets"},
		DefaultStatus: http.StatusNoContent,
	}, h.handleDelete)
}

// parsePatchBudgetInput validates and converts the patch body.
func parsePatchBudgetInput(body PatchBudgetBody) (service.BudgetPatch, error) {
	var patch service.BudgetPatch

	if body.CategoryID != nil {
		categoryID, err := uuid.FromString(*body.CategoryID)
		if err != nil {
			return patch, huma.NewError(http.StatusBadRequest, "invalid category id")
		}
		patch.CategoryID = &categoryID
	}
	if body.Amount != nil {
		amount, err := decimal.NewFromString(*body.Amount)
		if err != nil {
			return patch, huma.NewError(http.StatusBadRequest, "invalid amount")
		}
		if amount.IsNegative() {
			return patch, huma.NewError(http.StatusBadRequest, "amount must be non-negative")
		}
		patch.Amount = &amount
	}
	if body.StartDate != nil {
		startDate, err := parseBudgetDate(*body.StartDate, "start_date")
		if err != nil {
			return patch, err
		}
		patch.StartDate = &startDate
	}
	if body.EndDate != nil {
		endDate, err := parseBudgetDate(*body.EndDate, "end_date")
		if err != nil {
			return patch, err
		}
		patch.EndDate = &endDate
	}
	if patch.StartDate != nil && patch.EndDate != nil && patch.EndDate.Before(*patch.StartDate) {
		return patch, huma.NewError(http.StatusBadRequest, "end_date must not be before start_date")
	}

	return patch, nil
}

func (h *BudgetDetailHandler) handleGet(ctx context.Context, input *BudgetDetailInput) (*BudgetDetailOutput, error) {
	userID, err := userFromContext(ctx)
	if err != nil {
		return nil, err
	}
	id, err := parseBudgetID(input.ID)
	if err != nil {
		return nil, err
	}

	budget, err := h.BudgetService.GetBudget(ctx, userID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, huma.NewError(http.StatusNotFound, "budget not found")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to get budget", err)
	}

	return &BudgetDetailOutput{Body: fromService(budget)}, nil
}

func (h *BudgetDetailHandler) handlePatch(ctx context.Context, input *PatchBudgetInput) (*BudgetDetailOutput, error) {
	userID, err := userFromContext(ctx)
	if err != nil {
		return nil, err
	}
	id, err := parseBudgetID(input.ID)
	if err != nil {
		return nil, err
	}
	patch, err := parsePatchBudgetInput(input.Body)
	if err != nil {
		return nil, err
	}

	budget, err := h.BudgetService.UpdateBudget(ctx, userID, id, patch)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, huma.NewError(http.StatusNotFound, "budget not found")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to update budget", err)
	}

	return &BudgetDetailOutput{Body: fromService(budget)}, nil
}

func (h *BudgetDetailHandler) handleDelete(ctx context.Context, input *BudgetDetailInput) (*DeleteBudgetOutput, error) {
	userID, err := userFromContext(ctx)
	if err != nil {
		return nil, err
	}
	id, err := parseBudgetID(input.ID)
	if err != nil {
		return nil, err
	}

	if err := h.BudgetService.DeleteBudget(ctx, userID, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, huma.NewError(http.StatusNotFound, "budget not found")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to delete budget", err)
	}

	return &DeleteBudgetOutput{Status: http.StatusNoContent}, nil
}
