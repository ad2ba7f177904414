package budget

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/moneta-app/finance-server/internal/logging"
	"github.com/moneta-app/finance-server/internal/service"
)

// CreateBudgetBody is the request body for creating a budget.
type CreateBudgetBody struct {
	CategoryID string `json:"category" required:"true" format:"uuid" doc:"Category UUID"`
	Amount     string `json:"amount" required:"true" doc:"Budgeted decimal amount"`
	StartDate  string `json:"start_date" required:"true" doc:"First covered day (YYYY-MM-DD)"`
	EndDate    string `json:"end_date" required:"true" doc:"Last covered day (YYYY-MM-DD)"`
}

// CreateBudgetInput is the Huma input for creating a budget.
type CreateBudgetInput struct {
	Body CreateBudgetBody
}

// CreateBudgetResponseBody is the response body for creating a budget.
// Updated reports whether an overlapping budget was replaced instead of a
// new one being created.
type CreateBudgetResponseBody struct {
	Budget
	Updated bool `json:"updated" doc:"True when an existing overlapping budget was updated"`
}

// CreateBudgetOutput is the Huma output for creating a budget.
type CreateBudgetOutput struct {
	Status int
	Body   CreateBudgetResponseBody
}

// budgetCreator is the interface for the upsert-on-create operation.
type budgetCreator interface {
	CreateBudget(ctx context.Context, userID uuid.UUID, create service.BudgetCreate) (*service.Budget, bool, error)
}

// CreateBudgetHandler handles POST /budgets.
type CreateBudgetHandler struct {
	BudgetService budgetCreator
}

// NewCreateBudgetHandler creates a new CreateBudgetHandler.
func NewCreateBudgetHandler(svc budgetCreator) *CreateBudgetHandler {
	return &CreateBudgetHandler{BudgetService: svc}
}

// Register registers the create budget endpoint with the Huma API.
func (h *CreateBudgetHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-budget",
		Method:        http.MethodPost,
		Path:          "/budgets",
		Summary:       "Create a budget",
		Description:   "Creates a budget for a category and date range. When the caller already has a budget for the category with an overlapping range, that budget is updated instead.",
		Tags:          []string{"Budgets"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

// parseCreateBudgetInput validates and converts the request body.
func parseCreateBudgetInput(input *CreateBudgetInput) (service.BudgetCreate, error) {
	var create service.BudgetCreate

	categoryID, err := uuid.FromString(input.Body.CategoryID)
	if err != nil {
		return create, huma.NewError(http.StatusBadRequest, "invalid category id")
	}

	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return create, huma.NewError(http.StatusBadRequest, "invalid amount")
	}
	if amount.IsNegative() {
		return create, huma.NewError(http.StatusBadRequest, "amount must be non-negative")
	}

	startDate, err := parseBudgetDate(input.Body.StartDate, "start_date")
	if err != nil {
		return create, err
	}
	endDate, err := parseBudgetDate(input.Body.EndDate, "end_date")
	if err != nil {
		return create, err
	}
	if endDate.Before(startDate) {
		return create, huma.NewError(http.StatusBadRequest, "end_date must not be before start_date")
	}

	return service.BudgetCreate{
		CategoryID: categoryID,
		Amount:     amount,
		StartDate:  startDate,
		EndDate:    endDate,
	}, nil
}

func (h *CreateBudgetHandler) handle(ctx context.Context, input *CreateBudgetInput) (*CreateBudgetOutput, error) {
	userID, err := userFromContext(ctx)
	if err != nil {
		return nil, err
	}

	create, err := parseCreateBudgetInput(input)
	if err != nil {
		return nil, err
	}

	logData := logging.GetLogData(ctx)
	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createBudgetMs")
	}
	budget, updated, err := h.BudgetService.CreateBudget(ctx, userID, create)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create budget", err)
	}

	status := http.StatusCreated
	if updated {
		status = http.StatusOK
	}
	if logData != nil {
		logData.AddData("budgetUpdated", updated)
	}

	return &CreateBudgetOutput{
		Status: status,
		Body: CreateBudgetResponseBody{
			Budget:  fromService(budget),
			Updated: updated,
		},
	}, nil
}
