package budget

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/moneta-app/finance-server/internal/logging"
	"github.com/moneta-app/finance-server/internal/service"
)

// ListBudgetsInput is the Huma input for listing budgets.
type ListBudgetsInput struct{}

// ListBudgetsResponseBody is the response body for listing budgets.
type ListBudgetsResponseBody struct {
	Results []Budget `json:"results" doc:"The caller's budgets with spending attached"`
}

// ListBudgetsOutput is the Huma output for listing budgets.
type ListBudgetsOutput struct {
	Body ListBudgetsResponseBody
}

// budgetLister is the interface for listing budgets.
type budgetLister interface {
	ListBudgets(ctx context.Context, userID uuid.UUID) ([]*service.Budget, error)
}

// ListBudgetsHandler handles GET /budgets.
type ListBudgetsHandler struct {
	BudgetService budgetLister
}

// NewListBudgetsHandler creates a new ListBudgetsHandler.
func NewListBudgetsHandler(svc budgetLister) *ListBudgetsHandler {
	return &ListBudgetsHandler{BudgetService: svc}
}

// Register registers the list budgets endpoint with the Huma API.
func (h *ListBudgetsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-budgets",
		Method:      http.MethodGet,
		Path:        "/budgets",
		Summary:     "List budgets",
		Description: "Returns all of the caller's budgets with spent and remaining amounts.",
		Tags:        []string{"Budgets"},
	}, h.handle)
}

func (h *ListBudgetsHandler) handle(ctx context.Context, input *ListBudgetsInput) (*ListBudgetsOutput, error) {
	userID, err := userFromContext(ctx)
	if err != nil {
		return nil, err
	}

	logData := logging.GetLogData(ctx)
	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listBudgetsMs")
	}
	budgets, err := h.BudgetService.ListBudgets(ctx, userID)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list budgets", err)
	}

	resp := ListBudgetsResponseBody{Results: make([]Budget, len(budgets))}
	for i, budget := range budgets {
		resp.Results[i] = fromService(budget)
	}

	if logData != nil {
		logData.AddData("budgetCount", len(budgets))
	}

	return &ListBudgetsOutput{Body: resp}, nil
}
