package budget

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/moneta-app/finance-server/internal/logging"
	"github.com/moneta-app/finance-server/internal/service"
)

// SummaryInput is the Huma input for the budget summary.
type SummaryInput struct{}

// SummaryCategory is one per-category line of the monthly summary.
type SummaryCategory struct {
	Name      string  `json:"name" doc:"Category name"`
	Budget    float64 `json:"budget" doc:"Budgeted amount, or the spend itself when unbudgeted"`
	Spent     float64 `json:"spent" doc:"Expenses recorded this month"`
	Remaining float64 `json:"remaining" doc:"Budget minus spent"`
}

// SummaryResponseBody aggregates the current month's budgets against spend.
type SummaryResponseBody struct {
	TotalBudget    float64           `json:"total_budget" doc:"Sum of per-category budget figures"`
	TotalSpent     float64           `json:"total_spent" doc:"Sum of per-category spend"`
	TotalRemaining float64           `json:"total_remaining" doc:"Total budget minus total spent"`
	Categories     []SummaryCategory `json:"categories" doc:"Per-category breakdown, active categories first"`
}

// SummaryOutput is the Huma output for the budget summary.
type SummaryOutput struct {
	Body SummaryResponseBody
}

// summaryReporter is the interface for computing the monthly summary.
type summaryReporter interface {
	Summary(ctx context.Context, userID uuid.UUID) (*service.BudgetSummary, error)
}

// SummaryHandler handles GET /budgets/summary.
type SummaryHandler struct {
	BudgetService summaryReporter
}

// NewSummaryHandler creates a new SummaryHandler.
func NewSummaryHandler(svc summaryReporter) *SummaryHandler {
	return &SummaryHandler{BudgetService: svc}
}

// Register registers the budget summary endpoint with the Huma API.
func (h *SummaryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "budget-summary",
		Method:      http.MethodGet,
		Path:        "/budgets/summary",
		Summary:     "Budget summary",
		Description: "Aggregates the current calendar month's budgets against actual spending.",
		Tags:        []string{"Budgets"},
	}, h.handle)
}

func (h *SummaryHandler) handle(ctx context.Context, input *SummaryInput) (*SummaryOutput, error) {
	userID, err := userFromContext(ctx)
	if err != nil {
		return nil, err
	}

	logData := logging.GetLogData(ctx)
	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("budgetSummaryMs")
	}
	summary, err := h.BudgetService.Summary(ctx, userID)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to compute budget summary", err)
	}

	resp := SummaryResponseBody{
		TotalBudget:    summary.Budgeted.InexactFloat64(),
		TotalSpent:     summary.Spent.InexactFloat64(),
		TotalRemaining: summary.Remaining.InexactFloat64(),
		Categories:     make([]SummaryCategory, len(summary.Categories)),
	}
	for i, category := range summary.Categories {
		resp.Categories[i] = SummaryCategory{
			Name:      category.Name,
			Budget:    category.Budget.InexactFloat64(),
			Spent:     category.Spent.InexactFloat64(),
			Remaining: category.Remaining.InexactFloat64(),
		}
	}

	return &SummaryOutput{Body: resp}, nil
}
