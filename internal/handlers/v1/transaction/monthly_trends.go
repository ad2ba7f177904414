package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/moneta-app/finance-server/internal/logging"
	"github.com/moneta-app/finance-server/internal/service"
)

// MonthlyTrendsInput is the Huma input for the trends endpoint.
type MonthlyTrendsInput struct{}

// TrendEntry is one month of the trend series.
type TrendEntry struct {
	Month    string  `json:"month" doc:"Month label, e.g. Jan 2025"`
	Income   float64 `json:"income" doc:"Total income for the month"`
	Expenses float64 `json:"expenses" doc:"Total expenses for the month"`
	Savings  float64 `json:"savings" doc:"Income minus expenses"`
}

// MonthlyTrendsOutput is the Huma output for the trends endpoint. The series
// always holds six months, oldest first.
type MonthlyTrendsOutput struct {
	Body []TrendEntry
}

// trendReporter is the interface for computing monthly trends.
type trendReporter interface {
	MonthlyTrends(ctx context.Context, userID uuid.UUID) ([]service.MonthlyTrend, error)
}

// MonthlyTrendsHandler handles GET /transactions/monthly_trends.
type MonthlyTrendsHandler struct {
	TransactionService trendReporter
}

// NewMonthlyTrendsHandler creates a new MonthlyTrendsHandler.
func NewMonthlyTrendsHandler(svc trendReporter) *MonthlyTrendsHandler {
	return &MonthlyTrendsHandler{TransactionService: svc}
}

// Register registers the monthly trends endpoint with the Huma API.
func (h *MonthlyTrendsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "monthly-trends",
		Method:      http.MethodGet,
		Path:        "/transactions/monthly_trends",
		Summary:     "Monthly trends",
		Description: "Returns income, expense, and savings totals for the last six calendar months, oldest first.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *MonthlyTrendsHandler) handle(ctx context.Context, input *MonthlyTrendsInput) (*MonthlyTrendsOutput, error) {
	userID, err := userFromContext(ctx)
	if err != nil {
		return nil, err
	}

	logData := logging.GetLogData(ctx)
	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("monthlyTrendsMs")
	}
	trends, err := h.TransactionService.MonthlyTrends(ctx, userID)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to compute monthly trends", err)
	}

	entries := make([]TrendEntry, len(trends))
	for i, trend := range trends {
		entries[i] = TrendEntry{
			Month:    trend.Month,
			Income:   trend.Income.InexactFloat64(),
			Expenses: trend.Expenses.InexactFloat64(),
			Savings:  trend.Savings.InexactFloat64(),
		}
	}

	return &MonthlyTrendsOutput{Body: entries}, nil
}
