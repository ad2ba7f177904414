package dashboard

import (
	"bytes"
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/moneta-app/finance-server/internal/auth"
	"github.com/moneta-app/finance-server/internal/logging"
	"github.com/moneta-app/finance-server/internal/service"
)

const dateLayout = "2006-01-02"

// CategoryAmount is one entry of the expense breakdown.
type CategoryAmount struct {
	Name   string
	Amount float64
}

// ExpensesByCategory marshals as a JSON object keyed by category name,
// preserving the descending-amount order the service computed.
type ExpensesByCategory []CategoryAmount

// MarshalJSON implements json.Marshaler.
func (e ExpensesByCategory) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, entry := range e {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := marshalString(entry.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.WriteString(strconv.FormatFloat(entry.Amount, 'f', -1, 64))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func marshalString(s string) ([]byte, error) {
	buf := make([]byte, 0, len(s)+2)
	return strconv.AppendQuote(buf, s), nil
}

// Schema implements huma.SchemaProvider so the generated OpenAPI reflects the
// object-of-numbers wire shape.
func (e ExpensesByCategory) Schema(r huma.Registry) *huma.Schema {
	return &huma.Schema{
		Type:                 huma.TypeObject,
		Description:          "Expense totals keyed by category name, largest first",
		AdditionalProperties: &huma.Schema{Type: huma.TypeNumber},
	}
}

// RecentTransaction is the trimmed transaction view shown on the dashboard.
type RecentTransaction struct {
	ID           string `json:"id" doc:"Transaction UUID"`
	CategoryName string `json:"category_name" doc:"Name of the category"`
	Amount       string `json:"amount" doc:"Decimal amount"`
	Type         string `json:"type" doc:"income or expense"`
	Description  string `json:"description" doc:"Free-text description"`
	Date         string `json:"date" doc:"Transaction date (YYYY-MM-DD)"`
}

// DashboardInput is the Huma input for the dashboard. Zero values default to
// the first of the current month and today.
type DashboardInput struct {
	StartDate string `query:"start_date" doc:"Range start (YYYY-MM-DD), defaults to the first of the current month"`
	EndDate   string `query:"end_date" doc:"Range end (YYYY-MM-DD), defaults to today"`
}

// DashboardResponseBody is the aggregated dashboard payload.
type DashboardResponseBody struct {
	TotalIncome        float64             `json:"total_income" doc:"Income total for the range"`
	TotalExpenses      float64             `json:"total_expenses" doc:"Expense total for the range"`
	NetSavings         float64             `json:"net_savings" doc:"Income minus expenses"`
	ExpensesByCategory ExpensesByCategory  `json:"expenses_by_category" doc:"Expense totals keyed by category name, largest first"`
	RecentTransactions []RecentTransaction `json:"recent_transactions" doc:"The five most recent transactions in the range"`
}

// DashboardOutput is the Huma output for the dashboard.
type DashboardOutput struct {
	Body DashboardResponseBody
}

// overviewReporter is the interface for computing the dashboard.
type overviewReporter interface {
	Overview(ctx context.Context, userID uuid.UUID, start, end time.Time) (*service.Dashboard, error)
}

// DashboardHandler handles GET /dashboard.
type DashboardHandler struct {
	DashboardService overviewReporter
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(svc overviewReporter) *DashboardHandler {
	return &DashboardHandler{DashboardService: svc}
}

// Register registers the dashboard endpoint with the Huma API.
func (h *DashboardHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "dashboard",
		Method:      http.MethodGet,
		Path:        "/dashboard",
		Summary:     "Dashboard overview",
		Description: "Aggregates income, expenses, savings, the per-category expense breakdown, and recent transactions for a date range.",
		Tags:        []string{"Dashboard"},
	}, h.handle)
}

// parseDashboardInput parses the optional date bounds. Zero times tell the
// service to apply its defaults.
func parseDashboardInput(input *DashboardInput) (start, end time.Time, err error) {
	if input.StartDate != "" {
		start, err = time.Parse(dateLayout, input.StartDate)
		if err != nil {
			return time.Time{}, time.Time{}, huma.NewError(http.StatusBadRequest, "invalid start_date, expected YYYY-MM-DD", err)
		}
	}
	if input.EndDate != "" {
		end, err = time.Parse(dateLayout, input.EndDate)
		if err != nil {
			return time.Time{}, time.Time{}, huma.NewError(http.StatusBadRequest, "invalid end_date, expected YYYY-MM-DD", err)
		}
	}
	if !start.IsZero() && !end.IsZero() && end.Before(start) {
		return time.Time{}, time.Time{}, huma.NewError(http.StatusBadRequest, "end_date must not be before start_date")
	}
	return start, end, nil
}

func (h *DashboardHandler) handle(ctx context.Context, input *DashboardInput) (*DashboardOutput, error) {
	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		return nil, huma.NewError(http.StatusUnauthorized, "authentication required")
	}

	start, end, err := parseDashboardInput(input)
	if err != nil {
		return nil, err
	}

	logData := logging.GetLogData(ctx)
	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("dashboardMs")
	}
	dashboard, err := h.DashboardService.Overview(ctx, userID, start, end)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to compute dashboard", err)
	}

	resp := DashboardResponseBody{
		TotalIncome:        dashboard.TotalIncome.InexactFloat64(),
		TotalExpenses:      dashboard.TotalExpenses.InexactFloat64(),
		NetSavings:         dashboard.NetSavings.InexactFloat64(),
		ExpensesByCategory: make(ExpensesByCategory, len(dashboard.ExpensesByCategory)),
		RecentTransactions: make([]RecentTransaction, len(dashboard.RecentTransactions)),
	}
	for i, expense := range dashboard.ExpensesByCategory {
		resp.ExpensesByCategory[i] = CategoryAmount{
			Name:   expense.Name,
			Amount: expense.Amount.InexactFloat64(),
		}
	}
	for i, tx := range dashboard.RecentTransactions {
		resp.RecentTransactions[i] = RecentTransaction{
			ID:           tx.ID.String(),
			CategoryName: tx.CategoryName,
			Amount:       tx.Amount.String(),
			Type:         tx.Type,
			Description:  tx.Description,
			Date:         tx.Date.Format(dateLayout),
		}
	}

	return &DashboardOutput{Body: resp}, nil
}
