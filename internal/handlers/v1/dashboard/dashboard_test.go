package dashboard

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/moneta-app/finance-server/internal/auth"
	"github.com/moneta-app/finance-server/internal/service"
)

type mockOverviewReporter struct {
	mock.Mock
}

func (m *mockOverviewReporter) Overview(ctx context.Context, userID uuid.UUID, start, end time.Time) (*service.Dashboard, error) {
	args := m.Called(ctx, userID, start, end)
	dashboard, _ := args.Get(0).(*service.Dashboard)
	return dashboard, args.Error(1)
}

func newAuthedTestAPI(t *testing.T, userID uuid.UUID, svc overviewReporter) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	api.UseMiddleware(func(ctx huma.Context, next func(huma.Context)) {
		next(huma.WithValue(ctx, auth.UserIDKey, userID))
	})
	NewDashboardHandler(svc).Register(api)
	return api
}

func TestExpensesByCategory_MarshalPreservesOrder(t *testing.T) {
	expenses := ExpensesByCategory{
		{Name: "Groceries", Amount: 350.5},
		{Name: "Rent", Amount: 1200},
		{Name: "Dining Out", Amount: 80.25},
	}

	raw, err := json.Marshal(expenses)
	assert.NoError(t, err)
	assert.Equal(t, `{"Groceries":350.5,"Rent":1200,"Dining Out":80.25}`, string(raw))
}

func TestExpensesByCategory_MarshalEmpty(t *testing.T) {
	raw, err := json.Marshal(ExpensesByCategory{})
	assert.NoError(t, err)
	assert.Equal(t, `{}`, string(raw))
}

func TestParseDashboardInput_Defaults(t *testing.T) {
	start, end, err := parseDashboardInput(&DashboardInput{})
	assert.NoError(t, err)
	assert.True(t, start.IsZero())
	assert.True(t, end.IsZero())
}

func TestParseDashboardInput_ExplicitRange(t *testing.T) {
	start, end, err := parseDashboardInput(&DashboardInput{
		StartDate: "2025-06-01",
		EndDate:   "2025-06-30",
	})
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC), end)
}

func TestParseDashboardInput_EndBeforeStart(t *testing.T) {
	_, _, err := parseDashboardInput(&DashboardInput{
		StartDate: "2025-06-30",
		EndDate:   "2025-06-01",
	})
	assert.Error(t, err)
}

func TestHTTP_Dashboard(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	txID := uuid.Must(uuid.NewV4())
	date := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	mockSvc := new(mockOverviewReporter)
	mockSvc.On("Overview", mock.Anything, userID, time.Time{}, time.Time{}).Return(&service.Dashboard{
		TotalIncome:   decimal.RequireFromString("2000.00"),
		TotalExpenses: decimal.RequireFromString("1500.00"),
		NetSavings:    decimal.RequireFromString("500.00"),
		ExpensesByCategory: []service.CategoryExpense{
			{Name: "Rent", Amount: decimal.RequireFromString("1200.00")},
			{Name: "Groceries", Amount: decimal.RequireFromString("300.00")},
		},
		RecentTransactions: []*service.Transaction{
			{
				ID:           txID,
				CategoryID:   uuid.Must(uuid.NewV4()),
				CategoryName: "Rent",
				Amount:       decimal.RequireFromString("1200.00"),
				Type:         "expense",
				Description:  "June rent",
				Date:         date,
			},
		},
	}, nil)

	resp := newAuthedTestAPI(t, userID, mockSvc).Get("/dashboard")

	assert.Equal(t, http.StatusOK, resp.Code)

	var body struct {
		TotalIncome        float64             `json:"total_income"`
		TotalExpenses      float64             `json:"total_expenses"`
		NetSavings         float64             `json:"net_savings"`
		ExpensesByCategory map[string]float64  `json:"expenses_by_category"`
		RecentTransactions []RecentTransaction `json:"recent_transactions"`
	}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 2000.0, body.TotalIncome)
	assert.Equal(t, 1500.0, body.TotalExpenses)
	assert.Equal(t, 500.0, body.NetSavings)
	assert.Equal(t, 1200.0, body.ExpensesByCategory["Rent"])
	assert.Equal(t, 300.0, body.ExpensesByCategory["Groceries"])
	assert.Len(t, body.RecentTransactions, 1)
	assert.Equal(t, txID.String(), body.RecentTransactions[0].ID)
	assert.Equal(t, "2025-06-15", body.RecentTransactions[0].Date)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_Dashboard_ZeroTotalsWhenEmpty(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockOverviewReporter)
	mockSvc.On("Overview", mock.Anything, userID, time.Time{}, time.Time{}).Return(&service.Dashboard{
		ExpensesByCategory: []service.CategoryExpense{},
		RecentTransactions: []*service.Transaction{},
	}, nil)

	resp := newAuthedTestAPI(t, userID, mockSvc).Get("/dashboard")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body map[string]json.RawMessage
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "0", string(body["total_income"]))
	assert.Equal(t, "0", string(body["total_expenses"]))
	assert.Equal(t, "0", string(body["net_savings"]))
	assert.Equal(t, "{}", string(body["expenses_by_category"]))
	mockSvc.AssertExpectations(t)
}

func TestHTTP_Dashboard_ExplicitRange(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)

	mockSvc := new(mockOverviewReporter)
	mockSvc.On("Overview", mock.Anything, userID, start, end).Return(&service.Dashboard{
		ExpensesByCategory: []service.CategoryExpense{},
		RecentTransactions: []*service.Transaction{},
	}, nil)

	resp := newAuthedTestAPI(t, userID, mockSvc).Get("/dashboard?start_date=2025-01-01&end_date=2025-01-31")

	assert.Equal(t, http.StatusOK, resp.Code)
	mockSvc.AssertExpectations(t)
}
