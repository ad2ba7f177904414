package budget

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/moneta-app/finance-server/internal/service"
)

type mockSummaryReporter struct {
	mock.Mock
}

func (m *mockSummaryReporter) Summary(ctx context.Context, userID uuid.UUID) (*service.BudgetSummary, error) {
	args := m.Called(ctx, userID)
	summary, _ := args.Get(0).(*service.BudgetSummary)
	return summary, args.Error(1)
}

func TestHTTP_BudgetSummary(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockSummaryReporter)
	mockSvc.On("Summary", mock.Anything, userID).Return(&service.BudgetSummary{
		Budgeted:  decimal.RequireFromString("500.00"),
		Spent:     decimal.RequireFromString("350.00"),
		Remaining: decimal.RequireFromString("150.00"),
		Categories: []service.BudgetSummaryCategory{
			{
				Name:      "Groceries",
				Budget:    decimal.RequireFromString("300.00"),
				Spent:     decimal.RequireFromString("350.00"),
				Remaining: decimal.RequireFromString("-50.00"),
			},
			{
				Name:      "Entertainment",
				Budget:    decimal.RequireFromString("200.00"),
				Spent:     decimal.Zero,
				Remaining: decimal.RequireFromString("200.00"),
			},
		},
	}, nil)

	api := newAuthedTestAPI(t, userID, func(api huma.API) {
		NewSummaryHandler(mockSvc).Register(api)
	})
	resp := api.Get("/budgets/summary")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body SummaryResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 500.0, body.TotalBudget)
	assert.Equal(t, 350.0, body.TotalSpent)
	assert.Equal(t, 150.0, body.TotalRemaining)
	assert.Len(t, body.Categories, 2)
	assert.Equal(t, "Groceries", body.Categories[0].Name)
	assert.Equal(t, -50.0, body.Categories[0].Remaining)
	assert.Equal(t, "Entertainment", body.Categories[1].Name)
	assert.Equal(t, 0.0, body.Categories[1].Spent)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_BudgetSummary_Empty(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockSummaryReporter)
	mockSvc.On("Summary", mock.Anything, userID).Return(&service.BudgetSummary{
		Categories: []service.BudgetSummaryCategory{},
	}, nil)

	api := newAuthedTestAPI(t, userID, func(api huma.API) {
		NewSummaryHandler(mockSvc).Register(api)
	})
	resp := api.Get("/budgets/summary")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body SummaryResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 0.0, body.TotalBudget)
	assert.Equal(t, 0.0, body.TotalSpent)
	assert.Equal(t, 0.0, body.TotalRemaining)
	assert.Empty(t, body.Categories)
	mockSvc.AssertExpectations(t)
}
