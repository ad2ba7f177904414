package transaction

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/moneta-app/finance-server/internal/service"
)

type mockTransactionLister struct {
	mock.Mock
}

func (m *mockTransactionLister) ListTransactions(ctx context.Context, userID uuid.UUID, filter *service.TransactionFilter) ([]*service.Transaction, error) {
	args := m.Called(ctx, userID, filter)
	transactions, _ := args.Get(0).([]*service.Transaction)
	return transactions, args.Error(1)
}

// -- parseListTransactionsInput unit tests --

func TestParseListTransactionsInput_NoFilters(t *testing.T) {
	filter, err := parseListTransactionsInput(&ListTransactionsInput{})
	assert.NoError(t, err)
	assert.Nil(t, filter)
}

func TestParseListTransactionsInput_AllFilters(t *testing.T) {
	categoryID := uuid.Must(uuid.NewV4())

	filter, err := parseListTransactionsInput(&ListTransactionsInput{
		Category:  categoryID.String(),
		Type:      "expense",
		MinDate:   "2025-01-01",
		MaxDate:   "2025-01-31",
		MinAmount: "5.00",
		MaxAmount: "100.00",
		Search:    "coffee",
	})
	assert.NoError(t, err)
	assert.NotNil(t, filter)
	assert.Equal(t, categoryID, *filter.CategoryID)
	assert.Equal(t, "expense", *filter.Type)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), *filter.MinDate)
	assert.Equal(t, time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC), *filter.MaxDate)
	assert.True(t, filter.MinAmount.Equal(decimal.RequireFromString("5.00")))
	assert.True(t, filter.MaxAmount.Equal(decimal.RequireFromString("100.00")))
	assert.Equal(t, "coffee", filter.Search)
}

func TestParseListTransactionsInput_StartEndDateAliases(t *testing.T) {
	filter, err := parseListTransactionsInput(&ListTransactionsInput{
		StartDate: "2025-03-01",
		EndDate:   "2025-03-31",
	})
	assert.NoError(t, err)
	assert.NotNil(t, filter)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), *filter.MinDate)
	assert.Equal(t, time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC), *filter.MaxDate)
}

func TestParseListTransactionsInput_InvalidType(t *testing.T) {
	_, err := parseListTransactionsInput(&ListTransactionsInput{Type: "transfer"})
	assert.Error(t, err)
}

func TestParseListTransactionsInput_InvalidDate(t *testing.T) {
	_, err := parseListTransactionsInput(&ListTransactionsInput{MinDate: "not-a-date"})
	assert.Error(t, err)
}

func TestParseListTransactionsInput_InvalidAmount(t *testing.T) {
	_, err := parseListTransactionsInput(&ListTransactionsInput{MinAmount: "lots"})
	assert.Error(t, err)
}

// -- HTTP integration tests --

func TestHTTP_ListTransactions(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	txID := uuid.Must(uuid.NewV4())
	date := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	mockSvc := new(mockTransactionLister)
	mockSvc.On("ListTransactions", mock.Anything, userID, (*service.TransactionFilter)(nil)).
		Return([]*service.Transaction{
			{
				ID:           txID,
				CategoryID:   uuid.Must(uuid.NewV4()),
				CategoryName: "Groceries",
				Amount:       decimal.RequireFromString("42.75"),
				Type:         "expense",
				Description:  "Weekly shop",
				Date:         date,
				CreatedAt:    date,
				UpdatedAt:    date,
			},
		}, nil)

	api := newAuthedTestAPI(t, userID, func(api huma.API) {
		NewListTransactionsHandler(mockSvc).Register(api)
	})
	resp := api.Get("/transactions")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListTransactionsResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Results, 1)
	assert.Equal(t, txID.String(), body.Results[0].ID)
	assert.Equal(t, "42.75", body.Results[0].Amount)
	assert.Equal(t, "Groceries", body.Results[0].CategoryName)
	assert.Equal(t, "2025-06-15", body.Results[0].Date)
	assert.Empty(t, body.Message)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListTransactions_EmptyMessage(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockTransactionLister)
	mockSvc.On("ListTransactions", mock.Anything, userID, (*service.TransactionFilter)(nil)).
		Return([]*service.Transaction{}, nil)

	api := newAuthedTestAPI(t, userID, func(api huma.API) {
		NewListTransactionsHandler(mockSvc).Register(api)
	})
	resp := api.Get("/transactions")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListTransactionsResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Empty(t, body.Results)
	assert.Equal(t, "No transactions found.", body.Message)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListTransactions_TypeFilter(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockTransactionLister)
	mockSvc.On("ListTransactions", mock.Anything, userID, mock.MatchedBy(func(filter *service.TransactionFilter) bool {
		return filter != nil && filter.Type != nil && *filter.Type == "income"
	})).Return([]*service.Transaction{}, nil)

	api := newAuthedTestAPI(t, userID, func(api huma.API) {
		NewListTransactionsHandler(mockSvc).Register(api)
	})
	resp := api.Get("/transactions?type=income")

	assert.Equal(t, http.StatusOK, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListTransactions_InvalidCategoryFilter(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	mockSvc := new(mockTransactionLister)

	api := newAuthedTestAPI(t, userID, func(api huma.API) {
		NewListTransactionsHandler(mockSvc).Register(api)
	})
	resp := api.Get("/transactions?category=not-a-uuid")

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "ListTransactions")
}
