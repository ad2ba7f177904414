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

type mockTransactionCreator struct {
	mock.Mock
}

func (m *mockTransactionCreator) CreateTransaction(ctx context.Context, userID uuid.UUID, create service.TransactionCreate) (*service.Transaction, error) {
	args := m.Called(ctx, userID, create)
	tx, _ := args.Get(0).(*service.Transaction)
	return tx, args.Error(1)
}

func TestParseCreateTransactionInput(t *testing.T) {
	categoryID := uuid.Must(uuid.NewV4())

	create, err := parseCreateTransactionInput(&CreateTransactionInput{
		Body: CreateTransactionBody{
			CategoryID:  categoryID.String(),
			Amount:      "12.50",
			Type:        "expense",
			Description: "Lunch",
			Date:        "2025-06-15",
		},
	})
	assert.NoError(t, err)
	assert.Equal(t, categoryID, create.CategoryID)
	assert.True(t, create.Amount.Equal(decimal.RequireFromString("12.50")))
	assert.Equal(t, "expense", create.Type)
	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), create.Date)
}

func TestParseCreateTransactionInput_OmittedDate(t *testing.T) {
	create, err := parseCreateTransactionInput(&CreateTransactionInput{
		Body: CreateTransactionBody{
			CategoryID: uuid.Must(uuid.NewV4()).String(),
			Amount:     "1.00",
			Type:       "income",
		},
	})
	assert.NoError(t, err)
	assert.True(t, create.Date.IsZero())
}

func TestParseCreateTransactionInput_NegativeAmount(t *testing.T) {
	_, err := parseCreateTransactionInput(&CreateTransactionInput{
		Body: CreateTransactionBody{
			CategoryID: uuid.Must(uuid.NewV4()).String(),
			Amount:     "-5.00",
			Type:       "expense",
		},
	})
	assert.Error(t, err)
}

func TestHTTP_CreateTransaction(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	txID := uuid.Must(uuid.NewV4())
	categoryID := uuid.Must(uuid.NewV4())
	date := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	mockSvc := new(mockTransactionCreator)
	mockSvc.On("CreateTransaction", mock.Anything, userID, mock.MatchedBy(func(create service.TransactionCreate) bool {
		return create.CategoryID == categoryID && create.Amount.Equal(decimal.RequireFromString("12.50"))
	})).Return(&service.Transaction{
		ID:           txID,
		CategoryID:   categoryID,
		CategoryName: "Dining Out",
		Amount:       decimal.RequireFromString("12.50"),
		Type:         "expense",
		Description:  "Lunch",
		Date:         date,
		CreatedAt:    date,
		UpdatedAt:    date,
	}, nil)

	api := newAuthedTestAPI(t, userID, func(api huma.API) {
		NewCreateTransactionHandler(mockSvc).Register(api)
	})
	resp := api.Post("/transactions", CreateTransactionBody{
		CategoryID: categoryID.String(),
		Amount:     "12.50",
		Type:       "expense",
		Date:       "2025-06-15",
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body Transaction
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, txID.String(), body.ID)
	assert.Equal(t, "12.50", body.Amount)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CreateTransaction_InvalidType(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	mockSvc := new(mockTransactionCreator)

	api := newAuthedTestAPI(t, userID, func(api huma.API) {
		NewCreateTransactionHandler(mockSvc).Register(api)
	})
	resp := api.Post("/transactions", CreateTransactionBody{
		CategoryID: uuid.Must(uuid.NewV4()).String(),
		Amount:     "5.00",
		Type:       "transfer",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "CreateTransaction")
}
