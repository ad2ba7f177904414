package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/moneta-app/finance-server/internal/service"
)

// CreateTransactionBody is the request body for creating a transaction.
type CreateTransactionBody struct {
	CategoryID  string `json:"category" required:"true" format:"uuid" doc:"Category UUID"`
	Amount      string `json:"amount" required:"true" doc:"Decimal amount, must be non-negative"`
	Type        string `json:"type" required:"true" enum:"income,expense" doc:"income or expense"`
	Description string `json:"description,omitempty" doc:"Free-text description"`
	Date        string `json:"date,omitempty" doc:"Transaction date (YYYY-MM-DD), defaults to today"`
}

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	Body CreateTransactionBody
}

// CreateTransactionOutput is the Huma output for creating a transaction.
type CreateTransactionOutput struct {
	Status int
	Body   Transaction
}

// transactionCreator is the interface for creating transactions.
type transactionCreator interface {
	CreateTransaction(ctx context.Context, userID uuid.UUID, create service.TransactionCreate) (*service.Transaction, error)
}

// CreateTransactionHandler handles POST /transactions.
type CreateTransactionHandler struct {
	TransactionService transactionCreator
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(svc transactionCreator) *CreateTransactionHandler {
	return &CreateTransactionHandler{TransactionService: svc}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-transaction",
		Method:        http.MethodPost,
		Path:          "/transactions",
		Summary:       "Create a transaction",
		Description:   "Records a new income or expense transaction.",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

// parseCreateTransactionInput validates and converts the request body.
func parseCreateTransactionInput(input *CreateTransactionInput) (service.TransactionCreate, error) {
	var create service.TransactionCreate

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

	var date time.Time
	if input.Body.Date != "" {
		date, err = parseDate(input.Body.Date, "date")
		if err != nil {
			return create, err
		}
	}

	return service.TransactionCreate{
		CategoryID:  categoryID,
		Amount:      amount,
		Type:        input.Body.Type,
		Description: input.Body.Description,
		Date:        date,
	}, nil
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	userID, err := userFromContext(ctx)
	if err != nil {
		return nil, err
	}

	create, err := parseCreateTransactionInput(input)
	if err != nil {
		return nil, err
	}

	tx, err := h.TransactionService.CreateTransaction(ctx, userID, create)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create transaction", err)
	}

	return &CreateTransactionOutput{
		Status: http.StatusCreated,
		Body:   fromService(tx),
	}, nil
}
