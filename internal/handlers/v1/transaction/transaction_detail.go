package transaction

import (
	"context"
	"database/sql"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/moneta-app/finance-server/internal/service"
)

// TransactionDetailInput addresses a single transaction by ID.
type TransactionDetailInput struct {
	ID string `path:"id" format:"uuid" doc:"Transaction UUID"`
}

// PatchTransactionBody is the partial-update body; omitted fields are unchanged.
type PatchTransactionBody struct {
	CategoryID  *string `json:"category,omitempty" format:"uuid" doc:"Category UUID"`
	Amount      *string `json:"amount,omitempty" doc:"Decimal amount, must be non-negative"`
	Type        *string `json:"type,omitempty" enum:"income,expense" doc:"income or expense"`
	Description *string `json:"description,omitempty" doc:"Free-text description"`
	Date        *string `json:"date,omitempty" doc:"Transaction date (YYYY-MM-DD)"`
}

// PatchTransactionInput is the Huma input for updating a transaction.
type PatchTransactionInput struct {
	ID   string `path:"id" format:"uuid" doc:"Transaction UUID"`
	Body PatchTransactionBody
}

// TransactionDetailOutput is the Huma output for reading or updating a transaction.
type TransactionDetailOutput struct {
	Body Transaction
}

// DeleteTransactionOutput is the Huma output for deleting a transaction.
type DeleteTransactionOutput struct {
	Status int
}

// transactionDetailService is the interface for single-transaction operations.
type transactionDetailService interface {
	GetTransaction(ctx context.Context, userID, id uuid.UUID) (*service.Transaction, error)
	UpdateTransaction(ctx context.Context, userID, id uuid.UUID, patch service.TransactionPatch) (*service.Transaction, error)
	DeleteTransaction(ctx context.Context, userID, id uuid.UUID) error
}

// TransactionDetailHandler handles GET, PATCH, and DELETE on /transactions/{id}.
type TransactionDetailHandler struct {
	TransactionService transactionDetailService
}

// NewTransactionDetailHandler creates a new TransactionDetailHandler.
func NewTransactionDetailHandler(svc transactionDetailService) *TransactionDetailHandler {
	return &TransactionDetailHandler{TransactionService: svc}
}

// Register registers the transaction detail endpoints with the Huma API.
func (h *TransactionDetailHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-transaction",
		Method:      http.MethodGet,
		Path:        "/transactions/{id}",
		Summary:     "Get a transaction",
		Tags:        []string{"Transactions"},
	}, h.handleGet)

	huma.Register(api, huma.Operation{
		OperationID: "update-transaction",
		Method:      http.MethodPatch,
		Path:        "/transactions/{id}",
		Summary:     "Update a transaction",
		Description: "Applies a partial update to a transaction.",
		Tags:        []string{"Transactions"},
	}, h.handlePatch)

	huma.Register(api, huma.Operation{
		OperationID:   "delete-transaction",
		Method:        http.MethodDelete,
		Path:          "/transactions/{id}",
		Summary:       "Delete a transaction",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusNoContent,
	}, h.handleDelete)
}

// parsePatchTransactionInput validates and converts the patch body.
func parsePatchTransactionInput(body PatchTransactionBody) (service.TransactionPatch, error) {
	var patch service.TransactionPatch

	if body.CategoryID != nil {
		categoryID, err := uuid.FromString(*body.CategoryID)
		if err != nil {
			return patch, huma.NewError(http.StatusBadRequest, "invalid category id")
		}
		patch.CategoryID = &categoryID
	}
	if body.Amount != nil {
		amount, err := decimal.NewFromString(*body.Amount)
		if err != nil {
			return patch, huma.NewError(http.StatusBadRequest, "invalid amount")
		}
		if amount.IsNegative() {
			return patch, huma.NewError(http.StatusBadRequest, "amount must be non-negative")
		}
		patch.Amount = &amount
	}
	if body.Date != nil {
		date, err := parseDate(*body.Date, "date")
		if err != nil {
			return patch, err
		}
		patch.Date = &date
	}
	patch.Type = body.Type
	patch.Description = body.Description

	return patch, nil
}

func (h *TransactionDetailHandler) handleGet(ctx context.Context, input *TransactionDetailInput) (*TransactionDetailOutput, error) {
	userID, err := userFromContext(ctx)
	if err != nil {
		return nil, err
	}
	id, err := parseTransactionID(input.ID)
	if err != nil {
		return nil, err
	}

	tx, err := h.TransactionService.GetTransaction(ctx, userID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, huma.NewError(http.StatusNotFound, "transaction not found")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to get transaction", err)
	}

	return &TransactionDetailOutput{Body: fromService(tx)}, nil
}

func (h *TransactionDetailHandler) handlePatch(ctx context.Context, input *PatchTransactionInput) (*TransactionDetailOutput, error) {
	userID, err := userFromContext(ctx)
	if err != nil {
		return nil, err
	}
	id, err := parseTransactionID(input.ID)
	if err != nil {
		return nil, err
	}
	patch, err := parsePatchTransactionInput(input.Body)
	if err != nil {
		return nil, err
	}

	tx, err := h.TransactionService.UpdateTransaction(ctx, userID, id, patch)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, huma.NewError(http.StatusNotFound, "transaction not found")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to update transaction", err)
	}

	return &TransactionDetailOutput{Body: fromService(tx)}, nil
}

func (h *TransactionDetailHandler) handleDelete(ctx context.Context, input *TransactionDetailInput) (*DeleteTransactionOutput, error) {
	userID, err := userFromContext(ctx)
	if err != nil {
		return nil, err
	}
	id, err := parseTransactionID(input.ID)
	if err != nil {
		return nil, err
	}

	if err := h.TransactionService.DeleteTransaction(ctx, userID, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, huma.NewError(http.StatusNotFound, "transaction not found")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to delete transaction", err)
	}

	return &DeleteTransactionOutput{Status: http.StatusNoContent}, nil
}
