package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/moneta-app/finance-server/internal/auth"
	"github.com/moneta-app/finance-server/internal/service"
)

const dateLayout = "2006-01-02"

// Transaction is the wire representation of a transaction. Amounts are decimal
// strings; dates are calendar days.
type Transaction struct {
	ID           string `json:"id" doc:"Transaction UUID"`
	CategoryID   string `json:"category" doc:"Category UUID"`
	CategoryName string `json:"category_name" doc:"Name of the category"`
	Amount       string `json:"amount" doc:"Decimal amount, e.g. 12.50"`
	Type         string `json:"type" doc:"income or expense"`
	Description  string `json:"description" doc:"Free-text description"`
	Date         string `json:"date" doc:"Transaction date (YYYY-MM-DD)"`
	CreatedAt    string `json:"created_at" doc:"RFC3339 creation time"`
	UpdatedAt    string `json:"updated_at" doc:"RFC3339 last update time"`
}

func fromService(tx *service.Transaction) Transaction {
	return Transaction{
		ID:           tx.ID.String(),
		CategoryID:   tx.CategoryID.String(),
		CategoryName: tx.CategoryName,
		Amount:       tx.Amount.String(),
		Type:         tx.Type,
		Description:  tx.Description,
		Date:         tx.Date.Format(dateLayout),
		CreatedAt:    tx.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    tx.UpdatedAt.Format(time.RFC3339),
	}
}

func userFromContext(ctx context.Context) (uuid.UUID, error) {
	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		return uuid.Nil, huma.NewError(http.StatusUnauthorized, "authentication required")
	}
	return userID, nil
}

func parseTransactionID(raw string) (uuid.UUID, error) {
	id, err := uuid.FromString(raw)
	if err != nil {
		return uuid.Nil, huma.NewError(http.StatusBadRequest, "invalid transaction id")
	}
	return id, nil
}

func parseDate(raw, field string) (time.Time, error) {
	parsed, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, huma.NewError(http.StatusBadRequest, "invalid "+field+", expected YYYY-MM-DD", err)
	}
	return parsed, nil
}
