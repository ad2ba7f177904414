package budget

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

// Budget is the wire representation of a budget, including the derived
// spent and remaining amounts for its date range.
type Budget struct {
	ID              string `json:"id" doc:"Budget UUID"`
	CategoryID      string `json:"category" doc:"Category UUID"`
	CategoryName    string `json:"category_name" doc:"Name of the category"`
	Amount          string `json:"amount" doc:"Budgeted decimal amount"`
	StartDate       string `json:"start_date" doc:"First covered day (YYYY-MM-DD)"`
	EndDate         string `json:"end_date" doc:"Last covered day (YYYY-MM-DD)"`
	SpentAmount     string `json:"spent_amount" doc:"Expenses recorded in the range"`
	RemainingAmount string `json:"remaining_amount" doc:"Amount minus spent"`
	CreatedAt       string `json:"created_at" doc:"RFC3339 creation time"`
	UpdatedAt       string `json:"updated_at" doc:"RFC3339 last update time"`
}

func fromService(b *service.Budget) Budget {
	return Budget{
		ID:              b.ID.String(),
		CategoryID:      b.CategoryID.String(),
		CategoryName:    b.CategoryName,
		Amount:          b.Amount.String(),
		StartDate:       b.StartDate.Format(dateLayout),
		EndDate:         b.EndDate.Format(dateLayout),
		SpentAmount:     b.SpentAmount.String(),
		RemainingAmount: b.RemainingAmount.String(),
		CreatedAt:       b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       b.UpdatedAt.Format(time.RFC3339),
	}
}

func userFromContext(ctx context.Context) (uuid.UUID, error) {
	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		return uuid.Nil, huma.NewError(http.StatusUnauthorized, "authentication required")
	}
	return userID, nil
}

func parseBudgetID(raw string) (uuid.UUID, error) {
	id, err := uuid.FromString(raw)
	if err != nil {
		return uuid.Nil, huma.NewError(http.StatusBadRequest, "invalid budget id")
	}
	return id, nil
}

func parseBudgetDate(raw, field string) (time.Time, error) {
	parsed, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, huma.NewError(http.StatusBadRequest, "invalid "+field+", expected YYYY-MM-DD", err)
	}
	return parsed, nil
}
