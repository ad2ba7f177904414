package actions

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/moneta-app/finance-server/internal/storage"
	"github.com/moneta-app/finance-server/internal/storage/sqlconfig"
)

// UpsertBudget creates a budget, or updates the existing one when the user
// already has a budget for the category whose date range overlaps
// [StartDate, EndDate]. Last write wins on amount and dates.
type UpsertBudget struct {
	UserID     uuid.UUID
	CategoryID uuid.UUID
	Amount     decimal.Decimal
	StartDate  time.Time
	EndDate    time.Time

	// Populated by Perform.
	Result  *sqlconfig.Budget
	Updated bool

	IAction
}

func (a *UpsertBudget) Perform(ctx context.Context, writer *storage.Writer) error {
	existing, err := writer.Budgets.FindOverlapping(ctx, a.UserID, a.CategoryID, a.StartDate, a.EndDate)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return err
	}

	if existing != nil {
		patch := &sqlconfig.BudgetPatch{
			CategoryID: &a.CategoryID,
			Amount:     &a.Amount,
			StartDate:  &a.StartDate,
			EndDate:    &a.EndDate,
		}
		updated, err := writer.Budgets.Update(ctx, a.UserID, existing.ID, patch)
		if err != nil {
			return err
		}
		a.Result = updated
		a.Updated = true
		return nil
	}

	created, err := writer.Budgets.Insert(ctx, &sqlconfig.BudgetCreate{
		UserID:     a.UserID,
		CategoryID: a.CategoryID,
		Amount:     a.Amount,
		StartDate:  a.StartDate,
		EndDate:    a.EndDate,
	})
	if err != nil {
		return err
	}
	a.Result = created
	return nil
}
