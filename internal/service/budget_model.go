package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/moneta-app/finance-server/internal/storage/sqlconfig"
)

// Budget represents a budget in the service layer, augmented on reads with
// the amount spent and remaining over its date range.
type Budget struct {
	ID              uuid.UUID
	CategoryID      uuid.UUID
	CategoryName    string
	Amount          decimal.Decimal
	StartDate       time.Time
	EndDate         time.Time
	SpentAmount     decimal.Decimal
	RemainingAmount decimal.Decimal
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// BudgetCreate is the input for the upsert-on-create operation.
type BudgetCreate struct {
	CategoryID uuid.UUID
	Amount     decimal.Decimal
	StartDate  time.Time
	EndDate    time.Time
}

// BudgetPatch is a partial budget update; nil fields are left unchanged.
type BudgetPatch struct {
	CategoryID *uuid.UUID
	Amount     *decimal.Decimal
	StartDate  *time.Time
	EndDate    *time.Time
}

// BudgetSummaryCategory is one per-category line of the monthly summary.
type BudgetSummaryCategory struct {
	Name      string
	Budget    decimal.Decimal
	Spent     decimal.Decimal
	Remaining decimal.Decimal
}

// BudgetSummary aggregates the current month's budgets against actual spend.
type BudgetSummary struct {
	Budgeted   decimal.Decimal
	Spent      decimal.Decimal
	Remaining  decimal.Decimal
	Categories []BudgetSummaryCategory
}

func budgetFromStorage(row *sqlconfig.Budget) *Budget {
	return &Budget{
		ID:           row.ID,
		CategoryID:   row.CategoryID,
		CategoryName: row.CategoryName,
		Amount:       row.Amount,
		StartDate:    row.StartDate,
		EndDate:      row.EndDate,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}
