package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Transaction represents a transaction record. CategoryName is joined in from
// the categories table on every read.
type Transaction struct {
	ID           uuid.UUID       `db:"id"`
	UserID       uuid.UUID       `db:"user_id"`
	CategoryID   uuid.UUID       `db:"category_id"`
	CategoryName string          `db:"category_name"`
	Amount       decimal.Decimal `db:"amount"`
	Type         EntryType       `db:"type"`
	Description  string          `db:"description"`
	Date         time.Time       `db:"date"`
	CreatedAt    time.Time       `db:"created_at"`
	UpdatedAt    time.Time       `db:"updated_at"`
}

// TransactionCreate is the input for creating a new transaction.
type TransactionCreate struct {
	UserID      uuid.UUID
	CategoryID  uuid.UUID
	Amount      decimal.Decimal
	Type        EntryType
	Description string
	Date        time.Time
}

// TransactionPatch is a partial update; nil fields are left unchanged.
type TransactionPatch struct {
	CategoryID  *uuid.UUID
	Amount      *decimal.Decimal
	Type        *EntryType
	Description *string
	Date        *time.Time
}

// TransactionFilter specifies predicates for listing transactions. All set
// fields are AND-combined; Search alone OR-matches description and category
// name case-insensitively.
type TransactionFilter struct {
	CategoryID *uuid.UUID
	Type       *EntryType
	MinDate    *time.Time
	MaxDate    *time.Time
	MinAmount  *decimal.Decimal
	MaxAmount  *decimal.Decimal
	Search     string
}

// CategorySpend is one row of a per-category expense aggregate.
type CategorySpend struct {
	CategoryID   uuid.UUID       `db:"category_id"`
	CategoryName string          `db:"category_name"`
	Total        decimal.Decimal `db:"total"`
}

// ITransactionTable defines the interface for transaction storage operations,
// including the aggregation queries behind trends, budgets, and the dashboard.
// Every query is scoped to the owning user.
type ITransactionTable interface {
	List(ctx context.Context, userID uuid.UUID, filter *TransactionFilter) ([]*Transaction, error)
	FindByID(ctx context.Context, userID, id uuid.UUID) (*Transaction, error)
	Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error)
	Update(ctx context.Context, userID, id uuid.UUID, patch *TransactionPatch) (*Transaction, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error

	// SumAmount totals transactions of one type with dates in [start, end].
	// Missing data sums to zero, never null.
	SumAmount(ctx context.Context, userID uuid.UUID, entryType EntryType, start, end time.Time) (decimal.Decimal, error)
	// SumForCategory totals transactions of one type for a single category
	// with dates in [start, end].
	SumForCategory(ctx context.Context, userID, categoryID uuid.UUID, entryType EntryType, start, end time.Time) (decimal.Decimal, error)
	// ExpensesByCategory groups expense totals per category for dates in
	// [start, end], largest first.
	ExpensesByCategory(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*CategorySpend, error)
	// Recent returns the most recent transactions with dates in [start, end],
	// ordered by date then creation time, newest first.
	Recent(ctx context.Context, userID uuid.UUID, start, end time.Time, limit int) ([]*Transaction, error)
}
