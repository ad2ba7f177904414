package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Budget represents a budget record: a spending cap for one category over a
// date range. CategoryName is joined in from the categories table.
type Budget struct {
	ID           uuid.UUID       `db:"id"`
	UserID       uuid.UUID       `db:"user_id"`
	CategoryID   uuid.UUID       `db:"category_id"`
	CategoryName string          `db:"category_name"`
	Amount       decimal.Decimal `db:"amount"`
	StartDate    time.Time       `db:"start_date"`
	EndDate      time.Time       `db:"end_date"`
	CreatedAt    time.Time       `db:"created_at"`
	UpdatedAt    time.Time       `db:"updated_at"`
}

// BudgetCreate is the input for creating a new budget.
type BudgetCreate struct {
	UserID     uuid.UUID
	CategoryID uuid.UUID
	Amount     decimal.Decimal
	StartDate  time.Time
	EndDate    time.Time
}

// BudgetPatch is a partial update; nil fields are left unchanged.
type BudgetPatch struct {
	CategoryID *uuid.UUID
	Amount     *decimal.Decimal
	StartDate  *time.Time
	EndDate    *time.Time
}

// IBudgetTable defines the interface for budget storage operations. Every
// query is scoped to the owning user.
type IBudgetTable interface {
	List(ctx context.Context, userID uuid.UUID) ([]*Budget, error)
	FindByID(ctx context.Context, userID, id uuid.UUID) (*Budget, error)
	Insert(ctx context.Context, create *BudgetCreate) (*Budget, error)
	Update(ctx context.Context, userID, id uuid.UUID, patch *BudgetPatch) (*Budget, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error

	// FindOverlapping returns the user's budget for the category whose date
	// range overlaps [start, end] (start_date <= end AND end_date >= start),
	// or sql.ErrNoRows. The exclusion constraint guarantees at most one.
	FindOverlapping(ctx context.Context, userID, categoryID uuid.UUID, start, end time.Time) (*Budget, error)
	// ListOverlappingRange returns all of the user's budgets whose date range
	// overlaps [start, end], in creation order.
	ListOverlappingRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*Budget, error)
}
