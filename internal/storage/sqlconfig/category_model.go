package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
)

// EntryType classifies categories and transactions as money in or money out.
type EntryType string

const (
	EntryTypeIncome  EntryType = "income"
	EntryTypeExpense EntryType = "expense"
)

// ValidEntryType reports whether s is a known entry type.
func ValidEntryType(s string) bool {
	return s == string(EntryTypeIncome) || s == string(EntryTypeExpense)
}

// Category represents a category record.
type Category struct {
	ID          uuid.UUID `db:"id"`
	UserID      uuid.UUID `db:"user_id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	Type        EntryType `db:"type"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// CategoryCreate is the input for creating a new category.
type CategoryCreate struct {
	UserID      uuid.UUID
	Name        string
	Description string
	Type        EntryType
}

// CategoryPatch is a partial update; nil fields are left unchanged.
type CategoryPatch struct {
	Name        *string
	Description *string
	Type        *EntryType
}

// ICategoryTable defines the interface for category storage operations.
// Every query is scoped to the owning user so records never leak across
// tenants; a foreign row is indistinguishable from a missing one.
type ICategoryTable interface {
	List(ctx context.Context, userID uuid.UUID) ([]*Category, error)
	FindByID(ctx context.Context, userID, id uuid.UUID) (*Category, error)
	FindByName(ctx context.Context, userID uuid.UUID, name string) (*Category, error)
	Insert(ctx context.Context, create *CategoryCreate) (*Category, error)
	Update(ctx context.Context, userID, id uuid.UUID, patch *CategoryPatch) (*Category, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
	CountForUser(ctx context.Context, userID uuid.UUID) (int, error)
}
