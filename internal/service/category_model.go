package service

import (
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/moneta-app/finance-server/internal/storage/sqlconfig"
)

// Category represents a category in the service layer.
type Category struct {
	ID          uuid.UUID
	Name        string
	Description string
	Type        string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CategoryPatch is a partial category update; nil fields are left unchanged.
type CategoryPatch struct {
	Name        *string
	Description *string
	Type        *string
}

func categoryFromStorage(row *sqlconfig.Category) *Category {
	return &Category{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		Type:        string(row.Type),
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}
