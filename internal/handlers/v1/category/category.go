package category

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/moneta-app/finance-server/internal/auth"
	"github.com/moneta-app/finance-server/internal/service"
)

// Category is the wire representation of a category.
type Category struct {
	ID          string `json:"id" doc:"Category UUID"`
	Name        string `json:"name" doc:"Category name"`
	Description string `json:"description" doc:"Category description"`
	Type        string `json:"type" doc:"income or expense"`
	CreatedAt   string `json:"created_at" doc:"RFC3339 creation time"`
	UpdatedAt   string `json:"updated_at" doc:"RFC3339 last update time"`
}

func fromService(c *service.Category) Category {
	return Category{
		ID:          c.ID.String(),
		Name:        c.Name,
		Description: c.Description,
		Type:        c.Type,
		CreatedAt:   c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   c.UpdatedAt.Format(time.RFC3339),
	}
}

func userFromContext(ctx context.Context) (uuid.UUID, error) {
	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		return uuid.Nil, huma.NewError(http.StatusUnauthorized, "authentication required")
	}
	return userID, nil
}

func parseCategoryID(raw string) (uuid.UUID, error) {
	id, err := uuid.FromString(raw)
	if err != nil {
		return uuid.Nil, huma.NewError(http.StatusBadRequest, "invalid category id")
	}
	return id, nil
}
