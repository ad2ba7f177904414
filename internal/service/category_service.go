package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"

	"github.com/moneta-app/finance-server/internal/defaults"
	"github.com/moneta-app/finance-server/internal/storage"
	"github.com/moneta-app/finance-server/internal/storage/sqlconfig"
)

// CategoryService handles category business logic.
type CategoryService struct {
	storage *storage.Storage
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(store *storage.Storage) *CategoryService {
	return &CategoryService{storage: store}
}

// ListCategories returns all of the user's categories.
func (s *CategoryService) ListCategories(ctx context.Context, userID uuid.UUID) ([]*Category, error) {
	rows, err := s.storage.Categories.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	categories := make([]*Category, len(rows))
	for i, row := range rows {
		categories[i] = categoryFromStorage(row)
	}
	return categories, nil
}

// GetCategory retrieves one of the user's categories.
func (s *CategoryService) GetCategory(ctx context.Context, userID, id uuid.UUID) (*Category, error) {
	row, err := s.storage.Categories.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return categoryFromStorage(row), nil
}

// CreateCategory creates a new category for the user.
func (s *CategoryService) CreateCategory(ctx context.Context, userID uuid.UUID, name, description, categoryType string) (*Category, error) {
	row, err := s.storage.Categories.Insert(ctx, &sqlconfig.CategoryCreate{
		UserID:      userID,
		Name:        name,
		Description: description,
		Type:        sqlconfig.EntryType(categoryType),
	})
	if err != nil {
		return nil, err
	}
	return categoryFromStorage(row), nil
}

// UpdateCategory applies a partial update to one of the user's categories.
func (s *CategoryService) UpdateCategory(ctx context.Context, userID, id uuid.UUID, patch CategoryPatch) (*Category, error) {
	storagePatch := &sqlconfig.CategoryPatch{
		Name:        patch.Name,
		Description: patch.Description,
	}
	if patch.Type != nil {
		entryType := sqlconfig.EntryType(*patch.Type)
		storagePatch.Type = &entryType
	}

	row, err := s.storage.Categories.Update(ctx, userID, id, storagePatch)
	if err != nil {
		return nil, err
	}
	return categoryFromStorage(row), nil
}

// DeleteCategory removes one of the user's categories.
func (s *CategoryService) DeleteCategory(ctx context.Context, userID, id uuid.UUID) error {
	return s.storage.Categories.Delete(ctx, userID, id)
}

// InitializeDefaults seeds the fixed starter catalog with get-or-create
// semantics. Idempotent: once every catalog name exists, repeated calls
// create nothing. Returns how many categories were created and the user's
// total category count afterwards.
func (s *CategoryService) InitializeDefaults(ctx context.Context, userID uuid.UUID) (created, total int, err error) {
	for _, seed := range defaults.Categories() {
		_, err := s.storage.Categories.FindByName(ctx, userID, seed.Name)
		if err == nil {
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return 0, 0, err
		}

		_, err = s.storage.Categories.Insert(ctx, &sqlconfig.CategoryCreate{
			UserID:      userID,
			Name:        seed.Name,
			Description: seed.Description,
			Type:        seed.Type,
		})
		if err != nil {
			return 0, 0, err
		}
		created++
	}

	total, err = s.storage.Categories.CountForUser(ctx, userID)
	if err != nil {
		return 0, 0, err
	}
	return created, total, nil
}
