package category

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/moneta-app/finance-server/internal/service"
)

type mockCategoryDetailService struct {
	mock.Mock
}

func (m *mockCategoryDetailService) GetCategory(ctx context.Context, userID, id uuid.UUID) (*service.Category, error) {
	args := m.Called(ctx, userID, id)
	category, _ := args.Get(0).(*service.Category)
	return category, args.Error(1)
}

func (m *mockCategoryDetailService) UpdateCategory(ctx context.Context, userID, id uuid.UUID, patch service.CategoryPatch) (*service.Category, error) {
	args := m.Called(ctx, userID, id, patch)
	category, _ := args.Get(0).(*service.Category)
	return category, args.Error(1)
}

func (m *mockCategoryDetailService) DeleteCategory(ctx context.Context, userID, id uuid.UUID) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func TestHTTP_GetCategory(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	catID := uuid.Must(uuid.NewV4())
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	mockSvc := new(mockCategoryDetailService)
	mockSvc.On("GetCategory", mock.Anything, userID, catID).Return(&service.Category{
		ID: catID, Name: "Salary", Description: "Monthly pay", Type: "income", CreatedAt: now, UpdatedAt: now,
	}, nil)

	api := newAuthedTestAPI(t, userID, func(api huma.API) {
		NewCategoryDetailHandler(mockSvc).Register(api)
	})
	resp := api.Get("/categories/" + catID.String())

	assert.Equal(t, http.StatusOK, resp.Code)
	var body Category
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, catID.String(), body.ID)
	assert.Equal(t, "Salary", body.Name)
	assert.Equal(t, "income", body.Type)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_GetCategory_NotFound(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	catID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockCategoryDetailService)
	mockSvc.On("GetCategory", mock.Anything, userID, catID).
		Return((*service.Category)(nil), sql.ErrNoRows)

	api := newAuthedTestAPI(t, userID, func(api huma.API) {
		NewCategoryDetailHandler(mockSvc).Register(api)
	})
	resp := api.Get("/categories/" + catID.String())

	assert.Equal(t, http.StatusNotFound, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_UpdateCategory(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	catID := uuid.Must(uuid.NewV4())
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	newName := "Rent"

	mockSvc := new(mockCategoryDetailService)
	mockSvc.On("UpdateCategory", mock.Anything, userID, catID, mock.MatchedBy(func(patch service.CategoryPatch) bool {
		return patch.Name != nil && *patch.Name == newName && patch.Description == nil && patch.Type == nil
	})).Return(&service.Category{
		ID: catID, Name: newName, Type: "expense", CreatedAt: now, UpdatedAt: now,
	}, nil)

	api := newAuthedTestAPI(t, userID, func(api huma.API) {
		NewCategoryDetailHandler(mockSvc).Register(api)
	})
	resp := api.Patch("/categories/"+catID.String(), PatchCategoryBody{Name: &newName})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body Category
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, newName, body.Name)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_DeleteCategory(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	catID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockCategoryDetailService)
	mockSvc.On("DeleteCategory", mock.Anything, userID, catID).Return(nil)

	api := newAuthedTestAPI(t, userID, func(api huma.API) {
		NewCategoryDetailHandler(mockSvc).Register(api)
	})
	resp := api.Delete("/categories/" + catID.String())

	assert.Equal(t, http.StatusNoContent, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_DeleteCategory_NotFound(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	catID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockCategoryDetailService)
	mockSvc.On("DeleteCategory", mock.Anything, userID, catID).Return(sql.ErrNoRows)

	api := newAuthedTestAPI(t, userID, func(api huma.API) {
		NewCategoryDetailHandler(mockSvc).Register(api)
	})
	resp := api.Delete("/categories/" + catID.String())

	assert.Equal(t, http.StatusNotFound, resp.Code)
	mockSvc.AssertExpectations(t)
}
