package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/moneta-app/finance-server/internal/storage/sqlconfig"
)

type mockCategoryTable struct {
	mock.Mock
}

func (m *mockCategoryTable) List(ctx context.Context, userID uuid.UUID) ([]*sqlconfig.Category, error) {
	args := m.Called(ctx, userID)
	rows, _ := args.Get(0).([]*sqlconfig.Category)
	return rows, args.Error(1)
}

func (m *mockCategoryTable) FindByID(ctx context.Context, userID, id uuid.UUID) (*sqlconfig.Category, error) {
	args := m.Called(ctx, userID, id)
	row, _ := args.Get(0).(*sqlconfig.Category)
	return row, args.Error(1)
}

func (m *mockCategoryTable) FindByName(ctx context.Context, userID uuid.UUID, name string) (*sqlconfig.Category, error) {
	args := m.Called(ctx, userID, name)
	row, _ := args.Get(0).(*sqlconfig.Category)
	return row, args.Error(1)
}

func (m *mockCategoryTable) Insert(ctx context.Context, create *sqlconfig.CategoryCreate) (*sqlconfig.Category, error) {
	args := m.Called(ctx, create)
	row, _ := args.Get(0).(*sqlconfig.Category)
	return row, args.Error(1)
}

func (m *mockCategoryTable) Update(ctx context.Context, userID, id uuid.UUID, patch *sqlconfig.CategoryPatch) (*sqlconfig.Category, error) {
	args := m.Called(ctx, userID, id, patch)
	row, _ := args.Get(0).(*sqlconfig.Category)
	return row, args.Error(1)
}

func (m *mockCategoryTable) Delete(ctx context.Context, userID, id uuid.UUID) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func (m *mockCategoryTable) CountForUser(ctx context.Context, userID uuid.UUID) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

type mockTransactionTable struct {
	mock.Mock
}

func (m *mockTransactionTable) List(ctx context.Context, userID uuid.UUID, filter *sqlconfig.TransactionFilter) ([]*sqlconfig.Transaction, error) {
	args := m.Called(ctx, userID, filter)
	rows, _ := args.Get(0).([]*sqlconfig.Transaction)
	return rows, args.Error(1)
}

func (m *mockTransactionTable) FindByID(ctx context.Context, userID, id uuid.UUID) (*sqlconfig.Transaction, error) {
	args := m.Called(ctx, userID, id)
	row, _ := args.Get(0).(*sqlconfig.Transaction)
	return row, args.Error(1)
}

func (m *mockTransactionTable) Insert(ctx context.Context, create *sqlconfig.TransactionCreate) (*sqlconfig.Transaction, error) {
	args := m.Called(ctx, create)
	row, _ := args.Get(0).(*sqlconfig.Transaction)
	return row, args.Error(1)
}

func (m *mockTransactionTable) Update(ctx context.Context, userID, id uuid.UUID, patch *sqlconfig.TransactionPatch) (*sqlconfig.Transaction, error) {
	args := m.Called(ctx, userID, id, patch)
	row, _ := args.Get(0).(*sqlconfig.Transaction)
	return row, args.Error(1)
}

func (m *mockTransactionTable) Delete(ctx context.Context, userID, id uuid.UUID) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func (m *mockTransactionTable) SumAmount(ctx context.Context, userID uuid.UUID, entryType sqlconfig.EntryType, start, end time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, userID, entryType, start, end)
	sum, _ := args.Get(0).(decimal.Decimal)
	return sum, args.Error(1)
}

func (m *mockTransactionTable) SumForCategory(ctx context.Context, userID, categoryID uuid.UUID, entryType sqlconfig.EntryType, start, end time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, userID, categoryID, entryType, start, end)
	sum, _ := args.Get(0).(decimal.Decimal)
	return sum, args.Error(1)
}

func (m *mockTransactionTable) ExpensesByCategory(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*sqlconfig.CategorySpend, error) {
	args := m.Called(ctx, userID, start, end)
	rows, _ := args.Get(0).([]*sqlconfig.CategorySpend)
	return rows, args.Error(1)
}

func (m *mockTransactionTable) Recent(ctx context.Context, userID uuid.UUID, start, end time.Time, limit int) ([]*sqlconfig.Transaction, error) {
	args := m.Called(ctx, userID, start, end, limit)
	rows, _ := args.Get(0).([]*sqlconfig.Transaction)
	return rows, args.Error(1)
}

type mockBudgetTable struct {
	mock.Mock
}

func (m *mockBudgetTable) List(ctx context.Context, userID uuid.UUID) ([]*sqlconfig.Budget, error) {
	args := m.Called(ctx, userID)
	rows, _ := args.Get(0).([]*sqlconfig.Budget)
	return rows, args.Error(1)
}

func (m *mockBudgetTable) FindByID(ctx context.Context, userID, id uuid.UUID) (*sqlconfig.Budget, error) {
	args := m.Called(ctx, userID, id)
	row, _ := args.Get(0).(*sqlconfig.Budget)
	return row, args.Error(1)
}

func (m *mockBudgetTable) Insert(ctx context.Context, create *sqlconfig.BudgetCreate) (*sqlconfig.Budget, error) {
	args := m.Called(ctx, create)
	row, _ := args.Get(0).(*sqlconfig.Budget)
	return row, args.Error(1)
}

func (m *mockBudgetTable) Update(ctx context.Context, userID, id uuid.UUID, patch *sqlconfig.BudgetPatch) (*sqlconfig.Budget, error) {
	args := m.Called(ctx, userID, id, patch)
	row, _ := args.Get(0).(*sqlconfig.Budget)
	return row, args.Error(1)
}

func (m *mockBudgetTable) Delete(ctx context.Context, userID, id uuid.UUID) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func (m *mockBudgetTable) FindOverlapping(ctx context.Context, userID, categoryID uuid.UUID, start, end time.Time) (*sqlconfig.Budget, error) {
	args := m.Called(ctx, userID, categoryID, start, end)
	row, _ := args.Get(0).(*sqlconfig.Budget)
	return row, args.Error(1)
}

func (m *mockBudgetTable) ListOverlappingRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*sqlconfig.Budget, error) {
	args := m.Called(ctx, userID, start, end)
	rows, _ := args.Get(0).([]*sqlconfig.Budget)
	return rows, args.Error(1)
}

type mockUserTable struct {
	mock.Mock
}

func (m *mockUserTable) FindByID(ctx context.Context, id uuid.UUID) (*sqlconfig.User, error) {
	args := m.Called(ctx, id)
	row, _ := args.Get(0).(*sqlconfig.User)
	return row, args.Error(1)
}

func (m *mockUserTable) FindByUsername(ctx context.Context, username string) (*sqlconfig.User, error) {
	args := m.Called(ctx, username)
	row, _ := args.Get(0).(*sqlconfig.User)
	return row, args.Error(1)
}

func (m *mockUserTable) Insert(ctx context.Context, create *sqlconfig.UserCreate) (*sqlconfig.User, error) {
	args := m.Called(ctx, create)
	row, _ := args.Get(0).(*sqlconfig.User)
	return row, args.Error(1)
}

func (m *mockUserTable) Update(ctx context.Context, id uuid.UUID, patch *sqlconfig.UserPatch) (*sqlconfig.User, error) {
	args := m.Called(ctx, id, patch)
	row, _ := args.Get(0).(*sqlconfig.User)
	return row, args.Error(1)
}

type mockRevokedTokenTable struct {
	mock.Mock
}

func (m *mockRevokedTokenTable) Revoke(ctx context.Context, jti, userID uuid.UUID, expiresAt time.Time) error {
	args := m.Called(ctx, jti, userID, expiresAt)
	return args.Error(0)
}

func (m *mockRevokedTokenTable) IsRevoked(ctx context.Context, jti uuid.UUID) (bool, error) {
	args := m.Called(ctx, jti)
	return args.Bool(0), args.Error(1)
}
