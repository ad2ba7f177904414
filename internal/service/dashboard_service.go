package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/moneta-app/finance-server/internal/storage"
	"github.com/moneta-app/finance-server/internal/storage/sqlconfig"
)

const recentTransactionLimit = 5

// CategoryExpense is one entry of the dashboard's per-category expense
// breakdown, ordered largest first.
type CategoryExpense struct {
	Name   string
	Amount decimal.Decimal
}

// Dashboard aggregates totals for a date range. All sums are zero, never
// absent, when no transactions match.
type Dashboard struct {
	TotalIncome        decimal.Decimal
	TotalExpenses      decimal.Decimal
	NetSavings         decimal.Decimal
	ExpensesByCategory []CategoryExpense
	RecentTransactions []*Transaction
}

// DashboardService computes the dashboard aggregates.
type DashboardService struct {
	storage *storage.Storage
	now     func() time.Time
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(store *storage.Storage) *DashboardService {
	return &DashboardService{storage: store, now: time.Now}
}

// Overview returns the user's totals for [start, end]. Zero times default to
// the first of the current month and today respectively.
func (s *DashboardService) Overview(ctx context.Context, userID uuid.UUID, start, end time.Time) (*Dashboard, error) {
	now := s.now()
	if start.IsZero() {
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	}
	if end.IsZero() {
		end = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	}

	income, err := s.storage.Transactions.SumAmount(ctx, userID, sqlconfig.EntryTypeIncome, start, end)
	if err != nil {
		return nil, err
	}
	expenses, err := s.storage.Transactions.SumAmount(ctx, userID, sqlconfig.EntryTypeExpense, start, end)
	if err != nil {
		return nil, err
	}

	spends, err := s.storage.Transactions.ExpensesByCategory(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}
	byCategory := make([]CategoryExpense, len(spends))
	for i, spend := range spends {
		byCategory[i] = CategoryExpense{Name: spend.CategoryName, Amount: spend.Total}
	}

	recent, err := s.storage.Transactions.Recent(ctx, userID, start, end, recentTransactionLimit)
	if err != nil {
		return nil, err
	}

	return &Dashboard{
		TotalIncome:        income,
		TotalExpenses:      expenses,
		NetSavings:         income.Sub(expenses),
		ExpensesByCategory: byCategory,
		RecentTransactions: transactionsFromStorage(recent),
	}, nil
}
