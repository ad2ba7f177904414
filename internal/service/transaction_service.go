package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/moneta-app/finance-server/internal/storage"
	"github.com/moneta-app/finance-server/internal/storage/sqlconfig"
)

const trendMonths = 6

// TransactionService handles transaction business logic.
type TransactionService struct {
	storage *storage.Storage
	now     func() time.Time
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage) *TransactionService {
	return &TransactionService{storage: store, now: time.Now}
}

// ListTransactions returns the user's transactions matching the filter.
func (s *TransactionService) ListTransactions(ctx context.Context, userID uuid.UUID, filter *TransactionFilter) ([]*Transaction, error) {
	var storageFilter *sqlconfig.TransactionFilter
	if filter != nil {
		storageFilter = &sqlconfig.TransactionFilter{
			CategoryID: filter.CategoryID,
			MinDate:    filter.MinDate,
			MaxDate:    filter.MaxDate,
			MinAmount:  filter.MinAmount,
			MaxAmount:  filter.MaxAmount,
			Search:     filter.Search,
		}
		if filter.Type != nil {
			entryType := sqlconfig.EntryType(*filter.Type)
			storageFilter.Type = &entryType
		}
	}

	rows, err := s.storage.Transactions.List(ctx, userID, storageFilter)
	if err != nil {
		return nil, err
	}
	return transactionsFromStorage(rows), nil
}

// GetTransaction retrieves one of the user's transactions.
func (s *TransactionService) GetTransaction(ctx context.Context, userID, id uuid.UUID) (*Transaction, error) {
	row, err := s.storage.Transactions.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return transactionFromStorage(row), nil
}

// CreateTransaction records a new transaction for the user. The transaction
// type is deliberately not validated against the category's type; mixed
// entries are accepted as-is.
func (s *TransactionService) CreateTransaction(ctx context.Context, userID uuid.UUID, create TransactionCreate) (*Transaction, error) {
	date := create.Date
	if date.IsZero() {
		date = s.now()
	}

	row, err := s.storage.Transactions.Insert(ctx, &sqlconfig.TransactionCreate{
		UserID:      userID,
		CategoryID:  create.CategoryID,
		Amount:      create.Amount,
		Type:        sqlconfig.EntryType(create.Type),
		Description: create.Description,
		Date:        date,
	})
	if err != nil {
		return nil, err
	}
	return transactionFromStorage(row), nil
}

// UpdateTransaction applies a partial update to one of the user's transactions.
func (s *TransactionService) UpdateTransaction(ctx context.Context, userID, id uuid.UUID, patch TransactionPatch) (*Transaction, error) {
	storagePatch := &sqlconfig.TransactionPatch{
		CategoryID:  patch.CategoryID,
		Amount:      patch.Amount,
		Description: patch.Description,
		Date:        patch.Date,
	}
	if patch.Type != nil {
		entryType := sqlconfig.EntryType(*patch.Type)
		storagePatch.Type = &entryType
	}

	row, err := s.storage.Transactions.Update(ctx, userID, id, storagePatch)
	if err != nil {
		return nil, err
	}
	return transactionFromStorage(row), nil
}

// DeleteTransaction removes one of the user's transactions.
func (s *TransactionService) DeleteTransaction(ctx context.Context, userID, id uuid.UUID) error {
	return s.storage.Transactions.Delete(ctx, userID, id)
}

// MonthlyTrends returns income, expense, and savings totals for the six
// calendar months ending at the current month, oldest first.
func (s *TransactionService) MonthlyTrends(ctx context.Context, userID uuid.UUID) ([]MonthlyTrend, error) {
	trends := make([]MonthlyTrend, 0, trendMonths)

	for _, window := range monthWindows(s.now(), trendMonths) {
		income, err := s.storage.Transactions.SumAmount(ctx, userID, sqlconfig.EntryTypeIncome, window.start, window.end)
		if err != nil {
			return nil, err
		}
		expenses, err := s.storage.Transactions.SumAmount(ctx, userID, sqlconfig.EntryTypeExpense, window.start, window.end)
		if err != nil {
			return nil, err
		}

		trends = append(trends, MonthlyTrend{
			Month:    window.start.Format("Jan 2006"),
			Income:   income,
			Expenses: expenses,
			Savings:  income.Sub(expenses),
		})
	}

	return trends, nil
}

type monthWindow struct {
	start time.Time
	end   time.Time
}

// monthWindows returns the first/last calendar day of the n months ending at
// now's month, oldest first. time.Date normalizes out-of-range months, so the
// window crosses year boundaries correctly.
func monthWindows(now time.Time, n int) []monthWindow {
	windows := make([]monthWindow, 0, n)
	for i := n - 1; i >= 0; i-- {
		start := time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(0, 1, -1)
		windows = append(windows, monthWindow{start: start, end: end})
	}
	return windows
}

// currentMonthWindow returns the first and last day of now's calendar month.
func currentMonthWindow(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, -1)
}
