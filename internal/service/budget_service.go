package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/moneta-app/finance-server/internal/operator"
	"github.com/moneta-app/finance-server/internal/operator/actions"
	"github.com/moneta-app/finance-server/internal/storage"
	"github.com/moneta-app/finance-server/internal/storage/sqlconfig"
)

// BudgetService handles budget business logic. Creates are routed through the
// write operator so the overlap check and the write happen in one serialized
// transaction.
type BudgetService struct {
	storage  *storage.Storage
	operator *operator.OperatorDelegator
	now      func() time.Time
}

// NewBudgetService creates a new BudgetService.
func NewBudgetService(store *storage.Storage, op *operator.OperatorDelegator) *BudgetService {
	return &BudgetService{storage: store, operator: op, now: time.Now}
}

// attachSpending augments a budget with spent and remaining amounts derived
// from expense transactions in its date range.
func (s *BudgetService) attachSpending(ctx context.Context, userID uuid.UUID, budget *Budget) error {
	spent, err := s.storage.Transactions.SumForCategory(
		ctx, userID, budget.CategoryID, sqlconfig.EntryTypeExpense, budget.StartDate, budget.EndDate)
	if err != nil {
		return err
	}
	budget.SpentAmount = spent
	budget.RemainingAmount = budget.Amount.Sub(spent)
	return nil
}

// ListBudgets returns all of the user's budgets with spending attached.
func (s *BudgetService) ListBudgets(ctx context.Context, userID uuid.UUID) ([]*Budget, error) {
	rows, err := s.storage.Budgets.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	budgets := make([]*Budget, len(rows))
	for i, row := range rows {
		budget := budgetFromStorage(row)
		if err := s.attachSpending(ctx, userID, budget); err != nil {
			return nil, err
		}
		budgets[i] = budget
	}
	return budgets, nil
}

// GetBudget retrieves one of the user's budgets with spending attached.
func (s *BudgetService) GetBudget(ctx context.Context, userID, id uuid.UUID) (*Budget, error) {
	row, err := s.storage.Budgets.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	budget := budgetFromStorage(row)
	if err := s.attachSpending(ctx, userID, budget); err != nil {
		return nil, err
	}
	return budget, nil
}

// CreateBudget inserts a budget, or updates the user's existing budget for
// the category when its date range overlaps the requested one (last write
// wins). Reports whether an existing budget was updated.
func (s *BudgetService) CreateBudget(ctx context.Context, userID uuid.UUID, create BudgetCreate) (*Budget, bool, error) {
	action := &actions.UpsertBudget{
		UserID:     userID,
		CategoryID: create.CategoryID,
		Amount:     create.Amount,
		StartDate:  create.StartDate,
		EndDate:    create.EndDate,
	}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, false, err
	}

	budget := budgetFromStorage(action.Result)
	if err := s.attachSpending(ctx, userID, budget); err != nil {
		return nil, false, err
	}
	return budget, action.Updated, nil
}

// UpdateBudget applies a partial update to one of the user's budgets.
func (s *BudgetService) UpdateBudget(ctx context.Context, userID, id uuid.UUID, patch BudgetPatch) (*Budget, error) {
	row, err := s.storage.Budgets.Update(ctx, userID, id, &sqlconfig.BudgetPatch{
		CategoryID: patch.CategoryID,
		Amount:     patch.Amount,
		StartDate:  patch.StartDate,
		EndDate:    patch.EndDate,
	})
	if err != nil {
		return nil, err
	}
	budget := budgetFromStorage(row)
	if err := s.attachSpending(ctx, userID, budget); err != nil {
		return nil, err
	}
	return budget, nil
}

// DeleteBudget removes one of the user's budgets.
func (s *BudgetService) DeleteBudget(ctx context.Context, userID, id uuid.UUID) error {
	return s.storage.Budgets.Delete(ctx, userID, id)
}

// Summary aggregates the current calendar month's budgets against actual
// spend. Categories with spend but no budget are reported break-even (the
// spend itself is the budget figure, remaining zero); categories with a
// budget but no spend are appended after the active ones with their full
// amount remaining.
func (s *BudgetService) Summary(ctx context.Context, userID uuid.UUID) (*BudgetSummary, error) {
	start, end := currentMonthWindow(s.now())

	spends, err := s.storage.Transactions.ExpensesByCategory(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}
	budgets, err := s.storage.Budgets.ListOverlappingRange(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	budgetByCategory := make(map[uuid.UUID]*sqlconfig.Budget, len(budgets))
	for _, budget := range budgets {
		budgetByCategory[budget.CategoryID] = budget
	}

	summary := &BudgetSummary{Categories: []BudgetSummaryCategory{}}
	activeCategories := make(map[uuid.UUID]bool, len(spends))

	for _, spend := range spends {
		activeCategories[spend.CategoryID] = true

		budgetAmount := spend.Total // break-even default
		if budget, ok := budgetByCategory[spend.CategoryID]; ok {
			budgetAmount = budget.Amount
		}

		summary.Budgeted = summary.Budgeted.Add(budgetAmount)
		summary.Spent = summary.Spent.Add(spend.Total)
		summary.Categories = append(summary.Categories, BudgetSummaryCategory{
			Name:      spend.CategoryName,
			Budget:    budgetAmount,
			Spent:     spend.Total,
			Remaining: budgetAmount.Sub(spend.Total),
		})
	}

	for _, budget := range budgets {
		if activeCategories[budget.CategoryID] {
			continue
		}
		summary.Budgeted = summary.Budgeted.Add(budget.Amount)
		summary.Categories = append(summary.Categories, BudgetSummaryCategory{
			Name:      budget.CategoryName,
			Budget:    budget.Amount,
			Spent:     decimal.Zero,
			Remaining: budget.Amount,
		})
	}

	summary.Remaining = summary.Budgeted.Sub(summary.Spent)
	return summary, nil
}
