package service

import (
	"github.com/moneta-app/finance-server/internal/auth"
	"github.com/moneta-app/finance-server/internal/operator"
	"github.com/moneta-app/finance-server/internal/storage"
)

// Service holds all business logic services.
type Service struct {
	Category    *CategoryService
	Transaction *TransactionService
	Budget      *BudgetService
	Dashboard   *DashboardService
	User        *UserService
	Auth        *AuthService
}

// NewService creates a new Service with the given storage, write operator,
// and token issuer.
func NewService(store *storage.Storage, op *operator.OperatorDelegator, issuer *auth.TokenIssuer) *Service {
	return &Service{
		Category:    NewCategoryService(store),
		Transaction: NewTransactionService(store),
		Budget:      NewBudgetService(store, op),
		Dashboard:   NewDashboardService(store),
		User:        NewUserService(store, op),
		Auth:        NewAuthService(store, issuer),
	}
}
