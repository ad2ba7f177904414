package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/moneta-app/finance-server/internal/storage/sqlconfig"
)

// Writer exposes the tables bound to one open transaction.
type Writer struct {
	tx bob.Tx

	Users      sqlconfig.IUserTable
	Categories sqlconfig.ICategoryTable
	Budgets    sqlconfig.IBudgetTable
}

func NewWriter(tx bob.Tx) *Writer {
	users := sqlconfig.NewUsersTable(tx)
	categories := sqlconfig.NewCategoriesTable(tx)
	budgets := sqlconfig.NewBudgetsTable(tx)

	return &Writer{
		tx:         tx,
		Users:      &users,
		Categories: &categories,
		Budgets:    &budgets,
	}
}

func (w *Writer) Commit() error {
	return w.tx.Commit(context.Background())
}

func (w *Writer) Rollback() error {
	return w.tx.Rollback(context.Background())
}
