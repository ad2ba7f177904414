package sqlconfig

import (
	"context"
	"database/sql"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/bob/mods"
	"github.com/stephenafamo/scan"
)

var _ ITransactionTable = (*TransactionsTable)(nil)

// TransactionsTable provides access to the transactions table.
type TransactionsTable struct {
	exec bob.Executor
}

// NewTransactionsTable creates a TransactionsTable bound to the given executor.
func NewTransactionsTable(exec bob.Executor) TransactionsTable {
	return TransactionsTable{exec: exec}
}

// transactionSelectMods builds the base SELECT joining in the category name.
func transactionSelectMods(userID uuid.UUID) []bob.Mod[*dialect.SelectQuery] {
	return []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(
			"t.id", "t.user_id", "t.category_id",
			psql.Raw("c.name AS category_name"),
			"t.amount", "t.type", "t.description", "t.date",
			"t.created_at", "t.updated_at",
		),
		sm.From("transactions AS t"),
		sm.InnerJoin("categories AS c").On(psql.Raw("t.category_id = c.id")),
		sm.Where(psql.Raw("t.user_id = ?", userID)),
	}
}

// List returns the user's transactions matching the filter, newest first.
func (t *TransactionsTable) List(ctx context.Context, userID uuid.UUID, filter *TransactionFilter) ([]*Transaction, error) {
	queryMods := transactionSelectMods(userID)

	if filter != nil {
		var whereMods []mods.Where[*dialect.SelectQuery]
		if filter.CategoryID != nil {
			whereMods = append(whereMods, sm.Where(psql.Raw("t.category_id = ?", *filter.CategoryID)))
		}
		if filter.Type != nil {
			whereMods = append(whereMods, sm.Where(psql.Raw("t.type = ?", *filter.Type)))
		}
		if filter.MinDate != nil {
			whereMods = append(whereMods, sm.Where(psql.Raw("t.date >= ?", *filter.MinDate)))
		}
		if filter.MaxDate != nil {
			whereMods = append(whereMods, sm.Where(psql.Raw("t.date <= ?", *filter.MaxDate)))
		}
		if filter.MinAmount != nil {
			whereMods = append(whereMods, sm.Where(psql.Raw("t.amount >= ?", *filter.MinAmount)))
		}
		if filter.MaxAmount != nil {
			whereMods = append(whereMods, sm.Where(psql.Raw("t.amount <= ?", *filter.MaxAmount)))
		}
		if filter.Search != "" {
			pattern := "%" + filter.Search + "%"
			whereMods = append(whereMods, sm.Where(
				psql.Raw("(t.description ILIKE ? OR c.name ILIKE ?)", pattern, pattern),
			))
		}
		for _, whereMod := range whereMods {
			queryMods = append(queryMods, whereMod)
		}
	}

	queryMods = append(queryMods,
		sm.OrderBy("t.date").Desc(),
		sm.OrderBy("t.created_at").Desc(),
	)
	return bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[*Transaction]())
}

// FindByID retrieves one of the user's transactions by primary key.
func (t *TransactionsTable) FindByID(ctx context.Context, userID, id uuid.UUID) (*Transaction, error) {
	queryMods := transactionSelectMods(userID)
	queryMods = append(queryMods, sm.Where(psql.Raw("t.id = ?", id)))

	row, err := bob.One(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[Transaction]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Insert creates a new transaction and returns the stored row.
func (t *TransactionsTable) Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error) {
	id := uuid.Must(uuid.NewV4())
	q := psql.Insert(
		im.Into("transactions", "id", "user_id", "category_id", "amount", "type", "description", "date"),
		im.Values(psql.Arg(id, create.UserID, create.CategoryID, create.Amount, create.Type, create.Description, create.Date)),
	)
	if _, err := bob.Exec(ctx, t.exec, q); err != nil {
		return nil, err
	}
	return t.FindByID(ctx, create.UserID, id)
}

// Update applies a partial update scoped to the owning user.
func (t *TransactionsTable) Update(ctx context.Context, userID, id uuid.UUID, patch *TransactionPatch) (*Transaction, error) {
	queryMods := []bob.Mod[*dialect.UpdateQuery]{
		um.Table("transactions"),
		um.SetCol("updated_at").ToArg(time.Now().UTC()),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
	}
	if patch.CategoryID != nil {
		queryMods = append(queryMods, um.SetCol("category_id").ToArg(*patch.CategoryID))
	}
	if patch.Amount != nil {
		queryMods = append(queryMods, um.SetCol("amount").ToArg(*patch.Amount))
	}
	if patch.Type != nil {
		queryMods = append(queryMods, um.SetCol("type").ToArg(*patch.Type))
	}
	if patch.Description != nil {
		queryMods = append(queryMods, um.SetCol("description").ToArg(*patch.Description))
	}
	if patch.Date != nil {
		queryMods = append(queryMods, um.SetCol("date").ToArg(*patch.Date))
	}

	result, err := bob.Exec(ctx, t.exec, psql.Update(queryMods...))
	if err != nil {
		return nil, err
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return nil, sql.ErrNoRows
	}
	return t.FindByID(ctx, userID, id)
}

// Delete removes one of the user's transactions.
func (t *TransactionsTable) Delete(ctx context.Context, userID, id uuid.UUID) error {
	q := psql.Delete(
		dm.From("transactions"),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		dm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
	)
	result, err := bob.Exec(ctx, t.exec, q)
	if err != nil {
		return err
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// SumAmount totals transactions of one type in [start, end].
func (t *TransactionsTable) SumAmount(ctx context.Context, userID uuid.UUID, entryType EntryType, start, end time.Time) (decimal.Decimal, error) {
	q := psql.RawQuery(
		`SELECT COALESCE(SUM(amount), 0) FROM transactions
		 WHERE user_id = ? AND type = ? AND date BETWEEN ? AND ?`,
		userID, entryType, start, end,
	)
	return bob.One(ctx, t.exec, q, scan.SingleColumnMapper[decimal.Decimal])
}

// SumForCategory totals transactions of one type for a single category in [start, end].
func (t *TransactionsTable) SumForCategory(ctx context.Context, userID, categoryID uuid.UUID, entryType EntryType, start, end time.Time) (decimal.Decimal, error) {
	q := psql.RawQuery(
		`SELECT COALESCE(SUM(amount), 0) FROM transactions
		 WHERE user_id = ? AND category_id = ? AND type = ? AND date BETWEEN ? AND ?`,
		userID, categoryID, entryType, start, end,
	)
	return bob.One(ctx, t.exec, q, scan.SingleColumnMapper[decimal.Decimal])
}

// ExpensesByCategory groups expense totals per category in [start, end], largest first.
func (t *TransactionsTable) ExpensesByCategory(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*CategorySpend, error) {
	q := psql.RawQuery(
		`SELECT t.category_id, c.name AS category_name, SUM(t.amount) AS total
		 FROM transactions t
		 JOIN categories c ON t.category_id = c.id
		 WHERE t.user_id = ? AND t.type = 'expense' AND t.date BETWEEN ? AND ?
		 GROUP BY t.category_id, c.name
		 ORDER BY total DESC`,
		userID, start, end,
	)
	return bob.All(ctx, t.exec, q, scan.StructMapper[*CategorySpend]())
}

// Recent returns the newest transactions in [start, end].
func (t *TransactionsTable) Recent(ctx context.Context, userID uuid.UUID, start, end time.Time, limit int) ([]*Transaction, error) {
	queryMods := transactionSelectMods(userID)
	queryMods = append(queryMods,
		sm.Where(psql.Raw("t.date BETWEEN ? AND ?", start, end)),
		sm.OrderBy("t.date").Desc(),
		sm.OrderBy("t.created_at").Desc(),
		sm.Limit(limit),
	)
	return bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[*Transaction]())
}
