package sqlconfig

import (
	"context"
	"database/sql"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

var _ IBudgetTable = (*BudgetsTable)(nil)

// BudgetsTable provides access to the budgets table.
type BudgetsTable struct {
	exec bob.Executor
}

// NewBudgetsTable creates a BudgetsTable bound to the given executor.
func NewBudgetsTable(exec bob.Executor) BudgetsTable {
	return BudgetsTable{exec: exec}
}

func budgetSelectMods(userID uuid.UUID) []bob.Mod[*dialect.SelectQuery] {
	return []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(
			"b.id", "b.user_id", "b.category_id",
			psql.Raw("c.name AS category_name"),
			"b.amount", "b.start_date", "b.end_date",
			"b.created_at", "b.updated_at",
		),
		sm.From("budgets AS b"),
		sm.InnerJoin("categories AS c").On(psql.Raw("b.category_id = c.id")),
		sm.Where(psql.Raw("b.user_id = ?", userID)),
	}
}

// List returns all of the user's budgets in creation order.
func (t *BudgetsTable) List(ctx context.Context, userID uuid.UUID) ([]*Budget, error) {
	queryMods := budgetSelectMods(userID)
	queryMods = append(queryMods,
		sm.OrderBy("b.created_at").Asc(),
		sm.OrderBy("b.id").Asc(),
	)
	return bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[*Budget]())
}

// FindByID retrieves one of the user's budgets by primary key.
func (t *BudgetsTable) FindByID(ctx context.Context, userID, id uuid.UUID) (*Budget, error) {
	queryMods := budgetSelectMods(userID)
	queryMods = append(queryMods, sm.Where(psql.Raw("b.id = ?", id)))

	row, err := bob.One(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[Budget]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Insert creates a new budget and returns the stored row.
func (t *BudgetsTable) Insert(ctx context.Context, create *BudgetCreate) (*Budget, error) {
	id := uuid.Must(uuid.NewV4())
	q := psql.Insert(
		im.Into("budgets", "id", "user_id", "category_id", "amount", "start_date", "end_date"),
		im.Values(psql.Arg(id, create.UserID, create.CategoryID, create.Amount, create.StartDate, create.EndDate)),
	)
	if _, err := bob.Exec(ctx, t.exec, q); err != nil {
		return nil, err
	}
	return t.FindByID(ctx, create.UserID, id)
}

// Update applies a partial update scoped to the owning user.
func (t *BudgetsTable) Update(ctx context.Context, userID, id uuid.UUID, patch *BudgetPatch) (*Budget, error) {
	queryMods := []bob.Mod[*dialect.UpdateQuery]{
		um.Table("budgets"),
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
	if patch.StartDate != nil {
		queryMods = append(queryMods, um.SetCol("start_date").ToArg(*patch.StartDate))
	}
	if patch.EndDate != nil {
		queryMods = append(queryMods, um.SetCol("end_date").ToArg(*patch.EndDate))
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

// Delete removes one of the user's budgets.
func (t *BudgetsTable) Delete(ctx context.Context, userID, id uuid.UUID) error {
	q := psql.Delete(
		dm.From("budgets"),
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

// FindOverlapping returns the user's budget for the category overlapping [start, end].
func (t *BudgetsTable) FindOverlapping(ctx context.Context, userID, categoryID uuid.UUID, start, end time.Time) (*Budget, error) {
	queryMods := budgetSelectMods(userID)
	queryMods = append(queryMods,
		sm.Where(psql.Raw("b.category_id = ?", categoryID)),
		sm.Where(psql.Raw("b.start_date <= ?", end)),
		sm.Where(psql.Raw("b.end_date >= ?", start)),
		sm.OrderBy("b.created_at").Asc(),
		sm.Limit(1),
	)
	row, err := bob.One(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[Budget]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// ListOverlappingRange returns the user's budgets overlapping [start, end].
func (t *BudgetsTable) ListOverlappingRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*Budget, error) {
	queryMods := budgetSelectMods(userID)
	queryMods = append(queryMods,
		sm.Where(psql.Raw("b.start_date <= ?", end)),
		sm.Where(psql.Raw("b.end_date >= ?", start)),
		sm.OrderBy("b.created_at").Asc(),
		sm.OrderBy("b.id").Asc(),
	)
	return bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[*Budget]())
}
