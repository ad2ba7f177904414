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

var categoryColumns = []string{
	"id", "user_id", "name", "description", "type", "created_at", "updated_at",
}

var _ ICategoryTable = (*CategoriesTable)(nil)

// CategoriesTable provides access to the categories table.
type CategoriesTable struct {
	exec bob.Executor
}

// NewCategoriesTable creates a CategoriesTable bound to the given executor.
func NewCategoriesTable(exec bob.Executor) CategoriesTable {
	return CategoriesTable{exec: exec}
}

// List returns all of the user's categories in creation order.
func (t *CategoriesTable) List(ctx context.Context, userID uuid.UUID) ([]*Category, error) {
	q := psql.Select(
		sm.Columns(toAnySlice(categoryColumns)...),
		sm.From("categories"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.OrderBy("created_at").Asc(),
		sm.OrderBy("id").Asc(),
	)
	return bob.All(ctx, t.exec, q, scan.StructMapper[*Category]())
}

// FindByID retrieves one of the user's categories by primary key.
func (t *CategoriesTable) FindByID(ctx context.Context, userID, id uuid.UUID) (*Category, error) {
	q := psql.Select(
		sm.Columns(toAnySlice(categoryColumns)...),
		sm.From("categories"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[Category]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// FindByName retrieves one of the user's categories by name. Duplicate names
// are tolerated; the oldest row wins, matching the get-or-create seeding.
func (t *CategoriesTable) FindByName(ctx context.Context, userID uuid.UUID, name string) (*Category, error) {
	q := psql.Select(
		sm.Columns(toAnySlice(categoryColumns)...),
		sm.From("categories"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.Where(psql.Quote("name").EQ(psql.Arg(name))),
		sm.OrderBy("created_at").Asc(),
		sm.Limit(1),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[Category]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Insert creates a new category and returns the stored row.
func (t *CategoriesTable) Insert(ctx context.Context, create *CategoryCreate) (*Category, error) {
	id := uuid.Must(uuid.NewV4())
	q := psql.Insert(
		im.Into("categories", "id", "user_id", "name", "description", "type"),
		im.Values(psql.Arg(id, create.UserID, create.Name, create.Description, create.Type)),
		im.Returning(toAnySlice(categoryColumns)...),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[Category]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Update applies a partial update scoped to the owning user.
func (t *CategoriesTable) Update(ctx context.Context, userID, id uuid.UUID, patch *CategoryPatch) (*Category, error) {
	queryMods := []bob.Mod[*dialect.UpdateQuery]{
		um.Table("categories"),
		um.SetCol("updated_at").ToArg(time.Now().UTC()),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
	}
	if patch.Name != nil {
		queryMods = append(queryMods, um.SetCol("name").ToArg(*patch.Name))
	}
	if patch.Description != nil {
		queryMods = append(queryMods, um.SetCol("description").ToArg(*patch.Description))
	}
	if patch.Type != nil {
		queryMods = append(queryMods, um.SetCol("type").ToArg(*patch.Type))
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

// Delete removes one of the user's categories.
func (t *CategoriesTable) Delete(ctx context.Context, userID, id uuid.UUID) error {
	q := psql.Delete(
		dm.From("categories"),
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

// CountForUser returns how many categories the user owns.
func (t *CategoriesTable) CountForUser(ctx context.Context, userID uuid.UUID) (int, error) {
	q := psql.RawQuery(`SELECT COUNT(*) FROM categories WHERE user_id = ?`, userID)
	return bob.One(ctx, t.exec, q, scan.SingleColumnMapper[int])
}
