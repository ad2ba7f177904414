package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

var userColumns = []string{
	"id", "username", "email", "first_name", "last_name",
	"password_hash", "created_at", "updated_at",
}

var _ IUserTable = (*UsersTable)(nil)

// UsersTable provides access to the users table.
type UsersTable struct {
	exec bob.Executor
}

// NewUsersTable creates a UsersTable bound to the given executor.
func NewUsersTable(exec bob.Executor) UsersTable {
	return UsersTable{exec: exec}
}

// FindByID retrieves a user by primary key.
func (t *UsersTable) FindByID(ctx context.Context, id uuid.UUID) (*User, error) {
	q := psql.Select(
		sm.Columns(toAnySlice(userColumns)...),
		sm.From("users"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[User]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// FindByUsername retrieves a user by its unique username.
func (t *UsersTable) FindByUsername(ctx context.Context, username string) (*User, error) {
	q := psql.Select(
		sm.Columns(toAnySlice(userColumns)...),
		sm.From("users"),
		sm.Where(psql.Quote("username").EQ(psql.Arg(username))),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[User]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Insert creates a new user and returns the stored row.
func (t *UsersTable) Insert(ctx context.Context, create *UserCreate) (*User, error) {
	id := uuid.Must(uuid.NewV4())
	q := psql.Insert(
		im.Into("users", "id", "username", "email", "first_name", "last_name", "password_hash"),
		im.Values(psql.Arg(id, create.Username, create.Email, create.FirstName, create.LastName, create.PasswordHash)),
		im.Returning(toAnySlice(userColumns)...),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[User]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Update applies a partial update and returns the stored row.
func (t *UsersTable) Update(ctx context.Context, id uuid.UUID, patch *UserPatch) (*User, error) {
	queryMods := []bob.Mod[*dialect.UpdateQuery]{
		um.Table("users"),
		um.SetCol("updated_at").ToArg(time.Now().UTC()),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	}
	if patch.Email != nil {
		queryMods = append(queryMods, um.SetCol("email").ToArg(*patch.Email))
	}
	if patch.FirstName != nil {
		queryMods = append(queryMods, um.SetCol("first_name").ToArg(*patch.FirstName))
	}
	if patch.LastName != nil {
		queryMods = append(queryMods, um.SetCol("last_name").ToArg(*patch.LastName))
	}

	if _, err := bob.Exec(ctx, t.exec, psql.Update(queryMods...)); err != nil {
		return nil, err
	}
	return t.FindByID(ctx, id)
}

// toAnySlice adapts a column-name slice for variadic query mods.
func toAnySlice(columns []string) []any {
	out := make([]any, len(columns))
	for i, c := range columns {
		out[i] = c
	}
	return out
}
