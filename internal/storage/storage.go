package storage

import (
	"context"
	"database/sql"
	"log"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/moneta-app/finance-server/internal/config"
	"github.com/moneta-app/finance-server/internal/storage/sqlconfig"
)

// Storage bundles the database handle with per-table accessors. Read paths go
// through the table fields directly; multi-row write paths go through Write
// so they run inside a single transaction.
type Storage struct {
	DB            *sql.DB
	Users         sqlconfig.IUserTable
	Categories    sqlconfig.ICategoryTable
	Transactions  sqlconfig.ITransactionTable
	Budgets       sqlconfig.IBudgetTable
	RevokedTokens sqlconfig.IRevokedTokenTable

	bobDB bob.DB
}

func NewStorage(env *config.Config) *Storage {
	connStr := "postgres://" + env.PostgresUsername + ":" +
		env.PostgresPassword + "@" + env.PostgresAddress + ":" +
		env.PostgresPort + "/" + env.PostgresDB + "?sslmode=disable"

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatal(err)
	}

	bobDB := bob.NewDB(db)
	users := sqlconfig.NewUsersTable(bobDB)
	categories := sqlconfig.NewCategoriesTable(bobDB)
	transactions := sqlconfig.NewTransactionsTable(bobDB)
	budgets := sqlconfig.NewBudgetsTable(bobDB)
	revokedTokens := sqlconfig.NewRevokedTokensTable(bobDB)

	return &Storage{
		DB:            db,
		Users:         &users,
		Categories:    &categories,
		Transactions:  &transactions,
		Budgets:       &budgets,
		RevokedTokens: &revokedTokens,
		bobDB:         bobDB,
	}
}

// Write opens a transaction and returns a Writer whose tables are all bound
// to it. The caller must Commit or Rollback.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.bobDB.Begin(ctx)
	if err != nil {
		return nil, err
	}
	return NewWriter(tx), nil
}
