package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/moneta-app/finance-server/internal/storage/sqlconfig"
)

// Transaction represents a transaction in the service layer.
type Transaction struct {
	ID           uuid.UUID
	CategoryID   uuid.UUID
	CategoryName string
	Amount       decimal.Decimal
	Type         string
	Description  string
	Date         time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TransactionCreate is the input for creating a transaction.
type TransactionCreate struct {
	CategoryID  uuid.UUID
	Amount      decimal.Decimal
	Type        string
	Description string
	Date        time.Time
}

// TransactionPatch is a partial transaction update; nil fields are left unchanged.
type TransactionPatch struct {
	CategoryID  *uuid.UUID
	Amount      *decimal.Decimal
	Type        *string
	Description *string
	Date        *time.Time
}

// TransactionFilter mirrors the list endpoint's query predicates.
type TransactionFilter struct {
	CategoryID *uuid.UUID
	Type       *string
	MinDate    *time.Time
	MaxDate    *time.Time
	MinAmount  *decimal.Decimal
	MaxAmount  *decimal.Decimal
	Search     string
}

// MonthlyTrend is one bucket of the six-month trend series.
type MonthlyTrend struct {
	Month    string
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Savings  decimal.Decimal
}

func transactionFromStorage(row *sqlconfig.Transaction) *Transaction {
	return &Transaction{
		ID:           row.ID,
		CategoryID:   row.CategoryID,
		CategoryName: row.CategoryName,
		Amount:       row.Amount,
		Type:         string(row.Type),
		Description:  row.Description,
		Date:         row.Date,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}

func transactionsFromStorage(rows []*sqlconfig.Transaction) []*Transaction {
	transactions := make([]*Transaction, len(rows))
	for i, row := range rows {
		transactions[i] = transactionFromStorage(row)
	}
	return transactions
}
