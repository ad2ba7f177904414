// Package defaults holds the fixed starter-category catalog seeded for every
// new user and by the initialize_defaults endpoint.
package defaults

import "github.com/moneta-app/finance-server/internal/storage/sqlconfig"

// CategorySeed is one entry of the starter catalog.
type CategorySeed struct {
	Name        string
	Description string
	Type        sqlconfig.EntryType
}

// Categories returns the fixed 18-entry starter catalog: 5 income and 13
// expense categories.
func Categories() []CategorySeed {
	return []CategorySeed{
		{Name: "Salary", Description: "Regular employment income", Type: sqlconfig.EntryTypeIncome},
		{Name: "Freelance", Description: "Income from freelance work", Type: sqlconfig.EntryTypeIncome},
		{Name: "Investments", Description: "Income from investments", Type: sqlconfig.EntryTypeIncome},
		{Name: "Bonus", Description: "Work bonuses and rewards", Type: sqlconfig.EntryTypeIncome},
		{Name: "Other Income", Description: "Other sources of income", Type: sqlconfig.EntryTypeIncome},

		{Name: "Groceries", Description: "Food and household items", Type: sqlconfig.EntryTypeExpense},
		{Name: "Rent/Mortgage", Description: "Housing expenses", Type: sqlconfig.EntryTypeExpense},
		{Name: "Utilities", Description: "Electricity, water, gas, etc.", Type: sqlconfig.EntryTypeExpense},
		{Name: "Transportation", Description: "Public transport, fuel, car maintenance", Type: sqlconfig.EntryTypeExpense},
		{Name: "Entertainment", Description: "Movies, games, hobbies", Type: sqlconfig.EntryTypeExpense},
		{Name: "Dining Out", Description: "Restaurants and takeout", Type: sqlconfig.EntryTypeExpense},
		{Name: "Shopping", Description: "Clothing and personal items", Type: sqlconfig.EntryTypeExpense},
		{Name: "Healthcare", Description: "Medical expenses and insurance", Type: sqlconfig.EntryTypeExpense},
		{Name: "Education", Description: "Courses, books, training", Type: sqlconfig.EntryTypeExpense},
		{Name: "Travel", Description: "Vacations and trips", Type: sqlconfig.EntryTypeExpense},
		{Name: "Bills", Description: "Regular monthly bills", Type: sqlconfig.EntryTypeExpense},
		{Name: "Subscriptions", Description: "Regular subscription services", Type: sqlconfig.EntryTypeExpense},
		{Name: "Other Expenses", Description: "Miscellaneous expenses", Type: sqlconfig.EntryTypeExpense},
	}
}
