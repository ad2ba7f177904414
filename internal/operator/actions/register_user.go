package actions

import (
	"context"

	"github.com/moneta-app/finance-server/internal/defaults"
	"github.com/moneta-app/finance-server/internal/storage"
	"github.com/moneta-app/finance-server/internal/storage/sqlconfig"
)

// RegisterUser creates a user account together with its starter categories in
// one transaction. A user is never observable without its default categories;
// if seeding fails the whole signup fails.
type RegisterUser struct {
	Username     string
	Email        string
	FirstName    string
	LastName     string
	PasswordHash string

	// Populated by Perform.
	Result *sqlconfig.User

	IAction
}

func (a *RegisterUser) Perform(ctx context.Context, writer *storage.Writer) error {
	user, err := writer.Users.Insert(ctx, &sqlconfig.UserCreate{
		Username:     a.Username,
		Email:        a.Email,
		FirstName:    a.FirstName,
		LastName:     a.LastName,
		PasswordHash: a.PasswordHash,
	})
	if err != nil {
		return err
	}

	for _, seed := range defaults.Categories() {
		_, err := writer.Categories.Insert(ctx, &sqlconfig.CategoryCreate{
			UserID:      user.ID,
			Name:        seed.Name,
			Description: seed.Description,
			Type:        seed.Type,
		})
		if err != nil {
			return err
		}
	}

	a.Result = user
	return nil
}
