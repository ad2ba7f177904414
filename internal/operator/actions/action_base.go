package actions

import (
	"context"

	"github.com/moneta-app/finance-server/internal/storage"
)

type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}
