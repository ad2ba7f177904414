package transaction

import (
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"

	"github.com/moneta-app/finance-server/internal/auth"
)

// newAuthedTestAPI builds a test API whose requests carry the given user ID,
// mirroring what the auth middleware does in production.
func newAuthedTestAPI(t *testing.T, userID uuid.UUID, register func(api huma.API)) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	api.UseMiddleware(func(ctx huma.Context, next func(huma.Context)) {
		next(huma.WithValue(ctx, auth.UserIDKey, userID))
	})
	register(api)
	return api
}
