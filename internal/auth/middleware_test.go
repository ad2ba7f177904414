package auth

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
)

type whoAmIOutput struct {
	Body struct {
		UserID string `json:"user_id"`
	}
}

func newMiddlewareTestAPI(t *testing.T, issuer *TokenIssuer) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	api.UseMiddleware(Middleware(api, issuer))

	huma.Register(api, huma.Operation{
		OperationID: "who-am-i",
		Method:      http.MethodGet,
		Path:        "/whoami",
	}, func(ctx context.Context, input *struct{}) (*whoAmIOutput, error) {
		out := &whoAmIOutput{}
		userID, ok := UserIDFromContext(ctx)
		if ok {
			out.Body.UserID = userID.String()
		}
		return out, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "open",
		Method:      http.MethodGet,
		Path:        "/open",
		Metadata:    map[string]any{"public": true},
	}, func(ctx context.Context, input *struct{}) (*struct{}, error) {
		return &struct{}{}, nil
	})

	return api
}

func TestMiddleware_ValidToken(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", 15*time.Minute, time.Hour)
	userID := uuid.Must(uuid.NewV4())
	access, _, err := issuer.IssueAccess(userID)
	assert.NoError(t, err)

	resp := newMiddlewareTestAPI(t, issuer).Get("/whoami", "Authorization: Bearer "+access)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), userID.String())
}

func TestMiddleware_MissingToken(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", 15*time.Minute, time.Hour)

	resp := newMiddlewareTestAPI(t, issuer).Get("/whoami")

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestMiddleware_ExpiredToken(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", -time.Minute, time.Hour)
	access, _, err := issuer.IssueAccess(uuid.Must(uuid.NewV4()))
	assert.NoError(t, err)

	resp := newMiddlewareTestAPI(t, issuer).Get("/whoami", "Authorization: Bearer "+access)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestMiddleware_RefreshTokenRejectedAsAccess(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", 15*time.Minute, time.Hour)
	pair, err := issuer.IssuePair(uuid.Must(uuid.NewV4()))
	assert.NoError(t, err)

	resp := newMiddlewareTestAPI(t, issuer).Get("/whoami", "Authorization: Bearer "+pair.Refresh)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestMiddleware_PublicOperationSkipsAuth(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", 15*time.Minute, time.Hour)

	resp := newMiddlewareTestAPI(t, issuer).Get("/open")

	assert.Equal(t, http.StatusNoContent, resp.Code)
}
