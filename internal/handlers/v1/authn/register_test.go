package authn

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/moneta-app/finance-server/internal/service"
)

type mockRegistrar struct {
	mock.Mock
}

func (m *mockRegistrar) Register(ctx context.Context, registration service.UserRegistration) (*service.User, error) {
	args := m.Called(ctx, registration)
	user, _ := args.Get(0).(*service.User)
	return user, args.Error(1)
}

func TestHTTP_Register(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	mockSvc := new(mockRegistrar)
	mockSvc.On("Register", mock.Anything, mock.MatchedBy(func(r service.UserRegistration) bool {
		return r.Username == "alice" && r.Email == "alice@example.com" && r.Password == "s3cretpass"
	})).Return(&service.User{
		ID: userID, Username: "alice", Email: "alice@example.com", CreatedAt: now, UpdatedAt: now,
	}, nil)

	_, api := humatest.New(t)
	NewRegisterHandler(mockSvc).Register(api)
	resp := api.Post("/auth/register", RegisterBody{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "s3cretpass",
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body User
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, userID.String(), body.ID)
	assert.Equal(t, "alice", body.Username)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_Register_UsernameTaken(t *testing.T) {
	mockSvc := new(mockRegistrar)
	mockSvc.On("Register", mock.Anything, mock.Anything).
		Return((*service.User)(nil), service.ErrUsernameTaken)

	_, api := humatest.New(t)
	NewRegisterHandler(mockSvc).Register(api)
	resp := api.Post("/auth/register", RegisterBody{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "s3cretpass",
	})

	assert.Equal(t, http.StatusConflict, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_Register_ShortPasswordRejected(t *testing.T) {
	mockSvc := new(mockRegistrar)

	_, api := humatest.New(t)
	NewRegisterHandler(mockSvc).Register(api)
	resp := api.Post("/auth/register", RegisterBody{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "short",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "Register")
}
