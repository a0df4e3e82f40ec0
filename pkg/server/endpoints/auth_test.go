package endpoints

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/nyumbani/homemanager/pkg/model"
	"github.com/nyumbani/homemanager/pkg/server/store"
)

func testUser(t *testing.T, password string) *model.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	orgID := uint(3)
	return &model.User{
		ID:             7,
		Email:          "owner@acme.example",
		PasswordHash:   string(hash),
		OrganizationID: &orgID,
	}
}

func TestLogin(t *testing.T) {
	s, stores := newTestServer()
	stores.Users.On("GetByEmail", "owner@acme.example").Return(testUser(t, "hunter2"), nil)

	rec := doRequest(t, s, "POST", "/auth/login", LoginRequest{
		Email:    "owner@acme.example",
		Password: "hunter2",
	}, 0, nil, false)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp LoginResponse
	decodeBody(t, rec, &resp)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, 3600, resp.ExpiresIn)
}

func TestLoginBadPassword(t *testing.T) {
	s, stores := newTestServer()
	stores.Users.On("GetByEmail", "owner@acme.example").Return(testUser(t, "hunter2"), nil)

	rec := doRequest(t, s, "POST", "/auth/login", LoginRequest{
		Email:    "owner@acme.example",
		Password: "wrong",
	}, 0, nil, false)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginUnknownUser(t *testing.T) {
	s, stores := newTestServer()
	stores.Users.On("GetByEmail", "nobody@acme.example").Return(nil, store.ErrNotFound)

	rec := doRequest(t, s, "POST", "/auth/login", LoginRequest{
		Email:    "nobody@acme.example",
		Password: "hunter2",
	}, 0, nil, false)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginMissingFields(t *testing.T) {
	s, _ := newTestServer()

	rec := doRequest(t, s, "POST", "/auth/login", LoginRequest{Email: "owner@acme.example"}, 0, nil, false)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
