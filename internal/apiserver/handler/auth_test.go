package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/distrilink/fieldsales/internal/apiserver/database"
	"github.com/distrilink/fieldsales/internal/common/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignupAndSignin(t *testing.T) {
	ts := newTestServer(t)

	role, err := ts.db.GetRoleByName(context.Background(), database.RoleCustomer)
	require.NoError(t, err)

	w := ts.do(t, http.MethodPost, "/api/auth/signup", "", dto.SignupRequest{
		Username: "bob",
		FullName: "Bob C",
		Email:    "bob@example.com",
		Password: "hunter2-hunter2",
		RoleID:   role.ID,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created dto.UserInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "bob", created.Username)
	assert.Equal(t, database.RoleCustomer, created.Role)

	// password is never serialized
	assert.NotContains(t, w.Body.String(), "hunter2")

	w = ts.do(t, http.MethodPost, "/api/auth/signin", "", dto.SigninRequest{Username: "bob", Password: "hunter2-hunter2"})
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Token string       `json:"token"`
		User  dto.UserInfo `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "bob", resp.User.Username)

	// the token works against a secured route
	w = ts.do(t, http.MethodGet, "/api/feedback/customer/"+itoa(resp.User.ID), resp.Token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code) // authenticated, just no feedback yet
}

func TestSignupRejectsDuplicateUsername(t *testing.T) {
	ts := newTestServer(t)

	role, err := ts.db.GetRoleByName(context.Background(), database.RoleCustomer)
	require.NoError(t, err)

	req := dto.SignupRequest{Username: "carol", Password: "pw-pw-pw-pw", RoleID: role.ID}
	w := ts.do(t, http.MethodPost, "/api/auth/signup", "", req)
	require.Equal(t, http.StatusCreated, w.Code)

	w = ts.do(t, http.MethodPost, "/api/auth/signup", "", req)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Username already exists")
}

func TestSignupRejectsUnknownRole(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodPost, "/api/auth/signup", "", dto.SignupRequest{Username: "dave", Password: "pw-pw-pw-pw", RoleID: 999})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Role not found")
}

func TestSigninRejectsWrongPassword(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodPost, "/api/auth/signin", "", dto.SigninRequest{Username: "alice", Password: "wrong"})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid username or password")

	w = ts.do(t, http.MethodPost, "/api/auth/signin", "", dto.SigninRequest{Username: "nobody", Password: "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListUsersIsAdminOnly(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodGet, "/api/users", ts.customerToken(t), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = ts.do(t, http.MethodGet, "/api/users", ts.adminToken(t), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var users []dto.UserInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
	require.Len(t, users, 2)
	assert.NotContains(t, w.Body.String(), "password")
}
