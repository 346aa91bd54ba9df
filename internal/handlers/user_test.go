package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/portal-labs/application-portal-api/internal/dto"
	"github.com/stretchr/testify/require"
)

func TestUserHandler_RequiresAdmin(t *testing.T) {
	env := setupTestEnv(t)
	env.createUser(t, "user1", "secret123")

	w := env.do(t, http.MethodGet, "/api/users", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	cookie := env.login(t, "user1", "secret123")
	w = env.do(t, http.MethodGet, "/api/users", nil, cookie)
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestUserHandler_Create(t *testing.T) {
	env := setupTestEnv(t)
	admin := env.login(t, "Admin", "123456")

	w := env.do(t, http.MethodPost, "/api/users", map[string]string{
		"username": "newuser",
		"password": "secret123",
		"email":    "new@example.com",
	}, admin)
	require.Equal(t, http.StatusCreated, w.Code)

	var created dto.UserDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.Equal(t, "newuser", created.Username)
	require.Equal(t, "user", string(created.Role))
	require.Equal(t, "active", string(created.Status))

	// The response must not carry the password in any form.
	require.NotContains(t, w.Body.String(), "password")
	require.NotContains(t, w.Body.String(), "secret123")
}

func TestUserHandler_CreateValidation(t *testing.T) {
	env := setupTestEnv(t)
	admin := env.login(t, "Admin", "123456")

	tests := []struct {
		name string
		body map[string]string
	}{
		{"username too short", map[string]string{"username": "ab", "password": "secret123"}},
		{"password too short", map[string]string{"username": "valid", "password": "12345"}},
		{"bad email", map[string]string{"username": "valid", "password": "secret123", "email": "not-an-email"}},
		{"bad role", map[string]string{"username": "valid", "password": "secret123", "role": "superuser"}},
		{"bad status", map[string]string{"username": "valid", "password": "secret123", "status": "frozen"}},
		{"missing password", map[string]string{"username": "valid"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.do(t, http.MethodPost, "/api/users", tt.body, admin)
			require.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestUserHandler_CreateDuplicateUsername(t *testing.T) {
	env := setupTestEnv(t)
	admin := env.login(t, "Admin", "123456")
	env.createUser(t, "taken", "secret123")

	w := env.do(t, http.MethodPost, "/api/users", map[string]string{
		"username": "taken",
		"password": "secret123",
	}, admin)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "Username already exists")
}

func TestUserHandler_ListHidesPasswordHash(t *testing.T) {
	env := setupTestEnv(t)
	admin := env.login(t, "Admin", "123456")
	env.createUser(t, "user1", "secret123")

	w := env.do(t, http.MethodGet, "/api/users", nil, admin)
	require.Equal(t, http.StatusOK, w.Code)

	var users []dto.UserDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
	require.Len(t, users, 2)
	require.NotContains(t, w.Body.String(), "$2a$")
}

func TestUserHandler_Update(t *testing.T) {
	env := setupTestEnv(t)
	admin := env.login(t, "Admin", "123456")
	env.createUser(t, "user1", "secret123")

	w := env.do(t, http.MethodPut, "/api/users/2", map[string]string{
		"email":  "updated@example.com",
		"status": "inactive",
	}, admin)
	require.Equal(t, http.StatusOK, w.Code)

	var updated dto.UserDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	require.NotNil(t, updated.Email)
	require.Equal(t, "updated@example.com", *updated.Email)
	require.Equal(t, "inactive", string(updated.Status))

	// Password untouched: the user can still log in.
	env.login(t, "user1", "secret123")
}

func TestUserHandler_UpdateNotFound(t *testing.T) {
	env := setupTestEnv(t)
	admin := env.login(t, "Admin", "123456")

	w := env.do(t, http.MethodPut, "/api/users/999", map[string]string{
		"email": "ghost@example.com",
	}, admin)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestUserHandler_Delete(t *testing.T) {
	env := setupTestEnv(t)
	admin := env.login(t, "Admin", "123456")
	env.createUser(t, "user1", "secret123")

	w := env.do(t, http.MethodDelete, "/api/users/2", nil, admin)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodDelete, "/api/users/2", nil, admin)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestUserHandler_DeleteBootstrapAdminForbidden(t *testing.T) {
	env := setupTestEnv(t)
	admin := env.login(t, "Admin", "123456")

	w := env.do(t, http.MethodDelete, "/api/users/1", nil, admin)
	require.Equal(t, http.StatusForbidden, w.Code)
	require.Contains(t, w.Body.String(), "Cannot delete admin user")
}

func TestUserHandler_DeleteCascadesApplications(t *testing.T) {
	env := setupTestEnv(t)
	admin := env.login(t, "Admin", "123456")
	env.createUser(t, "user1", "secret123")

	user := env.login(t, "user1", "secret123")
	w := env.do(t, http.MethodPost, "/api/applications", map[string]string{
		"content": "my application",
	}, user)
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.do(t, http.MethodDelete, "/api/users/2", nil, admin)
	require.Equal(t, http.StatusOK, w.Code)

	apps, err := env.appService.ListForUser(2)
	require.NoError(t, err)
	require.Empty(t, apps)
}
