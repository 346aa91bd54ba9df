package services

import (
	"testing"

	"github.com/portal-labs/application-portal-api/internal/models"
	"github.com/portal-labs/application-portal-api/internal/repository"
	"github.com/stretchr/testify/require"
)

func TestAuthService_EnsureAdmin(t *testing.T) {
	users := repository.NewMemoryStore().Users()
	svc := NewAuthService(users)

	require.NoError(t, svc.EnsureAdmin("123456"))

	admin, err := users.FindByUsername("Admin")
	require.NoError(t, err)
	require.Equal(t, models.RoleAdmin, admin.Role)
	require.Equal(t, models.UserStatusActive, admin.Status)
	require.NotNil(t, admin.Email)
	require.Equal(t, "admin@example.com", *admin.Email)
	// Only the bcrypt digest is stored.
	require.NotEqual(t, "123456", admin.PasswordHash)
}

func TestAuthService_EnsureAdminIsIdempotent(t *testing.T) {
	users := repository.NewMemoryStore().Users()
	svc := NewAuthService(users)

	require.NoError(t, svc.EnsureAdmin("123456"))
	require.NoError(t, svc.EnsureAdmin("another-password"))

	all, err := users.List()
	require.NoError(t, err)
	require.Len(t, all, 1)

	// The original password still works; the second call changed nothing.
	_, err = svc.Login(LoginInput{Username: "Admin", Password: "123456"})
	require.NoError(t, err)
}

func TestAuthService_Login(t *testing.T) {
	users := repository.NewMemoryStore().Users()
	svc := NewAuthService(users)
	require.NoError(t, svc.EnsureAdmin("123456"))

	user, err := svc.Login(LoginInput{Username: "Admin", Password: "123456"})
	require.NoError(t, err)
	require.Equal(t, "Admin", user.Username)
}

func TestAuthService_LoginFailuresAreIndistinguishable(t *testing.T) {
	users := repository.NewMemoryStore().Users()
	svc := NewAuthService(users)
	require.NoError(t, svc.EnsureAdmin("123456"))

	_, wrongPassword := svc.Login(LoginInput{Username: "Admin", Password: "nope"})
	_, unknownUser := svc.Login(LoginInput{Username: "nobody", Password: "nope"})

	require.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	require.ErrorIs(t, unknownUser, ErrInvalidCredentials)
}
