package services

import (
	"errors"
	"fmt"

	"github.com/portal-labs/application-portal-api/internal/constants"
	"github.com/portal-labs/application-portal-api/internal/models"
	"github.com/portal-labs/application-portal-api/internal/repository"
	"github.com/portal-labs/application-portal-api/internal/utils"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrAdminProtected     = errors.New("cannot delete admin user")
)

// dummyHash is compared against when the username does not exist, so the
// failure path costs one bcrypt comparison either way and response timing
// does not reveal whether the username or the password was wrong.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// AuthService handles login and bootstrap of the admin account.
type AuthService struct {
	userRepo repository.UserRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository) *AuthService {
	return &AuthService{
		userRepo: userRepo,
	}
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Username string
	Password string
}

// Login verifies credentials and returns the authenticated user. Unknown
// usernames and wrong passwords yield the same error.
func (s *AuthService) Login(input LoginInput) (*models.User, error) {
	user, err := s.userRepo.FindByUsername(input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.CheckPassword(input.Password, dummyHash)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if !utils.CheckPassword(input.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// EnsureAdmin creates the bootstrap admin account if it does not exist.
// It runs once at startup and is idempotent.
func (s *AuthService) EnsureAdmin(password string) error {
	_, err := s.userRepo.FindByUsername(constants.BootstrapAdminUsername)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("failed to check admin user: %w", err)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	email := constants.BootstrapAdminEmail
	admin := &models.User{
		Username:     constants.BootstrapAdminUsername,
		PasswordHash: hash,
		Email:        &email,
		Role:         models.RoleAdmin,
		Status:       models.UserStatusActive,
	}

	if err := s.userRepo.Create(admin); err != nil {
		// A concurrent boot may have created it first.
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return nil
		}
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	return nil
}
