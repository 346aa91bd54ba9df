package services

import (
	"errors"
	"fmt"

	"github.com/portal-labs/application-portal-api/internal/constants"
	"github.com/portal-labs/application-portal-api/internal/models"
	"github.com/portal-labs/application-portal-api/internal/repository"
	"github.com/portal-labs/application-portal-api/internal/utils"
)

// UserService handles user management business logic.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

// List returns all users.
func (s *UserService) List() ([]models.User, error) {
	return s.userRepo.List()
}

// Get returns a user by ID.
func (s *UserService) Get(id uint64) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// CreateUserInput represents the fields accepted when creating a user.
// Role and Status fall back to the store defaults when empty.
type CreateUserInput struct {
	Username string
	Password string
	Email    *string
	Role     models.Role
	Status   models.UserStatus
}

// Create hashes the password and stores the new user.
func (s *UserService) Create(input CreateUserInput) (*models.User, error) {
	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     input.Username,
		PasswordHash: hash,
		Email:        input.Email,
		Role:         input.Role,
		Status:       input.Status,
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// UpdateUserInput represents a partial user update. Nil fields are left
// unchanged. An empty Password keeps the existing hash.
type UpdateUserInput struct {
	Username *string
	Password *string
	Email    *string
	Role     *models.Role
	Status   *models.UserStatus
}

// Update merges the provided fields into the stored user. Username
// uniqueness is not re-checked on update.
func (s *UserService) Update(id uint64, input UpdateUserInput) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if input.Username != nil {
		user.Username = *input.Username
	}
	if input.Password != nil && *input.Password != "" {
		hash, err := utils.HashPassword(*input.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = hash
	}
	if input.Email != nil {
		user.Email = input.Email
	}
	if input.Role != nil {
		user.Role = *input.Role
	}
	if input.Status != nil {
		user.Status = *input.Status
	}

	if err := s.userRepo.Update(user); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}

// Delete removes a user and all their applications. The bootstrap admin
// account can never be deleted, regardless of the caller's role.
func (s *UserService) Delete(id uint64) error {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to find user: %w", err)
	}

	if user.Username == constants.BootstrapAdminUsername {
		return ErrAdminProtected
	}

	if err := s.userRepo.Delete(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}

	return nil
}
