package repository

import (
	"errors"

	"github.com/portal-labs/application-portal-api/internal/models"
)

var (
	// ErrNotFound is returned when the referenced record does not exist.
	ErrNotFound = errors.New("repository: record not found")
	// ErrDuplicateUsername is returned when a create would violate
	// username uniqueness.
	ErrDuplicateUsername = errors.New("repository: username already exists")
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create assigns an ID and stores the user. Fails with
	// ErrDuplicateUsername if the username is taken; at most one of two
	// concurrent creates with the same username succeeds.
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByUsername finds a user by username (case-sensitive)
	FindByUsername(username string) (*models.User, error)

	// List returns all users; order is unspecified
	List() ([]models.User, error)

	// Update persists the full user record. Fails with ErrNotFound if
	// the ID is absent. Username uniqueness is not re-checked here.
	Update(user *models.User) error

	// Delete removes the user and, atomically with it, every
	// application owned by the user. Fails with ErrNotFound if absent.
	Delete(id uint64) error
}

// ApplicationRepository defines the interface for application data access
type ApplicationRepository interface {
	// Create assigns an ID, defaults the status to pending, and stores
	// the application.
	Create(app *models.Application) error

	// FindByID finds an application by ID
	FindByID(id uint64) (*models.Application, error)

	// List returns all applications; order is unspecified
	List() ([]models.Application, error)

	// ListByUserID returns the applications owned by the given user
	ListByUserID(userID uint64) ([]models.Application, error)

	// Update persists the full application record. Fails with
	// ErrNotFound if the ID is absent.
	Update(app *models.Application) error

	// Delete removes an application. Fails with ErrNotFound if absent.
	Delete(id uint64) error
}
