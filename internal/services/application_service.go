package services

import (
	"errors"
	"fmt"

	"github.com/portal-labs/application-portal-api/internal/models"
	"github.com/portal-labs/application-portal-api/internal/repository"
	"github.com/portal-labs/application-portal-api/internal/session"
)

var ErrApplicationNotFound = errors.New("application not found")

// ApplicationService handles application submission and review.
type ApplicationService struct {
	appRepo repository.ApplicationRepository
}

// NewApplicationService creates a new ApplicationService.
func NewApplicationService(appRepo repository.ApplicationRepository) *ApplicationService {
	return &ApplicationService{
		appRepo: appRepo,
	}
}

// Submit stores a new application for the session identity. Owner and
// username come from the session, never from the client, and the status
// always starts as pending.
func (s *ApplicationService) Submit(identity session.Identity, content string) (*models.Application, error) {
	app := &models.Application{
		UserID:   identity.UserID,
		Username: identity.Username,
		Content:  content,
		Status:   models.ApplicationStatusPending,
	}

	if err := s.appRepo.Create(app); err != nil {
		return nil, fmt.Errorf("failed to create application: %w", err)
	}

	return app, nil
}

// List returns all applications.
func (s *ApplicationService) List() ([]models.Application, error) {
	return s.appRepo.List()
}

// ListForUser returns the applications owned by the given user.
func (s *ApplicationService) ListForUser(userID uint64) ([]models.Application, error) {
	return s.appRepo.ListByUserID(userID)
}

// Review sets the status of an application.
func (s *ApplicationService) Review(id uint64, status models.ApplicationStatus) (*models.Application, error) {
	app, err := s.appRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, fmt.Errorf("failed to find application: %w", err)
	}

	app.Status = status
	if err := s.appRepo.Update(app); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, fmt.Errorf("failed to update application: %w", err)
	}

	return app, nil
}

// Delete removes an application.
func (s *ApplicationService) Delete(id uint64) error {
	if err := s.appRepo.Delete(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrApplicationNotFound
		}
		return fmt.Errorf("failed to delete application: %w", err)
	}
	return nil
}
