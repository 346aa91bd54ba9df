package repository

import (
	"errors"

	"github.com/portal-labs/application-portal-api/internal/models"
	"gorm.io/gorm"
)

// GormApplicationRepository is a GORM implementation of ApplicationRepository
type GormApplicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository creates a new ApplicationRepository backed by GORM.
func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &GormApplicationRepository{db: db}
}

// Create creates a new application
func (r *GormApplicationRepository) Create(app *models.Application) error {
	if app.Status == "" {
		app.Status = models.ApplicationStatusPending
	}
	return r.db.Create(app).Error
}

// FindByID finds an application by ID
func (r *GormApplicationRepository) FindByID(id uint64) (*models.Application, error) {
	var app models.Application
	if err := r.db.First(&app, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &app, nil
}

// List returns all applications
func (r *GormApplicationRepository) List() ([]models.Application, error) {
	var apps []models.Application
	if err := r.db.Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

// ListByUserID returns the applications owned by the given user
func (r *GormApplicationRepository) ListByUserID(userID uint64) ([]models.Application, error) {
	var apps []models.Application
	if err := r.db.Where("user_id = ?", userID).Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

// Update saves the full application record
func (r *GormApplicationRepository) Update(app *models.Application) error {
	result := r.db.Model(&models.Application{}).Where("id = ?", app.ID).Select("*").Omit("id", "created_at").Updates(app)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes an application
func (r *GormApplicationRepository) Delete(id uint64) error {
	result := r.db.Delete(&models.Application{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
