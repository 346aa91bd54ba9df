package dto

import (
	"time"

	"github.com/portal-labs/application-portal-api/internal/models"
)

// ApplicationDTO represents an application in API responses
type ApplicationDTO struct {
	ID        uint64                   `json:"id"`
	UserID    uint64                   `json:"user_id"`
	Username  string                   `json:"username"`
	Content   string                   `json:"content"`
	Status    models.ApplicationStatus `json:"status"`
	CreatedAt time.Time                `json:"created_at"`
}

// ToApplicationDTO converts an Application model to ApplicationDTO
func ToApplicationDTO(app models.Application) ApplicationDTO {
	return ApplicationDTO{
		ID:        app.ID,
		UserID:    app.UserID,
		Username:  app.Username,
		Content:   app.Content,
		Status:    app.Status,
		CreatedAt: app.CreatedAt,
	}
}

// ToApplicationDTOs converts a slice of Application models
func ToApplicationDTOs(apps []models.Application) []ApplicationDTO {
	dtos := make([]ApplicationDTO, len(apps))
	for i, app := range apps {
		dtos[i] = ToApplicationDTO(app)
	}
	return dtos
}
