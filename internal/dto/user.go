package dto

import (
	"time"

	"github.com/portal-labs/application-portal-api/internal/models"
)

// UserDTO represents a user in API responses. The password hash never
// leaves the process.
type UserDTO struct {
	ID        uint64            `json:"id"`
	Username  string            `json:"username"`
	Email     *string           `json:"email"`
	Role      models.Role       `json:"role"`
	Status    models.UserStatus `json:"status"`
	CreatedAt time.Time         `json:"created_at"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Role:      user.Role,
		Status:    user.Status,
		CreatedAt: user.CreatedAt,
	}
}

// ToUserDTOs converts a slice of User models
func ToUserDTOs(users []models.User) []UserDTO {
	dtos := make([]UserDTO, len(users))
	for i, user := range users {
		dtos[i] = ToUserDTO(user)
	}
	return dtos
}
