package models

import (
	"time"
)

type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusApproved ApplicationStatus = "approved"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

// Application is a submitted job application. UserID is a plain column
// without a foreign key constraint; the cascade on user deletion is
// handled by the repository layer.
type Application struct {
	ID        uint64            `gorm:"primarykey" json:"id"`
	UserID    uint64            `gorm:"not null;index" json:"user_id"`
	Username  string            `gorm:"type:varchar(50);not null" json:"username"`
	Content   string            `gorm:"type:text" json:"content"`
	Status    ApplicationStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}
