package models

import (
	"time"

	"github.com/google/uuid"
)

// Priority ของ task
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

type Task struct {
	ID          uuid.UUID `gorm:"primaryKey;type:uuid"`
	Title       string    `gorm:"size:100;not null"`
	Description string    `gorm:"size:500"`
	Priority    string    `gorm:"default:'medium'"` // low, medium, high
	Completed   bool      `gorm:"default:false"`
	DueDate     *time.Time
	UserID      uuid.UUID `gorm:"not null;index"` // owner - immutable หลังสร้าง
	User        User      `gorm:"foreignKey:UserID"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Task) TableName() string {
	return "tasks"
}
