package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID `gorm:"primaryKey;type:uuid"`
	Name      string    `gorm:"size:50;not null"`
	Email     string    `gorm:"uniqueIndex;not null"` // เก็บเป็น lowercase เสมอ
	Password  string    `json:"-"`                    // bcrypt hash - ห้าม serialize
	Role      string    `gorm:"default:'user'"`       // user, admin
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (User) TableName() string {
	return "users"
}

// IsAdmin ตรวจสอบว่าเป็น admin
func (u *User) IsAdmin() bool {
	return u.Role == "admin"
}
