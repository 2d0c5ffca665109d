package model

import (
	"time"

	"github.com/google/uuid"
)

// User is a back-office operator. Level: 1=Petugas (kasir), 2=Manager, 3=Admin.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Username     string    `gorm:"uniqueIndex;not null"`
	Name         string    `gorm:"not null"`
	PasswordHash string    `gorm:"not null"`
	Level        Role      `gorm:"not null;default:1"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName keeps the legacy table name.
func (User) TableName() string { return "petugas" }
