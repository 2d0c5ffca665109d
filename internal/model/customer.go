package model

import (
	"time"

	"github.com/google/uuid"
)

type Customer struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"index;not null"`
	Address   *string
	Phone     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Customer) TableName() string { return "customer" }
