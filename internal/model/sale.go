package model

import (
	"time"

	"github.com/google/uuid"
)

// Sale statuses. FINAL rows are read-only to callers; FINAL is reached from
// DRAFT and never edited afterwards.
const (
	SaleStatusDraft    = "DRAFT"
	SaleStatusFinal    = "FINAL"
	SaleStatusCanceled = "CANCELED"
)

// Sale is the sales header (order) that finalized transaction lines attach to.
type Sale struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Date       time.Time  `gorm:"index;not null"`
	CustomerID *uuid.UUID `gorm:"type:uuid;index"`
	DONumber   *string    `gorm:"uniqueIndex"`
	Status     string     `gorm:"type:varchar(10);not null;default:'DRAFT'"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Customer *Customer         `gorm:"foreignKey:CustomerID"`
	Lines    []TransactionLine `gorm:"foreignKey:SaleID"`
}

func (Sale) TableName() string { return "sales" }

// ValidSaleStatus reports whether s is one of the three declared statuses.
func ValidSaleStatus(s string) bool {
	return s == SaleStatusDraft || s == SaleStatusFinal || s == SaleStatusCanceled
}
