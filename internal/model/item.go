package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Item is a sellable good. SellPrice is copied onto cart lines at add-time;
// later price changes do not rewrite existing lines.
type Item struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name          string          `gorm:"index;not null"`
	UOM           string          `gorm:"not null;default:'PCS'"`
	PurchasePrice decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	SellPrice     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Stock         int             `gorm:"not null;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (Item) TableName() string { return "item" }
