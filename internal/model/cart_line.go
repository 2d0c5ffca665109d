package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartLine is one pending entry in the session-scoped draft cart (legacy
// transaction_temp). Ownership is by browser session id, not user id — two
// tabs of the same login share one cart. Amount is always recomputed
// server-side from quantity × price; client-sent amounts are ignored.
//
// The bigserial primary key doubles as the stable insertion order.
type CartLine struct {
	ID        uint            `gorm:"primaryKey"`
	ItemID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity  decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Price     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Amount    decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	Remark    *string
	SessionID string `gorm:"index;not null"`
	CreatedAt time.Time

	Item *Item `gorm:"foreignKey:ItemID"`
}

func (CartLine) TableName() string { return "transaction_temp" }
