package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionLine is the permanent counterpart of a CartLine, bound to a sale.
// Lines are only ever created by the finalize operation or by direct entity
// CRUD — the cart engine never bulk-mutates them after creation.
type TransactionLine struct {
	ID        uint            `gorm:"primaryKey"`
	SaleID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	ItemID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity  decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Price     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Amount    decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	CreatedAt time.Time

	Item *Item `gorm:"foreignKey:ItemID"`
	Sale *Sale `gorm:"foreignKey:SaleID"`
}

func (TransactionLine) TableName() string { return "transaction" }
