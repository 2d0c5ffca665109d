package dto

import "github.com/shopspring/decimal"

// ─── Item DTOs ───────────────────────────────────────────────────────────────

type ItemRequest struct {
	Name          string          `json:"name"           validate:"required"`
	UOM           string          `json:"uom"            validate:"required"`
	PurchasePrice decimal.Decimal `json:"purchase_price" validate:"min=0"`
	SellPrice     decimal.Decimal `json:"sell_price"     validate:"min=0"`
	Stock         int             `json:"stock"          validate:"min=0"`
}

type ItemResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	UOM           string          `json:"uom"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SellPrice     decimal.Decimal `json:"sell_price"`
	Stock         int             `json:"stock"`
}

type ItemFilter struct {
	Search string `form:"search"`
	Page   int    `form:"page,default=1"   validate:"min=1"`
	Limit  int    `form:"limit,default=10" validate:"min=1,max=100"`
}

type ItemListResponse struct {
	Data  []ItemResponse `json:"data"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}
