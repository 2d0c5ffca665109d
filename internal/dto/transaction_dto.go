package dto

import "github.com/shopspring/decimal"

// ─── Finalized transaction line DTOs ─────────────────────────────────────────

// TransactionLineRequest is used by the admin-side direct line CRUD. The same
// quantity/price rules as the cart engine apply; amount is recomputed.
type TransactionLineRequest struct {
	SaleID   string          `json:"sale_id"  validate:"required,uuid"`
	ItemID   string          `json:"item_id"  validate:"required,uuid"`
	Quantity decimal.Decimal `json:"quantity" validate:"gt=0"`
	Price    decimal.Decimal `json:"price"    validate:"min=0"`
}

type TransactionLineResponse struct {
	ID           uint            `json:"id"`
	SaleID       string          `json:"sale_id"`
	DONumber     *string         `json:"do_number,omitempty"`
	ItemID       string          `json:"item_id"`
	ItemName     string          `json:"item_name,omitempty"`
	UOM          string          `json:"uom,omitempty"`
	CustomerName string          `json:"customer_name,omitempty"`
	Quantity     decimal.Decimal `json:"quantity"`
	Price        decimal.Decimal `json:"price"`
	Amount       decimal.Decimal `json:"amount"`
}

type TransactionFilter struct {
	Search string `form:"search"`
	Page   int    `form:"page,default=1"   validate:"min=1"`
	Limit  int    `form:"limit,default=10" validate:"min=1,max=100"`
}

type TransactionListResponse struct {
	Data  []TransactionLineResponse `json:"data"`
	Total int64                     `json:"total"`
	Page  int                       `json:"page"`
	Limit int                       `json:"limit"`
}
