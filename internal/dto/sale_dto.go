package dto

import "github.com/shopspring/decimal"

// ─── Sales header DTOs ───────────────────────────────────────────────────────

// SaleRequest is the body of POST /sales and PUT /sales/:id.
// Date accepts "2006-01-02 15:04:05", "2006-01-02 15:04" or "2006-01-02".
type SaleRequest struct {
	Date       string  `json:"date"        validate:"required"`
	CustomerID *string `json:"customer_id" validate:"omitempty,uuid"`
	DONumber   *string `json:"do_number"`
	Status     string  `json:"status"      validate:"required,oneof=DRAFT FINAL CANCELED"`
}

type SaleResponse struct {
	ID           string          `json:"id"`
	Date         string          `json:"date"`
	CustomerID   *string         `json:"customer_id,omitempty"`
	CustomerName string          `json:"customer_name,omitempty"`
	DONumber     *string         `json:"do_number,omitempty"`
	Status       string          `json:"status"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	CreatedAt    string          `json:"created_at"`
}

// SaleFilter is bound from the query string of GET /sales.
type SaleFilter struct {
	Search string `form:"search"`
	Page   int    `form:"page,default=1"   validate:"min=1"`
	Limit  int    `form:"limit,default=10" validate:"min=1,max=100"`
}

type SaleListResponse struct {
	Data  []SaleResponse `json:"data"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}

// StatusOption feeds the status dropdown on the sales form.
type StatusOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}
