package dto

// ─── Customer DTOs ───────────────────────────────────────────────────────────

type CustomerRequest struct {
	Name    string  `json:"name" validate:"required"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
}

type CustomerResponse struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Address *string `json:"address,omitempty"`
	Phone   *string `json:"phone,omitempty"`
}

type CustomerFilter struct {
	Search string `form:"search"`
	Page   int    `form:"page,default=1"   validate:"min=1"`
	Limit  int    `form:"limit,default=10" validate:"min=1,max=100"`
}

type CustomerListResponse struct {
	Data  []CustomerResponse `json:"data"`
	Total int64              `json:"total"`
	Page  int                `json:"page"`
	Limit int                `json:"limit"`
}

// CustomerOption feeds the customer dropdown on the sales form.
type CustomerOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
