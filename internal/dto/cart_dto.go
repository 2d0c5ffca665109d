package dto

import "github.com/shopspring/decimal"

// ─── Cart (draft transaction) DTOs ───────────────────────────────────────────

// CartLineRequest is the body of POST /cart/lines and PUT /cart/lines/:id.
// Amount is accepted for wire compatibility with the legacy client but never
// trusted — the server recomputes quantity × price.
type CartLineRequest struct {
	ItemID   string          `json:"item_id"  validate:"required,uuid"`
	Quantity decimal.Decimal `json:"quantity" validate:"gt=0"`
	Price    decimal.Decimal `json:"price"    validate:"min=0"`
	Remark   *string         `json:"remark"`
	Amount   decimal.Decimal `json:"amount"`
}

type CartLineResponse struct {
	ID       uint            `json:"id"`
	ItemID   string          `json:"item_id"`
	ItemName string          `json:"item_name,omitempty"`
	UOM      string          `json:"uom,omitempty"`
	Quantity decimal.Decimal `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Amount   decimal.Decimal `json:"amount"`
	Remark   *string         `json:"remark,omitempty"`
}

// CartResponse is the full cart view: lines in insertion order plus the
// running total.
type CartResponse struct {
	Lines []CartLineResponse `json:"lines"`
	Total decimal.Decimal    `json:"total"`
}

// FinalizeRequest promotes the whole cart under an existing sales header.
type FinalizeRequest struct {
	SaleID string `json:"sale_id" validate:"required,uuid"`
}

// CheckoutRequest creates a sales header and finalizes the cart under it in
// one call (the flow the POS page uses).
type CheckoutRequest struct {
	Date       string  `json:"date"        validate:"required"`
	CustomerID *string `json:"customer_id" validate:"omitempty,uuid"`
	DONumber   *string `json:"do_number"`
	Status     string  `json:"status"      validate:"omitempty,oneof=DRAFT FINAL CANCELED"`
}
