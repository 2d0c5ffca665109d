package service

import (
	"context"
	"errors"

	"pospenjualan/internal/dto"
	"pospenjualan/internal/model"
	"pospenjualan/internal/repository"
	"pospenjualan/internal/result"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// CartService manages the session-scoped draft cart and promotes it into
// permanent transaction lines. Every operation answers with the uniform
// result envelope; storage errors are logged and folded into a failure
// result, never raised.
type CartService interface {
	AddLine(ctx context.Context, sessionID string, req dto.CartLineRequest) *result.Result
	ListLines(ctx context.Context, sessionID string) *result.Result
	UpdateLine(ctx context.Context, id uint, req dto.CartLineRequest) *result.Result
	RemoveLine(ctx context.Context, id uint) *result.Result
	ClearCart(ctx context.Context, sessionID string) *result.Result
	Finalize(ctx context.Context, sessionID string, saleID uuid.UUID) *result.Result
}

type cartService struct {
	repo  repository.CartRepository
	txns  repository.TransactionRepository
	items repository.ItemRepository
	sales repository.SaleRepository
}

func NewCartService(
	repo repository.CartRepository,
	txns repository.TransactionRepository,
	items repository.ItemRepository,
	sales repository.SaleRepository,
) CartService {
	return &cartService{repo: repo, txns: txns, items: items, sales: sales}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// validateLine enforces the engine's own constraints: quantity strictly
// positive, price non-negative. The caller-supplied price is otherwise
// trusted (it is pre-filled from the item's sell price by the UI); the
// client-sent amount is ignored entirely.
func validateLine(req dto.CartLineRequest) string {
	if !req.Quantity.IsPositive() {
		return "quantity must be a positive number"
	}
	if req.Price.IsNegative() {
		return "price cannot be negative"
	}
	return ""
}

func (s *cartService) AddLine(ctx context.Context, sessionID string, req dto.CartLineRequest) *result.Result {
	if sessionID == "" {
		return result.Fail("session is required")
	}
	if msg := validateLine(req); msg != "" {
		return result.Fail(msg)
	}
	itemID, err := uuid.Parse(req.ItemID)
	if err != nil {
		return result.Fail("item is required")
	}
	item, err := s.items.FindByID(ctx, itemID)
	if err != nil {
		return result.Fail("item not found")
	}

	line := &model.CartLine{
		ItemID:    itemID,
		Quantity:  req.Quantity,
		Price:     req.Price,
		Amount:    req.Quantity.Mul(req.Price),
		Remark:    req.Remark,
		SessionID: sessionID,
	}
	if err := s.repo.Create(ctx, line); err != nil {
		log.Error().Err(err).Str("session_id", sessionID).Msg("cart: add line")
		return result.Fail("failed to add item to cart")
	}
	line.Item = item
	return result.OKData("item added to cart", cartLineToResponse(line))
}

func (s *cartService) ListLines(ctx context.Context, sessionID string) *result.Result {
	lines, err := s.repo.ListBySession(ctx, sessionID)
	if err != nil {
		log.Error().Err(err).Str("session_id", sessionID).Msg("cart: list lines")
		return result.Fail("failed to load cart")
	}
	resp := dto.CartResponse{Lines: make([]dto.CartLineResponse, 0, len(lines))}
	for i := range lines {
		resp.Total = resp.Total.Add(lines[i].Amount)
		resp.Lines = append(resp.Lines, cartLineToResponse(&lines[i]))
	}
	return result.OKData("cart loaded", resp)
}

func (s *cartService) UpdateLine(ctx context.Context, id uint, req dto.CartLineRequest) *result.Result {
	line, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return result.Fail("cart line not found")
	}
	if msg := validateLine(req); msg != "" {
		return result.Fail(msg)
	}
	line.Quantity = req.Quantity
	line.Price = req.Price
	line.Amount = req.Quantity.Mul(req.Price)
	if req.Remark != nil {
		line.Remark = req.Remark
	}
	if err := s.repo.Update(ctx, line); err != nil {
		log.Error().Err(err).Uint("line_id", id).Msg("cart: update line")
		return result.Fail("failed to update cart line")
	}
	return result.OKData("cart line updated", cartLineToResponse(line))
}

func (s *cartService) RemoveLine(ctx context.Context, id uint) *result.Result {
	rows, err := s.repo.Delete(ctx, id)
	if err != nil {
		log.Error().Err(err).Uint("line_id", id).Msg("cart: remove line")
		return result.Fail("failed to remove cart line")
	}
	if rows == 0 {
		return result.Fail("cart line not found")
	}
	return result.OK("item removed from cart")
}

// ClearCart is idempotent: clearing an already-empty cart still succeeds.
func (s *cartService) ClearCart(ctx context.Context, sessionID string) *result.Result {
	if err := s.repo.ClearSession(ctx, sessionID); err != nil {
		log.Error().Err(err).Str("session_id", sessionID).Msg("cart: clear")
		return result.Fail("failed to clear cart")
	}
	return result.OK("cart cleared")
}

var errEmptyCart = errors.New("empty cart")

// Finalize atomically promotes every cart line of the session into permanent
// transaction lines under the given sales header. All-or-nothing: on any
// storage error the transaction rolls back and the cart is left exactly as
// it was. The sale's status is not touched here — flipping DRAFT to FINAL is
// the sales page's call.
func (s *cartService) Finalize(ctx context.Context, sessionID string, saleID uuid.UUID) *result.Result {
	if _, err := s.sales.FindByID(ctx, saleID); err != nil {
		return result.Fail("sales not found")
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		lines, err := s.repo.ListBySessionTx(tx, sessionID)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return errEmptyCart
		}

		finalized := make([]model.TransactionLine, 0, len(lines))
		for _, l := range lines {
			finalized = append(finalized, model.TransactionLine{
				SaleID:   saleID,
				ItemID:   l.ItemID,
				Quantity: l.Quantity,
				Price:    l.Price,
				Amount:   l.Quantity.Mul(l.Price),
			})
		}
		if err := s.txns.CreateBatchTx(tx, finalized); err != nil {
			return err
		}
		return s.repo.ClearSessionTx(tx, sessionID)
	})

	if errors.Is(txErr, errEmptyCart) {
		return result.Fail("cart is empty")
	}
	if txErr != nil {
		log.Error().Err(txErr).Str("session_id", sessionID).Str("sale_id", saleID.String()).
			Msg("cart: finalize rolled back")
		return result.Fail("failed to save transaction")
	}
	return result.OK("transaction saved")
}

func cartLineToResponse(l *model.CartLine) dto.CartLineResponse {
	resp := dto.CartLineResponse{
		ID:       l.ID,
		ItemID:   l.ItemID.String(),
		Quantity: l.Quantity,
		Price:    l.Price,
		Amount:   l.Amount,
		Remark:   l.Remark,
	}
	if l.Item != nil {
		resp.ItemName = l.Item.Name
		resp.UOM = l.Item.UOM
	}
	return resp
}
