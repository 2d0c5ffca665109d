package service

import (
	"context"
	"errors"

	"pospenjualan/internal/dto"
	"pospenjualan/internal/model"
	"pospenjualan/internal/repository"

	"github.com/google/uuid"
)

// TransactionService is the direct CRUD surface over finalized lines, used by
// the transactions page. The cart engine is the other producer of lines; the
// same quantity/price rules apply on both paths, and a FINAL sale shields its
// lines from every mutation here.
type TransactionService interface {
	Create(ctx context.Context, req dto.TransactionLineRequest) (*dto.TransactionLineResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.TransactionLineResponse, error)
	List(ctx context.Context, filter dto.TransactionFilter) (*dto.TransactionListResponse, error)
	ListBySale(ctx context.Context, saleID uuid.UUID) ([]dto.TransactionLineResponse, error)
	Update(ctx context.Context, id uint, req dto.TransactionLineRequest) (*dto.TransactionLineResponse, error)
	Delete(ctx context.Context, id uint) error
}

type transactionService struct {
	repo  repository.TransactionRepository
	sales repository.SaleRepository
	items repository.ItemRepository
}

func NewTransactionService(
	repo repository.TransactionRepository,
	sales repository.SaleRepository,
	items repository.ItemRepository,
) TransactionService {
	return &transactionService{repo: repo, sales: sales, items: items}
}

var errFinalLocked = errors.New("transactions of a FINAL sale cannot be modified")

func (s *transactionService) guardSale(ctx context.Context, saleID uuid.UUID) (*model.Sale, error) {
	sale, err := s.sales.FindByID(ctx, saleID)
	if err != nil {
		return nil, errors.New("sales not found")
	}
	if sale.Status == model.SaleStatusFinal {
		return nil, errFinalLocked
	}
	return sale, nil
}

func (s *transactionService) Create(ctx context.Context, req dto.TransactionLineRequest) (*dto.TransactionLineResponse, error) {
	if !req.Quantity.IsPositive() {
		return nil, errors.New("quantity must be a positive number")
	}
	if req.Price.IsNegative() {
		return nil, errors.New("price cannot be negative")
	}
	saleID, err := uuid.Parse(req.SaleID)
	if err != nil {
		return nil, errors.New("invalid sale id")
	}
	if _, err := s.guardSale(ctx, saleID); err != nil {
		return nil, err
	}
	itemID, err := uuid.Parse(req.ItemID)
	if err != nil {
		return nil, errors.New("invalid item id")
	}
	if _, err := s.items.FindByID(ctx, itemID); err != nil {
		return nil, errors.New("item not found")
	}

	line := &model.TransactionLine{
		SaleID:   saleID,
		ItemID:   itemID,
		Quantity: req.Quantity,
		Price:    req.Price,
		Amount:   req.Quantity.Mul(req.Price),
	}
	if err := s.repo.Create(ctx, line); err != nil {
		return nil, err
	}
	created, err := s.repo.FindByID(ctx, line.ID)
	if err != nil {
		return transactionToResponse(line), nil
	}
	return transactionToResponse(created), nil
}

func (s *transactionService) GetByID(ctx context.Context, id uint) (*dto.TransactionLineResponse, error) {
	line, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("transaction not found")
	}
	return transactionToResponse(line), nil
}

func (s *transactionService) List(ctx context.Context, filter dto.TransactionFilter) (*dto.TransactionListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 10
	}
	lines, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.TransactionLineResponse, 0, len(lines))
	for i := range lines {
		data = append(data, *transactionToResponse(&lines[i]))
	}
	return &dto.TransactionListResponse{Data: data, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

func (s *transactionService) ListBySale(ctx context.Context, saleID uuid.UUID) ([]dto.TransactionLineResponse, error) {
	lines, err := s.repo.ListBySale(ctx, saleID)
	if err != nil {
		return nil, err
	}
	data := make([]dto.TransactionLineResponse, 0, len(lines))
	for i := range lines {
		data = append(data, *transactionToResponse(&lines[i]))
	}
	return data, nil
}

func (s *transactionService) Update(ctx context.Context, id uint, req dto.TransactionLineRequest) (*dto.TransactionLineResponse, error) {
	line, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("transaction not found")
	}
	if _, err := s.guardSale(ctx, line.SaleID); err != nil {
		return nil, err
	}
	if !req.Quantity.IsPositive() {
		return nil, errors.New("quantity must be a positive number")
	}
	if req.Price.IsNegative() {
		return nil, errors.New("price cannot be negative")
	}

	line.Quantity = req.Quantity
	line.Price = req.Price
	line.Amount = req.Quantity.Mul(req.Price)
	if err := s.repo.Update(ctx, line); err != nil {
		return nil, err
	}
	return transactionToResponse(line), nil
}

func (s *transactionService) Delete(ctx context.Context, id uint) error {
	line, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return errors.New("transaction not found")
	}
	if _, err := s.guardSale(ctx, line.SaleID); err != nil {
		return err
	}
	rows, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return errors.New("transaction not found")
	}
	return nil
}

func transactionToResponse(l *model.TransactionLine) *dto.TransactionLineResponse {
	resp := &dto.TransactionLineResponse{
		ID:       l.ID,
		SaleID:   l.SaleID.String(),
		ItemID:   l.ItemID.String(),
		Quantity: l.Quantity,
		Price:    l.Price,
		Amount:   l.Amount,
	}
	if l.Item != nil {
		resp.ItemName = l.Item.Name
		resp.UOM = l.Item.UOM
	}
	if l.Sale != nil {
		resp.DONumber = l.Sale.DONumber
		if l.Sale.Customer != nil {
			resp.CustomerName = l.Sale.Customer.Name
		}
	}
	return resp
}
