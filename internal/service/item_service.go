package service

import (
	"context"
	"errors"

	"pospenjualan/internal/dto"
	"pospenjualan/internal/model"
	"pospenjualan/internal/repository"

	"github.com/google/uuid"
)

type ItemService interface {
	Create(ctx context.Context, req dto.ItemRequest) (*dto.ItemResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.ItemResponse, error)
	List(ctx context.Context, filter dto.ItemFilter) (*dto.ItemListResponse, error)
	ListAll(ctx context.Context) ([]dto.ItemResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.ItemRequest) (*dto.ItemResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type itemService struct {
	repo repository.ItemRepository
}

func NewItemService(repo repository.ItemRepository) ItemService {
	return &itemService{repo: repo}
}

func (s *itemService) Create(ctx context.Context, req dto.ItemRequest) (*dto.ItemResponse, error) {
	item := &model.Item{
		Name:          req.Name,
		UOM:           req.UOM,
		PurchasePrice: req.PurchasePrice,
		SellPrice:     req.SellPrice,
		Stock:         req.Stock,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return itemToResponse(item), nil
}

func (s *itemService) GetByID(ctx context.Context, id uuid.UUID) (*dto.ItemResponse, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("item not found")
	}
	return itemToResponse(item), nil
}

func (s *itemService) List(ctx context.Context, filter dto.ItemFilter) (*dto.ItemListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 10
	}
	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.ItemResponse, 0, len(items))
	for i := range items {
		data = append(data, *itemToResponse(&items[i]))
	}
	return &dto.ItemListResponse{Data: data, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

// ListAll feeds the item dropdown on the cart form.
func (s *itemService) ListAll(ctx context.Context) ([]dto.ItemResponse, error) {
	items, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	data := make([]dto.ItemResponse, 0, len(items))
	for i := range items {
		data = append(data, *itemToResponse(&items[i]))
	}
	return data, nil
}

func (s *itemService) Update(ctx context.Context, id uuid.UUID, req dto.ItemRequest) (*dto.ItemResponse, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("item not found")
	}
	item.Name = req.Name
	item.UOM = req.UOM
	item.PurchasePrice = req.PurchasePrice
	item.SellPrice = req.SellPrice
	item.Stock = req.Stock
	if err := s.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	return itemToResponse(item), nil
}

// Delete refuses while transaction lines still reference the item.
func (s *itemService) Delete(ctx context.Context, id uuid.UUID) error {
	used, err := s.repo.InUse(ctx, id)
	if err != nil {
		return err
	}
	if used {
		return errors.New("item cannot be deleted while transactions reference it")
	}
	rows, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return errors.New("item not found")
	}
	return nil
}

func itemToResponse(i *model.Item) *dto.ItemResponse {
	return &dto.ItemResponse{
		ID:            i.ID.String(),
		Name:          i.Name,
		UOM:           i.UOM,
		PurchasePrice: i.PurchasePrice,
		SellPrice:     i.SellPrice,
		Stock:         i.Stock,
	}
}
