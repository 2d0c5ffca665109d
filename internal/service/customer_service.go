package service

import (
	"context"
	"errors"

	"pospenjualan/internal/dto"
	"pospenjualan/internal/model"
	"pospenjualan/internal/repository"

	"github.com/google/uuid"
)

type CustomerService interface {
	Create(ctx context.Context, req dto.CustomerRequest) (*dto.CustomerResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.CustomerResponse, error)
	List(ctx context.Context, filter dto.CustomerFilter) (*dto.CustomerListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.CustomerRequest) (*dto.CustomerResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type customerService struct {
	repo repository.CustomerRepository
}

func NewCustomerService(repo repository.CustomerRepository) CustomerService {
	return &customerService{repo: repo}
}

func (s *customerService) Create(ctx context.Context, req dto.CustomerRequest) (*dto.CustomerResponse, error) {
	c := &model.Customer{Name: req.Name, Address: req.Address, Phone: req.Phone}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return customerToResponse(c), nil
}

func (s *customerService) GetByID(ctx context.Context, id uuid.UUID) (*dto.CustomerResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("customer not found")
	}
	return customerToResponse(c), nil
}

func (s *customerService) List(ctx context.Context, filter dto.CustomerFilter) (*dto.CustomerListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 10
	}
	customers, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.CustomerResponse, 0, len(customers))
	for i := range customers {
		data = append(data, *customerToResponse(&customers[i]))
	}
	return &dto.CustomerListResponse{Data: data, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

func (s *customerService) Update(ctx context.Context, id uuid.UUID, req dto.CustomerRequest) (*dto.CustomerResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("customer not found")
	}
	c.Name = req.Name
	c.Address = req.Address
	c.Phone = req.Phone
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return customerToResponse(c), nil
}

// Delete refuses while sales headers still reference the customer.
func (s *customerService) Delete(ctx context.Context, id uuid.UUID) error {
	used, err := s.repo.InUse(ctx, id)
	if err != nil {
		return err
	}
	if used {
		return errors.New("customer cannot be deleted while sales reference it")
	}
	rows, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return errors.New("customer not found")
	}
	return nil
}

func customerToResponse(c *model.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:      c.ID.String(),
		Name:    c.Name,
		Address: c.Address,
		Phone:   c.Phone,
	}
}
