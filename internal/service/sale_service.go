package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pospenjualan/internal/dto"
	"pospenjualan/internal/model"
	"pospenjualan/internal/repository"

	"github.com/google/uuid"
)

type SaleService interface {
	Create(ctx context.Context, req dto.SaleRequest) (*dto.SaleResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.SaleResponse, error)
	List(ctx context.Context, filter dto.SaleFilter) (*dto.SaleListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.SaleRequest) (*dto.SaleResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GenerateDONumber(ctx context.Context) (string, error)
	StatusOptions() []dto.StatusOption
	CustomerOptions(ctx context.Context) ([]dto.CustomerOption, error)
}

type saleService struct {
	repo      repository.SaleRepository
	txns      repository.TransactionRepository
	customers repository.CustomerRepository
}

func NewSaleService(
	repo repository.SaleRepository,
	txns repository.TransactionRepository,
	customers repository.CustomerRepository,
) SaleService {
	return &saleService{repo: repo, txns: txns, customers: customers}
}

// parseSaleDate accepts the three formats the legacy form posts.
func parseSaleDate(s string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02 15:04:05", "2006-01-02 15:04", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.New("invalid date format")
}

func (s *saleService) resolve(ctx context.Context, req dto.SaleRequest, exclude *uuid.UUID) (*model.Sale, error) {
	date, err := parseSaleDate(req.Date)
	if err != nil {
		return nil, err
	}
	if !model.ValidSaleStatus(req.Status) {
		return nil, errors.New("status must be DRAFT, FINAL or CANCELED")
	}

	sale := &model.Sale{Date: date, Status: req.Status}

	if req.CustomerID != nil && *req.CustomerID != "" {
		cid, err := uuid.Parse(*req.CustomerID)
		if err != nil {
			return nil, errors.New("invalid customer id")
		}
		if _, err := s.customers.FindByID(ctx, cid); err != nil {
			return nil, errors.New("customer not found")
		}
		sale.CustomerID = &cid
	}

	if req.DONumber != nil && *req.DONumber != "" {
		taken, err := s.repo.DONumberTaken(ctx, *req.DONumber, exclude)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, errors.New("DO number already in use")
		}
		sale.DONumber = req.DONumber
	}
	return sale, nil
}

func (s *saleService) Create(ctx context.Context, req dto.SaleRequest) (*dto.SaleResponse, error) {
	sale, err := s.resolve(ctx, req, nil)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, sale); err != nil {
		return nil, err
	}
	return s.toResponse(ctx, sale), nil
}

func (s *saleService) GetByID(ctx context.Context, id uuid.UUID) (*dto.SaleResponse, error) {
	sale, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("sales not found")
	}
	return s.toResponse(ctx, sale), nil
}

func (s *saleService) List(ctx context.Context, filter dto.SaleFilter) (*dto.SaleListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 10
	}
	sales, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(sales))
	for i := range sales {
		items = append(items, *s.toResponse(ctx, &sales[i]))
	}
	return &dto.SaleListResponse{Data: items, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

// Update refuses to touch a FINAL sale: FINAL is read-only to callers.
func (s *saleService) Update(ctx context.Context, id uuid.UUID, req dto.SaleRequest) (*dto.SaleResponse, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("sales not found")
	}
	if existing.Status == model.SaleStatusFinal {
		return nil, errors.New("sales with FINAL status cannot be modified")
	}

	resolved, err := s.resolve(ctx, req, &id)
	if err != nil {
		return nil, err
	}
	existing.Date = resolved.Date
	existing.CustomerID = resolved.CustomerID
	existing.DONumber = resolved.DONumber
	existing.Status = resolved.Status
	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return s.toResponse(ctx, existing), nil
}

// Delete refuses while transaction lines exist (regardless of status) and
// refuses FINAL sales outright.
func (s *saleService) Delete(ctx context.Context, id uuid.UUID) error {
	sale, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return errors.New("sales not found")
	}
	if sale.Status == model.SaleStatusFinal {
		return errors.New("sales with FINAL status cannot be deleted")
	}
	n, err := s.txns.CountBySale(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return errors.New("sales cannot be deleted while it has transaction lines; delete the transactions first")
	}
	rows, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return errors.New("sales not found")
	}
	return nil
}

// GenerateDONumber builds the next document number for today:
// DO-YYYYMMDD-NNN with a per-day sequence.
func (s *saleService) GenerateDONumber(ctx context.Context) (string, error) {
	now := time.Now()
	n, err := s.repo.CountByDate(ctx, now)
	if err != nil {
		// Degrade to a timestamp-unique number rather than failing the form.
		return "DO-" + now.Format("20060102150405"), nil
	}
	return fmt.Sprintf("DO-%s-%03d", now.Format("20060102"), n+1), nil
}

func (s *saleService) StatusOptions() []dto.StatusOption {
	return []dto.StatusOption{
		{Value: model.SaleStatusDraft, Label: "Draft"},
		{Value: model.SaleStatusFinal, Label: "Final"},
		{Value: model.SaleStatusCanceled, Label: "Dibatalkan"},
	}
}

func (s *saleService) CustomerOptions(ctx context.Context) ([]dto.CustomerOption, error) {
	customers, err := s.customers.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	opts := make([]dto.CustomerOption, 0, len(customers))
	for _, c := range customers {
		opts = append(opts, dto.CustomerOption{ID: c.ID.String(), Name: c.Name})
	}
	return opts, nil
}

func (s *saleService) toResponse(ctx context.Context, sale *model.Sale) *dto.SaleResponse {
	resp := &dto.SaleResponse{
		ID:        sale.ID.String(),
		Date:      sale.Date.Format("2006-01-02 15:04:05"),
		DONumber:  sale.DONumber,
		Status:    sale.Status,
		CreatedAt: sale.CreatedAt.Format(time.RFC3339),
	}
	if sale.CustomerID != nil {
		cid := sale.CustomerID.String()
		resp.CustomerID = &cid
	}
	if sale.Customer != nil {
		resp.CustomerName = sale.Customer.Name
	}
	if total, err := s.txns.TotalBySale(ctx, sale.ID); err == nil {
		resp.TotalAmount = total
	}
	return resp
}
