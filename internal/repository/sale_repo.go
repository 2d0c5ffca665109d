package repository

import (
	"context"
	"time"

	"pospenjualan/internal/dto"
	"pospenjualan/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SaleRepository interface {
	Create(ctx context.Context, s *model.Sale) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Sale, error)
	List(ctx context.Context, filter dto.SaleFilter) ([]model.Sale, int64, error)
	Update(ctx context.Context, s *model.Sale) error
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
	CountByDate(ctx context.Context, day time.Time) (int64, error)
	DONumberTaken(ctx context.Context, do string, exclude *uuid.UUID) (bool, error)
}

type saleRepo struct{ db *gorm.DB }

func NewSaleRepository(db *gorm.DB) SaleRepository { return &saleRepo{db: db} }

func (r *saleRepo) Create(ctx context.Context, s *model.Sale) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *saleRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Sale, error) {
	var s model.Sale
	err := r.db.WithContext(ctx).Preload("Customer").First(&s, id).Error
	return &s, err
}

func (r *saleRepo) List(ctx context.Context, filter dto.SaleFilter) ([]model.Sale, int64, error) {
	var sales []model.Sale
	var total int64
	offset := (filter.Page - 1) * filter.Limit

	q := r.db.WithContext(ctx).Model(&model.Sale{})
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		q = q.Joins("LEFT JOIN customer ON customer.id = sales.customer_id").
			Where("sales.do_number ILIKE ? OR customer.name ILIKE ? OR sales.status ILIKE ?", like, like, like)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Preload("Customer").
		Order("sales.date DESC").
		Offset(offset).Limit(filter.Limit).
		Find(&sales).Error
	return sales, total, err
}

func (r *saleRepo) Update(ctx context.Context, s *model.Sale) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *saleRepo) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.Sale{}, id)
	return res.RowsAffected, res.Error
}

// CountByDate counts sales headers created on the given calendar day; the DO
// number generator uses it for the per-day sequence.
func (r *saleRepo) CountByDate(ctx context.Context, day time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Sale{}).
		Where("DATE(date) = DATE(?)", day).Count(&n).Error
	return n, err
}

func (r *saleRepo) DONumberTaken(ctx context.Context, do string, exclude *uuid.UUID) (bool, error) {
	q := r.db.WithContext(ctx).Model(&model.Sale{}).Where("do_number = ?", do)
	if exclude != nil {
		q = q.Where("id <> ?", *exclude)
	}
	var n int64
	err := q.Count(&n).Error
	return n > 0, err
}
