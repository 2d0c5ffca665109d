package repository

import (
	"context"

	"pospenjualan/internal/dto"
	"pospenjualan/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ItemRepository interface {
	Create(ctx context.Context, i *model.Item) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Item, error)
	List(ctx context.Context, filter dto.ItemFilter) ([]model.Item, int64, error)
	ListAll(ctx context.Context) ([]model.Item, error)
	Update(ctx context.Context, i *model.Item) error
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
	InUse(ctx context.Context, id uuid.UUID) (bool, error)
}

type itemRepo struct{ db *gorm.DB }

func NewItemRepository(db *gorm.DB) ItemRepository { return &itemRepo{db: db} }

func (r *itemRepo) Create(ctx context.Context, i *model.Item) error {
	return r.db.WithContext(ctx).Create(i).Error
}

func (r *itemRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Item, error) {
	var i model.Item
	err := r.db.WithContext(ctx).First(&i, id).Error
	return &i, err
}

func (r *itemRepo) List(ctx context.Context, filter dto.ItemFilter) ([]model.Item, int64, error) {
	var items []model.Item
	var total int64
	offset := (filter.Page - 1) * filter.Limit

	q := r.db.WithContext(ctx).Model(&model.Item{})
	if filter.Search != "" {
		q = q.Where("name ILIKE ? OR uom ILIKE ?", "%"+filter.Search+"%", "%"+filter.Search+"%")
	}
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Order("name ASC").Offset(offset).Limit(filter.Limit).Find(&items).Error
	return items, total, err
}

func (r *itemRepo) ListAll(ctx context.Context) ([]model.Item, error) {
	var items []model.Item
	err := r.db.WithContext(ctx).Order("name ASC").Find(&items).Error
	return items, err
}

func (r *itemRepo) Update(ctx context.Context, i *model.Item) error {
	return r.db.WithContext(ctx).Save(i).Error
}

func (r *itemRepo) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.Item{}, id)
	return res.RowsAffected, res.Error
}

// InUse reports whether any finalized transaction line references the item.
func (r *itemRepo) InUse(ctx context.Context, id uuid.UUID) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.TransactionLine{}).
		Where("item_id = ?", id).Count(&n).Error
	return n > 0, err
}
