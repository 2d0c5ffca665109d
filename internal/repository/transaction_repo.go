package repository

import (
	"context"

	"pospenjualan/internal/dto"
	"pospenjualan/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type TransactionRepository interface {
	Create(ctx context.Context, l *model.TransactionLine) error
	// CreateBatchTx inserts all lines in one statement inside the caller's
	// transaction — the finalize path depends on this being all-or-nothing.
	CreateBatchTx(tx *gorm.DB, lines []model.TransactionLine) error
	FindByID(ctx context.Context, id uint) (*model.TransactionLine, error)
	ListBySale(ctx context.Context, saleID uuid.UUID) ([]model.TransactionLine, error)
	List(ctx context.Context, filter dto.TransactionFilter) ([]model.TransactionLine, int64, error)
	Update(ctx context.Context, l *model.TransactionLine) error
	Delete(ctx context.Context, id uint) (int64, error)
	CountBySale(ctx context.Context, saleID uuid.UUID) (int64, error)
	TotalBySale(ctx context.Context, saleID uuid.UUID) (decimal.Decimal, error)
}

type transactionRepo struct{ db *gorm.DB }

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepo{db: db}
}

func (r *transactionRepo) Create(ctx context.Context, l *model.TransactionLine) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *transactionRepo) CreateBatchTx(tx *gorm.DB, lines []model.TransactionLine) error {
	return tx.Create(&lines).Error
}

func (r *transactionRepo) FindByID(ctx context.Context, id uint) (*model.TransactionLine, error) {
	var l model.TransactionLine
	err := r.db.WithContext(ctx).Preload("Item").Preload("Sale.Customer").First(&l, id).Error
	return &l, err
}

func (r *transactionRepo) ListBySale(ctx context.Context, saleID uuid.UUID) ([]model.TransactionLine, error) {
	var lines []model.TransactionLine
	err := r.db.WithContext(ctx).
		Preload("Item").
		Where("sale_id = ?", saleID).
		Order("id ASC").
		Find(&lines).Error
	return lines, err
}

func (r *transactionRepo) List(ctx context.Context, filter dto.TransactionFilter) ([]model.TransactionLine, int64, error) {
	var lines []model.TransactionLine
	var total int64
	offset := (filter.Page - 1) * filter.Limit

	q := r.db.WithContext(ctx).Model(&model.TransactionLine{})
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		q = q.Joins("LEFT JOIN sales ON sales.id = transaction.sale_id").
			Joins("LEFT JOIN item ON item.id = transaction.item_id").
			Joins("LEFT JOIN customer ON customer.id = sales.customer_id").
			Where("sales.do_number ILIKE ? OR item.name ILIKE ? OR customer.name ILIKE ?", like, like, like)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Preload("Item").Preload("Sale.Customer").
		Order("transaction.id DESC").
		Offset(offset).Limit(filter.Limit).
		Find(&lines).Error
	return lines, total, err
}

func (r *transactionRepo) Update(ctx context.Context, l *model.TransactionLine) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *transactionRepo) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.TransactionLine{}, id)
	return res.RowsAffected, res.Error
}

func (r *transactionRepo) CountBySale(ctx context.Context, saleID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.TransactionLine{}).
		Where("sale_id = ?", saleID).Count(&n).Error
	return n, err
}

func (r *transactionRepo) TotalBySale(ctx context.Context, saleID uuid.UUID) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := r.db.WithContext(ctx).Model(&model.TransactionLine{}).
		Select("SUM(amount)").
		Where("sale_id = ?", saleID).
		Scan(&total).Error
	if err != nil || !total.Valid {
		return decimal.Zero, err
	}
	return total.Decimal, nil
}
