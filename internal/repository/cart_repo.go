package repository

import (
	"context"

	"pospenjualan/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CartRepository interface {
	Create(ctx context.Context, l *model.CartLine) error
	FindByID(ctx context.Context, id uint) (*model.CartLine, error)
	ListBySession(ctx context.Context, sessionID string) ([]model.CartLine, error)
	ListBySessionTx(tx *gorm.DB, sessionID string) ([]model.CartLine, error)
	Update(ctx context.Context, l *model.CartLine) error
	Delete(ctx context.Context, id uint) (int64, error)
	ClearSession(ctx context.Context, sessionID string) error
	ClearSessionTx(tx *gorm.DB, sessionID string) error
	TotalBySession(ctx context.Context, sessionID string) (decimal.Decimal, error)
	DB() *gorm.DB // exposes the DB for transaction creation in service layer
}

type cartRepo struct{ db *gorm.DB }

func NewCartRepository(db *gorm.DB) CartRepository { return &cartRepo{db: db} }

func (r *cartRepo) DB() *gorm.DB { return r.db }

func (r *cartRepo) Create(ctx context.Context, l *model.CartLine) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *cartRepo) FindByID(ctx context.Context, id uint) (*model.CartLine, error) {
	var l model.CartLine
	err := r.db.WithContext(ctx).Preload("Item").First(&l, id).Error
	return &l, err
}

func (r *cartRepo) ListBySession(ctx context.Context, sessionID string) ([]model.CartLine, error) {
	var lines []model.CartLine
	err := r.db.WithContext(ctx).
		Preload("Item").
		Where("session_id = ?", sessionID).
		Order("id ASC"). // insertion order
		Find(&lines).Error
	return lines, err
}

func (r *cartRepo) ListBySessionTx(tx *gorm.DB, sessionID string) ([]model.CartLine, error) {
	var lines []model.CartLine
	err := tx.Where("session_id = ?", sessionID).Order("id ASC").Find(&lines).Error
	return lines, err
}

func (r *cartRepo) Update(ctx context.Context, l *model.CartLine) error {
	return r.db.WithContext(ctx).Save(l).Error
}

// Delete returns the number of rows removed so the service can report
// "not found" for an already-gone line.
func (r *cartRepo) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.CartLine{}, id)
	return res.RowsAffected, res.Error
}

func (r *cartRepo) ClearSession(ctx context.Context, sessionID string) error {
	return r.db.WithContext(ctx).Where("session_id = ?", sessionID).Delete(&model.CartLine{}).Error
}

func (r *cartRepo) ClearSessionTx(tx *gorm.DB, sessionID string) error {
	return tx.Where("session_id = ?", sessionID).Delete(&model.CartLine{}).Error
}

func (r *cartRepo) TotalBySession(ctx context.Context, sessionID string) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := r.db.WithContext(ctx).Model(&model.CartLine{}).
		Select("SUM(amount)").
		Where("session_id = ?", sessionID).
		Scan(&total).Error
	if err != nil || !total.Valid {
		return decimal.Zero, err
	}
	return total.Decimal, nil
}
