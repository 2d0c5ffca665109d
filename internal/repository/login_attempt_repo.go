package repository

import (
	"context"
	"time"

	"pospenjualan/internal/model"

	"gorm.io/gorm"
)

type LoginAttemptRepository interface {
	Record(ctx context.Context, a *model.LoginAttempt) error
	CountRecentFailures(ctx context.Context, username, ip string, since time.Time) (int64, error)
}

type loginAttemptRepo struct{ db *gorm.DB }

func NewLoginAttemptRepository(db *gorm.DB) LoginAttemptRepository {
	return &loginAttemptRepo{db: db}
}

func (r *loginAttemptRepo) Record(ctx context.Context, a *model.LoginAttempt) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *loginAttemptRepo) CountRecentFailures(ctx context.Context, username, ip string, since time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.LoginAttempt{}).
		Where("username = ? AND ip = ? AND success = false AND created_at >= ?", username, ip, since).
		Count(&n).Error
	return n, err
}
