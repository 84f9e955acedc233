package orderstatus

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -destination=mock/order_status_repo_mock.go -package=mock . Repository
type Repository interface {
	FindAll(ctx context.Context) ([]OrderStatus, error)
	Exists(ctx context.Context, id uint) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindAll(ctx context.Context) ([]OrderStatus, error) {
	var statuses []OrderStatus
	err := r.db.WithContext(ctx).Order("id ASC").Find(&statuses).Error
	return statuses, err
}

func (r *repository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&OrderStatus{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
