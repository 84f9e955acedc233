package role

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -destination=mock/role_repo_mock.go -package=mock . Repository
type Repository interface {
	FindAll(ctx context.Context) ([]Role, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindAll(ctx context.Context) ([]Role, error) {
	var roles []Role
	err := r.db.WithContext(ctx).Order("id ASC").Find(&roles).Error
	return roles, err
}
