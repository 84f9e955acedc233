// Package dashboard aggregates order metrics for the operations overview.
package dashboard

import (
	"context"

	"gorm.io/gorm"
)

// CacheKey is the redis key holding the cached insights payload. Order
// mutations delete it so the next read recomputes.
const CacheKey = "dashboard:insights"

//go:generate mockgen -destination=mock/dashboard_repo_mock.go -package=mock . Repository
type Repository interface {
	CountOrdersByStatus(ctx context.Context, statusID uint) (int64, error)
	GasRequirements(ctx context.Context, statusID uint) (map[string]int64, error)
}

type repository struct {
	gorm *gorm.DB
}

func NewRepository(gormDB *gorm.DB) Repository {
	return &repository{gorm: gormDB}
}

func (r *repository) CountOrdersByStatus(ctx context.Context, statusID uint) (int64, error) {
	var count int64
	err := r.gorm.WithContext(ctx).
		Table("orders").
		Where("status_id = ? AND is_deleted = false", statusID).
		Count(&count).Error
	return count, err
}

// GasRequirements sums the ordered quantity per gas across every order in the
// given status, keyed by gas name.
func (r *repository) GasRequirements(ctx context.Context, statusID uint) (map[string]int64, error) {
	query := `
SELECT g.name, COALESCE(SUM(oi.quantity), 0) AS quantity
FROM order_items oi
JOIN orders o ON o.id = oi.order_id
JOIN gases g ON g.id = oi.gas_id
WHERE o.status_id = ? AND o.is_deleted = false
GROUP BY g.name
`

	rows, err := r.gorm.WithContext(ctx).Raw(query, statusID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requirements := make(map[string]int64)
	for rows.Next() {
		var name string
		var quantity int64
		if err := rows.Scan(&name, &quantity); err != nil {
			return nil, err
		}
		requirements[name] = quantity
	}

	return requirements, rows.Err()
}
