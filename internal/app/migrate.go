package app

import (
	"go-quickgas/internal/company"
	"go-quickgas/internal/domain"
	"go-quickgas/internal/gas"
	"go-quickgas/internal/order"
	"go-quickgas/internal/orderstatus"
	"go-quickgas/internal/role"
	"go-quickgas/internal/user"

	"gorm.io/gorm"
)

// outboxTableSQL creates the relay table the transactional outbox writes to.
// It is raw SQL because the table carries no gorm entity.
const outboxTableSQL = `
CREATE TABLE IF NOT EXISTS outbox_events (
    id UUID PRIMARY KEY,
    request_id VARCHAR(64),
    aggregate_type VARCHAR(64) NOT NULL,
    aggregate_id VARCHAR(64) NOT NULL,
    event_type VARCHAR(64) NOT NULL,
    topic VARCHAR(128) NOT NULL,
    payload JSONB NOT NULL,
    status VARCHAR(16) NOT NULL DEFAULT 'pending',
    retry_count INT NOT NULL DEFAULT 0,
    error_message VARCHAR(500),
    next_retry_at TIMESTAMPTZ,
    processed_at TIMESTAMPTZ,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

func migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&role.Role{},
		&orderstatus.OrderStatus{},
		&company.Company{},
		&gas.Gas{},
		&user.User{},
		&order.Order{},
		&order.OrderItem{},
	); err != nil {
		return err
	}

	return db.Exec(outboxTableSQL).Error
}

// seed inserts the fixed role and status rows. FirstOrCreate keeps restarts
// idempotent and never touches rows an operator edited.
func seed(db *gorm.DB) error {
	roles := []role.Role{
		{ID: uint(domain.RoleAdmin), Name: domain.RoleAdmin.String()},
		{ID: uint(domain.RoleDispatcher), Name: domain.RoleDispatcher.String()},
		{ID: uint(domain.RoleDriver), Name: domain.RoleDriver.String()},
		{ID: uint(domain.RoleCustomer), Name: domain.RoleCustomer.String()},
	}
	for _, r := range roles {
		if err := db.Where(role.Role{Name: r.Name}).FirstOrCreate(&r).Error; err != nil {
			return err
		}
	}

	statuses := []orderstatus.OrderStatus{
		{Name: orderstatus.StatusPending},
		{Name: orderstatus.StatusOutForDelivery},
		{Name: orderstatus.StatusCompleted},
		{Name: orderstatus.StatusCancelled},
	}
	for _, s := range statuses {
		if err := db.Where(orderstatus.OrderStatus{Name: s.Name}).FirstOrCreate(&s).Error; err != nil {
			return err
		}
	}

	return nil
}
