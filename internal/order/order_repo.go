package order

import (
	"context"
	"database/sql"
	"strings"

	"go-quickgas/internal/domain"

	"gorm.io/gorm"
)

const joinedOrderSelect = `
SELECT
	o.id,
	o.company_id,
	c.name AS company_name,
	c.address AS company_address,
	o.status_id,
	s.name AS status_name,
	o.admin_id,
	a.name AS admin_name,
	o.driver_id,
	d.name AS driver_name,
	o.area,
	o.mobile_no,
	o.notes,
	o.created_at,
	o.updated_at
FROM orders o
JOIN companies c ON c.id = o.company_id
JOIN order_statuses s ON s.id = o.status_id
JOIN users a ON a.id = o.admin_id
LEFT JOIN users d ON d.id = o.driver_id
`

//go:generate mockgen -destination=mock/order_repo_mock.go -package=mock . Repository
type Repository interface {
	WithTx(tx *sql.Tx) Repository

	// Read-side predicates. All respect soft-delete flags where the target
	// table carries one.
	CompanyExists(ctx context.Context, id uint) (bool, error)
	GasExists(ctx context.Context, id uint) (bool, error)
	UserExists(ctx context.Context, id uint) (bool, error)
	UserHasRole(ctx context.Context, id uint, role domain.RoleID) (bool, error)
	StatusExists(ctx context.Context, id uint) (bool, error)
	OrderExists(ctx context.Context, id uint) (bool, error)

	InsertOrder(ctx context.Context, o *Order) error
	InsertItem(ctx context.Context, item *OrderItem) error
	UpdateOrderFields(ctx context.Context, id uint, req UpdateOrderRequest) (int64, error)
	DeleteOrder(ctx context.Context, id uint) (int64, error)
	UpdateItemQuantity(ctx context.Context, id uint, quantity int) (int64, error)
	DeleteItem(ctx context.Context, id uint) (int64, error)

	FindByID(ctx context.Context, id uint) (*Order, error)
	FindJoinedByID(ctx context.Context, id uint) (*JoinedOrder, error)
	ListJoined(ctx context.Context, q ListOrdersQuery) ([]JoinedOrder, error)
	CountActive(ctx context.Context) (int64, error)
	CountFiltered(ctx context.Context, q ListOrdersQuery) (int64, error)
	FindItemsByOrderIDs(ctx context.Context, orderIDs []uint) ([]JoinedItem, error)
	FindItemsByOrderID(ctx context.Context, orderID uint) ([]JoinedItem, error)
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type repository struct {
	gorm *gorm.DB
	db   *sql.DB
	tx   *sql.Tx
}

func NewRepository(gormDB *gorm.DB, db *sql.DB) Repository {
	return &repository{gorm: gormDB, db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{gorm: r.gorm, db: r.db, tx: tx}
}

func (r *repository) execer() execer {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

func (r *repository) softDeletableExists(ctx context.Context, table string, id uint) (bool, error) {
	var count int64
	err := r.gorm.WithContext(ctx).Table(table).
		Where("id = ? AND is_deleted = false", id).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) CompanyExists(ctx context.Context, id uint) (bool, error) {
	return r.softDeletableExists(ctx, "companies", id)
}

func (r *repository) GasExists(ctx context.Context, id uint) (bool, error) {
	return r.softDeletableExists(ctx, "gases", id)
}

func (r *repository) UserExists(ctx context.Context, id uint) (bool, error) {
	return r.softDeletableExists(ctx, "users", id)
}

func (r *repository) UserHasRole(ctx context.Context, id uint, role domain.RoleID) (bool, error) {
	var count int64
	err := r.gorm.WithContext(ctx).Table("users").
		Where("id = ? AND role_id = ? AND is_deleted = false", id, role).
		Count(&count).Error
	return count > 0, err
}

// StatusExists ignores soft delete: the status table has none.
func (r *repository) StatusExists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.gorm.WithContext(ctx).Table("order_statuses").
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) OrderExists(ctx context.Context, id uint) (bool, error) {
	return r.softDeletableExists(ctx, "orders", id)
}

func (r *repository) InsertOrder(ctx context.Context, o *Order) error {
	query := `
        INSERT INTO orders (company_id, status_id, admin_id, driver_id, area, mobile_no, notes, is_deleted, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, false, NOW(), NOW())
        RETURNING id, created_at, updated_at
    `

	return r.execer().QueryRowContext(ctx, query,
		o.CompanyID, o.StatusID, o.AdminID, o.DriverID, o.Area, o.MobileNo, o.Notes,
	).Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
}

func (r *repository) InsertItem(ctx context.Context, item *OrderItem) error {
	query := `
        INSERT INTO order_items (order_id, gas_id, quantity)
        VALUES ($1, $2, $3)
        RETURNING id
    `

	return r.execer().QueryRowContext(ctx, query,
		item.OrderID, item.GasID, item.Quantity,
	).Scan(&item.ID)
}

func (r *repository) UpdateOrderFields(ctx context.Context, id uint, req UpdateOrderRequest) (int64, error) {
	query := `
        UPDATE orders
        SET company_id = COALESCE($2, company_id),
            status_id = COALESCE($3, status_id),
            driver_id = COALESCE($4, driver_id),
            area = COALESCE($5, area),
            mobile_no = COALESCE($6, mobile_no),
            notes = COALESCE($7, notes),
            updated_at = NOW()
        WHERE id = $1 AND is_deleted = false
    `

	res, err := r.execer().ExecContext(ctx, query,
		id, req.CompanyID, req.StatusID, req.DriverID, req.Area, req.MobileNo, req.Notes,
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// DeleteOrder removes the row permanently. Items go with it through the
// ON DELETE CASCADE constraint.
func (r *repository) DeleteOrder(ctx context.Context, id uint) (int64, error) {
	res, err := r.execer().ExecContext(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *repository) UpdateItemQuantity(ctx context.Context, id uint, quantity int) (int64, error) {
	res, err := r.execer().ExecContext(ctx,
		`UPDATE order_items SET quantity = $2 WHERE id = $1`, id, quantity)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *repository) DeleteItem(ctx context.Context, id uint) (int64, error) {
	res, err := r.execer().ExecContext(ctx, `DELETE FROM order_items WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *repository) FindByID(ctx context.Context, id uint) (*Order, error) {
	var o Order
	err := r.gorm.WithContext(ctx).
		Where("id = ? AND is_deleted = false", id).
		First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *repository) FindJoinedByID(ctx context.Context, id uint) (*JoinedOrder, error) {
	var row JoinedOrder
	query := joinedOrderSelect + " WHERE o.is_deleted = false AND o.id = ?"
	res := r.gorm.WithContext(ctx).Raw(query, id).Scan(&row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}

func buildListFilter(q ListOrdersQuery) (string, []any) {
	var (
		sb   strings.Builder
		args []any
	)
	sb.WriteString(" WHERE o.is_deleted = false")

	if q.Search != "" {
		sb.WriteString(" AND (c.name ILIKE ? OR d.name ILIKE ? OR s.name ILIKE ?)")
		pattern := "%" + q.Search + "%"
		args = append(args, pattern, pattern, pattern)
	}
	if q.StatusID != nil {
		sb.WriteString(" AND o.status_id = ?")
		args = append(args, *q.StatusID)
	}
	if q.StartDate != nil {
		sb.WriteString(" AND o.created_at >= ?")
		args = append(args, *q.StartDate)
	}
	if q.EndDate != nil {
		sb.WriteString(" AND o.created_at <= ?")
		args = append(args, *q.EndDate)
	}

	return sb.String(), args
}

func (r *repository) ListJoined(ctx context.Context, q ListOrdersQuery) ([]JoinedOrder, error) {
	filter, args := buildListFilter(q)

	dir := "DESC"
	if q.SortAsc {
		dir = "ASC"
	}
	query := joinedOrderSelect + filter + " ORDER BY o.created_at " + dir + " LIMIT ? OFFSET ?"
	args = append(args, q.Length, q.Start)

	var rows []JoinedOrder
	err := r.gorm.WithContext(ctx).Raw(query, args...).Scan(&rows).Error
	return rows, err
}

func (r *repository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.gorm.WithContext(ctx).Table("orders").
		Where("is_deleted = false").
		Count(&count).Error
	return count, err
}

func (r *repository) CountFiltered(ctx context.Context, q ListOrdersQuery) (int64, error) {
	filter, args := buildListFilter(q)
	query := `
SELECT COUNT(*)
FROM orders o
JOIN companies c ON c.id = o.company_id
JOIN order_statuses s ON s.id = o.status_id
LEFT JOIN users d ON d.id = o.driver_id
` + filter

	var count int64
	err := r.gorm.WithContext(ctx).Raw(query, args...).Scan(&count).Error
	return count, err
}

// FindItemsByOrderIDs fetches the items of a whole page in one query.
func (r *repository) FindItemsByOrderIDs(ctx context.Context, orderIDs []uint) ([]JoinedItem, error) {
	if len(orderIDs) == 0 {
		return nil, nil
	}

	query := `
SELECT oi.id, oi.order_id, oi.gas_id, g.name AS gas_name, g.unit AS gas_unit, oi.quantity
FROM order_items oi
JOIN gases g ON g.id = oi.gas_id
WHERE oi.order_id IN ?
ORDER BY oi.order_id, oi.id
`

	var items []JoinedItem
	err := r.gorm.WithContext(ctx).Raw(query, orderIDs).Scan(&items).Error
	return items, err
}

func (r *repository) FindItemsByOrderID(ctx context.Context, orderID uint) ([]JoinedItem, error) {
	return r.FindItemsByOrderIDs(ctx, []uint{orderID})
}
