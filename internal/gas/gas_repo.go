package gas

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -destination=mock/gas_repo_mock.go -package=mock . Repository
type Repository interface {
	WithTx(tx *sql.Tx) Repository

	// CreateOrRevive inserts a gas, or revives a soft-deleted row holding the
	// same name. Returns sql.ErrNoRows when the name belongs to a live gas.
	CreateOrRevive(ctx context.Context, name, unit string, description *string) (*Gas, error)

	FindByID(ctx context.Context, id uint) (*Gas, error)
	FindAll(ctx context.Context) ([]Gas, error)
	List(ctx context.Context, search string, offset, limit int) ([]Gas, error)
	CountActive(ctx context.Context) (int64, error)
	CountFiltered(ctx context.Context, search string) (int64, error)
	NameTakenByOther(ctx context.Context, name string, excludeID uint) (bool, error)

	UpdateFields(ctx context.Context, id uint, name, unit, description *string) (int64, error)
	SoftDelete(ctx context.Context, id uint) (int64, error)
	DeleteByID(ctx context.Context, id uint) (int64, error)
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

func (r *repository) CreateOrRevive(ctx context.Context, name, unit string, description *string) (*Gas, error) {
	query := `
        INSERT INTO gases (name, unit, description, is_deleted, created_at, updated_at)
        VALUES ($1, $2, $3, false, NOW(), NOW())
        ON CONFLICT (name) DO UPDATE
        SET is_deleted = false,
            unit = EXCLUDED.unit,
            description = EXCLUDED.description,
            updated_at = NOW()
        WHERE gases.is_deleted
        RETURNING id, name, unit, description, is_deleted, created_at, updated_at
    `

	var g Gas
	err := r.execer().QueryRowContext(ctx, query, name, unit, description).Scan(
		&g.ID, &g.Name, &g.Unit, &g.Description, &g.IsDeleted, &g.CreatedAt, &g.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *repository) FindByID(ctx context.Context, id uint) (*Gas, error) {
	var g Gas
	err := r.gorm.WithContext(ctx).
		Where("id = ? AND is_deleted = false", id).
		First(&g).Error
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *repository) FindAll(ctx context.Context) ([]Gas, error) {
	var gases []Gas
	err := r.gorm.WithContext(ctx).
		Where("is_deleted = false").
		Order("name ASC").
		Find(&gases).Error
	return gases, err
}

func (r *repository) List(ctx context.Context, search string, offset, limit int) ([]Gas, error) {
	var gases []Gas
	q := r.gorm.WithContext(ctx).Where("is_deleted = false")
	if search != "" {
		q = q.Where("name ILIKE ?", "%"+search+"%")
	}
	err := q.Order("created_at DESC").Offset(offset).Limit(limit).Find(&gases).Error
	return gases, err
}

func (r *repository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.gorm.WithContext(ctx).Model(&Gas{}).
		Where("is_deleted = false").
		Count(&count).Error
	return count, err
}

func (r *repository) CountFiltered(ctx context.Context, search string) (int64, error) {
	q := r.gorm.WithContext(ctx).Model(&Gas{}).Where("is_deleted = false")
	if search != "" {
		q = q.Where("name ILIKE ?", "%"+search+"%")
	}
	var count int64
	err := q.Count(&count).Error
	return count, err
}

func (r *repository) NameTakenByOther(ctx context.Context, name string, excludeID uint) (bool, error) {
	var count int64
	err := r.gorm.WithContext(ctx).Model(&Gas{}).
		Where("name = ? AND id <> ? AND is_deleted = false", name, excludeID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) UpdateFields(ctx context.Context, id uint, name, unit, description *string) (int64, error) {
	query := `
        UPDATE gases
        SET name = COALESCE($2, name),
            unit = COALESCE($3, unit),
            description = COALESCE($4, description),
            updated_at = NOW()
        WHERE id = $1 AND is_deleted = false
    `

	res, err := r.execer().ExecContext(ctx, query, id, name, unit, description)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *repository) SoftDelete(ctx context.Context, id uint) (int64, error) {
	query := `
        UPDATE gases
        SET is_deleted = true, updated_at = NOW()
        WHERE id = $1 AND is_deleted = false
    `

	res, err := r.execer().ExecContext(ctx, query, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// DeleteByID removes the row outright, soft-deleted or not.
func (r *repository) DeleteByID(ctx context.Context, id uint) (int64, error) {
	res, err := r.execer().ExecContext(ctx, `DELETE FROM gases WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
