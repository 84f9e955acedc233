package user

import (
	"context"
	"database/sql"

	"go-quickgas/internal/domain"

	"gorm.io/gorm"
)

// sortColumns whitelists user list sort keys.
var sortColumns = map[string]string{
	"name":       "name",
	"email":      "email",
	"created_at": "created_at",
}

//go:generate mockgen -destination=mock/user_repo_mock.go -package=mock . Repository
type Repository interface {
	WithTx(tx *sql.Tx) Repository

	// CreateOrRevive inserts a user, or revives a soft-deleted row holding
	// the same email. Returns sql.ErrNoRows when the email belongs to a live
	// user.
	CreateOrRevive(ctx context.Context, u *User) (*User, error)

	FindByID(ctx context.Context, id uint) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context, q ListUsersQuery) ([]User, error)
	CountActive(ctx context.Context) (int64, error)
	CountFiltered(ctx context.Context, search string) (int64, error)
	FindByRole(ctx context.Context, roleID domain.RoleID) ([]User, error)
	EmailTakenByOther(ctx context.Context, email string, excludeID uint) (bool, error)
	CompanyExists(ctx context.Context, id uint) (bool, error)

	UpdateFields(ctx context.Context, id uint, req UpdateUserRequest) (int64, error)
	SoftDelete(ctx context.Context, id uint) (int64, error)
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

func (r *repository) CreateOrRevive(ctx context.Context, u *User) (*User, error) {
	query := `
        INSERT INTO users (name, phone, email, address, company_id, role_id, password, is_deleted, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, false, NOW(), NOW())
        ON CONFLICT (email) DO UPDATE
        SET is_deleted = false,
            name = EXCLUDED.name,
            phone = EXCLUDED.phone,
            address = EXCLUDED.address,
            company_id = EXCLUDED.company_id,
            role_id = EXCLUDED.role_id,
            password = EXCLUDED.password,
            updated_at = NOW()
        WHERE users.is_deleted
        RETURNING id, name, phone, email, address, company_id, role_id, password, is_deleted, created_at, updated_at
    `

	var out User
	err := r.execer().QueryRowContext(ctx, query,
		u.Name, u.Phone, u.Email, u.Address, u.CompanyID, u.RoleID, u.Password,
	).Scan(
		&out.ID, &out.Name, &out.Phone, &out.Email, &out.Address,
		&out.CompanyID, &out.RoleID, &out.Password, &out.IsDeleted,
		&out.CreatedAt, &out.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *repository) FindByID(ctx context.Context, id uint) (*User, error) {
	var u User
	err := r.gorm.WithContext(ctx).
		Preload("Company").
		Preload("Role").
		Where("id = ? AND is_deleted = false", id).
		First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := r.gorm.WithContext(ctx).
		Where("email = ? AND is_deleted = false", email).
		First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) List(ctx context.Context, q ListUsersQuery) ([]User, error) {
	col, ok := sortColumns[q.SortBy]
	if !ok {
		col = "created_at"
	}
	dir := "DESC"
	if q.SortAsc {
		dir = "ASC"
	}

	query := r.gorm.WithContext(ctx).
		Preload("Company").
		Preload("Role").
		Where("is_deleted = false")
	if q.Search != "" {
		pattern := "%" + q.Search + "%"
		query = query.Where("name ILIKE ? OR email ILIKE ?", pattern, pattern)
	}

	var users []User
	err := query.Order(col + " " + dir).Offset(q.Start).Limit(q.Length).Find(&users).Error
	return users, err
}

func (r *repository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.gorm.WithContext(ctx).Model(&User{}).
		Where("is_deleted = false").
		Count(&count).Error
	return count, err
}

func (r *repository) CountFiltered(ctx context.Context, search string) (int64, error) {
	q := r.gorm.WithContext(ctx).Model(&User{}).Where("is_deleted = false")
	if search != "" {
		pattern := "%" + search + "%"
		q = q.Where("name ILIKE ? OR email ILIKE ?", pattern, pattern)
	}
	var count int64
	err := q.Count(&count).Error
	return count, err
}

func (r *repository) FindByRole(ctx context.Context, roleID domain.RoleID) ([]User, error) {
	var users []User
	err := r.gorm.WithContext(ctx).
		Where("role_id = ? AND is_deleted = false", roleID).
		Order("name ASC").
		Find(&users).Error
	return users, err
}

func (r *repository) EmailTakenByOther(ctx context.Context, email string, excludeID uint) (bool, error) {
	var count int64
	err := r.gorm.WithContext(ctx).Model(&User{}).
		Where("email = ? AND id <> ? AND is_deleted = false", email, excludeID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) CompanyExists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.gorm.WithContext(ctx).Model(&UserCompany{}).
		Where("id = ? AND is_deleted = false", id).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) UpdateFields(ctx context.Context, id uint, req UpdateUserRequest) (int64, error) {
	query := `
        UPDATE users
        SET name = COALESCE($2, name),
            phone = COALESCE($3, phone),
            email = COALESCE($4, email),
            address = COALESCE($5, address),
            company_id = COALESCE($6, company_id),
            role_id = COALESCE($7, role_id),
            password = COALESCE($8, password),
            updated_at = NOW()
        WHERE id = $1 AND is_deleted = false
    `

	var roleID *uint
	if req.RoleID != nil {
		v := uint(*req.RoleID)
		roleID = &v
	}

	res, err := r.execer().ExecContext(ctx, query,
		id, req.Name, req.Phone, req.Email, req.Address, req.CompanyID, roleID, req.Password,
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *repository) SoftDelete(ctx context.Context, id uint) (int64, error) {
	query := `
        UPDATE users
        SET is_deleted = true, updated_at = NOW()
        WHERE id = $1 AND is_deleted = false
    `

	res, err := r.execer().ExecContext(ctx, query, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
