package user

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	companyerrors "go-quickgas/internal/company/errors"
	"go-quickgas/internal/domain"
	"go-quickgas/internal/shared/apperror"
	"go-quickgas/internal/shared/response"
	usererrors "go-quickgas/internal/user/errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -destination=mock/user_service_mock.go -package=mock . Service
type Service interface {
	Create(ctx context.Context, req CreateUserRequest) (*UserResponse, error)
	GetByID(ctx context.Context, id uint) (*UserResponse, error)
	List(ctx context.Context, q ListUsersQuery) (*response.DataTable, error)
	Drivers(ctx context.Context) ([]DriverOption, error)
	Update(ctx context.Context, id uint, req UpdateUserRequest) (*UserResponse, error)
	Delete(ctx context.Context, id uint) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger *zap.Logger) Service {
	return &service{db: db, repo: repo, logger: logger.Named("user.service")}
}

func (s *service) Create(ctx context.Context, req CreateUserRequest) (*UserResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperror.RequiredField("name")
	}

	roleID := domain.RoleCustomer
	if req.RoleID != nil {
		if !req.RoleID.Valid() {
			return nil, usererrors.ErrInvalidRoleID
		}
		roleID = *req.RoleID
	}

	exists, err := s.repo.CompanyExists(ctx, req.CompanyID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, companyerrors.ErrCompanyNotFound
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	created, err := s.repo.WithTx(tx).CreateOrRevive(ctx, &User{
		Name:      name,
		Phone:     req.Phone,
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		Address:   req.Address,
		CompanyID: req.CompanyID,
		RoleID:    roleID,
		Password:  string(hashed),
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, usererrors.ErrEmailAlreadyExists
		}
		return nil, mapUserError(err)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	s.logger.Info("user created",
		zap.Uint("user_id", created.ID),
		zap.String("role", created.RoleID.String()),
	)

	full, err := s.repo.FindByID(ctx, created.ID)
	if err != nil {
		return nil, mapUserError(err)
	}
	return mapToResponse(full), nil
}

func (s *service) GetByID(ctx context.Context, id uint) (*UserResponse, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapUserError(err)
	}
	return mapToResponse(u), nil
}

func (s *service) List(ctx context.Context, q ListUsersQuery) (*response.DataTable, error) {
	if q.Length <= 0 {
		q.Length = 10
	}
	if q.Start < 0 {
		q.Start = 0
	}

	total, err := s.repo.CountActive(ctx)
	if err != nil {
		return nil, err
	}

	filtered, err := s.repo.CountFiltered(ctx, q.Search)
	if err != nil {
		return nil, err
	}

	users, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, err
	}

	rows := make([]UserResponse, 0, len(users))
	for i := range users {
		rows = append(rows, *mapToResponse(&users[i]))
	}

	return &response.DataTable{
		Draw:            q.Draw,
		RecordsTotal:    total,
		RecordsFiltered: filtered,
		Data:            rows,
	}, nil
}

func (s *service) Drivers(ctx context.Context) ([]DriverOption, error) {
	drivers, err := s.repo.FindByRole(ctx, domain.RoleDriver)
	if err != nil {
		return nil, err
	}

	options := make([]DriverOption, 0, len(drivers))
	for _, d := range drivers {
		options = append(options, DriverOption{ID: d.ID, Name: d.Name, Phone: d.Phone})
	}
	return options, nil
}

func (s *service) Update(ctx context.Context, id uint, req UpdateUserRequest) (*UserResponse, error) {
	if req.RoleID != nil && !req.RoleID.Valid() {
		return nil, usererrors.ErrInvalidRoleID
	}

	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		req.Email = &email

		taken, err := s.repo.EmailTakenByOther(ctx, email, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, usererrors.ErrEmailAlreadyExists
		}
	}

	if req.CompanyID != nil {
		exists, err := s.repo.CompanyExists(ctx, *req.CompanyID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, companyerrors.ErrCompanyNotFound
		}
	}

	if req.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		h := string(hashed)
		req.Password = &h
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	rows, err := s.repo.WithTx(tx).UpdateFields(ctx, id, req)
	if err != nil {
		return nil, mapUserError(err)
	}
	if rows == 0 {
		return nil, usererrors.ErrUserNotFound
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapUserError(err)
	}

	s.logger.Info("user updated", zap.Uint("user_id", id))
	return mapToResponse(u), nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	rows, err := s.repo.WithTx(tx).SoftDelete(ctx, id)
	if err != nil {
		return mapUserError(err)
	}
	if rows == 0 {
		return usererrors.ErrUserNotFound
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.logger.Info("user soft deleted", zap.Uint("user_id", id))
	return nil
}

func mapToResponse(u *User) *UserResponse {
	resp := &UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Phone:     u.Phone,
		Email:     u.Email,
		Address:   u.Address,
		CompanyID: u.CompanyID,
		RoleID:    uint(u.RoleID),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
	if u.Company != nil {
		resp.CompanyName = u.Company.Name
	}
	if u.Role != nil {
		resp.RoleName = u.Role.Name
	}
	return resp
}
