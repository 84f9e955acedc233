package company

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	companyerrors "go-quickgas/internal/company/errors"
	"go-quickgas/internal/shared/apperror"
	"go-quickgas/internal/shared/response"

	"go.uber.org/zap"
)

//go:generate mockgen -destination=mock/company_service_mock.go -package=mock . Service
type Service interface {
	Create(ctx context.Context, req CreateCompanyRequest) (*CompanyResponse, error)
	GetByID(ctx context.Context, id uint) (*CompanyResponse, error)
	GetAll(ctx context.Context) ([]CompanyOption, error)
	List(ctx context.Context, q ListCompaniesQuery) (*response.DataTable, error)
	Update(ctx context.Context, id uint, req UpdateCompanyRequest) (*CompanyResponse, error)
	Delete(ctx context.Context, id uint) error
	DeletePermanent(ctx context.Context, id uint) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger *zap.Logger) Service {
	return &service{db: db, repo: repo, logger: logger.Named("company.service")}
}

func (s *service) Create(ctx context.Context, req CreateCompanyRequest) (*CompanyResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperror.RequiredField("name")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	comp, err := s.repo.WithTx(tx).CreateOrRevive(ctx, name, req.Address)
	if err != nil {
		// zero rows means the name belongs to a live company
		if errors.Is(err, sql.ErrNoRows) {
			return nil, companyerrors.ErrCompanyNameExists
		}
		return nil, mapCompanyError(err)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	s.logger.Info("company created", zap.Uint("company_id", comp.ID), zap.String("name", comp.Name))
	return mapToResponse(comp), nil
}

func (s *service) GetByID(ctx context.Context, id uint) (*CompanyResponse, error) {
	comp, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapCompanyError(err)
	}
	return mapToResponse(comp), nil
}

func (s *service) GetAll(ctx context.Context) ([]CompanyOption, error) {
	companies, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	options := make([]CompanyOption, 0, len(companies))
	for _, c := range companies {
		options = append(options, CompanyOption{ID: c.ID, Name: c.Name})
	}
	return options, nil
}

func (s *service) List(ctx context.Context, q ListCompaniesQuery) (*response.DataTable, error) {
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

	companies, err := s.repo.List(ctx, q.Search, q.Start, q.Length)
	if err != nil {
		return nil, err
	}

	rows := make([]CompanyResponse, 0, len(companies))
	for i := range companies {
		rows = append(rows, *mapToResponse(&companies[i]))
	}

	return &response.DataTable{
		Draw:            q.Draw,
		RecordsTotal:    total,
		RecordsFiltered: filtered,
		Data:            rows,
	}, nil
}

func (s *service) Update(ctx context.Context, id uint, req UpdateCompanyRequest) (*CompanyResponse, error) {
	if req.Name != nil {
		trimmed := strings.TrimSpace(*req.Name)
		if trimmed == "" {
			return nil, apperror.RequiredField("name")
		}
		req.Name = &trimmed

		taken, err := s.repo.NameTakenByOther(ctx, trimmed, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, companyerrors.ErrCompanyNameExists
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	rows, err := s.repo.WithTx(tx).UpdateFields(ctx, id, req.Name, req.Address)
	if err != nil {
		return nil, mapCompanyError(err)
	}
	if rows == 0 {
		return nil, companyerrors.ErrCompanyNotFound
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	comp, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapCompanyError(err)
	}

	s.logger.Info("company updated", zap.Uint("company_id", id))
	return mapToResponse(comp), nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	rows, err := s.repo.WithTx(tx).SoftDelete(ctx, id)
	if err != nil {
		return mapCompanyError(err)
	}
	if rows == 0 {
		return companyerrors.ErrCompanyNotFound
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.logger.Info("company soft deleted", zap.Uint("company_id", id))
	return nil
}

// DeletePermanent removes the row even when it is already soft deleted.
func (s *service) DeletePermanent(ctx context.Context, id uint) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	rows, err := s.repo.WithTx(tx).DeleteByID(ctx, id)
	if err != nil {
		return mapCompanyError(err)
	}
	if rows == 0 {
		return companyerrors.ErrCompanyNotFound
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.logger.Warn("company permanently deleted", zap.Uint("company_id", id))
	return nil
}

func mapToResponse(c *Company) *CompanyResponse {
	return &CompanyResponse{
		ID:        c.ID,
		Name:      c.Name,
		Address:   c.Address,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
