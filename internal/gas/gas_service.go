package gas

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	gaserrors "go-quickgas/internal/gas/errors"
	"go-quickgas/internal/shared/apperror"
	"go-quickgas/internal/shared/response"

	"go.uber.org/zap"
)

//go:generate mockgen -destination=mock/gas_service_mock.go -package=mock . Service
type Service interface {
	Create(ctx context.Context, req CreateGasRequest) (*GasResponse, error)
	GetByID(ctx context.Context, id uint) (*GasResponse, error)
	GetAll(ctx context.Context) ([]GasOption, error)
	List(ctx context.Context, q ListGasesQuery) (*response.DataTable, error)
	Update(ctx context.Context, id uint, req UpdateGasRequest) (*GasResponse, error)
	Delete(ctx context.Context, id uint) error
	DeletePermanent(ctx context.Context, id uint) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger *zap.Logger) Service {
	return &service{db: db, repo: repo, logger: logger.Named("gas.service")}
}

func (s *service) Create(ctx context.Context, req CreateGasRequest) (*GasResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperror.RequiredField("name")
	}

	unit := strings.TrimSpace(req.Unit)
	if unit == "" {
		unit = DefaultUnit
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	g, err := s.repo.WithTx(tx).CreateOrRevive(ctx, name, unit, req.Description)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, gaserrors.ErrGasNameExists
		}
		return nil, mapGasError(err)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	s.logger.Info("gas created", zap.Uint("gas_id", g.ID), zap.String("name", g.Name))
	return mapToResponse(g), nil
}

func (s *service) GetByID(ctx context.Context, id uint) (*GasResponse, error) {
	g, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapGasError(err)
	}
	return mapToResponse(g), nil
}

func (s *service) GetAll(ctx context.Context) ([]GasOption, error) {
	gases, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	options := make([]GasOption, 0, len(gases))
	for _, g := range gases {
		options = append(options, GasOption{ID: g.ID, Name: g.Name, Unit: g.Unit})
	}
	return options, nil
}

func (s *service) List(ctx context.Context, q ListGasesQuery) (*response.DataTable, error) {
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

	gases, err := s.repo.List(ctx, q.Search, q.Start, q.Length)
	if err != nil {
		return nil, err
	}

	rows := make([]GasResponse, 0, len(gases))
	for i := range gases {
		rows = append(rows, *mapToResponse(&gases[i]))
	}

	return &response.DataTable{
		Draw:            q.Draw,
		RecordsTotal:    total,
		RecordsFiltered: filtered,
		Data:            rows,
	}, nil
}

func (s *service) Update(ctx context.Context, id uint, req UpdateGasRequest) (*GasResponse, error) {
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
			return nil, gaserrors.ErrGasNameExists
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	rows, err := s.repo.WithTx(tx).UpdateFields(ctx, id, req.Name, req.Unit, req.Description)
	if err != nil {
		return nil, mapGasError(err)
	}
	if rows == 0 {
		return nil, gaserrors.ErrGasNotFound
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	g, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapGasError(err)
	}

	s.logger.Info("gas updated", zap.Uint("gas_id", id))
	return mapToResponse(g), nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	rows, err := s.repo.WithTx(tx).SoftDelete(ctx, id)
	if err != nil {
		return mapGasError(err)
	}
	if rows == 0 {
		return gaserrors.ErrGasNotFound
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.logger.Info("gas soft deleted", zap.Uint("gas_id", id))
	return nil
}

func (s *service) DeletePermanent(ctx context.Context, id uint) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	rows, err := s.repo.WithTx(tx).DeleteByID(ctx, id)
	if err != nil {
		return mapGasError(err)
	}
	if rows == 0 {
		return gaserrors.ErrGasNotFound
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.logger.Warn("gas permanently deleted", zap.Uint("gas_id", id))
	return nil
}

func mapToResponse(g *Gas) *GasResponse {
	return &GasResponse{
		ID:          g.ID,
		Name:        g.Name,
		Unit:        g.Unit,
		Description: g.Description,
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
}
