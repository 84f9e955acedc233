package company_test

import (
	"context"
	"database/sql"
	"testing"

	"go-quickgas/internal/company"
	companyerrors "go-quickgas/internal/company/errors"
	companyMock "go-quickgas/internal/company/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newCompanyService(t *testing.T) (company.Service, *companyMock.MockRepository, sqlmock.Sqlmock) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	db, dbMock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	mockRepo := companyMock.NewMockRepository(ctrl)
	svc := company.NewService(db, mockRepo, zap.NewNop())
	return svc, mockRepo, dbMock
}

func TestCompanyService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc, mockRepo, dbMock := newCompanyService(t)

		addr := "12 Industrial Estate"
		created := &company.Company{ID: 1, Name: "Acme", Address: &addr}

		dbMock.ExpectBegin()
		mockRepo.EXPECT().WithTx(gomock.Any()).Return(mockRepo)
		mockRepo.EXPECT().CreateOrRevive(ctx, "Acme", &addr).Return(created, nil)
		dbMock.ExpectCommit()

		resp, err := svc.Create(ctx, company.CreateCompanyRequest{Name: "Acme", Address: &addr})

		assert.NoError(t, err)
		assert.Equal(t, uint(1), resp.ID)
		assert.Equal(t, "Acme", resp.Name)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("Name Taken By Live Company", func(t *testing.T) {
		svc, mockRepo, dbMock := newCompanyService(t)

		dbMock.ExpectBegin()
		mockRepo.EXPECT().WithTx(gomock.Any()).Return(mockRepo)
		mockRepo.EXPECT().CreateOrRevive(ctx, "Acme", nil).Return(nil, sql.ErrNoRows)
		dbMock.ExpectRollback()

		_, err := svc.Create(ctx, company.CreateCompanyRequest{Name: "Acme"})

		assert.ErrorIs(t, err, companyerrors.ErrCompanyNameExists)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("Blank Name", func(t *testing.T) {
		svc, _, _ := newCompanyService(t)

		_, err := svc.Create(ctx, company.CreateCompanyRequest{Name: "   "})
		assert.Error(t, err)
	})
}

func TestCompanyService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc, mockRepo, _ := newCompanyService(t)

		mockRepo.EXPECT().FindByID(ctx, uint(7)).Return(&company.Company{ID: 7, Name: "Acme"}, nil)

		resp, err := svc.GetByID(ctx, 7)
		assert.NoError(t, err)
		assert.Equal(t, "Acme", resp.Name)
	})

	t.Run("Not Found", func(t *testing.T) {
		svc, mockRepo, _ := newCompanyService(t)

		mockRepo.EXPECT().FindByID(ctx, uint(99)).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.GetByID(ctx, 99)
		assert.ErrorIs(t, err, companyerrors.ErrCompanyNotFound)
	})
}

func TestCompanyService_List(t *testing.T) {
	ctx := context.Background()
	svc, mockRepo, _ := newCompanyService(t)

	mockRepo.EXPECT().CountActive(ctx).Return(int64(12), nil)
	mockRepo.EXPECT().CountFiltered(ctx, "ac").Return(int64(3), nil)
	mockRepo.EXPECT().List(ctx, "ac", 0, 10).Return([]company.Company{
		{ID: 1, Name: "Acme"},
		{ID: 4, Name: "Acro Gases"},
	}, nil)

	table, err := svc.List(ctx, company.ListCompaniesQuery{Draw: 2, Length: 10, Search: "ac"})

	assert.NoError(t, err)
	assert.Equal(t, 2, table.Draw)
	assert.Equal(t, int64(12), table.RecordsTotal)
	assert.Equal(t, int64(3), table.RecordsFiltered)
	assert.LessOrEqual(t, table.RecordsFiltered, table.RecordsTotal)
	assert.Len(t, table.Data, 2)
}

func TestCompanyService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc, mockRepo, dbMock := newCompanyService(t)

		name := "Acme Renamed"
		mockRepo.EXPECT().NameTakenByOther(ctx, name, uint(1)).Return(false, nil)

		dbMock.ExpectBegin()
		mockRepo.EXPECT().WithTx(gomock.Any()).Return(mockRepo)
		mockRepo.EXPECT().UpdateFields(ctx, uint(1), &name, nil).Return(int64(1), nil)
		dbMock.ExpectCommit()

		mockRepo.EXPECT().FindByID(ctx, uint(1)).Return(&company.Company{ID: 1, Name: name}, nil)

		resp, err := svc.Update(ctx, 1, company.UpdateCompanyRequest{Name: &name})

		assert.NoError(t, err)
		assert.Equal(t, name, resp.Name)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("Name Conflict", func(t *testing.T) {
		svc, mockRepo, _ := newCompanyService(t)

		name := "Taken"
		mockRepo.EXPECT().NameTakenByOther(ctx, name, uint(1)).Return(true, nil)

		_, err := svc.Update(ctx, 1, company.UpdateCompanyRequest{Name: &name})
		assert.ErrorIs(t, err, companyerrors.ErrCompanyNameExists)
	})

	t.Run("Not Found", func(t *testing.T) {
		svc, mockRepo, dbMock := newCompanyService(t)

		dbMock.ExpectBegin()
		mockRepo.EXPECT().WithTx(gomock.Any()).Return(mockRepo)
		mockRepo.EXPECT().UpdateFields(ctx, uint(42), nil, nil).Return(int64(0), nil)
		dbMock.ExpectRollback()

		_, err := svc.Update(ctx, 42, company.UpdateCompanyRequest{})
		assert.ErrorIs(t, err, companyerrors.ErrCompanyNotFound)
	})
}

func TestCompanyService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("Soft Delete Success", func(t *testing.T) {
		svc, mockRepo, dbMock := newCompanyService(t)

		dbMock.ExpectBegin()
		mockRepo.EXPECT().WithTx(gomock.Any()).Return(mockRepo)
		mockRepo.EXPECT().SoftDelete(ctx, uint(3)).Return(int64(1), nil)
		dbMock.ExpectCommit()

		assert.NoError(t, svc.Delete(ctx, 3))
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("Not Found", func(t *testing.T) {
		svc, mockRepo, dbMock := newCompanyService(t)

		dbMock.ExpectBegin()
		mockRepo.EXPECT().WithTx(gomock.Any()).Return(mockRepo)
		mockRepo.EXPECT().SoftDelete(ctx, uint(3)).Return(int64(0), nil)
		dbMock.ExpectRollback()

		assert.ErrorIs(t, svc.Delete(ctx, 3), companyerrors.ErrCompanyNotFound)
	})

	t.Run("Permanent Delete Success", func(t *testing.T) {
		svc, mockRepo, dbMock := newCompanyService(t)

		dbMock.ExpectBegin()
		mockRepo.EXPECT().WithTx(gomock.Any()).Return(mockRepo)
		mockRepo.EXPECT().DeleteByID(ctx, uint(3)).Return(int64(1), nil)
		dbMock.ExpectCommit()

		assert.NoError(t, svc.DeletePermanent(ctx, 3))
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})
}
