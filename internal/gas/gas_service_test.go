package gas_test

import (
	"context"
	"database/sql"
	"testing"

	"go-quickgas/internal/gas"
	gaserrors "go-quickgas/internal/gas/errors"
	gasMock "go-quickgas/internal/gas/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newGasService(t *testing.T) (gas.Service, *gasMock.MockRepository, sqlmock.Sqlmock) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	db, dbMock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	mockRepo := gasMock.NewMockRepository(ctrl)
	svc := gas.NewService(db, mockRepo, zap.NewNop())
	return svc, mockRepo, dbMock
}

func TestGasService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success With Default Unit", func(t *testing.T) {
		svc, mockRepo, dbMock := newGasService(t)

		created := &gas.Gas{ID: 1, Name: "Oxygen", Unit: gas.DefaultUnit}

		dbMock.ExpectBegin()
		mockRepo.EXPECT().WithTx(gomock.Any()).Return(mockRepo)
		mockRepo.EXPECT().CreateOrRevive(ctx, "Oxygen", gas.DefaultUnit, nil).Return(created, nil)
		dbMock.ExpectCommit()

		resp, err := svc.Create(ctx, gas.CreateGasRequest{Name: "Oxygen"})

		assert.NoError(t, err)
		assert.Equal(t, gas.DefaultUnit, resp.Unit)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("Name Taken By Live Gas", func(t *testing.T) {
		svc, mockRepo, dbMock := newGasService(t)

		dbMock.ExpectBegin()
		mockRepo.EXPECT().WithTx(gomock.Any()).Return(mockRepo)
		mockRepo.EXPECT().CreateOrRevive(ctx, "Oxygen", gas.DefaultUnit, nil).Return(nil, sql.ErrNoRows)
		dbMock.ExpectRollback()

		_, err := svc.Create(ctx, gas.CreateGasRequest{Name: "Oxygen"})
		assert.ErrorIs(t, err, gaserrors.ErrGasNameExists)
	})
}

func TestGasService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc, mockRepo, _ := newGasService(t)

		mockRepo.EXPECT().FindByID(ctx, uint(2)).Return(&gas.Gas{ID: 2, Name: "Nitrogen", Unit: "Litres"}, nil)

		resp, err := svc.GetByID(ctx, 2)
		assert.NoError(t, err)
		assert.Equal(t, "Nitrogen", resp.Name)
	})

	t.Run("Not Found", func(t *testing.T) {
		svc, mockRepo, _ := newGasService(t)

		mockRepo.EXPECT().FindByID(ctx, uint(2)).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.GetByID(ctx, 2)
		assert.ErrorIs(t, err, gaserrors.ErrGasNotFound)
	})
}

func TestGasService_List(t *testing.T) {
	ctx := context.Background()
	svc, mockRepo, _ := newGasService(t)

	mockRepo.EXPECT().CountActive(ctx).Return(int64(5), nil)
	mockRepo.EXPECT().CountFiltered(ctx, "").Return(int64(5), nil)
	mockRepo.EXPECT().List(ctx, "", 0, 10).Return([]gas.Gas{{ID: 1, Name: "Oxygen"}}, nil)

	table, err := svc.List(ctx, gas.ListGasesQuery{})

	assert.NoError(t, err)
	assert.Equal(t, int64(5), table.RecordsTotal)
	assert.LessOrEqual(t, table.RecordsFiltered, table.RecordsTotal)
}

func TestGasService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("Name Conflict", func(t *testing.T) {
		svc, mockRepo, _ := newGasService(t)

		name := "Oxygen"
		mockRepo.EXPECT().NameTakenByOther(ctx, name, uint(2)).Return(true, nil)

		_, err := svc.Update(ctx, 2, gas.UpdateGasRequest{Name: &name})
		assert.ErrorIs(t, err, gaserrors.ErrGasNameExists)
	})

	t.Run("Not Found", func(t *testing.T) {
		svc, mockRepo, dbMock := newGasService(t)

		unit := "Litres"
		dbMock.ExpectBegin()
		mockRepo.EXPECT().WithTx(gomock.Any()).Return(mockRepo)
		mockRepo.EXPECT().UpdateFields(ctx, uint(9), nil, &unit, nil).Return(int64(0), nil)
		dbMock.ExpectRollback()

		_, err := svc.Update(ctx, 9, gas.UpdateGasRequest{Unit: &unit})
		assert.ErrorIs(t, err, gaserrors.ErrGasNotFound)
	})
}

func TestGasService_Delete(t *testing.T) {
	ctx := context.Background()
	svc, mockRepo, dbMock := newGasService(t)

	dbMock.ExpectBegin()
	mockRepo.EXPECT().WithTx(gomock.Any()).Return(mockRepo)
	mockRepo.EXPECT().SoftDelete(ctx, uint(4)).Return(int64(1), nil)
	dbMock.ExpectCommit()

	assert.NoError(t, svc.Delete(ctx, 4))
	assert.NoError(t, dbMock.ExpectationsWereMet())
}
