package auth_test

import (
	"context"
	"database/sql"
	"testing"

	"go-quickgas/internal/auth"
	autherrors "go-quickgas/internal/auth/errors"
	"go-quickgas/internal/domain"
	"go-quickgas/internal/user"
	userMock "go-quickgas/internal/user/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newAuthService(t *testing.T) (auth.Service, *userMock.MockRepository, sqlmock.Sqlmock) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	db, dbMock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	mockUsers := userMock.NewMockRepository(ctrl)
	svc := auth.NewService(db, mockUsers, zap.NewNop())
	return svc, mockUsers, dbMock
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	t.Setenv("JWT_SECRET", "test-secret")

	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	stored := &user.User{
		ID:        1,
		Name:      "Admin",
		Email:     "admin@quickgas.in",
		CompanyID: 1,
		RoleID:    domain.RoleAdmin,
		Password:  string(hashed),
	}

	t.Run("Success", func(t *testing.T) {
		svc, mockUsers, _ := newAuthService(t)

		mockUsers.EXPECT().FindByEmail(ctx, "admin@quickgas.in").Return(stored, nil)

		resp, err := svc.Login(ctx, auth.LoginRequest{Email: "Admin@QuickGas.in", Password: "secret123"})

		assert.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, uint(domain.RoleAdmin), resp.User.RoleID)
	})

	t.Run("Wrong Password", func(t *testing.T) {
		svc, mockUsers, _ := newAuthService(t)

		mockUsers.EXPECT().FindByEmail(ctx, "admin@quickgas.in").Return(stored, nil)

		_, err := svc.Login(ctx, auth.LoginRequest{Email: "admin@quickgas.in", Password: "nope"})
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("Unknown Email", func(t *testing.T) {
		svc, mockUsers, _ := newAuthService(t)

		mockUsers.EXPECT().FindByEmail(ctx, "ghost@quickgas.in").Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.Login(ctx, auth.LoginRequest{Email: "ghost@quickgas.in", Password: "secret123"})
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})
}

func TestAuthService_Signup(t *testing.T) {
	ctx := context.Background()
	t.Setenv("JWT_SECRET", "test-secret")

	t.Run("Success", func(t *testing.T) {
		svc, mockUsers, dbMock := newAuthService(t)

		mockUsers.EXPECT().CompanyExists(ctx, uint(2)).Return(true, nil)

		dbMock.ExpectBegin()
		mockUsers.EXPECT().WithTx(gomock.Any()).Return(mockUsers)
		mockUsers.EXPECT().
			CreateOrRevive(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, u *user.User) (*user.User, error) {
				assert.Equal(t, domain.RoleCustomer, u.RoleID)
				created := *u
				created.ID = 21
				return &created, nil
			})
		dbMock.ExpectCommit()

		resp, err := svc.Signup(ctx, auth.SignupRequest{
			Name:      "Sita",
			Email:     "sita@acme.in",
			CompanyID: 2,
			Password:  "secret123",
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, uint(21), resp.User.ID)
	})

	t.Run("Duplicate Email", func(t *testing.T) {
		svc, mockUsers, dbMock := newAuthService(t)

		mockUsers.EXPECT().CompanyExists(ctx, uint(2)).Return(true, nil)

		dbMock.ExpectBegin()
		mockUsers.EXPECT().WithTx(gomock.Any()).Return(mockUsers)
		mockUsers.EXPECT().CreateOrRevive(ctx, gomock.Any()).Return(nil, sql.ErrNoRows)
		dbMock.ExpectRollback()

		_, err := svc.Signup(ctx, auth.SignupRequest{
			Name: "Sita", Email: "sita@acme.in", CompanyID: 2, Password: "secret123",
		})
		assert.ErrorIs(t, err, autherrors.ErrEmailAlreadyExists)
	})
}

func TestAuthService_Me(t *testing.T) {
	ctx := context.Background()
	svc, mockUsers, _ := newAuthService(t)

	mockUsers.EXPECT().FindByID(ctx, uint(7)).Return(&user.User{
		ID:     7,
		Name:   "Mahesh",
		Email:  "mahesh@quickgas.in",
		RoleID: domain.RoleDriver,
		Role:   &user.UserRole{ID: 3, Name: "DRIVER"},
	}, nil)

	me, err := svc.Me(ctx, domain.Actor{UserID: 7, Role: domain.RoleDriver})

	assert.NoError(t, err)
	assert.Equal(t, "DRIVER", me.RoleName)
}
