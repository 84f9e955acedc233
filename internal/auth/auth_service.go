package auth

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"strings"
	"time"

	autherrors "go-quickgas/internal/auth/errors"
	companyerrors "go-quickgas/internal/company/errors"
	"go-quickgas/internal/domain"
	"go-quickgas/internal/shared/apperror"
	"go-quickgas/internal/user"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

//go:generate mockgen -destination=mock/auth_service_mock.go -package=mock . Service
type Service interface {
	Login(ctx context.Context, req LoginRequest) (*AuthResponse, error)
	Signup(ctx context.Context, req SignupRequest) (*AuthResponse, error)
	Me(ctx context.Context, actor domain.Actor) (*AuthUser, error)
}

type service struct {
	db     *sql.DB
	users  user.Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, users user.Repository, logger *zap.Logger) Service {
	return &service{db: db, users: users, logger: logger.Named("auth.service")}
}

func (s *service) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password)); err != nil {
		return nil, autherrors.ErrInvalidCredentials
	}

	token, err := generateToken(u)
	if err != nil {
		return nil, autherrors.ErrTokenGenerationFailed
	}

	s.logger.Info("user logged in", zap.Uint("user_id", u.ID), zap.String("role", u.RoleID.String()))
	return &AuthResponse{Token: token, User: mapToAuthUser(u)}, nil
}

func (s *service) Signup(ctx context.Context, req SignupRequest) (*AuthResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperror.RequiredField("name")
	}

	roleID := domain.RoleCustomer
	if req.RoleID != nil {
		if !req.RoleID.Valid() {
			return nil, autherrors.ErrInvalidRole
		}
		roleID = *req.RoleID
	}

	exists, err := s.users.CompanyExists(ctx, req.CompanyID)
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

	created, err := s.users.WithTx(tx).CreateOrRevive(ctx, &user.User{
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
			return nil, autherrors.ErrEmailAlreadyExists
		}
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	token, err := generateToken(created)
	if err != nil {
		return nil, autherrors.ErrTokenGenerationFailed
	}

	s.logger.Info("user signed up", zap.Uint("user_id", created.ID))
	return &AuthResponse{Token: token, User: mapToAuthUser(created)}, nil
}

func (s *service) Me(ctx context.Context, actor domain.Actor) (*AuthUser, error) {
	u, err := s.users.FindByID(ctx, actor.UserID)
	if err != nil {
		return nil, autherrors.ErrUserNotFound
	}

	me := mapToAuthUser(u)
	if u.Role != nil {
		me.RoleName = u.Role.Name
	}
	return &me, nil
}

func generateToken(u *user.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": u.ID,
		"role_id": uint(u.RoleID),
		"email":   u.Email,
		"name":    u.Name,
		"exp":     time.Now().Add(tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

func mapToAuthUser(u *user.User) AuthUser {
	return AuthUser{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		CompanyID: u.CompanyID,
		RoleID:    uint(u.RoleID),
		RoleName:  u.RoleID.String(),
	}
}
