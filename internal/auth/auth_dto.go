package auth

import "go-quickgas/internal/domain"

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type SignupRequest struct {
	Name      string         `json:"name" binding:"required"`
	Phone     *string        `json:"phone"`
	Email     string         `json:"email" binding:"required,email"`
	Address   *string        `json:"address"`
	CompanyID uint           `json:"company_id" binding:"required"`
	RoleID    *domain.RoleID `json:"role_id"`
	Password  string         `json:"password" binding:"required,min=6"`
}

type AuthUser struct {
	ID        uint    `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone"`
	CompanyID uint    `json:"company_id"`
	RoleID    uint    `json:"role_id"`
	RoleName  string  `json:"role_name"`
}

type AuthResponse struct {
	Token string   `json:"token"`
	User  AuthUser `json:"user"`
}
