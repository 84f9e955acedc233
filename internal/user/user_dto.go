package user

import (
	"time"

	"go-quickgas/internal/domain"
)

type CreateUserRequest struct {
	Name      string         `json:"name" binding:"required"`
	Phone     *string        `json:"phone"`
	Email     string         `json:"email" binding:"required,email"`
	Address   *string        `json:"address"`
	CompanyID uint           `json:"company_id" binding:"required"`
	RoleID    *domain.RoleID `json:"role_id"`
	Password  string         `json:"password" binding:"required,min=6"`
}

type UpdateUserRequest struct {
	Name      *string        `json:"name"`
	Phone     *string        `json:"phone"`
	Email     *string        `json:"email" binding:"omitempty,email"`
	Address   *string        `json:"address"`
	CompanyID *uint          `json:"company_id"`
	RoleID    *domain.RoleID `json:"role_id"`
	Password  *string        `json:"password" binding:"omitempty,min=6"`
}

type UserResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Phone       *string   `json:"phone"`
	Email       string    `json:"email"`
	Address     *string   `json:"address"`
	CompanyID   uint      `json:"company_id"`
	CompanyName string    `json:"company_name,omitempty"`
	RoleID      uint      `json:"role_id"`
	RoleName    string    `json:"role_name,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// DriverOption is the slim shape used by driver assignment dropdowns.
type DriverOption struct {
	ID    uint    `json:"id"`
	Name  string  `json:"name"`
	Phone *string `json:"phone"`
}

type ListUsersQuery struct {
	Draw    int
	Start   int
	Length  int
	Search  string
	SortBy  string
	SortAsc bool
}
