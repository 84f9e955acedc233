package user

import (
	"time"

	"go-quickgas/internal/domain"
)

type User struct {
	ID        uint          `gorm:"primaryKey;autoIncrement"`
	Name      string        `gorm:"type:varchar(255);not null"`
	Phone     *string       `gorm:"type:varchar(20)"`
	Email     string        `gorm:"type:varchar(255);not null;uniqueIndex:users_email_key"`
	Address   *string       `gorm:"type:text"`
	CompanyID uint          `gorm:"not null;index"`
	RoleID    domain.RoleID `gorm:"not null;default:4"`
	Password  string        `gorm:"type:text;not null"`
	IsDeleted bool          `gorm:"not null;default:false"`
	CreatedAt time.Time     `gorm:"not null;default:now()"`
	UpdatedAt time.Time     `gorm:"not null;default:now()"`

	Company *UserCompany `gorm:"foreignKey:CompanyID;references:ID"`
	Role    *UserRole    `gorm:"foreignKey:RoleID;references:ID"`
}

func (User) TableName() string {
	return "users"
}

// UserCompany is the minimal join projection of the owning company.
type UserCompany struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"column:name"`
}

func (UserCompany) TableName() string {
	return "companies"
}

// UserRole is the minimal join projection of the user's role.
type UserRole struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"column:name"`
}

func (UserRole) TableName() string {
	return "roles"
}
