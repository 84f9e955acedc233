package order

import "time"

type Order struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	CompanyID uint      `gorm:"not null;index"`
	StatusID  uint      `gorm:"not null;index"`
	AdminID   uint      `gorm:"not null"`
	DriverID  *uint     `gorm:"index"`
	Area      string    `gorm:"type:varchar(255);not null"`
	MobileNo  *string   `gorm:"type:varchar(20)"`
	Notes     *string   `gorm:"type:text"`
	IsDeleted bool      `gorm:"not null;default:false"`
	CreatedAt time.Time `gorm:"not null;default:now()"`
	UpdatedAt time.Time `gorm:"not null;default:now()"`

	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (Order) TableName() string {
	return "orders"
}

type OrderItem struct {
	ID       uint `gorm:"primaryKey;autoIncrement"`
	OrderID  uint `gorm:"not null;index"`
	GasID    uint `gorm:"not null"`
	Quantity int  `gorm:"not null"`
}

func (OrderItem) TableName() string {
	return "order_items"
}

// JoinedOrder is the denormalized read projection of an order together with
// its company, status, admin and driver names.
type JoinedOrder struct {
	ID             uint
	CompanyID      uint
	CompanyName    string
	CompanyAddress *string
	StatusID       uint
	StatusName     string
	AdminID        uint
	AdminName      string
	DriverID       *uint
	DriverName     *string
	Area           string
	MobileNo       *string
	Notes          *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// JoinedItem is the read projection of an order item with its gas details.
type JoinedItem struct {
	ID       uint
	OrderID  uint
	GasID    uint
	GasName  string
	GasUnit  string
	Quantity int
}
