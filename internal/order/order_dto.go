package order

import "time"

type CreateOrderItem struct {
	GasID    uint `json:"gas_id" binding:"required"`
	Quantity int  `json:"quantity"`
}

// Items carries no binding tag on purpose: an empty list is a domain
// rejection with its own message, not a generic validation failure.
type CreateOrderRequest struct {
	CompanyID uint              `json:"company_id" binding:"required"`
	Area      string            `json:"area"`
	MobileNo  *string           `json:"mobile_no"`
	Notes     *string           `json:"notes"`
	Items     []CreateOrderItem `json:"items"`
}

type UpdateOrderRequest struct {
	CompanyID *uint   `json:"company_id"`
	StatusID  *uint   `json:"status_id"`
	DriverID  *uint   `json:"driver_id"`
	Area      *string `json:"area"`
	MobileNo  *string `json:"mobile_no"`
	Notes     *string `json:"notes"`
}

type OrderItemResponse struct {
	ID       uint   `json:"id"`
	OrderID  uint   `json:"order_id"`
	GasID    uint   `json:"gas_id"`
	GasName  string `json:"gas_name"`
	GasUnit  string `json:"gas_unit"`
	Quantity int    `json:"quantity"`
}

// OrderResponse is the joined order view. Timestamps are rendered in the
// delivery region's local time.
type OrderResponse struct {
	ID             uint                `json:"id"`
	CompanyID      uint                `json:"company_id"`
	CompanyName    string              `json:"company_name"`
	CompanyAddress *string             `json:"company_address"`
	StatusID       uint                `json:"status_id"`
	StatusName     string              `json:"status_name"`
	AdminID        uint                `json:"admin_id"`
	AdminName      string              `json:"admin_name"`
	DriverID       *uint               `json:"driver_id"`
	DriverName     *string             `json:"driver_name"`
	Area           string              `json:"area"`
	MobileNo       *string             `json:"mobile_no"`
	Notes          *string             `json:"notes"`
	CreatedAt      string              `json:"created_at"`
	UpdatedAt      string              `json:"updated_at"`
	Items          []OrderItemResponse `json:"items"`
}

type ListOrdersQuery struct {
	Draw      int
	Start     int
	Length    int
	Search    string
	StatusID  *uint
	StartDate *time.Time
	EndDate   *time.Time
	SortAsc   bool
}

type CreateOrderItemRequest struct {
	OrderID  uint `json:"order_id" binding:"required"`
	GasID    uint `json:"gas_id" binding:"required"`
	Quantity int  `json:"quantity"`
}

type UpdateOrderItemRequest struct {
	Quantity int `json:"quantity"`
}
