package orderstatus

// Canonical status names seeded at startup.
const (
	StatusPending        = "PENDING"
	StatusOutForDelivery = "OUT_FOR_DELIVERY"
	StatusCompleted      = "COMPLETED"
	StatusCancelled      = "CANCELLED"
)

type OrderStatus struct {
	ID          uint    `gorm:"primaryKey"`
	Name        string  `gorm:"type:varchar(50);not null;uniqueIndex:order_statuses_name_key"`
	Description *string `gorm:"type:text"`
}

func (OrderStatus) TableName() string {
	return "order_statuses"
}
