// Package events defines the integration events emitted through the
// transactional outbox.
package events

import "time"

const (
	OrderCreatedTopic       = "quickgas.order_created"
	OrderStatusChangedTopic = "quickgas.order_status_changed"
)

type OrderCreatedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	OrderID    uint      `json:"order_id"`
	CompanyID  uint      `json:"company_id"`
	AdminID    uint      `json:"admin_id"`
	Area       string    `json:"area"`
	ItemCount  int       `json:"item_count"`
	OccurredAt time.Time `json:"occurred_at"`
}

type OrderStatusChangedEvent struct {
	EventType   string    `json:"event_type"`
	RequestID   string    `json:"request_id,omitempty"`
	OrderID     uint      `json:"order_id"`
	OldStatusID uint      `json:"old_status_id"`
	NewStatusID uint      `json:"new_status_id"`
	DriverID    *uint     `json:"driver_id,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}
