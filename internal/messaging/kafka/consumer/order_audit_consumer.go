package consumer

import (
	"context"
	"encoding/json"

	"go-quickgas/internal/bootstrap"
	"go-quickgas/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeOrderCreated records an audit trail entry for every created order.
func ConsumeOrderCreated(
	ctx context.Context,
	reader *kafkago.Reader,
	audit bootstrap.AuditLogger,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.order_created")
	log.Info("order created consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("order created consumer stopped")
				return
			}
			log.Error("fetch order created message failed", zap.Error(err))
			continue
		}

		var event events.OrderCreatedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode order_created event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		audit.Log(ctx, bootstrap.AuditLog{
			Action:  "ORDER_CREATED",
			Message: "Order created",
			Meta: map[string]any{
				"request_id": event.RequestID,
				"order_id":   event.OrderID,
				"company_id": event.CompanyID,
				"admin_id":   event.AdminID,
				"area":       event.Area,
				"item_count": event.ItemCount,
			},
		})

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit order created message failed", zap.Error(err))
			continue
		}
	}
}

// ConsumeOrderStatusChanged mirrors status transitions into the audit trail
// so dispatch history survives order hard-deletes.
func ConsumeOrderStatusChanged(
	ctx context.Context,
	reader *kafkago.Reader,
	audit bootstrap.AuditLogger,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.order_status_changed")
	log.Info("order status changed consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("order status changed consumer stopped")
				return
			}
			log.Error("fetch order status changed message failed", zap.Error(err))
			continue
		}

		var event events.OrderStatusChangedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode order_status_changed event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		meta := map[string]any{
			"request_id":    event.RequestID,
			"order_id":      event.OrderID,
			"old_status_id": event.OldStatusID,
			"new_status_id": event.NewStatusID,
		}
		if event.DriverID != nil {
			meta["driver_id"] = *event.DriverID
		}

		audit.Log(ctx, bootstrap.AuditLog{
			Action:  "ORDER_STATUS_CHANGED",
			Message: "Order status changed",
			Meta:    meta,
		})

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit order status changed message failed", zap.Error(err))
			continue
		}
	}
}
