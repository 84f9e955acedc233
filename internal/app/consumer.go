package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go-quickgas/internal/bootstrap"
	"go-quickgas/internal/events"
	"go-quickgas/internal/messaging/kafka/consumer"
	"go-quickgas/internal/shared/connection"

	"go.uber.org/zap"
)

// RunConsumer feeds the order event topics into the audit trail until
// interrupted.
func RunConsumer() error {
	logger := zap.L().Named("app.consumer")

	kafkaBroker := os.Getenv("KAFKA_BROKER")
	if kafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	createdReader := connection.NewKafkaReader(kafkaBroker, events.OrderCreatedTopic, "quickgas-order-audit")
	defer createdReader.Close()

	statusReader := connection.NewKafkaReader(kafkaBroker, events.OrderStatusChangedTopic, "quickgas-order-audit")
	defer statusReader.Close()

	auditLogger := bootstrap.NewStdoutAuditLogger()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeOrderCreated(ctx, createdReader, auditLogger, logger)
	go consumer.ConsumeOrderStatusChanged(ctx, statusReader, auditLogger, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
