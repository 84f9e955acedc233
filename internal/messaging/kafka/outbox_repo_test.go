package kafka_test

import (
	"context"
	"testing"

	"go-quickgas/internal/messaging/kafka"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestOutboxRepository_Create(t *testing.T) {
	ctx := context.Background()

	db, dbMock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := kafka.NewOutboxRepository(db)

	valid := kafka.OutboxEvent{
		ID:            uuid.NewString(),
		AggregateType: "order",
		AggregateID:   "11",
		EventType:     "order_created",
		Topic:         "quickgas.order_created",
		Payload:       []byte(`{"order_id":11}`),
		Status:        kafka.OutboxStatusPending,
	}

	t.Run("Inserts Valid Event", func(t *testing.T) {
		dbMock.ExpectExec("INSERT INTO outbox_events").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Create(ctx, valid))
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("Rejects Missing ID Before Touching The Database", func(t *testing.T) {
		event := valid
		event.ID = ""

		assert.Error(t, repo.Create(ctx, event))
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("Rejects Empty Payload", func(t *testing.T) {
		event := valid
		event.Payload = nil

		assert.Error(t, repo.Create(ctx, event))
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("Rejects Unknown Status", func(t *testing.T) {
		event := valid
		event.Status = "queued"

		assert.Error(t, repo.Create(ctx, event))
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})
}
