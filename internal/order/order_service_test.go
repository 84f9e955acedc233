package order_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	companyerrors "go-quickgas/internal/company/errors"
	"go-quickgas/internal/dashboard"
	"go-quickgas/internal/domain"
	"go-quickgas/internal/events"
	"go-quickgas/internal/messaging/kafka"
	kafkaMock "go-quickgas/internal/messaging/kafka/mock"
	"go-quickgas/internal/order"
	ordererrors "go-quickgas/internal/order/errors"
	orderMock "go-quickgas/internal/order/mock"
	"go-quickgas/internal/orderstatus"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	pendingStatusID        = uint(1)
	outForDeliveryStatusID = uint(2)
	completedStatusID      = uint(3)
)

type orderDeps struct {
	service   order.Service
	repo      *orderMock.MockRepository
	outbox    *kafkaMock.MockOutboxRepository
	dbmock    sqlmock.Sqlmock
	redismock redismock.ClientMock
}

func newOrderService(t *testing.T) orderDeps {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	db, dbMock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	dbRedis, redisMock := redismock.NewClientMock()

	repo := orderMock.NewMockRepository(ctrl)
	outbox := kafkaMock.NewMockOutboxRepository(ctrl)

	statuses, err := orderstatus.NewResolver(map[string]uint{
		orderstatus.StatusPending:        pendingStatusID,
		orderstatus.StatusOutForDelivery: outForDeliveryStatusID,
		orderstatus.StatusCompleted:      completedStatusID,
	})
	assert.NoError(t, err)

	svc := order.NewService(db, repo, outbox, statuses, dbRedis, zap.NewNop())

	return orderDeps{
		service:   svc,
		repo:      repo,
		outbox:    outbox,
		dbmock:    dbMock,
		redismock: redisMock,
	}
}

func adminActor() domain.Actor {
	return domain.Actor{UserID: 5, Role: domain.RoleAdmin}
}

func TestOrderService_Create(t *testing.T) {
	ctx := context.Background()

	req := order.CreateOrderRequest{
		CompanyID: 2,
		Area:      "Sector 14",
		Items: []order.CreateOrderItem{
			{GasID: 7, Quantity: 3},
			{GasID: 8, Quantity: 1},
		},
	}

	t.Run("Success", func(t *testing.T) {
		deps := newOrderService(t)

		deps.repo.EXPECT().CompanyExists(ctx, uint(2)).Return(true, nil)
		deps.repo.EXPECT().UserExists(ctx, uint(5)).Return(true, nil)
		deps.repo.EXPECT().UserHasRole(ctx, uint(5), domain.RoleAdmin).Return(true, nil)
		deps.repo.EXPECT().GasExists(ctx, uint(7)).Return(true, nil)
		deps.repo.EXPECT().GasExists(ctx, uint(8)).Return(true, nil)

		deps.dbmock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().InsertOrder(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, o *order.Order) error {
				assert.Equal(t, pendingStatusID, o.StatusID)
				assert.Equal(t, uint(5), o.AdminID)
				o.ID = 11
				return nil
			})
		deps.repo.EXPECT().InsertItem(ctx, gomock.Any()).Times(2).Return(nil)

		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, event kafka.OutboxEvent) error {
				assert.Equal(t, events.OrderCreatedTopic, event.Topic)
				assert.Equal(t, kafka.OutboxStatusPending, event.Status)
				assert.Equal(t, "11", event.AggregateID)

				var payload events.OrderCreatedEvent
				assert.NoError(t, json.Unmarshal(event.Payload, &payload))
				assert.Equal(t, uint(11), payload.OrderID)
				assert.Equal(t, 2, payload.ItemCount)
				return nil
			})
		deps.dbmock.ExpectCommit()

		deps.redismock.ExpectDel(dashboard.CacheKey).SetVal(1)

		deps.repo.EXPECT().FindJoinedByID(ctx, uint(11)).Return(&order.JoinedOrder{
			ID:          11,
			CompanyID:   2,
			CompanyName: "Acme",
			StatusID:    pendingStatusID,
			StatusName:  orderstatus.StatusPending,
			AdminID:     5,
			AdminName:   "Dispatch Admin",
			Area:        "Sector 14",
			CreatedAt:   time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
		}, nil)
		deps.repo.EXPECT().FindItemsByOrderID(ctx, uint(11)).Return([]order.JoinedItem{
			{ID: 21, OrderID: 11, GasID: 7, GasName: "Oxygen", GasUnit: "Cubic Meters", Quantity: 3},
			{ID: 22, OrderID: 11, GasID: 8, GasName: "Argon", GasUnit: "Cubic Meters", Quantity: 1},
		}, nil)

		resp, err := deps.service.Create(ctx, adminActor(), req)

		assert.NoError(t, err)
		assert.Equal(t, uint(11), resp.ID)
		assert.Equal(t, orderstatus.StatusPending, resp.StatusName)
		assert.Len(t, resp.Items, 2)
		assert.Equal(t, "2025-03-01 15:30:00", resp.CreatedAt)
		assert.NoError(t, deps.dbmock.ExpectationsWereMet())
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("Unknown Company", func(t *testing.T) {
		deps := newOrderService(t)

		deps.repo.EXPECT().CompanyExists(ctx, uint(2)).Return(false, nil)

		_, err := deps.service.Create(ctx, adminActor(), req)
		assert.ErrorIs(t, err, companyerrors.ErrCompanyNotFound)
	})

	t.Run("Actor Is Not An Admin", func(t *testing.T) {
		deps := newOrderService(t)

		deps.repo.EXPECT().CompanyExists(ctx, uint(2)).Return(true, nil)
		deps.repo.EXPECT().UserExists(ctx, uint(9)).Return(true, nil)
		deps.repo.EXPECT().UserHasRole(ctx, uint(9), domain.RoleAdmin).Return(false, nil)

		_, err := deps.service.Create(ctx, domain.Actor{UserID: 9, Role: domain.RoleDriver}, req)
		assert.ErrorIs(t, err, ordererrors.ErrNotAdmin)
	})

	t.Run("Blank Area", func(t *testing.T) {
		deps := newOrderService(t)

		blank := req
		blank.Area = "   "

		deps.repo.EXPECT().CompanyExists(ctx, uint(2)).Return(true, nil)
		deps.repo.EXPECT().UserExists(ctx, uint(5)).Return(true, nil)
		deps.repo.EXPECT().UserHasRole(ctx, uint(5), domain.RoleAdmin).Return(true, nil)

		_, err := deps.service.Create(ctx, adminActor(), blank)
		assert.ErrorIs(t, err, ordererrors.ErrAreaRequired)
	})

	t.Run("Zero Items", func(t *testing.T) {
		deps := newOrderService(t)

		empty := req
		empty.Items = nil

		deps.repo.EXPECT().CompanyExists(ctx, uint(2)).Return(true, nil)
		deps.repo.EXPECT().UserExists(ctx, uint(5)).Return(true, nil)
		deps.repo.EXPECT().UserHasRole(ctx, uint(5), domain.RoleAdmin).Return(true, nil)

		_, err := deps.service.Create(ctx, adminActor(), empty)
		assert.ErrorIs(t, err, ordererrors.ErrMinimumItemRequired)
	})

	t.Run("Non Positive Quantity", func(t *testing.T) {
		deps := newOrderService(t)

		bad := req
		bad.Items = []order.CreateOrderItem{{GasID: 7, Quantity: 0}}

		deps.repo.EXPECT().CompanyExists(ctx, uint(2)).Return(true, nil)
		deps.repo.EXPECT().UserExists(ctx, uint(5)).Return(true, nil)
		deps.repo.EXPECT().UserHasRole(ctx, uint(5), domain.RoleAdmin).Return(true, nil)

		_, err := deps.service.Create(ctx, adminActor(), bad)
		assert.ErrorIs(t, err, ordererrors.ErrInvalidQuantity)
	})
}

func TestOrderService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("Status Change Emits Event", func(t *testing.T) {
		deps := newOrderService(t)

		newStatus := outForDeliveryStatusID
		driverID := uint(30)
		req := order.UpdateOrderRequest{StatusID: &newStatus, DriverID: &driverID}

		deps.repo.EXPECT().FindByID(ctx, uint(11)).Return(&order.Order{ID: 11, StatusID: pendingStatusID}, nil)
		deps.repo.EXPECT().StatusExists(ctx, newStatus).Return(true, nil)
		deps.repo.EXPECT().UserHasRole(ctx, driverID, domain.RoleDriver).Return(true, nil)

		deps.dbmock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().UpdateOrderFields(ctx, uint(11), req).Return(int64(1), nil)
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, event kafka.OutboxEvent) error {
				assert.Equal(t, events.OrderStatusChangedTopic, event.Topic)

				var payload events.OrderStatusChangedEvent
				assert.NoError(t, json.Unmarshal(event.Payload, &payload))
				assert.Equal(t, pendingStatusID, payload.OldStatusID)
				assert.Equal(t, newStatus, payload.NewStatusID)
				return nil
			})
		deps.dbmock.ExpectCommit()

		deps.redismock.ExpectDel(dashboard.CacheKey).SetVal(1)

		deps.repo.EXPECT().FindJoinedByID(ctx, uint(11)).Return(&order.JoinedOrder{
			ID:         11,
			StatusID:   newStatus,
			StatusName: orderstatus.StatusOutForDelivery,
			DriverID:   &driverID,
		}, nil)
		deps.repo.EXPECT().FindItemsByOrderID(ctx, uint(11)).Return(nil, nil)

		resp, err := deps.service.Update(ctx, 11, req)

		assert.NoError(t, err)
		assert.Equal(t, orderstatus.StatusOutForDelivery, resp.StatusName)
		assert.NoError(t, deps.dbmock.ExpectationsWereMet())
	})

	t.Run("Same Status Emits Nothing", func(t *testing.T) {
		deps := newOrderService(t)

		status := pendingStatusID
		req := order.UpdateOrderRequest{StatusID: &status}

		deps.repo.EXPECT().FindByID(ctx, uint(11)).Return(&order.Order{ID: 11, StatusID: pendingStatusID}, nil)
		deps.repo.EXPECT().StatusExists(ctx, status).Return(true, nil)

		deps.dbmock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().UpdateOrderFields(ctx, uint(11), req).Return(int64(1), nil)
		deps.dbmock.ExpectCommit()

		deps.redismock.ExpectDel(dashboard.CacheKey).SetVal(1)

		deps.repo.EXPECT().FindJoinedByID(ctx, uint(11)).Return(&order.JoinedOrder{ID: 11, StatusID: status}, nil)
		deps.repo.EXPECT().FindItemsByOrderID(ctx, uint(11)).Return(nil, nil)

		_, err := deps.service.Update(ctx, 11, req)

		assert.NoError(t, err)
		assert.NoError(t, deps.dbmock.ExpectationsWereMet())
	})

	t.Run("Assignee Is Not A Driver", func(t *testing.T) {
		deps := newOrderService(t)

		driverID := uint(5)
		req := order.UpdateOrderRequest{DriverID: &driverID}

		deps.repo.EXPECT().FindByID(ctx, uint(11)).Return(&order.Order{ID: 11, StatusID: pendingStatusID}, nil)
		deps.repo.EXPECT().UserHasRole(ctx, driverID, domain.RoleDriver).Return(false, nil)

		_, err := deps.service.Update(ctx, 11, req)
		assert.ErrorIs(t, err, ordererrors.ErrNotDriver)
	})

	t.Run("Unknown Status", func(t *testing.T) {
		deps := newOrderService(t)

		status := uint(99)
		req := order.UpdateOrderRequest{StatusID: &status}

		deps.repo.EXPECT().FindByID(ctx, uint(11)).Return(&order.Order{ID: 11, StatusID: pendingStatusID}, nil)
		deps.repo.EXPECT().StatusExists(ctx, status).Return(false, nil)

		_, err := deps.service.Update(ctx, 11, req)
		assert.ErrorIs(t, err, ordererrors.ErrStatusNotFound)
	})

	t.Run("Not Found", func(t *testing.T) {
		deps := newOrderService(t)

		deps.repo.EXPECT().FindByID(ctx, uint(42)).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Update(ctx, 42, order.UpdateOrderRequest{})
		assert.ErrorIs(t, err, ordererrors.ErrOrderNotFound)
	})
}

func TestOrderService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		deps := newOrderService(t)

		deps.dbmock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().DeleteOrder(ctx, uint(11)).Return(int64(1), nil)
		deps.dbmock.ExpectCommit()
		deps.redismock.ExpectDel(dashboard.CacheKey).SetVal(1)

		assert.NoError(t, deps.service.Delete(ctx, 11))
		assert.NoError(t, deps.dbmock.ExpectationsWereMet())
	})

	t.Run("Not Found", func(t *testing.T) {
		deps := newOrderService(t)

		deps.dbmock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().DeleteOrder(ctx, uint(11)).Return(int64(0), nil)
		deps.dbmock.ExpectRollback()

		assert.ErrorIs(t, deps.service.Delete(ctx, 11), ordererrors.ErrOrderNotFound)
	})
}

func TestOrderService_List(t *testing.T) {
	ctx := context.Background()
	deps := newOrderService(t)

	q := order.ListOrdersQuery{Draw: 3, Length: 10, Search: "acme"}

	deps.repo.EXPECT().CountActive(ctx).Return(int64(25), nil)
	deps.repo.EXPECT().CountFiltered(ctx, q).Return(int64(2), nil)
	deps.repo.EXPECT().ListJoined(ctx, q).Return([]order.JoinedOrder{
		{ID: 11, CompanyName: "Acme"},
		{ID: 12, CompanyName: "Acme"},
	}, nil)
	deps.repo.EXPECT().FindItemsByOrderIDs(ctx, []uint{11, 12}).Return([]order.JoinedItem{
		{ID: 21, OrderID: 11, GasName: "Oxygen", Quantity: 3},
		{ID: 22, OrderID: 11, GasName: "Argon", Quantity: 1},
		{ID: 23, OrderID: 12, GasName: "Oxygen", Quantity: 5},
	}, nil)

	table, err := deps.service.List(ctx, q)

	assert.NoError(t, err)
	assert.Equal(t, 3, table.Draw)
	assert.Equal(t, int64(25), table.RecordsTotal)
	assert.Equal(t, int64(2), table.RecordsFiltered)

	rows, ok := table.Data.([]order.OrderResponse)
	assert.True(t, ok)
	assert.Len(t, rows, 2)
	assert.Len(t, rows[0].Items, 2)
	assert.Len(t, rows[1].Items, 1)
}

func TestOrderService_Items(t *testing.T) {
	ctx := context.Background()

	t.Run("Add Item Rejects Non Positive Quantity", func(t *testing.T) {
		deps := newOrderService(t)

		_, err := deps.service.AddItem(ctx, order.CreateOrderItemRequest{OrderID: 11, GasID: 7})
		assert.ErrorIs(t, err, ordererrors.ErrInvalidQuantity)
	})

	t.Run("Add Item Unknown Order", func(t *testing.T) {
		deps := newOrderService(t)

		deps.repo.EXPECT().OrderExists(ctx, uint(99)).Return(false, nil)

		_, err := deps.service.AddItem(ctx, order.CreateOrderItemRequest{OrderID: 99, GasID: 7, Quantity: 2})
		assert.ErrorIs(t, err, ordererrors.ErrOrderNotFound)
	})

	t.Run("Update Quantity Not Found", func(t *testing.T) {
		deps := newOrderService(t)

		deps.dbmock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().UpdateItemQuantity(ctx, uint(21), 4).Return(int64(0), nil)
		deps.dbmock.ExpectRollback()

		err := deps.service.UpdateItemQuantity(ctx, 21, order.UpdateOrderItemRequest{Quantity: 4})
		assert.ErrorIs(t, err, ordererrors.ErrOrderItemNotFound)
	})

	t.Run("Delete Item Success", func(t *testing.T) {
		deps := newOrderService(t)

		deps.dbmock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().DeleteItem(ctx, uint(21)).Return(int64(1), nil)
		deps.dbmock.ExpectCommit()
		deps.redismock.ExpectDel(dashboard.CacheKey).SetVal(1)

		assert.NoError(t, deps.service.DeleteItem(ctx, 21))
	})

	t.Run("List Items For Order", func(t *testing.T) {
		deps := newOrderService(t)

		deps.repo.EXPECT().OrderExists(ctx, uint(11)).Return(true, nil)
		deps.repo.EXPECT().FindItemsByOrderID(ctx, uint(11)).Return([]order.JoinedItem{
			{ID: 21, OrderID: 11, GasName: "Oxygen", Quantity: 3},
		}, nil)

		items, err := deps.service.ItemsByOrder(ctx, 11)

		assert.NoError(t, err)
		assert.Len(t, items, 1)
		assert.Equal(t, "Oxygen", items[0].GasName)
	})
}
