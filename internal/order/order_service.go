package order

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	companyerrors "go-quickgas/internal/company/errors"
	"go-quickgas/internal/dashboard"
	"go-quickgas/internal/domain"
	"go-quickgas/internal/events"
	gaserrors "go-quickgas/internal/gas/errors"
	"go-quickgas/internal/messaging/kafka"
	ordererrors "go-quickgas/internal/order/errors"
	"go-quickgas/internal/orderstatus"
	"go-quickgas/internal/shared/contextutil"
	"go-quickgas/internal/shared/response"
	usererrors "go-quickgas/internal/user/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// deliveryZone is the fixed delivery-region zone used for rendering order
// timestamps.
var deliveryZone = func() *time.Location {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		return time.FixedZone("IST", 5*3600+30*60)
	}
	return loc
}()

const timestampLayout = "2006-01-02 15:04:05"

//go:generate mockgen -destination=mock/order_service_mock.go -package=mock . Service
type Service interface {
	Create(ctx context.Context, actor domain.Actor, req CreateOrderRequest) (*OrderResponse, error)
	GetByID(ctx context.Context, id uint) (*OrderResponse, error)
	List(ctx context.Context, q ListOrdersQuery) (*response.DataTable, error)
	Update(ctx context.Context, id uint, req UpdateOrderRequest) (*OrderResponse, error)
	Delete(ctx context.Context, id uint) error

	AddItem(ctx context.Context, req CreateOrderItemRequest) (*OrderItemResponse, error)
	ItemsByOrder(ctx context.Context, orderID uint) ([]OrderItemResponse, error)
	UpdateItemQuantity(ctx context.Context, itemID uint, req UpdateOrderItemRequest) error
	DeleteItem(ctx context.Context, itemID uint) error
}

type service struct {
	db       *sql.DB
	repo     Repository
	outbox   kafka.OutboxRepository
	statuses *orderstatus.Resolver
	rdb      *redis.Client
	logger   *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	outbox kafka.OutboxRepository,
	statuses *orderstatus.Resolver,
	rdb *redis.Client,
	logger *zap.Logger,
) Service {
	return &service{
		db:       db,
		repo:     repo,
		outbox:   outbox,
		statuses: statuses,
		rdb:      rdb,
		logger:   logger.Named("order.service"),
	}
}

func (s *service) Create(ctx context.Context, actor domain.Actor, req CreateOrderRequest) (*OrderResponse, error) {
	// Preconditions, first failure wins.
	exists, err := s.repo.CompanyExists(ctx, req.CompanyID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, companyerrors.ErrCompanyNotFound
	}

	exists, err = s.repo.UserExists(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, usererrors.ErrUserNotFound
	}

	isAdmin, err := s.repo.UserHasRole(ctx, actor.UserID, domain.RoleAdmin)
	if err != nil {
		return nil, err
	}
	if !isAdmin {
		return nil, ordererrors.ErrNotAdmin
	}

	area := strings.TrimSpace(req.Area)
	if area == "" {
		return nil, ordererrors.ErrAreaRequired
	}

	if len(req.Items) == 0 {
		return nil, ordererrors.ErrMinimumItemRequired
	}

	for _, item := range req.Items {
		if item.Quantity <= 0 {
			return nil, ordererrors.ErrInvalidQuantity
		}
		gasOK, err := s.repo.GasExists(ctx, item.GasID)
		if err != nil {
			return nil, err
		}
		if !gasOK {
			return nil, gaserrors.ErrGasNotFound
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	o := &Order{
		CompanyID: req.CompanyID,
		StatusID:  s.statuses.Pending(),
		AdminID:   actor.UserID,
		Area:      area,
		MobileNo:  req.MobileNo,
		Notes:     req.Notes,
	}
	if err := qtx.InsertOrder(ctx, o); err != nil {
		return nil, err
	}

	for _, item := range req.Items {
		if err := qtx.InsertItem(ctx, &OrderItem{
			OrderID:  o.ID,
			GasID:    item.GasID,
			Quantity: item.Quantity,
		}); err != nil {
			return nil, err
		}
	}

	if err := s.enqueueCreatedEvent(ctx, tx, o, len(req.Items)); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	s.invalidateInsights(ctx)
	s.logger.Info("order created",
		zap.Uint("order_id", o.ID),
		zap.Uint("company_id", o.CompanyID),
		zap.Int("items", len(req.Items)),
	)

	return s.joinedView(ctx, o.ID)
}

func (s *service) GetByID(ctx context.Context, id uint) (*OrderResponse, error) {
	return s.joinedView(ctx, id)
}

func (s *service) List(ctx context.Context, q ListOrdersQuery) (*response.DataTable, error) {
	if q.Length <= 0 {
		q.Length = 10
	}
	if q.Start < 0 {
		q.Start = 0
	}

	total, err := s.repo.CountActive(ctx)
	if err != nil {
		return nil, err
	}

	filtered, err := s.repo.CountFiltered(ctx, q)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.ListJoined(ctx, q)
	if err != nil {
		return nil, err
	}

	orderIDs := make([]uint, 0, len(rows))
	for _, row := range rows {
		orderIDs = append(orderIDs, row.ID)
	}

	items, err := s.repo.FindItemsByOrderIDs(ctx, orderIDs)
	if err != nil {
		return nil, err
	}

	itemsByOrder := make(map[uint][]OrderItemResponse, len(rows))
	for _, item := range items {
		itemsByOrder[item.OrderID] = append(itemsByOrder[item.OrderID], mapItem(item))
	}

	data := make([]OrderResponse, 0, len(rows))
	for i := range rows {
		resp := mapJoined(&rows[i])
		resp.Items = itemsByOrder[rows[i].ID]
		if resp.Items == nil {
			resp.Items = []OrderItemResponse{}
		}
		data = append(data, *resp)
	}

	return &response.DataTable{
		Draw:            q.Draw,
		RecordsTotal:    total,
		RecordsFiltered: filtered,
		Data:            data,
	}, nil
}

func (s *service) Update(ctx context.Context, id uint, req UpdateOrderRequest) (*OrderResponse, error) {
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ordererrors.ErrOrderNotFound
		}
		return nil, err
	}

	if req.StatusID != nil {
		ok, err := s.repo.StatusExists(ctx, *req.StatusID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ordererrors.ErrStatusNotFound
		}
	}

	if req.DriverID != nil {
		isDriver, err := s.repo.UserHasRole(ctx, *req.DriverID, domain.RoleDriver)
		if err != nil {
			return nil, err
		}
		if !isDriver {
			return nil, ordererrors.ErrNotDriver
		}
	}

	if req.CompanyID != nil {
		ok, err := s.repo.CompanyExists(ctx, *req.CompanyID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, companyerrors.ErrCompanyNotFound
		}
	}

	if req.Area != nil {
		trimmed := strings.TrimSpace(*req.Area)
		if trimmed == "" {
			return nil, ordererrors.ErrAreaRequired
		}
		req.Area = &trimmed
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	rows, err := qtx.UpdateOrderFields(ctx, id, req)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, ordererrors.ErrOrderNotFound
	}

	if req.StatusID != nil && *req.StatusID != current.StatusID {
		if err := s.enqueueStatusChangedEvent(ctx, tx, current, req); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	s.invalidateInsights(ctx)
	s.logger.Info("order updated", zap.Uint("order_id", id))

	return s.joinedView(ctx, id)
}

func (s *service) Delete(ctx context.Context, id uint) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	rows, err := s.repo.WithTx(tx).DeleteOrder(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ordererrors.ErrOrderNotFound
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.invalidateInsights(ctx)
	s.logger.Warn("order permanently deleted", zap.Uint("order_id", id))
	return nil
}

func (s *service) AddItem(ctx context.Context, req CreateOrderItemRequest) (*OrderItemResponse, error) {
	if req.Quantity <= 0 {
		return nil, ordererrors.ErrInvalidQuantity
	}

	exists, err := s.repo.OrderExists(ctx, req.OrderID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ordererrors.ErrOrderNotFound
	}

	gasOK, err := s.repo.GasExists(ctx, req.GasID)
	if err != nil {
		return nil, err
	}
	if !gasOK {
		return nil, gaserrors.ErrGasNotFound
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	item := &OrderItem{OrderID: req.OrderID, GasID: req.GasID, Quantity: req.Quantity}
	if err := s.repo.WithTx(tx).InsertItem(ctx, item); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	s.invalidateInsights(ctx)

	items, err := s.repo.FindItemsByOrderID(ctx, req.OrderID)
	if err != nil {
		return nil, err
	}
	for _, it := range items {
		if it.ID == item.ID {
			resp := mapItem(it)
			return &resp, nil
		}
	}
	return nil, ordererrors.ErrOrderItemNotFound
}

func (s *service) ItemsByOrder(ctx context.Context, orderID uint) ([]OrderItemResponse, error) {
	exists, err := s.repo.OrderExists(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ordererrors.ErrOrderNotFound
	}

	items, err := s.repo.FindItemsByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	out := make([]OrderItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, mapItem(item))
	}
	return out, nil
}

func (s *service) UpdateItemQuantity(ctx context.Context, itemID uint, req UpdateOrderItemRequest) error {
	if req.Quantity <= 0 {
		return ordererrors.ErrInvalidQuantity
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	rows, err := s.repo.WithTx(tx).UpdateItemQuantity(ctx, itemID, req.Quantity)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ordererrors.ErrOrderItemNotFound
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.invalidateInsights(ctx)
	return nil
}

func (s *service) DeleteItem(ctx context.Context, itemID uint) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	rows, err := s.repo.WithTx(tx).DeleteItem(ctx, itemID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ordererrors.ErrOrderItemNotFound
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.invalidateInsights(ctx)
	return nil
}

func (s *service) joinedView(ctx context.Context, id uint) (*OrderResponse, error) {
	row, err := s.repo.FindJoinedByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ordererrors.ErrOrderNotFound
		}
		return nil, err
	}

	items, err := s.repo.FindItemsByOrderID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := mapJoined(row)
	resp.Items = make([]OrderItemResponse, 0, len(items))
	for _, item := range items {
		resp.Items = append(resp.Items, mapItem(item))
	}
	return resp, nil
}

func (s *service) enqueueCreatedEvent(ctx context.Context, tx *sql.Tx, o *Order, itemCount int) error {
	event := events.OrderCreatedEvent{
		EventType:  "order_created",
		RequestID:  contextutil.GetRequestID(ctx),
		OrderID:    o.ID,
		CompanyID:  o.CompanyID,
		AdminID:    o.AdminID,
		Area:       o.Area,
		ItemCount:  itemCount,
		OccurredAt: time.Now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     event.RequestID,
		AggregateType: "order",
		AggregateID:   fmt.Sprint(o.ID),
		EventType:     event.EventType,
		Topic:         events.OrderCreatedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func (s *service) enqueueStatusChangedEvent(ctx context.Context, tx *sql.Tx, current *Order, req UpdateOrderRequest) error {
	event := events.OrderStatusChangedEvent{
		EventType:   "order_status_changed",
		RequestID:   contextutil.GetRequestID(ctx),
		OrderID:     current.ID,
		OldStatusID: current.StatusID,
		NewStatusID: *req.StatusID,
		DriverID:    req.DriverID,
		OccurredAt:  time.Now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     event.RequestID,
		AggregateType: "order",
		AggregateID:   fmt.Sprint(current.ID),
		EventType:     event.EventType,
		Topic:         events.OrderStatusChangedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

// invalidateInsights drops the cached dashboard aggregation after any order
// mutation. Cache misses are tolerated.
func (s *service) invalidateInsights(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, dashboard.CacheKey).Err(); err != nil {
		s.logger.Warn("dashboard cache invalidation failed", zap.Error(err))
	}
}

func mapJoined(row *JoinedOrder) *OrderResponse {
	return &OrderResponse{
		ID:             row.ID,
		CompanyID:      row.CompanyID,
		CompanyName:    row.CompanyName,
		CompanyAddress: row.CompanyAddress,
		StatusID:       row.StatusID,
		StatusName:     row.StatusName,
		AdminID:        row.AdminID,
		AdminName:      row.AdminName,
		DriverID:       row.DriverID,
		DriverName:     row.DriverName,
		Area:           row.Area,
		MobileNo:       row.MobileNo,
		Notes:          row.Notes,
		CreatedAt:      row.CreatedAt.In(deliveryZone).Format(timestampLayout),
		UpdatedAt:      row.UpdatedAt.In(deliveryZone).Format(timestampLayout),
	}
}

func mapItem(item JoinedItem) OrderItemResponse {
	return OrderItemResponse{
		ID:       item.ID,
		OrderID:  item.OrderID,
		GasID:    item.GasID,
		GasName:  item.GasName,
		GasUnit:  item.GasUnit,
		Quantity: item.Quantity,
	}
}
