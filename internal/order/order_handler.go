package order

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"go-quickgas/internal/middleware"
	ordererrors "go-quickgas/internal/order/errors"
	"go-quickgas/internal/shared/apperror"
	"go-quickgas/internal/shared/messages"
	"go-quickgas/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	dateLayout = "2006-01-02"

	// Cached create responses outlive the idempotency lock by a wide margin
	// so late retries replay instead of duplicating.
	idempotencyCacheTTL = 24 * time.Hour
)

type Handler struct {
	service Service
	rdb     *redis.Client
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("order.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("order.handler")
	}
	return &Handler{service: service, logger: l}
}

// NewHandlerWithRedis completes the idempotency contract: Create releases the
// middleware's lock and caches the successful envelope for replay.
func NewHandlerWithRedis(service Service, rdb *redis.Client, logger ...*zap.Logger) *Handler {
	h := NewHandler(service, logger...)
	h.rdb = rdb
	return h
}

func (h *Handler) Create(c *gin.Context) {
	lockKey := c.GetString(middleware.IdempotencyLockKey)
	cacheKey := c.GetString(middleware.IdempotencyCacheKey)

	if h.rdb != nil && lockKey != "" {
		defer h.rdb.Del(c.Request.Context(), lockKey)
	}

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Message, httpErr.Code)
		return
	}

	o, err := h.service.Create(c.Request.Context(), middleware.Actor(c), req)
	if err != nil {
		h.writeError(c, err, "create order failed")
		return
	}

	env := response.Envelope{
		Data:       o,
		StatusCode: http.StatusCreated,
		Message:    messages.OrderCreated,
	}

	if h.rdb != nil && cacheKey != "" {
		if payload, marshalErr := json.Marshal(env); marshalErr == nil {
			_ = h.rdb.Set(c.Request.Context(), cacheKey, payload, idempotencyCacheTTL).Err()
		}
	}

	c.JSON(http.StatusCreated, env)
}

func (h *Handler) GetByID(c *gin.Context) {
	id, err := parseID(c, "id", ordererrors.ErrInvalidOrderID)
	if err != nil {
		h.writeError(c, err, "invalid order id")
		return
	}

	o, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err, "get order failed")
		return
	}

	response.Success(c, http.StatusOK, o, messages.OrderRetrieved)
}

func (h *Handler) List(c *gin.Context) {
	q := ListOrdersQuery{
		Draw:    queryInt(c, "draw", 0),
		Start:   queryInt(c, "start", 0),
		Length:  queryInt(c, "length", 10),
		Search:  c.Query("search"),
		SortAsc: c.Query("sort_dir") == "asc",
	}

	if raw := c.Query("status_id"); raw != "" {
		v, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			h.writeError(c, apperror.InvalidField("status_id"), "invalid status filter")
			return
		}
		statusID := uint(v)
		q.StatusID = &statusID
	}

	if raw := c.Query("start_date"); raw != "" {
		t, err := time.Parse(dateLayout, raw)
		if err != nil {
			h.writeError(c, apperror.InvalidField("start_date"), "invalid date filter")
			return
		}
		q.StartDate = &t
	}
	if raw := c.Query("end_date"); raw != "" {
		t, err := time.Parse(dateLayout, raw)
		if err != nil {
			h.writeError(c, apperror.InvalidField("end_date"), "invalid date filter")
			return
		}
		// Inclusive day filter, push to end of day.
		end := t.Add(24*time.Hour - time.Second)
		q.EndDate = &end
	}

	table, err := h.service.List(c.Request.Context(), q)
	if err != nil {
		h.writeError(c, err, "list orders failed")
		return
	}

	response.Success(c, http.StatusOK, table, messages.OrderRetrieved)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := parseID(c, "id", ordererrors.ErrInvalidOrderID)
	if err != nil {
		h.writeError(c, err, "invalid order id")
		return
	}

	var req UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Message, httpErr.Code)
		return
	}

	o, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.writeError(c, err, "update order failed")
		return
	}

	response.Success(c, http.StatusOK, o, messages.OrderUpdated)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := parseID(c, "id", ordererrors.ErrInvalidOrderID)
	if err != nil {
		h.writeError(c, err, "invalid order id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.writeError(c, err, "delete order failed")
		return
	}

	response.Success(c, http.StatusOK, nil, messages.OrderDeleted)
}

func (h *Handler) AddItem(c *gin.Context) {
	var req CreateOrderItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Message, httpErr.Code)
		return
	}

	item, err := h.service.AddItem(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err, "add order item failed")
		return
	}

	response.Success(c, http.StatusCreated, item, messages.OrderItemCreated)
}

func (h *Handler) ItemsByOrder(c *gin.Context) {
	orderID, err := parseID(c, "id", ordererrors.ErrInvalidOrderID)
	if err != nil {
		h.writeError(c, err, "invalid order id")
		return
	}

	items, err := h.service.ItemsByOrder(c.Request.Context(), orderID)
	if err != nil {
		h.writeError(c, err, "list order items failed")
		return
	}

	response.Success(c, http.StatusOK, items, messages.OrderItemRetrieved)
}

func (h *Handler) UpdateItem(c *gin.Context) {
	itemID, err := parseID(c, "id", ordererrors.ErrInvalidOrderItemID)
	if err != nil {
		h.writeError(c, err, "invalid order item id")
		return
	}

	var req UpdateOrderItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Message, httpErr.Code)
		return
	}

	if err := h.service.UpdateItemQuantity(c.Request.Context(), itemID, req); err != nil {
		h.writeError(c, err, "update order item failed")
		return
	}

	response.Success(c, http.StatusOK, nil, messages.OrderItemUpdated)
}

func (h *Handler) DeleteItem(c *gin.Context) {
	itemID, err := parseID(c, "id", ordererrors.ErrInvalidOrderItemID)
	if err != nil {
		h.writeError(c, err, "invalid order item id")
		return
	}

	if err := h.service.DeleteItem(c.Request.Context(), itemID); err != nil {
		h.writeError(c, err, "delete order item failed")
		return
	}

	response.Success(c, http.StatusOK, nil, messages.OrderItemDeleted)
}

func (h *Handler) writeError(c *gin.Context, err error, logMsg string) {
	httpErr := apperror.ToHTTP(err)
	if httpErr.Status >= http.StatusInternalServerError {
		h.logger.Error(logMsg, zap.Error(err))
	} else {
		h.logger.Warn(logMsg, zap.Error(err))
	}
	response.Error(c, httpErr.Status, httpErr.Message, httpErr.Code)
}

func parseID(c *gin.Context, param string, invalid error) (uint, error) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil {
		return 0, invalid
	}
	return uint(id), nil
}

func queryInt(c *gin.Context, key string, fallback int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return fallback
	}
	return v
}
