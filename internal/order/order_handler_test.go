package order_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-quickgas/internal/middleware"
	"go-quickgas/internal/order"
	ordererrors "go-quickgas/internal/order/errors"
	orderMock "go-quickgas/internal/order/mock"
	"go-quickgas/internal/shared/messages"
	"go-quickgas/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestOrderHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := orderMock.NewMockService(ctrl)
	handler := order.NewHandler(mockService)

	t.Run("Success", func(t *testing.T) {
		mockService.EXPECT().
			Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&order.OrderResponse{ID: 11, Area: "Sector 14"}, nil)

		w := httptest.NewRecorder()
		_, r := gin.CreateTestContext(w)
		r.POST("/orders", handler.Create)

		body, _ := json.Marshal(order.CreateOrderRequest{
			CompanyID: 2,
			Area:      "Sector 14",
			Items:     []order.CreateOrderItem{{GasID: 7, Quantity: 3}},
		})
		req, _ := http.NewRequest(http.MethodPost, "/orders", bytes.NewBuffer(body))
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var env response.Envelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.Equal(t, http.StatusCreated, env.StatusCode)
	})

	t.Run("Missing Company", func(t *testing.T) {
		w := httptest.NewRecorder()
		_, r := gin.CreateTestContext(w)
		r.POST("/orders", handler.Create)

		req, _ := http.NewRequest(http.MethodPost, "/orders", bytes.NewBufferString(`{"area":"Sector 14"}`))
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Empty Items Rejected By Service", func(t *testing.T) {
		mockService.EXPECT().
			Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, ordererrors.ErrMinimumItemRequired)

		w := httptest.NewRecorder()
		_, r := gin.CreateTestContext(w)
		r.POST("/orders", handler.Create)

		body, _ := json.Marshal(order.CreateOrderRequest{CompanyID: 2, Area: "Sector 14"})
		req, _ := http.NewRequest(http.MethodPost, "/orders", bytes.NewBuffer(body))
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestOrderHandler_CreateIdempotency(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dbRedis, redisMock := redismock.NewClientMock()
	mockService := orderMock.NewMockService(ctrl)
	handler := order.NewHandlerWithRedis(mockService, dbRedis)

	_, r := gin.CreateTestContext(httptest.NewRecorder())
	r.POST("/orders", middleware.Idempotency(dbRedis), handler.Create)

	created := &order.OrderResponse{ID: 11, Area: "Sector 14"}
	mockService.EXPECT().
		Create(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(created, nil).
		Times(1)

	cacheKey := "idemp:/orders:0:retry-7c1"
	lockKey := cacheKey + ":lock"

	envelope, err := json.Marshal(response.Envelope{
		Data:       created,
		StatusCode: http.StatusCreated,
		Message:    messages.OrderCreated,
	})
	assert.NoError(t, err)

	// First attempt takes the lock, caches the envelope, releases the lock.
	redisMock.ExpectGet(cacheKey).RedisNil()
	redisMock.ExpectSetNX(lockKey, "locked", 30*time.Second).SetVal(true)
	redisMock.Regexp().ExpectSet(cacheKey, `.*`, 24*time.Hour).SetVal("OK")
	redisMock.ExpectDel(lockKey).SetVal(1)

	// Retry replays the cached envelope without reaching the service.
	redisMock.ExpectGet(cacheKey).SetVal(string(envelope))

	body, _ := json.Marshal(order.CreateOrderRequest{
		CompanyID: 2,
		Area:      "Sector 14",
		Items:     []order.CreateOrderItem{{GasID: 7, Quantity: 3}},
	})

	w1 := httptest.NewRecorder()
	req1, _ := http.NewRequest(http.MethodPost, "/orders", bytes.NewBuffer(body))
	req1.Header.Set("Idempotency-Key", "retry-7c1")
	r.ServeHTTP(w1, req1)

	assert.Equal(t, http.StatusCreated, w1.Code)

	w2 := httptest.NewRecorder()
	req2, _ := http.NewRequest(http.MethodPost, "/orders", bytes.NewBuffer(body))
	req2.Header.Set("Idempotency-Key", "retry-7c1")
	r.ServeHTTP(w2, req2)

	assert.Equal(t, http.StatusCreated, w2.Code)

	var replayed response.Envelope
	assert.NoError(t, json.Unmarshal(w2.Body.Bytes(), &replayed))
	assert.Equal(t, messages.OrderCreated, replayed.Message)
	assert.JSONEq(t, w1.Body.String(), w2.Body.String())
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestOrderHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := orderMock.NewMockService(ctrl)
	handler := order.NewHandler(mockService)

	statusID := uint(2)
	mockService.EXPECT().
		List(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, q order.ListOrdersQuery) (*response.DataTable, error) {
			assert.Equal(t, 4, q.Draw)
			assert.Equal(t, "acme", q.Search)
			assert.Equal(t, &statusID, q.StatusID)
			assert.NotNil(t, q.StartDate)
			assert.NotNil(t, q.EndDate)
			assert.True(t, q.SortAsc)
			return &response.DataTable{Draw: 4, RecordsTotal: 20, RecordsFiltered: 6}, nil
		})

	w := httptest.NewRecorder()
	_, r := gin.CreateTestContext(w)
	r.GET("/orders", handler.List)

	req, _ := http.NewRequest(http.MethodGet,
		"/orders?draw=4&start=0&length=10&search=acme&status_id=2&start_date=2025-03-01&end_date=2025-03-31&sort_dir=asc", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestOrderHandler_ListFilterValidation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := orderMock.NewMockService(ctrl)
	handler := order.NewHandler(mockService)

	cases := []struct {
		name  string
		query string
	}{
		{"Malformed Status Filter", "/orders?status_id=abc"},
		{"Malformed Start Date", "/orders?start_date=01-03-2025"},
		{"Malformed End Date", "/orders?end_date=yesterday"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			_, r := gin.CreateTestContext(w)
			r.GET("/orders", handler.List)

			req, _ := http.NewRequest(http.MethodGet, tc.query, nil)
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestOrderHandler_Update(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := orderMock.NewMockService(ctrl)
	handler := order.NewHandler(mockService)

	t.Run("Driver Role Rejected", func(t *testing.T) {
		mockService.EXPECT().
			Update(gomock.Any(), uint(11), gomock.Any()).
			Return(nil, ordererrors.ErrNotDriver)

		w := httptest.NewRecorder()
		_, r := gin.CreateTestContext(w)
		r.PUT("/orders/:id", handler.Update)

		req, _ := http.NewRequest(http.MethodPut, "/orders/11", bytes.NewBufferString(`{"driver_id":5}`))
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockService.EXPECT().
			Update(gomock.Any(), uint(42), gomock.Any()).
			Return(nil, ordererrors.ErrOrderNotFound)

		w := httptest.NewRecorder()
		_, r := gin.CreateTestContext(w)
		r.PUT("/orders/:id", handler.Update)

		req, _ := http.NewRequest(http.MethodPut, "/orders/42", bytes.NewBufferString(`{}`))
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Bad ID", func(t *testing.T) {
		w := httptest.NewRecorder()
		_, r := gin.CreateTestContext(w)
		r.PUT("/orders/:id", handler.Update)

		req, _ := http.NewRequest(http.MethodPut, "/orders/abc", bytes.NewBufferString(`{}`))
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestOrderHandler_Items(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := orderMock.NewMockService(ctrl)
	handler := order.NewHandler(mockService)

	t.Run("Add Item", func(t *testing.T) {
		mockService.EXPECT().
			AddItem(gomock.Any(), gomock.Any()).
			Return(&order.OrderItemResponse{ID: 21, OrderID: 11, GasName: "Oxygen", Quantity: 3}, nil)

		w := httptest.NewRecorder()
		_, r := gin.CreateTestContext(w)
		r.POST("/order-items", handler.AddItem)

		body, _ := json.Marshal(order.CreateOrderItemRequest{OrderID: 11, GasID: 7, Quantity: 3})
		req, _ := http.NewRequest(http.MethodPost, "/order-items", bytes.NewBuffer(body))
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("Items By Order", func(t *testing.T) {
		mockService.EXPECT().
			ItemsByOrder(gomock.Any(), uint(11)).
			Return([]order.OrderItemResponse{{ID: 21, OrderID: 11}}, nil)

		w := httptest.NewRecorder()
		_, r := gin.CreateTestContext(w)
		r.GET("/order-items/order/:id", handler.ItemsByOrder)

		req, _ := http.NewRequest(http.MethodGet, "/order-items/order/11", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Delete Item Not Found", func(t *testing.T) {
		mockService.EXPECT().
			DeleteItem(gomock.Any(), uint(99)).
			Return(ordererrors.ErrOrderItemNotFound)

		w := httptest.NewRecorder()
		_, r := gin.CreateTestContext(w)
		r.DELETE("/order-items/:id", handler.DeleteItem)

		req, _ := http.NewRequest(http.MethodDelete, "/order-items/99", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
