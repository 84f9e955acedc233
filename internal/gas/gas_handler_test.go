package gas_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-quickgas/internal/gas"
	gaserrors "go-quickgas/internal/gas/errors"
	gasMock "go-quickgas/internal/gas/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestGasHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := gasMock.NewMockService(ctrl)
	handler := gas.NewHandler(mockService)

	t.Run("Success", func(t *testing.T) {
		mockService.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(&gas.GasResponse{ID: 1, Name: "Oxygen", Unit: gas.DefaultUnit}, nil)

		w := httptest.NewRecorder()
		_, r := gin.CreateTestContext(w)
		r.POST("/gases", handler.Create)

		body, _ := json.Marshal(gas.CreateGasRequest{Name: "Oxygen"})
		req, _ := http.NewRequest(http.MethodPost, "/gases", bytes.NewBuffer(body))
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("Missing Name", func(t *testing.T) {
		w := httptest.NewRecorder()
		_, r := gin.CreateTestContext(w)
		r.POST("/gases", handler.Create)

		req, _ := http.NewRequest(http.MethodPost, "/gases", bytes.NewBufferString(`{}`))
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGasHandler_GetByID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := gasMock.NewMockService(ctrl)
	handler := gas.NewHandler(mockService)

	t.Run("Not Found", func(t *testing.T) {
		mockService.EXPECT().GetByID(gomock.Any(), uint(7)).Return(nil, gaserrors.ErrGasNotFound)

		w := httptest.NewRecorder()
		_, r := gin.CreateTestContext(w)
		r.GET("/gases/:id", handler.GetByID)

		req, _ := http.NewRequest(http.MethodGet, "/gases/7", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
