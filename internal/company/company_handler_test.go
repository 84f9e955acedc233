package company_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-quickgas/internal/company"
	companyerrors "go-quickgas/internal/company/errors"
	companyMock "go-quickgas/internal/company/mock"
	"go-quickgas/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCompanyHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := companyMock.NewMockService(ctrl)
	handler := company.NewHandler(mockService)

	t.Run("Success", func(t *testing.T) {
		mockService.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(&company.CompanyResponse{ID: 1, Name: "Acme"}, nil)

		w := httptest.NewRecorder()
		_, r := gin.CreateTestContext(w)
		r.POST("/companies", handler.Create)

		body, _ := json.Marshal(company.CreateCompanyRequest{Name: "Acme"})
		req, _ := http.NewRequest(http.MethodPost, "/companies", bytes.NewBuffer(body))
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var env response.Envelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.Equal(t, http.StatusCreated, env.StatusCode)
	})

	t.Run("Missing Name", func(t *testing.T) {
		w := httptest.NewRecorder()
		_, r := gin.CreateTestContext(w)
		r.POST("/companies", handler.Create)

		req, _ := http.NewRequest(http.MethodPost, "/companies", bytes.NewBufferString(`{}`))
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Duplicate Name", func(t *testing.T) {
		mockService.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(nil, companyerrors.ErrCompanyNameExists)

		w := httptest.NewRecorder()
		_, r := gin.CreateTestContext(w)
		r.POST("/companies", handler.Create)

		body, _ := json.Marshal(company.CreateCompanyRequest{Name: "Acme"})
		req, _ := http.NewRequest(http.MethodPost, "/companies", bytes.NewBuffer(body))
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestCompanyHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := companyMock.NewMockService(ctrl)
	handler := company.NewHandler(mockService)

	mockService.EXPECT().
		List(gomock.Any(), company.ListCompaniesQuery{Draw: 3, Start: 10, Length: 5, Search: "gas"}).
		Return(&response.DataTable{Draw: 3, RecordsTotal: 40, RecordsFiltered: 12}, nil)

	w := httptest.NewRecorder()
	_, r := gin.CreateTestContext(w)
	r.GET("/companies", handler.List)

	req, _ := http.NewRequest(http.MethodGet, "/companies?draw=3&start=10&length=5&search=gas", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCompanyHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := companyMock.NewMockService(ctrl)
	handler := company.NewHandler(mockService)

	t.Run("Success", func(t *testing.T) {
		mockService.EXPECT().Delete(gomock.Any(), uint(5)).Return(nil)

		w := httptest.NewRecorder()
		_, r := gin.CreateTestContext(w)
		r.DELETE("/companies/:id", handler.Delete)

		req, _ := http.NewRequest(http.MethodDelete, "/companies/5", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockService.EXPECT().Delete(gomock.Any(), uint(5)).Return(companyerrors.ErrCompanyNotFound)

		w := httptest.NewRecorder()
		_, r := gin.CreateTestContext(w)
		r.DELETE("/companies/:id", handler.Delete)

		req, _ := http.NewRequest(http.MethodDelete, "/companies/5", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Bad ID", func(t *testing.T) {
		w := httptest.NewRecorder()
		_, r := gin.CreateTestContext(w)
		r.DELETE("/companies/:id", handler.Delete)

		req, _ := http.NewRequest(http.MethodDelete, "/companies/abc", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
