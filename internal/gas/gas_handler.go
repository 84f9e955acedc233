package gas

import (
	"net/http"
	"strconv"

	gaserrors "go-quickgas/internal/gas/errors"
	"go-quickgas/internal/shared/apperror"
	"go-quickgas/internal/shared/messages"
	"go-quickgas/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("gas.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("gas.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateGasRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Message, httpErr.Code)
		return
	}

	g, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err, "create gas failed")
		return
	}

	response.Success(c, http.StatusCreated, g, messages.GasCreated)
}

func (h *Handler) GetByID(c *gin.Context) {
	id, err := parseGasID(c)
	if err != nil {
		h.writeError(c, err, "invalid gas id")
		return
	}

	g, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err, "get gas failed")
		return
	}

	response.Success(c, http.StatusOK, g, messages.GasRetrieved)
}

func (h *Handler) GetAll(c *gin.Context) {
	options, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.writeError(c, err, "list gases failed")
		return
	}

	response.Success(c, http.StatusOK, options, messages.GasRetrieved)
}

func (h *Handler) List(c *gin.Context) {
	q := ListGasesQuery{
		Draw:   queryInt(c, "draw", 0),
		Start:  queryInt(c, "start", 0),
		Length: queryInt(c, "length", 10),
		Search: c.Query("search"),
	}

	table, err := h.service.List(c.Request.Context(), q)
	if err != nil {
		h.writeError(c, err, "list gases failed")
		return
	}

	response.Success(c, http.StatusOK, table, messages.GasRetrieved)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := parseGasID(c)
	if err != nil {
		h.writeError(c, err, "invalid gas id")
		return
	}

	var req UpdateGasRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Message, httpErr.Code)
		return
	}

	g, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.writeError(c, err, "update gas failed")
		return
	}

	response.Success(c, http.StatusOK, g, messages.GasUpdated)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := parseGasID(c)
	if err != nil {
		h.writeError(c, err, "invalid gas id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.writeError(c, err, "delete gas failed")
		return
	}

	response.Success(c, http.StatusOK, nil, messages.GasDeleted)
}

func (h *Handler) DeletePermanent(c *gin.Context) {
	id, err := parseGasID(c)
	if err != nil {
		h.writeError(c, err, "invalid gas id")
		return
	}

	if err := h.service.DeletePermanent(c.Request.Context(), id); err != nil {
		h.writeError(c, err, "permanent delete gas failed")
		return
	}

	response.Success(c, http.StatusOK, nil, messages.GasDeleted)
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

func parseGasID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, gaserrors.ErrInvalidGasID
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
