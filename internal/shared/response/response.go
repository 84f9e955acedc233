package response

import (
	"github.com/gin-gonic/gin"
)

// Envelope is the body shape every endpoint returns, success or failure.
type Envelope struct {
	Data             any    `json:"data"`
	StatusCode       int    `json:"statusCode"`
	Message          string `json:"message"`
	TechnicalMessage string `json:"technicalMessage,omitempty"`
}

// DataTable is the server-side processing payload carried inside Envelope.Data
// by list endpoints: total row count, count after filtering, and the page.
type DataTable struct {
	Draw            int   `json:"draw,omitempty"`
	RecordsTotal    int64 `json:"recordsTotal"`
	RecordsFiltered int64 `json:"recordsFiltered"`
	Data            any   `json:"data"`
}

func Success(c *gin.Context, status int, data any, message string) {
	c.JSON(status, Envelope{
		Data:       data,
		StatusCode: status,
		Message:    message,
	})
}

func Error(c *gin.Context, status int, message string, technical string) {
	c.JSON(status, Envelope{
		Data:             nil,
		StatusCode:       status,
		Message:          message,
		TechnicalMessage: technical,
	})
}
