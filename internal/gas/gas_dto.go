package gas

import "time"

type CreateGasRequest struct {
	Name        string  `json:"name" binding:"required"`
	Unit        string  `json:"unit"`
	Description *string `json:"description"`
}

type UpdateGasRequest struct {
	Name        *string `json:"name"`
	Unit        *string `json:"unit"`
	Description *string `json:"description"`
}

type GasResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Unit        string    `json:"unit"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// GasOption is the slim shape used by dropdowns.
type GasOption struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Unit string `json:"unit"`
}

type ListGasesQuery struct {
	Draw   int
	Start  int
	Length int
	Search string
}
