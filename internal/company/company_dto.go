package company

import "time"

type CreateCompanyRequest struct {
	Name    string  `json:"name" binding:"required"`
	Address *string `json:"address"`
}

type UpdateCompanyRequest struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
}

type CompanyResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Address   *string   `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CompanyOption is the slim shape used by dropdowns.
type CompanyOption struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type ListCompaniesQuery struct {
	Draw   int
	Start  int
	Length int
	Search string
}
