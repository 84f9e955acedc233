package orderstatus

import "context"

type OrderStatusResponse struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

//go:generate mockgen -destination=mock/order_status_service_mock.go -package=mock . Service
type Service interface {
	List(ctx context.Context) ([]OrderStatusResponse, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]OrderStatusResponse, error) {
	statuses, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]OrderStatusResponse, 0, len(statuses))
	for _, st := range statuses {
		out = append(out, OrderStatusResponse{ID: st.ID, Name: st.Name, Description: st.Description})
	}
	return out, nil
}
