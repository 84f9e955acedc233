package dashboard

import (
	"context"
	"encoding/json"
	"time"

	"go-quickgas/internal/orderstatus"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const cacheTTL = 60 * time.Second

type Insights struct {
	TotalPendingOrders        int64            `json:"total_pending_orders"`
	TotalOutForDeliveryOrders int64            `json:"total_out_for_delivery_orders"`
	TotalCompletedOrders      int64            `json:"total_completed_orders"`
	GasRequirements           map[string]int64 `json:"gas_requirements"`
}

//go:generate mockgen -destination=mock/dashboard_service_mock.go -package=mock . Service
type Service interface {
	Insights(ctx context.Context) (*Insights, error)
}

type service struct {
	repo     Repository
	statuses *orderstatus.Resolver
	rdb      *redis.Client
	group    singleflight.Group
	logger   *zap.Logger
}

func NewService(repo Repository, statuses *orderstatus.Resolver, rdb *redis.Client, logger *zap.Logger) Service {
	return &service{
		repo:     repo,
		statuses: statuses,
		rdb:      rdb,
		logger:   logger.Named("dashboard.service"),
	}
}

func (s *service) Insights(ctx context.Context) (*Insights, error) {
	if cached := s.fromCache(ctx); cached != nil {
		return cached, nil
	}

	// Concurrent cache misses share one recomputation.
	v, err, _ := s.group.Do(CacheKey, func() (any, error) {
		return s.compute(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.(*Insights), nil
}

func (s *service) compute(ctx context.Context) (*Insights, error) {
	pending, err := s.repo.CountOrdersByStatus(ctx, s.statuses.Pending())
	if err != nil {
		return nil, err
	}

	outForDelivery, err := s.repo.CountOrdersByStatus(ctx, s.statuses.OutForDelivery())
	if err != nil {
		return nil, err
	}

	completed, err := s.repo.CountOrdersByStatus(ctx, s.statuses.Completed())
	if err != nil {
		return nil, err
	}

	requirements, err := s.repo.GasRequirements(ctx, s.statuses.Pending())
	if err != nil {
		return nil, err
	}

	insights := &Insights{
		TotalPendingOrders:        pending,
		TotalOutForDeliveryOrders: outForDelivery,
		TotalCompletedOrders:      completed,
		GasRequirements:           requirements,
	}

	s.toCache(ctx, insights)
	return insights, nil
}

func (s *service) fromCache(ctx context.Context) *Insights {
	if s.rdb == nil {
		return nil
	}

	raw, err := s.rdb.Get(ctx, CacheKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			s.logger.Warn("insights cache read failed", zap.Error(err))
		}
		return nil
	}

	var insights Insights
	if err := json.Unmarshal(raw, &insights); err != nil {
		s.logger.Warn("insights cache payload corrupt", zap.Error(err))
		return nil
	}
	return &insights
}

func (s *service) toCache(ctx context.Context, insights *Insights) {
	if s.rdb == nil {
		return
	}

	raw, err := json.Marshal(insights)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, CacheKey, raw, cacheTTL).Err(); err != nil {
		s.logger.Warn("insights cache write failed", zap.Error(err))
	}
}
