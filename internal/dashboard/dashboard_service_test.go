package dashboard_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"go-quickgas/internal/dashboard"
	dashboardMock "go-quickgas/internal/dashboard/mock"
	"go-quickgas/internal/orderstatus"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type dashboardDeps struct {
	service   dashboard.Service
	repo      *dashboardMock.MockRepository
	redismock redismock.ClientMock
}

func newDashboardService(t *testing.T) dashboardDeps {
	t.Helper()

	ctrl := gomock.NewController(t)
	dbRedis, redisMock := redismock.NewClientMock()
	repo := dashboardMock.NewMockRepository(ctrl)

	statuses, err := orderstatus.NewResolver(map[string]uint{
		orderstatus.StatusPending:        1,
		orderstatus.StatusOutForDelivery: 2,
		orderstatus.StatusCompleted:      3,
	})
	assert.NoError(t, err)

	svc := dashboard.NewService(repo, statuses, dbRedis, zap.NewNop())

	return dashboardDeps{
		service:   svc,
		repo:      repo,
		redismock: redisMock,
	}
}

func TestInsights(t *testing.T) {
	ctx := context.Background()

	t.Run("computes counts and gas requirements on cache miss", func(t *testing.T) {
		deps := newDashboardService(t)

		deps.redismock.ExpectGet(dashboard.CacheKey).RedisNil()
		deps.repo.EXPECT().CountOrdersByStatus(gomock.Any(), uint(1)).Return(int64(4), nil)
		deps.repo.EXPECT().CountOrdersByStatus(gomock.Any(), uint(2)).Return(int64(2), nil)
		deps.repo.EXPECT().CountOrdersByStatus(gomock.Any(), uint(3)).Return(int64(9), nil)
		deps.repo.EXPECT().GasRequirements(gomock.Any(), uint(1)).Return(map[string]int64{
			"Oxygen": 12,
			"Argon":  3,
		}, nil)
		deps.redismock.Regexp().ExpectSet(dashboard.CacheKey, `.*`, 60*time.Second).SetVal("OK")

		insights, err := deps.service.Insights(ctx)

		assert.NoError(t, err)
		assert.Equal(t, int64(4), insights.TotalPendingOrders)
		assert.Equal(t, int64(2), insights.TotalOutForDeliveryOrders)
		assert.Equal(t, int64(9), insights.TotalCompletedOrders)
		assert.Equal(t, int64(12), insights.GasRequirements["Oxygen"])
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("serves cached payload without touching the database", func(t *testing.T) {
		deps := newDashboardService(t)

		cached := dashboard.Insights{
			TotalPendingOrders:   7,
			TotalCompletedOrders: 1,
			GasRequirements:      map[string]int64{"Nitrogen": 5},
		}
		raw, err := json.Marshal(cached)
		assert.NoError(t, err)

		deps.redismock.ExpectGet(dashboard.CacheKey).SetVal(string(raw))

		insights, err := deps.service.Insights(ctx)

		assert.NoError(t, err)
		assert.Equal(t, int64(7), insights.TotalPendingOrders)
		assert.Equal(t, int64(5), insights.GasRequirements["Nitrogen"])
	})

	t.Run("falls through to the database when the cache is corrupt", func(t *testing.T) {
		deps := newDashboardService(t)

		deps.redismock.ExpectGet(dashboard.CacheKey).SetVal("{not json")
		deps.repo.EXPECT().CountOrdersByStatus(gomock.Any(), uint(1)).Return(int64(0), nil)
		deps.repo.EXPECT().CountOrdersByStatus(gomock.Any(), uint(2)).Return(int64(0), nil)
		deps.repo.EXPECT().CountOrdersByStatus(gomock.Any(), uint(3)).Return(int64(0), nil)
		deps.repo.EXPECT().GasRequirements(gomock.Any(), uint(1)).Return(map[string]int64{}, nil)
		deps.redismock.Regexp().ExpectSet(dashboard.CacheKey, `.*`, 60*time.Second).SetVal("OK")

		insights, err := deps.service.Insights(ctx)

		assert.NoError(t, err)
		assert.Empty(t, insights.GasRequirements)
	})

	t.Run("propagates repository failures", func(t *testing.T) {
		deps := newDashboardService(t)

		deps.redismock.ExpectGet(dashboard.CacheKey).RedisNil()
		deps.repo.EXPECT().CountOrdersByStatus(gomock.Any(), uint(1)).Return(int64(0), assert.AnError)

		insights, err := deps.service.Insights(ctx)

		assert.Nil(t, insights)
		assert.ErrorIs(t, err, assert.AnError)
	})
}
