package app

import (
	"context"
	"database/sql"

	"go-quickgas/internal/auth"
	"go-quickgas/internal/company"
	"go-quickgas/internal/dashboard"
	"go-quickgas/internal/gas"
	"go-quickgas/internal/health"
	"go-quickgas/internal/messaging/kafka"
	"go-quickgas/internal/middleware"
	"go-quickgas/internal/order"
	"go-quickgas/internal/orderstatus"
	"go-quickgas/internal/role"
	"go-quickgas/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	logger := zap.L()

	// --- Repositories ---
	companyRepo := company.NewRepository(gormDB, db)
	gasRepo := gas.NewRepository(gormDB, db)
	userRepo := user.NewRepository(gormDB, db)
	roleRepo := role.NewRepository(gormDB)
	statusRepo := orderstatus.NewRepository(gormDB)
	orderRepo := order.NewRepository(gormDB, db)
	dashboardRepo := dashboard.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// Status ids are resolved by name once at startup so no id is hard-coded.
	statuses, err := orderstatus.Load(context.Background(), statusRepo)
	if err != nil {
		return err
	}

	// --- Services ---
	companyService := company.NewService(db, companyRepo, logger)
	gasService := gas.NewService(db, gasRepo, logger)
	userService := user.NewService(db, userRepo, logger)
	roleService := role.NewService(roleRepo)
	statusService := orderstatus.NewService(statusRepo)
	authService := auth.NewService(db, userRepo, logger)
	orderService := order.NewService(db, orderRepo, outboxRepo, statuses, rdb, logger)
	dashboardService := dashboard.NewService(dashboardRepo, statuses, rdb, logger)

	// --- Handlers ---
	companyHandler := company.NewHandler(companyService)
	gasHandler := gas.NewHandler(gasService)
	userHandler := user.NewHandler(userService)
	roleHandler := role.NewHandler(roleService)
	statusHandler := orderstatus.NewHandler(statusService)
	authHandler := auth.NewHandler(authService)
	orderHandler := order.NewHandlerWithRedis(orderService, rdb)
	dashboardHandler := dashboard.NewHandler(dashboardService)
	healthHandler := health.NewHandler()

	// --- Routes Registration ---
	router.Use(middleware.RequestID())

	api := router.Group("/api/v1")
	{
		health.RegisterRoutes(api, healthHandler)
		auth.RegisterRoutes(api, authHandler)
		company.RegisterRoutes(api, companyHandler)
		gas.RegisterRoutes(api, gasHandler)
		user.RegisterRoutes(api, userHandler)
		role.RegisterRoutes(api, roleHandler)
		orderstatus.RegisterRoutes(api, statusHandler)
		order.RegisterRoutes(api, orderHandler, rdb)
		dashboard.RegisterRoutes(api, dashboardHandler)
	}

	return nil
}
