package app

import (
	"database/sql"
	"time"

	"go-encash/internal/auth"
	"go-encash/internal/auth/token"
	"go-encash/internal/employee"
	"go-encash/internal/encashment"
	"go-encash/internal/messaging/kafka"
	"go-encash/internal/middleware"
	"go-encash/internal/shares"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	cfg Config,
) error {
	router.Use(middleware.RequestID())

	// --- Token Manager (shared secret di-inject sekali di sini) ---
	tm := token.NewManager(cfg.JWTSecret, time.Hour)

	// --- Repositories ---
	employeeRepo := employee.NewRepository(gormDB)
	encashmentRepo := encashment.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Services ---
	authService := auth.NewService(employeeRepo, tm)
	employeeService := employee.NewService(employeeRepo)
	encashmentService := encashment.NewServiceWithOutbox(db, encashmentRepo, employeeRepo, outboxRepo)
	sharesService := shares.NewService(rdb, cfg.SharePrice)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	employeeHandler := employee.NewHandler(employeeService)
	encashmentHandler := encashment.NewHandlerWithRedis(encashmentService, rdb)
	sharesHandler := shares.NewHandler(sharesService)

	// --- Routes Registration ---
	api := router.Group("/api")
	{
		auth.RegisterRoutes(api, authHandler)
		employee.RegisterRoutes(api, employeeHandler, tm)
		encashment.RegisterRoutes(api, encashmentHandler, tm, rdb)
		shares.RegisterRoutes(api, sharesHandler)
	}

	return nil
}
