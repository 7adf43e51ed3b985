package app

import (
	"go-encash/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp menyiapkan infrastruktur dan semua route, lalu mengembalikan
// config supaya main tidak membaca env dua kali.
func BuildApp(router *gin.Engine) (Config, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return Config{}, err
	}

	// 1. Setup Infrastructure
	gormDB, err := connection.ConnectGORMWithRetry(
		cfg.DB.Host,
		cfg.DB.User,
		cfg.DB.Password,
		cfg.DB.Name,
		cfg.DB.Port,
		cfg.DB.SSLMode,
		5,
	)
	if err != nil {
		return Config{}, err
	}
	zap.L().Info("database connection established")

	sqlDB, err := gormDB.DB()
	if err != nil {
		return Config{}, err
	}

	redisClient, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, 5)
	if err != nil {
		return Config{}, err
	}
	zap.L().Info("redis connection established")

	// 2. Register Modules & Routes
	if err := registerModules(router, sqlDB, gormDB, redisClient, cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
