package main

import (
	"go-encash/internal/app"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Worker terpisah dari API: drain outbox ke Kafka tanpa ikut lifecycle HTTP.
func main() {
	_ = godotenv.Load()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	if err := app.RunWorker(); err != nil {
		logger.Fatal("outbox worker failed", zap.Error(err))
	}
}
