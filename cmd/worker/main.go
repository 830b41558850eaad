package main

import (
	"go-hrms/internal/app"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Relays staged outbox rows to Kafka. Runs alongside the API binary and
// shares its environment configuration.
func main() {
	_ = godotenv.Load()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	logger.Info("starting outbox worker")
	if err := app.RunWorker(); err != nil {
		logger.Fatal("worker failed", zap.Error(err))
	}
}
