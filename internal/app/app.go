package app

import (
	"fmt"
	"os"
	"time"

	"go-hrms/internal/attendance"
	"go-hrms/internal/leave"
	"go-hrms/internal/messaging/kafka"
	"go-hrms/internal/session"
	"go-hrms/internal/shared/connection"
	"go-hrms/internal/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// databaseConfig resolves the driver and DSN from the environment. DB_DSN
// wins when set; otherwise a postgres DSN is assembled from its parts, and
// sqlite falls back to a local file.
func databaseConfig() (string, string) {
	driver := os.Getenv("DB_DRIVER")
	if driver == "" {
		driver = "postgres"
	}
	if dsn := os.Getenv("DB_DSN"); dsn != "" {
		return driver, dsn
	}
	if driver == "sqlite" {
		return driver, "hrms.db"
	}

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
	)
	return driver, dsn
}

func sessionTTL() time.Duration {
	if raw := os.Getenv("SESSION_TTL"); raw != "" {
		if ttl, err := time.ParseDuration(raw); err == nil && ttl > 0 {
			return ttl
		}
		zap.L().Warn("invalid SESSION_TTL, using default", zap.String("value", raw))
	}
	return 24 * time.Hour
}

func BuildApp(router *gin.Engine) error {
	driver, dsn := databaseConfig()
	gormDB, err := connection.ConnectGORMWithRetry(driver, dsn, 5)
	if err != nil {
		return err
	}

	if err := gormDB.AutoMigrate(
		&user.User{},
		&attendance.Attendance{},
		&leave.LeaveRequest{},
		&kafka.OutboxEvent{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}

	sessions := session.NewStore(redisClient, sessionTTL())

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "uploads"
	}
	fileStore, err := user.NewDiskStore(uploadDir)
	if err != nil {
		return err
	}

	return registerModules(router, gormDB, redisClient, sessions, fileStore)
}
