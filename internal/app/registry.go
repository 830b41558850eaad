package app

import (
	"go-hrms/internal/attendance"
	"go-hrms/internal/auth"
	"go-hrms/internal/dashboard"
	"go-hrms/internal/leave"
	"go-hrms/internal/messaging/kafka"
	"go-hrms/internal/payroll"
	"go-hrms/internal/session"
	"go-hrms/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	gormDB *gorm.DB,
	rdb *redis.Client,
	sessions *session.Store,
	files user.FileStore,
) error {
	// --- Repositories ---
	userRepo := user.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(gormDB)

	// --- Services ---
	authService := auth.NewService(gormDB, userRepo, sessions, outboxRepo)
	userService := user.NewService(gormDB, userRepo, files)
	attendanceService := attendance.NewService(gormDB, attendanceRepo)
	leaveService := leave.NewService(gormDB, leaveRepo, attendanceRepo, outboxRepo)
	payrollService := payroll.NewService(gormDB, userRepo, rdb)
	dashboardService := dashboard.NewService(userRepo, attendanceRepo, leaveRepo)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	userHandler := user.NewHandler(userService)
	attendanceHandler := attendance.NewHandler(attendanceService)
	leaveHandler := leave.NewHandler(leaveService)
	payrollHandler := payroll.NewHandler(payrollService)
	dashboardHandler := dashboard.NewHandler(dashboardService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler, sessions)
		user.RegisterRoutes(api, userHandler, sessions)
		attendance.RegisterRoutes(api, attendanceHandler, sessions)
		leave.RegisterRoutes(api, leaveHandler, sessions)
		payroll.RegisterRoutes(api, payrollHandler, sessions)
		dashboard.RegisterRoutes(api, dashboardHandler, sessions)
	}

	return nil
}
