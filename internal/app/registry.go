package app

import (
	"database/sql"

	"humanage/internal/attendance"
	"humanage/internal/auth"
	"humanage/internal/employee"
	"humanage/internal/messaging/kafka"
	"humanage/internal/payroll"
	"humanage/internal/performance"
	"humanage/internal/rbac"
	"humanage/internal/rbac/infra"
	"humanage/internal/shared/counter"

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
	logger *zap.Logger,
) error {
	// --- Repositories ---
	rbacRepo := rbac.NewRepository(gormDB)
	authRepo := auth.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)
	payrollRepo := payroll.NewRepository(gormDB)
	performanceRepo := performance.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(rbacRepo, enforcer)

	// --- Services ---
	authService := auth.NewService(authRepo)
	employeeService := employee.NewServiceWithOutbox(db, employeeRepo, counterRepo, outboxRepo, rdb, logger)
	attendanceService := attendance.NewService(db, attendanceRepo, logger)
	// The employee service doubles as the payroll engine's daily rate source.
	payrollService := payroll.NewServiceWithOutbox(db, payrollRepo, employeeService, outboxRepo, logger)
	performanceService := performance.NewService(db, performanceRepo, logger)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	employeeHandler := employee.NewHandler(employeeService, logger)
	attendanceHandler := attendance.NewHandler(attendanceService, logger)
	payrollHandler := payroll.NewHandlerWithRedis(payrollService, rdb)
	performanceHandler := performance.NewHandler(performanceService, logger)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		employee.RegisterRoutes(api, employeeHandler, rbacService, logger)
		attendance.RegisterRoutes(api, attendanceHandler, rbacService)
		payroll.RegisterRoutes(api, payrollHandler, rbacService, rdb)
		performance.RegisterRoutes(api, performanceHandler, rbacService)
	}

	return nil
}
