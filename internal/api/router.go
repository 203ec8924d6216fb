package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	redisclient "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/worksync/attendance-system/internal/api/handler"
	"github.com/worksync/attendance-system/internal/api/middleware"
	"github.com/worksync/attendance-system/internal/core/domain"
	"github.com/worksync/attendance-system/internal/core/service"
	"github.com/worksync/attendance-system/internal/infrastructure/config"
	mongodb "github.com/worksync/attendance-system/internal/infrastructure/db/mongo"
	redisdb "github.com/worksync/attendance-system/internal/infrastructure/db/redis"
	"github.com/worksync/attendance-system/pkg/logger"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redisclient.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("attendance"))

	// --- Dependencies ---
	employeeRepo := mongodb.NewEmployeeRepository(db)
	attendanceRepo := mongodb.NewAttendanceRepository(db)
	requestRepo := mongodb.NewRequestRepository(db)
	loginLimiter := redisdb.NewLoginLimiter(rdb, cfg.Login.MaxAttempts, cfg.Login.Window)

	authService := service.NewAuthService(employeeRepo, loginLimiter, cfg.JWTSecret, cfg.TokenTTL, logger.For("auth"))
	employeeService := service.NewEmployeeService(employeeRepo, attendanceRepo, requestRepo, logger.For("employees"))
	attendanceService := service.NewAttendanceService(attendanceRepo, employeeRepo, logger.For("attendance"))
	requestService := service.NewRequestService(requestRepo, employeeRepo, logger.For("requests"))
	summaryService := service.NewSummaryService(employeeRepo, attendanceRepo)

	authHandler := handler.NewAuthHandler(authService)
	employeeHandler := handler.NewEmployeeHandler(employeeService)
	attendanceHandler := handler.NewAttendanceHandler(attendanceService)
	requestHandler := handler.NewRequestHandler(requestService)
	summaryHandler := handler.NewSummaryHandler(summaryService)

	authMiddleware := middleware.Auth(cfg.JWTSecret)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Public routes ---
	e.POST("/signup", authHandler.Signup)
	e.POST("/login", authHandler.Login)
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Authenticated routes ---
	auth := e.Group("", authMiddleware)

	auth.GET("/attendance/today", attendanceHandler.Today)
	auth.POST("/attendance/checkin", attendanceHandler.CheckIn)
	auth.POST("/attendance/checkout", attendanceHandler.CheckOut)

	auth.POST("/requests", requestHandler.Submit)
	auth.GET("/requests/my-requests", requestHandler.ListMine)

	auth.GET("/employees", employeeHandler.List)
	auth.GET("/employees/:id", employeeHandler.Get)
	auth.GET("/employees/:id/recent-attendance", employeeHandler.RecentAttendance)

	// --- Admin routes ---
	auth.GET("/requests", requestHandler.ListAll, adminOnly)
	auth.PATCH("/requests/:id", requestHandler.Decide, adminOnly)

	auth.POST("/employees", employeeHandler.Create, adminOnly)
	auth.PATCH("/employees/:id", employeeHandler.Update, adminOnly)
	auth.DELETE("/employees/:id", employeeHandler.Delete, adminOnly)

	auth.GET("/summary", summaryHandler.Summary, adminOnly)

	return e
}
