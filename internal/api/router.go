package api

import (
	"database/sql"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/fieldline/crm-api/internal/api/handler"
	"github.com/fieldline/crm-api/internal/api/middleware"
	"github.com/fieldline/crm-api/internal/core/domain"
	"github.com/fieldline/crm-api/internal/core/service"
	"github.com/fieldline/crm-api/internal/infrastructure/db/postgres"
	healthhandlers "github.com/fieldline/crm-api/internal/infrastructure/http/handlers"
	"github.com/fieldline/crm-api/pkg/token"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *sql.DB, tokens *token.Manager, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("crm"))

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(db)
	customerRepo := postgres.NewCustomerRepository(db)
	taskRepo := postgres.NewTaskRepository(db)

	authService := service.NewAuthService(userRepo, tokens, log)
	customersService := service.NewCustomersService(customerRepo, log)
	tasksService := service.NewTasksService(taskRepo, userRepo, customerRepo, log)
	usersService := service.NewUsersService(userRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	customerHandler := handler.NewCustomerHandler(customersService)
	taskHandler := handler.NewTaskHandler(tasksService)
	userHandler := handler.NewUserHandler(usersService)

	auth := middleware.Auth(tokens, userRepo)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Customer routes ---
	customers := e.Group("/customers", auth)
	customers.POST("", customerHandler.Create, adminOnly)
	customers.GET("", customerHandler.List)
	customers.GET("/:id", customerHandler.Get)
	customers.PATCH("/:id", customerHandler.Update, adminOnly)
	customers.DELETE("/:id", customerHandler.Delete, adminOnly)

	// --- Task routes ---
	tasks := e.Group("/tasks", auth)
	tasks.POST("", taskHandler.Create, adminOnly)
	tasks.GET("", taskHandler.List)
	tasks.PATCH("/:id/status", taskHandler.UpdateStatus)

	// --- User routes ---
	users := e.Group("/users", auth)
	users.GET("", userHandler.List)
	users.GET("/:id", userHandler.Get)
	users.PATCH("/:id/role", userHandler.UpdateRole, adminOnly)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := healthhandlers.NewHealthHandler()
	readinessHandler := healthhandlers.NewReadinessHandler(db)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
