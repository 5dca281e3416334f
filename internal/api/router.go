package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/brygada/work-manager/internal/api/handler"
	"github.com/brygada/work-manager/internal/api/middleware"
	"github.com/brygada/work-manager/internal/core/domain"
	"github.com/brygada/work-manager/internal/core/ports"
	"github.com/brygada/work-manager/internal/core/service"
)

// Options carries the router's external collaborators.
type Options struct {
	Store        ports.Store
	StoreBackend string
	JWTSecret    string
	Logger       zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("workmanager"))

	// --- Dependencies ---
	// Services write through the instrumented store so every successful
	// save is counted per backend. The readiness probe pings the raw one.
	store := instrumentStore(opts.Store, opts.StoreBackend)
	authService := service.NewAuthService(store, opts.JWTSecret, 24*time.Hour, opts.Logger)
	employeeService := service.NewEmployeeService(store, opts.Logger)
	entryService := service.NewEntryService(store, opts.Logger)
	approvalService := service.NewApprovalService(store, opts.Logger)
	reportService := service.NewReportService(store, opts.Logger)

	authHandler := handler.NewAuthHandler(authService)
	employeeHandler := handler.NewEmployeeHandler(employeeService)
	entryHandler := handler.NewEntryHandler(entryService)
	approvalHandler := handler.NewApprovalHandler(approvalService)
	reportHandler := handler.NewReportHandler(reportService)

	authenticated := middleware.Auth(opts.JWTSecret)
	crewLeadOnly := middleware.RequireRole(domain.RoleCrewLead)
	accountantOnly := middleware.RequireRole(domain.RoleAccountant)

	// --- Auth ---
	e.POST("/api/login", authHandler.Login)

	// --- Employees ---
	e.GET("/api/pracownicy", employeeHandler.List, authenticated)
	e.POST("/api/pracownicy", employeeHandler.Create, authenticated, crewLeadOnly)
	e.DELETE("/api/pracownicy/:id", employeeHandler.Delete, authenticated, crewLeadOnly)
	e.PUT("/api/pracownicy/:id/stawka", employeeHandler.UpdateRate, authenticated, accountantOnly)

	// --- Time entries ---
	e.GET("/api/wpisy/:rok/:miesiac", entryHandler.List, authenticated)
	e.POST("/api/wpisy", entryHandler.Create, authenticated, crewLeadOnly)
	e.PUT("/api/wpisy/:id", entryHandler.Update, authenticated, crewLeadOnly)
	e.DELETE("/api/wpisy/:id", entryHandler.Delete, authenticated, crewLeadOnly)

	// --- Approvals ---
	e.GET("/api/zatwierdzenie/:rok/:miesiac", approvalHandler.Status, authenticated)
	e.POST("/api/zatwierdzenie/:rok/:miesiac", approvalHandler.Approve, authenticated, accountantOnly)
	e.DELETE("/api/zatwierdzenie/:rok/:miesiac", approvalHandler.Revoke, authenticated, accountantOnly)

	// --- Reports ---
	e.GET("/api/raport/:rok/:miesiac", reportHandler.Generate, authenticated)
	e.GET("/api/eksport/csv/:rok/:miesiac", reportHandler.ExportCSV, authenticated)

	// --- Probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	e.GET("/health", healthHandler.Liveness)
	if pinger, ok := opts.Store.(ports.Pinger); ok {
		readinessHandler := handler.NewReadinessHandler(opts.StoreBackend, pinger)
		e.GET("/health/ready", readinessHandler.Readiness)
	}
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
