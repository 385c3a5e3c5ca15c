package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/99minutos/dpd-compiler/internal/api/handler"
	"github.com/99minutos/dpd-compiler/internal/api/middleware"
	"github.com/99minutos/dpd-compiler/internal/core/ports"
	"github.com/99minutos/dpd-compiler/internal/core/validation"
)

// Deps are the collaborators the router wires into handlers.
type Deps struct {
	Compiler   ports.Compiler
	Auth       ports.AuthService
	Settings   handler.SettingsReader
	Events     ports.EventService
	Dispatcher handler.EventDispatcher
	Checks     map[string]handler.Check
	JWTSecret  string
	Log        zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = validation.NewStructValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(d.Log))
	e.Use(echoprometheus.NewMiddleware("dpd_http"))

	// --- Operational routes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(d.Checks)

	e.GET("/health", healthHandler.Liveness)            // liveness: is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness: are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Authenticated API ---
	v1 := e.Group("/v1", middleware.Auth(d.JWTSecret))
	anyRole := middleware.RBAC(middleware.RoleAdmin, middleware.RoleOperator)
	adminOnly := middleware.RBAC(middleware.RoleAdmin)

	if d.Auth != nil {
		auth := handler.NewAuthHandler(d.Auth)
		e.POST("/auth/login", auth.Login)
		v1.POST("/operators", auth.Register, adminOnly)
	}

	shipments := handler.NewShipmentHandler(d.Compiler)
	v1.POST("/shipments/compile", shipments.Compile, anyRole)
	v1.POST("/shipments", shipments.Submit, anyRole)
	v1.POST("/labels/compile", shipments.CompileLabel, anyRole)
	v1.POST("/labels", shipments.SubmitLabel, anyRole)
	v1.GET("/postal-codes/:zip", shipments.FindPostalCode, anyRole)
	v1.GET("/courier-availability/:zip", shipments.CourierAvailability, anyRole)

	cfg := handler.NewConfigHandler(d.Compiler, d.Settings)
	v1.GET("/config", cfg.Get, anyRole)
	v1.PUT("/config/generation-policy", cfg.SetGenerationPolicy, adminOnly)
	v1.PUT("/config/pickup-address", cfg.SetPickupAddress, adminOnly)

	if d.Events != nil {
		events := handler.NewEventHandler(d.Events, d.Dispatcher)
		v1.GET("/events", events.Customer, anyRole)
		v1.GET("/events/:waybill", events.Waybill, anyRole)
		v1.POST("/events/confirm/:confirmId", events.Confirm, adminOnly)
	}

	return e
}
