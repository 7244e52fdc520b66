package server

import (
	"context"
	"log/slog"
	"net/http"

	"expense-tracker/internal/config"
	"expense-tracker/internal/database"
	"expense-tracker/internal/handlers"
	"expense-tracker/internal/middleware"
	"expense-tracker/internal/repositories"
	"expense-tracker/internal/services"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Options carries the collaborators that differ between production and tests
type Options struct {
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
	Clock      services.Clock
}

// New wires repositories, services and handlers into an echo instance
func New(cfg *config.Config, db *database.DB, opts Options) *echo.Echo {
	if opts.Registerer == nil {
		opts.Registerer = prometheus.DefaultRegisterer
	}
	if opts.Gatherer == nil {
		opts.Gatherer = prometheus.DefaultGatherer
	}

	recordRepo := repositories.NewRecordRepository(db.DB)
	budgetRepo := repositories.NewBudgetRepository(db.DB)

	metrics := services.NewPrometheusMetrics(opts.Registerer)
	audit := services.NewAuditLogger(slog.Default())

	breakerConfig := services.DefaultStoreBreakerConfig()
	breakerConfig.MaxFailures = cfg.Store.BreakerMaxFailures
	breakerConfig.ResetTimeout = cfg.Store.BreakerResetTimeout
	breakerConfig.OnStateChange = func(from, to services.BreakerState) {
		audit.LogBreakerStateChange(context.Background(), "records", from, to)
	}

	expenseService := services.NewExpenseService(
		recordRepo,
		services.NewStoreBreaker(breakerConfig),
		metrics,
		opts.Clock,
		cfg.Budget.Location,
	)
	budgetService := services.NewBudgetService(
		budgetRepo,
		expenseService,
		metrics,
		audit,
		services.NewCurrencyFormatter(cfg.Currency),
		cfg.Budget.DefaultCeiling,
	)
	tokenService := services.NewTokenService(&cfg.JWT)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler
	e.Validator = handlers.NewValidator()

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(requestLogger())
	e.Use(middleware.SecurityHeaders())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPut, http.MethodPost, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType, middleware.TraceIDHeader},
	}))
	e.Use(echomiddleware.BodyLimit("64K"))
	e.Use(middleware.RateLimiter(cfg.RateLimit))

	healthHandler := handlers.NewHealthCheckHandler(db)
	expenseHandler := handlers.NewExpenseHandler(expenseService)
	budgetHandler := handlers.NewBudgetHandler(budgetService)

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})))

	api := e.Group("/api/v1")
	authenticated := api.Group("", middleware.RequireAuth(tokenService))

	authenticated.GET("/expenses/totals", expenseHandler.GetTotals)
	authenticated.GET("/expenses/records", expenseHandler.GetRecords)
	authenticated.GET("/expenses/categories", expenseHandler.GetCategories)
	authenticated.GET("/budget", budgetHandler.GetBudget)
	authenticated.PUT("/budget", budgetHandler.SetBudget)
	authenticated.POST("/budget/adjust", budgetHandler.AdjustBudget)

	if cfg.IsDevelopment() {
		devHandler := handlers.NewDevHandler(recordRepo, tokenService, services.NewRecordGenerator())
		api.POST("/dev/token", devHandler.IssueToken)
		authenticated.POST("/dev/records/generate", devHandler.GenerateRecords)
		authenticated.DELETE("/dev/records", devHandler.ClearRecords)
		slog.Warn("development endpoints enabled", "prefix", "/api/v1/dev")
	}

	return e
}

func requestLogger() echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			attrs := []any{
				"trace_id", middleware.GetTraceID(c),
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency_ms", v.Latency.Milliseconds(),
			}
			if v.Error != nil {
				slog.Warn("request failed", append(attrs, "error", v.Error.Error())...)
				return nil
			}
			slog.Info("request", attrs...)
			return nil
		},
	})
}
