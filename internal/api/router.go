package api

import (
	"log/slog"
	"net/http"
	"time"

	"repairshop/internal/api/handler"
	mw "repairshop/internal/api/middleware"
	"repairshop/internal/config"
	"repairshop/internal/domain/customer"
	"repairshop/internal/domain/forms"
	"repairshop/internal/domain/ticket"
	"repairshop/internal/infrastructure/errorreport"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/traceid"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type RouterDeps struct {
	CustomerService customer.CustomerService
	TicketService   ticket.TicketService
	Resolver        forms.FormResolver
	Reporter        errorreport.Reporter
}

func SetupRouter(deps RouterDeps, cfg *config.Config, logger *slog.Logger) *chi.Mux {
	router := chi.NewRouter()

	setupMiddleware(router, cfg, logger)
	setupMetricsEndpoint(router, cfg, logger)
	setupAuthRoutes(router, cfg, logger)
	setupCustomerRoutes(router, deps, cfg, logger)
	setupTicketRoutes(router, deps, cfg, logger)
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})
	setupSwaggerEndpoint(router, logger)

	return router
}

func setupMiddleware(router *chi.Mux, cfg *config.Config, logger *slog.Logger) {
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(traceid.Middleware)
	router.Use(mw.StructuredLogger(logger))
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))
	router.Use(middleware.Timeout(60 * time.Second))
	router.Use(mw.NewRateLimiterMiddleware(cfg.Server.RateLimit, logger).Middleware)
	router.Use(mw.MetricsMiddleware())
	router.Use(mw.ResolveIdentity(cfg.Server.Auth, logger))
}

func setupMetricsEndpoint(router *chi.Mux, cfg *config.Config, logger *slog.Logger) {
	metricsPath := cfg.Metrics.Path
	if metricsPath == "" {
		metricsPath = "/metrics"
	}
	logger.Info("Setting up Prometheus metrics endpoint", "path", metricsPath)
	router.Handle(metricsPath, promhttp.Handler())
}

func setupSwaggerEndpoint(router *chi.Mux, logger *slog.Logger) {
	logger.Info("Setting up Swagger UI endpoint", "path", "/swagger/")
	router.Get("/swagger/*", httpSwagger.WrapHandler)
	router.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/swagger/index.html", http.StatusMovedPermanently)
	})
}

func setupAuthRoutes(router *chi.Mux, cfg *config.Config, logger *slog.Logger) {
	authHandler := handler.NewAuthHandler(cfg.Server.Auth, logger)
	router.Route("/auth", func(r chi.Router) {
		r.Post("/token", authHandler.GenerateBearerToken)
	})
}

func setupCustomerRoutes(router chi.Router, deps RouterDeps, cfg *config.Config, logger *slog.Logger) {
	h := handler.NewCustomerHandler(deps.CustomerService, deps.Resolver, deps.Reporter, cfg.Server.Auth.LoginURL, logger)

	router.Route("/customers", func(r chi.Router) {
		r.Get("/form", h.GetCustomerForm)
		r.Post("/form", h.SaveCustomer)
	})
}

func setupTicketRoutes(router chi.Router, deps RouterDeps, cfg *config.Config, logger *slog.Logger) {
	h := handler.NewTicketHandler(deps.TicketService, deps.Resolver, deps.Reporter, cfg.Server.Auth.LoginURL, logger)

	router.Route("/tickets", func(r chi.Router) {
		r.Get("/form", h.GetTicketForm)
		r.Post("/form", h.SaveTicket)
	})
}
