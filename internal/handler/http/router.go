package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/expenseflow/expense-backend-go/internal/config"
	"github.com/expenseflow/expense-backend-go/internal/handler/http/middleware"
	"github.com/expenseflow/expense-backend-go/internal/observability/metrics"
)

func NewRouter(cfg *config.Config, companyHandler CompanyHandler, userHandler UserHandler, expenseHandler ExpenseHandler, approvalHandler ApprovalHandler) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "expenseflow"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))
	r.Use(metrics.HTTPMetricsMiddleware)

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.MockAuth)

		r.Route("/companies", func(r chi.Router) {
			r.Get("/", companyHandler.Get)
			r.Post("/", companyHandler.Create)
			r.Put("/", companyHandler.Update)
			r.Delete("/", companyHandler.Delete)
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/", userHandler.Get)
			r.Post("/", userHandler.Create)
			r.Put("/", userHandler.Update)
			r.Delete("/", userHandler.Delete)
		})

		r.Route("/expenses", func(r chi.Router) {
			r.Get("/", expenseHandler.Get)
			r.Post("/", expenseHandler.Create)
			r.Put("/", expenseHandler.Update)
			r.Delete("/", expenseHandler.Delete)
		})

		// Approvals act on another user's expense; an anonymous fallback
		// identity is not enough here.
		r.Route("/approvals", func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Get("/", approvalHandler.Get)
			r.Post("/", approvalHandler.Create)
			r.Put("/", approvalHandler.Update)
			r.Delete("/", approvalHandler.Delete)
		})
	})
	return r
}
