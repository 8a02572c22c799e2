package app

import (
	"net/http"
	"time"

	"github.com/usering-around/theory-test-exam/internal/app/observability"
	"github.com/usering-around/theory-test-exam/internal/bank"
	"github.com/usering-around/theory-test-exam/internal/catalog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewRouter(cfg Config, b *bank.Bank) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	catalogSvc := catalog.NewService(b)
	catalogHandler := catalog.NewHandler(catalogSvc)

	collector := observability.NewCollector(catalogSvc)
	r.Use(collector.Middleware)

	limiter := NewIPRateLimiter(cfg.RateLimitPerMin, time.Minute)
	r.Use(RateLimitMiddleware(limiter))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	r.Get("/metrics", collector.MetricsHandler)

	r.Route("/api/v1", func(api chi.Router) {
		api.Get("/questions", catalogHandler.ListQuestions)
		api.Get("/questions/{number}", catalogHandler.GetQuestion)
		api.Get("/categories", catalogHandler.ListCategories)
		api.Get("/bank/errors", catalogHandler.ListRowErrors)
	})

	return r
}
