package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/saulo-duarte/quizforge-lambda/internal/aiquiz"
	"github.com/saulo-duarte/quizforge-lambda/internal/config"
	"github.com/saulo-duarte/quizforge-lambda/internal/export"
	"github.com/saulo-duarte/quizforge-lambda/internal/health"
	"github.com/saulo-duarte/quizforge-lambda/internal/metrics"
	"github.com/saulo-duarte/quizforge-lambda/internal/middlewares"
	"github.com/saulo-duarte/quizforge-lambda/internal/subjects"
)

type RouterConfig struct {
	AIQuizHandler   *aiquiz.Handler
	ExportHandler   *export.Handler
	SubjectsHandler *subjects.Handler
	HealthHandler   *health.Handler
	Metrics         *metrics.Metrics
	CORS            config.CORS
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.Cors(cfg.CORS))

	r.Method(http.MethodGet, "/metrics", cfg.Metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/", cfg.HealthHandler.Root)
		r.Get("/health", cfg.HealthHandler.Health)
		r.Get("/debug", cfg.HealthHandler.Debug)

		r.Mount("/generate", aiquiz.Routes(cfg.AIQuizHandler))
		r.Mount("/export", export.Routes(cfg.ExportHandler))
		r.Mount("/subjects", subjects.Routes(cfg.SubjectsHandler))
	})
	return r
}
