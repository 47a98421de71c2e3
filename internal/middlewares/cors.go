package middlewares

import (
	"net/http"

	"github.com/rs/cors"

	"github.com/saulo-duarte/quizforge-lambda/internal/config"
)

// Cors returns the CORS middleware for the browser review UI.
func Cors(cfg config.CORS) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   cfg.AllowedMethods,
		AllowedHeaders:   cfg.AllowedHeaders,
		ExposedHeaders:   []string{"X-Generation-ID", "X-Request-Id"},
		AllowCredentials: cfg.AllowCredentials,
	})
	return c.Handler
}
