package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

type corsMiddleware struct {
	cors *cors.Cors
}

func NewCORSMiddleware(allowedOrigins []string) *corsMiddleware {
	return &corsMiddleware{
		cors: cors.New(cors.Options{
			AllowedOrigins: allowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Content-Type", RequestIDHeader},
			ExposedHeaders: []string{RequestIDHeader},
		}),
	}
}

func (m *corsMiddleware) CORS(next http.Handler) http.Handler {
	return m.cors.Handler(next)
}
