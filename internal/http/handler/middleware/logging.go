package middleware

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

// RequestObserver receives one observation per handled request.
type RequestObserver interface {
	ObserveRequest(route, method string, code int, elapsed time.Duration)
}

type loggingMiddleware struct {
	logs     *zap.SugaredLogger
	observer RequestObserver
}

func NewLoggingMiddleware(logger *zap.SugaredLogger, observer RequestObserver) *loggingMiddleware {
	return &loggingMiddleware{
		logs:     logger,
		observer: observer,
	}
}

func (m *loggingMiddleware) Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		elapsed := time.Since(start)
		// r.Pattern is filled in by the ServeMux once it has matched a route.
		m.observer.ObserveRequest(r.Pattern, r.Method, rec.status, elapsed)
		m.logs.Infow("request handled",
			"method", r.Method,
			"path", r.URL.Path,
			"route", r.Pattern,
			"status", rec.status,
			"duration", elapsed,
			"request_id", RequestIDFrom(r.Context()))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (s *statusRecorder) WriteHeader(code int) {
	if !s.wroteHeader {
		s.status = code
		s.wroteHeader = true
	}
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Unwrap() http.ResponseWriter {
	return s.ResponseWriter
}
