package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"

	"exercisetracker/internal/http/handler/middleware"
	"exercisetracker/internal/observability"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/zap"
)

var _ = Describe("Middleware", func() {
	var (
		w   *httptest.ResponseRecorder
		req *http.Request
	)

	BeforeEach(func() {
		w = httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodGet, "/api/users", nil)
	})

	Describe("RequestID", func() {
		var seen string

		JustBeforeEach(func() {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = middleware.RequestIDFrom(r.Context())
			})
			middleware.NewRequestIDMiddleware().RequestID(next).ServeHTTP(w, req)
		})

		When("the caller sends no id", func() {
			It("should generate one", func() {
				Expect(uuid.Validate(seen)).To(Succeed())
				Expect(w.Header().Get(middleware.RequestIDHeader)).To(Equal(seen))
			})
		})

		When("the caller sends an id", func() {
			BeforeEach(func() {
				req.Header.Set(middleware.RequestIDHeader, "abc-123")
			})

			It("should reuse it", func() {
				Expect(seen).To(Equal("abc-123"))
				Expect(w.Header().Get(middleware.RequestIDHeader)).To(Equal("abc-123"))
			})
		})
	})

	Describe("Logging", func() {
		var reg *prometheus.Registry

		BeforeEach(func() {
			reg = prometheus.NewRegistry()
			mux := http.NewServeMux()
			mux.HandleFunc("GET /api/users", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusTeapot)
			})

			metrics := observability.NewHTTPMetrics(reg)
			handler := middleware.NewLoggingMiddleware(zap.NewNop().Sugar(), metrics).Logging(mux)
			handler.ServeHTTP(w, req)
		})

		It("should pass the response through and record it under its route", func() {
			Expect(w.Code).To(Equal(http.StatusTeapot))

			expected := `
# HELP exercise_tracker_http_requests_total Number of HTTP requests handled, by route, method and status code.
# TYPE exercise_tracker_http_requests_total counter
exercise_tracker_http_requests_total{code="418",method="GET",route="GET /api/users"} 1
`
			Expect(testutil.GatherAndCompare(reg, strings.NewReader(expected), "exercise_tracker_http_requests_total")).To(Succeed())
		})
	})

	Describe("CORS", func() {
		It("should answer preflight requests for allowed origins", func() {
			req = httptest.NewRequest(http.MethodOptions, "/api/users", nil)
			req.Header.Set("Origin", "http://client.test")
			req.Header.Set("Access-Control-Request-Method", http.MethodPost)

			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })
			middleware.NewCORSMiddleware([]string{"*"}).CORS(next).ServeHTTP(w, req)

			Expect(called).To(BeFalse())
			Expect(w.Header().Get("Access-Control-Allow-Origin")).To(Equal("*"))
		})

		It("should not allow unknown origins", func() {
			req.Header.Set("Origin", "http://evil.test")
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
			middleware.NewCORSMiddleware([]string{"http://client.test"}).CORS(next).ServeHTTP(w, req)

			Expect(w.Header().Get("Access-Control-Allow-Origin")).To(BeEmpty())
		})
	})
})
