package observability_test

import (
	"time"

	"exercisetracker/internal/observability"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

var _ = Describe("HTTPMetrics", func() {
	var (
		reg     *prometheus.Registry
		metrics *observability.HTTPMetrics
	)

	BeforeEach(func() {
		reg = prometheus.NewRegistry()
		metrics = observability.NewHTTPMetrics(reg)
	})

	It("should count requests per route, method and code", func() {
		metrics.ObserveRequest("GET /api/users", "GET", 200, 10*time.Millisecond)
		metrics.ObserveRequest("GET /api/users", "GET", 200, 20*time.Millisecond)
		metrics.ObserveRequest("", "GET", 404, time.Millisecond)

		count, err := testutil.GatherAndCount(reg, "exercise_tracker_http_requests_total")
		Expect(err).NotTo(HaveOccurred())
		Expect(count).To(Equal(2))

		count, err = testutil.GatherAndCount(reg, "exercise_tracker_http_request_duration_seconds")
		Expect(err).NotTo(HaveOccurred())
		Expect(count).To(Equal(2))
	})

	It("should fold non standard methods into a single label value", func() {
		metrics.ObserveRequest("", "PROPFIND", 405, time.Millisecond)
		metrics.ObserveRequest("", "X-RANDOM-1", 405, time.Millisecond)
		metrics.ObserveRequest("", "X-RANDOM-2", 405, time.Millisecond)

		Expect(testutil.CollectAndCount(metrics.Requests(), "exercise_tracker_http_requests_total")).To(Equal(1))
		Expect(testutil.ToFloat64(metrics.Requests().WithLabelValues("unmatched", "other", "405"))).To(Equal(3.0))
	})

	It("should refuse to register twice on the same registry", func() {
		Expect(func() { observability.NewHTTPMetrics(reg) }).To(Panic())
	})
})
