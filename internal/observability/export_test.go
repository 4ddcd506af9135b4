package observability

import "github.com/prometheus/client_golang/prometheus"

func (m *HTTPMetrics) Requests() *prometheus.CounterVec {
	return m.requests
}
