package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const (
	ENDPOINT_DIMENSION = "endpoint"
	STATUS_DIMENSION   = "status"
	ROUTE_DIMENSION    = "route"
	CODE_DIMENSION     = "code"
)

var UpstreamRequestCount = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "clashberry_upstream_requests_total",
		Help: "Total number of requests sent to the Clash API",
	},
	[]string{ENDPOINT_DIMENSION, STATUS_DIMENSION}, // endpoint: "clan", "currentwar"; status: HTTP status code or "error"
)

var UpstreamRequestDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "clashberry_upstream_request_duration_ms",
		Help:    "Time taken by Clash API requests in milliseconds",
		Buckets: []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000, 10000},
	},
	[]string{ENDPOINT_DIMENSION},
)

var ResponseCount = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "clashberry_responses_total",
		Help: "Total number of gateway responses by route and result code",
	},
	[]string{ROUTE_DIMENSION, CODE_DIMENSION}, // code: "ok" or the error code of the body
)

// Registry holds every gateway metric and is what /metrics serves
var Registry = prometheus.NewRegistry()

func init() {
	Registry.MustRegister(UpstreamRequestCount)
	Registry.MustRegister(UpstreamRequestDuration)
	Registry.MustRegister(ResponseCount)
	Registry.MustRegister(collectors.NewGoCollector())
	Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
}
