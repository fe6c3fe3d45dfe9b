package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of the recommend HTTP handler
	RecommendLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "why_recommend_latency_seconds",
		Help:    "Latency of the recommend handler",
		Buckets: prometheus.DefBuckets,
	})

	// Total number of recommend requests served
	RecommendRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "why_recommend_requests_total",
			Help: "Total number of recommend requests by domain and preset",
		},
		[]string{"domain", "preset"},
	)

	// Catalog records dropped at load time because they violate invariants
	InvalidCatalogRecords = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "why_invalid_catalog_records_total",
			Help: "Catalog records skipped at load time by domain",
		},
		[]string{"domain"},
	)

	// Explanation generation fallbacks from LLM to templates
	ExplainFallbacks = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "why_explain_fallbacks_total",
		Help: "How many times explanation generation fell back to templates",
	})
)

func Init() {
	prometheus.MustRegister(
		RecommendLatency,
		RecommendRequests,
		InvalidCatalogRecords,
		ExplainFallbacks,
	)
}
