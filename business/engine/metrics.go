package engine

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	DiscoveryItemsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "why_discovery_items_total",
			Help: "Count of discovery items injected into results, by preset.",
		},
		[]string{"preset"},
	)

	FilteredOutTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "why_filtered_out_items_total",
			Help: "Count of items removed by hard budget/time constraints.",
		},
	)
)

func init() {
	prometheus.MustRegister(DiscoveryItemsTotal, FilteredOutTotal)
}
