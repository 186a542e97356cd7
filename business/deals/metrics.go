package deals

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	CandidatesExaminedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "deals_candidates_examined_total",
			Help: "Count of product records read from the store, by platform.",
		},
		[]string{"platform"},
	)

	CandidatesAdmittedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "deals_candidates_admitted_total",
			Help: "Count of product records admitted into a top-N selection, by platform.",
		},
		[]string{"platform"},
	)

	RetrievalFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "deals_retrieval_failures_total",
			Help: "Count of platform retrievals that failed and degraded to an empty list.",
		},
		[]string{"platform"},
	)

	CycleDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "deals_cycle_duration_seconds",
		Help:    "Duration of a full top deals retrieval cycle.",
		Buckets: prometheus.DefBuckets,
	})
)

func init() {
	prometheus.MustRegister(
		CandidatesExaminedTotal,
		CandidatesAdmittedTotal,
		RetrievalFailuresTotal,
		CycleDuration,
	)
}
