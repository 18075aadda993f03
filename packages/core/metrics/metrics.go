// Package metrics exposes Prometheus counters for the skill ingestion
// pipeline.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	BatchesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gitadora_skill_batches_total",
		Help: "Number of skill record batches accepted for ingestion.",
	})

	RecordsStoredTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gitadora_skill_records_stored_total",
		Help: "Number of skill records stored.",
	})

	// RecordsRejectedTotal is labeled by pipeline stage: "validation" or
	// "storage".
	RecordsRejectedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gitadora_skill_records_rejected_total",
		Help: "Number of skill records rejected, by pipeline stage.",
	}, []string{"stage"})

	AggregationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gitadora_skill_aggregations_total",
		Help: "Number of skill history snapshots computed.",
	})

	AggregationFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gitadora_skill_aggregation_failures_total",
		Help: "Number of per-instrument aggregation runs that failed.",
	})
)

const (
	StageValidation = "validation"
	StageStorage    = "storage"
)

// Handler serves the default registry for the /metrics route.
func Handler() http.Handler {
	return promhttp.Handler()
}
