package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Search outcomes used as the "outcome" label.
const (
	OutcomeHit      = "hit"      // at least one result
	OutcomeEmpty    = "empty"    // ran, nothing matched
	OutcomeBlank    = "blank"    // blank query, engine not consulted
	OutcomeRejected = "rejected" // validation failed
)

var (
	searchQueries = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "discovery_search_queries_total",
			Help: "Search queries by outcome.",
		},
		[]string{"outcome"},
	)

	searchResults = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "discovery_search_results",
			Help:    "Number of results returned per search.",
			Buckets: []float64{0, 1, 2, 5, 10, 20, 50, 100},
		},
	)

	searchTopConfidence = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "discovery_search_top_confidence",
			Help:    "Confidence of the best result per non-empty search.",
			Buckets: []float64{15, 30, 45, 60, 75, 90, 100},
		},
	)

	datasetLoads = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "discovery_dataset_loads_total",
			Help: "Datasets installed, by source (remote, fallback, manual).",
		},
		[]string{"source"},
	)

	datasetRecords = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "discovery_dataset_records",
			Help: "Records in the installed dataset, by collection.",
		},
		[]string{"collection"},
	)
)

func init() {
	prometheus.MustRegister(searchQueries, searchResults, searchTopConfidence, datasetLoads, datasetRecords)
}

// ObserveSearch records one search. topConfidence is ignored when results is 0.
func ObserveSearch(outcome string, results, topConfidence int) {
	searchQueries.WithLabelValues(outcome).Inc()
	if outcome == OutcomeRejected || outcome == OutcomeBlank {
		return
	}
	searchResults.Observe(float64(results))
	if results > 0 {
		searchTopConfidence.Observe(float64(topConfidence))
	}
}

// ObserveDatasetLoad records an installed dataset and its collection sizes.
func ObserveDatasetLoad(source string, faculty, papers, patents, projects int) {
	datasetLoads.WithLabelValues(source).Inc()
	datasetRecords.WithLabelValues("faculty").Set(float64(faculty))
	datasetRecords.WithLabelValues("papers").Set(float64(papers))
	datasetRecords.WithLabelValues("patents").Set(float64(patents))
	datasetRecords.WithLabelValues("projects").Set(float64(projects))
}
