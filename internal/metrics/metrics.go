package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"reprocheck/internal/models"
)

var (
	analysesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reprocheck_analyses_total",
			Help: "Total analysis runs by outcome",
		},
		[]string{"outcome"},
	)

	findingsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reprocheck_findings_total",
			Help: "Total alignment findings by kind",
		},
		[]string{"kind"},
	)

	analysisDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "reprocheck_analysis_duration_seconds",
			Help:    "Wall time of the full analysis pipeline",
			Buckets: prometheus.DefBuckets,
		},
	)
)

var initOnce sync.Once

// Init registers the collectors. Must be called once at startup.
func Init() {
	initOnce.Do(func() {
		prometheus.MustRegister(analysesTotal, findingsTotal, analysisDuration)
	})
}

// RecordAnalysis records one pipeline run and its duration.
// Outcome is "ok", "extraction_error" or "invalid_input".
func RecordAnalysis(outcome string, dur time.Duration) {
	analysesTotal.WithLabelValues(outcome).Inc()
	if outcome == "ok" {
		analysisDuration.Observe(dur.Seconds())
	}
}

// RecordFindings counts the findings of a completed run by kind.
func RecordFindings(findings []models.AlignmentFinding) {
	for _, f := range findings {
		findingsTotal.WithLabelValues(string(f.Kind)).Inc()
	}
}
