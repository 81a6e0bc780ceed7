package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	evaluationDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "nugget_insights",
		Subsystem: "achievements",
		Name:      "evaluation_duration_seconds",
		Help:      "Wall time of a full catalog evaluation.",
		Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12),
	})
	earnedGauge = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "nugget_insights",
		Subsystem: "achievements",
		Name:      "earned_total",
		Help:      "Achievements earned in the most recent evaluation, by category.",
	}, []string{"category"})
	recomputeCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "nugget_insights",
		Subsystem: "recompute",
		Name:      "runs_total",
		Help:      "Achievement recompute runs by trigger and outcome.",
	}, []string{"trigger", "outcome"})
)

func init() {
	prometheus.MustRegister(evaluationDuration, earnedGauge, recomputeCounter)
}

// ObserveEvaluation records the wall time of one catalog evaluation.
func ObserveEvaluation(d time.Duration) {
	evaluationDuration.Observe(d.Seconds())
}

// RecordEarned updates the per-category earned gauge after an evaluation.
func RecordEarned(category string, earned int) {
	earnedGauge.WithLabelValues(category).Set(float64(earned))
}

// RecordRecompute counts one recompute run.
func RecordRecompute(trigger string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	recomputeCounter.WithLabelValues(trigger, outcome).Inc()
}
