package metrics

import "github.com/prometheus/client_golang/prometheus"

// NewScheduleRunsTotal returns a Prometheus counter vector for completed
// schedule runs, labeled by dispatch strategy.
func NewScheduleRunsTotal() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "schedule_runs_total",
		Help: "Total number of schedule runs by strategy",
	}, []string{"strategy"})
}

// NewScheduleNPS returns a Prometheus histogram of the NPS produced by
// schedule runs.
func NewScheduleNPS() prometheus.Histogram {
	return prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "schedule_nps",
		Help:    "Net Promoter Score of schedule runs",
		Buckets: prometheus.LinearBuckets(-100, 25, 9),
	})
}

// NewRateLimitExceededTotal returns a Prometheus counter for the number of
// rejected HTTP requests due to rate limiting.
func NewRateLimitExceededTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rate_limit_exceeded_total",
		Help: "Total number of rejected HTTP requests due to rate limiting",
	})
}
