// control/metrics.go
// Author: momentics <momentics@gmail.com>
//
// Prometheus metrics over pool statistics. PoolCollector snapshots the
// pool on every scrape; the submission counters (accepted and rejected) are
// incremented by the owning application through Counters.

package control

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/momentics/hioload-threads/threadpool"
)

// StatsProvider yields pool statistics snapshots. *threadpool.Pool
// implements it.
type StatsProvider interface {
	ID() string
	Stats() threadpool.Stats
}

// NewRegistry returns a registry whose metrics carry the pool instance id
// as a label.
func NewRegistry(poolID string) (*prometheus.Registry, prometheus.Registerer) {
	reg := prometheus.NewRegistry()
	return reg, prometheus.WrapRegistererWith(prometheus.Labels{"pool": poolID}, reg)
}

// PoolCollector exposes worker-state and queue-depth gauges.
type PoolCollector struct {
	pool StatsProvider

	workersDesc *prometheus.Desc
	queueDesc   *prometheus.Desc
	lockedDesc  *prometheus.Desc
}

// NewPoolCollector builds a collector over the given pool.
func NewPoolCollector(pool StatsProvider) *PoolCollector {
	labels := prometheus.Labels{"pool": pool.ID()}
	return &PoolCollector{
		pool: pool,
		workersDesc: prometheus.NewDesc(
			"hioload_threads_workers",
			"Worker count by status.",
			[]string{"status"}, labels,
		),
		queueDesc: prometheus.NewDesc(
			"hioload_threads_queue_depth",
			"Submission queue depth by queue.",
			[]string{"queue"}, labels,
		),
		lockedDesc: prometheus.NewDesc(
			"hioload_threads_submissions_locked",
			"1 when task intake is locked.",
			nil, labels,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *PoolCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.workersDesc
	ch <- c.queueDesc
	ch <- c.lockedDesc
}

// Collect implements prometheus.Collector.
func (c *PoolCollector) Collect(ch chan<- prometheus.Metric) {
	st := c.pool.Stats()

	ch <- prometheus.MustNewConstMetric(c.workersDesc, prometheus.GaugeValue, float64(st.Available), "available")
	ch <- prometheus.MustNewConstMetric(c.workersDesc, prometheus.GaugeValue, float64(st.Executing), "executing")
	ch <- prometheus.MustNewConstMetric(c.workersDesc, prometheus.GaugeValue, float64(st.Purging), "purging")
	ch <- prometheus.MustNewConstMetric(c.workersDesc, prometheus.GaugeValue, float64(st.Pausing), "pausing")

	ch <- prometheus.MustNewConstMetric(c.queueDesc, prometheus.GaugeValue, float64(st.FreshTasks), "fresh_objects")
	ch <- prometheus.MustNewConstMetric(c.queueDesc, prometheus.GaugeValue, float64(st.MissedTasks), "missed_objects")
	ch <- prometheus.MustNewConstMetric(c.queueDesc, prometheus.GaugeValue, float64(st.FreshCallbacks), "fresh_callbacks")
	ch <- prometheus.MustNewConstMetric(c.queueDesc, prometheus.GaugeValue, float64(st.MissedCallbacks), "missed_callbacks")

	locked := 0.0
	if st.SubmissionLocked {
		locked = 1
	}
	ch <- prometheus.MustNewConstMetric(c.lockedDesc, prometheus.GaugeValue, locked)
}

// Counters are submission-side counters maintained by the application.
type Counters struct {
	SubmittedTasks     prometheus.Counter
	SubmittedCallbacks prometheus.Counter
	RejectedSubmits    prometheus.Counter
}

// NewCounters registers the submit counters with the given registerer.
func NewCounters(reg prometheus.Registerer) *Counters {
	return &Counters{
		SubmittedTasks: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "hioload_threads_submitted_tasks_total",
			Help: "Accepted object-task submissions.",
		}),
		SubmittedCallbacks: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "hioload_threads_submitted_callbacks_total",
			Help: "Accepted callback-task submissions.",
		}),
		RejectedSubmits: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "hioload_threads_rejected_submits_total",
			Help: "Submissions refused because the pool was locked or full.",
		}),
	}
}
