// Package metrics exposes bid placement and relay metrics to Prometheus.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/floroz/bid-manager/internal/domain/bids"
)

const namespace = "bid_manager"

// Metrics implements bids.Recorder and the stream relay's recorder
type Metrics struct {
	bidsResolved      *prometheus.CounterVec
	placementFailures *prometheus.CounterVec
	placementDuration prometheus.Histogram
	lockWait          prometheus.Histogram
	lockAttempts      prometheus.Histogram

	eventsRelayed *prometheus.CounterVec
	poisonEntries prometheus.Counter
	batchFailures prometheus.Counter
}

// NewRegistry creates a new Prometheus registry.
func NewRegistry() *prometheus.Registry {
	return prometheus.NewRegistry()
}

// New creates the collectors and registers them on reg
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		bidsResolved: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bids_resolved_total",
			Help:      "Total number of bids resolved, by terminal status",
		}, []string{"status"}),
		placementFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "placement_failures_total",
			Help:      "Total number of failed bid placements, by error class",
		}, []string{"class"}),
		placementDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "placement_duration_seconds",
			Help:      "Time from receiving a bid to its resolution",
			Buckets:   prometheus.DefBuckets,
		}),
		lockWait: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "lock_wait_seconds",
			Help:      "Time spent waiting for a lot lock",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		}),
		lockAttempts: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "lock_attempts",
			Help:      "Conditional-set attempts needed to take a lot lock",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
		}),
		eventsRelayed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "relay_events_total",
			Help:      "Total number of bid events archived and published, by status",
		}, []string{"status"}),
		poisonEntries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "relay_poison_entries_total",
			Help:      "Total number of undecodable stream entries skipped",
		}),
		batchFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "relay_batch_failures_total",
			Help:      "Total number of relay batches rolled back",
		}),
	}

	reg.MustRegister(
		m.bidsResolved,
		m.placementFailures,
		m.placementDuration,
		m.lockWait,
		m.lockAttempts,
		m.eventsRelayed,
		m.poisonEntries,
		m.batchFailures,
	)
	return m
}

func (m *Metrics) BidResolved(status bids.Status, elapsed time.Duration) {
	m.bidsResolved.WithLabelValues(string(status)).Inc()
	m.placementDuration.Observe(elapsed.Seconds())
}

func (m *Metrics) LockAcquired(wait time.Duration, attempts int) {
	m.lockWait.Observe(wait.Seconds())
	m.lockAttempts.Observe(float64(attempts))
}

func (m *Metrics) PlacementFailed(class string) {
	m.placementFailures.WithLabelValues(class).Inc()
}

func (m *Metrics) EventRelayed(status string) {
	m.eventsRelayed.WithLabelValues(status).Inc()
}

func (m *Metrics) PoisonEntry() {
	m.poisonEntries.Inc()
}

func (m *Metrics) BatchFailed() {
	m.batchFailures.Inc()
}
