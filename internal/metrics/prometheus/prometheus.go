package prometheus

import (
	"time"

	"github.com/sheikh-saqib/bank-account-ledger/internal/metrics"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector implements metrics.Collector for Prometheus.
type Collector struct {
	operations     *prometheus.CounterVec
	latency        *prometheus.HistogramVec
	accountsOpened *prometheus.CounterVec
	published      *prometheus.CounterVec
}

var _ metrics.Collector = (*Collector)(nil)

// NewCollector creates a new Prometheus metrics collector.
func NewCollector(namespace string) *Collector {
	return &Collector{
		operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "operations_total",
				Help:      "Total number of ledger operations by outcome",
			},
			[]string{"operation", "outcome"},
		),
		latency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "operation_duration_seconds",
				Help:      "Ledger operation latency in seconds",
				Buckets:   []float64{.00001, .00005, .0001, .0005, .001, .005, .01, .05},
			},
			[]string{"operation"},
		),
		accountsOpened: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "accounts_opened_total",
				Help:      "Total number of accounts opened per category",
			},
			[]string{"category"},
		),
		published: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "events_published_total",
				Help:      "Total number of published events per topic and status",
			},
			[]string{"topic", "status"},
		),
	}
}

// Register registers all metrics with the given Prometheus registry.
func (c *Collector) Register(registry prometheus.Registerer) error {
	collectors := []prometheus.Collector{
		c.operations,
		c.latency,
		c.accountsOpened,
		c.published,
	}

	for _, collector := range collectors {
		if err := registry.Register(collector); err != nil {
			return err
		}
	}

	return nil
}

func (c *Collector) RecordOperation(op string, outcome string, duration time.Duration) {
	c.operations.WithLabelValues(op, outcome).Inc()
	c.latency.WithLabelValues(op).Observe(duration.Seconds())
}

func (c *Collector) RecordAccountOpened(category string) {
	c.accountsOpened.WithLabelValues(category).Inc()
}

func (c *Collector) RecordPublish(topic string, success bool) {
	status := "success"
	if !success {
		status = "error"
	}
	c.published.WithLabelValues(topic, status).Inc()
}
