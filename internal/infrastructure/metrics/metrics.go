package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the catalog bot
type Metrics struct {
	// Command metrics
	CommandsTotal *prometheus.CounterVec

	// Group search metrics
	SearchesTotal prometheus.Counter
	SearchHits    prometheus.Counter

	// Catalog metrics
	RecordsCreated *prometheus.CounterVec
	RecordsRemoved prometheus.Counter
	NewsPublished  prometheus.Counter

	// Broadcast metrics
	BroadcastDelivered prometheus.Counter
	BroadcastFailed    prometheus.Counter

	// Conversation metrics
	ActiveSessions prometheus.Gauge
}

var (
	// DefaultMetrics is the default metrics instance
	DefaultMetrics *Metrics
	once           sync.Once
)

// GetDefaultMetrics returns the singleton metrics instance
func GetDefaultMetrics() *Metrics {
	once.Do(func() {
		DefaultMetrics = NewMetrics()
	})
	return DefaultMetrics
}

func init() {
	// Initialize DefaultMetrics on package import
	GetDefaultMetrics()
}

// NewMetrics creates a new Metrics instance with all counters and gauges
func NewMetrics() *Metrics {
	return &Metrics{
		CommandsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dramawallah_commands_total",
				Help: "Total number of bot commands processed",
			},
			[]string{"command"},
		),
		SearchesTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "dramawallah_group_searches_total",
			Help: "Total number of group search lookups performed",
		}),
		SearchHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "dramawallah_group_search_hits_total",
			Help: "Total number of group searches that matched a record",
		}),
		RecordsCreated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dramawallah_records_created_total",
				Help: "Total number of catalog records created",
			},
			[]string{"type"},
		),
		RecordsRemoved: promauto.NewCounter(prometheus.CounterOpts{
			Name: "dramawallah_records_removed_total",
			Help: "Total number of catalog records removed",
		}),
		NewsPublished: promauto.NewCounter(prometheus.CounterOpts{
			Name: "dramawallah_news_published_total",
			Help: "Total number of news items published",
		}),
		BroadcastDelivered: promauto.NewCounter(prometheus.CounterOpts{
			Name: "dramawallah_broadcast_delivered_total",
			Help: "Total number of broadcast messages delivered",
		}),
		BroadcastFailed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "dramawallah_broadcast_failed_total",
			Help: "Total number of broadcast deliveries that failed",
		}),
		ActiveSessions: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "dramawallah_active_sessions",
			Help: "Current number of active conversation sessions",
		}),
	}
}

// RecordCommand records a processed bot command
func (m *Metrics) RecordCommand(command string) {
	if command == "" {
		command = "unknown"
	}
	m.CommandsTotal.WithLabelValues(command).Inc()
}

// RecordSearch records a group search lookup and whether it matched
func (m *Metrics) RecordSearch(hit bool) {
	m.SearchesTotal.Inc()
	if hit {
		m.SearchHits.Inc()
	}
}

// RecordCreated records a created catalog record with its type
func (m *Metrics) RecordCreated(kind string) {
	if kind == "" {
		kind = "unknown"
	}
	m.RecordsCreated.WithLabelValues(kind).Inc()
}

// RecordBroadcast records the outcome of one broadcast delivery
func (m *Metrics) RecordBroadcast(delivered bool) {
	if delivered {
		m.BroadcastDelivered.Inc()
		return
	}
	m.BroadcastFailed.Inc()
}
