package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// StoreMetrics records storefront state activity. A nil *StoreMetrics is a
// valid no-op recorder.
type StoreMetrics struct {
	ordersPlaced        prometheus.Counter
	negativeStock       prometheus.Counter
	toasts              *prometheus.CounterVec
	persistenceFailures *prometheus.CounterVec
	persistDuration     *prometheus.HistogramVec
}

// NewStoreMetrics registers the storefront metrics on the provided registerer.
func NewStoreMetrics(reg prometheus.Registerer) *StoreMetrics {
	if reg == nil {
		return &StoreMetrics{}
	}
	ordersPlaced := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "storefront_orders_placed_total",
		Help: "Orders appended to the order list.",
	})
	negativeStock := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "storefront_negative_stock_total",
		Help: "Order lines that drove a product's stock below zero.",
	})
	toasts := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_toasts_total",
		Help: "Notifications shown, by kind.",
	}, []string{"kind"})
	persistenceFailures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_persistence_failures_total",
		Help: "Durable key-value operations that failed, by key and operation.",
	}, []string{"key", "op"})
	persistDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "storefront_persist_duration_seconds",
		Help:    "Latency of durable key-value writes.",
		Buckets: prometheus.DefBuckets,
	}, []string{"key"})
	reg.MustRegister(ordersPlaced, negativeStock, toasts, persistenceFailures, persistDuration)
	return &StoreMetrics{
		ordersPlaced:        ordersPlaced,
		negativeStock:       negativeStock,
		toasts:              toasts,
		persistenceFailures: persistenceFailures,
		persistDuration:     persistDuration,
	}
}

func (m *StoreMetrics) IncOrderPlaced() {
	if m == nil || m.ordersPlaced == nil {
		return
	}
	m.ordersPlaced.Inc()
}

func (m *StoreMetrics) IncNegativeStock() {
	if m == nil || m.negativeStock == nil {
		return
	}
	m.negativeStock.Inc()
}

func (m *StoreMetrics) IncToast(kind string) {
	if m == nil || m.toasts == nil {
		return
	}
	m.toasts.WithLabelValues(normalizeLabel(kind)).Inc()
}

func (m *StoreMetrics) IncPersistenceFailure(key, op string) {
	if m == nil || m.persistenceFailures == nil {
		return
	}
	m.persistenceFailures.WithLabelValues(normalizeLabel(key), normalizeLabel(op)).Inc()
}

func (m *StoreMetrics) ObservePersist(key string, d time.Duration) {
	if m == nil || m.persistDuration == nil {
		return
	}
	m.persistDuration.WithLabelValues(normalizeLabel(key)).Observe(d.Seconds())
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
