package dombuilder

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcomes of pending children, used as label values of
// Metrics.Settlements.
const (
	OutcomeReplaced = "replaced" // placeholder replaced by the resolved node
	OutcomeRemoved  = "removed"  // resolved to an unusable value
	OutcomeRejected = "rejected" // pending child failed
	OutcomeDetached = "detached" // placeholder had been removed from the tree
)

// Metrics are Prometheus collectors counting a builder's activity. All
// methods are safe to call on a nil *Metrics.
type Metrics struct {
	ElementsBuilt prometheus.Counter
	Dropped       *prometheus.CounterVec // by kind: property, style, dataset, child
	Pending       prometheus.Gauge       // placeholders not yet swapped
	Settlements   *prometheus.CounterVec // by outcome
}

// NewMetrics creates the builder collectors and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		ElementsBuilt: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "dombuilder",
			Name:      "elements_built_total",
			Help:      "Total number of elements created by element construction",
		}),
		Dropped: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "dombuilder",
			Name:      "dropped_total",
			Help:      "Total number of ignored inputs",
		}, []string{"kind"}),
		Pending: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "dombuilder",
			Name:      "placeholders_pending",
			Help:      "Number of placeholders waiting for their pending child",
		}),
		Settlements: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "dombuilder",
			Name:      "settlements_total",
			Help:      "Total number of settled pending children",
		}, []string{"outcome"}),
	}
}

func (m *Metrics) built() {
	if m != nil {
		m.ElementsBuilt.Inc()
	}
}

func (m *Metrics) dropped(kind string) {
	if m != nil {
		m.Dropped.WithLabelValues(kind).Inc()
	}
}

func (m *Metrics) placeholder() {
	if m != nil {
		m.Pending.Inc()
	}
}

func (m *Metrics) settled(outcome string) {
	if m != nil {
		m.Pending.Dec()
		m.Settlements.WithLabelValues(outcome).Inc()
	}
}
