package usecase

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	MachineEvent      = "event"
	MachineEnrollment = "enrollment"
)

// Metrics are the auction counters. A nil *Metrics records nothing.
type Metrics struct {
	salesRecorded       prometheus.Counter
	settlementsComputed prometheus.Counter
	stateTransitions    *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer, namespace string) *Metrics {
	m := &Metrics{
		salesRecorded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sales_recorded_total",
			Help:      "Number of sale line items recorded.",
		}),
		settlementsComputed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "settlements_computed_total",
			Help:      "Number of line-item settlements computed.",
		}),
		stateTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "state_transitions_total",
			Help:      "Number of attempted state transitions by machine, transition and result.",
		}, []string{"machine", "transition", "result"}),
	}
	reg.MustRegister(m.salesRecorded, m.settlementsComputed, m.stateTransitions)
	return m
}

func (m *Metrics) saleRecorded() {
	if m == nil {
		return
	}
	m.salesRecorded.Inc()
}

func (m *Metrics) settlementsComputedAdd(n int) {
	if m == nil {
		return
	}
	m.settlementsComputed.Add(float64(n))
}

func (m *Metrics) transition(machine, transition string, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "rejected"
	}
	m.stateTransitions.WithLabelValues(machine, transition, result).Inc()
}
