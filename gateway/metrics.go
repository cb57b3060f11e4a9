package gateway

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds Prometheus metrics for the gateway client.
type Metrics struct {
	eventsReceived  *prometheus.CounterVec
	commandsSent    *prometheus.CounterVec
	commandFailures *prometheus.CounterVec
	connectsTotal   prometheus.Counter
	reconnects      prometheus.Counter
	connected       prometheus.Gauge
	errorsTotal     *prometheus.CounterVec
}

// newMetrics creates and registers client metrics. A nil registry disables
// metrics entirely.
func newMetrics(registry prometheus.Registerer) (*Metrics, error) {
	if registry == nil {
		return nil, nil
	}

	m := &Metrics{
		eventsReceived: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "chatstreams",
			Subsystem: "gateway",
			Name:      "events_received_total",
			Help:      "Events received from the gateway by kind.",
		}, []string{"type"}),

		commandsSent: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "chatstreams",
			Subsystem: "gateway",
			Name:      "commands_sent_total",
			Help:      "Commands sent to the gateway by name.",
		}, []string{"command"}),

		commandFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "chatstreams",
			Subsystem: "gateway",
			Name:      "command_failures_total",
			Help:      "Commands rejected by the gateway by name.",
		}, []string{"command"}),

		connectsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "chatstreams",
			Subsystem: "gateway",
			Name:      "connects_total",
			Help:      "Successful websocket connections.",
		}),

		reconnects: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "chatstreams",
			Subsystem: "gateway",
			Name:      "reconnects_total",
			Help:      "Reconnections after a dropped connection.",
		}),

		connected: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "chatstreams",
			Subsystem: "gateway",
			Name:      "connected",
			Help:      "Whether the client currently holds a live connection.",
		}),

		errorsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "chatstreams",
			Subsystem: "gateway",
			Name:      "errors_total",
			Help:      "Errors encountered by the client by type.",
		}, []string{"type"}),
	}

	collectors := []prometheus.Collector{
		m.eventsReceived, m.commandsSent, m.commandFailures,
		m.connectsTotal, m.reconnects, m.connected, m.errorsTotal,
	}
	for _, col := range collectors {
		if err := registry.Register(col); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) trackError(errorType string) {
	if m != nil {
		m.errorsTotal.WithLabelValues(errorType).Inc()
	}
}
