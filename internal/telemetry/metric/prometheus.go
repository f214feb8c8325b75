package metric

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "bpls"

// Outcome label values for successful commands. Failed commands use the
// error kind name.
const OutcomeOK = "ok"

// Registry holds the interpreter metrics on a private Prometheus registry.
type Registry struct {
	reg *prometheus.Registry

	commandsTotal   *prometheus.CounterVec
	commandDuration *prometheus.HistogramVec
}

// NewRegistry creates and registers the command metrics.
func NewRegistry() *Registry {
	r := &Registry{
		reg: prometheus.NewRegistry(),
		commandsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "interpreter",
			Name:      "commands_total",
			Help:      "Commands executed, by verb and outcome",
		}, []string{"verb", "outcome"}),
		commandDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "interpreter",
			Name:      "command_duration_seconds",
			Help:      "Command execution latency in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
		}, []string{"verb"}),
	}

	r.reg.MustRegister(r.commandsTotal, r.commandDuration)
	return r
}

// ObserveCommand records one executed command.
func (r *Registry) ObserveCommand(verb, outcome string, d time.Duration) {
	r.commandsTotal.WithLabelValues(verb, outcome).Inc()
	r.commandDuration.WithLabelValues(verb).Observe(d.Seconds())
}

// MustRegister adds extra collectors, such as a TableCollector.
func (r *Registry) MustRegister(cs ...prometheus.Collector) {
	r.reg.MustRegister(cs...)
}

// Gatherer exposes the underlying registry.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.reg
}

// WriteTextfile writes all metrics to path in the text exposition format.
// The file is written to a temporary name and renamed into place.
func (r *Registry) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.reg); err != nil {
		return fmt.Errorf("metric: write textfile: %w", err)
	}
	return nil
}
