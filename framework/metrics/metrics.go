// Package metrics exports container activity as Prometheus metrics.
//
//	m := metrics.New()
//	c := container.New(m.Options()...)
//	http.Handle("/metrics", m.Handler())
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/km-arc/jerkface/framework/container"
)

const namespace = "jerkface"

// Collector owns a private registry so several containers in one process
// never collide on the default one.
type Collector struct {
	registry *prometheus.Registry

	bindings    *prometheus.CounterVec
	resolutions *prometheus.CounterVec
	duration    prometheus.Histogram
	cycles      prometheus.Counter
}

// New creates a Collector and registers its metrics.
func New() *Collector {
	m := &Collector{
		registry: prometheus.NewRegistry(),
		bindings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bindings_total",
			Help:      "Successful registrations by kind (recipe, value, extension).",
		}, []string{"kind"}),
		resolutions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "resolutions_total",
			Help:      "Top-level resolutions by binding and outcome.",
		}, []string{"binding", "outcome"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "resolution_duration_seconds",
			Help:      "Time spent in Resolve, construction included.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
		}),
		cycles: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cycles_rejected_total",
			Help:      "Bind and BindAll calls rejected for a circular reference.",
		}),
	}

	m.registry.MustRegister(m.bindings, m.resolutions, m.duration, m.cycles)
	return m
}

// Options returns the container options feeding this collector.
func (m *Collector) Options() []container.Option {
	return []container.Option{
		container.WithBindObserver(m.observeBind),
		container.WithResolveObserver(m.observeResolve),
		container.WithCycleObserver(m.observeCycle),
	}
}

func (m *Collector) observeBind(_ string, kind container.BindKind) {
	label := string(kind)
	if label == "" {
		label = "extension"
	}
	m.bindings.WithLabelValues(label).Inc()
}

func (m *Collector) observeResolve(name string, d time.Duration, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.resolutions.WithLabelValues(name, outcome).Inc()
	m.duration.Observe(d.Seconds())
}

func (m *Collector) observeCycle(string, []string) {
	m.cycles.Inc()
}

// Registry exposes the private registry, e.g. to add Go runtime collectors.
func (m *Collector) Registry() *prometheus.Registry { return m.registry }

// Handler serves the registry in the Prometheus exposition format.
func (m *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		Registry: m.registry,
	})
}
