// Package metrics holds the prometheus collectors of the server, registered
// on a private registry served by Handler.
package metrics

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mughesh03/aromatone/pkg/domain"
)

const namespace = "aromatone"

// Metrics groups the application collectors.
type Metrics struct {
	registry *prometheus.Registry

	stepEvents    *prometheus.CounterVec
	wizardEvents  *prometheus.CounterVec
	completions   *prometheus.CounterVec
	proxyRequests *prometheus.CounterVec
	proxyLatency  *prometheus.HistogramVec
}

// New creates the collectors and registers them, together with the Go and
// process collectors, on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		stepEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "wizard_step_events_total",
			Help:      "Sequencer lifecycle events by wizard variant and type.",
		}, []string{"variant", "type"}),
		wizardEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "wizard_events_total",
			Help:      "Dispatched wizard events by variant, event type and outcome.",
		}, []string{"variant", "event", "outcome"}),
		completions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "wizard_completions_total",
			Help:      "Completed wizards by variant.",
		}, []string{"variant"}),
		proxyRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "proxy_requests_total",
			Help:      "Forwarded upstream requests by path and status (0 on failure).",
		}, []string{"path", "status"}),
		proxyLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "proxy_request_duration_seconds",
			Help:      "Upstream round trip duration.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"path"}),
	}
	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.stepEvents,
		m.wizardEvents,
		m.completions,
		m.proxyRequests,
		m.proxyLatency,
	)
	return m
}

// Registry exposes the private registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Hooks returns engine hooks feeding the step event counters.
func (m *Metrics) Hooks() domain.WizardHooks {
	count := func(_ context.Context, e *domain.StepEvent) {
		m.stepEvents.WithLabelValues(e.Variant, string(e.Type)).Inc()
	}
	return domain.WizardHooks{
		OnStepEnter: count,
		OnStepLeave: count,
		OnBlocked:   count,
		OnComplete: func(ctx context.Context, e *domain.StepEvent) {
			count(ctx, e)
			m.completions.WithLabelValues(e.Variant).Inc()
		},
	}
}

// ObserveEvent counts one dispatched wizard event.
func (m *Metrics) ObserveEvent(variant, event, outcome string) {
	m.wizardEvents.WithLabelValues(variant, event, outcome).Inc()
}

// ObserveProxy records one forwarded request. Its signature matches
// proxy.Observer.
func (m *Metrics) ObserveProxy(path string, status int, elapsed time.Duration) {
	m.proxyRequests.WithLabelValues(path, strconv.Itoa(status)).Inc()
	m.proxyLatency.WithLabelValues(path).Observe(elapsed.Seconds())
}
