// Package metrics holds the prometheus collectors of the inspection service.
//
// All collectors live on a dedicated registry so tests can build an isolated
// instance; the HTTP handler exposes only that registry.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "inspection"

// Outcome labels for submissions.
const (
	OutcomeSuccess    = "success"
	OutcomeValidation = "validation_error"
	OutcomeNotFound   = "not_found"
	OutcomeConflict   = "conflict"
	OutcomeError      = "error"
)

type Metrics struct {
	reg *prometheus.Registry

	submissions       *prometheus.CounterVec // inspection_submissions_total{outcome}
	answers           *prometheus.CounterVec // inspection_answers_total{answer}
	photos            prometheus.Counter     // inspection_photos_created_total
	checklists        *prometheus.CounterVec // inspection_checklist_requests_total{reference}
	requestDuration   *prometheus.HistogramVec
	submissionLatency prometheus.Histogram
}

// New builds the collectors on a fresh registry, including the go runtime and
// process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		reg: reg,
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "submissions_total",
			Help:      "Checklist submissions partitioned by outcome.",
		}, []string{"outcome"}),
		answers: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "answers_total",
			Help:      "Persisted answers partitioned by value.",
		}, []string{"answer"}),
		photos: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "photos_created_total",
			Help:      "Photo records created by submissions.",
		}),
		checklists: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "checklist_requests_total",
			Help:      "Checklist requests partitioned by the status of the reference inspection.",
		}, []string{"reference"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency partitioned by route, method and status code.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method", "status"}),
		submissionLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "submission_duration_seconds",
			Help:      "Time spent persisting one checklist submission.",
			Buckets:   prometheus.DefBuckets,
		}),
	}

	reg.MustRegister(
		m.submissions,
		m.answers,
		m.photos,
		m.checklists,
		m.requestDuration,
		m.submissionLatency,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.reg
}

// Handler serves the registry in the prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{Registry: m.reg})
}

// The observers below are nil-safe so callers can run without metrics.

func (m *Metrics) ObserveSubmission(outcome string, took time.Duration) {
	if m == nil {
		return
	}
	m.submissions.WithLabelValues(outcome).Inc()
	if outcome == OutcomeSuccess {
		m.submissionLatency.Observe(took.Seconds())
	}
}

func (m *Metrics) ObserveAnswer(answer string) {
	if m == nil {
		return
	}
	m.answers.WithLabelValues(answer).Inc()
}

func (m *Metrics) ObservePhotos(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.photos.Add(float64(n))
}

// ObserveChecklist records which kind of reference inspection pre-filled a
// checklist; reference is "none" for first-time cars.
func (m *Metrics) ObserveChecklist(reference string) {
	if m == nil {
		return
	}
	m.checklists.WithLabelValues(reference).Inc()
}

func (m *Metrics) ObserveRequest(route, method string, status int, took time.Duration) {
	if m == nil {
		return
	}
	m.requestDuration.WithLabelValues(route, method, strconv.Itoa(status)).Observe(took.Seconds())
}
