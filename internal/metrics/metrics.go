// Package metrics exposes Prometheus counters for game activity and HTTP
// traffic. A nil *Recorder is valid and records nothing.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "scorekeeper"

// Label keys
const (
	LabelGame   = "game"
	LabelMethod = "method"
	LabelRoute  = "route"
	LabelStatus = "status"
)

// Recorder owns a private registry so tests and multiple apps in one
// process never collide on the default registerer.
type Recorder struct {
	registry *prometheus.Registry

	gamesCreated       *prometheus.CounterVec
	roundsRecorded     *prometheus.CounterVec
	gamesCompleted     *prometheus.CounterVec
	validationFailures *prometheus.CounterVec
	gamesDeleted       *prometheus.CounterVec
	httpRequests       *prometheus.CounterVec
	httpDuration       *prometheus.HistogramVec
}

// NewRecorder creates a recorder with all collectors registered
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	counter := func(name, help string, labels ...string) *prometheus.CounterVec {
		c := prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      name,
			Help:      help,
		}, labels)
		reg.MustRegister(c)
		return c
	}

	r := &Recorder{
		registry:           reg,
		gamesCreated:       counter("games_created_total", "Games created.", LabelGame),
		roundsRecorded:     counter("rounds_recorded_total", "Rounds or score updates recorded.", LabelGame),
		gamesCompleted:     counter("games_completed_total", "Games that reached a terminal state.", LabelGame),
		validationFailures: counter("validation_failures_total", "Inputs rejected by validation.", LabelGame),
		gamesDeleted:       counter("games_deleted_total", "Games deleted.", LabelGame),
		httpRequests:       counter("http_requests_total", "HTTP requests served.", LabelMethod, LabelRoute, LabelStatus),
	}

	r.httpDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{LabelMethod, LabelRoute})
	reg.MustRegister(r.httpDuration)

	return r
}

// GameCreated counts a newly created game
func (r *Recorder) GameCreated(game string) {
	if r == nil {
		return
	}
	r.gamesCreated.WithLabelValues(game).Inc()
}

// RoundRecorded counts a successful scoring mutation
func (r *Recorder) RoundRecorded(game string) {
	if r == nil {
		return
	}
	r.roundsRecorded.WithLabelValues(game).Inc()
}

// GameCompleted counts a game reaching completion
func (r *Recorder) GameCompleted(game string) {
	if r == nil {
		return
	}
	r.gamesCompleted.WithLabelValues(game).Inc()
}

// ValidationFailed counts rejected input
func (r *Recorder) ValidationFailed(game string) {
	if r == nil {
		return
	}
	r.validationFailures.WithLabelValues(game).Inc()
}

// GameDeleted counts a delete request
func (r *Recorder) GameDeleted(game string) {
	if r == nil {
		return
	}
	r.gamesDeleted.WithLabelValues(game).Inc()
}

// RecordHTTPRequest tracks one served request. route should be the route
// template, not the raw path, to keep label cardinality bounded.
func (r *Recorder) RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	if r == nil {
		return
	}
	r.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	r.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// Handler serves the recorder's registry in the Prometheus text format
func (r *Recorder) Handler() http.Handler {
	if r == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
