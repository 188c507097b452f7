package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/vango-dev/featuregrid/pkg/cards"
)

func newTestMetrics(t *testing.T, opts ...MetricsOption) (*Metrics, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	return NewMetrics(append([]MetricsOption{WithRegistry(reg)}, opts...)...), reg
}

func TestMetricsHandlerUsesRoutePattern(t *testing.T) {
	m, _ := newTestMetrics(t)

	r := chi.NewRouter()
	r.Use(m.Handler)
	r.Get("/cards/{category}/{name}", func(w http.ResponseWriter, r *http.Request) {
		if chi.URLParam(r, "name") == "missing" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte("ok"))
	})

	for _, path := range []string{"/cards/interactive/flip-card", "/cards/social/user-avatars", "/cards/x/missing"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	}

	route := "/cards/{category}/{name}"
	if got := testutil.ToFloat64(m.requestsTotal.WithLabelValues("GET", route, "200")); got != 2 {
		t.Errorf("200 count = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.requestsTotal.WithLabelValues("GET", route, "404")); got != 1 {
		t.Errorf("404 count = %v, want 1", got)
	}
	if n := testutil.CollectAndCount(m.requestDuration); n != 1 {
		t.Errorf("duration series = %d, want 1", n)
	}
}

func TestMetricsHandlerUnmatched(t *testing.T) {
	m, _ := newTestMetrics(t)

	r := chi.NewRouter()
	r.Use(m.Handler)
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	if got := testutil.ToFloat64(m.requestsTotal.WithLabelValues("GET", "unmatched", "404")); got != 1 {
		t.Errorf("unmatched count = %v, want 1", got)
	}
}

func TestMetricsRecordEvent(t *testing.T) {
	m, _ := newTestMetrics(t)

	m.RecordEvent("select-layout", 2*time.Millisecond, nil)
	m.RecordEvent("select-layout", time.Millisecond, errors.New("unknown layout"))
	m.RecordEvent("click", time.Millisecond, nil)

	tests := []struct {
		event, status string
		want          float64
	}{
		{"select-layout", "success", 1},
		{"select-layout", "error", 1},
		{"click", "success", 1},
		{"click", "error", 0},
	}
	for _, tt := range tests {
		if got := testutil.ToFloat64(m.eventsTotal.WithLabelValues(tt.event, tt.status)); got != tt.want {
			t.Errorf("events_total{%s,%s} = %v, want %v", tt.event, tt.status, got, tt.want)
		}
	}
}

func TestMetricsObserveResolve(t *testing.T) {
	known := map[string]bool{"interactive": true}
	m, _ := newTestMetrics(t, WithKnownCategory(func(c string) bool { return known[c] }))

	var obs cards.Observer = m
	obs.ObserveResolve("interactive", "flip-card", cards.OutcomeFound)
	obs.ObserveResolve("interactive", "nope", cards.OutcomeNotFound)
	obs.ObserveResolve("<script>", "x", cards.OutcomeNotFound)

	if got := testutil.ToFloat64(m.resolutions.WithLabelValues("interactive", "found")); got != 1 {
		t.Errorf("found = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.resolutions.WithLabelValues("interactive", "not_found")); got != 1 {
		t.Errorf("not_found = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.resolutions.WithLabelValues("other", "not_found")); got != 1 {
		t.Errorf("other = %v, want 1", got)
	}
}

func TestMetricsSessionsAndErrors(t *testing.T) {
	m, _ := newTestMetrics(t)

	m.SessionOpened()
	m.SessionOpened()
	m.SessionClosed()
	if got := testutil.ToFloat64(m.activeSessions); got != 1 {
		t.Errorf("active_sessions = %v, want 1", got)
	}

	m.RecordWebSocketError("invalid_message")
	m.RecordWebSocketError("invalid_message")
	if got := testutil.ToFloat64(m.wsErrors.WithLabelValues("invalid_message")); got != 2 {
		t.Errorf("websocket_errors_total = %v, want 2", got)
	}
}

func TestMetricsNamespaceAndConstLabels(t *testing.T) {
	_, reg := newTestMetrics(t,
		WithNamespace("fg"),
		WithSubsystem("test"),
		WithConstLabels(prometheus.Labels{"instance": "a"}),
		WithBuckets([]float64{0.1, 1}),
	)

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	// Only the gauge has a value before anything is recorded.
	found := false
	for _, f := range families {
		if f.GetName() == "fg_test_active_sessions" {
			found = true
			labels := f.GetMetric()[0].GetLabel()
			if len(labels) != 1 || labels[0].GetName() != "instance" || labels[0].GetValue() != "a" {
				t.Errorf("const labels = %v", labels)
			}
		}
	}
	if !found {
		t.Errorf("fg_test_active_sessions not registered")
	}
}

func TestNewMetricsDuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewMetrics(WithRegistry(reg))

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	NewMetrics(WithRegistry(reg))
}
