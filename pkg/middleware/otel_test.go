package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// recordingSpan keeps the fields the middleware sets.
type recordingSpan struct {
	noop.Span

	mu     sync.Mutex
	name   string
	attrs  []attribute.KeyValue
	status codes.Code
	errs   []error
	ended  bool
}

func (s *recordingSpan) SetName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = name
}

func (s *recordingSpan) SetAttributes(kv ...attribute.KeyValue) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attrs = append(s.attrs, kv...)
}

func (s *recordingSpan) SetStatus(code codes.Code, _ string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = code
}

func (s *recordingSpan) RecordError(err error, _ ...trace.EventOption) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errs = append(s.errs, err)
}

func (s *recordingSpan) End(...trace.SpanEndOption) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ended = true
}

func (s *recordingSpan) attr(key string) (attribute.Value, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, kv := range s.attrs {
		if string(kv.Key) == key {
			return kv.Value, true
		}
	}
	return attribute.Value{}, false
}

type recordingTracer struct {
	noop.Tracer
	mu    sync.Mutex
	spans []*recordingSpan
}

func (t *recordingTracer) Start(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	cfg := trace.NewSpanStartConfig(opts...)
	span := &recordingSpan{name: name, attrs: cfg.Attributes()}
	t.mu.Lock()
	t.spans = append(t.spans, span)
	t.mu.Unlock()
	return trace.ContextWithSpan(ctx, span), span
}

type recordingProvider struct {
	noop.TracerProvider
	tracer *recordingTracer
}

func (p *recordingProvider) Tracer(string, ...trace.TracerOption) trace.Tracer {
	return p.tracer
}

func installRecorder(t *testing.T) *recordingTracer {
	t.Helper()
	prev := otel.GetTracerProvider()
	tracer := &recordingTracer{}
	otel.SetTracerProvider(&recordingProvider{tracer: tracer})
	t.Cleanup(func() { otel.SetTracerProvider(prev) })
	return tracer
}

func TestTracingHandlerNamesSpanByRoute(t *testing.T) {
	tracer := installRecorder(t)
	tr := NewTracing(WithAttributeExtractor(func(r *http.Request) []attribute.KeyValue {
		return []attribute.KeyValue{attribute.String("test.attr", "ok")}
	}))

	var inner trace.Span
	r := chi.NewRouter()
	r.Use(tr.Handler)
	r.Get("/cards/{category}/{name}", func(w http.ResponseWriter, r *http.Request) {
		inner = trace.SpanFromContext(r.Context())
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/cards/social/live-activity", nil))

	if len(tracer.spans) != 1 {
		t.Fatalf("spans = %d, want 1", len(tracer.spans))
	}
	span := tracer.spans[0]
	if inner != span {
		t.Error("handler context should carry the request span")
	}
	if span.name != "GET /cards/{category}/{name}" {
		t.Errorf("span name = %q", span.name)
	}
	if v, _ := span.attr("http.status_code"); v.AsInt64() != 200 {
		t.Errorf("status attr = %v, want 200", v.AsInt64())
	}
	if v, _ := span.attr("test.attr"); v.AsString() != "ok" {
		t.Errorf("extractor attr = %q", v.AsString())
	}
	if span.status != codes.Ok || !span.ended {
		t.Errorf("status = %v ended = %v", span.status, span.ended)
	}
}

func TestTracingHandlerServerError(t *testing.T) {
	tracer := installRecorder(t)
	tr := NewTracing()

	h := tr.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/actions", nil))

	if got := tracer.spans[0].status; got != codes.Error {
		t.Errorf("status = %v, want Error", got)
	}
	if got := tracer.spans[0].name; got != "POST unmatched" {
		t.Errorf("name = %q", got)
	}
}

func TestTracingFilterSkips(t *testing.T) {
	tracer := installRecorder(t)
	tr := NewTracing(WithRequestFilter(func(r *http.Request) bool {
		return r.URL.Path != "/healthz"
	}))

	called := false
	h := tr.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true }))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if !called {
		t.Error("next should still run")
	}
	if len(tracer.spans) != 0 {
		t.Errorf("filtered request produced %d spans", len(tracer.spans))
	}
}

func TestTracingStartEvent(t *testing.T) {
	tracer := installRecorder(t)
	tr := NewTracing()

	_, ev := tr.StartEvent(context.Background(), "sess-1", "select-card")
	ev.SetAttributes(attribute.Int("featuregrid.slot", 2))
	ev.End(errors.New("boom"))

	span := tracer.spans[0]
	if span.name != "event select-card" {
		t.Errorf("name = %q", span.name)
	}
	if v, _ := span.attr("featuregrid.session_id"); v.AsString() != "sess-1" {
		t.Errorf("session attr = %q", v.AsString())
	}
	if v, _ := span.attr("featuregrid.slot"); v.AsInt64() != 2 {
		t.Errorf("slot attr = %v", v.AsInt64())
	}
	if span.status != codes.Error || len(span.errs) != 1 || !span.ended {
		t.Errorf("status = %v errs = %v ended = %v", span.status, span.errs, span.ended)
	}
}
