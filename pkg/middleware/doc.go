// Package middleware provides Prometheus metrics and OpenTelemetry tracing
// for featuregrid's HTTP and WebSocket surfaces.
//
// # Prometheus Metrics
//
//	m := middleware.NewMetrics(middleware.WithNamespace("featuregrid"))
//	r := chi.NewRouter()
//	r.Use(m.Handler)
//	r.Handle("/metrics", promhttp.Handler())
//
// Metrics collected:
//   - featuregrid_http_requests_total{method,route,status}
//   - featuregrid_http_request_duration_seconds{method,route}
//   - featuregrid_events_total{event,status}
//   - featuregrid_event_duration_seconds{event}
//   - featuregrid_card_resolutions_total{category,outcome}
//   - featuregrid_active_sessions
//   - featuregrid_websocket_errors_total{type}
//
// Metrics also implements cards.Observer, so it can be passed to
// cards.WithObserver to count resolution outcomes.
//
// # OpenTelemetry
//
// Tracing creates a server span per HTTP request and, through StartEvent,
// one span per WebSocket event. Spans come from the global tracer
// provider; configure it in main() before starting the server:
//
//	otel.SetTracerProvider(tp)
//	t := middleware.NewTracing(middleware.WithTracerName("featuregrid"))
//	r.Use(t.Handler)
package middleware
