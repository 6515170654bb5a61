// Package middleware provides HTTP observability middleware for the slider
// server.
//
// This package includes:
//   - OpenTelemetry tracing: one server span per request
//   - Prometheus metrics: request counts and latency per route
//
// Both take the chi route pattern as their route label, so /slider?value=3
// and /slider?value=4 share a series.
//
// # OpenTelemetry Middleware
//
//	r := chi.NewRouter()
//	r.Use(middleware.OpenTelemetry(
//	    middleware.WithTracerName("slider"),
//	    middleware.WithRequestFilter(func(r *http.Request) bool {
//	        return r.URL.Path != "/healthz"
//	    }),
//	))
//
// The span is stored in the request context, so widget renders started from
// a handler become its children.
//
// # Prometheus Metrics
//
//	r.Use(middleware.Prometheus(
//	    middleware.WithNamespace("slider"),
//	    middleware.WithRegistry(reg),
//	))
//
// Metrics collected:
//   - slider_http_requests_total{route, code}
//   - slider_http_request_duration_seconds{route}
//
// A WebSocket upgrade is counted with code 101 once the connection closes.
package middleware
