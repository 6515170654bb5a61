package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

func metricValue(t *testing.T, reg *prometheus.Registry, name string, labels map[string]string) float64 {
	t.Helper()
	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather failed: %v", err)
	}
	for _, f := range families {
		if f.GetName() != name {
			continue
		}
	metrics:
		for _, m := range f.GetMetric() {
			for _, lp := range m.GetLabel() {
				if want, ok := labels[lp.GetName()]; ok && want != lp.GetValue() {
					continue metrics
				}
			}
			if c := m.GetCounter(); c != nil {
				return c.GetValue()
			}
			if h := m.GetHistogram(); h != nil {
				return float64(h.GetSampleCount())
			}
		}
	}
	return 0
}

func testRouter(mws ...func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	for _, m := range mws {
		r.Use(m)
	}
	r.Get("/slider", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	r.Get("/items/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})
	r.Get("/boom", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	return r
}

func serve(h http.Handler, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestPrometheusMiddleware(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := testRouter(Prometheus(WithRegistry(reg)))

	serve(r, "/slider?value=1")
	serve(r, "/slider?value=2")
	serve(r, "/items/7")
	serve(r, "/items/8")
	serve(r, "/nope")

	tests := []struct {
		labels map[string]string
		want   float64
	}{
		{map[string]string{"route": "/slider", "code": "200"}, 2},
		{map[string]string{"route": "/items/{id}", "code": "202"}, 2},
		{map[string]string{"route": "unmatched", "code": "404"}, 1},
	}
	for _, tt := range tests {
		if got := metricValue(t, reg, "slider_http_requests_total", tt.labels); got != tt.want {
			t.Errorf("requests_total%v = %v, want %v", tt.labels, got, tt.want)
		}
	}
	if got := metricValue(t, reg, "slider_http_request_duration_seconds", map[string]string{"route": "/slider"}); got != 2 {
		t.Errorf("duration samples = %v, want 2", got)
	}
}

func TestPrometheusOptions(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := testRouter(Prometheus(
		WithRegistry(reg),
		WithNamespace("app"),
		WithSubsystem("web"),
		WithConstLabels(prometheus.Labels{"instance": "a"}),
		WithBuckets([]float64{0.1, 1}),
	))
	serve(r, "/slider")

	if got := metricValue(t, reg, "app_web_requests_total", map[string]string{"instance": "a"}); got != 1 {
		t.Errorf("app_web_requests_total = %v, want 1", got)
	}
}

type recordingSpan struct {
	noop.Span
	name   string
	kind   trace.SpanKind
	attrs  map[attribute.Key]attribute.Value
	status codes.Code
	ended  bool
}

func (s *recordingSpan) SetName(name string) { s.name = name }

func (s *recordingSpan) SetAttributes(kv ...attribute.KeyValue) {
	for _, a := range kv {
		s.attrs[a.Key] = a.Value
	}
}

func (s *recordingSpan) SetStatus(code codes.Code, _ string) { s.status = code }

func (s *recordingSpan) End(...trace.SpanEndOption) { s.ended = true }

type recordingTracer struct {
	noop.Tracer
	spans []*recordingSpan
}

func (t *recordingTracer) Start(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	cfg := trace.NewSpanStartConfig(opts...)
	s := &recordingSpan{name: name, kind: cfg.SpanKind(), attrs: make(map[attribute.Key]attribute.Value)}
	s.SetAttributes(cfg.Attributes()...)
	t.spans = append(t.spans, s)
	return trace.ContextWithSpan(ctx, s), s
}

func TestOpenTelemetryMiddleware(t *testing.T) {
	tracer := &recordingTracer{}
	var inHandler trace.Span
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(OpenTelemetry(WithTracer(tracer)))
	r.Get("/items/{id}", func(w http.ResponseWriter, r *http.Request) {
		inHandler = trace.SpanFromContext(r.Context())
	})
	r.Get("/boom", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	serve(r, "/items/7?x=1")
	serve(r, "/boom")

	if len(tracer.spans) != 2 {
		t.Fatalf("got %d spans, want 2", len(tracer.spans))
	}
	s := tracer.spans[0]
	if inHandler != trace.Span(s) {
		t.Error("handler should see the request span in its context")
	}
	if s.name != "slider /items/{id}" {
		t.Errorf("span name = %q", s.name)
	}
	if s.kind != trace.SpanKindServer {
		t.Errorf("span kind = %v", s.kind)
	}
	if got := s.attrs["http.route"].AsString(); got != "/items/{id}" {
		t.Errorf("http.route = %q", got)
	}
	if got := s.attrs["http.target"].AsString(); got != "/items/7?x=1" {
		t.Errorf("http.target = %q", got)
	}
	if got := s.attrs["http.status_code"].AsInt64(); got != 200 {
		t.Errorf("http.status_code = %d", got)
	}
	if s.attrs["http.request_id"].AsString() == "" {
		t.Error("request ID should be recorded")
	}
	if s.status != codes.Ok || !s.ended {
		t.Errorf("status = %v ended = %v", s.status, s.ended)
	}

	if boom := tracer.spans[1]; boom.status != codes.Error {
		t.Errorf("5xx status = %v, want Error", boom.status)
	}
}

func TestOpenTelemetryFilter(t *testing.T) {
	tracer := &recordingTracer{}
	r := testRouter(OpenTelemetry(
		WithTracer(tracer),
		WithRequestFilter(func(r *http.Request) bool { return r.URL.Path != "/slider" }),
	))

	if rec := serve(r, "/slider"); rec.Body.String() != "ok" {
		t.Errorf("filtered request body = %q", rec.Body.String())
	}
	serve(r, "/items/1")
	if len(tracer.spans) != 1 {
		t.Errorf("got %d spans, want 1", len(tracer.spans))
	}
}
