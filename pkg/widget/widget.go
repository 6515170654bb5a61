package widget

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/vango-dev/slider/pkg/change"
	"github.com/vango-dev/slider/pkg/render"
	"github.com/vango-dev/slider/pkg/slider"
	"github.com/vango-dev/slider/pkg/vdom"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// ErrNotMounted is returned when a widget is updated before its first render.
var ErrNotMounted = errors.New("widget: not mounted")

const tracerName = "github.com/vango-dev/slider/pkg/widget"

// Widget is one slider instance: its state, render state, live document and
// change tracker.
//
// Calls are serialized, so a render and an update of the same instance never
// interleave, and Apply refuses to run before Mount.
type Widget struct {
	mu sync.Mutex

	delegate    *slider.Delegate
	state       slider.State
	renderState slider.RenderState
	tracker     *change.Tracker
	doc         *vdom.Document

	logger  *slog.Logger
	metrics *Metrics
	tracer  trace.Tracer
}

// Option configures a Widget.
type Option func(*Widget)

// WithLogger sets the logger (default: slog.Default()).
func WithLogger(logger *slog.Logger) Option {
	return func(w *Widget) {
		w.logger = logger
	}
}

// WithMetrics sets the metrics sink. Without it nothing is recorded.
func WithMetrics(m *Metrics) Option {
	return func(w *Widget) {
		w.metrics = m
	}
}

// WithTracer sets the tracer (default: the global provider's tracer).
func WithTracer(tracer trace.Tracer) Option {
	return func(w *Widget) {
		w.tracer = tracer
	}
}

// New creates an unmounted widget. A nil delegate uses slider.NewDelegate().
func New(delegate *slider.Delegate, state slider.State, opts ...Option) *Widget {
	if delegate == nil {
		delegate = slider.NewDelegate()
	}
	w := &Widget{
		delegate: delegate,
		state:    cloneState(state),
		tracker:  change.NewTracker(),
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.logger == nil {
		w.logger = slog.Default()
	}
	w.logger = w.logger.With("component", "widget")
	if w.tracer == nil {
		w.tracer = otel.Tracer(tracerName)
	}
	return w
}

// Mount renders the widget from scratch, replacing any previous document.
// The change tracker is reset, so the first Apply afterwards runs every
// update block once.
func (w *Widget) Mount(ctx context.Context) *vdom.Document {
	w.mu.Lock()
	defer w.mu.Unlock()

	_, span := w.tracer.Start(ctx, "slider.render")
	defer span.End()

	rc := render.NewContext("div").AddClass(slider.ClassName)
	w.delegate.Render(&w.state, &w.renderState, rc)
	w.doc = vdom.NewDocument(rc.Fragment())
	w.tracker.Reset()

	span.SetAttributes(
		attribute.String("slider.orientation", w.state.Orientation.String()),
		attribute.Int("slider.step_marks", len(w.state.StepPositions)),
		attribute.Int("slider.elements", w.doc.Len()),
	)
	w.metrics.recordRender()
	w.logger.Debug("rendered", "elements", w.doc.Len())
	return w.doc
}

// Apply mutates the state with fn, runs an update pass, and returns the
// patches it produced. A nil fn re-runs the update against the current state.
func (w *Widget) Apply(ctx context.Context, fn func(*slider.State)) ([]vdom.Patch, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.doc == nil {
		return nil, ErrNotMounted
	}

	_, span := w.tracer.Start(ctx, "slider.update")
	defer span.End()

	if fn != nil {
		fn(&w.state)
	}

	start := time.Now()
	w.doc.Flush()
	w.delegate.Update(&w.state, &w.renderState, w.doc.Root(), w.tracker.Bind(&w.state))
	patches := w.doc.Flush()
	elapsed := time.Since(start)

	span.SetAttributes(attribute.Int("slider.patches", len(patches)))
	w.metrics.recordUpdate(elapsed.Seconds(), patches)
	w.logger.Debug("updated", "patches", len(patches), "duration", elapsed)
	return patches, nil
}

// State returns a copy of the current state.
func (w *Widget) State() slider.State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return cloneState(w.state)
}

// Mounted reports whether Mount has run.
func (w *Widget) Mounted() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.doc != nil
}

// HTML serializes the live fragment.
func (w *Widget) HTML(config render.RendererConfig) (string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.doc == nil {
		return "", ErrNotMounted
	}
	return render.NewRenderer(config).RenderToString(w.doc.Root())
}

func cloneState(s slider.State) slider.State {
	if s.StepPositions != nil {
		s.StepPositions = slices.Clone(s.StepPositions)
	}
	return s
}
