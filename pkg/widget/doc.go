// Package widget hosts one slider instance.
//
// A Widget owns the state, render state, live document and change tracker of
// a single slider and drives the delegate's two-phase protocol: Mount renders
// from scratch, Apply mutates state and runs an update pass, returning the
// patches to send to the client.
//
//	w := widget.New(nil, slider.DefaultState(), widget.WithMetrics(m))
//	w.Mount(ctx)
//	patches, err := w.Apply(ctx, func(s *slider.State) { s.Value = 40 })
//
// Each Mount and Apply is traced with OpenTelemetry ("slider.render",
// "slider.update") and counted in the Prometheus metrics from NewMetrics.
package widget
