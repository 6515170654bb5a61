// Package server hosts slider widgets over HTTP and WebSocket.
//
// Routes (chi):
//
//	GET /          complete page with the slider and a small JS client
//	GET /slider    the slider fragment alone (?pretty=1 to indent)
//	GET /ws        live patch stream
//	GET /metrics   Prometheus metrics
//	GET /healthz   liveness
//
// Query parameters on /, /slider and /ws (value, minimum, maximum, step,
// orientation, markSteps, controlSize) override the initial state.
//
// # Sessions
//
// Every WebSocket connection gets its own widget, mounted from the initial
// state, so the hydration IDs it assigns match the ones in the page. The
// client sends JSON state changes:
//
//	{"value": 40}
//	{"orientation": "vertical"}
//	{"minimum": 0, "maximum": 5, "step": 1, "markSteps": true}
//
// and receives one frame per message: a binary protocol.PatchesFrame, or
// with ?format=json a text frame
//
//	{"type": "patches", "seq": 3, "patches": [...]}
//
// Malformed or invalid messages are answered with
//
//	{"type": "error", "error": "..."}
//
// and the connection stays open.
//
// # Example Usage
//
//	srv := server.New(&server.ServerConfig{Address: ":8080"})
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
//	defer stop()
//	if err := srv.Run(ctx); err != nil {
//	    log.Fatal(err)
//	}
package server
