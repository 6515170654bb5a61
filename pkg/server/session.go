package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/vango-dev/slider/pkg/protocol"
	"github.com/vango-dev/slider/pkg/widget"
)

// Session is one WebSocket connection and the widget it owns. Widgets are
// never shared between connections.
type Session struct {
	conn   *websocket.Conn
	widget *widget.Widget
	config *ServerConfig
	logger *slog.Logger

	metrics *serverMetrics

	// jsonFrames selects JSON text frames instead of binary PatchesFrames.
	jsonFrames bool

	seq uint64

	// mu protects WebSocket writes.
	mu        sync.Mutex
	closeOnce sync.Once
}

// Widget returns the session's widget.
func (s *Session) Widget() *widget.Widget {
	return s.widget
}

// ReadLoop reads state changes until the connection closes or ctx ends.
// Each message is answered with exactly one frame: patches on success, an
// error frame otherwise.
func (s *Session) ReadLoop(ctx context.Context) {
	defer s.Close()

	s.conn.SetReadLimit(s.config.MaxMessageSize)

	for {
		s.conn.SetReadDeadline(time.Now().Add(s.config.IdleTimeout))

		msgType, msg, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure,
				websocket.CloseNormalClosure) {
				s.logger.Error("read error", "error", err)
			}
			return
		}

		if msgType != websocket.TextMessage {
			s.metrics.messages.WithLabelValues(resultRejected).Inc()
			if err := s.sendError("expected a JSON text message"); err != nil {
				return
			}
			continue
		}

		if err := s.handleMessage(ctx, msg); err != nil {
			s.logger.Error("write error", "error", err)
			return
		}
	}
}

// handleMessage applies one state change. The returned error is a write
// failure; rejected messages are reported to the client instead.
func (s *Session) handleMessage(ctx context.Context, msg []byte) error {
	change, err := DecodeStateChange(msg)
	if err == nil {
		err = change.Validate(s.widget.State())
	}
	if err != nil {
		s.metrics.messages.WithLabelValues(resultRejected).Inc()
		s.logger.Debug("rejected message", "error", err)
		return s.sendError(err.Error())
	}

	patches, err := s.widget.Apply(ctx, change.Apply)
	if err != nil {
		s.metrics.messages.WithLabelValues(resultFailed).Inc()
		s.logger.Error("apply failed", "error", err)
		return s.sendError("update failed")
	}
	wire, err := protocol.FromVDOM(patches)
	if err != nil {
		s.metrics.messages.WithLabelValues(resultFailed).Inc()
		s.logger.Error("patch conversion failed", "error", err)
		return s.sendError("update failed")
	}

	s.metrics.messages.WithLabelValues(resultApplied).Inc()
	return s.SendPatches(wire)
}

// SendPatches writes one frame with the next sequence number.
func (s *Session) SendPatches(patches []protocol.Patch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	if s.jsonFrames {
		if patches == nil {
			patches = []protocol.Patch{}
		}
		data, err := json.Marshal(jsonPatchesFrame{Type: FrameTypePatches, Seq: s.seq, Patches: patches})
		if err != nil {
			return err
		}
		return s.writeLocked(websocket.TextMessage, data)
	}
	return s.writeLocked(websocket.BinaryMessage, protocol.EncodePatches(&protocol.PatchesFrame{
		Seq:     s.seq,
		Patches: patches,
	}))
}

// sendError writes a JSON error frame. Error frames are always text, in
// both frame formats.
func (s *Session) sendError(message string) error {
	data, err := json.Marshal(errorFrame{Type: FrameTypeError, Error: message})
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeLocked(websocket.TextMessage, data)
}

func (s *Session) writeLocked(msgType int, data []byte) error {
	s.conn.SetWriteDeadline(time.Now().Add(s.config.WriteTimeout))
	if err := s.conn.WriteMessage(msgType, data); err != nil {
		return err
	}
	s.metrics.frameBytes.Add(float64(len(data)))
	return nil
}

// SendClose sends a close frame with the given code and closes the
// connection.
func (s *Session) SendClose(code int, reason string) {
	s.mu.Lock()
	deadline := time.Now().Add(s.config.WriteTimeout)
	s.conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(code, reason), deadline)
	s.mu.Unlock()
	s.Close()
}

// Close closes the connection. It is safe to call more than once.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		s.conn.Close()
	})
}
