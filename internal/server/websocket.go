package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel/attribute"

	"github.com/vango-dev/featuregrid/internal/builder"
	"github.com/vango-dev/featuregrid/internal/errors"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Largest client message accepted.
	maxMessageSize = 64 << 10
)

// HandleWebSocket upgrades the request and runs the builder session's
// event loop. The session is taken from the cookie set by the page
// handler.
func (s *Server) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	s.serveSocket(w, r, s.sessionFromRequest(r))
}

// handleShowcaseSocket is HandleWebSocket for showcase sessions.
func (s *Server) handleShowcaseSocket(w http.ResponseWriter, r *http.Request) {
	s.serveSocket(w, r, lookupSession(r, s.showcases, ShowcaseCookie))
}

func (s *Server) serveSocket(w http.ResponseWriter, r *http.Request, session *Session) {
	if session == nil {
		s.metrics.RecordWebSocketError("session_not_found")
		writeError(w, http.StatusUnauthorized, errors.New("E501"))
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written an HTTP error.
		s.metrics.RecordWebSocketError("upgrade")
		s.logger.Warn("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	s.logger.Debug("websocket connected", "session_id", session.ID)
	s.readLoop(r.Context(), conn, session)
}

// readLoop reads client messages until the connection or the session
// closes. Every message is answered with a render or an error.
func (s *Server) readLoop(ctx context.Context, conn *websocket.Conn, session *Session) {
	conn.SetReadLimit(maxMessageSize)

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-session.Done():
			s.logger.Debug("closing websocket of ended session", "session_id", session.ID)
			conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, "session ended"),
				time.Now().Add(time.Second))
			conn.Close()
		case <-stop:
		}
	}()

	// Send the current frame first so the client's seq is in sync.
	frame, err := session.Current()
	if err != nil {
		s.send(conn, errorMessage(err))
		return
	}
	if !s.send(conn, renderMessage(frame)) {
		return
	}

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if !session.IsClosed() && websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseNormalClosure) {
				s.metrics.RecordWebSocketError("read")
				s.logger.Warn("websocket read error", "session_id", session.ID, "error", err)
			}
			return
		}

		reply := s.handleMessage(ctx, session, data)
		if !s.send(conn, reply) {
			return
		}
	}
}

// handleMessage processes one client message and returns the reply.
func (s *Server) handleMessage(ctx context.Context, session *Session, data []byte) ServerMessage {
	msg, err := decodeClientMessage(data)
	if err != nil {
		s.metrics.RecordWebSocketError("invalid_message")
		return errorMessage(err)
	}

	name := msg.Event
	if msg.Type == MsgAction {
		name = msg.Action.Type
	}
	name = eventLabel(name)

	_, span := s.tracing.StartEvent(ctx, session.ID, name)
	start := time.Now()

	var frame Frame
	switch msg.Type {
	case MsgEvent:
		span.SetAttributes(attribute.String("featuregrid.hid", msg.HID))
		frame, err = session.Dispatch(msg.Seq, msg.HID, msg.Event, msg.Value)
	case MsgAction:
		frame, _, err = session.Apply(*msg.Action)
	}

	s.metrics.RecordEvent(name, time.Since(start), err)
	span.End(err)

	switch {
	case err == nil:
		return renderMessage(frame)
	case errors.Code(err) == "E504":
		// Stale event: resynchronize instead of reporting an error.
		s.metrics.RecordWebSocketError("stale_event")
		s.logger.Debug("stale event", "session_id", session.ID, "seq", msg.Seq, "current", frame.Seq)
		return renderMessage(frame)
	default:
		s.logger.Debug("event rejected", "session_id", session.ID, "event", name, "error", err)
		return errorMessage(err)
	}
}

// send writes msg and reports whether the connection is still usable.
func (s *Server) send(conn *websocket.Conn, msg ServerMessage) bool {
	conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteJSON(msg); err != nil {
		s.metrics.RecordWebSocketError("write")
		s.logger.Debug("websocket write failed", "error", err)
		return false
	}
	return true
}

// eventLabel maps a client-supplied event or action name onto a fixed
// set, so metric labels and span names stay bounded.
func eventLabel(name string) string {
	switch name {
	case "click", "input", "change":
		return name
	}
	if builder.KnownAction(name) {
		return name
	}
	return "other"
}
