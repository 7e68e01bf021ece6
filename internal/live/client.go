package live

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"

	"github.com/insketch/insketch/internal/geom"
	"github.com/insketch/insketch/internal/render"
	"github.com/insketch/insketch/internal/session"
	"github.com/insketch/insketch/internal/sketch"
)

const (
	writeWait  = 10 * time.Second
	pingPeriod = 30 * time.Second
	maxMsgSize = 64 * 1024
)

// Client is one WebSocket connection bound to one session.
type Client struct {
	id        string
	conn      *websocket.Conn
	send      chan []byte
	sessions  *session.Service
	sessionID string
	pen       sketch.Style

	// Open gesture on this connection. Only the read pump touches it.
	strokeID string
}

func NewClient(conn *websocket.Conn, sessions *session.Service, sessionID string, pen sketch.Style) *Client {
	return &Client{
		id:        uuid.New().String(),
		conn:      conn,
		send:      make(chan []byte, 256),
		sessions:  sessions,
		sessionID: sessionID,
		pen:       pen,
	}
}

func (c *Client) ReadPump(ctx context.Context) {
	defer func() {
		c.conn.Close(websocket.StatusNormalClosure, "")
		slog.Info("client disconnected", "clientId", c.id, "sessionId", c.sessionID)
	}()

	c.conn.SetReadLimit(maxMsgSize)

	for {
		_, data, err := c.conn.Read(ctx)
		if err != nil {
			if websocket.CloseStatus(err) == websocket.StatusNormalClosure ||
				websocket.CloseStatus(err) == websocket.StatusGoingAway {
				return
			}
			slog.Debug("read error", "error", err, "clientId", c.id)
			return
		}

		var msg Message
		if err := json.Unmarshal(data, &msg); err != nil {
			slog.Warn("invalid message", "error", err, "clientId", c.id)
			continue
		}

		c.handleMessage(&msg)
	}
}

func (c *Client) WritePump(ctx context.Context) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close(websocket.StatusNormalClosure, "")
	}()

	for {
		select {
		case message, ok := <-c.send:
			if !ok {
				return
			}

			writeCtx, cancel := context.WithTimeout(ctx, writeWait)
			err := c.conn.Write(writeCtx, websocket.MessageText, message)
			cancel()
			if err != nil {
				slog.Debug("write error", "error", err, "clientId", c.id)
				return
			}

		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(ctx, writeWait)
			err := c.conn.Ping(pingCtx)
			cancel()
			if err != nil {
				return
			}

		case <-ctx.Done():
			return
		}
	}
}

// handleMessage applies one client message to the session. Every
// message except stroke.point is answered with a fresh frame; points
// are drawn locally by the client until the gesture ends.
func (c *Client) handleMessage(msg *Message) {
	err := c.sessions.With(c.sessionID, func(sess *session.Session) error {
		switch msg.Type {
		case TypeStrokeBegin:
			var p StrokeBeginPayload
			if len(msg.Payload) > 0 {
				if err := json.Unmarshal(msg.Payload, &p); err != nil {
					return fmt.Errorf("invalid %s payload: %w", msg.Type, err)
				}
			}
			if p.Color == "" {
				p.Color = c.pen.Stroke
			}
			if p.Width <= 0 {
				p.Width = c.pen.StrokeWidth
			}
			c.strokeID = sess.BeginStroke(p.Color, p.Width)
			return nil

		case TypeStrokePoint:
			var p StrokePointPayload
			if err := json.Unmarshal(msg.Payload, &p); err != nil {
				return fmt.Errorf("invalid %s payload: %w", msg.Type, err)
			}
			return sess.ExtendStroke(c.strokeID, geom.Point{X: p.X, Y: p.Y})

		case TypeStrokeEnd:
			err := sess.FinishStroke(c.strokeID)
			c.strokeID = ""
			return err

		case TypePreviewCommit:
			return sess.CommitPreview()

		case TypePreviewDiscard:
			return sess.DiscardPreview()

		case TypeHistoryUndo:
			sess.Undo()
			return nil

		case TypeHistoryRedo:
			sess.Redo()
			return nil

		default:
			return fmt.Errorf("unknown message type: %s", msg.Type)
		}
	})
	if err != nil {
		c.sendError(err)
		return
	}

	if msg.Type != TypeStrokePoint {
		c.SendFrame()
	}
}

// SendFrame compiles the session into draw commands and queues it for
// the client.
func (c *Client) SendFrame() {
	var payload FramePayload
	err := c.sessions.With(c.sessionID, func(sess *session.Session) error {
		list := render.NewDrawList(1)
		sess.RenderAll(list)

		overlay := render.NewDrawList(render.PreviewOpacity)
		sess.RenderPreview(overlay)
		list.Append(overlay)

		payload.Commands = list.Commands()
		payload.State = session.Snapshot(sess)
		return nil
	})
	if err != nil {
		c.sendError(err)
		return
	}

	c.sendMessage(TypeFrame, payload)
}

func (c *Client) sendError(err error) {
	slog.Warn("message rejected", "error", err, "clientId", c.id, "sessionId", c.sessionID)
	c.sendMessage(TypeError, ErrorPayload{Message: err.Error()})
}

func (c *Client) sendMessage(msgType string, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		slog.Error("marshal payload", "type", msgType, "error", err)
		return
	}

	out, err := json.Marshal(Message{Type: msgType, Payload: data})
	if err != nil {
		slog.Error("marshal message", "type", msgType, "error", err)
		return
	}

	select {
	case c.send <- out:
	default:
		slog.Warn("client send buffer full, dropping message", "clientId", c.id)
	}
}
