package live

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insketch/insketch/internal/session"
	"github.com/insketch/insketch/internal/sketch"
)

func startServer(t *testing.T) (*httptest.Server, string) {
	t.Helper()

	sessions := session.NewService()
	id := sessions.Create()

	h := NewHandler(sessions, nil, sketch.Style{Stroke: "#000000", StrokeWidth: 3})
	r := mux.NewRouter()
	r.HandleFunc("/ws/sessions/{sessionId}", h.Serve)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, id
}

func dialSocket(t *testing.T, ctx context.Context, srv *httptest.Server, sessionID string) *websocket.Conn {
	t.Helper()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/sessions/" + sessionID
	conn, _, err := websocket.Dial(ctx, wsURL, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "") })
	return conn
}

func sendMsg(t *testing.T, ctx context.Context, conn *websocket.Conn, msgType string, payload interface{}) {
	t.Helper()

	var raw json.RawMessage
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		raw = data
	}
	out, err := json.Marshal(Message{Type: msgType, Payload: raw})
	require.NoError(t, err)
	require.NoError(t, conn.Write(ctx, websocket.MessageText, out))
}

func readMsg(t *testing.T, ctx context.Context, conn *websocket.Conn) *Message {
	t.Helper()

	_, data, err := conn.Read(ctx)
	require.NoError(t, err)
	var msg Message
	require.NoError(t, json.Unmarshal(data, &msg))
	return &msg
}

func readFrame(t *testing.T, ctx context.Context, conn *websocket.Conn) *FramePayload {
	t.Helper()

	msg := readMsg(t, ctx, conn)
	require.Equal(t, TypeFrame, msg.Type)
	var frame FramePayload
	require.NoError(t, json.Unmarshal(msg.Payload, &frame))
	return &frame
}

func TestSocket_DrawCommitUndoFlow(t *testing.T) {
	srv, id := startServer(t)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	conn := dialSocket(t, ctx, srv, id)

	// Connection opens with the current (empty) document.
	initial := readFrame(t, ctx, conn)
	assert.Empty(t, initial.Commands)
	assert.Equal(t, 0, initial.State.ObjectCount)

	sendMsg(t, ctx, conn, TypeStrokeBegin, StrokeBeginPayload{Color: "#000000", Width: 3})
	begun := readFrame(t, ctx, conn)
	assert.Equal(t, 0, begun.State.ObjectCount)

	// Points are not echoed; the client draws the wet stroke itself.
	for _, pt := range []StrokePointPayload{{X: 0, Y: 0}, {X: 50, Y: 25}, {X: 100, Y: 50}} {
		sendMsg(t, ctx, conn, TypeStrokePoint, pt)
	}

	sendMsg(t, ctx, conn, TypeStrokeEnd, nil)
	finished := readFrame(t, ctx, conn)
	require.True(t, finished.State.HasPendingPreview)
	assert.Equal(t, 1, finished.State.ObjectCount)
	// Two stroke segments at full opacity plus the preview line at half.
	require.Len(t, finished.Commands, 3)
	assert.Equal(t, 1.0, finished.Commands[0].Opacity)
	assert.Equal(t, 0.5, finished.Commands[2].Opacity)

	sendMsg(t, ctx, conn, TypePreviewCommit, nil)
	committed := readFrame(t, ctx, conn)
	assert.False(t, committed.State.HasPendingPreview)
	assert.Equal(t, 1, committed.State.ObjectCount)
	require.Len(t, committed.Commands, 1)
	assert.Equal(t, 1.0, committed.Commands[0].Opacity)

	sendMsg(t, ctx, conn, TypeHistoryUndo, nil)
	undone := readFrame(t, ctx, conn)
	assert.Len(t, undone.Commands, 2)
	assert.True(t, undone.State.CanRedo)

	sendMsg(t, ctx, conn, TypeHistoryRedo, nil)
	redone := readFrame(t, ctx, conn)
	assert.Len(t, redone.Commands, 1)
}

func TestSocket_RejectsBadMessages(t *testing.T) {
	srv, id := startServer(t)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	conn := dialSocket(t, ctx, srv, id)

	readFrame(t, ctx, conn)

	// Commit with nothing pending.
	sendMsg(t, ctx, conn, TypePreviewCommit, nil)
	msg := readMsg(t, ctx, conn)
	require.Equal(t, TypeError, msg.Type)
	var errPayload ErrorPayload
	require.NoError(t, json.Unmarshal(msg.Payload, &errPayload))
	assert.Contains(t, errPayload.Message, "no pending preview")

	// Point with no open gesture.
	sendMsg(t, ctx, conn, TypeStrokePoint, StrokePointPayload{X: 1, Y: 1})
	msg = readMsg(t, ctx, conn)
	assert.Equal(t, TypeError, msg.Type)

	// Unknown type.
	sendMsg(t, ctx, conn, "bogus", nil)
	msg = readMsg(t, ctx, conn)
	assert.Equal(t, TypeError, msg.Type)

	// The connection survives rejected messages.
	sendMsg(t, ctx, conn, TypeStrokeBegin, nil)
	frame := readFrame(t, ctx, conn)
	assert.Equal(t, 0, frame.State.ObjectCount)
}

func TestSocket_UnknownSessionRefused(t *testing.T) {
	srv, _ := startServer(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/sessions/sess_missing"
	conn, _, err := websocket.Dial(ctx, wsURL, nil)
	if conn != nil {
		conn.Close(websocket.StatusNormalClosure, "")
	}
	assert.Error(t, err)
}
