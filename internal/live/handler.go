package live

import (
	"log/slog"
	"net/http"

	"github.com/coder/websocket"
	"github.com/gorilla/mux"

	"github.com/insketch/insketch/internal/session"
	"github.com/insketch/insketch/internal/sketch"
)

// Handler upgrades sketch socket connections and runs the pumps.
type Handler struct {
	sessions *session.Service
	origins  []string
	pen      sketch.Style
}

// NewHandler creates the WebSocket entry point. origins is the list of
// allowed Origin patterns; pen is the default stroke style for clients
// that do not pick their own.
func NewHandler(sessions *session.Service, origins []string, pen sketch.Style) *Handler {
	return &Handler{sessions: sessions, origins: origins, pen: pen}
}

func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	if _, err := h.sessions.State(sessionID); err != nil {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: h.origins,
	})
	if err != nil {
		slog.Error("websocket accept", "error", err)
		return
	}

	client := NewClient(conn, h.sessions, sessionID, h.pen)
	slog.Info("client connected", "clientId", client.id, "sessionId", sessionID)

	// Seed the client with the current document before any input.
	client.SendFrame()

	ctx := r.Context()
	go client.WritePump(ctx)
	client.ReadPump(ctx)
}
