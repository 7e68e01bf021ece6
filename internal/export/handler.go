package export

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/insketch/insketch/internal/geom"
	"github.com/insketch/insketch/internal/render"
	"github.com/insketch/insketch/internal/session"
)

type Handler struct {
	sessions *session.Service
	canvas   geom.Rect
}

func NewHandler(sessions *session.Service, canvas geom.Rect) *Handler {
	return &Handler{sessions: sessions, canvas: canvas}
}

// Export renders a session's committed document and streams it back as
// a file download. The pending preview and any in-progress stroke are
// not part of the export.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	format := r.URL.Query().Get("format")
	if format != "pdf" && format != "svg" {
		http.Error(w, "invalid format: must be pdf or svg", http.StatusBadRequest)
		return
	}

	name := r.URL.Query().Get("name")
	if name == "" {
		name = "sketch"
	}
	// Sanitize filename
	name = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' || r == '_' {
			return r
		}
		return '-'
	}, name)

	var buf bytes.Buffer
	var contentType string

	err := h.sessions.With(sessionID, func(sess *session.Session) error {
		switch format {
		case "pdf":
			contentType = "application/pdf"
			surface := render.NewPDF(h.canvas)
			sess.RenderAll(surface)
			return surface.Output(&buf)
		default:
			contentType = "image/svg+xml"
			surface := render.NewSVG(h.canvas)
			sess.RenderAll(surface)
			_, err := surface.WriteTo(&buf)
			return err
		}
	})
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			http.Error(w, "session not found", http.StatusNotFound)
			return
		}
		slog.Error("export failed", "sessionId", sessionID, "format", format, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.%s"`, name, format))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Write(buf.Bytes())

	slog.Info("export complete", "sessionId", sessionID, "format", format, "size", buf.Len())
}
