// Package live runs the WebSocket editing channel: one connection per
// session, carrying stroke gestures in and compiled draw frames out.
package live

import (
	"encoding/json"

	"github.com/insketch/insketch/internal/render"
	"github.com/insketch/insketch/internal/session"
)

// Message is the envelope for every frame on the sketch socket.
type Message struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Client → server message types.
const (
	TypeStrokeBegin    = "stroke.begin"
	TypeStrokePoint    = "stroke.point"
	TypeStrokeEnd      = "stroke.end"
	TypePreviewCommit  = "preview.commit"
	TypePreviewDiscard = "preview.discard"
	TypeHistoryUndo    = "history.undo"
	TypeHistoryRedo    = "history.redo"
)

// Server → client message types.
const (
	TypeFrame = "frame"
	TypeError = "error"
)

// StrokeBeginPayload opens a gesture. Empty color or non-positive
// width fall back to the server's default pen.
type StrokeBeginPayload struct {
	Color string  `json:"color"`
	Width float64 `json:"width"`
}

// StrokePointPayload extends the open gesture. The client draws the
// in-progress stroke locally, so points are not echoed back.
type StrokePointPayload struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// FramePayload is a full redraw: the committed pass followed by the
// preview pass at reduced opacity, plus the session state.
type FramePayload struct {
	Commands []render.DrawCommand `json:"commands"`
	State    *session.State       `json:"state"`
}

// ErrorPayload reports a rejected message.
type ErrorPayload struct {
	Message string `json:"message"`
}
