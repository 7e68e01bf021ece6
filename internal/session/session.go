// Package session implements the editing surface of the sketch engine:
// one Session owns a document, its edit history, the stroke being drawn
// and the pending shape preview. The Service wraps sessions for
// concurrent use by the HTTP and WebSocket layers.
package session

import (
	"errors"

	"github.com/insketch/insketch/internal/document"
	"github.com/insketch/insketch/internal/geom"
	"github.com/insketch/insketch/internal/history"
	"github.com/insketch/insketch/internal/sketch"
	"github.com/insketch/insketch/internal/typeid"
)

var (
	ErrNoActiveStroke   = errors.New("no active stroke")
	ErrNoPendingPreview = errors.New("no pending preview")
)

// preview is a classified replacement waiting for the user's verdict.
// index is the document slot the original stroke occupies.
type preview struct {
	replacement sketch.Object
	original    sketch.Object
	index       int
}

// Session drives the draw → classify → preview → commit workflow for a
// single document. It is synchronous and not safe for concurrent use;
// the Service serializes access.
type Session struct {
	id      string
	doc     *document.Document
	history *history.History
	current *sketch.Stroke
	pending *preview
}

// New creates a session with an empty document.
func New() *Session {
	return NewWithDocument(document.New())
}

// NewWithDocument creates a session over an existing document. The
// document's objects predate the session, so they cannot be undone.
func NewWithDocument(doc *document.Document) *Session {
	return &Session{
		id:      typeid.NewSessionID(),
		doc:     doc,
		history: history.New(),
	}
}

// --- Commands ---

// BeginStroke discards any pending preview and opens a new freehand
// stroke. The returned stroke ID must accompany every ExtendStroke and
// FinishStroke call for this gesture.
func (s *Session) BeginStroke(color string, width float64) string {
	s.pending = nil
	s.current = sketch.NewStroke(color, width)
	return s.current.ID()
}

// ExtendStroke appends a point to the in-progress stroke.
func (s *Session) ExtendStroke(strokeID string, pt geom.Point) error {
	if s.current == nil || s.current.ID() != strokeID {
		return ErrNoActiveStroke
	}
	s.current.AddPoint(pt)
	return nil
}

// FinishStroke completes the in-progress stroke. The stroke joins the
// document as a recorded edit and is classified; when a cleaner
// primitive fits, the replacement is staged as the pending preview for
// CommitPreview or DiscardPreview to resolve. A stroke with fewer than
// two points is dropped without touching the document.
func (s *Session) FinishStroke(strokeID string) error {
	if s.current == nil || s.current.ID() != strokeID {
		return ErrNoActiveStroke
	}
	stroke := s.current
	s.current = nil

	if stroke.PointCount() < 2 {
		return nil
	}

	add := history.NewAdd(s.doc, stroke)
	add.Execute()
	s.history.Record(add)

	stroke.AttemptComplement()
	if !stroke.IsComplementable() {
		return nil
	}
	replacement := stroke.Complement()
	if replacement == nil {
		return nil
	}

	s.pending = &preview{
		replacement: replacement,
		original:    stroke,
		index:       s.doc.LastIndex(),
	}
	return nil
}

// CommitPreview swaps the original stroke for the previewed primitive
// as a recorded edit.
func (s *Session) CommitPreview() error {
	if s.pending == nil {
		return ErrNoPendingPreview
	}
	rep := history.NewReplace(s.doc, s.pending.index, s.pending.original, s.pending.replacement)
	rep.Execute()
	s.history.Record(rep)
	s.pending = nil
	return nil
}

// DiscardPreview drops the pending preview. The original stroke stays
// in the document.
func (s *Session) DiscardPreview() error {
	if s.pending == nil {
		return ErrNoPendingPreview
	}
	s.pending = nil
	return nil
}

// Undo reverts the most recent edit. A pending preview is discarded
// first: its document index would go stale the moment history moves.
func (s *Session) Undo() {
	s.pending = nil
	s.history.Undo()
}

// Redo re-applies the most recently undone edit, discarding any
// pending preview first.
func (s *Session) Redo() {
	s.pending = nil
	s.history.Redo()
}

// --- Queries ---

// ID returns the session's identifier.
func (s *Session) ID() string {
	return s.id
}

// HasPendingPreview reports whether a classified replacement awaits a
// commit or discard.
func (s *Session) HasPendingPreview() bool {
	return s.pending != nil
}

// CanUndo reports whether an undo would change the document.
func (s *Session) CanUndo() bool {
	return s.history.CanUndo()
}

// CanRedo reports whether a redo would change the document.
func (s *Session) CanRedo() bool {
	return s.history.CanRedo()
}

// ObjectCount returns the number of committed objects.
func (s *Session) ObjectCount() int {
	return s.doc.Len()
}

// RenderAll draws the committed document onto the surface. The
// in-progress stroke and the pending preview are not included.
func (s *Session) RenderAll(surface sketch.Surface) {
	s.doc.Render(surface)
}

// RenderPreview draws the pending replacement, if any. Overlay styling
// such as reduced opacity is up to the surface.
func (s *Session) RenderPreview(surface sketch.Surface) {
	if s.pending == nil {
		return
	}
	s.pending.replacement.Render(surface)
}
