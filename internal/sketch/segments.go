package sketch

import (
	"github.com/insketch/insketch/internal/geom"
	"github.com/insketch/insketch/internal/typeid"
)

// LineSegment is the straight-line replacement a classified stroke
// complements into. Segments are terminal: they never complement
// further.
type LineSegment struct {
	id    string
	start geom.Point
	end   geom.Point
	style Style
}

func NewLineSegment(start, end geom.Point, style Style) *LineSegment {
	return &LineSegment{
		id:    typeid.NewObjectID(),
		start: start,
		end:   end,
		style: style,
	}
}

func (l *LineSegment) ID() string        { return l.id }
func (l *LineSegment) Start() geom.Point { return l.start }
func (l *LineSegment) End() geom.Point   { return l.end }
func (l *LineSegment) Style() Style      { return l.style }

func (l *LineSegment) Render(surface Surface) {
	surface.DrawLine(l.start, l.end, l.style)
}

func (l *LineSegment) Clone() Object {
	clone := *l
	return &clone
}

func (l *LineSegment) AttemptComplement()     {}
func (l *LineSegment) IsComplementable() bool { return false }
func (l *LineSegment) Complement() Object     { return nil }

// EllipseSegment is the ellipse replacement for strokes classified as
// an ellipse or a curve.
type EllipseSegment struct {
	id      string
	ellipse geom.Ellipse
	style   Style
}

func NewEllipseSegment(ellipse geom.Ellipse, style Style) *EllipseSegment {
	return &EllipseSegment{
		id:      typeid.NewObjectID(),
		ellipse: ellipse,
		style:   style,
	}
}

func (e *EllipseSegment) ID() string            { return e.id }
func (e *EllipseSegment) Ellipse() geom.Ellipse { return e.ellipse }
func (e *EllipseSegment) Style() Style          { return e.style }

func (e *EllipseSegment) Render(surface Surface) {
	surface.DrawEllipse(e.ellipse, e.style)
}

func (e *EllipseSegment) Clone() Object {
	clone := *e
	return &clone
}

func (e *EllipseSegment) AttemptComplement()     {}
func (e *EllipseSegment) IsComplementable() bool { return false }
func (e *EllipseSegment) Complement() Object     { return nil }
