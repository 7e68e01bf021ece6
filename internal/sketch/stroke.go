package sketch

import (
	"github.com/insketch/insketch/internal/classify"
	"github.com/insketch/insketch/internal/geom"
	"github.com/insketch/insketch/internal/typeid"
)

// Stroke is a raw freehand point sequence captured between pointer-down
// and pointer-up. Points are appended while the pointer is down; after
// the gesture completes the content is never edited again, only
// classified.
type Stroke struct {
	id     string
	points []geom.Point
	style  Style
	class  classify.Result
}

func NewStroke(color string, width float64) *Stroke {
	return &Stroke{
		id:    typeid.NewObjectID(),
		style: Style{Stroke: color, StrokeWidth: width},
	}
}

func (s *Stroke) ID() string { return s.id }

// AddPoint appends a point in drawing order.
func (s *Stroke) AddPoint(p geom.Point) {
	s.points = append(s.points, p)
}

func (s *Stroke) PointCount() int { return len(s.points) }

// Points returns the captured points. Callers must not mutate the slice.
func (s *Stroke) Points() []geom.Point { return s.points }

func (s *Stroke) Style() Style { return s.style }

// Classification returns the result of the last AttemptComplement.
func (s *Stroke) Classification() classify.Result { return s.class }

// Render draws the stroke as line segments between consecutive points.
func (s *Stroke) Render(surface Surface) {
	for i := 1; i < len(s.points); i++ {
		surface.DrawLine(s.points[i-1], s.points[i], s.style)
	}
}

func (s *Stroke) Clone() Object {
	clone := *s
	clone.points = make([]geom.Point, len(s.points))
	copy(clone.points, s.points)
	return &clone
}

// AttemptComplement classifies the stroke from its points and width,
// replacing any previous classification.
func (s *Stroke) AttemptComplement() {
	s.class = classify.Classify(s.points, s.style.StrokeWidth)
}

func (s *Stroke) IsComplementable() bool {
	return s.class.Kind != classify.Unclassified
}

// Complement builds the replacement primitive for the stored
// classification: a line segment spanning the endpoints for Line, an
// ellipse segment from the candidate geometry for Ellipse and Curve.
// Returns nil while the stroke is unclassified.
func (s *Stroke) Complement() Object {
	switch s.class.Kind {
	case classify.Line:
		return NewLineSegment(s.points[0], s.points[len(s.points)-1], s.style)
	case classify.Ellipse, classify.Curve:
		return NewEllipseSegment(s.class.Candidate, s.style)
	default:
		return nil
	}
}
