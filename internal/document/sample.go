package document

import (
	"math"

	"github.com/insketch/insketch/internal/geom"
	"github.com/insketch/insketch/internal/sketch"
)

// NewSampleDocument builds a small canvas with one of each primitive,
// used by the wasm playground before the user draws anything.
func NewSampleDocument() *Document {
	doc := New()

	style := sketch.Style{Stroke: "#000000", StrokeWidth: 3}

	// A gentle freehand arc, left as-is.
	stroke := sketch.NewStroke(style.Stroke, style.StrokeWidth)
	for i := 0; i <= 8; i++ {
		t := float64(i) / 8
		stroke.AddPoint(geom.Point{
			X: 60 + 180*t,
			Y: 320 - 60*math.Sin(t*math.Pi),
		})
	}
	doc.Append(stroke)

	doc.Append(sketch.NewLineSegment(
		geom.Point{X: 80, Y: 80},
		geom.Point{X: 280, Y: 140},
		style,
	))

	doc.Append(sketch.NewEllipseSegment(
		geom.Ellipse{Center: geom.Point{X: 460, Y: 200}, RX: 90, RY: 55},
		style,
	))

	return doc
}
