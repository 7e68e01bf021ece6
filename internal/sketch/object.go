package sketch

import "github.com/insketch/insketch/internal/geom"

// Style carries the stroke appearance shared by every drawable object.
type Style struct {
	Stroke      string  `json:"stroke"`
	StrokeWidth float64 `json:"strokeWidth"`
}

// Surface receives the primitives objects draw themselves with. Concrete
// surfaces include the draw-command buffer sent to Canvas2D frontends
// and the PDF and SVG exporters.
type Surface interface {
	DrawLine(a, b geom.Point, style Style)
	DrawEllipse(e geom.Ellipse, style Style)
}

// Object is a drawable canvas element: a raw freehand stroke or one of
// the cleaned-up primitives a stroke complements into.
type Object interface {
	// ID returns the stable identifier used to correlate draw commands
	// with canvas objects. Clones share their source's ID.
	ID() string

	// Render draws the object onto the surface using its stored color
	// and width. It never mutates the object.
	Render(surface Surface)

	// Clone returns a copy with independent geometry, so commands and
	// previews can hold objects without interference from later
	// mutation of the live copy.
	Clone() Object

	// AttemptComplement recomputes the classification for a stroke.
	// Segments are terminal and ignore it.
	AttemptComplement()

	// IsComplementable reports whether Complement would produce a
	// replacement.
	IsComplementable() bool

	// Complement builds the cleaned-up replacement primitive, or nil
	// when the object has nothing to offer.
	Complement() Object
}
