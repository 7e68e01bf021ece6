package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/insketch/insketch/internal/geom"
	"github.com/insketch/insketch/internal/sketch"
)

// SVGSurface renders drawing into a standalone SVG document in canvas
// coordinates.
type SVGSurface struct {
	canvas   geom.Rect
	opacity  float64
	elements []string
}

// NewSVG creates a surface with the given canvas as the viewBox.
func NewSVG(canvas geom.Rect) *SVGSurface {
	return &SVGSurface{canvas: canvas, opacity: 1}
}

// SetOpacity sets the stroke opacity for subsequent drawing.
func (s *SVGSurface) SetOpacity(alpha float64) {
	s.opacity = alpha
}

func (s *SVGSurface) DrawLine(a, b geom.Point, style sketch.Style) {
	s.elements = append(s.elements, fmt.Sprintf(
		`<line x1="%g" y1="%g" x2="%g" y2="%g" stroke="%s" stroke-width="%g"%s/>`,
		a.X, a.Y, b.X, b.Y, style.Stroke, style.StrokeWidth, s.opacityAttr(),
	))
}

func (s *SVGSurface) DrawEllipse(e geom.Ellipse, style sketch.Style) {
	s.elements = append(s.elements, fmt.Sprintf(
		`<ellipse cx="%g" cy="%g" rx="%g" ry="%g" stroke="%s" stroke-width="%g"%s/>`,
		e.Center.X, e.Center.Y, e.RX, e.RY, style.Stroke, style.StrokeWidth, s.opacityAttr(),
	))
}

// WriteTo writes the finished document.
func (s *SVGSurface) WriteTo(w io.Writer) (int64, error) {
	var doc strings.Builder
	fmt.Fprintf(&doc,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%g" height="%g" viewBox="%g %g %g %g">`,
		s.canvas.Width, s.canvas.Height,
		s.canvas.X, s.canvas.Y, s.canvas.Width, s.canvas.Height,
	)
	doc.WriteString("\n")
	doc.WriteString(`<g fill="none" stroke-linecap="round" stroke-linejoin="round">`)
	doc.WriteString("\n")
	for _, el := range s.elements {
		doc.WriteString(el)
		doc.WriteString("\n")
	}
	doc.WriteString("</g>\n</svg>\n")

	n, err := io.WriteString(w, doc.String())
	return int64(n), err
}

func (s *SVGSurface) opacityAttr() string {
	if s.opacity >= 1 {
		return ""
	}
	return fmt.Sprintf(` stroke-opacity="%g"`, s.opacity)
}
