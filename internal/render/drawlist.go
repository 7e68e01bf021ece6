// Package render provides the concrete drawing surfaces: a draw-command
// buffer for Canvas2D frontends, a PDF page and an SVG document.
package render

import (
	"encoding/json"

	"github.com/insketch/insketch/internal/geom"
	"github.com/insketch/insketch/internal/sketch"
)

// PreviewOpacity is the alpha applied to the pending-preview pass.
const PreviewOpacity = 0.5

// DrawCommand is a single drawing operation for the frontend to execute
// on a Canvas2D context.
type DrawCommand struct {
	Op          string        `json:"op"`
	Path        []PathCommand `json:"path,omitempty"`
	Stroke      string        `json:"stroke,omitempty"`
	StrokeWidth float64       `json:"strokeWidth,omitempty"`
	Opacity     float64       `json:"opacity,omitempty"`
}

// PathCommand is a single path segment.
// Format matches Canvas2D: ["M", x, y], ["L", x, y], ["C", x1, y1, x2, y2, x, y], ["Z"].
type PathCommand []interface{}

// DrawList compiles drawing into a command buffer, in painter's order.
// Every command carries the list's opacity so the frontend can draw the
// committed and preview passes from one flat buffer.
type DrawList struct {
	opacity  float64
	commands []DrawCommand
}

// NewDrawList creates a buffer whose commands carry the given opacity.
// Use 1 for committed content and PreviewOpacity for a preview pass.
func NewDrawList(opacity float64) *DrawList {
	return &DrawList{opacity: opacity}
}

// DrawLine appends a two-point path.
func (d *DrawList) DrawLine(a, b geom.Point, style sketch.Style) {
	d.commands = append(d.commands, DrawCommand{
		Op: "path",
		Path: []PathCommand{
			{"M", a.X, a.Y},
			{"L", b.X, b.Y},
		},
		Stroke:      style.Stroke,
		StrokeWidth: style.StrokeWidth,
		Opacity:     d.opacity,
	})
}

// DrawEllipse appends a four-bezier approximation of the ellipse.
func (d *DrawList) DrawEllipse(e geom.Ellipse, style sketch.Style) {
	// k = 4 * (sqrt(2) - 1) / 3 ≈ 0.5522847498
	const k = 0.5522847498
	cx, cy := e.Center.X, e.Center.Y
	rx, ry := e.RX, e.RY
	kx, ky := rx*k, ry*k

	d.commands = append(d.commands, DrawCommand{
		Op: "path",
		Path: []PathCommand{
			{"M", cx + rx, cy},
			{"C", cx + rx, cy + ky, cx + kx, cy + ry, cx, cy + ry},
			{"C", cx - kx, cy + ry, cx - rx, cy + ky, cx - rx, cy},
			{"C", cx - rx, cy - ky, cx - kx, cy - ry, cx, cy - ry},
			{"C", cx + kx, cy - ry, cx + rx, cy - ky, cx + rx, cy},
			{"Z"},
		},
		Stroke:      style.Stroke,
		StrokeWidth: style.StrokeWidth,
		Opacity:     d.opacity,
	})
}

// Commands returns the compiled buffer.
func (d *DrawList) Commands() []DrawCommand {
	return d.commands
}

// Append merges another buffer onto the end of this one.
func (d *DrawList) Append(other *DrawList) {
	d.commands = append(d.commands, other.commands...)
}

// ToJSON serializes the buffer for the frontend.
func (d *DrawList) ToJSON() (string, error) {
	if len(d.commands) == 0 {
		return "[]", nil
	}
	data, err := json.Marshal(d.commands)
	if err != nil {
		return "[]", err
	}
	return string(data), nil
}
