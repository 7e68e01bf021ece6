package classify

import (
	"math"

	"github.com/insketch/insketch/internal/geom"
)

// Kind identifies the primitive a finished stroke most resembles.
type Kind int

const (
	// Unclassified indicates the stroke matched no primitive.
	Unclassified Kind = iota

	// Line indicates the stroke stays within tolerance of the segment
	// between its first and last point.
	Line

	// Ellipse indicates the stroke follows the ellipse inscribed in its
	// bounding box.
	Ellipse

	// Curve indicates the stroke is too complex for a line or ellipse
	// but long enough to offer a smoothed replacement.
	Curve
)

// String returns the kind name for logging.
func (k Kind) String() string {
	switch k {
	case Line:
		return "line"
	case Ellipse:
		return "ellipse"
	case Curve:
		return "curve"
	default:
		return "unclassified"
	}
}

// minEllipseRadius rejects bounding-box candidates too small to be a
// deliberate ellipse.
const minEllipseRadius = 10.0

// ellipseTolerance is the maximum normalized radial deviation from the
// candidate ellipse.
const ellipseTolerance = 0.2

// ellipseMinPoints is the minimum stroke length for the ellipse test.
const ellipseMinPoints = 5

// curveMinPoints is the point count a stroke must exceed to qualify as
// a curve.
const curveMinPoints = 10

// lineRejectFactor scales the line tolerance into the threshold a
// stroke's line deviation must exceed before an ellipse candidate wins.
const lineRejectFactor = 5.0

// Result holds the outcome of classifying a stroke.
type Result struct {
	Kind Kind

	// LineDeviation is the maximum perpendicular distance of any point
	// from the infinite line through the first and last point.
	LineDeviation float64

	// Candidate is the ellipse inscribed in the stroke's bounding box.
	// It is computed for every stroke with measurable extent so curve
	// replacements always have real geometry, and holds the fitted
	// parameters when Kind is Ellipse.
	Candidate geom.Ellipse
}

// LineTolerance returns the line acceptance threshold for a stroke width.
func LineTolerance(strokeWidth float64) float64 {
	return 2 * strokeWidth
}

// Classify decides which primitive a point sequence resembles.
// Precedence is fixed: a clean ellipse that is clearly not a line wins,
// then a line within tolerance, then a curve when the stroke is long
// enough. Fewer than two points is always Unclassified. The function is
// pure; identical input yields identical output.
func Classify(points []geom.Point, strokeWidth float64) Result {
	if len(points) < 2 {
		return Result{Kind: Unclassified}
	}

	box := geom.BoundsOf(points)
	if box.Width == 0 && box.Height == 0 {
		// Every point coincides; there is no geometry to fit.
		return Result{Kind: Unclassified}
	}

	res := Result{
		Kind:          Unclassified,
		LineDeviation: maxLineDeviation(points),
		Candidate: geom.Ellipse{
			Center: box.Center(),
			RX:     box.Width / 2,
			RY:     box.Height / 2,
		},
	}

	lineTol := LineTolerance(strokeWidth)
	ellipseOK := len(points) >= ellipseMinPoints && fitsEllipse(points, res.Candidate)

	switch {
	case ellipseOK && res.LineDeviation > lineRejectFactor*lineTol:
		res.Kind = Ellipse
	case res.LineDeviation < lineTol:
		// A line beats an ambiguous ellipse: it is the simpler primitive.
		res.Kind = Line
	case len(points) > curveMinPoints:
		res.Kind = Curve
	}

	return res
}

// maxLineDeviation returns the largest perpendicular distance from the
// infinite line through the first and last point. When the endpoints
// coincide the squared length is replaced with a safe divisor, which
// degrades the formula to plain distance from the shared endpoint.
func maxLineDeviation(points []geom.Point) float64 {
	first := points[0]
	last := points[len(points)-1]

	dx := last.X - first.X
	dy := last.Y - first.Y
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		lenSq = 1
	}

	var maxDev float64
	for _, p := range points {
		px := p.X - first.X
		py := p.Y - first.Y

		// Reject the component along the line direction; what remains
		// is the perpendicular offset.
		t := (px*dx + py*dy) / lenSq
		dev := math.Hypot(px-t*dx, py-t*dy)
		if dev > maxDev {
			maxDev = dev
		}
	}

	return maxDev
}

// fitsEllipse reports whether every point lies close to the candidate
// ellipse. Candidates with a radius under minEllipseRadius are rejected
// outright so near-degenerate strokes cannot pass.
func fitsEllipse(points []geom.Point, e geom.Ellipse) bool {
	if e.RX < minEllipseRadius || e.RY < minEllipseRadius {
		return false
	}

	var maxDev float64
	for _, p := range points {
		nx := (p.X - e.Center.X) / e.RX
		ny := (p.Y - e.Center.Y) / e.RY
		dev := math.Abs(nx*nx + ny*ny - 1)
		if dev > maxDev {
			maxDev = dev
		}
	}

	return maxDev < ellipseTolerance
}
