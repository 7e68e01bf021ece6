package classify

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insketch/insketch/internal/geom"
)

// ellipsePoints samples n points on an axis-aligned ellipse, starting at
// the rightmost point and walking counterclockwise.
func ellipsePoints(cx, cy, rx, ry float64, n int) []geom.Point {
	points := make([]geom.Point, n)
	for i := range points {
		theta := 2 * math.Pi * float64(i) / float64(n)
		points[i] = geom.Point{
			X: cx + rx*math.Cos(theta),
			Y: cy + ry*math.Sin(theta),
		}
	}
	return points
}

func TestClassifyTooFewPoints(t *testing.T) {
	assert.Equal(t, Unclassified, Classify(nil, 3).Kind)
	assert.Equal(t, Unclassified, Classify([]geom.Point{}, 3).Kind)
	assert.Equal(t, Unclassified, Classify([]geom.Point{{X: 10, Y: 10}}, 3).Kind)
}

func TestClassifyCoincidentPoints(t *testing.T) {
	points := []geom.Point{
		{X: 5, Y: 5}, {X: 5, Y: 5}, {X: 5, Y: 5},
		{X: 5, Y: 5}, {X: 5, Y: 5}, {X: 5, Y: 5},
	}

	res := Classify(points, 3)
	assert.Equal(t, Unclassified, res.Kind)
}

func TestClassifyCollinearPoints(t *testing.T) {
	points := []geom.Point{
		{X: 0, Y: 0},
		{X: 10, Y: 5},
		{X: 20, Y: 10},
		{X: 30, Y: 15},
		{X: 40, Y: 20},
	}

	res := Classify(points, 2)
	assert.Equal(t, Line, res.Kind)
	assert.Zero(t, res.LineDeviation)
}

func TestClassifyCollinearDenselySampled(t *testing.T) {
	// Density must not matter for an exact segment.
	var points []geom.Point
	for i := 0; i <= 200; i++ {
		points = append(points, geom.Point{X: float64(i), Y: float64(i) / 2})
	}

	res := Classify(points, 1)
	assert.Equal(t, Line, res.Kind)
	assert.Zero(t, res.LineDeviation)
}

func TestClassifyWobblyLineWithinTolerance(t *testing.T) {
	// Width 3 gives a tolerance of 6; deviations stay below that.
	points := []geom.Point{
		{X: 0, Y: 0},
		{X: 25, Y: 4},
		{X: 50, Y: -3},
		{X: 75, Y: 5},
		{X: 100, Y: 0},
	}

	res := Classify(points, 3)
	assert.Equal(t, Line, res.Kind)
	assert.Greater(t, res.LineDeviation, 0.0)
	assert.Less(t, res.LineDeviation, LineTolerance(3))
}

func TestClassifyEllipse(t *testing.T) {
	points := ellipsePoints(200, 150, 50, 30, 12)

	res := Classify(points, 3)
	require.Equal(t, Ellipse, res.Kind)

	assert.InDelta(t, 200, res.Candidate.Center.X, 1e-9)
	assert.InDelta(t, 150, res.Candidate.Center.Y, 1e-9)
	assert.InDelta(t, 50, res.Candidate.RX, 1e-9)
	assert.InDelta(t, 30, res.Candidate.RY, 1e-9)

	// The stroke is clearly not a line.
	assert.Greater(t, res.LineDeviation, lineRejectFactor*LineTolerance(3))
}

func TestClassifyClosedEllipseStroke(t *testing.T) {
	// Repeating the start point closes the loop; the degenerate line
	// through coincident endpoints must not make this look straight.
	points := ellipsePoints(200, 150, 50, 30, 12)
	points = append(points, points[0])

	res := Classify(points, 3)
	assert.Equal(t, Ellipse, res.Kind)
	assert.Greater(t, res.LineDeviation, lineRejectFactor*LineTolerance(3))
}

func TestClassifySmallEllipseRejected(t *testing.T) {
	// Radii below the minimum size must not produce an ellipse even for
	// a perfect fit.
	points := ellipsePoints(100, 100, 8, 6, 12)

	res := Classify(points, 0.1)
	assert.NotEqual(t, Ellipse, res.Kind)
	// Twelve points exceed the curve threshold, and the tight tolerance
	// rules out a line, so the sweep falls through to a curve.
	assert.Equal(t, Curve, res.Kind)
}

func TestClassifyPrefersLineWhenBothApply(t *testing.T) {
	// A flat ellipse drawn with a fat stroke passes both tests; the
	// line wins because its deviation never exceeds five tolerances.
	points := ellipsePoints(0, 0, 50, 12.5, 8)

	res := Classify(points, 30)
	assert.Equal(t, Line, res.Kind)
	assert.Less(t, res.LineDeviation, LineTolerance(30))
}

func TestClassifyCurve(t *testing.T) {
	// A zigzag: too bent for a line, too jagged for the ellipse fit,
	// long enough to offer a curve replacement.
	points := []geom.Point{
		{X: 0, Y: 0}, {X: 10, Y: 15}, {X: 20, Y: -12}, {X: 30, Y: 18},
		{X: 40, Y: -14}, {X: 50, Y: 16}, {X: 60, Y: -11}, {X: 70, Y: 17},
		{X: 80, Y: -13}, {X: 90, Y: 15}, {X: 100, Y: -10}, {X: 110, Y: 12},
	}

	res := Classify(points, 1)
	require.Equal(t, Curve, res.Kind)

	// Curves still carry usable candidate geometry for their preview.
	assert.Greater(t, res.Candidate.RX, 0.0)
	assert.Greater(t, res.Candidate.RY, 0.0)
}

func TestClassifyShortScribbleUnclassified(t *testing.T) {
	// Too bent for a line, too few points for a curve.
	points := []geom.Point{
		{X: 0, Y: 0}, {X: 10, Y: 30}, {X: 20, Y: -25},
		{X: 30, Y: 35}, {X: 40, Y: 0},
	}

	res := Classify(points, 1)
	assert.Equal(t, Unclassified, res.Kind)
}

func TestClassifyIsDeterministic(t *testing.T) {
	points := ellipsePoints(200, 150, 50, 30, 12)

	first := Classify(points, 3)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Classify(points, 3))
	}
}

func TestMaxLineDeviationCoincidentEndpoints(t *testing.T) {
	// With first == last the deviation degrades to distance from the
	// shared endpoint instead of dividing by zero.
	points := []geom.Point{
		{X: 0, Y: 0},
		{X: 30, Y: 40},
		{X: 0, Y: 0},
	}

	assert.InDelta(t, 50, maxLineDeviation(points), 1e-9)
}

func TestLineTolerance(t *testing.T) {
	assert.Equal(t, 6.0, LineTolerance(3))
	assert.Equal(t, 1.0, LineTolerance(0.5))
}
