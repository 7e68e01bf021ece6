package render

import (
	"io"
	"strconv"

	"github.com/jung-kurt/gofpdf"

	"github.com/insketch/insketch/internal/geom"
	"github.com/insketch/insketch/internal/sketch"
)

const pdfMargin = 10 // mm

// PDFSurface renders drawing onto an A4 page, scaling canvas
// coordinates down to fit inside the page margins.
type PDFSurface struct {
	pdf   *gofpdf.Fpdf
	scale float64
}

// NewPDF creates a portrait A4 surface for the given canvas size.
func NewPDF(canvas geom.Rect) *PDFSurface {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pageW, pageH := pdf.GetPageSize()
	usableW := pageW - 2*pdfMargin
	usableH := pageH - 2*pdfMargin

	scale := 1.0
	if canvas.Width > 0 && canvas.Height > 0 {
		scale = min(usableW/canvas.Width, usableH/canvas.Height)
	}

	return &PDFSurface{pdf: pdf, scale: scale}
}

// SetOpacity sets the alpha for subsequent drawing.
func (p *PDFSurface) SetOpacity(alpha float64) {
	p.pdf.SetAlpha(alpha, "Normal")
}

func (p *PDFSurface) DrawLine(a, b geom.Point, style sketch.Style) {
	p.applyStyle(style)
	p.pdf.Line(
		pdfMargin+a.X*p.scale, pdfMargin+a.Y*p.scale,
		pdfMargin+b.X*p.scale, pdfMargin+b.Y*p.scale,
	)
}

func (p *PDFSurface) DrawEllipse(e geom.Ellipse, style sketch.Style) {
	p.applyStyle(style)
	p.pdf.Ellipse(
		pdfMargin+e.Center.X*p.scale, pdfMargin+e.Center.Y*p.scale,
		e.RX*p.scale, e.RY*p.scale,
		0, "D",
	)
}

// Output writes the finished document.
func (p *PDFSurface) Output(w io.Writer) error {
	return p.pdf.Output(w)
}

func (p *PDFSurface) applyStyle(style sketch.Style) {
	r, g, b := parseHexColor(style.Stroke)
	p.pdf.SetDrawColor(r, g, b)
	p.pdf.SetLineWidth(style.StrokeWidth * p.scale)
}

// parseHexColor converts "#rrggbb" to RGB components, falling back to
// black for anything malformed.
func parseHexColor(s string) (r, g, b int) {
	if len(s) != 7 || s[0] != '#' {
		return 0, 0, 0
	}
	rv, err1 := strconv.ParseUint(s[1:3], 16, 8)
	gv, err2 := strconv.ParseUint(s[3:5], 16, 8)
	bv, err3 := strconv.ParseUint(s[5:7], 16, 8)
	if err1 != nil || err2 != nil || err3 != nil {
		return 0, 0, 0
	}
	return int(rv), int(gv), int(bv)
}
