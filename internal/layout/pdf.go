package layout

import (
	"bytes"
	"fmt"
	"math"
	"time"

	"github.com/go-pdf/fpdf"
)

// pdfSurface implements Surface on top of go-pdf/fpdf. Style descriptors are
// re-applied before every primitive so the library's global font and color
// state never leaks between draws.
type pdfSurface struct {
	pdf      *fpdf.Fpdf
	tr       func(string) string
	clipping bool
}

// newPDFSurface creates an A4 portrait surface in millimeter units. Both
// document dates are pinned and catalog sorting is enabled so identical
// requests produce byte-identical documents; without the sort fpdf emits
// resource dictionaries in map iteration order. Automatic page breaks are
// disabled: the engine owns all vertical placement and never repaginates.
func newPDFSurface(clipping bool) *pdfSurface {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(marginLeft, marginTop, marginRight)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCreationDate(time.Unix(0, 0))
	pdf.SetModificationDate(time.Unix(0, 0))
	pdf.SetCatalogSort(true)
	return &pdfSurface{
		pdf:      pdf,
		tr:       pdf.UnicodeTranslatorFromDescriptor(""),
		clipping: clipping,
	}
}

func (s *pdfSurface) applyText(st TextStyle) {
	style := ""
	if st.Bold {
		style = "B"
	}
	s.pdf.SetFont(fontFamily, style, st.Size)
	s.pdf.SetTextColor(st.Color.R, st.Color.G, st.Color.B)
}

func (s *pdfSurface) applyRect(st RectStyle) string {
	s.pdf.SetFillColor(st.Fill.R, st.Fill.G, st.Fill.B)
	s.pdf.SetDrawColor(st.Border.R, st.Border.G, st.Border.B)
	if st.LineWidth > 0 {
		s.pdf.SetLineWidth(st.LineWidth)
	}
	switch st.Mode {
	case RectStroke:
		return "D"
	case RectFillStroke:
		return "FD"
	default:
		return "F"
	}
}

func (s *pdfSurface) MeasureText(text string, st TextStyle) float64 {
	s.applyText(st)
	return s.pdf.GetStringWidth(s.tr(text))
}

func (s *pdfSurface) Text(x, y float64, text string, st TextStyle, align Align) {
	s.applyText(st)
	encoded := s.tr(text)
	switch align {
	case AlignCenter:
		x -= s.pdf.GetStringWidth(encoded) / 2
	case AlignRight:
		x -= s.pdf.GetStringWidth(encoded)
	}
	s.pdf.Text(x, y, encoded)
}

func (s *pdfSurface) FillRect(x, y, w, h float64, st RectStyle) {
	s.pdf.Rect(x, y, w, h, s.applyRect(st))
}

func (s *pdfSurface) RoundedRect(x, y, w, h, radius float64, st RectStyle) {
	s.pdf.RoundedRect(x, y, w, h, radius, "1234", s.applyRect(st))
}

func (s *pdfSurface) SupportsClipping() bool {
	return s.clipping
}

func (s *pdfSurface) PushClip(x, y, w, h float64) error {
	if math.IsNaN(x) || math.IsNaN(y) || math.IsNaN(w) || math.IsNaN(h) {
		return fmt.Errorf("clip region has NaN geometry: (%v, %v) %vx%v", x, y, w, h)
	}
	if w <= 0 || h <= 0 {
		return fmt.Errorf("clip region has non-positive extent: %vx%v", w, h)
	}
	s.pdf.ClipRect(x, y, w, h, false)
	return nil
}

func (s *pdfSurface) PopClip() {
	s.pdf.ClipEnd()
}

func (s *pdfSurface) AddPage() {
	s.pdf.AddPage()
}

func (s *pdfSurface) Output() ([]byte, error) {
	var buf bytes.Buffer
	if err := s.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("finalizing document: %w", err)
	}
	return buf.Bytes(), nil
}
