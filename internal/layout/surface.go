// Package layout implements the fixed-template layout engine that renders
// one early-sale analysis page per page record onto an A4 portrait surface.
// All geometry is computed top to bottom in a single pass from fixed margins;
// the vertical cursor is passed explicitly between blocks and repeated
// renders of the same request produce identical output.
package layout

// Color is an RGB triple in the 0-255 range.
type Color struct {
	R, G, B int
}

// Align selects the horizontal anchoring of a text draw relative to its x
// coordinate.
type Align int

// Supported text alignments.
const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// TextStyle is an immutable text descriptor. Every text operation carries
// its full style so no font or color state leaks between draws.
type TextStyle struct {
	Size  float64
	Bold  bool
	Color Color
}

// WithSize returns a copy of the style at a different font size.
func (st TextStyle) WithSize(size float64) TextStyle {
	st.Size = size
	return st
}

// RectMode selects how a rectangle is painted.
type RectMode int

// Supported rectangle paint modes.
const (
	RectFill RectMode = iota
	RectStroke
	RectFillStroke
)

// RectStyle is an immutable rectangle descriptor.
type RectStyle struct {
	Fill      Color
	Border    Color
	LineWidth float64
	Mode      RectMode
}

// Surface is the set of drawing primitives the layout engine needs from the
// underlying document library. Implementations apply the style descriptor on
// every call; the engine never relies on residual surface state. Clipping is
// an explicit capability: when SupportsClipping reports false the engine
// skips clip regions entirely.
type Surface interface {
	// MeasureText reports the rendered width of text in document units.
	MeasureText(text string, st TextStyle) float64
	// Text draws a single line at (x, y) where y is the baseline.
	Text(x, y float64, text string, st TextStyle, align Align)
	// FillRect draws a plain rectangle.
	FillRect(x, y, w, h float64, st RectStyle)
	// RoundedRect draws a rounded rectangle with the given corner radius.
	RoundedRect(x, y, w, h, radius float64, st RectStyle)
	// SupportsClipping reports whether PushClip and PopClip are available.
	SupportsClipping() bool
	// PushClip restricts subsequent draws to the given rectangle. Malformed
	// geometry (NaN or non-positive extents) is rejected with an error.
	PushClip(x, y, w, h float64) error
	// PopClip removes the most recent clip region.
	PopClip()
	// AddPage starts a new page.
	AddPage()
	// Output finalizes the document and returns it as a byte blob.
	Output() ([]byte, error)
}
