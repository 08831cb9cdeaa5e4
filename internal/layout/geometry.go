package layout

import "github.com/lgusmao/earlysale-report/internal/report"

// Page geometry in millimeters, A4 portrait.
const (
	pageWidth    = 210.0
	pageHeight   = 297.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 18.0
	contentWidth = pageWidth - marginLeft - marginRight

	fontFamily = "Arial"

	// blockGap is the vertical rhythm between consecutive blocks.
	blockGap     = 6.0
	lineHeight   = 4.2
	cornerRadius = 2.0

	headerBarHeight = 12.0
	headerPad       = 4.0
	headerFontSize  = 13.0

	subheaderHeight   = 8.0
	subheaderPad      = 2.5
	subheaderFontSize = 10.5

	// Primary info grid. The result card occupies a reserved region on the
	// right; the remaining width splits into two equal sub-columns.
	infoCardWidth     = 58.0
	infoCardHeight    = 40.0
	infoCardGutter    = 6.0
	infoColumnGap     = 4.0
	infoColumnPad     = 2.0
	infoRowPitch      = 6.5
	infoLabelPad      = 2.0
	infoLabelValueGap = 2.0

	// Baselines of the result card's three centered lines, relative to the
	// card: title from the top, headline from the vertical center, subtitle
	// from the bottom.
	cardTitleDrop    = 8.0
	cardHeadlineDrop = 2.0
	cardSubtitleRise = 5.0

	// Secondary summary grid uses fixed widths; its labels are short and
	// known, so no dynamic measurement.
	summaryColumnGap  = 6.0
	summaryLabelWidth = 38.0
	summaryRowPitch   = 6.5

	// Decomposition card stacks.
	decompGutter        = 8.0
	decompTitleAdvance  = 6.0
	decompCardMinHeight = 9.0
	decompCardRadius    = 1.5
	decompCardGap       = 2.5
	decompCardPad       = 2.0
	decompFooterHeight  = 10.0
	decompLabelShare    = 0.62
	decompValueShare    = 0.33

	labelFontSize   = 9.0
	baseValueSize   = 9.0
	minValueSize    = 6.0
	itemFontSize    = 8.5
	cardRuleWidth   = 0.25
	footerLabelText = "FINAL VALUE:"
)

// Fixed palette.
var (
	colorHeaderFill    = Color{R: 30, G: 58, B: 95}
	colorSubheaderFill = Color{R: 52, G: 152, B: 219}
	colorWhite         = Color{R: 255, G: 255, B: 255}
	colorText          = Color{R: 44, G: 62, B: 80}
	colorMuted         = Color{R: 127, G: 140, B: 141}
	colorEmphasis      = Color{R: 41, G: 98, B: 199}
	colorPositive      = Color{R: 39, G: 144, B: 96}

	colorCardFill   = Color{R: 240, G: 246, B: 252}
	colorCardBorder = Color{R: 52, G: 152, B: 219}

	colorFooterFill   = Color{R: 226, G: 232, B: 240}
	colorFooterBorder = Color{R: 100, G: 116, B: 139}
)

// tonePalette maps a line-item tone to its fill and border colors.
var tonePalette = map[report.Tone]struct{ fill, border Color }{
	report.ToneEmphasis: {fill: Color{R: 219, G: 234, B: 254}, border: Color{R: 52, G: 152, B: 219}},
	report.ToneWarning:  {fill: Color{R: 252, G: 226, B: 226}, border: Color{R: 231, G: 76, B: 60}},
	report.ToneNeutral:  {fill: Color{R: 241, G: 245, B: 249}, border: Color{R: 189, G: 195, B: 199}},
}

// toneColors returns the fill and border colors for a tone, falling back to
// the neutral pair for unrecognized values.
func toneColors(tone report.Tone) (Color, Color) {
	entry, ok := tonePalette[tone]
	if !ok {
		entry = tonePalette[report.ToneNeutral]
	}
	return entry.fill, entry.border
}
