package layout

import (
	"fmt"
	"math"

	"github.com/lgusmao/earlysale-report/internal/report"
)

// headerBar draws the filled title bar spanning the full content width and
// returns the y coordinate below it plus the block gap.
func (c *composer) headerBar(y float64, title string) float64 {
	c.s.RoundedRect(marginLeft, y, contentWidth, headerBarHeight, cornerRadius,
		RectStyle{Fill: colorHeaderFill, Mode: RectFill})
	st := TextStyle{Size: headerFontSize, Bold: true, Color: colorWhite}
	c.s.Text(marginLeft+headerPad, y+headerBarHeight-headerPad, title, st, AlignLeft)
	return y + headerBarHeight + blockGap
}

// subheader draws a shorter, lighter section bar.
func (c *composer) subheader(y float64, title string) float64 {
	c.s.RoundedRect(marginLeft, y, contentWidth, subheaderHeight, cornerRadius,
		RectStyle{Fill: colorSubheaderFill, Mode: RectFill})
	st := TextStyle{Size: subheaderFontSize, Bold: true, Color: colorWhite}
	c.s.Text(marginLeft+headerPad, y+subheaderHeight-subheaderPad, title, st, AlignLeft)
	return y + subheaderHeight + blockGap
}

// infoGrid lays out the primary asset's two label/value sub-columns and the
// result card. It may be invoked at most once per page; a second invocation
// is a template bug and is rejected.
func (c *composer) infoGrid(y float64, asset report.AssetInfo) (float64, error) {
	if c.infoGridDrawn {
		return y, fmt.Errorf("info grid invoked twice on page %d", c.page)
	}
	c.infoGridDrawn = true

	blockWidth := contentWidth - infoCardWidth - infoCardGutter
	colWidth := (blockWidth - infoColumnGap) / 2
	innerWidth := colWidth - 2*infoColumnPad
	leftX := marginLeft + infoColumnPad
	rightX := marginLeft + colWidth + infoColumnGap + infoColumnPad

	left := asset.DetailRows()
	right := asset.AmountRows()

	labelStyle := TextStyle{Size: labelFontSize, Bold: true, Color: colorText}
	valueStyle := TextStyle{Size: baseValueSize, Color: colorText}

	// Label widths are measured, not hardcoded, so translated labels never
	// truncate.
	leftLabelW := c.labelColumnWidth(left, labelStyle)
	rightLabelW := c.labelColumnWidth(right, labelStyle)

	leftLines := c.wrapLabels(left, leftLabelW, labelStyle)
	rightLines := c.wrapLabels(right, rightLabelW, labelStyle)
	heights := rowHeights(leftLines, rightLines, infoRowPitch)

	leftBottom, err := c.drawPairColumn(leftX, y, innerWidth, leftLabelW, left, leftLines, heights, labelStyle, valueStyle)
	if err != nil {
		return y, err
	}
	rightBottom, err := c.drawPairColumn(rightX, y, innerWidth, rightLabelW, right, rightLines, heights, labelStyle, valueStyle)
	if err != nil {
		return y, err
	}

	cardBottom := c.resultCard(y, asset.Card)

	bottom := math.Max(math.Max(leftBottom, rightBottom), cardBottom)
	return bottom + blockGap, nil
}

// resultCard draws the fixed-size highlighted box in the reserved right
// region and returns its bottom edge.
func (c *composer) resultCard(y float64, card report.ResultCard) float64 {
	x := marginLeft + contentWidth - infoCardWidth
	c.s.RoundedRect(x, y, infoCardWidth, infoCardHeight, cornerRadius,
		RectStyle{Fill: colorCardFill, Border: colorCardBorder, LineWidth: 0.3, Mode: RectFillStroke})

	center := x + infoCardWidth/2
	maxWidth := infoCardWidth - 2*decompCardPad

	title := TextStyle{Size: labelFontSize, Color: colorMuted}
	c.s.Text(center, y+cardTitleDrop, card.Title, title.WithSize(c.fitSize(card.Title, maxWidth, title)), AlignCenter)

	headline := TextStyle{Size: headerFontSize, Bold: true, Color: colorEmphasis}
	c.s.Text(center, y+infoCardHeight/2+cardHeadlineDrop, card.Headline,
		headline.WithSize(c.fitSize(card.Headline, maxWidth, headline)), AlignCenter)

	subtitle := TextStyle{Size: labelFontSize, Color: colorPositive}
	c.s.Text(center, y+infoCardHeight-cardSubtitleRise, card.Subtitle,
		subtitle.WithSize(c.fitSize(card.Subtitle, maxWidth, subtitle)), AlignCenter)

	return y + infoCardHeight
}

// summaryGrid lays out the secondary asset's two fixed-width label/value
// columns. Labels here are short and known, so the label width is a fixed
// constant rather than measured.
func (c *composer) summaryGrid(y float64, sec report.SecondaryAssetSummary) (float64, error) {
	colWidth := (contentWidth - summaryColumnGap) / 2
	leftX := marginLeft
	rightX := marginLeft + colWidth + summaryColumnGap

	left := sec.LeftRows()
	right := sec.RightRows()

	labelStyle := TextStyle{Size: labelFontSize, Bold: true, Color: colorText}
	valueStyle := TextStyle{Size: baseValueSize, Color: colorText}

	leftLines := c.wrapLabels(left, summaryLabelWidth, labelStyle)
	rightLines := c.wrapLabels(right, summaryLabelWidth, labelStyle)
	heights := rowHeights(leftLines, rightLines, summaryRowPitch)

	leftBottom, err := c.drawPairColumn(leftX, y, colWidth, summaryLabelWidth, left, leftLines, heights, labelStyle, valueStyle)
	if err != nil {
		return y, err
	}
	rightBottom, err := c.drawPairColumn(rightX, y, colWidth, summaryLabelWidth, right, rightLines, heights, labelStyle, valueStyle)
	if err != nil {
		return y, err
	}

	return math.Max(leftBottom, rightBottom) + blockGap, nil
}

// decompositionColumns draws the two side-by-side card stacks and returns
// the taller stack's bottom plus the block gap.
func (c *composer) decompositionColumns(y float64, left, right report.DecompositionColumn) (float64, error) {
	colWidth := (contentWidth - decompGutter) / 2

	leftBottom, err := c.decompStack(marginLeft, y, colWidth, left)
	if err != nil {
		return y, err
	}
	rightBottom, err := c.decompStack(marginLeft+colWidth+decompGutter, y, colWidth, right)
	if err != nil {
		return y, err
	}

	return math.Max(leftBottom, rightBottom) + blockGap, nil
}

// decompStack draws one decomposition column: a bold title line, one rounded
// card per line item colored by tone, and the final-total footer card.
func (c *composer) decompStack(x, top, width float64, col report.DecompositionColumn) (float64, error) {
	y := top

	titleStyle := TextStyle{Size: subheaderFontSize, Bold: true, Color: colorText}
	c.s.Text(x, y+lineHeight, col.Title, titleStyle, AlignLeft)
	y += decompTitleAdvance

	itemStyle := TextStyle{Size: itemFontSize, Color: colorText}
	labelWidth := width*decompLabelShare - decompCardPad
	valueWidth := width * decompValueShare

	for _, item := range col.Items {
		fill, border := toneColors(item.Tone)

		lines := Wrap(item.Label, labelWidth, c.measureAt(itemStyle))
		cardHeight := math.Max(decompCardMinHeight, float64(len(lines))*lineHeight+2*decompCardPad)

		c.s.RoundedRect(x, y, width, cardHeight, decompCardRadius,
			RectStyle{Fill: fill, Border: border, LineWidth: cardRuleWidth, Mode: RectFillStroke})

		textTop := y + (cardHeight-float64(len(lines))*lineHeight)/2
		for i, line := range lines {
			c.s.Text(x+decompCardPad, textTop+float64(i+1)*lineHeight-0.8, line, itemStyle, AlignLeft)
		}

		baseline := y + cardHeight/2 + lineHeight/2 - 0.8
		if err := c.drawValue(x+width-decompCardPad, baseline, item.Value, valueWidth, itemStyle); err != nil {
			return y, err
		}

		y += cardHeight + decompCardGap
	}

	c.s.RoundedRect(x, y, width, decompFooterHeight, decompCardRadius,
		RectStyle{Fill: colorFooterFill, Border: colorFooterBorder, LineWidth: cardRuleWidth, Mode: RectFillStroke})
	baseline := y + decompFooterHeight/2 + lineHeight/2 - 0.8
	c.s.Text(x+decompCardPad, baseline, footerLabelText,
		TextStyle{Size: itemFontSize, Bold: true, Color: colorText}, AlignLeft)
	if err := c.drawValue(x+width-decompCardPad, baseline, col.FinalValue, valueWidth,
		TextStyle{Size: itemFontSize, Bold: true, Color: colorText}); err != nil {
		return y, err
	}

	return y + decompFooterHeight, nil
}

// labelColumnWidth returns the widest rendered label in the group plus a
// fixed trailing pad.
func (c *composer) labelColumnWidth(rows []report.LabelValue, st TextStyle) float64 {
	widest := 0.0
	for _, row := range rows {
		if w := c.s.MeasureText(row.Label, st); w > widest {
			widest = w
		}
	}
	return widest + infoLabelPad
}

// wrapLabels pre-wraps every label in the group against the label width.
func (c *composer) wrapLabels(rows []report.LabelValue, labelWidth float64, st TextStyle) [][]string {
	lines := make([][]string, len(rows))
	for i, row := range rows {
		lines[i] = Wrap(row.Label, labelWidth, c.measureAt(st))
	}
	return lines
}

// rowHeights computes the shared per-index vertical advance for two
// lock-stepped row groups: each row advances by the fixed pitch or the
// taller wrapped label at that index, whichever is greater.
func rowHeights(left, right [][]string, pitch float64) []float64 {
	rows := len(left)
	if len(right) > rows {
		rows = len(right)
	}
	heights := make([]float64, rows)
	for i := range heights {
		h := pitch
		if i < len(left) {
			h = math.Max(h, float64(len(left[i]))*lineHeight)
		}
		if i < len(right) {
			h = math.Max(h, float64(len(right[i]))*lineHeight)
		}
		heights[i] = h
	}
	return heights
}

// drawPairColumn renders one label/value group from a shared top y using the
// pre-computed per-row advances, and returns the group's bottom edge. Labels
// are left-aligned and may span multiple pre-wrapped lines; values are
// right-aligned against the column's right edge and shrink to fit.
func (c *composer) drawPairColumn(x, top, width, labelWidth float64, rows []report.LabelValue,
	lines [][]string, heights []float64, labelStyle, valueStyle TextStyle) (float64, error) {

	valueWidth := width - labelWidth - infoLabelValueGap
	y := top
	for i, row := range rows {
		for j, line := range lines[i] {
			c.s.Text(x, y+float64(j+1)*lineHeight, line, labelStyle, AlignLeft)
		}
		if err := c.drawValue(x+width, y+lineHeight, row.Value, valueWidth, valueStyle); err != nil {
			return y, err
		}
		y += heights[i]
	}
	return y, nil
}

// drawValue renders a single-line value right-aligned at rightX, shrinking
// the font until the text fits maxWidth or the size floor is reached. When
// the surface supports clipping, the slot is clipped as a last-resort safety
// net for text still overflowing at the floor.
func (c *composer) drawValue(rightX, baseline float64, text string, maxWidth float64, st TextStyle) error {
	size := ShrinkToFit(text, maxWidth, st.Size, minValueSize, func(s string, sz float64) float64 {
		return c.s.MeasureText(s, st.WithSize(sz))
	})
	fitted := st.WithSize(size)

	if c.s.SupportsClipping() && maxWidth > 0 {
		if err := c.s.PushClip(rightX-maxWidth, baseline-lineHeight, maxWidth, lineHeight+1); err != nil {
			return fmt.Errorf("clipping value slot: %w", err)
		}
		c.s.Text(rightX, baseline, text, fitted, AlignRight)
		c.s.PopClip()
		return nil
	}

	c.s.Text(rightX, baseline, text, fitted, AlignRight)
	return nil
}

// fitSize is shrink-to-fit against the composer's surface for one-off lines.
func (c *composer) fitSize(text string, maxWidth float64, st TextStyle) float64 {
	return ShrinkToFit(text, maxWidth, st.Size, minValueSize, func(s string, sz float64) float64 {
		return c.s.MeasureText(s, st.WithSize(sz))
	})
}

// measureAt adapts the surface to the single-size measure shape used by Wrap.
func (c *composer) measureAt(st TextStyle) func(string) float64 {
	return func(s string) float64 {
		return c.s.MeasureText(s, st)
	}
}
