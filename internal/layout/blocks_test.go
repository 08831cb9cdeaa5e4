package layout

import (
	"fmt"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/lgusmao/earlysale-report/internal/report"
)

func TestLabelColumnWidth(t *testing.T) {
	surface := &fakeSurface{}
	c := newComposer(surface, zap.NewNop())
	style := TextStyle{Size: labelFontSize, Bold: true, Color: colorText}

	tests := []struct {
		name   string
		labels []string
	}{
		{
			name:   "Short labels",
			labels: []string{"Rate:", "Index:"},
		},
		{
			name: "Intentionally long label",
			labels: []string{
				"Rate:",
				"Tax treatment applied to accumulated coupons:", // 45 chars
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := make([]report.LabelValue, len(tt.labels))
			for i, label := range tt.labels {
				rows[i] = report.LabelValue{Label: label}
			}

			width := c.labelColumnWidth(rows, style)
			for _, row := range rows {
				if measured := surface.MeasureText(row.Label, style); width < measured {
					t.Errorf("label width %v is narrower than label %q (%v)", width, row.Label, measured)
				}
			}
		})
	}
}

func TestToneMapping(t *testing.T) {
	warningFill := fmt.Sprintf("fill=%v", Color{R: 252, G: 226, B: 226})
	neutralFill := fmt.Sprintf("fill=%v", Color{R: 241, G: 245, B: 249})

	tests := []struct {
		name         string
		items        []report.LineItem
		expectedFill string
	}{
		{
			name: "Warning tone in first position",
			items: []report.LineItem{
				{Label: "Income tax due", Value: "-R$ 1,00", Tone: report.ToneWarning},
			},
			expectedFill: warningFill,
		},
		{
			name: "Warning tone in last position",
			items: []report.LineItem{
				{Label: "Gross value", Value: "R$ 2,00", Tone: report.ToneEmphasis},
				{Label: "Fees", Value: "-R$ 1,00", Tone: report.ToneNeutral},
				{Label: "Income tax due", Value: "-R$ 1,00", Tone: report.ToneWarning},
			},
			expectedFill: warningFill,
		},
		{
			name: "Omitted tone renders neutral",
			items: []report.LineItem{
				{Label: "Fees", Value: "-R$ 1,00"},
			},
			expectedFill: neutralFill,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			surface := &fakeSurface{}
			c := newComposer(surface, zap.NewNop())
			column := report.DecompositionColumn{
				Title:      "Decomposition",
				Items:      tt.items,
				FinalValue: "R$ 1,00",
			}

			if _, err := c.decompStack(marginLeft, marginTop, 86, column); err != nil {
				t.Fatalf("decompStack failed: %v", err)
			}
			log := strings.Join(surface.ops, "\n")
			if !strings.Contains(log, tt.expectedFill) {
				t.Errorf("expected a card with %s in:\n%s", tt.expectedFill, log)
			}
		})
	}
}

func TestDecompStackFooter(t *testing.T) {
	surface := &fakeSurface{}
	c := newComposer(surface, zap.NewNop())
	column := report.DecompositionColumn{
		Title:      "Sale Price Decomposition",
		Items:      []report.LineItem{{Label: "Gross sale value", Value: "R$ 2,00"}},
		FinalValue: "R$ 138.395,36",
	}

	bottom, err := c.decompStack(marginLeft, marginTop, 86, column)
	if err != nil {
		t.Fatalf("decompStack failed: %v", err)
	}
	if bottom <= marginTop {
		t.Errorf("stack bottom %v did not advance past the top", bottom)
	}

	log := strings.Join(surface.ops, "\n")
	if !strings.Contains(log, `"FINAL VALUE:"`) {
		t.Error("footer label missing")
	}
	if !strings.Contains(log, `"R$ 138.395,36"`) {
		t.Error("footer total missing")
	}
	if !strings.Contains(log, fmt.Sprintf("fill=%v", colorFooterFill)) {
		t.Error("footer card fill missing")
	}
}

func TestDecompCardGrowsWithWrappedLabel(t *testing.T) {
	shortItem := []report.LineItem{{Label: "Fees", Value: "-R$ 1,00"}}
	longItem := []report.LineItem{{
		Label: "Income tax due on accumulated coupon payments under the regressive schedule",
		Value: "-R$ 1,00",
	}}

	height := func(items []report.LineItem) float64 {
		surface := &fakeSurface{}
		c := newComposer(surface, zap.NewNop())
		column := report.DecompositionColumn{Title: "T", Items: items, FinalValue: "R$ 1,00"}
		bottom, err := c.decompStack(marginLeft, marginTop, 86, column)
		if err != nil {
			t.Fatalf("decompStack failed: %v", err)
		}
		return bottom
	}

	if h1, h2 := height(shortItem), height(longItem); h2 <= h1 {
		t.Errorf("wrapped label did not grow the card: %v vs %v", h1, h2)
	}
}

func TestResultCardBaselines(t *testing.T) {
	surface := &fakeSurface{}
	c := newComposer(surface, zap.NewNop())
	card := report.ResultCard{Title: "Early Sale Result", Headline: "R$ 9.086,29", Subtitle: "+6,09% on purchase"}

	bottom := c.resultCard(marginTop, card)
	if expected := marginTop + infoCardHeight; bottom != expected {
		t.Errorf("resultCard returned %v, expected %v", bottom, expected)
	}

	log := strings.Join(surface.ops, "\n")
	lines := []struct {
		text string
		y    float64
	}{
		{text: card.Title, y: marginTop + cardTitleDrop},
		{text: card.Headline, y: marginTop + infoCardHeight/2 + cardHeadlineDrop},
		{text: card.Subtitle, y: marginTop + infoCardHeight - cardSubtitleRise},
	}
	for _, line := range lines {
		if !strings.Contains(log, fmt.Sprintf("%q", line.text)) {
			t.Errorf("card line %q was not drawn", line.text)
		}
		if !strings.Contains(log, fmt.Sprintf("y=%.1f", line.y)) {
			t.Errorf("no draw at baseline %.1f for %q in:\n%s", line.y, line.text, log)
		}
	}
}

func TestDrawValueClipsWhenSupported(t *testing.T) {
	tests := []struct {
		name     string
		clipping bool
	}{
		{name: "Clipping surface wraps value in clip ops", clipping: true},
		{name: "Non-clipping surface degrades gracefully", clipping: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			surface := &fakeSurface{clipping: tt.clipping}
			c := newComposer(surface, zap.NewNop())
			style := TextStyle{Size: baseValueSize, Color: colorText}

			if err := c.drawValue(100, 50, "R$ 1.234,56", 30, style); err != nil {
				t.Fatalf("drawValue failed: %v", err)
			}

			log := strings.Join(surface.ops, "\n")
			hasClip := strings.Contains(log, "clip")
			if hasClip != tt.clipping {
				t.Errorf("clip ops present = %v, expected %v", hasClip, tt.clipping)
			}
			if !strings.Contains(log, `"R$ 1.234,56"`) {
				t.Error("value was not drawn")
			}
		})
	}
}

func TestDrawValueShrinks(t *testing.T) {
	surface := &fakeSurface{}
	c := newComposer(surface, zap.NewNop())
	style := TextStyle{Size: baseValueSize, Color: colorText}

	// 20 chars * 9pt * 0.18 = 32.4 wide; a 20-unit slot forces a shrink.
	if err := c.drawValue(100, 50, "12345678901234567890", 20, style); err != nil {
		t.Fatalf("drawValue failed: %v", err)
	}

	log := strings.Join(surface.ops, "\n")
	if strings.Contains(log, "size=9.0") {
		t.Errorf("value did not shrink:\n%s", log)
	}
}

func TestHeaderBarAdvances(t *testing.T) {
	surface := &fakeSurface{}
	c := newComposer(surface, zap.NewNop())

	next := c.headerBar(marginTop, "Early Sale Analysis")
	if expected := marginTop + headerBarHeight + blockGap; next != expected {
		t.Errorf("headerBar returned %v, expected %v", next, expected)
	}

	c.subheader(next, "Decomposition")
	log := strings.Join(surface.ops, "\n")
	if !strings.Contains(log, `"Early Sale Analysis"`) || !strings.Contains(log, `"Decomposition"`) {
		t.Errorf("titles missing from draw log:\n%s", log)
	}
}
