// Package report defines the data structures describing one early-sale
// analysis document. All types are constructed wholesale by the caller and
// consumed read-only by the layout engine.
package report

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/lgusmao/earlysale-report/pkg/format"
)

// Tone is a semantic color category tag on a decomposition line item.
type Tone string

// Recognized tone tags. An absent tag defaults to ToneNeutral.
const (
	ToneNeutral  Tone = "neutral"
	ToneEmphasis Tone = "emphasis-blue"
	ToneWarning  Tone = "warning-red"
)

// ParseTone maps a raw tone tag to a Tone. An empty tag is the neutral
// default; unknown tags also fall back to neutral but report false so the
// caller can warn about them.
func ParseTone(tag string) (Tone, bool) {
	switch Tone(tag) {
	case "":
		return ToneNeutral, true
	case ToneNeutral, ToneEmphasis, ToneWarning:
		return Tone(tag), true
	default:
		return ToneNeutral, false
	}
}

// LabelValue is one rendered label/value row.
type LabelValue struct {
	Label string
	Value string
}

// ResultCard is the highlighted box summarizing the sale outcome on the
// primary block. All three strings are pre-formatted; the layout engine
// treats them as opaque text.
type ResultCard struct {
	Title    string
	Headline string
	Subtitle string
}

// GainCard derives the result card from the primary asset's monetary
// amounts: gain = sale + coupons - purchase, percentage relative to the
// purchase amount.
func GainCard(purchase, coupons, sale decimal.Decimal) ResultCard {
	gain := sale.Add(coupons).Sub(purchase)
	percent := decimal.Zero
	if !purchase.IsZero() {
		percent = gain.Div(purchase).Mul(decimal.NewFromInt(100))
	}
	subtitle := format.Percent(percent)
	if gain.Sign() > 0 {
		subtitle = "+" + subtitle
	}
	return ResultCard{
		Title:    "Early Sale Result",
		Headline: format.Currency(gain),
		Subtitle: subtitle + " on purchase",
	}
}

// AssetInfo is the header record for the primary asset.
type AssetInfo struct {
	Title        string
	AssetType    string
	Index        string
	Rate         string
	Maturity     string
	TaxTreatment string

	Purchase   decimal.Decimal
	CurveValue decimal.Decimal
	Coupons    decimal.Decimal
	SaleValue  decimal.Decimal

	Card ResultCard
}

// DetailRows returns the five descriptive pairs in render order.
func (a AssetInfo) DetailRows() []LabelValue {
	return []LabelValue{
		{Label: "Asset Type:", Value: a.AssetType},
		{Label: "Index:", Value: a.Index},
		{Label: "Rate:", Value: a.Rate},
		{Label: "Maturity:", Value: a.Maturity},
		{Label: "Tax Treatment:", Value: a.TaxTreatment},
	}
}

// AmountRows returns the four monetary rows in render order, with values
// formatted through the currency collaborator.
func (a AssetInfo) AmountRows() []LabelValue {
	return []LabelValue{
		{Label: "Purchase:", Value: format.Currency(a.Purchase)},
		{Label: "Curve Value:", Value: format.Currency(a.CurveValue)},
		{Label: "Coupons Received:", Value: format.Currency(a.Coupons)},
		{Label: "Sale Value:", Value: format.Currency(a.SaleValue)},
	}
}

// SecondaryAssetSummary describes the second instrument shown below the
// primary block.
type SecondaryAssetSummary struct {
	AssetType    string
	Distribution string
	Maturity     string
	Purchase     decimal.Decimal
	TaxTreatment string
	Rate         string
}

// LeftRows returns the first three label/value pairs of the summary grid.
func (s SecondaryAssetSummary) LeftRows() []LabelValue {
	return []LabelValue{
		{Label: "Asset Type:", Value: s.AssetType},
		{Label: "Distribution:", Value: s.Distribution},
		{Label: "Maturity:", Value: s.Maturity},
	}
}

// RightRows returns the last three label/value pairs of the summary grid.
func (s SecondaryAssetSummary) RightRows() []LabelValue {
	return []LabelValue{
		{Label: "Purchase:", Value: format.Currency(s.Purchase)},
		{Label: "Tax Treatment:", Value: s.TaxTreatment},
		{Label: "Rate:", Value: s.Rate},
	}
}

// LineItem is one row of a decomposition column. Value is pre-formatted;
// insertion order is render order.
type LineItem struct {
	Label string
	Value string
	Tone  Tone
}

// DecompositionColumn is one of the two side-by-side card stacks breaking
// down the sale price.
type DecompositionColumn struct {
	Title      string
	Items      []LineItem
	FinalValue string
}

// PageRecord aggregates the fixed template contents for one page.
type PageRecord struct {
	Asset     AssetInfo
	Secondary SecondaryAssetSummary
	Left      DecompositionColumn
	Right     DecompositionColumn
}

// ReportRequest is an ordered, non-empty sequence of page records plus an
// optional output filename. The filename is cosmetic; the layout engine
// never reads it.
type ReportRequest struct {
	Pages      []PageRecord
	OutputFile string
}

// Validate checks the hard invariants of the request. Violations indicate a
// caller bug, not recoverable input variance.
func (r ReportRequest) Validate() error {
	if len(r.Pages) == 0 {
		return fmt.Errorf("report request has no pages")
	}
	for i, page := range r.Pages {
		if page.Asset.Title == "" {
			return fmt.Errorf("page %d: asset title is empty", i+1)
		}
		if page.Left.FinalValue == "" || page.Right.FinalValue == "" {
			return fmt.Errorf("page %d: decomposition column missing final value", i+1)
		}
	}
	return nil
}
