// Package config loads the YAML description of a report request and
// converts it into the domain model consumed by the layout engine.
package config

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/lgusmao/earlysale-report/internal/report"
	"github.com/lgusmao/earlysale-report/pkg/format"
)

// Configuration holds everything the CLI reads from one YAML file.
type Configuration struct {
	Report  ReportSpec
	Logging LoggingConfig `yaml:"logging,omitempty"`
}

// LoggingConfig holds logging configuration options.
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// ReportSpec is the raw report request as written in YAML. Monetary amounts
// are plain numbers here; conversion to display strings happens once, in
// ToReportRequest.
type ReportSpec struct {
	OutputFile string
	Pages      []PageSpec
}

// PageSpec describes one page of the fixed template.
type PageSpec struct {
	Asset     AssetSpec
	Secondary SecondarySpec
	Left      ColumnSpec
	Right     ColumnSpec
}

// AssetSpec describes the primary asset.
type AssetSpec struct {
	Title        string
	AssetType    string
	Index        string
	Rate         string
	Maturity     string
	TaxTreatment string
	Purchase     float64
	CurveValue   float64
	Coupons      float64
	SaleValue    float64
}

// SecondarySpec describes the second instrument.
type SecondarySpec struct {
	AssetType    string
	Distribution string
	Maturity     string
	Purchase     float64
	TaxTreatment string
	Rate         string
}

// ColumnSpec describes one decomposition column.
type ColumnSpec struct {
	Title      string
	Items      []ItemSpec
	FinalValue float64
}

// ItemSpec is one decomposition line item.
type ItemSpec struct {
	Label string
	Value float64
	Tone  string
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// ValidateConfiguration checks for non-fatal issues and returns them as
// warning strings for the caller to log. Hard invariant violations are
// caught later by the request's own validation.
func (conf *Configuration) ValidateConfiguration() []string {
	var warnings []string

	for i, page := range conf.Report.Pages {
		columns := []struct {
			name string
			spec ColumnSpec
		}{
			{name: "left", spec: page.Left},
			{name: "right", spec: page.Right},
		}
		for _, col := range columns {
			if col.spec.Title == "" {
				warnings = append(warnings, fmt.Sprintf("page %d: %s column has no title", i+1, col.name))
			}
			for j, item := range col.spec.Items {
				if _, known := report.ParseTone(item.Tone); !known {
					warnings = append(warnings, fmt.Sprintf("page %d: %s column item %d has unknown tone %q, using neutral",
						i+1, col.name, j+1, item.Tone))
				}
			}
		}
	}

	if conf.Report.OutputFile == "" {
		warnings = append(warnings, "no output file configured, using default")
	}

	return warnings
}

// ToReportRequest converts the raw specification into the immutable domain
// model: monetary amounts become decimals, item values are formatted through
// the currency collaborator, and the result card is derived from the primary
// asset's amounts. The returned request has already passed validation.
func (conf *Configuration) ToReportRequest() (report.ReportRequest, error) {
	request := report.ReportRequest{OutputFile: conf.Report.OutputFile}

	for _, page := range conf.Report.Pages {
		purchase := decimal.NewFromFloat(page.Asset.Purchase)
		coupons := decimal.NewFromFloat(page.Asset.Coupons)
		sale := decimal.NewFromFloat(page.Asset.SaleValue)

		request.Pages = append(request.Pages, report.PageRecord{
			Asset: report.AssetInfo{
				Title:        page.Asset.Title,
				AssetType:    page.Asset.AssetType,
				Index:        page.Asset.Index,
				Rate:         page.Asset.Rate,
				Maturity:     page.Asset.Maturity,
				TaxTreatment: page.Asset.TaxTreatment,
				Purchase:     purchase,
				CurveValue:   decimal.NewFromFloat(page.Asset.CurveValue),
				Coupons:      coupons,
				SaleValue:    sale,
				Card:         report.GainCard(purchase, coupons, sale),
			},
			Secondary: report.SecondaryAssetSummary{
				AssetType:    page.Secondary.AssetType,
				Distribution: page.Secondary.Distribution,
				Maturity:     page.Secondary.Maturity,
				Purchase:     decimal.NewFromFloat(page.Secondary.Purchase),
				TaxTreatment: page.Secondary.TaxTreatment,
				Rate:         page.Secondary.Rate,
			},
			Left:  convertColumn(page.Left),
			Right: convertColumn(page.Right),
		})
	}

	if err := request.Validate(); err != nil {
		return report.ReportRequest{}, err
	}
	return request, nil
}

func convertColumn(spec ColumnSpec) report.DecompositionColumn {
	column := report.DecompositionColumn{
		Title:      spec.Title,
		FinalValue: format.Currency(decimal.NewFromFloat(spec.FinalValue)),
	}
	for _, item := range spec.Items {
		tone, _ := report.ParseTone(item.Tone)
		column.Items = append(column.Items, report.LineItem{
			Label: item.Label,
			Value: format.Currency(decimal.NewFromFloat(item.Value)),
			Tone:  tone,
		})
	}
	return column
}
