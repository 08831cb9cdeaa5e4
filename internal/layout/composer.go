package layout

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/lgusmao/earlysale-report/internal/report"
)

// composer lays out one page at a time. The vertical cursor is threaded
// value-by-value between blocks; the only other per-page state is the
// one-shot info-grid guard, reset at the start of every page.
type composer struct {
	s             Surface
	logger        *zap.Logger
	page          int
	infoGridDrawn bool
}

func newComposer(s Surface, logger *zap.Logger) *composer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &composer{s: s, logger: logger}
}

// renderPage draws the fixed block sequence for one record. If the computed
// bottom exceeds the usable page height a diagnostic is logged and the page
// is still emitted exactly as laid out; there is no reflow.
func (c *composer) renderPage(rec report.PageRecord) error {
	c.page++
	c.infoGridDrawn = false
	c.s.AddPage()

	y := marginTop
	y = c.headerBar(y, rec.Asset.Title)

	y, err := c.infoGrid(y, rec.Asset)
	if err != nil {
		return err
	}

	y = c.subheader(y, "Secondary Asset Info")
	y, err = c.summaryGrid(y, rec.Secondary)
	if err != nil {
		return err
	}

	y = c.subheader(y, "Decomposition")
	y, err = c.decompositionColumns(y, rec.Left, rec.Right)
	if err != nil {
		return err
	}

	if limit := pageHeight - marginBottom; y > limit {
		c.logger.Warn("page content exceeds usable height",
			zap.String("op", "layout.renderPage"),
			zap.Int("page", c.page),
			zap.Float64("bottom", y),
			zap.Float64("limit", limit),
		)
	}
	return nil
}

// RenderDocument emits one page per record onto the surface, in sequence
// order.
func RenderDocument(logger *zap.Logger, s Surface, pages []report.PageRecord) error {
	if len(pages) == 0 {
		return fmt.Errorf("no pages to render")
	}
	c := newComposer(s, logger)
	for i, rec := range pages {
		if err := c.renderPage(rec); err != nil {
			return fmt.Errorf("rendering page %d: %w", i+1, err)
		}
	}
	return nil
}

// BuildReport renders the full request to a PDF byte blob. Either the whole
// document is produced or an error is returned; there is no partial output.
func BuildReport(logger *zap.Logger, request report.ReportRequest) ([]byte, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}
	s := newPDFSurface(true)
	if err := RenderDocument(logger, s, request.Pages); err != nil {
		return nil, err
	}
	return s.Output()
}
