package receipt

import (
	"context"
	"html/template"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/laundry-pricing/internal/domain/model"
)

// Printer turns an HTML document into a PDF page of the given size.
type Printer interface {
	PrintPDF(ctx context.Context, html []byte, widthMM, heightMM float64) ([]byte, error)
}

// PDFRenderer renders receipts priced against a catalog.
type PDFRenderer struct {
	catalog *model.PricingCatalog
	printer Printer
	logo    template.URL
}

// NewPDFRenderer creates a renderer. A logo that cannot be loaded is logged
// and replaced by the shop name.
func NewPDFRenderer(cat *model.PricingCatalog, printer Printer, logoPath string) *PDFRenderer {
	r := &PDFRenderer{catalog: cat, printer: printer}
	if logoPath != "" {
		logo, err := LoadLogo(logoPath)
		if err != nil {
			log.Warn().Err(err).Str("path", logoPath).Msg("Receipt logo unavailable, using shop name")
		} else {
			r.logo = logo
		}
	}
	return r
}

// View builds the template data for receipt.
func (r *PDFRenderer) View(receipt *model.Receipt) View {
	v := NewView(receipt, r.catalog)
	v.LogoDataURI = r.logo
	return v
}

// Render produces the PDF bytes for receipt.
func (r *PDFRenderer) Render(ctx context.Context, receipt *model.Receipt) ([]byte, error) {
	v := r.View(receipt)
	html, err := RenderHTML(v)
	if err != nil {
		return nil, err
	}
	return r.printer.PrintPDF(ctx, html, v.PageWidthMM, v.PageHeightMM)
}
