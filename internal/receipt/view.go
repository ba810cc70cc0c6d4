// Package receipt renders stored quotes as printable receipts: an HTML
// document built from the quote breakdown, printed to PDF by headless Chrome.
package receipt

import (
	"fmt"
	"html/template"
	"time"

	"github.com/guttosm/laundry-pricing/internal/domain/model"
)

// ShopName is printed in the header when no logo is configured.
const ShopName = "ENGOMADORIA TERESA"

// Page geometry in millimetres.
const (
	PageWidthMM    = 210.0
	logoHeightMM   = 50.0
	topMarginMM    = 10.0
	clientHeightMM = 10.0
	tableHeaderMM  = 10.0
	rowHeightMM    = 8.0
	totalSectionMM = 15.0
	bottomMarginMM = 15.0
)

// Row is one line of the receipt table.
type Row struct {
	Description string
	Quantity    int
	UnitPrice   string
	Subtotal    string
}

// View is everything the receipt template needs.
type View struct {
	ShopName     string
	LogoDataURI  template.URL
	ClientName   string
	ReceiptID    string
	IssuedAt     string
	Rows         []Row
	Total        string
	PageWidthMM  float64
	PageHeightMM float64
}

// PageHeight returns the page height for a receipt with rows table lines.
func PageHeight(rows int, hasClient bool) float64 {
	h := logoHeightMM + topMarginMM + tableHeaderMM + float64(rows)*rowHeightMM + totalSectionMM + bottomMarginMM
	if hasClient {
		h += clientHeightMM
	}
	return h
}

// NewView lays out a receipt. Rows appear in this order: fixed items,
// mixed packs, shirt packs, loose units. Zero quantities are skipped.
func NewView(r *model.Receipt, cat *model.PricingCatalog) View {
	b := r.Quote.Breakdown
	var rows []Row

	for _, key := range cat.FixedKeys() {
		if qty := b.FixedItems[key]; qty > 0 {
			price, _ := cat.UnitPrice(key)
			rows = append(rows, newRow(cat.Label(key), qty, price))
		}
	}
	for _, tier := range cat.MixedPackTiers {
		if qty := b.MixedPacksUsed[tier.ID]; qty > 0 {
			rows = append(rows, newRow(fmt.Sprintf("Pack Misto %d peças", tier.Capacity), qty, tier.Price))
		}
	}
	for _, tier := range cat.SingleCategoryPackTiers {
		if qty := b.SingleCategoryPacksUsed[tier.ID]; qty > 0 {
			rows = append(rows, newRow(fmt.Sprintf("Pack Camisas %d", tier.Capacity), qty, tier.Price))
		}
	}
	for _, key := range model.OptimizableItems {
		if qty := b.LooseUnits[key]; qty > 0 {
			price, _ := cat.UnitPrice(key)
			rows = append(rows, newRow(cat.Label(key), qty, price))
		}
	}

	issued := r.CreatedAt
	if issued.IsZero() {
		issued = time.Now()
	}

	return View{
		ShopName:     ShopName,
		ClientName:   r.ClientName,
		ReceiptID:    r.ID,
		IssuedAt:     issued.Format("02/01/2006 15:04"),
		Rows:         rows,
		Total:        r.Quote.TotalCost.Euro(),
		PageWidthMM:  PageWidthMM,
		PageHeightMM: PageHeight(len(rows), r.ClientName != ""),
	}
}

func newRow(desc string, qty int, price model.Money) Row {
	return Row{
		Description: desc,
		Quantity:    qty,
		UnitPrice:   price.Euro(),
		Subtotal:    price.Times(qty).Euro(),
	}
}
