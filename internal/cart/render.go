package cart

import (
	"fmt"

	"Storefront/internal/catalog"
	"Storefront/internal/money"
)

// DefaultShippingFee is the flat estimate added at checkout, in minor units.
const DefaultShippingFee = 80

// Renderer projects a cart and the catalog into display state. Nothing it
// computes is stored.
type Renderer struct {
	Catalog     *catalog.Catalog
	Currency    money.Currency
	ShippingFee int64
}

// lineItem pairs a stored line with its catalog product. Lines without a
// product are dropped.
type lineItem struct {
	line    Line
	product catalog.Product
	total   int64
}

func (r *Renderer) resolve(c Cart) ([]lineItem, int64) {
	items := make([]lineItem, 0, len(c.Lines))
	var subtotal int64
	for _, l := range c.Lines {
		p, ok := r.Catalog.Lookup(l.ProductID)
		if !ok {
			continue
		}
		total := p.Price * int64(l.Qty)
		subtotal += total
		items = append(items, lineItem{line: l, product: p, total: total})
	}
	return items, subtotal
}

func (r *Renderer) CartPage(c Cart) CartPage {
	items, subtotal := r.resolve(c)

	page := CartPage{
		Rows:         make([]Row, 0, len(items)),
		Subtotal:     subtotal,
		SubtotalText: r.Currency.Format(subtotal),
		Empty:        len(items) == 0,
	}
	for _, it := range items {
		page.Rows = append(page.Rows, Row{
			ProductID:     it.product.ID,
			Name:          it.product.Name,
			Price:         it.product.Price,
			PriceText:     r.Currency.Format(it.product.Price),
			Qty:           it.line.Qty,
			LineTotal:     it.total,
			LineTotalText: r.Currency.Format(it.total),
		})
	}
	return page
}

// Summary adds the flat shipping fee only when the subtotal is positive.
func (r *Renderer) Summary(c Cart) Summary {
	items, subtotal := r.resolve(c)

	s := Summary{
		Lines:    make([]SummaryLine, 0, len(items)),
		Subtotal: subtotal,
		Empty:    len(items) == 0,
	}
	for _, it := range items {
		s.Lines = append(s.Lines, SummaryLine{
			ProductID: it.product.ID,
			Name:      it.product.Name,
			Qty:       it.line.Qty,
			LineTotal: it.total,
			Text:      fmt.Sprintf("%d × %s — %s", it.line.Qty, it.product.Name, r.Currency.Format(it.total)),
		})
	}

	if s.Empty {
		s.TotalText = r.Currency.Format(0)
		return s
	}

	if subtotal > 0 {
		s.Shipping = r.ShippingFee
	}
	s.Total = subtotal + s.Shipping
	s.TotalText = fmt.Sprintf("%s (incl. est. %s shipping)",
		r.Currency.Format(s.Total), r.Currency.Format(s.Shipping))
	return s
}

func (r *Renderer) RenderBadge(v View, c Cart) {
	if !hasRegion(v, RegionBadge) {
		return
	}
	v.RenderBadge(c.Count())
}

func (r *Renderer) RenderCartPage(v View, c Cart) {
	if !hasRegion(v, RegionCart) {
		return
	}
	v.RenderCartRows(r.CartPage(c))
}

func (r *Renderer) RenderCheckoutSummary(v View, c Cart) {
	if !hasRegion(v, RegionCheckout) {
		return
	}
	v.RenderSummary(r.Summary(c))
}

// RenderAll is the page-load pass: badge, cart page, checkout summary.
func (r *Renderer) RenderAll(v View, c Cart) {
	r.RenderBadge(v, c)
	r.RenderCartPage(v, c)
	r.RenderCheckoutSummary(v, c)
}
