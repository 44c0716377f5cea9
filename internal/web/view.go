package web

import "Storefront/internal/cart"

// snapshotView collects whatever the cart renderers push into it. Pages
// declare the regions they show; the rest are skipped.
type snapshotView struct {
	regions map[cart.Region]bool

	Badge   int            `json:"badge"`
	Cart    *cart.CartPage `json:"cart,omitempty"`
	Summary *cart.Summary  `json:"summary,omitempty"`
}

func newView(regions ...cart.Region) *snapshotView {
	v := &snapshotView{regions: make(map[cart.Region]bool, len(regions))}
	for _, r := range regions {
		v.regions[r] = true
	}
	return v
}

func allRegions() *snapshotView {
	return newView(cart.RegionBadge, cart.RegionCart, cart.RegionCheckout)
}

func (v *snapshotView) HasRegion(r cart.Region) bool { return v.regions[r] }

func (v *snapshotView) RenderBadge(count int) { v.Badge = count }

func (v *snapshotView) RenderCartRows(page cart.CartPage) { v.Cart = &page }

func (v *snapshotView) RenderSummary(s cart.Summary) { v.Summary = &s }
