package cart

// Region names a part of a page that a View may or may not display.
type Region int

const (
	RegionBadge Region = iota
	RegionCart
	RegionCheckout
)

func (r Region) String() string {
	switch r {
	case RegionBadge:
		return "badge"
	case RegionCart:
		return "cart"
	case RegionCheckout:
		return "checkout"
	default:
		return "unknown"
	}
}

// View receives projections of the cart. Implementations decide how they are
// displayed; the cart logic never depends on a particular UI.
type View interface {
	RenderBadge(count int)
	RenderCartRows(page CartPage)
	RenderSummary(summary Summary)
}

// RegionChecker is implemented by views that only show some regions. Renders
// for an absent region are skipped. Views that do not implement it are
// assumed to show everything.
type RegionChecker interface {
	HasRegion(r Region) bool
}

func hasRegion(v View, r Region) bool {
	if v == nil {
		return false
	}
	rc, ok := v.(RegionChecker)
	return !ok || rc.HasRegion(r)
}

// Row is one rendered cart line.
type Row struct {
	ProductID     string `json:"product_id"`
	Name          string `json:"name"`
	Price         int64  `json:"price"`
	PriceText     string `json:"price_text"`
	Qty           int    `json:"qty"`
	LineTotal     int64  `json:"line_total"`
	LineTotalText string `json:"line_total_text"`
}

type CartPage struct {
	Rows         []Row  `json:"rows"`
	Subtotal     int64  `json:"subtotal"`
	SubtotalText string `json:"subtotal_text"`
	Empty        bool   `json:"empty"`
}

type SummaryLine struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Qty       int    `json:"qty"`
	LineTotal int64  `json:"line_total"`
	Text      string `json:"text"`
}

type Summary struct {
	Lines     []SummaryLine `json:"lines"`
	Subtotal  int64         `json:"subtotal"`
	Shipping  int64         `json:"shipping"`
	Total     int64         `json:"total"`
	TotalText string        `json:"total_text"`
	Empty     bool          `json:"empty"`
}
