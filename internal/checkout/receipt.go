package checkout

import (
	"context"
	"time"
)

// Item is a priced snapshot of one cart line at checkout time.
type Item struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Qty       int    `json:"qty"`
	LineTotal int64  `json:"line_total"`
}

// Receipt records a demo checkout. Nothing is charged.
type Receipt struct {
	ID        string    `json:"id"`
	VisitorID string    `json:"visitor_id"`
	Items     []Item    `json:"items"`
	Subtotal  int64     `json:"subtotal"`
	Shipping  int64     `json:"shipping"`
	Total     int64     `json:"total"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

const StatusDemo = "DEMO"

type Store interface {
	Create(ctx context.Context, r Receipt) error
	Get(ctx context.Context, id string) (Receipt, bool, error)
}
