// Package checkout is the placeholder order submission: it confirms, clears
// the cart and sends the visitor home. No payment is taken.
package checkout

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"Storefront/internal/cart"
	"Storefront/pkg/kit"
)

const (
	Notice   = "Checkout complete (demo).\nConnect this form to a real payment gateway later."
	Redirect = "/"
)

type Result struct {
	Notice    string `json:"notice"`
	Redirect  string `json:"redirect"`
	ReceiptID string `json:"receipt_id,omitempty"`
}

type Service struct {
	Carts    *cart.Service
	Gateway  PaymentGateway
	Receipts Store
	Metrics  *kit.Metrics
	Log      *zap.Logger

	now func() time.Time
}

// Submit completes a demo checkout. An empty cart still completes, but no
// receipt is recorded for it.
func (s *Service) Submit(ctx context.Context, visitor string) (Result, error) {
	c, err := s.Carts.Cart(ctx, visitor)
	if err != nil {
		return Result{}, err
	}

	res := Result{Notice: Notice, Redirect: Redirect}

	summary := s.Carts.Renderer.Summary(c)
	if !summary.Empty {
		r := s.receipt(visitor, summary)
		if err := s.Gateway.Charge(ctx, r); err != nil {
			return Result{}, fmt.Errorf("charge: %w", err)
		}
		if err := s.Receipts.Create(ctx, r); err != nil {
			return Result{}, fmt.Errorf("record receipt: %w", err)
		}
		res.ReceiptID = r.ID
	}

	if err := s.Carts.ClearCart(ctx, visitor, nil); err != nil {
		return Result{}, err
	}
	s.Metrics.Checkout()

	if s.Log != nil {
		s.Log.Info("checkout submitted",
			zap.String("visitor", visitor),
			zap.String("receipt_id", res.ReceiptID),
			zap.Int64("total", summary.Total),
		)
	}
	return res, nil
}

func (s *Service) receipt(visitor string, summary cart.Summary) Receipt {
	now := time.Now
	if s.now != nil {
		now = s.now
	}

	items := make([]Item, 0, len(summary.Lines))
	for _, l := range summary.Lines {
		items = append(items, Item{
			ProductID: l.ProductID,
			Name:      l.Name,
			Qty:       l.Qty,
			LineTotal: l.LineTotal,
		})
	}

	return Receipt{
		ID:        "o_" + uuid.NewString(),
		VisitorID: visitor,
		Items:     items,
		Subtotal:  summary.Subtotal,
		Shipping:  summary.Shipping,
		Total:     summary.Total,
		Status:    StatusDemo,
		CreatedAt: now().UTC(),
	}
}
