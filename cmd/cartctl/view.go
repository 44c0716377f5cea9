package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"Storefront/internal/cart"
)

// termView prints each region as it is rendered. It shows every region.
type termView struct {
	w io.Writer
}

func newTermView(w io.Writer) *termView {
	return &termView{w: w}
}

func (v *termView) RenderBadge(count int) {
	fmt.Fprintf(v.w, "Cart items: %d\n", count)
}

func (v *termView) RenderCartRows(page cart.CartPage) {
	if page.Empty {
		fmt.Fprintln(v.w, "Your cart is empty.")
		fmt.Fprintf(v.w, "Subtotal: %s\n", page.SubtotalText)
		return
	}

	tw := tabwriter.NewWriter(v.w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tPRODUCT\tPRICE\tQTY\tTOTAL")
	for _, r := range page.Rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n", r.ProductID, r.Name, r.PriceText, r.Qty, r.LineTotalText)
	}
	_ = tw.Flush()
	fmt.Fprintf(v.w, "Subtotal: %s\n", page.SubtotalText)
}

func (v *termView) RenderSummary(s cart.Summary) {
	fmt.Fprintln(v.w, "Checkout:")
	if s.Empty {
		fmt.Fprintln(v.w, "  Your cart is empty.")
	}
	for _, l := range s.Lines {
		fmt.Fprintf(v.w, "  %s\n", l.Text)
	}
	fmt.Fprintf(v.w, "Total: %s\n", s.TotalText)
}
