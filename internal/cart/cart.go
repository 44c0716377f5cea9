// Package cart holds the visitor cart model, its persistence in the storage
// service, the operations that mutate it, and the projections rendered from it.
//
// A Cart is a plain value. Operations take the current value and return the
// next one; the storage service is the only durable owner.
package cart

// Line is one cart entry. ProductID may reference a product that is no longer
// in the catalog.
type Line struct {
	ProductID string `json:"id"`
	Qty       int    `json:"qty"`
}

// Cart is an ordered list of lines. Add coalesces by product id, but lines
// loaded from storage are kept as-is, so duplicates can exist and are
// treated as distinct lines.
type Cart struct {
	Lines []Line
}

func (c Cart) Empty() bool { return len(c.Lines) == 0 }

// Count is the badge number: the sum of all line quantities.
func (c Cart) Count() int {
	n := 0
	for _, l := range c.Lines {
		n += l.Qty
	}
	return n
}

func (c Cart) clone() Cart {
	if c.Lines == nil {
		return Cart{}
	}
	lines := make([]Line, len(c.Lines))
	copy(lines, c.Lines)
	return Cart{Lines: lines}
}

func (c Cart) index(productID string) int {
	for i, l := range c.Lines {
		if l.ProductID == productID {
			return i
		}
	}
	return -1
}

// Add increments the first line for productID by qty, or appends a new line.
// qty is taken as given.
func Add(c Cart, productID string, qty int) Cart {
	next := c.clone()
	if i := next.index(productID); i >= 0 {
		next.Lines[i].Qty += qty
		return next
	}
	next.Lines = append(next.Lines, Line{ProductID: productID, Qty: qty})
	return next
}

// SetQuantity sets the first line for productID to NormalizeQuantity(qty).
// It reports false, returning c unchanged, when no line matches.
func SetQuantity(c Cart, productID string, qty int) (Cart, bool) {
	i := c.index(productID)
	if i < 0 {
		return c, false
	}
	next := c.clone()
	next.Lines[i].Qty = NormalizeQuantity(qty)
	return next, true
}

// Remove drops every line for productID. It reports false, returning c
// unchanged, when no line matches.
func Remove(c Cart, productID string) (Cart, bool) {
	if c.index(productID) < 0 {
		return c, false
	}
	next := Cart{Lines: make([]Line, 0, len(c.Lines))}
	for _, l := range c.Lines {
		if l.ProductID != productID {
			next.Lines = append(next.Lines, l)
		}
	}
	return next, true
}
