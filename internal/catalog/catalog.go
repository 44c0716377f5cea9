package catalog

import (
	"errors"
	"fmt"
	"html/template"
	"strings"
)

var (
	ErrEmptyID       = errors.New("product id is empty")
	ErrDuplicateID   = errors.New("duplicate product id")
	ErrNegativePrice = errors.New("negative price")
)

// Product prices are in minor currency units.
type Product struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Price       int64  `json:"price" yaml:"price"`
	Description string `json:"description" yaml:"description"`
}

// Catalog is a frozen product list. It is safe for concurrent reads and has
// no mutation methods.
type Catalog struct {
	products []Product
	byID     map[string]int
	html     map[string]template.HTML
}

func New(products []Product) (*Catalog, error) {
	c := &Catalog{
		products: make([]Product, 0, len(products)),
		byID:     make(map[string]int, len(products)),
		html:     make(map[string]template.HTML, len(products)),
	}

	for _, p := range products {
		p.ID = strings.TrimSpace(p.ID)
		switch {
		case p.ID == "":
			return nil, ErrEmptyID
		case p.Price < 0:
			return nil, fmt.Errorf("%w: %s", ErrNegativePrice, p.ID)
		}
		if _, dup := c.byID[p.ID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, p.ID)
		}

		html, err := renderDescription(p.Description)
		if err != nil {
			return nil, fmt.Errorf("render description %s: %w", p.ID, err)
		}

		c.byID[p.ID] = len(c.products)
		c.products = append(c.products, p)
		c.html[p.ID] = html
	}

	return c, nil
}

func (c *Catalog) Lookup(id string) (Product, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Product{}, false
	}
	return c.products[i], true
}

// List returns products in declaration order.
func (c *Catalog) List() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c *Catalog) Len() int { return len(c.products) }

// DescriptionHTML is the sanitized Markdown rendering of a product description.
func (c *Catalog) DescriptionHTML(id string) template.HTML {
	return c.html[id]
}
