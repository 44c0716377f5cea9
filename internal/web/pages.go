package web

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"go.uber.org/zap"

	"Storefront/internal/cart"
	"Storefront/pkg/kit"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = map[string]*template.Template{
	"home":     parsePage("home.html"),
	"cart":     parsePage("cart.html"),
	"checkout": parsePage("checkout.html"),
}

func parsePage(name string) *template.Template {
	return template.Must(template.ParseFS(templateFS, "templates/layout.html", "templates/"+name))
}

type productCard struct {
	ID              string
	Name            string
	PriceText       string
	DescriptionHTML template.HTML
}

type pageData struct {
	Title    string
	Notice   string
	View     *snapshotView
	Products []productCard
}

func (s *Server) home(w http.ResponseWriter, r *http.Request) {
	v := newView(cart.RegionBadge)
	if !s.refresh(w, r, v) {
		return
	}

	products := s.Catalog.List()
	cards := make([]productCard, 0, len(products))
	for _, p := range products {
		cards = append(cards, productCard{
			ID:              p.ID,
			Name:            p.Name,
			PriceText:       s.Carts.Renderer.Currency.Format(p.Price),
			DescriptionHTML: s.Catalog.DescriptionHTML(p.ID),
		})
	}

	s.render(w, r, "home", pageData{Title: "Shop", View: v, Products: cards})
}

func (s *Server) cartPage(w http.ResponseWriter, r *http.Request) {
	v := newView(cart.RegionBadge, cart.RegionCart)
	if !s.refresh(w, r, v) {
		return
	}
	s.render(w, r, "cart", pageData{Title: "Cart", View: v})
}

func (s *Server) checkoutPage(w http.ResponseWriter, r *http.Request) {
	v := newView(cart.RegionBadge, cart.RegionCheckout)
	if !s.refresh(w, r, v) {
		return
	}
	s.render(w, r, "checkout", pageData{Title: "Checkout", View: v})
}

func (s *Server) refresh(w http.ResponseWriter, r *http.Request, v cart.View) bool {
	visitor, _ := VisitorFromContext(r.Context())
	if err := s.Carts.Refresh(r.Context(), visitor, v); err != nil {
		s.pageError(w, r, "load cart failed", err)
		return false
	}
	return true
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, page string, data pageData) {
	data.Notice = popFlash(w, r)

	var buf bytes.Buffer
	if err := pages[page].ExecuteTemplate(&buf, "layout", data); err != nil {
		s.pageError(w, r, "render page failed", err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func (s *Server) pageError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	s.logger().Error(msg, zap.Error(err), zap.String("path", r.URL.Path))
	if kit.WantsJSON(r) {
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}
	http.Error(w, "server error", http.StatusInternalServerError)
}
