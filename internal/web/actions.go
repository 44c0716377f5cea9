package web

import (
	"net/http"
	"strings"

	"Storefront/internal/cart"
)

// Form posts mirror the page controls: each runs one cart operation and
// redirects back so a reload never resubmits.

func (s *Server) addAction(w http.ResponseWriter, r *http.Request) {
	visitor, _ := VisitorFromContext(r.Context())
	productID := strings.TrimSpace(r.PostFormValue("product_id"))
	if productID == "" {
		http.Error(w, "product_id required", http.StatusBadRequest)
		return
	}

	notice, err := s.Carts.AddToCart(r.Context(), visitor, productID, cart.ParseQuantity(r.PostFormValue("qty")), nil)
	if err != nil {
		s.pageError(w, r, "add to cart failed", err)
		return
	}

	setFlash(w, notice)
	http.Redirect(w, r, returnTo(r, "/"), http.StatusSeeOther)
}

func (s *Server) updateAction(w http.ResponseWriter, r *http.Request) {
	visitor, _ := VisitorFromContext(r.Context())
	productID := r.PostFormValue("product_id")
	qty := cart.ParseQuantity(r.PostFormValue("qty"))

	if err := s.Carts.UpdateQuantity(r.Context(), visitor, productID, qty, nil); err != nil {
		s.pageError(w, r, "update quantity failed", err)
		return
	}
	http.Redirect(w, r, "/cart", http.StatusSeeOther)
}

func (s *Server) removeAction(w http.ResponseWriter, r *http.Request) {
	visitor, _ := VisitorFromContext(r.Context())

	if err := s.Carts.RemoveFromCart(r.Context(), visitor, r.PostFormValue("product_id"), nil); err != nil {
		s.pageError(w, r, "remove from cart failed", err)
		return
	}
	http.Redirect(w, r, "/cart", http.StatusSeeOther)
}

func (s *Server) clearAction(w http.ResponseWriter, r *http.Request) {
	visitor, _ := VisitorFromContext(r.Context())

	if err := s.Carts.ClearCart(r.Context(), visitor, nil); err != nil {
		s.pageError(w, r, "clear cart failed", err)
		return
	}
	http.Redirect(w, r, "/cart", http.StatusSeeOther)
}

func (s *Server) checkoutAction(w http.ResponseWriter, r *http.Request) {
	visitor, _ := VisitorFromContext(r.Context())

	res, err := s.Checkout.Submit(r.Context(), visitor)
	if err != nil {
		s.pageError(w, r, "checkout failed", err)
		return
	}

	setFlash(w, res.Notice)
	http.Redirect(w, r, res.Redirect, http.StatusSeeOther)
}

// returnTo accepts only local absolute paths to avoid open redirects.
func returnTo(r *http.Request, def string) string {
	p := r.PostFormValue("return")
	if !strings.HasPrefix(p, "/") || strings.HasPrefix(p, "//") || strings.HasPrefix(p, "/\\") {
		return def
	}
	return p
}
