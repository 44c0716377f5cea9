package web

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"Storefront/internal/cart"
	"Storefront/pkg/kit"
)

const maxBodyBytes = 1 << 20

type cartResp struct {
	Notice  string         `json:"notice,omitempty"`
	Lines   []cart.Line    `json:"lines"`
	Badge   int            `json:"badge"`
	Cart    *cart.CartPage `json:"cart"`
	Summary *cart.Summary  `json:"summary"`
}

type addReq struct {
	ProductID string `json:"product_id"`
	Qty       *int   `json:"qty"`
}

type updateReq struct {
	Qty int `json:"qty"`
}

func (s *Server) apiRoutes(r chi.Router) {
	r.Get("/cart", s.apiCart)
	r.Post("/cart/items", s.apiAdd)
	r.Patch("/cart/items/{id}", s.apiUpdate)
	r.Delete("/cart/items/{id}", s.apiRemove)
	r.Delete("/cart", s.apiClear)
	r.Get("/checkout/summary", s.apiSummary)
}

func (s *Server) apiCart(w http.ResponseWriter, r *http.Request) {
	s.writeCart(w, r, http.StatusOK, "")
}

func (s *Server) apiAdd(w http.ResponseWriter, r *http.Request) {
	var req addReq
	if err := decodeJSON(w, r, &req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", map[string]any{"cause": err.Error()})
		return
	}
	req.ProductID = strings.TrimSpace(req.ProductID)
	if req.ProductID == "" {
		kit.WriteError(w, r, http.StatusBadRequest, "product_id required", nil)
		return
	}

	qty := 1
	if req.Qty != nil {
		qty = *req.Qty
	}

	visitor, _ := VisitorFromContext(r.Context())
	notice, err := s.Carts.AddToCart(r.Context(), visitor, req.ProductID, qty, nil)
	if err != nil {
		s.apiError(w, r, "add to cart failed", err)
		return
	}
	s.writeCart(w, r, http.StatusOK, notice)
}

func (s *Server) apiUpdate(w http.ResponseWriter, r *http.Request) {
	var req updateReq
	if err := decodeJSON(w, r, &req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", map[string]any{"cause": err.Error()})
		return
	}

	visitor, _ := VisitorFromContext(r.Context())
	if err := s.Carts.UpdateQuantity(r.Context(), visitor, chi.URLParam(r, "id"), req.Qty, nil); err != nil {
		s.apiError(w, r, "update quantity failed", err)
		return
	}
	s.writeCart(w, r, http.StatusOK, "")
}

func (s *Server) apiRemove(w http.ResponseWriter, r *http.Request) {
	visitor, _ := VisitorFromContext(r.Context())
	if err := s.Carts.RemoveFromCart(r.Context(), visitor, chi.URLParam(r, "id"), nil); err != nil {
		s.apiError(w, r, "remove from cart failed", err)
		return
	}
	s.writeCart(w, r, http.StatusOK, "")
}

func (s *Server) apiClear(w http.ResponseWriter, r *http.Request) {
	visitor, _ := VisitorFromContext(r.Context())
	if err := s.Carts.ClearCart(r.Context(), visitor, nil); err != nil {
		s.apiError(w, r, "clear cart failed", err)
		return
	}
	s.writeCart(w, r, http.StatusOK, "")
}

func (s *Server) apiSummary(w http.ResponseWriter, r *http.Request) {
	visitor, _ := VisitorFromContext(r.Context())
	v := newView(cart.RegionCheckout)
	if err := s.Carts.Refresh(r.Context(), visitor, v); err != nil {
		s.apiError(w, r, "load cart failed", err)
		return
	}
	kit.WriteJSON(w, http.StatusOK, v.Summary)
}

func (s *Server) apiCheckout(w http.ResponseWriter, r *http.Request) {
	visitor, _ := VisitorFromContext(r.Context())
	res, err := s.Checkout.Submit(r.Context(), visitor)
	if err != nil {
		s.apiError(w, r, "checkout failed", err)
		return
	}
	kit.WriteJSON(w, http.StatusOK, res)
}

// writeCart re-reads storage so the response reflects what was persisted.
func (s *Server) writeCart(w http.ResponseWriter, r *http.Request, status int, notice string) {
	visitor, _ := VisitorFromContext(r.Context())

	c, err := s.Carts.Cart(r.Context(), visitor)
	if err != nil {
		s.apiError(w, r, "load cart failed", err)
		return
	}

	v := allRegions()
	s.Carts.Renderer.RenderAll(v, c)

	lines := c.Lines
	if lines == nil {
		lines = []cart.Line{}
	}
	kit.WriteJSON(w, status, cartResp{
		Notice:  notice,
		Lines:   lines,
		Badge:   v.Badge,
		Cart:    v.Cart,
		Summary: v.Summary,
	})
}

func (s *Server) apiError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	s.logger().Error(msg, zap.Error(err), zap.String("path", r.URL.Path))
	kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer func() { _ = r.Body.Close() }()

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return errors.New("extra data after json object")
	}
	return nil
}
