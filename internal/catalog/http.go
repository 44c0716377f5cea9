package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"Storefront/pkg/kit"
)

type Server struct {
	Catalog *Catalog
}

type productResp struct {
	Product
	DescriptionHTML string `json:"description_html,omitempty"`
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	s.Register(r)
	return r
}

// Register adds the product routes to an existing router.
func (s *Server) Register(r chi.Router) {
	r.Get("/products", s.list)
	r.Get("/products/{id}", s.get)
}

func (s *Server) list(w http.ResponseWriter, _ *http.Request) {
	products := s.Catalog.List()
	out := make([]productResp, 0, len(products))
	for _, p := range products {
		out = append(out, s.resp(p))
	}
	kit.WriteJSON(w, http.StatusOK, out)
}

func (s *Server) get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	p, ok := s.Catalog.Lookup(id)
	if !ok {
		kit.WriteError(w, r, http.StatusNotFound, "not found", map[string]any{"id": id})
		return
	}
	kit.WriteJSON(w, http.StatusOK, s.resp(p))
}

func (s *Server) resp(p Product) productResp {
	return productResp{Product: p, DescriptionHTML: string(s.Catalog.DescriptionHTML(p.ID))}
}
