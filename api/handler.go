package api

import (
	"net/http"

	"pcbuild/api/v1/mapping"
	"pcbuild/api/v1/types"
	"pcbuild/core/compat"
	"pcbuild/core/generator"
	"pcbuild/core/pricing"
	core "pcbuild/core/types"
	"pcbuild/internal/errors"
)

// handleCatalog handles GET /catalog: the baseline merged with the inventory
func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	c, err := s.catalog.Catalog(r.Context())
	if err != nil {
		s.writeError(w, r, errors.Persistence("list", "inventory", 0, err))
		return
	}
	s.writeJSON(w, mapping.CatalogToDTO(c), http.StatusOK)
}

// handleOptions handles GET /options/{category}. The current selection is
// passed as query parameters, one per category (?cpu=13400f&mainboard=...).
func (s *Server) handleOptions(w http.ResponseWriter, r *http.Request) {
	category, ok := core.ParseCategory(r.PathValue("category"))
	if !ok {
		s.writeError(w, r, errors.Inputf("unknown category %q", r.PathValue("category")))
		return
	}
	sel := core.Selection{}
	for name, values := range r.URL.Query() {
		if c, ok := core.ParseCategory(name); ok && len(values) > 0 {
			sel = sel.With(c, values[0])
		}
	}

	c, err := s.catalog.Catalog(r.Context())
	if err != nil {
		s.writeError(w, r, errors.Persistence("list", "inventory", 0, err))
		return
	}
	opts := compat.NewResolver(c).Options(category, sel)
	s.writeJSON(w, mapping.OptionsToDTO(opts), http.StatusOK)
}

// handleGenerate handles POST /generate
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req types.GenerateRequest
	if !s.decode(w, r, &req) {
		return
	}
	brand, ok := core.ParseBrand(req.CPUBrand)
	if !ok {
		s.writeError(w, r, errors.Inputf("unknown cpu brand %q (want intel or amd)", req.CPUBrand))
		return
	}

	ctx := r.Context()
	c, err := s.catalog.Catalog(ctx)
	if err != nil {
		s.writeError(w, r, errors.Persistence("list", "inventory", 0, err))
		return
	}
	tpl, err := s.store.Templates(ctx)
	if err != nil {
		s.writeError(w, r, errors.Persistence("list", "configs", 0, err))
		return
	}

	gen := generator.New(c, tpl,
		generator.WithHeuristics(s.heuristics),
		generator.WithLogger(s.logger.Named("generator")))
	res, err := gen.Generate(generator.Request{Budget: req.Budget, Brand: brand, Game: req.Game})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	bill := mapping.BillToDTO(pricing.Breakdown(c, res.Selection), s.formatter, req.Budget)
	s.writeJSON(w, mapping.GenerateToDTO(res, bill), http.StatusOK)
}

// handleTotal handles POST /total
func (s *Server) handleTotal(w http.ResponseWriter, r *http.Request) {
	var req types.TotalRequest
	if !s.decode(w, r, &req) {
		return
	}
	sel, err := mapping.SelectionFromDTO(req.Selection)
	if err != nil {
		s.writeError(w, r, errors.Wrap(errors.TypeInput, "invalid selection", err))
		return
	}
	c, err := s.catalog.Catalog(r.Context())
	if err != nil {
		s.writeError(w, r, errors.Persistence("list", "inventory", 0, err))
		return
	}
	s.writeJSON(w, mapping.BillToDTO(pricing.Breakdown(c, sel), s.formatter, 0), http.StatusOK)
}
