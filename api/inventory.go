package api

import (
	"net/http"

	"go.uber.org/zap"

	"pcbuild/api/v1/mapping"
	"pcbuild/api/v1/types"
	core "pcbuild/core/types"
	"pcbuild/internal/errors"
	"pcbuild/internal/logging"
)

// handleListInventory handles GET /inventory
func (s *Server) handleListInventory(w http.ResponseWriter, r *http.Request) {
	inv, err := s.store.Inventory(r.Context())
	if err != nil {
		s.writeError(w, r, errors.Persistence("list", "inventory", 0, err))
		return
	}
	s.writeJSON(w, mapping.CatalogToDTO(inv), http.StatusOK)
}

// handleUpsertInventory handles POST /inventory
func (s *Server) handleUpsertInventory(w http.ResponseWriter, r *http.Request) {
	var req types.InventoryUpsertRequest
	if !s.decode(w, r, &req) {
		return
	}
	category, ok := core.ParseCategory(req.Category)
	if !ok {
		s.writeError(w, r, errors.Inputf("unknown category %q", req.Category))
		return
	}
	rec := mapping.RecordFromDTO(req.Record)
	if err := s.store.UpsertRecord(r.Context(), category, rec); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.logger.Info("inventory upserted", logging.Category(category), logging.ComponentID(rec.ID))
	s.writeJSON(w, mapping.RecordToDTO(rec), http.StatusOK)
}

// handleDeleteInventory handles DELETE /inventory/{category}/{id}
func (s *Server) handleDeleteInventory(w http.ResponseWriter, r *http.Request) {
	category, ok := core.ParseCategory(r.PathValue("category"))
	if !ok {
		s.writeError(w, r, errors.Inputf("unknown category %q", r.PathValue("category")))
		return
	}
	id := r.PathValue("id")
	if err := s.store.DeleteRecord(r.Context(), category, id); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.logger.Info("inventory deleted", logging.Category(category), logging.ComponentID(id))
	w.WriteHeader(http.StatusNoContent)
}

// handleListConfigs handles GET /configs
func (s *Server) handleListConfigs(w http.ResponseWriter, r *http.Request) {
	tpl, err := s.store.Templates(r.Context())
	if err != nil {
		s.writeError(w, r, errors.Persistence("list", "configs", 0, err))
		return
	}
	s.writeJSON(w, mapping.TemplatesToDTO(tpl), http.StatusOK)
}

// handleUpsertConfig handles POST /configs
func (s *Server) handleUpsertConfig(w http.ResponseWriter, r *http.Request) {
	var req types.ConfigUpsertRequest
	if !s.decode(w, r, &req) {
		return
	}
	brand, ok := core.ParseBrand(req.CPUBrand)
	if !ok {
		s.writeError(w, r, errors.Inputf("unknown cpu brand %q", req.CPUBrand))
		return
	}
	sel, err := mapping.SelectionFromDTO(req.Selection)
	if err != nil {
		s.writeError(w, r, errors.Wrap(errors.TypeInput, "invalid selection", err))
		return
	}
	req.Game = core.GameKey(req.Game)
	if err := s.store.UpsertTemplate(r.Context(), brand, req.Game, req.BudgetKey, sel); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.logger.Info("config upserted",
		zap.Stringer("brand", brand), zap.String("game", req.Game), zap.String("budget_key", req.BudgetKey))
	s.writeJSON(w, req, http.StatusOK)
}

// handleDeleteConfig handles DELETE /configs/{cpuBrand}/{game}/{budgetKey}
func (s *Server) handleDeleteConfig(w http.ResponseWriter, r *http.Request) {
	brand, ok := core.ParseBrand(r.PathValue("cpuBrand"))
	if !ok {
		s.writeError(w, r, errors.Inputf("unknown cpu brand %q", r.PathValue("cpuBrand")))
		return
	}
	game, key := r.PathValue("game"), r.PathValue("budgetKey")
	if err := s.store.DeleteTemplate(r.Context(), brand, game, key); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.logger.Info("config deleted",
		zap.Stringer("brand", brand), zap.String("game", game), zap.String("budget_key", key))
	w.WriteHeader(http.StatusNoContent)
}
