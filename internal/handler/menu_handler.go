package handler

import (
	"net/http"

	"github.com/SurakshaKumari/menudigitale-sub000/internal/model"
	"github.com/SurakshaKumari/menudigitale-sub000/internal/service"

	"github.com/rs/zerolog"
)

// MenuHandler handles owner-side menu HTTP requests.
type MenuHandler struct {
	menus      service.MenuService
	categories service.CategoryService
	logger     zerolog.Logger
}

// NewMenuHandler creates a new menu handler.
func NewMenuHandler(menus service.MenuService, categories service.CategoryService, logger zerolog.Logger) *MenuHandler {
	return &MenuHandler{
		menus:      menus,
		categories: categories,
		logger:     logger.With().Str("handler", "menu").Logger(),
	}
}

// Create handles POST /api/menus requests.
func (h *MenuHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateMenuRequest
	if err := decodeJSON(r, &req); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	menu, err := h.menus.Create(r.Context(), actorFrom(r), &req)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, menu)
}

// List handles GET /api/menus requests.
func (h *MenuHandler) List(w http.ResponseWriter, r *http.Request) {
	menus, err := h.menus.List(r.Context(), actorFrom(r))
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	if menus == nil {
		menus = []model.Menu{}
	}
	writeJSON(w, http.StatusOK, menus)
}

// Get handles GET /api/menus/{id} requests, returning the full tree with
// view analytics.
func (h *MenuHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	menu, err := h.menus.Get(r.Context(), actorFrom(r), id)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, menu)
}

// Update handles PUT /api/menus/{id} requests.
func (h *MenuHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	var req model.UpdateMenuRequest
	if err := decodeJSON(r, &req); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	menu, err := h.menus.Update(r.Context(), actorFrom(r), id, &req)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, menu)
}

// Delete handles DELETE /api/menus/{id} requests.
func (h *MenuHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	if err := h.menus.Delete(r.Context(), actorFrom(r), id); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CreateCategory handles POST /api/menus/{id}/categories requests.
func (h *MenuHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	menuID, err := pathUUID(r, "id")
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	var req model.CreateCategoryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	category, err := h.categories.Create(r.Context(), actorFrom(r), menuID, &req)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, category)
}
