package handler

import (
	"net/http"

	"github.com/SurakshaKumari/menudigitale-sub000/internal/model"
	"github.com/SurakshaKumari/menudigitale-sub000/internal/service"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// CatalogHandler handles category and dish HTTP requests.
type CatalogHandler struct {
	categories service.CategoryService
	dishes     service.DishService
	logger     zerolog.Logger
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(categories service.CategoryService, dishes service.DishService, logger zerolog.Logger) *CatalogHandler {
	return &CatalogHandler{
		categories: categories,
		dishes:     dishes,
		logger:     logger.With().Str("handler", "catalog").Logger(),
	}
}

// UpdateCategory handles PUT /api/categories/{id} requests.
func (h *CatalogHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	var req model.UpdateCategoryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	category, err := h.categories.Update(r.Context(), actorFrom(r), id, &req)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, category)
}

// DeleteCategory handles DELETE /api/categories/{id} requests.
func (h *CatalogHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	if err := h.categories.Delete(r.Context(), actorFrom(r), id); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CreateDish handles POST /api/categories/{id}/dishes requests.
func (h *CatalogHandler) CreateDish(w http.ResponseWriter, r *http.Request) {
	categoryID, err := pathUUID(r, "id")
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	var req model.CreateDishRequest
	if err := decodeJSON(r, &req); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	dish, err := h.dishes.Create(r.Context(), actorFrom(r), categoryID, &req)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, dish)
}

// UpdateDish handles PUT /api/dishes/{id} requests.
func (h *CatalogHandler) UpdateDish(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	var req model.UpdateDishRequest
	if err := decodeJSON(r, &req); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	dish, err := h.dishes.Update(r.Context(), actorFrom(r), id, &req)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, dish)
}

// DeleteDish handles DELETE /api/dishes/{id} requests.
func (h *CatalogHandler) DeleteDish(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	if err := h.dishes.Delete(r.Context(), actorFrom(r), id); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// SetDishAllergens handles PUT /api/dishes/{id}/allergens requests. The body
// is the full replacement set of allergen IDs.
func (h *CatalogHandler) SetDishAllergens(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	var req struct {
		AllergenIDs []uuid.UUID `json:"allergenIds"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	dish, err := h.dishes.SetAllergens(r.Context(), actorFrom(r), id, req.AllergenIDs)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, dish)
}
