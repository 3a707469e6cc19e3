package handler

import (
	"net/http"

	"github.com/SurakshaKumari/menudigitale-sub000/internal/model"
	"github.com/SurakshaKumari/menudigitale-sub000/internal/service"

	"github.com/rs/zerolog"
)

// AllergenHandler handles allergen catalogue HTTP requests.
type AllergenHandler struct {
	service service.AllergenService
	logger  zerolog.Logger
}

// NewAllergenHandler creates a new allergen handler.
func NewAllergenHandler(service service.AllergenService, logger zerolog.Logger) *AllergenHandler {
	return &AllergenHandler{
		service: service,
		logger:  logger.With().Str("handler", "allergen").Logger(),
	}
}

// List handles GET /api/allergens requests.
func (h *AllergenHandler) List(w http.ResponseWriter, r *http.Request) {
	allergens, err := h.service.List(r.Context())
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	if allergens == nil {
		allergens = []model.Allergen{}
	}
	writeJSON(w, http.StatusOK, allergens)
}

// Create handles POST /api/allergens requests (admin only).
func (h *AllergenHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateAllergenRequest
	if err := decodeJSON(r, &req); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	allergen, err := h.service.Create(r.Context(), &req)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, allergen)
}

// Update handles PUT /api/allergens/{id} requests (admin only).
func (h *AllergenHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	var req model.UpdateAllergenRequest
	if err := decodeJSON(r, &req); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	allergen, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, allergen)
}

// Delete handles DELETE /api/allergens/{id} requests (admin only).
func (h *AllergenHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
