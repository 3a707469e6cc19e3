package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/SurakshaKumari/menudigitale-sub000/internal/model"
	"github.com/SurakshaKumari/menudigitale-sub000/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// allergenService implements AllergenService.
type allergenService struct {
	allergenRepo repository.AllergenRepository
	logger       zerolog.Logger
}

// NewAllergenService creates a new allergen service.
func NewAllergenService(allergenRepo repository.AllergenRepository, logger zerolog.Logger) AllergenService {
	return &allergenService{
		allergenRepo: allergenRepo,
		logger:       logger.With().Str("service", "allergen").Logger(),
	}
}

// Create adds an allergen to the shared catalogue.
func (s *allergenService) Create(ctx context.Context, req *model.CreateAllergenRequest) (*model.Allergen, error) {
	if req.Name == "" || req.Code == "" {
		return nil, model.NewDomainError(model.ErrCodeMissingField, "Allergen name and code are required")
	}

	allergen := &model.Allergen{
		ID:          uuid.New(),
		Name:        req.Name,
		Code:        strings.ToUpper(strings.TrimSpace(req.Code)),
		Description: req.Description,
		Icon:        req.Icon,
		IsActive:    true,
		CreatedAt:   time.Now(),
	}

	if err := s.allergenRepo.Create(ctx, allergen); err != nil {
		return nil, err
	}

	s.logger.Info().Str("allergen_id", allergen.ID.String()).Str("code", allergen.Code).Msg("allergen created")

	return allergen, nil
}

// List retrieves the whole catalogue.
func (s *allergenService) List(ctx context.Context) ([]model.Allergen, error) {
	allergens, err := s.allergenRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list allergens: %w", err)
	}
	return allergens, nil
}

// Update applies partial changes to a catalogue entry.
func (s *allergenService) Update(ctx context.Context, id uuid.UUID, req *model.UpdateAllergenRequest) (*model.Allergen, error) {
	allergen, err := s.allergenRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if allergen == nil {
		return nil, model.ErrAllergenNotFound
	}

	if req.Name != nil {
		allergen.Name = *req.Name
	}
	if req.Description != nil {
		allergen.Description = *req.Description
	}
	if req.Icon != nil {
		allergen.Icon = *req.Icon
	}
	if req.IsActive != nil {
		allergen.IsActive = *req.IsActive
	}

	if err := s.allergenRepo.Update(ctx, allergen); err != nil {
		return nil, err
	}

	return allergen, nil
}

// Delete removes an allergen from the catalogue.
func (s *allergenService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.allergenRepo.Delete(ctx, id)
}
