package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/SurakshaKumari/menudigitale-sub000/internal/model"
	"github.com/SurakshaKumari/menudigitale-sub000/internal/repository"
	"github.com/SurakshaKumari/menudigitale-sub000/internal/translation"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// translationService implements TranslationService.
type translationService struct {
	translationRepo repository.TranslationRepository
	menuRepo        repository.MenuRepository
	client          translation.Client
	logger          zerolog.Logger
}

// NewTranslationService creates a new translation service. The external
// client is injected so tests can substitute a double.
func NewTranslationService(
	translationRepo repository.TranslationRepository,
	menuRepo repository.MenuRepository,
	client translation.Client,
	logger zerolog.Logger,
) TranslationService {
	return &translationService{
		translationRepo: translationRepo,
		menuRepo:        menuRepo,
		client:          client,
		logger:          logger.With().Str("service", "translation").Logger(),
	}
}

// Generate returns the stored translation for (menu, language), creating it
// on first request. The stored record is immutable: repeated calls return it
// unchanged without touching the external service.
func (s *translationService) Generate(ctx context.Context, actor *model.Actor, menuID uuid.UUID, language string) (*model.Translation, error) {
	if language == "" {
		return nil, model.NewDomainError(model.ErrCodeMissingField, "Target language is required")
	}

	menu, err := ownedMenu(ctx, s.menuRepo, actor, menuID)
	if err != nil {
		return nil, err
	}

	existing, err := s.translationRepo.GetByMenuAndLanguage(ctx, menuID, language)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		s.logger.Debug().
			Str("menu_id", menuID.String()).
			Str("language", language).
			Msg("returning cached translation")
		return existing, nil
	}

	if err := s.menuRepo.LoadTree(ctx, menu); err != nil {
		return nil, fmt.Errorf("failed to load menu tree: %w", err)
	}

	projection := translation.Project(menu)

	translated, err := s.client.Translate(ctx, projection, language)
	if err != nil {
		return nil, err
	}

	if err := translation.ValidateShape(projection, translated); err != nil {
		s.logger.Warn().Err(err).
			Str("menu_id", menuID.String()).
			Str("language", language).
			Msg("translation response shape mismatch, discarding")
		return nil, err
	}

	payload, err := json.Marshal(translated)
	if err != nil {
		return nil, fmt.Errorf("failed to encode translation payload: %w", err)
	}

	record := &model.Translation{
		ID:        uuid.New(),
		MenuID:    menuID,
		Language:  language,
		Payload:   payload,
		CreatedAt: time.Now(),
	}

	err = s.translationRepo.Create(ctx, record)
	if errors.Is(err, model.ErrDuplicateTranslation) {
		// A concurrent request won the insert race. Its record is the
		// canonical one; ours is discarded.
		winner, fetchErr := s.translationRepo.GetByMenuAndLanguage(ctx, menuID, language)
		if fetchErr != nil {
			return nil, fetchErr
		}
		if winner == nil {
			return nil, fmt.Errorf("translation disappeared after duplicate insert: %w", err)
		}
		return winner, nil
	}
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("menu_id", menuID.String()).
		Str("language", language).
		Msg("translation generated")

	return record, nil
}

// Delete removes the stored translation for a pair so the owner can trigger
// a fresh one.
func (s *translationService) Delete(ctx context.Context, actor *model.Actor, menuID uuid.UUID, language string) error {
	if _, err := ownedMenu(ctx, s.menuRepo, actor, menuID); err != nil {
		return err
	}

	if err := s.translationRepo.Delete(ctx, menuID, language); err != nil {
		return err
	}

	s.logger.Info().
		Str("menu_id", menuID.String()).
		Str("language", language).
		Msg("translation deleted")

	return nil
}
