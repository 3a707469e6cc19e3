package service

import (
	"context"
	"fmt"
	"time"

	"github.com/SurakshaKumari/menudigitale-sub000/internal/model"
	"github.com/SurakshaKumari/menudigitale-sub000/internal/repository"
	"github.com/SurakshaKumari/menudigitale-sub000/internal/translation"

	"github.com/rs/zerolog"
)

// passthroughLanguage is treated as "no translation needed" on the public
// path.
const passthroughLanguage = "en"

// publicMenuService implements PublicMenuService.
type publicMenuService struct {
	menuRepo        repository.MenuRepository
	translationRepo repository.TranslationRepository
	logger          zerolog.Logger
}

// NewPublicMenuService creates a new public menu service.
func NewPublicMenuService(
	menuRepo repository.MenuRepository,
	translationRepo repository.TranslationRepository,
	logger zerolog.Logger,
) PublicMenuService {
	return &publicMenuService{
		menuRepo:        menuRepo,
		translationRepo: translationRepo,
		logger:          logger.With().Str("service", "public_menu").Logger(),
	}
}

// Resolve loads the visible menu for a slug and records the view.
//
// The view counter is incremented exactly once per resolved request, after
// the tree has loaded. The increment is best-effort: if it fails, the
// failure is logged and the menu is still returned. Translation is applied
// only when a stored record already exists for the requested language; the
// public path never triggers translation generation.
func (s *publicMenuService) Resolve(ctx context.Context, slug, language string) (*model.Menu, error) {
	menu, err := s.menuRepo.GetPublicBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve slug: %w", err)
	}
	if menu == nil {
		return nil, model.ErrMenuNotFound
	}

	if err := s.menuRepo.LoadTree(ctx, menu); err != nil {
		return nil, fmt.Errorf("failed to load menu tree: %w", err)
	}

	if err := s.menuRepo.IncrementViewCount(ctx, menu.ID); err != nil {
		s.logger.Error().Err(err).
			Str("menu_id", menu.ID.String()).
			Msg("view count increment failed, serving response anyway")
	} else {
		menu.ViewCount++
		now := time.Now()
		menu.LastViewedAt = &now
	}

	if !s.wantsTranslation(menu, language) {
		return menu, nil
	}

	record, err := s.translationRepo.GetByMenuAndLanguage(ctx, menu.ID, language)
	if err != nil {
		return nil, fmt.Errorf("failed to look up translation: %w", err)
	}
	if record == nil {
		// No stored translation; serve the original rather than translating
		// on the public path.
		return menu, nil
	}

	payload, err := record.Decode()
	if err != nil {
		s.logger.Error().Err(err).
			Str("menu_id", menu.ID.String()).
			Str("language", language).
			Msg("stored translation is unreadable, serving untranslated menu")
		return menu, nil
	}

	return translation.Apply(menu, payload), nil
}

func (s *publicMenuService) wantsTranslation(menu *model.Menu, language string) bool {
	if language == "" || language == passthroughLanguage {
		return false
	}
	return language != menu.Language
}
